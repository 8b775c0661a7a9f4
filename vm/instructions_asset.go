// Copyright 2015 The go-ethereum Authors
// This file is part of the go-ethereum library.
//
// The go-ethereum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-ethereum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-ethereum library. If not, see <http://www.gnu.org/licenses/>.

package vm

import "github.com/alephium-chain/alph-vm/common"

// Stateful-only asset opcodes of spec.md §4.6. ApproveAlf/ApproveToken
// and the *Remaining queries read and write the frame's active
// BalanceState (frame.balance(), vm/frame.go); the six Transfer
// variants move assets out of that pool into the transaction's
// OutputBalances accumulator (vm/worldstate.go) — the point at which a
// VM-internal balance becomes a real transaction output. This mirrors
// how the teacher's opCall/opCreate move value via
// evm.Context.Transfer rather than mutating StateDB balances directly
// in the instruction body.

func init() {
	registerOp(ApproveAlf, opApproveAlf)
	registerOp(ApproveToken, opApproveToken)
	registerOp(AlfRemaining, opAlfRemaining)
	registerOp(TokenRemaining, opTokenRemaining)
	registerOp(TransferAlf, opTransferAlf)
	registerOp(TransferAlfFromSelf, opTransferAlfFromSelf)
	registerOp(TransferAlfToSelf, opTransferAlfToSelf)
	registerOp(TransferToken, opTransferToken)
	registerOp(TransferTokenFromSelf, opTransferTokenFromSelf)
	registerOp(TransferTokenToSelf, opTransferTokenToSelf)
}

func opApproveAlf(ctx *Context, fr *Frame, in Instr) error {
	amount, err := fr.OpStack.popU256()
	if err != nil {
		return err
	}
	addr, err := fr.OpStack.popAddress()
	if err != nil {
		return err
	}
	return fr.balance().ApproveAlf(addr, amount)
}

func opApproveToken(ctx *Context, fr *Frame, in Instr) error {
	amount, err := fr.OpStack.popU256()
	if err != nil {
		return err
	}
	token, err := popTokenID(fr)
	if err != nil {
		return err
	}
	addr, err := fr.OpStack.popAddress()
	if err != nil {
		return err
	}
	return fr.balance().ApproveToken(addr, token, amount)
}

func opAlfRemaining(ctx *Context, fr *Frame, in Instr) error {
	addr, err := fr.OpStack.popAddress()
	if err != nil {
		return err
	}
	v, err := fr.balance().AlfRemaining(addr)
	if err != nil {
		return err
	}
	return fr.OpStack.push(NewU256(v))
}

func opTokenRemaining(ctx *Context, fr *Frame, in Instr) error {
	token, err := popTokenID(fr)
	if err != nil {
		return err
	}
	addr, err := fr.OpStack.popAddress()
	if err != nil {
		return err
	}
	v, err := fr.balance().TokenRemaining(addr, token)
	if err != nil {
		return err
	}
	return fr.OpStack.push(NewU256(v))
}

func opTransferAlf(ctx *Context, fr *Frame, in Instr) error {
	amount, err := fr.OpStack.popU256()
	if err != nil {
		return err
	}
	to, err := fr.OpStack.popAddress()
	if err != nil {
		return err
	}
	from, err := fr.OpStack.popAddress()
	if err != nil {
		return err
	}
	return transferAlf(ctx, fr, from, to, amount)
}

func opTransferAlfFromSelf(ctx *Context, fr *Frame, in Instr) error {
	amount, err := fr.OpStack.popU256()
	if err != nil {
		return err
	}
	to, err := fr.OpStack.popAddress()
	if err != nil {
		return err
	}
	self, err := selfAddress(fr)
	if err != nil {
		return err
	}
	return transferAlf(ctx, fr, self, to, amount)
}

func opTransferAlfToSelf(ctx *Context, fr *Frame, in Instr) error {
	amount, err := fr.OpStack.popU256()
	if err != nil {
		return err
	}
	from, err := fr.OpStack.popAddress()
	if err != nil {
		return err
	}
	self, err := selfAddress(fr)
	if err != nil {
		return err
	}
	return transferAlf(ctx, fr, from, self, amount)
}

func opTransferToken(ctx *Context, fr *Frame, in Instr) error {
	amount, err := fr.OpStack.popU256()
	if err != nil {
		return err
	}
	token, err := popTokenID(fr)
	if err != nil {
		return err
	}
	to, err := fr.OpStack.popAddress()
	if err != nil {
		return err
	}
	from, err := fr.OpStack.popAddress()
	if err != nil {
		return err
	}
	return transferToken(ctx, fr, from, to, token, amount)
}

func opTransferTokenFromSelf(ctx *Context, fr *Frame, in Instr) error {
	amount, err := fr.OpStack.popU256()
	if err != nil {
		return err
	}
	token, err := popTokenID(fr)
	if err != nil {
		return err
	}
	to, err := fr.OpStack.popAddress()
	if err != nil {
		return err
	}
	self, err := selfAddress(fr)
	if err != nil {
		return err
	}
	return transferToken(ctx, fr, self, to, token, amount)
}

func opTransferTokenToSelf(ctx *Context, fr *Frame, in Instr) error {
	amount, err := fr.OpStack.popU256()
	if err != nil {
		return err
	}
	token, err := popTokenID(fr)
	if err != nil {
		return err
	}
	from, err := fr.OpStack.popAddress()
	if err != nil {
		return err
	}
	self, err := selfAddress(fr)
	if err != nil {
		return err
	}
	return transferToken(ctx, fr, from, self, token, amount)
}

func transferAlf(ctx *Context, fr *Frame, from, to Address, amount U256) error {
	if err := fr.balance().UseAlf(from, amount); err != nil {
		return err
	}
	return ctx.World.OutputBalances().AddAlf(to, amount)
}

func transferToken(ctx *Context, fr *Frame, from, to Address, token common.Hash, amount U256) error {
	if err := fr.balance().UseToken(from, token, amount); err != nil {
		return err
	}
	return ctx.World.OutputBalances().AddToken(to, token, amount)
}

// selfAddress resolves the *FromSelf/*ToSelf opcodes' implicit operand
// to the enclosing contract's own address, per spec.md §4.6.
func selfAddress(fr *Frame) (Address, error) {
	if !fr.IsContractFrame() {
		return Address{}, ErrExpectAContract
	}
	return fr.Address, nil
}

// popTokenID pops a 32-byte ByteVec token id, per spec.md §4.6's
// ApproveToken/TokenRemaining/TransferToken* argument grammar.
func popTokenID(fr *Frame) (common.Hash, error) {
	b, err := fr.OpStack.popByteVec()
	if err != nil {
		return common.Hash{}, err
	}
	if len(b) != common.HashLength {
		return common.Hash{}, ErrInvalidTokenId
	}
	return common.BytesToHash(b), nil
}
