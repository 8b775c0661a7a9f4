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

import (
	"fmt"

	"github.com/alephium-chain/alph-vm/common"
)

// Contract lifecycle and introspection opcodes of spec.md §4.5 — the
// analogue of the teacher's opCreate/opCreate2/opSelfdestruct plus
// opAddress/opCaller/opExtCodeHash in core/vm/instructions.go.

func init() {
	registerOp(CreateContract, opCreateContract)
	registerOp(CopyCreateContract, opCopyCreateContract)
	registerOp(DestroyContract, opDestroyContract)

	registerOp(SelfAddress, opSelfAddress)
	registerOp(SelfContractId, opSelfContractId)
	registerOp(IssueToken, opIssueToken)

	registerOp(CallerAddress, opCallerAddress)
	registerOp(CallerCodeHash, opCallerCodeHash)
	registerOp(ContractCodeHash, opContractCodeHash)
}

// opCreateContract pops, in order, the code bytes, the encoded field
// list, and the (funder, amount) funding pair, decodes code and
// fields, funds the new contract's address out of funder's balance,
// registers it with the WorldState, and pushes the new contract's
// address — CREATE's "new address on success" convention generalized
// to Alephium's explicit fields+funding operands.
func opCreateContract(ctx *Context, fr *Frame, in Instr) error {
	codeBytes, err := fr.OpStack.popByteVec()
	if err != nil {
		return err
	}
	fieldsBytes, err := fr.OpStack.popByteVec()
	if err != nil {
		return err
	}
	funder, amount, err := popFunding(fr)
	if err != nil {
		return err
	}
	code, err := DecodeContract(codeBytes)
	if err != nil {
		return err
	}
	fields, _, err := DecodeVals(fieldsBytes)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSerdeErrorCreateContract, err)
	}
	return createContract(ctx, fr, code, fields, CodeHash(codeBytes), funder, amount)
}

// opCopyCreateContract is CreateContract minus the code bytes: it
// reuses an existing deployed contract's code by id, so the new
// instance's EncodeMethod payload never has to be re-uploaded.
func opCopyCreateContract(ctx *Context, fr *Frame, in Instr) error {
	templateID, err := popTokenID(fr) // 32-byte id, same grammar as a token id
	if err != nil {
		return err
	}
	fieldsBytes, err := fr.OpStack.popByteVec()
	if err != nil {
		return err
	}
	funder, amount, err := popFunding(fr)
	if err != nil {
		return err
	}
	template, err := ctx.World.LoadContract(templateID)
	if err != nil {
		return err
	}
	fields, _, err := DecodeVals(fieldsBytes)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSerdeErrorCreateContract, err)
	}
	return createContract(ctx, fr, template.Code, fields, template.CodeHash, funder, amount)
}

func popFunding(fr *Frame) (Address, U256, error) {
	amount, err := fr.OpStack.popU256()
	if err != nil {
		return Address{}, U256{}, err
	}
	funder, err := fr.OpStack.popAddress()
	if err != nil {
		return Address{}, U256{}, err
	}
	return funder, amount, nil
}

func createContract(ctx *Context, fr *Frame, code *Contract, fields []Val, codeHash common.Hash, funder Address, amount U256) error {
	if len(fields) != len(code.Fields) {
		return fmt.Errorf("%w: want %d fields, got %d", ErrInvalidMethodArgLength, len(code.Fields), len(fields))
	}
	for i, f := range fields {
		if f.Type() != code.Fields[i] {
			return fmt.Errorf("%w: field %d want %s got %s", ErrInvalidMethodParamsType, i, code.Fields[i], f.Type())
		}
	}
	id := ctx.nextContractID()
	addr := ContractAddress(id)
	if !amount.IsZero() {
		if err := transferAlf(ctx, fr, funder, addr, amount); err != nil {
			return err
		}
	}
	obj := &StatefulContractObj{
		ContractObj: ContractObj{Code: code, Fields: fields},
		Address:     addr,
		CodeHash:    codeHash,
	}
	if err := ctx.World.CreateContract(id, obj); err != nil {
		return err
	}
	return fr.OpStack.push(NewAddressVal(addr))
}

// opDestroyContract requires the current frame to be a deployed
// contract, refunds its tracked ALPH balance to the given recipient,
// and removes it from the WorldState — SELFDESTRUCT generalized from a
// single native balance to this VM's BalanceState.
func opDestroyContract(ctx *Context, fr *Frame, in Instr) error {
	recipient, err := fr.OpStack.popAddress()
	if err != nil {
		return err
	}
	if !fr.IsContractFrame() {
		return ErrExpectAContract
	}
	id := fr.Address.Script.ContractID
	if bal, err := fr.balance().AlfRemaining(fr.Address); err == nil && !bal.IsZero() {
		if err := transferAlf(ctx, fr, fr.Address, recipient, bal); err != nil {
			return err
		}
	}
	return ctx.World.DestroyContract(id)
}

func opSelfAddress(ctx *Context, fr *Frame, in Instr) error {
	if !fr.IsStateful {
		return ErrExpectAContract
	}
	return fr.OpStack.push(NewAddressVal(fr.Address))
}

func opSelfContractId(ctx *Context, fr *Frame, in Instr) error {
	if !fr.IsContractFrame() {
		return ErrExpectAContract
	}
	return fr.OpStack.push(NewByteVec(fr.Address.Script.ContractID.Bytes()))
}

// opIssueToken mints a fresh token whose id equals the issuing
// contract's own contract id — Alephium's convention that a token's
// identity IS the contract that created it — and credits the issuing
// contract's output balance, enforcing the at-most-once-per-transaction
// rule resolved in DESIGN.md's Open Question #2.
func opIssueToken(ctx *Context, fr *Frame, in Instr) error {
	amount, err := fr.OpStack.popU256()
	if err != nil {
		return err
	}
	if !fr.IsContractFrame() {
		return ErrExpectAContract
	}
	if err := ctx.tryIssueToken(); err != nil {
		return err
	}
	tokenID := fr.Address.Script.ContractID
	return ctx.World.OutputBalances().AddToken(fr.Address, tokenID, amount)
}

func opCallerAddress(ctx *Context, fr *Frame, in Instr) error {
	caller, err := callerContractFrame(fr)
	if err != nil {
		return err
	}
	return fr.OpStack.push(NewAddressVal(caller.Address))
}

func opCallerCodeHash(ctx *Context, fr *Frame, in Instr) error {
	caller, err := callerContractFrame(fr)
	if err != nil {
		return err
	}
	return fr.OpStack.push(NewByteVec(caller.CodeHash.Bytes()))
}

func opContractCodeHash(ctx *Context, fr *Frame, in Instr) error {
	if !fr.IsContractFrame() {
		return ErrExpectAContract
	}
	return fr.OpStack.push(NewByteVec(fr.CodeHash.Bytes()))
}

// callerContractFrame resolves CallerAddress/CallerCodeHash's implicit
// operand, failing ExpectACaller if there is no caller or the caller
// is a script rather than a deployed contract, per spec.md §4.5.
func callerContractFrame(fr *Frame) (*Frame, error) {
	if fr.Caller == nil || !fr.Caller.IsContractFrame() {
		return nil, ErrExpectACaller
	}
	return fr.Caller, nil
}
