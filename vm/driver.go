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
	"github.com/alephium-chain/alph-vm/log"
)

// RunState is the coarse lifecycle a transaction's execution passes
// through, per spec.md §4.8 — the VM's analogue of the teacher's
// implicit "has the EVM call tree unwound with or without a revert"
// outcome, made an explicit named type here because Run's caller
// (cmd/alphvm) needs to distinguish Aborted from a Go
// error it should itself retry or log differently.
type RunState int

const (
	StateReady RunState = iota
	StateRunning
	StateDone
	StateAborted
)

func (s RunState) String() string {
	switch s {
	case StateReady:
		return "Ready"
	case StateRunning:
		return "Running"
	case StateDone:
		return "Done"
	case StateAborted:
		return "Aborted"
	default:
		return "Unknown"
	}
}

// Run executes entry.Code.Methods[methodIndex] as the transaction's
// root frame and drives it to completion, per spec.md §4.8. On success
// it returns StateDone with the method's return values; on any
// execution error it returns StateAborted, discarding all side effects
// the caller is responsible for never having committed (the teacher's
// equivalent is the EVM's "state snapshot, revert on error" contract —
// this VM instead asks the caller to stage BalanceState/WorldState
// writes only after Run reports StateDone).
func Run(ctx *Context, entry *ContractObj, methodIndex int, args []Val, addr Address, codeHash common.Hash, isStateful bool) (RunState, []Val, error) {
	if methodIndex < 0 || methodIndex >= len(entry.Code.Methods) {
		return StateAborted, nil, ErrOutOfBound
	}
	method := &entry.Code.Methods[methodIndex]
	if !method.IsPublic {
		return StateAborted, nil, ErrPrivateMethod
	}
	if err := method.CheckArgs(args); err != nil {
		return StateAborted, nil, err
	}
	root := newFrame(ctx, entry, method, args, addr, codeHash, isStateful, nil, nil)
	log.Debug("vm: run start", "gas", ctx.GasRemaining, "stateful", isStateful)
	vals, err := runFrame(ctx, root)
	if err != nil {
		log.Debug("vm: run aborted", "err", err, "gasUsed", ctx.GasUsed())
		return StateAborted, nil, err
	}
	log.Debug("vm: run done", "gasUsed", ctx.GasUsed())
	return StateDone, vals, nil
}

// runFrame executes fr's instruction stream to completion, recursing
// into callee frames for CallLocal/CallExternal the same way the
// teacher's EVM.Call recurses into a fresh Interpreter.Run for every
// CALL-family opcode. It returns the frame's Return values.
func runFrame(ctx *Context, fr *Frame) ([]Val, error) {
	if err := ctx.pushFrame(fr); err != nil {
		return nil, err
	}
	defer ctx.popFrame()

	instrs := fr.Method.Instrs
	for {
		if fr.PC < 0 || fr.PC >= len(instrs) {
			return nil, wrapFrameErr(ctx, fr, ErrInvalidPC, fr.PC)
		}
		in := instrs[fr.PC]
		oldPC := fr.PC

		var err error
		switch in.Op {
		case CallLocal:
			err = ctx.chargeGas(uint64(GasCall))
			if err == nil {
				err = execCallLocal(ctx, fr, in)
			}
		case CallExternal:
			err = ctx.chargeGas(uint64(GasCall))
			if err == nil {
				err = execCallExternal(ctx, fr, in)
			}
		case Return:
			vals, rerr := fr.popReturnValues()
			if rerr != nil {
				return nil, wrapFrameErr(ctx, fr, rerr, oldPC)
			}
			return vals, nil
		default:
			err = dispatch(ctx, fr, in)
		}
		if err != nil {
			return nil, wrapFrameErr(ctx, fr, err, oldPC)
		}
		if fr.PC == oldPC {
			fr.PC++
		}
	}
}

func wrapFrameErr(ctx *Context, fr *Frame, err error, pc int) error {
	op := OpCode(0)
	if pc >= 0 && pc < len(fr.Method.Instrs) {
		op = fr.Method.Instrs[pc].Op
	}
	return newExecError(err, op, pc, fr.Depth())
}

// execCallLocal invokes another method of the same contract/script,
// per spec.md §4.2: same address/codeHash, same shared BalanceState,
// only the operand stack and locals are fresh.
func execCallLocal(ctx *Context, fr *Frame, in Instr) error {
	idx := int(in.ByteIndex)
	if idx < 0 || idx >= len(fr.Obj.Code.Methods) {
		return ErrOutOfBound
	}
	method := &fr.Obj.Code.Methods[idx]
	args, err := fr.OpStack.popN(len(method.LocalsType))
	if err != nil {
		return err
	}
	if err := method.CheckArgs(args); err != nil {
		return err
	}
	callee := newFrame(ctx, fr.Obj, method, args, fr.Address, fr.CodeHash, fr.IsStateful, fr, nil)
	callee.CalleeBalance = fr.CalleeBalance
	vals, err := runFrame(ctx, callee)
	if err != nil {
		return err
	}
	for _, v := range vals {
		if err := fr.OpStack.push(v); err != nil {
			return err
		}
	}
	return nil
}

// execCallExternal invokes a public method on a deployed contract
// looked up by address, per spec.md §4.2: the callee gets an isolated
// BalanceState, seeded for a payable method only from what the caller
// staged via ApproveAlf/ApproveToken (a non-payable callee's pool stays
// empty), and any leftover is refunded to the caller on clean return.
func execCallExternal(ctx *Context, fr *Frame, in Instr) error {
	targetAddr, err := fr.OpStack.popAddress()
	if err != nil {
		return err
	}
	id := targetAddr.Script.ContractID
	if id.IsZero() {
		return ErrContractNotFound
	}
	target, err := ctx.World.LoadContract(id)
	if err != nil {
		return err
	}
	idx := int(in.ByteIndex)
	if idx < 0 || idx >= len(target.Code.Methods) {
		return ErrOutOfBound
	}
	method := &target.Code.Methods[idx]
	if !method.IsPublic {
		return ErrPrivateMethod
	}
	args, err := fr.OpStack.popN(len(method.LocalsType))
	if err != nil {
		return err
	}
	if err := method.CheckArgs(args); err != nil {
		return err
	}

	calleeBalance := NewBalanceState()
	if method.IsPayable {
		alf, tok := fr.balance().TakeAllApproved()
		for key, amt := range alf {
			addr, perr := ParseAddress(key)
			if perr != nil {
				return fmt.Errorf("%w: %v", ErrInvalidType, perr)
			}
			if err := calleeBalance.AddAlf(addr, amt); err != nil {
				return err
			}
		}
		for key, amt := range tok {
			addr, perr := ParseAddress(key.Addr)
			if perr != nil {
				return fmt.Errorf("%w: %v", ErrInvalidType, perr)
			}
			if err := calleeBalance.AddToken(addr, key.TokenID, amt); err != nil {
				return err
			}
		}
	}

	callee := newFrame(ctx, &target.ContractObj, method, args, targetAddr, target.CodeHash, true, fr, nil)
	callee.CalleeBalance = calleeBalance

	vals, err := runFrame(ctx, callee)
	if err != nil {
		return err
	}

	if calleeBalance != nil {
		leftoverAlf, leftoverTok := calleeBalance.DrainRemaining()
		for key, amt := range leftoverAlf {
			addr, perr := ParseAddress(key)
			if perr != nil {
				return fmt.Errorf("%w: %v", ErrInvalidType, perr)
			}
			if err := fr.balance().RefundApprovedAlf(addr, amt); err != nil {
				return err
			}
		}
		for key, amt := range leftoverTok {
			addr, perr := ParseAddress(key.Addr)
			if perr != nil {
				return fmt.Errorf("%w: %v", ErrInvalidType, perr)
			}
			if err := fr.balance().RefundApprovedToken(addr, key.TokenID, amt); err != nil {
				return err
			}
		}
	}

	for _, v := range vals {
		if err := fr.OpStack.push(v); err != nil {
			return err
		}
	}
	return nil
}
