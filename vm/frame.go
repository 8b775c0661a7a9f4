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

// Frame is one active invocation record, per spec.md §3. Frames form a
// strict stack owned by the driver (vm/context.go); none escape across
// frame boundaries: the driver (vm/driver.go) pushes a callee's return
// values onto the caller's operand stack, matching the "Frame
// ownership" design note of spec.md §9.
type Frame struct {
	Ctx    *Context
	Obj    *ContractObj
	Method *Method

	// Address/CodeHash are the zero value for a stateless frame
	// (scripts have no on-chain identity); populated for a frame
	// executing a StatefulContract's method.
	Address  Address
	CodeHash common.Hash
	IsStateful bool

	Locals   []Val
	OpStack  *Stack
	PC       int

	// ReturnTo is an optional return-value callback. The driver never
	// sets or calls it: runFrame hands a callee's return values back to
	// execCallLocal/execCallExternal, which push them onto the caller's
	// operand stack, and Run returns the root frame's values.
	ReturnTo func([]Val) error

	// CalleeBalance is this frame's isolated asset pool when it was
	// entered via CallExternal; a CallLocal callee inherits its caller's
	// pool. It is nil for the root frame, which uses the transaction
	// BalanceState (Ctx.Balance) directly.
	CalleeBalance *BalanceState

	Caller *Frame // nil for the root frame
}

func newFrame(ctx *Context, obj *ContractObj, method *Method, locals []Val, addr Address, codeHash common.Hash, isStateful bool, caller *Frame, returnTo func([]Val) error) *Frame {
	return &Frame{
		Ctx:        ctx,
		Obj:        obj,
		Method:     method,
		Address:    addr,
		CodeHash:   codeHash,
		IsStateful: isStateful,
		Locals:     locals,
		OpStack:    newStack(),
		PC:         0,
		ReturnTo:   returnTo,
		Caller:     caller,
	}
}

// GetLocal/SetLocal: OutOfBound if i >= locals length, per spec.md §4.2.
func (f *Frame) GetLocal(i int) (Val, error) {
	if i < 0 || i >= len(f.Locals) {
		return Val{}, ErrOutOfBound
	}
	return f.Locals[i], nil
}

func (f *Frame) SetLocal(i int, v Val) error {
	if i < 0 || i >= len(f.Locals) {
		return ErrOutOfBound
	}
	f.Locals[i] = v
	return nil
}

// GetField/SetField: stateful only; stateless frames reject, per
// spec.md §4.2.
func (f *Frame) GetField(i int) (Val, error) {
	if !f.IsStateful {
		return Val{}, ErrNonPayableFrame
	}
	if i < 0 || i >= len(f.Obj.Fields) {
		return Val{}, ErrOutOfBound
	}
	return f.Obj.Fields[i], nil
}

func (f *Frame) SetField(i int, v Val) error {
	if !f.IsStateful {
		return ErrNonPayableFrame
	}
	if i < 0 || i >= len(f.Obj.Fields) {
		return ErrOutOfBound
	}
	f.Obj.Fields[i] = v
	return nil
}

// OffsetPC moves pc by delta and fails InvalidPC if the resulting
// address is not the start of an instruction, per spec.md §4.2.
func (f *Frame) OffsetPC(delta int32) error {
	next := f.PC + int(delta)
	if next < 0 || next > len(f.Method.Instrs) {
		return ErrInvalidPC
	}
	f.PC = next
	return nil
}

// popReturnValues pops exactly method.return_type.length values from
// the operand stack and checks each against the declared return type;
// the driver then hands them to the caller, per spec.md §4.2's Return
// semantics.
func (f *Frame) popReturnValues() ([]Val, error) {
	n := len(f.Method.ReturnType)
	vals, err := f.OpStack.popN(n)
	if err != nil {
		return nil, err
	}
	for i, v := range vals {
		if v.Type() != f.Method.ReturnType[i] {
			return nil, fmt.Errorf("%w: return slot %d want %s got %s", ErrInvalidType, i, f.Method.ReturnType[i], v.Type())
		}
	}
	return vals, nil
}

// Depth counts this frame's position in the call chain, root = 0.
func (f *Frame) Depth() int {
	d := 0
	for c := f.Caller; c != nil; c = c.Caller {
		d++
	}
	return d
}

// IsContractFrame reports whether this frame executes a deployed
// contract's method rather than a script — spec.md §4.5's
// ExpectACaller check ("CallerAddress only returns a contract address").
func (f *Frame) IsContractFrame() bool {
	return f.IsStateful && !f.Address.Script.ContractID.IsZero()
}

// balance returns the BalanceState asset opcodes should operate
// against: the isolated pool of the CallExternal callee this frame
// runs in (directly or through CallLocal), or the shared transaction
// pool for the root frame and its CallLocal callees.
func (f *Frame) balance() *BalanceState {
	if f.CalleeBalance != nil {
		return f.CalleeBalance
	}
	return f.Ctx.Balance
}
