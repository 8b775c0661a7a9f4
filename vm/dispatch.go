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

// opFunc executes one instruction against the active frame's operand
// stack and the transaction Context. It mirrors the teacher's
// executionFunc (core/vm/interpreter.go: func(pc *uint64, interpreter
// *EVMInterpreter, scope *ScopeContext) ([]byte, error)), minus the
// return-bytes slot — Alephium opcodes communicate only through the
// operand stack or by returning an error.
//
// CallLocal, CallExternal, and Return are handled specially by the
// driver rather than through this table, since they mutate the frame
// stack itself; every other opcode, stateless or stateful, is here.
type opFunc func(ctx *Context, fr *Frame, in Instr) error

var opTable [256]opFunc

// registerOp is called from each instructions_*.go file's init(), the
// same "one file owns one slice of the jump table" split the teacher
// uses across instructions.go/instructions_acl.go/etc. Double
// registration is a programming error and panics at init time, not a
// runtime condition.
func registerOp(op OpCode, fn opFunc) {
	if opTable[op] != nil {
		panic("vm: opcode already registered: " + op.String())
	}
	opTable[op] = fn
}

// dispatch charges op's static gas cost, then runs its opFunc if one
// is registered, per spec.md §4.7 ("gas is charged before side
// effects"). CallLocal/CallExternal/Return never reach here.
func dispatch(ctx *Context, fr *Frame, in Instr) error {
	info, ok := opcodeInfo[in.Op]
	if !ok {
		return ErrInvalidCode
	}
	if err := ctx.chargeGas(uint64(info.gas)); err != nil {
		return err
	}
	fn := opTable[in.Op]
	if fn == nil {
		return ErrInvalidCode
	}
	return fn(ctx, fr, in)
}
