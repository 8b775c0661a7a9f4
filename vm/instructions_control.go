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

// Jump/IfTrue/IfFalse/Assert, per spec.md §4.2 — the analogue of the
// teacher's opJump/opJumpi (core/vm/instructions.go), minus the
// destination-must-be-JUMPDEST check: Alephium has no jump-destination
// table, only OffsetPC's instruction-boundary check. CallLocal,
// CallExternal, and Return are not here; they mutate the frame stack
// and are handled directly by vm/driver.go's Run loop.

func init() {
	registerOp(JumpOp, opJump)
	registerOp(IfTrue, opIfTrue)
	registerOp(IfFalse, opIfFalse)
	registerOp(Assert, opAssert)
}

func opJump(ctx *Context, fr *Frame, in Instr) error {
	return fr.OffsetPC(in.Offset)
}

func opIfTrue(ctx *Context, fr *Frame, in Instr) error {
	cond, err := fr.OpStack.popBool()
	if err != nil {
		return err
	}
	if cond {
		return fr.OffsetPC(in.Offset)
	}
	return nil
}

func opIfFalse(ctx *Context, fr *Frame, in Instr) error {
	cond, err := fr.OpStack.popBool()
	if err != nil {
		return err
	}
	if !cond {
		return fr.OffsetPC(in.Offset)
	}
	return nil
}

func opAssert(ctx *Context, fr *Frame, in Instr) error {
	cond, err := fr.OpStack.popBool()
	if err != nil {
		return err
	}
	if !cond {
		return ErrAssertionFailed
	}
	return nil
}
