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
	"testing"
)

func TestEncodeDecodeInstrSimple(t *testing.T) {
	in := Instr{Op: I256Add}
	b, err := EncodeInstr(in)
	if err != nil {
		t.Fatal(err)
	}
	decoded, rest, err := DecodeInstr(b, false)
	if err != nil {
		t.Fatal(err)
	}
	if len(rest) != 0 || decoded.Op != I256Add {
		t.Fatalf("want I256Add with no trailing bytes, got %+v rest=%x", decoded, rest)
	}
}

func TestEncodeDecodeInstrByteIndex(t *testing.T) {
	in := Instr{Op: LoadLocal, ByteIndex: 7}
	b, err := EncodeInstr(in)
	if err != nil {
		t.Fatal(err)
	}
	decoded, _, err := DecodeInstr(b, false)
	if err != nil {
		t.Fatal(err)
	}
	if decoded.ByteIndex != 7 {
		t.Fatalf("want ByteIndex 7, got %d", decoded.ByteIndex)
	}
}

func TestEncodeDecodeInstrJumpOffset(t *testing.T) {
	in := Instr{Op: JumpOp, Offset: -100}
	b, err := EncodeInstr(in)
	if err != nil {
		t.Fatal(err)
	}
	decoded, _, err := DecodeInstr(b, false)
	if err != nil {
		t.Fatal(err)
	}
	if decoded.Offset != -100 {
		t.Fatalf("want Offset -100, got %d", decoded.Offset)
	}
}

func TestEncodeInstrJumpOffsetOutOfRange(t *testing.T) {
	in := Instr{Op: JumpOp, Offset: MaxJumpOffset + 1}
	if _, err := EncodeInstr(in); err == nil {
		t.Fatalf("offset beyond MaxJumpOffset must fail to encode")
	}
}

func TestDecodeInstrRejectsStatefulOnlyInStatelessMode(t *testing.T) {
	b := []byte{byte(LoadField), 0}
	if _, _, err := DecodeInstr(b, false); err == nil {
		t.Fatalf("LoadField must be rejected under the stateless table")
	}
	if _, _, err := DecodeInstr(b, true); err != nil {
		t.Fatalf("LoadField must decode fine under the stateful table: %v", err)
	}
}

func TestEncodeDecodeInstrsRoundTrip(t *testing.T) {
	instrs := []Instr{
		{Op: I256Const0},
		{Op: I256Const1},
		{Op: I256Add},
		{Op: Return},
	}
	b, err := EncodeInstrs(instrs)
	if err != nil {
		t.Fatal(err)
	}
	decoded, rest, err := DecodeInstrs(b, uint64(len(instrs)), false)
	if err != nil {
		t.Fatal(err)
	}
	if len(rest) != 0 {
		t.Fatalf("unexpected trailing bytes: %x", rest)
	}
	for i, in := range instrs {
		if decoded[i].Op != in.Op {
			t.Fatalf("instr %d: want op %s got %s", i, in.Op, decoded[i].Op)
		}
	}
}

func TestDisassembleRendersOneLinePerInstr(t *testing.T) {
	instrs := []Instr{{Op: ConstTrue}, {Op: Return}}
	out := Disassemble(instrs)
	if out == "" {
		t.Fatalf("disassembly must not be empty")
	}
	lines := 0
	for _, c := range out {
		if c == '\n' {
			lines++
		}
	}
	if lines != len(instrs) {
		t.Fatalf("want %d lines, got %d in %q", len(instrs), lines, out)
	}
}
