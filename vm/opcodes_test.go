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

import "testing"

func TestOpCodeStringKnownAndUnknown(t *testing.T) {
	if got := I256Add.String(); got != "I256Add" {
		t.Fatalf("want I256Add, got %s", got)
	}
	unknown := OpCode(200)
	if got := unknown.String(); got != "UNKNOWN(0xc8)" {
		t.Fatalf("want UNKNOWN(0xc8), got %s", got)
	}
}

func TestOpCodeIsStateless(t *testing.T) {
	if !U256Add.IsStateless() {
		t.Fatalf("U256Add must be usable from a stateless script")
	}
	if LoadField.IsStateless() {
		t.Fatalf("LoadField is stateful-only")
	}
}

func TestOpCodeIsAssigned(t *testing.T) {
	if !Return.IsAssigned() {
		t.Fatalf("Return must be assigned")
	}
	if OpCode(250).IsAssigned() {
		t.Fatalf("0xfa has no assigned instruction")
	}
}

func TestIsValidOpcodeStatelessVsStateful(t *testing.T) {
	if !IsValidOpcode(byte(U256Add), false) {
		t.Fatalf("U256Add must decode in stateless mode")
	}
	if IsValidOpcode(byte(LoadField), false) {
		t.Fatalf("LoadField must not decode in stateless mode")
	}
	if !IsValidOpcode(byte(LoadField), true) {
		t.Fatalf("LoadField must decode in stateful mode")
	}
	if IsValidOpcode(byte(250), true) {
		t.Fatalf("an unassigned byte must never decode, in either mode")
	}
}

func TestFixedOpcodeAssignmentsStayPinned(t *testing.T) {
	fixed := map[OpCode]byte{
		CallLocal:    0,
		CallExternal: 1,
		Return:       2,
		LoadField:    160,
		StoreField:   161,
	}
	for op, want := range fixed {
		if byte(op) != want {
			t.Fatalf("opcode %s must stay pinned at %d, got %d", op, want, byte(op))
		}
	}
}
