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

func simpleAddMethod() Method {
	return Method{
		LocalsType: []ValType{TU256, TU256},
		ReturnType: []ValType{TU256},
		IsPublic:   true,
		IsPayable:  false,
		Instrs: []Instr{
			{Op: LoadLocal, ByteIndex: 0},
			{Op: LoadLocal, ByteIndex: 1},
			{Op: U256Add},
			{Op: Return},
		},
	}
}

func TestMethodCheckArgs(t *testing.T) {
	m := simpleAddMethod()
	good := []Val{NewU256(NewU256FromUint64(1)), NewU256(NewU256FromUint64(2))}
	if err := m.CheckArgs(good); err != nil {
		t.Fatalf("valid args must pass: %v", err)
	}

	if err := m.CheckArgs(good[:1]); err == nil {
		t.Fatalf("wrong arg count must fail")
	}

	wrongType := []Val{NewBool(true), NewU256(NewU256FromUint64(2))}
	if err := m.CheckArgs(wrongType); err == nil {
		t.Fatalf("mismatched arg type must fail")
	}
}

func TestEncodeDecodeMethodRoundTrip(t *testing.T) {
	m := simpleAddMethod()
	b := EncodeMethod(&m)
	decoded, rest, err := DecodeMethod(b, false)
	if err != nil {
		t.Fatal(err)
	}
	if len(rest) != 0 {
		t.Fatalf("unexpected trailing bytes: %x", rest)
	}
	if !decoded.IsPublic || decoded.IsPayable {
		t.Fatalf("flags round trip mismatch: %+v", decoded)
	}
	if len(decoded.Instrs) != len(m.Instrs) {
		t.Fatalf("want %d instrs, got %d", len(m.Instrs), len(decoded.Instrs))
	}
}

func TestEncodeDecodeContractRoundTrip(t *testing.T) {
	m := simpleAddMethod()
	c := &Contract{
		Kind:    KindStatelessScript,
		Fields:  nil,
		Methods: []Method{m},
	}
	b := c.Encode()
	decoded, err := DecodeContract(b)
	if err != nil {
		t.Fatal(err)
	}
	if decoded.Kind != c.Kind || len(decoded.Methods) != 1 {
		t.Fatalf("round trip mismatch: %+v", decoded)
	}
	if decoded.IsStateful() {
		t.Fatalf("a stateless script must report IsStateful()==false")
	}
}

func TestDecodeContractRejectsTrailingBytes(t *testing.T) {
	c := &Contract{Kind: KindStatelessScript, Methods: []Method{simpleAddMethod()}}
	b := append(c.Encode(), 0xff)
	if _, err := DecodeContract(b); err == nil {
		t.Fatalf("trailing bytes after the last method must fail decode")
	}
}

func TestCodeHashDeterministic(t *testing.T) {
	code := []byte{1, 2, 3}
	if CodeHash(code) != CodeHash(code) {
		t.Fatalf("CodeHash must be deterministic")
	}
	if CodeHash(code) == CodeHash([]byte{1, 2, 4}) {
		t.Fatalf("different code must hash differently")
	}
}
