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

	"github.com/alephium-chain/alph-vm/common"
)

func TestValEqual(t *testing.T) {
	a := NewU256(NewU256FromUint64(7))
	b := NewU256(NewU256FromUint64(7))
	c := NewU256(NewU256FromUint64(8))
	if !a.Equal(b) {
		t.Fatalf("equal U256 values must compare equal")
	}
	if a.Equal(c) {
		t.Fatalf("distinct U256 values must not compare equal")
	}
	if a.Equal(NewBool(true)) {
		t.Fatalf("values of different types must never compare equal")
	}
}

func TestValAsAccessorsRejectMismatchedType(t *testing.T) {
	v := NewBool(true)
	if _, ok := v.AsU256(); ok {
		t.Fatalf("AsU256 on a Bool must report ok=false")
	}
	if b, ok := v.AsBool(); !ok || !b {
		t.Fatalf("AsBool on a Bool must report ok=true, true")
	}
}

func TestEncodeDecodeValRoundTrip(t *testing.T) {
	cases := []Val{
		NewBool(true),
		NewBool(false),
		NewI256(NewI256FromInt64(-12345)),
		NewU256(NewU256FromUint64(999999)),
		NewByteVec([]byte("alephium")),
		NewAddressVal(ContractAddress(hashOfString("contract-id"))),
	}
	for i, v := range cases {
		encoded := EncodeVal(v)
		decoded, rest, err := DecodeVal(encoded)
		if err != nil {
			t.Fatalf("case %d: decode error: %v", i, err)
		}
		if len(rest) != 0 {
			t.Fatalf("case %d: unexpected trailing bytes: %x", i, rest)
		}
		if !decoded.Equal(v) {
			t.Fatalf("case %d: round trip mismatch: want %v got %v", i, v, decoded)
		}
	}
}

func TestEncodeDecodeValsRoundTrip(t *testing.T) {
	vals := []Val{
		NewBool(true),
		NewU256(NewU256FromUint64(42)),
		NewByteVec([]byte{1, 2, 3}),
	}
	encoded := EncodeVals(vals)
	decoded, rest, err := DecodeVals(encoded)
	if err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if len(rest) != 0 {
		t.Fatalf("unexpected trailing bytes: %x", rest)
	}
	if len(decoded) != len(vals) {
		t.Fatalf("want %d vals, got %d", len(vals), len(decoded))
	}
	for i := range vals {
		if !decoded[i].Equal(vals[i]) {
			t.Fatalf("val %d mismatch: want %v got %v", i, vals[i], decoded[i])
		}
	}
}

func TestDecodeValShortInput(t *testing.T) {
	if _, _, err := DecodeVal(nil); err == nil {
		t.Fatalf("decoding empty input must fail")
	}
}

func hashOfString(s string) common.Hash {
	return common.Hash(hashBlake2b([]byte(s)))
}
