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

func TestI256SignAndCompare(t *testing.T) {
	neg := NewI256FromInt64(-5)
	pos := NewI256FromInt64(5)
	zero := NewI256FromInt64(0)

	if !neg.IsNegative() || neg.Sign() != -1 {
		t.Fatalf("-5 must be negative, sign -1")
	}
	if pos.IsNegative() || pos.Sign() != 1 {
		t.Fatalf("5 must be non-negative, sign 1")
	}
	if zero.Sign() != 0 {
		t.Fatalf("0 must have sign 0")
	}
	if neg.Cmp(pos) >= 0 {
		t.Fatalf("-5 must compare less than 5")
	}
}

func TestI256CheckedAddOverflow(t *testing.T) {
	if _, ok := NewI256FromInt64(3).CheckedAdd(NewI256FromInt64(4)); !ok {
		t.Fatalf("3+4 must not overflow")
	}
	if _, ok := i256Min2().CheckedAdd(NewI256FromInt64(-1)); ok {
		t.Fatalf("I256::MIN + -1 must overflow")
	}
	if _, ok := i256Min2().CheckedSub(NewI256FromInt64(1)); ok {
		t.Fatalf("I256::MIN - 1 must overflow")
	}
}

func TestI256DivMinByNegOne(t *testing.T) {
	if _, ok := i256Min2().CheckedDiv(NewI256FromInt64(-1)); ok {
		t.Fatalf("I256::MIN / -1 must fail per the signed-overflow edge case")
	}
	if _, ok := NewI256FromInt64(10).CheckedDiv(NewI256FromInt64(0)); ok {
		t.Fatalf("10/0 must fail")
	}
	r, ok := NewI256FromInt64(-10).CheckedDiv(NewI256FromInt64(3))
	if !ok || r.String() != "-3" {
		t.Fatalf("-10/3 want -3, got %s ok=%v", r, ok)
	}
}

func TestI256MulRoundTrip(t *testing.T) {
	r, ok := NewI256FromInt64(-7).CheckedMul(NewI256FromInt64(6))
	if !ok || r.String() != "-42" {
		t.Fatalf("-7*6 want -42, got %s ok=%v", r, ok)
	}
}

func TestI256ToU256Conversion(t *testing.T) {
	if _, ok := NewI256FromInt64(-1).ToU256(); ok {
		t.Fatalf("-1 must fail I256ToU256")
	}
	u, ok := NewI256FromInt64(42).ToU256()
	if !ok || u.Uint64() != 42 {
		t.Fatalf("42 want 42, got %v ok=%v", u, ok)
	}
}

// i256Min2 mirrors the package-private i256Min constant as an I256 value.
func i256Min2() I256 {
	return I256{v: i256Min}
}
