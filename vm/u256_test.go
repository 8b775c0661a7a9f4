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
	"math"
	"testing"
)

func TestU256CheckedAddOverflow(t *testing.T) {
	max := NewU256FromUint64(math.MaxUint64)
	max, _ = max.CheckedMul(max) // well within range, just a big number
	one := NewU256FromUint64(1)

	if _, ok := one.CheckedAdd(NewU256FromUint64(1)); !ok {
		t.Fatalf("1+1 must not overflow")
	}

	var top U256
	top.v.SetAllOne() // 2^256 - 1
	if _, ok := top.CheckedAdd(one); ok {
		t.Fatalf("max+1 must overflow")
	}
}

func TestU256CheckedSubUnderflow(t *testing.T) {
	zero := NewU256FromUint64(0)
	one := NewU256FromUint64(1)
	if _, ok := zero.CheckedSub(one); ok {
		t.Fatalf("0-1 must underflow")
	}
	if r, ok := NewU256FromUint64(5).CheckedSub(NewU256FromUint64(3)); !ok || r.Uint64() != 2 {
		t.Fatalf("5-3 want 2 ok=true, got %v ok=%v", r, ok)
	}
}

func TestU256CheckedDivModByZero(t *testing.T) {
	ten := NewU256FromUint64(10)
	zero := NewU256FromUint64(0)
	if _, ok := ten.CheckedDiv(zero); ok {
		t.Fatalf("10/0 must fail")
	}
	if _, ok := ten.CheckedMod(zero); ok {
		t.Fatalf("10%%0 must fail")
	}
	if r, ok := ten.CheckedDiv(NewU256FromUint64(3)); !ok || r.Uint64() != 3 {
		t.Fatalf("10/3 want 3, got %v ok=%v", r, ok)
	}
}

func TestU256ShiftBoundary(t *testing.T) {
	one := NewU256FromUint64(1)
	if r := one.Shl(NewU256FromUint64(256)); !r.IsZero() {
		t.Fatalf("shl by >=256 must yield 0, got %s", r)
	}
	if r := one.Shr(NewU256FromUint64(256)); !r.IsZero() {
		t.Fatalf("shr by >=256 must yield 0, got %s", r)
	}
	if r := NewU256FromUint64(1).Shl(NewU256FromUint64(4)); r.Uint64() != 16 {
		t.Fatalf("1<<4 want 16, got %s", r)
	}
}

func TestU256ToI256Boundary(t *testing.T) {
	maxPositive := NewU256FromUint64(1)
	maxPositive = maxPositive.Shl(NewU256FromUint64(255))
	maxPositive, _ = maxPositive.CheckedSub(NewU256FromUint64(1)) // 2^255 - 1
	if _, ok := maxPositive.ToI256(); !ok {
		t.Fatalf("2^255-1 must convert to I256")
	}

	signBit := NewU256FromUint64(1).Shl(NewU256FromUint64(255)) // 2^255
	if _, ok := signBit.ToI256(); ok {
		t.Fatalf("2^255 must fail U256ToI256")
	}
}

func TestU256ModArithmeticWraps(t *testing.T) {
	var top U256
	top.v.SetAllOne() // 2^256 - 1
	r := top.ModAdd(NewU256FromUint64(2))
	if r.Uint64() != 1 {
		t.Fatalf("(2^256-1)+2 mod 2^256 want 1, got %s", r)
	}
}
