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

import "github.com/holiman/uint256"

// U256 is a 256-bit unsigned integer. It is a thin value wrapper over
// holiman/uint256.Int — the same library the teacher's instructions.go
// uses for every EVM stack word (opAdd/opMul/opSHL/... all operate
// directly on *uint256.Int). Checked operations return (result, ok);
// ok is false on overflow, underflow, or division by zero, matching
// spec.md §3's "checked arithmetic ... return 'none' on overflow".
type U256 struct {
	v uint256.Int
}

// NewU256FromUint64 builds a U256 from a machine word.
func NewU256FromUint64(x uint64) U256 {
	var u U256
	u.v.SetUint64(x)
	return u
}

// NewU256FromBytes builds a U256 from big-endian bytes, matching the
// varint payload grammar of spec.md §4.1.
func NewU256FromBytes(b []byte) U256 {
	var u U256
	u.v.SetBytes(b)
	return u
}

func (u U256) Bytes32() [32]byte { return u.v.Bytes32() }
func (u U256) IsZero() bool      { return u.v.IsZero() }
func (u U256) Uint64() uint64    { return u.v.Uint64() }
func (u U256) String() string    { return u.v.Dec() }
func (u U256) Eq(o U256) bool    { return u.v.Eq(&o.v) }
func (u U256) Lt(o U256) bool    { return u.v.Lt(&o.v) }
func (u U256) Gt(o U256) bool    { return u.v.Gt(&o.v) }
func (u U256) Cmp(o U256) int    { return u.v.Cmp(&o.v) }

// CheckedAdd returns (a+b, true) unless it overflows 2^256.
func (a U256) CheckedAdd(b U256) (U256, bool) {
	var r U256
	_, overflow := r.v.AddOverflow(&a.v, &b.v)
	return r, !overflow
}

// CheckedSub returns (a-b, true) unless it underflows below zero.
func (a U256) CheckedSub(b U256) (U256, bool) {
	var r U256
	_, underflow := r.v.SubOverflow(&a.v, &b.v)
	return r, !underflow
}

// CheckedMul returns (a*b, true) unless it overflows 2^256.
func (a U256) CheckedMul(b U256) (U256, bool) {
	var r U256
	_, overflow := r.v.MulOverflow(&a.v, &b.v)
	return r, !overflow
}

// CheckedDiv returns (a/b, true) unless b is zero.
func (a U256) CheckedDiv(b U256) (U256, bool) {
	if b.IsZero() {
		return U256{}, false
	}
	var r U256
	r.v.Div(&a.v, &b.v)
	return r, true
}

// CheckedMod returns (a%b, true) unless b is zero.
func (a U256) CheckedMod(b U256) (U256, bool) {
	if b.IsZero() {
		return U256{}, false
	}
	var r U256
	r.v.Mod(&a.v, &b.v)
	return r, true
}

// ModAdd/ModSub/ModMul wrap at 2^256, per spec.md §3 ("U256 also
// supports modular add/sub/mul (wrap at 2^256)").
func (a U256) ModAdd(b U256) U256 {
	var r U256
	r.v.Add(&a.v, &b.v)
	return r
}

func (a U256) ModSub(b U256) U256 {
	var r U256
	r.v.Sub(&a.v, &b.v)
	return r
}

func (a U256) ModMul(b U256) U256 {
	var r U256
	r.v.Mul(&a.v, &b.v)
	return r
}

func (a U256) And(b U256) U256 {
	var r U256
	r.v.And(&a.v, &b.v)
	return r
}

func (a U256) Or(b U256) U256 {
	var r U256
	r.v.Or(&a.v, &b.v)
	return r
}

func (a U256) Xor(b U256) U256 {
	var r U256
	r.v.Xor(&a.v, &b.v)
	return r
}

// Shl and Shr: "RHS >= 256 yields 0", per spec.md §3 and §8's boundary
// property U256SHL(x,k>=256)==0.
func (a U256) Shl(shift U256) U256 {
	var r U256
	if shift.v.LtUint64(256) {
		r.v.Lsh(&a.v, uint(shift.v.Uint64()))
	}
	return r
}

func (a U256) Shr(shift U256) U256 {
	var r U256
	if shift.v.LtUint64(256) {
		r.v.Rsh(&a.v, uint(shift.v.Uint64()))
	}
	return r
}

// ToI256 fails if the value's top bit is set, i.e. > 2^255-1, per
// spec.md §4.3 ("U256ToI256 fails if value > 2^255-1").
func (a U256) ToI256() (I256, bool) {
	var signBit uint256.Int
	signBit.SetOne()
	signBit.Lsh(&signBit, 255)
	if a.v.Cmp(&signBit) >= 0 {
		return I256{}, false
	}
	return I256{v: a.v}, true
}
