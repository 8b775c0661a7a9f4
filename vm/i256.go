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

// I256 is a 256-bit signed integer, stored two's-complement in the same
// uint256.Int word U256 uses — the same representation the teacher's
// opSdiv/opSmod/opSgt/opSlt operate on directly.
type I256 struct {
	v uint256.Int
}

var i256Min = func() uint256.Int {
	var v uint256.Int
	v.SetOne()
	v.Lsh(&v, 255) // 2^255, the two's-complement bit pattern for I256::MIN
	return v
}()

var negOne = func() uint256.Int {
	var v uint256.Int
	v.SetAllOne()
	return v
}()

func NewI256FromInt64(x int64) I256 {
	var i I256
	if x < 0 {
		i.v.SetUint64(uint64(-x))
		i.v.Neg(&i.v)
	} else {
		i.v.SetUint64(uint64(x))
	}
	return i
}

// NewI256FromBytes interprets b as a big-endian two's-complement payload
// per spec.md §4.1's "I256Const/U256Const: big-endian variable-length
// integer" — the sign is carried in the encoded value itself (§6).
func NewI256FromBytes(b []byte) I256 {
	var i I256
	i.v.SetBytes(b)
	return i
}

// sign returns -1/0/1 interpreting v as two's-complement, by testing
// bit 255 directly rather than assuming a signed Sign() on the
// underlying unsigned word type.
func sign(v uint256.Int) int {
	if v.IsZero() {
		return 0
	}
	if signBitSet(v) {
		return -1
	}
	return 1
}

func signBitSet(v uint256.Int) bool {
	return v.Cmp(&i256Min) >= 0
}

func (i I256) IsNegative() bool { return signBitSet(i.v) }
func (i I256) Sign() int        { return sign(i.v) }
func (i I256) Eq(o I256) bool   { return i.v.Eq(&o.v) }

// String renders i in signed decimal.
func (i I256) String() string {
	if i.IsNegative() {
		var m uint256.Int
		m.Neg(&i.v)
		return "-" + m.ToBig().String()
	}
	return i.v.ToBig().String()
}

func (a I256) Cmp(b I256) int {
	as, bs := a.Sign(), b.Sign()
	switch {
	case as < 0 && bs >= 0:
		return -1
	case as >= 0 && bs < 0:
		return 1
	default:
		return a.v.Cmp(&b.v)
	}
}

func (a I256) CheckedAdd(b I256) (I256, bool) {
	r := I256{}
	r.v.Add(&a.v, &b.v)
	if overflowsI256Add(a.v, b.v, r.v) {
		return I256{}, false
	}
	return r, true
}

func (a I256) CheckedSub(b I256) (I256, bool) {
	r := I256{}
	r.v.Sub(&a.v, &b.v)
	if overflowsI256Sub(a.v, b.v, r.v) {
		return I256{}, false
	}
	return r, true
}

func (a I256) CheckedMul(b I256) (I256, bool) {
	if a.v.IsZero() || b.v.IsZero() {
		return I256{}, true
	}
	r := I256{}
	r.v.Mul(&a.v, &b.v)
	// round-trip check: dividing back out must recover a (SDiv handles sign)
	back, ok := r.CheckedDiv(b)
	if !ok || !back.Eq(a) {
		return I256{}, false
	}
	return r, true
}

// CheckedDiv fails on divisor zero and on the single signed-overflow
// case I256::MIN / -1, per spec.md §4.3.
func (a I256) CheckedDiv(b I256) (I256, bool) {
	if b.v.IsZero() {
		return I256{}, false
	}
	if a.v.Eq(&i256Min) && b.v.Eq(&negOne) {
		return I256{}, false
	}
	r := I256{}
	r.v.SDiv(&a.v, &b.v)
	return r, true
}

func (a I256) CheckedMod(b I256) (I256, bool) {
	if b.v.IsZero() {
		return I256{}, false
	}
	r := I256{}
	r.v.SMod(&a.v, &b.v)
	return r, true
}

// ToU256 fails on a negative input, per spec.md §4.3
// ("I256ToU256 fails on negative input").
func (a I256) ToU256() (U256, bool) {
	if a.IsNegative() {
		return U256{}, false
	}
	return U256{v: a.v}, true
}

// overflowsI256Add/Sub detect signed overflow by comparing operand and
// result signs, the standard two's-complement overflow check.
func overflowsI256Add(a, b, r uint256.Int) bool {
	as, bs, rs := sign(a), sign(b), sign(r)
	if as >= 0 && bs >= 0 {
		return rs < 0
	}
	if as < 0 && bs < 0 {
		return rs >= 0
	}
	return false
}

func overflowsI256Sub(a, b, r uint256.Int) bool {
	as, bs, rs := sign(a), sign(b), sign(r)
	if as >= 0 && bs < 0 {
		return rs < 0
	}
	if as < 0 && bs >= 0 {
		return rs >= 0
	}
	return false
}
