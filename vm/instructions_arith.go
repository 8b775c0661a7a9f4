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

// Boolean, I256, and U256 arithmetic/comparison/bitwise/shift/
// conversion opcodes of spec.md §4.3 — the analogue of the teacher's
// opAdd/opMul/opSdiv/opAnd/opSHL family in core/vm/instructions.go.
// Every binary op pops b then a (b was pushed last), matching the
// teacher's x, y := scope.Stack.pop(), scope.Stack.peek() convention.

func init() {
	registerOp(NotBool, opNotBool)
	registerOp(AndBool, opAndBool)
	registerOp(OrBool, opOrBool)
	registerOp(EqBool, opEqBool)
	registerOp(NeBool, opNeBool)

	registerOp(I256Add, opI256Checked(I256.CheckedAdd))
	registerOp(I256Sub, opI256Checked(I256.CheckedSub))
	registerOp(I256Mul, opI256Checked(I256.CheckedMul))
	registerOp(I256Div, opI256Checked(I256.CheckedDiv))
	registerOp(I256Mod, opI256Checked(I256.CheckedMod))
	registerOp(I256Eq, opI256Cmp(func(c int) bool { return c == 0 }))
	registerOp(I256Ne, opI256Cmp(func(c int) bool { return c != 0 }))
	registerOp(I256Lt, opI256Cmp(func(c int) bool { return c < 0 }))
	registerOp(I256Le, opI256Cmp(func(c int) bool { return c <= 0 }))
	registerOp(I256Gt, opI256Cmp(func(c int) bool { return c > 0 }))
	registerOp(I256Ge, opI256Cmp(func(c int) bool { return c >= 0 }))

	registerOp(U256Add, opU256Checked(U256.CheckedAdd))
	registerOp(U256Sub, opU256Checked(U256.CheckedSub))
	registerOp(U256Mul, opU256Checked(U256.CheckedMul))
	registerOp(U256Div, opU256Checked(U256.CheckedDiv))
	registerOp(U256Mod, opU256Checked(U256.CheckedMod))
	registerOp(U256Eq, opU256Cmp(func(c int) bool { return c == 0 }))
	registerOp(U256Ne, opU256Cmp(func(c int) bool { return c != 0 }))
	registerOp(U256Lt, opU256Cmp(func(c int) bool { return c < 0 }))
	registerOp(U256Le, opU256Cmp(func(c int) bool { return c <= 0 }))
	registerOp(U256Gt, opU256Cmp(func(c int) bool { return c > 0 }))
	registerOp(U256Ge, opU256Cmp(func(c int) bool { return c >= 0 }))
	registerOp(U256ModAdd, opU256Unchecked(U256.ModAdd))
	registerOp(U256ModSub, opU256Unchecked(U256.ModSub))
	registerOp(U256ModMul, opU256Unchecked(U256.ModMul))
	registerOp(U256BAnd, opU256Unchecked(U256.And))
	registerOp(U256BOr, opU256Unchecked(U256.Or))
	registerOp(U256BXor, opU256Unchecked(U256.Xor))
	registerOp(U256SHL, opU256Unchecked(U256.Shl))
	registerOp(U256SHR, opU256Unchecked(U256.Shr))

	registerOp(I256ToU256, opI256ToU256)
	registerOp(U256ToI256, opU256ToI256)
}

func opNotBool(ctx *Context, fr *Frame, in Instr) error {
	b, err := fr.OpStack.popBool()
	if err != nil {
		return err
	}
	return fr.OpStack.push(NewBool(!b))
}

func opAndBool(ctx *Context, fr *Frame, in Instr) error {
	b, err := fr.OpStack.popBool()
	if err != nil {
		return err
	}
	a, err := fr.OpStack.popBool()
	if err != nil {
		return err
	}
	return fr.OpStack.push(NewBool(a && b))
}

func opOrBool(ctx *Context, fr *Frame, in Instr) error {
	b, err := fr.OpStack.popBool()
	if err != nil {
		return err
	}
	a, err := fr.OpStack.popBool()
	if err != nil {
		return err
	}
	return fr.OpStack.push(NewBool(a || b))
}

func opEqBool(ctx *Context, fr *Frame, in Instr) error {
	b, err := fr.OpStack.popBool()
	if err != nil {
		return err
	}
	a, err := fr.OpStack.popBool()
	if err != nil {
		return err
	}
	return fr.OpStack.push(NewBool(a == b))
}

func opNeBool(ctx *Context, fr *Frame, in Instr) error {
	b, err := fr.OpStack.popBool()
	if err != nil {
		return err
	}
	a, err := fr.OpStack.popBool()
	if err != nil {
		return err
	}
	return fr.OpStack.push(NewBool(a != b))
}

// opI256Checked/opU256Checked wrap a (result, ok) checked binary op,
// failing ArithmeticError on overflow/div-by-zero, per spec.md §4.3.
func opI256Checked(f func(I256, I256) (I256, bool)) opFunc {
	return func(ctx *Context, fr *Frame, in Instr) error {
		b, err := fr.OpStack.popI256()
		if err != nil {
			return err
		}
		a, err := fr.OpStack.popI256()
		if err != nil {
			return err
		}
		r, ok := f(a, b)
		if !ok {
			return ErrArithmeticError
		}
		return fr.OpStack.push(NewI256(r))
	}
}

func opU256Checked(f func(U256, U256) (U256, bool)) opFunc {
	return func(ctx *Context, fr *Frame, in Instr) error {
		b, err := fr.OpStack.popU256()
		if err != nil {
			return err
		}
		a, err := fr.OpStack.popU256()
		if err != nil {
			return err
		}
		r, ok := f(a, b)
		if !ok {
			return ErrArithmeticError
		}
		return fr.OpStack.push(NewU256(r))
	}
}

// opU256Unchecked backs the modular/bitwise/shift ops, which never fail.
func opU256Unchecked(f func(U256, U256) U256) opFunc {
	return func(ctx *Context, fr *Frame, in Instr) error {
		b, err := fr.OpStack.popU256()
		if err != nil {
			return err
		}
		a, err := fr.OpStack.popU256()
		if err != nil {
			return err
		}
		return fr.OpStack.push(NewU256(f(a, b)))
	}
}

func opI256Cmp(test func(int) bool) opFunc {
	return func(ctx *Context, fr *Frame, in Instr) error {
		b, err := fr.OpStack.popI256()
		if err != nil {
			return err
		}
		a, err := fr.OpStack.popI256()
		if err != nil {
			return err
		}
		return fr.OpStack.push(NewBool(test(a.Cmp(b))))
	}
}

func opU256Cmp(test func(int) bool) opFunc {
	return func(ctx *Context, fr *Frame, in Instr) error {
		b, err := fr.OpStack.popU256()
		if err != nil {
			return err
		}
		a, err := fr.OpStack.popU256()
		if err != nil {
			return err
		}
		return fr.OpStack.push(NewBool(test(a.Cmp(b))))
	}
}

func opI256ToU256(ctx *Context, fr *Frame, in Instr) error {
	a, err := fr.OpStack.popI256()
	if err != nil {
		return err
	}
	u, ok := a.ToU256()
	if !ok {
		return ErrInvalidConversion
	}
	return fr.OpStack.push(NewU256(u))
}

func opU256ToI256(ctx *Context, fr *Frame, in Instr) error {
	a, err := fr.OpStack.popU256()
	if err != nil {
		return err
	}
	i, ok := a.ToI256()
	if !ok {
		return ErrInvalidConversion
	}
	return fr.OpStack.push(NewI256(i))
}
