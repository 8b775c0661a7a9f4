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

// This file dispatches the constant-push, load/store, and stack
// bookkeeping opcodes of spec.md §4.1 — the analogue of the teacher's
// opPush*/opDup*/opSwap* family in core/vm/instructions.go, generalized
// from byte-packed immediates to Alephium's typed Val payload.

func init() {
	registerOp(ConstTrue, opConstBool(true))
	registerOp(ConstFalse, opConstBool(false))

	registerOp(I256Const0, opI256SmallConst(0))
	registerOp(I256Const1, opI256SmallConst(1))
	registerOp(I256Const2, opI256SmallConst(2))
	registerOp(I256Const3, opI256SmallConst(3))
	registerOp(I256Const4, opI256SmallConst(4))
	registerOp(I256Const5, opI256SmallConst(5))
	registerOp(I256ConstN1, opI256SmallConst(-1))

	registerOp(U256Const0, opU256SmallConst(0))
	registerOp(U256Const1, opU256SmallConst(1))
	registerOp(U256Const2, opU256SmallConst(2))
	registerOp(U256Const3, opU256SmallConst(3))
	registerOp(U256Const4, opU256SmallConst(4))
	registerOp(U256Const5, opU256SmallConst(5))

	registerOp(I256Const, opI256Const)
	registerOp(U256Const, opU256Const)
	registerOp(BytesConst, opBytesConst)
	registerOp(AddressConst, opAddressConst)

	registerOp(LoadLocal, opLoadLocal)
	registerOp(StoreLocal, opStoreLocal)
	registerOp(LoadField, opLoadField)
	registerOp(StoreField, opStoreField)
	registerOp(Pop, opPop)
}

func opConstBool(b bool) opFunc {
	return func(ctx *Context, fr *Frame, in Instr) error {
		return fr.OpStack.push(NewBool(b))
	}
}

func opI256SmallConst(n int64) opFunc {
	v := NewI256(NewI256FromInt64(n))
	return func(ctx *Context, fr *Frame, in Instr) error {
		return fr.OpStack.push(v)
	}
}

func opU256SmallConst(n uint64) opFunc {
	v := NewU256(NewU256FromUint64(n))
	return func(ctx *Context, fr *Frame, in Instr) error {
		return fr.OpStack.push(v)
	}
}

func opI256Const(ctx *Context, fr *Frame, in Instr) error {
	return fr.OpStack.push(NewI256(NewI256FromBytes(in.IntConst)))
}

func opU256Const(ctx *Context, fr *Frame, in Instr) error {
	return fr.OpStack.push(NewU256(NewU256FromBytes(in.IntConst)))
}

func opBytesConst(ctx *Context, fr *Frame, in Instr) error {
	return fr.OpStack.push(NewByteVec(in.BytesConst))
}

func opAddressConst(ctx *Context, fr *Frame, in Instr) error {
	return fr.OpStack.push(NewAddressVal(in.AddressConst))
}

func opLoadLocal(ctx *Context, fr *Frame, in Instr) error {
	v, err := fr.GetLocal(int(in.ByteIndex))
	if err != nil {
		return err
	}
	return fr.OpStack.push(v)
}

func opStoreLocal(ctx *Context, fr *Frame, in Instr) error {
	v, err := fr.OpStack.pop()
	if err != nil {
		return err
	}
	return fr.SetLocal(int(in.ByteIndex), v)
}

func opLoadField(ctx *Context, fr *Frame, in Instr) error {
	v, err := fr.GetField(int(in.ByteIndex))
	if err != nil {
		return err
	}
	return fr.OpStack.push(v)
}

func opStoreField(ctx *Context, fr *Frame, in Instr) error {
	v, err := fr.OpStack.pop()
	if err != nil {
		return err
	}
	return fr.SetField(int(in.ByteIndex), v)
}

func opPop(ctx *Context, fr *Frame, in Instr) error {
	_, err := fr.OpStack.pop()
	return err
}
