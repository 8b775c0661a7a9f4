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

// Hash and signature-check opcodes of spec.md §4.4 — the analogue of
// the teacher's opSha3 (core/vm/instructions.go), generalized to
// Alephium's four hash functions plus CheckSignature's stack-popped
// signature.

func init() {
	registerOp(Blake2bOp, opHash(hashBlake2b))
	registerOp(Keccak256Op, opHash(hashKeccak256))
	registerOp(Sha256Op, opHash(hashSha256))
	registerOp(Sha3Op, opHash(hashSha3))
	registerOp(CheckSignatureOp, opCheckSignature)
}

// opHash pops a ByteVec, hashes it, and pushes the 32-byte digest as a
// fresh ByteVec. Gas for the per-word cost beyond the static
// GasHashBase bucket is charged here, mirroring the teacher's
// gasSha3's dynamic component layered on top of the jump table's
// static entry.
func opHash(h func([]byte) [32]byte) opFunc {
	return func(ctx *Context, fr *Frame, in Instr) error {
		b, err := fr.OpStack.popByteVec()
		if err != nil {
			return err
		}
		if err := ctx.chargeGas(hashGas(len(b)) - uint64(GasHashBase)); err != nil {
			return err
		}
		digest := h(b)
		return fr.OpStack.push(NewByteVec(digest[:]))
	}
}

// opCheckSignature pops the public key and message ByteVecs, pops the
// next signature off the transaction's global signature FIFO, and
// fails VerificationFailed/InvalidPublicKey on mismatch, per spec.md
// §4.4.
func opCheckSignature(ctx *Context, fr *Frame, in Instr) error {
	msg, err := fr.OpStack.popByteVec()
	if err != nil {
		return err
	}
	pubKey, err := fr.OpStack.popByteVec()
	if err != nil {
		return err
	}
	sig, err := ctx.popSignature()
	if err != nil {
		return err
	}
	return verifySignature(pubKey, sig.Bytes, msg)
}
