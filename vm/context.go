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
	"github.com/alephium-chain/alph-vm/common"
	pkgerrors "github.com/pkg/errors"
)

// Context is the execution driver's per-transaction state: gas
// accounting, the frame stack, the global signature FIFO, and the
// one-issued-token flag — everything spec.md §4.7/§4.8/§9 says is
// owned by the driver rather than any individual frame. It plays the
// same role as the teacher's *EVM combined with *EVMInterpreter, minus
// the fork-dependent jump table (Alephium has a single, fixed table).
type Context struct {
	World WorldState
	Block BlockEnv

	Balance *BalanceState

	// Signatures is the transaction's pre-loaded signature stack,
	// popped in transaction order by every frame including nested
	// CallExternal frames — spec.md §9's resolution of the "source
	// pops globally" open question.
	Signatures []Sig
	sigCursor  int

	TxID common.Hash

	GasRemaining uint64
	gasInitial   uint64
	GasPrice     U256

	frames []*Frame

	issuedToken bool

	// FirstInputRef and createdContracts back CreateContract's id
	// derivation, per spec.md §4.5 ("hash(first_input_ref || nonce)").
	FirstInputRef    []byte
	createdContracts uint64
}

// Sig is one ed25519-or-secp256k1 signature entry in the transaction's
// signature stack, per spec.md §4.4.
type Sig struct {
	Bytes []byte
}

// NewContext builds a fresh per-transaction Context. gasAmount is the
// tx's declared gas_amount (spec.md §3's UnsignedTransaction field).
func NewContext(world WorldState, block BlockEnv, txID common.Hash, gasAmount uint64, gasPrice U256, sigs []Sig, firstInputRef []byte) *Context {
	return &Context{
		World:         world,
		Block:         block,
		Balance:       NewBalanceState(),
		Signatures:    sigs,
		TxID:          txID,
		GasRemaining:  gasAmount,
		gasInitial:    gasAmount,
		GasPrice:      gasPrice,
		FirstInputRef: firstInputRef,
	}
}

// GasUsed reports how much of the transaction's declared gas_amount
// has been spent so far.
func (c *Context) GasUsed() uint64 { return c.gasInitial - c.GasRemaining }

// chargeGas deducts cost before any side effect of the instruction
// that requested it, per spec.md §4.7 ("Gas is charged BEFORE side
// effects"). It fails OutOfGas if insufficient, never going negative.
func (c *Context) chargeGas(cost uint64) error {
	if c.GasRemaining < cost {
		c.GasRemaining = 0
		return ErrOutOfGas
	}
	c.GasRemaining -= cost
	return nil
}

// popSignature pops the next unused signature from the global FIFO,
// per spec.md §4.4/§9.
func (c *Context) popSignature() (Sig, error) {
	if c.sigCursor >= len(c.Signatures) {
		return Sig{}, pkgerrors.WithMessage(ErrVerificationFailed, "no more signatures on the stack")
	}
	s := c.Signatures[c.sigCursor]
	c.sigCursor++
	return s, nil
}

func (c *Context) pushFrame(f *Frame) error {
	if len(c.frames) >= MaxFrameDepth {
		return ErrStackOverflow
	}
	c.frames = append(c.frames, f)
	return nil
}

func (c *Context) popFrame() {
	if len(c.frames) == 0 {
		return
	}
	c.frames = c.frames[:len(c.frames)-1]
}

func (c *Context) currentFrame() *Frame {
	if len(c.frames) == 0 {
		return nil
	}
	return c.frames[len(c.frames)-1]
}

// tryIssueToken enforces spec.md §4.5/§9's at-most-one-IssueToken-per-
// transaction rule.
func (c *Context) tryIssueToken() error {
	if c.issuedToken {
		return ErrInvalidIssueToken
	}
	c.issuedToken = true
	return nil
}

// nextContractID derives a fresh contract id for CreateContract, per
// spec.md §4.5: hash(first_input_ref || nonce). The nonce is a
// monotonic per-transaction counter so repeated CreateContract calls
// within one transaction never collide.
func (c *Context) nextContractID() common.Hash {
	nonce := c.createdContracts
	c.createdContracts++
	buf := append(append([]byte{}, c.FirstInputRef...), encodeVarint(nonce)...)
	return common.Hash(hashBlake2b(buf))
}
