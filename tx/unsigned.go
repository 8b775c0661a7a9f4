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

// Package tx builds the UnsignedTransaction the VM executes against,
// per spec.md §3/§8 — the analogue of the teacher's core/types.Transaction
// plus its NewTx builder helpers, generalized from a single native-value
// transfer to Alephium's multi-input/multi-output, script-carrying
// transaction shape.
package tx

import (
	"fmt"

	"github.com/alephium-chain/alph-vm/common"
	"github.com/alephium-chain/alph-vm/vm"
)

// TxOutputRef identifies a spent UTXO, per spec.md §3.
type TxOutputRef struct {
	Hash  common.Hash
	Index uint32
}

// Bytes serializes the ref for use as CreateContract's first_input_ref
// seed, per spec.md §4.5.
func (r TxOutputRef) Bytes() []byte {
	var idx [4]byte
	idx[0] = byte(r.Index >> 24)
	idx[1] = byte(r.Index >> 16)
	idx[2] = byte(r.Index >> 8)
	idx[3] = byte(r.Index)
	return append(append([]byte{}, r.Hash.Bytes()...), idx[:]...)
}

// AssetOutput is a transaction output guarding ALPH plus optional
// tokens behind a LockupScript, per spec.md §3.
type AssetOutput struct {
	Amount     vm.U256
	Address    vm.Address
	Tokens     map[common.Hash]vm.U256
	LockTimeMs int64
}

// UnsignedTransaction is the pre-signature transaction body a script
// executes against, per spec.md §3.
type UnsignedTransaction struct {
	Inputs       []TxOutputRef
	FixedOutputs []AssetOutput
	Script       *vm.Contract // nil for a plain asset-transfer transaction
	ScriptArgs   []vm.Val
	GasAmount    uint64
	GasPrice     vm.U256
	NetworkID    byte
}

// Validate enforces the builder invariants of spec.md §3/§8: at least
// one input, gas_amount and gas_price both positive, and every fixed
// output carrying some value, either a non-zero ALPH amount or at
// least one token (a zero-value output is meaningless and a
// common source of the "dust" outputs Alephium's real mempool policy
// otherwise has to filter separately).
func (u *UnsignedTransaction) Validate() error {
	if len(u.Inputs) == 0 {
		return fmt.Errorf("unsigned tx: at least one input is required")
	}
	if u.GasAmount == 0 {
		return fmt.Errorf("unsigned tx: gas_amount must be positive")
	}
	if u.GasPrice.IsZero() {
		return fmt.Errorf("unsigned tx: gas_price must be positive")
	}
	for i, out := range u.FixedOutputs {
		if out.Amount.IsZero() && len(out.Tokens) == 0 {
			return fmt.Errorf("unsigned tx: output %d carries no value", i)
		}
	}
	if u.Script != nil && len(u.Script.Methods) == 0 {
		return fmt.Errorf("unsigned tx: script has no methods")
	}
	return nil
}

// GasFee computes gas_amount * gas_price, the ALPH the transaction's
// inputs must additionally cover beyond its declared outputs, per
// spec.md §8's fee-conservation scenarios.
func (u *UnsignedTransaction) GasFee() vm.U256 {
	fee, ok := u.GasPrice.CheckedMul(vm.NewU256FromUint64(u.GasAmount))
	if !ok {
		// GasAmount and GasPrice are both externally bounded well
		// below 2^128 by the caller (mempool/CLI); this would only
		// trip on a deliberately malformed UnsignedTransaction.
		return vm.U256{}
	}
	return fee
}

// FirstInputRef returns the byte seed CreateContract's id derivation
// uses, per spec.md §4.5 — the first listed input, matching the
// deterministic "first" the spec requires for id collision-freedom
// across concurrently-broadcast transactions.
func (u *UnsignedTransaction) FirstInputRef() []byte {
	if len(u.Inputs) == 0 {
		return nil
	}
	return u.Inputs[0].Bytes()
}

// TotalOutputAlf sums every fixed output's declared ALPH amount, for
// the conservation check against the VM's OutputBalances accumulator
// once a script has run, per spec.md §4.6/§8.
func (u *UnsignedTransaction) TotalOutputAlf() vm.U256 {
	total := vm.NewU256FromUint64(0)
	for _, out := range u.FixedOutputs {
		total, _ = total.CheckedAdd(out.Amount)
	}
	return total
}
