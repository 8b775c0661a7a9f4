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

import "github.com/alephium-chain/alph-vm/common"

// TokenKey identifies a (address, token_id) balance slot, per spec.md
// §3's BalanceState.
type TokenKey struct {
	Addr    string // Address.String(), used as a map key
	TokenID common.Hash
}

// BalanceState holds per-address maps for ALPH and tokens, split into
// approved (pre-committed to callees) and remaining (spendable)
// ledgers, per spec.md §3. It lives for exactly one transaction, the
// same lifetime as the teacher's per-call balance bookkeeping in
// core/vm/evm.go (BlockContext.Transfer/CanTransfer), generalized here
// from a single native-asset balance to ALPH-plus-arbitrary-tokens with
// an explicit approved/remaining split.
type BalanceState struct {
	alfRemaining map[string]U256
	alfApproved  map[string]U256
	tokRemaining map[TokenKey]U256
	tokApproved  map[TokenKey]U256
}

func NewBalanceState() *BalanceState {
	return &BalanceState{
		alfRemaining: make(map[string]U256),
		alfApproved:  make(map[string]U256),
		tokRemaining: make(map[TokenKey]U256),
		tokApproved:  make(map[TokenKey]U256),
	}
}

// AddAlf adds to addr's remaining ALPH balance; fails BalanceOverflow
// on overflow, per spec.md §3.
func (b *BalanceState) AddAlf(addr Address, amount U256) error {
	key := addr.String()
	cur := b.alfRemaining[key]
	sum, ok := cur.CheckedAdd(amount)
	if !ok {
		return ErrBalanceOverflow
	}
	b.alfRemaining[key] = sum
	return nil
}

// UseAlf subtracts from addr's remaining ALPH balance; fails
// NotEnoughBalance if it would underflow, and
// NoAlfBalanceForTheAddress if the address has no tracked balance at
// all, per spec.md §3/§4.6.
func (b *BalanceState) UseAlf(addr Address, amount U256) error {
	key := addr.String()
	cur, ok := b.alfRemaining[key]
	if !ok {
		return ErrNoAlfBalanceForAddress
	}
	diff, ok := cur.CheckedSub(amount)
	if !ok {
		return ErrNotEnoughBalance
	}
	b.alfRemaining[key] = diff
	return nil
}

func (b *BalanceState) AlfRemaining(addr Address) (U256, error) {
	v, ok := b.alfRemaining[addr.String()]
	if !ok {
		return U256{}, ErrNoAlfBalanceForAddress
	}
	return v, nil
}

// ApproveAlf moves amount from remaining to approved, per spec.md §4.6.
func (b *BalanceState) ApproveAlf(addr Address, amount U256) error {
	if err := b.UseAlf(addr, amount); err != nil {
		return err
	}
	key := addr.String()
	sum, ok := b.alfApproved[key].CheckedAdd(amount)
	if !ok {
		return ErrBalanceOverflow
	}
	b.alfApproved[key] = sum
	return nil
}

// TakeApprovedAlf withdraws and clears the full approved ALPH pool for
// addr. CallExternal entry moves approvals with TakeAllApproved, which
// drains every address at once.
func (b *BalanceState) TakeApprovedAlf(addr Address) U256 {
	key := addr.String()
	v := b.alfApproved[key]
	delete(b.alfApproved, key)
	return v
}

func (b *BalanceState) AddToken(addr Address, token common.Hash, amount U256) error {
	key := TokenKey{Addr: addr.String(), TokenID: token}
	sum, ok := b.tokRemaining[key].CheckedAdd(amount)
	if !ok {
		return ErrBalanceOverflow
	}
	b.tokRemaining[key] = sum
	return nil
}

func (b *BalanceState) UseToken(addr Address, token common.Hash, amount U256) error {
	key := TokenKey{Addr: addr.String(), TokenID: token}
	cur, ok := b.tokRemaining[key]
	if !ok {
		return ErrNoTokenBalanceForAddress
	}
	diff, ok := cur.CheckedSub(amount)
	if !ok {
		return ErrNotEnoughBalance
	}
	b.tokRemaining[key] = diff
	return nil
}

func (b *BalanceState) TokenRemaining(addr Address, token common.Hash) (U256, error) {
	v, ok := b.tokRemaining[TokenKey{Addr: addr.String(), TokenID: token}]
	if !ok {
		return U256{}, ErrNoTokenBalanceForAddress
	}
	return v, nil
}

func (b *BalanceState) ApproveToken(addr Address, token common.Hash, amount U256) error {
	if err := b.UseToken(addr, token, amount); err != nil {
		return err
	}
	key := TokenKey{Addr: addr.String(), TokenID: token}
	sum, ok := b.tokApproved[key].CheckedAdd(amount)
	if !ok {
		return ErrBalanceOverflow
	}
	b.tokApproved[key] = sum
	return nil
}

func (b *BalanceState) TakeApprovedToken(addr Address, token common.Hash) U256 {
	key := TokenKey{Addr: addr.String(), TokenID: token}
	approved := b.tokApproved[key]
	delete(b.tokApproved, key)
	return approved
}

// RefundApprovedAlf/RefundApprovedToken return an unused portion of a
// callee's approved pool back to the caller's remaining pool on clean
// return, per spec.md §4.2.
func (b *BalanceState) RefundApprovedAlf(addr Address, leftover U256) error {
	if leftover.IsZero() {
		return nil
	}
	return b.AddAlf(addr, leftover)
}

func (b *BalanceState) RefundApprovedToken(addr Address, token common.Hash, leftover U256) error {
	if leftover.IsZero() {
		return nil
	}
	return b.AddToken(addr, token, leftover)
}

// TakeAllApproved drains every approved ALPH/token entry, for
// CallExternal's "move everything the caller staged via Approve* into
// the callee's isolated balance" step, per spec.md §4.2.
func (b *BalanceState) TakeAllApproved() (map[string]U256, map[TokenKey]U256) {
	alf, tok := b.alfApproved, b.tokApproved
	b.alfApproved = make(map[string]U256)
	b.tokApproved = make(map[TokenKey]U256)
	return alf, tok
}

// DrainRemaining empties the remaining ALPH/token ledgers, for
// refunding a callee's unspent isolated balance back to the caller on
// clean return, per spec.md §4.2.
func (b *BalanceState) DrainRemaining() (map[string]U256, map[TokenKey]U256) {
	alf, tok := b.alfRemaining, b.tokRemaining
	b.alfRemaining = make(map[string]U256)
	b.tokRemaining = make(map[TokenKey]U256)
	return alf, tok
}

// OutputBalances accumulates the per-transaction output balance
// effects of Transfer*/IssueToken opcodes, per spec.md §4.6/§5 — the
// "output-balance accumulator" the WorldState interface also names.
type OutputBalances struct {
	Alf   map[string]U256
	Token map[TokenKey]U256
}

func NewOutputBalances() *OutputBalances {
	return &OutputBalances{
		Alf:   make(map[string]U256),
		Token: make(map[TokenKey]U256),
	}
}

func (o *OutputBalances) AddAlf(addr Address, amount U256) error {
	key := addr.String()
	sum, ok := o.Alf[key].CheckedAdd(amount)
	if !ok {
		return ErrBalanceOverflow
	}
	o.Alf[key] = sum
	return nil
}

func (o *OutputBalances) AddToken(addr Address, token common.Hash, amount U256) error {
	key := TokenKey{Addr: addr.String(), TokenID: token}
	sum, ok := o.Token[key].CheckedAdd(amount)
	if !ok {
		return ErrBalanceOverflow
	}
	o.Token[key] = sum
	return nil
}

// TotalAlf sums every tracked address's output ALPH.
func (o *OutputBalances) TotalAlf() U256 {
	total := NewU256FromUint64(0)
	for _, v := range o.Alf {
		total, _ = total.CheckedAdd(v) // caller-maintained invariant: never overflows U256 in practice
	}
	return total
}
