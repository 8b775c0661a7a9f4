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
	"testing"

	"github.com/stretchr/testify/require"
)

func testAddr(seed string) Address {
	return NewAddress(NewP2PKH(hashOfString(seed)))
}

func TestBalanceStateAddUseAlf(t *testing.T) {
	b := NewBalanceState()
	addr := testAddr("alice")

	require.NoError(t, b.AddAlf(addr, NewU256FromUint64(100)))
	rem, err := b.AlfRemaining(addr)
	require.NoError(t, err)
	require.Equal(t, uint64(100), rem.Uint64())

	require.NoError(t, b.UseAlf(addr, NewU256FromUint64(40)))
	rem, err = b.AlfRemaining(addr)
	require.NoError(t, err)
	require.Equal(t, uint64(60), rem.Uint64())
}

func TestBalanceStateAlfRemainingUnknownAddress(t *testing.T) {
	b := NewBalanceState()
	_, err := b.AlfRemaining(testAddr("ghost"))
	require.ErrorIs(t, err, ErrNoAlfBalanceForAddress)
}

func TestBalanceStateUseAlfInsufficient(t *testing.T) {
	b := NewBalanceState()
	addr := testAddr("bob")
	require.NoError(t, b.AddAlf(addr, NewU256FromUint64(10)))
	err := b.UseAlf(addr, NewU256FromUint64(20))
	require.ErrorIs(t, err, ErrNotEnoughBalance)
}

func TestBalanceStateApproveAndTakeAllApproved(t *testing.T) {
	b := NewBalanceState()
	addr := testAddr("carol")
	token := hashOfString("token-1")

	require.NoError(t, b.AddAlf(addr, NewU256FromUint64(50)))
	require.NoError(t, b.ApproveAlf(addr, NewU256FromUint64(30)))
	require.NoError(t, b.AddToken(addr, token, NewU256FromUint64(5)))
	require.NoError(t, b.ApproveToken(addr, token, NewU256FromUint64(5)))

	alf, tok := b.TakeAllApproved()
	require.Equal(t, uint64(30), alf[addr.String()].Uint64())
	require.Equal(t, uint64(5), tok[TokenKey{Addr: addr.String(), TokenID: token}].Uint64())

	// a second drain finds nothing left to take
	alf2, tok2 := b.TakeAllApproved()
	require.Empty(t, alf2)
	require.Empty(t, tok2)

	rem, err := b.AlfRemaining(addr)
	require.NoError(t, err)
	require.Equal(t, uint64(20), rem.Uint64(), "approving moves out of remaining, not a copy")
}

func TestBalanceStateRefundApproved(t *testing.T) {
	b := NewBalanceState()
	addr := testAddr("dave")
	require.NoError(t, b.AddAlf(addr, NewU256FromUint64(10)))

	require.NoError(t, b.RefundApprovedAlf(addr, NewU256FromUint64(5)))
	rem, err := b.AlfRemaining(addr)
	require.NoError(t, err)
	require.Equal(t, uint64(15), rem.Uint64())

	require.NoError(t, b.RefundApprovedAlf(addr, NewU256FromUint64(0)), "a zero refund is a no-op")
}

func TestBalanceStateDrainRemaining(t *testing.T) {
	b := NewBalanceState()
	addr := testAddr("erin")
	require.NoError(t, b.AddAlf(addr, NewU256FromUint64(77)))

	alf, _ := b.DrainRemaining()
	require.Equal(t, uint64(77), alf[addr.String()].Uint64())

	_, err := b.AlfRemaining(addr)
	require.ErrorIs(t, err, ErrNoAlfBalanceForAddress, "drained balance state has nothing left")
}

func TestOutputBalancesTotalAlf(t *testing.T) {
	o := NewOutputBalances()
	require.NoError(t, o.AddAlf(testAddr("one"), NewU256FromUint64(1)))
	require.NoError(t, o.AddAlf(testAddr("two"), NewU256FromUint64(2)))
	require.Equal(t, uint64(3), o.TotalAlf().Uint64())
}
