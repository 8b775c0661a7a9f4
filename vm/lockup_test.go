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

	"github.com/alephium-chain/alph-vm/common"
)

func TestLockupScriptP2PKHRoundTrip(t *testing.T) {
	ls := NewP2PKH(hashOfString("pubkey"))
	decoded, rest, err := DecodeLockupScript(ls.Bytes())
	if err != nil {
		t.Fatal(err)
	}
	if len(rest) != 0 || !decoded.Equal(ls) {
		t.Fatalf("P2PKH round trip mismatch: %+v rest=%x", decoded, rest)
	}
	if !ls.IsAssetLockup() {
		t.Fatalf("P2PKH must be an asset lockup")
	}
}

func TestLockupScriptP2MPKHThresholdValidation(t *testing.T) {
	hashes := []common.Hash{hashOfString("a"), hashOfString("b"), hashOfString("c")}
	if _, err := NewP2MPKH(hashes, 0); err == nil {
		t.Fatalf("m=0 must be rejected")
	}
	if _, err := NewP2MPKH(hashes, len(hashes)); err == nil {
		t.Fatalf("m==len(keys) must be rejected")
	}
	ls, err := NewP2MPKH(hashes, 2)
	if err != nil {
		t.Fatal(err)
	}
	decoded, rest, err := DecodeLockupScript(ls.Bytes())
	if err != nil {
		t.Fatal(err)
	}
	if len(rest) != 0 || !decoded.Equal(ls) {
		t.Fatalf("P2MPKH round trip mismatch")
	}
}

func TestLockupScriptP2CNotAssetLockup(t *testing.T) {
	ls := NewP2C(hashOfString("contract"))
	if ls.IsAssetLockup() {
		t.Fatalf("P2C must not be an asset lockup")
	}
}

func TestAddressStringParseRoundTrip(t *testing.T) {
	addr := NewAddress(NewP2SH(hashOfString("script")))
	parsed, err := ParseAddress(addr.String())
	if err != nil {
		t.Fatal(err)
	}
	if !parsed.Equal(addr) {
		t.Fatalf("address base58 round trip mismatch: want %v got %v", addr, parsed)
	}
}

func TestContractAddressWrapsP2C(t *testing.T) {
	id := hashOfString("my-contract")
	addr := ContractAddress(id)
	if addr.Script.Tag != TagP2C || addr.Script.ContractID != id {
		t.Fatalf("ContractAddress must wrap a P2C lockup with the given id")
	}
}
