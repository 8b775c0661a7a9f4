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
	"fmt"

	"github.com/alephium-chain/alph-vm/common"
	"github.com/mr-tron/base58"
	"golang.org/x/crypto/blake2b"
)

// LockupTag is the one-byte wire tag of a LockupScript, per spec.md §6.
type LockupTag byte

const (
	TagP2PKH  LockupTag = 0
	TagP2MPKH LockupTag = 1
	TagP2SH   LockupTag = 2
	TagP2C    LockupTag = 3
)

// LockupScript is the sum type of spec.md §3. Exactly one of the
// P2* fields is populated, selected by Tag.
type LockupScript struct {
	Tag LockupTag

	PKHash     common.Hash   // P2PKH
	PKHashes   []common.Hash // P2MPKH
	M          int           // P2MPKH threshold
	ScriptHash common.Hash   // P2SH
	ContractID common.Hash   // P2C
}

func NewP2PKH(pkHash common.Hash) LockupScript {
	return LockupScript{Tag: TagP2PKH, PKHash: pkHash}
}

// NewP2MPKH enforces spec.md §3's invariant 0 < m < len(pk_hashes).
func NewP2MPKH(pkHashes []common.Hash, m int) (LockupScript, error) {
	if !(m > 0 && m < len(pkHashes)) {
		return LockupScript{}, fmt.Errorf("p2mpkh: invalid threshold m=%d for %d keys", m, len(pkHashes))
	}
	return LockupScript{Tag: TagP2MPKH, PKHashes: pkHashes, M: m}, nil
}

func NewP2SH(scriptHash common.Hash) LockupScript {
	return LockupScript{Tag: TagP2SH, ScriptHash: scriptHash}
}

func NewP2C(contractID common.Hash) LockupScript {
	return LockupScript{Tag: TagP2C, ContractID: contractID}
}

// IsAssetLockup reports whether ls guards an asset output. P2PKH,
// P2MPKH, and P2SH are asset lockups; P2C is not, per spec.md §3.
func (ls LockupScript) IsAssetLockup() bool {
	return ls.Tag == TagP2PKH || ls.Tag == TagP2MPKH || ls.Tag == TagP2SH
}

// Equal does structural comparison across the sum type's variants.
func (ls LockupScript) Equal(o LockupScript) bool {
	if ls.Tag != o.Tag {
		return false
	}
	switch ls.Tag {
	case TagP2PKH:
		return ls.PKHash == o.PKHash
	case TagP2MPKH:
		if ls.M != o.M || len(ls.PKHashes) != len(o.PKHashes) {
			return false
		}
		for i := range ls.PKHashes {
			if ls.PKHashes[i] != o.PKHashes[i] {
				return false
			}
		}
		return true
	case TagP2SH:
		return ls.ScriptHash == o.ScriptHash
	case TagP2C:
		return ls.ContractID == o.ContractID
	default:
		return false
	}
}

// Bytes serializes ls to its tagged wire form, per spec.md §6:
//
//	0 || pk_hash[32]
//	1 || varint(n) || pk_hash[32]*n || varint(m)
//	2 || script_hash[32]
//	3 || contract_id[32]
func (ls LockupScript) Bytes() []byte {
	switch ls.Tag {
	case TagP2PKH:
		return append([]byte{byte(TagP2PKH)}, ls.PKHash.Bytes()...)
	case TagP2MPKH:
		buf := []byte{byte(TagP2MPKH)}
		buf = append(buf, encodeVarint(uint64(len(ls.PKHashes)))...)
		for _, h := range ls.PKHashes {
			buf = append(buf, h.Bytes()...)
		}
		buf = append(buf, encodeVarint(uint64(ls.M))...)
		return buf
	case TagP2SH:
		return append([]byte{byte(TagP2SH)}, ls.ScriptHash.Bytes()...)
	case TagP2C:
		return append([]byte{byte(TagP2C)}, ls.ContractID.Bytes()...)
	default:
		return nil
	}
}

// DecodeLockupScript parses the tagged wire form produced by Bytes.
func DecodeLockupScript(b []byte) (LockupScript, []byte, error) {
	if len(b) < 1 {
		return LockupScript{}, nil, fmt.Errorf("lockup script: empty input")
	}
	tag, rest := LockupTag(b[0]), b[1:]
	switch tag {
	case TagP2PKH:
		h, rest, err := takeHash(rest)
		if err != nil {
			return LockupScript{}, nil, err
		}
		return NewP2PKH(h), rest, nil
	case TagP2MPKH:
		n, rest, err := decodeVarint(rest)
		if err != nil {
			return LockupScript{}, nil, err
		}
		hashes := make([]common.Hash, 0, n)
		for i := uint64(0); i < n; i++ {
			var h common.Hash
			h, rest, err = takeHash(rest)
			if err != nil {
				return LockupScript{}, nil, err
			}
			hashes = append(hashes, h)
		}
		m, rest, err := decodeVarint(rest)
		if err != nil {
			return LockupScript{}, nil, err
		}
		ls, err := NewP2MPKH(hashes, int(m))
		if err != nil {
			return LockupScript{}, nil, err
		}
		return ls, rest, nil
	case TagP2SH:
		h, rest, err := takeHash(rest)
		if err != nil {
			return LockupScript{}, nil, err
		}
		return NewP2SH(h), rest, nil
	case TagP2C:
		h, rest, err := takeHash(rest)
		if err != nil {
			return LockupScript{}, nil, err
		}
		return NewP2C(h), rest, nil
	default:
		return LockupScript{}, nil, fmt.Errorf("lockup script: unknown tag %d", tag)
	}
}

func takeHash(b []byte) (common.Hash, []byte, error) {
	if len(b) < common.HashLength {
		return common.Hash{}, nil, fmt.Errorf("lockup script: short hash")
	}
	return common.BytesToHash(b[:common.HashLength]), b[common.HashLength:], nil
}

// ScriptHint derives the group-assignment value used for sharding
// addresses, per spec.md §3/GLOSSARY. It is the first 4 bytes of the
// script's blake2b-256 digest, interpreted big-endian — a group hint
// needs only a deterministic, well-distributed function of the script
// bytes, which blake2b already provides for every other VM hash op.
func (ls LockupScript) ScriptHint() uint32 {
	h := blake2b.Sum256(ls.Bytes())
	return uint32(h[0])<<24 | uint32(h[1])<<16 | uint32(h[2])<<8 | uint32(h[3])
}

// Address wraps a LockupScript, per spec.md §3.
type Address struct {
	Script LockupScript
}

func NewAddress(ls LockupScript) Address { return Address{Script: ls} }

func (a Address) Equal(o Address) bool { return a.Script.Equal(o.Script) }

// String renders the base58-encoded lockup-script bytes, per spec.md §6
// ("Addresses (human-readable) are base58-encoded lockup-script bytes").
func (a Address) String() string {
	return base58.Encode(a.Script.Bytes())
}

// ParseAddress decodes a base58 human-readable address back into its
// LockupScript.
func ParseAddress(s string) (Address, error) {
	raw, err := base58.Decode(s)
	if err != nil {
		return Address{}, fmt.Errorf("address: %w", err)
	}
	ls, rest, err := DecodeLockupScript(raw)
	if err != nil {
		return Address{}, err
	}
	if len(rest) != 0 {
		return Address{}, fmt.Errorf("address: trailing bytes after lockup script")
	}
	return NewAddress(ls), nil
}

// ContractAddress is an Address known to wrap a P2C lockup script.
func ContractAddress(contractID common.Hash) Address {
	return NewAddress(NewP2C(contractID))
}
