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
	"crypto/ed25519"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
)

// verifySignature checks sig over msg against pubKey, dispatching on
// the key's length: a 32-byte ed25519-like key or a 33-byte
// secp256k1-compressed key, per spec.md §4.4. It fails InvalidPublicKey
// for any other length or a malformed secp256k1 point, and
// VerificationFailed if the signature doesn't check out.
func verifySignature(pubKey, sig, msg []byte) error {
	switch len(pubKey) {
	case ed25519.PublicKeySize: // 32
		if len(sig) != ed25519.SignatureSize {
			return ErrVerificationFailed
		}
		if !ed25519.Verify(ed25519.PublicKey(pubKey), msg, sig) {
			return ErrVerificationFailed
		}
		return nil
	case 33: // secp256k1-compressed
		key, err := btcec.ParsePubKey(pubKey)
		if err != nil {
			return ErrInvalidPublicKey
		}
		parsed, err := ecdsa.ParseDERSignature(sig)
		if err != nil {
			return ErrVerificationFailed
		}
		if !parsed.Verify(msg, key) {
			return ErrVerificationFailed
		}
		return nil
	default:
		return ErrInvalidPublicKey
	}
}
