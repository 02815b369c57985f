// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ledger

import (
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/blinklabs-io/utxokit/cbor"
	"github.com/btcsuite/btcd/btcutil/bech32"
	"golang.org/x/crypto/blake2b"
)

const (
	Blake2b256Size = 32
	Blake2b224Size = 28
	Blake2b160Size = 20
)

type Blake2b256 [Blake2b256Size]byte

func NewBlake2b256(data []byte) Blake2b256 {
	b := Blake2b256{}
	copy(b[:], data)
	return b
}

// NewBlake2b256FromHex decodes a 64 character hex string into a Blake2b256
func NewBlake2b256FromHex(hexData string) (Blake2b256, error) {
	var b Blake2b256
	if err := decodeHashHex(hexData, b[:]); err != nil {
		return b, err
	}
	return b, nil
}

func (b Blake2b256) String() string {
	return hex.EncodeToString(b[:])
}

func (b Blake2b256) Bytes() []byte {
	return b[:]
}

func (b Blake2b256) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.String())
}

func (b Blake2b256) MarshalCBOR() ([]byte, error) {
	// Ensure we always encode a full-sized bytestring, even if the hash is zero-valued
	hashBytes := make([]byte, Blake2b256Size)
	copy(hashBytes, b[:])
	return cbor.Encode(hashBytes)
}

func (b *Blake2b256) UnmarshalCBOR(data []byte) error {
	return decodeHashCbor(data, b[:])
}

// Blake2b256Hash generates a Blake2b-256 hash from the provided data
func Blake2b256Hash(data []byte) Blake2b256 {
	return Blake2b256(blake2b.Sum256(data))
}

type Blake2b224 [Blake2b224Size]byte

func NewBlake2b224(data []byte) Blake2b224 {
	b := Blake2b224{}
	copy(b[:], data)
	return b
}

// NewBlake2b224FromHex decodes a 56 character hex string into a Blake2b224
func NewBlake2b224FromHex(hexData string) (Blake2b224, error) {
	var b Blake2b224
	if err := decodeHashHex(hexData, b[:]); err != nil {
		return b, err
	}
	return b, nil
}

func (b Blake2b224) String() string {
	return hex.EncodeToString(b[:])
}

func (b Blake2b224) Bytes() []byte {
	return b[:]
}

func (b Blake2b224) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.String())
}

func (b Blake2b224) MarshalCBOR() ([]byte, error) {
	hashBytes := make([]byte, Blake2b224Size)
	copy(hashBytes, b[:])
	return cbor.Encode(hashBytes)
}

func (b *Blake2b224) UnmarshalCBOR(data []byte) error {
	return decodeHashCbor(data, b[:])
}

// Blake2b224Hash generates a Blake2b-224 hash from the provided data
func Blake2b224Hash(data []byte) Blake2b224 {
	return Blake2b224(sumBlake2b(Blake2b224Size, data))
}

type Blake2b160 [Blake2b160Size]byte

func NewBlake2b160(data []byte) Blake2b160 {
	b := Blake2b160{}
	copy(b[:], data)
	return b
}

func (b Blake2b160) String() string {
	return hex.EncodeToString(b[:])
}

func (b Blake2b160) Bytes() []byte {
	return b[:]
}

// Blake2b160Hash generates a Blake2b-160 hash from the provided data
func Blake2b160Hash(data []byte) Blake2b160 {
	return Blake2b160(sumBlake2b(Blake2b160Size, data))
}

type (
	PolicyId   = Blake2b224
	ScriptHash = Blake2b224
	DatumHash  = Blake2b256
	TxId       = Blake2b256
)

func sumBlake2b(size int, data []byte) []byte {
	tmpHash, err := blake2b.New(size, nil)
	if err != nil {
		panic(
			fmt.Sprintf(
				"unexpected error generating empty blake2b hash: %s",
				err,
			),
		)
	}
	tmpHash.Write(data)
	return tmpHash.Sum(nil)
}

func decodeHashHex(hexData string, dest []byte) error {
	if len(hexData) != len(dest)*2 {
		return fmt.Errorf(
			"invalid hash length: expected %d hex characters, got %d",
			len(dest)*2,
			len(hexData),
		)
	}
	if _, err := hex.Decode(dest, []byte(hexData)); err != nil {
		return fmt.Errorf("invalid hash hex: %w", err)
	}
	return nil
}

// decodeHashCbor decodes a CBOR bytestring into dest, which it must fill exactly
func decodeHashCbor(data []byte, dest []byte) error {
	var tmp []byte
	if _, err := cbor.Decode(data, &tmp); err != nil {
		return err
	}
	if len(tmp) != len(dest) {
		return fmt.Errorf(
			"invalid hash length: expected %d bytes, got %d",
			len(dest),
			len(tmp),
		)
	}
	copy(dest, tmp)
	return nil
}

func bech32Encode(prefix string, data []byte) (string, error) {
	// Convert data to base32 and encode as bech32
	convData, err := bech32.ConvertBits(data, 8, 5, true)
	if err != nil {
		return "", err
	}
	return bech32.Encode(prefix, convData)
}
