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

package cbor_test

import (
	"encoding/hex"
	"math/big"
	"testing"

	"github.com/blinklabs-io/utxokit/cbor"
)

type encodeTestDefinition struct {
	CborHex string
	Object  any
}

var encodeTests = []encodeTestDefinition{
	// Simple list of numbers
	{
		CborHex: "83010203",
		Object:  []any{1, 2, 3},
	},
	// Big integer that fits in 64 bits is written as a plain integer
	{
		CborHex: "1b0000000100000000",
		Object:  new(big.Int).Lsh(big.NewInt(1), 32),
	},
	// Big integer beyond 64 bits uses a bignum tag
	{
		CborHex: "c249010000000000000000",
		Object:  new(big.Int).Lsh(big.NewInt(1), 64),
	},
	// Wrapped CBOR
	{
		CborHex: "d8184401020304",
		Object:  cbor.WrappedCbor{0x01, 0x02, 0x03, 0x04},
	},
}

func TestEncode(t *testing.T) {
	for _, test := range encodeTests {
		cborData, err := cbor.Encode(test.Object)
		if err != nil {
			t.Fatalf("failed to encode object to CBOR: %s", err)
		}
		cborHex := hex.EncodeToString(cborData)
		if cborHex != test.CborHex {
			t.Fatalf(
				"object did not encode to expected CBOR\n  got: %s\n  wanted: %s",
				cborHex,
				test.CborHex,
			)
		}
	}
}

type genericTestObj struct {
	cbor.StructAsArray
	cbor.DecodeStoreCbor
	A uint64
	B []byte
}

func (g *genericTestObj) UnmarshalCBOR(data []byte) error {
	if err := cbor.DecodeGeneric(data, g); err != nil {
		return err
	}
	g.SetCbor(data)
	return nil
}

func (g *genericTestObj) MarshalCBOR() ([]byte, error) {
	return cbor.EncodeGeneric(g)
}

func TestGenericRoundTrip(t *testing.T) {
	cborHex := "820a42abcd"
	var obj genericTestObj
	if _, err := cbor.Decode(decodeHex(t, cborHex), &obj); err != nil {
		t.Fatalf("failed to decode: %s", err)
	}
	if obj.A != 10 || hex.EncodeToString(obj.B) != "abcd" {
		t.Fatalf("unexpected decoded object: %#v", obj)
	}
	if hex.EncodeToString(obj.Cbor()) != cborHex {
		t.Fatalf("original CBOR not stored, got %x", obj.Cbor())
	}
	cborData, err := cbor.Encode(&obj)
	if err != nil {
		t.Fatalf("failed to encode: %s", err)
	}
	if hex.EncodeToString(cborData) != cborHex {
		t.Fatalf("re-encoded CBOR mismatch: got %x, wanted %s", cborData, cborHex)
	}
}

func decodeHex(t *testing.T, s string) []byte {
	t.Helper()
	ret, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("failed to decode hex: %s", err)
	}
	return ret
}
