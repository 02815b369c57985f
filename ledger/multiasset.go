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
	"bytes"
	"encoding/hex"
	"fmt"
	"maps"
	"math/big"
	"slices"
	"strings"

	"github.com/blinklabs-io/utxokit/cbor"
)

// MaxAssetNameSize is the largest asset name the ledger accepts, in bytes
const MaxAssetNameSize = 32

// MultiAsset represents a collection of policies, asset names and quantities as
// found in a transaction output value
type MultiAsset struct {
	data map[Blake2b224]map[cbor.ByteString]*big.Int
}

// NewMultiAsset creates a MultiAsset with the specified data
func NewMultiAsset(
	data map[Blake2b224]map[cbor.ByteString]*big.Int,
) *MultiAsset {
	if data == nil {
		data = make(map[Blake2b224]map[cbor.ByteString]*big.Int)
	}
	return &MultiAsset{data: data}
}

func (m *MultiAsset) UnmarshalCBOR(data []byte) error {
	tmpData := make(map[Blake2b224]map[cbor.ByteString]*big.Int)
	if _, err := cbor.Decode(data, &tmpData); err != nil {
		return err
	}
	for policyId, assets := range tmpData {
		for name, amount := range assets {
			if amount == nil || amount.Sign() < 0 {
				return fmt.Errorf(
					"invalid quantity for asset %s.%s",
					policyId.String(),
					name.String(),
				)
			}
			if len(name.Bytes()) > MaxAssetNameSize {
				return fmt.Errorf(
					"asset name under policy %s exceeds %d bytes",
					policyId.String(),
					MaxAssetNameSize,
				)
			}
		}
	}
	m.data = tmpData
	return nil
}

func (m *MultiAsset) MarshalCBOR() ([]byte, error) {
	// The encoder sorts map keys canonically, so the map can be encoded directly
	if m == nil || m.data == nil {
		return cbor.Encode(map[Blake2b224]map[cbor.ByteString]*big.Int{})
	}
	return cbor.Encode(m.data)
}

// Set stores the quantity for the specified policy and asset name. The quantity is copied
func (m *MultiAsset) Set(policyId Blake2b224, assetName []byte, amount *big.Int) {
	if m.data == nil {
		m.data = make(map[Blake2b224]map[cbor.ByteString]*big.Int)
	}
	if _, ok := m.data[policyId]; !ok {
		m.data[policyId] = make(map[cbor.ByteString]*big.Int)
	}
	tmpAmount := new(big.Int)
	if amount != nil {
		tmpAmount.Set(amount)
	}
	m.data[policyId][cbor.NewByteString(assetName)] = tmpAmount
}

// Policies returns the policy IDs in canonical (bytewise) order
func (m *MultiAsset) Policies() []Blake2b224 {
	if m == nil {
		return nil
	}
	ret := slices.Collect(maps.Keys(m.data))
	slices.SortFunc(
		ret,
		func(a, b Blake2b224) int { return bytes.Compare(a.Bytes(), b.Bytes()) },
	)
	return ret
}

// Assets returns the asset names for a policy in canonical (bytewise) order
func (m *MultiAsset) Assets(policyId Blake2b224) [][]byte {
	if m == nil {
		return nil
	}
	assets, ok := m.data[policyId]
	if !ok {
		return nil
	}
	names := slices.Collect(maps.Keys(assets))
	slices.SortFunc(
		names,
		func(a, b cbor.ByteString) int { return bytes.Compare(a.Bytes(), b.Bytes()) },
	)
	ret := make([][]byte, 0, len(names))
	for _, name := range names {
		ret = append(ret, name.Bytes())
	}
	return ret
}

// Asset returns a copy of the quantity for the specified policy and asset name, or nil
// if it isn't present
func (m *MultiAsset) Asset(policyId Blake2b224, assetName []byte) *big.Int {
	if m == nil {
		return nil
	}
	policy, ok := m.data[policyId]
	if !ok {
		return nil
	}
	amount, ok := policy[cbor.NewByteString(assetName)]
	if !ok {
		return nil
	}
	if amount == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(amount)
}

// Len returns the total number of assets across all policies
func (m *MultiAsset) Len() int {
	if m == nil {
		return 0
	}
	ret := 0
	for _, assets := range m.data {
		ret += len(assets)
	}
	return ret
}

// String returns a stable, human-friendly representation of the MultiAsset.
// Output format: [<policyId>.<assetNameHex>=<amount>, ...]
func (m *MultiAsset) String() string {
	var b strings.Builder
	b.WriteByte('[')
	first := true
	for _, policyId := range m.Policies() {
		for _, name := range m.Assets(policyId) {
			if !first {
				b.WriteString(", ")
			}
			first = false
			b.WriteString(policyId.String())
			b.WriteByte('.')
			b.WriteString(hex.EncodeToString(name))
			b.WriteByte('=')
			b.WriteString(m.Asset(policyId, name).String())
		}
	}
	b.WriteByte(']')
	return b.String()
}

type AssetFingerprint struct {
	policyId  []byte
	assetName []byte
}

func NewAssetFingerprint(policyId []byte, assetName []byte) AssetFingerprint {
	return AssetFingerprint{
		policyId:  policyId,
		assetName: assetName,
	}
}

func (a AssetFingerprint) Hash() Blake2b160 {
	return Blake2b160Hash(slices.Concat(a.policyId, a.assetName))
}

// String returns the CIP-14 bech32 fingerprint
func (a AssetFingerprint) String() string {
	encoded, err := bech32Encode("asset", a.Hash().Bytes())
	if err != nil {
		panic(err.Error())
	}
	return encoded
}
