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

package asset

import (
	"encoding/hex"
	"math/big"

	"github.com/blinklabs-io/utxokit/cbor"
	"github.com/blinklabs-io/utxokit/ledger"
)

// ToValue converts an asset map to a ledger value. Units other than lovelace are grouped by
// policy ID, and zero quantities are left out since the ledger can't represent them
func ToValue(assets Assets) (ledger.Value, error) {
	coin := new(big.Int)
	multiAssetData := map[ledger.Blake2b224]map[cbor.ByteString]*big.Int{}
	for unit, qty := range assets {
		qty = quantityOrZero(qty)
		if qty.Sign() < 0 {
			return ledger.Value{}, UnitError{Unit: unit, Err: ErrNegativeQuantity}
		}
		if unit == Lovelace {
			coin.Set(qty)
			continue
		}
		policyId, assetName, err := decodeUnit(unit)
		if err != nil {
			return ledger.Value{}, err
		}
		if qty.Sign() == 0 {
			continue
		}
		policyAssets, ok := multiAssetData[policyId]
		if !ok {
			policyAssets = map[cbor.ByteString]*big.Int{}
			multiAssetData[policyId] = policyAssets
		}
		policyAssets[cbor.NewByteString(assetName)] = new(big.Int).Set(qty)
	}
	var multiAsset *ledger.MultiAsset
	if len(multiAssetData) > 0 {
		multiAsset = ledger.NewMultiAsset(multiAssetData)
	}
	return ledger.NewValue(coin, multiAsset), nil
}

// FromValue converts a ledger value to an asset map. The result always has a lovelace
// entry, and each asset unit is the policy ID hex followed by the raw asset name bytes as hex
func FromValue(value ledger.Value) Assets {
	ret := Assets{
		Lovelace: value.Amount(),
	}
	if !value.HasAssets() {
		return ret
	}
	for _, policyId := range value.Assets.Policies() {
		for _, assetName := range value.Assets.Assets(policyId) {
			unit := policyId.String() + hex.EncodeToString(assetName)
			ret[unit] = value.Assets.Asset(policyId, assetName)
		}
	}
	return ret
}
