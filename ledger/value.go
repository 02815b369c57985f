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
	"errors"
	"math/big"

	"github.com/blinklabs-io/utxokit/cbor"
)

// Value is the amount held by a transaction output: a coin amount and optional multi-assets.
// It encodes as a bare integer when there are no assets and as [coin, multiasset] otherwise
type Value struct {
	cbor.StructAsArray
	Coin *big.Int
	// We use a pointer here to allow it to be nil
	Assets *MultiAsset
}

// NewValue returns a Value with copies of the provided coin and assets
func NewValue(coin *big.Int, assets *MultiAsset) Value {
	tmpCoin := new(big.Int)
	if coin != nil {
		tmpCoin.Set(coin)
	}
	return Value{
		Coin:   tmpCoin,
		Assets: assets,
	}
}

func (v *Value) UnmarshalCBOR(data []byte) error {
	mt, ok := cbor.MajorType(data)
	if !ok {
		return errors.New("empty value")
	}
	if mt != cbor.CborTypeArray {
		var tmpCoin big.Int
		if _, err := cbor.Decode(data, &tmpCoin); err != nil {
			return err
		}
		if tmpCoin.Sign() < 0 {
			return errors.New("negative coin amount")
		}
		v.Coin = &tmpCoin
		v.Assets = nil
		return nil
	}
	if err := cbor.DecodeGeneric(data, v); err != nil {
		return err
	}
	if v.Coin == nil {
		v.Coin = new(big.Int)
	}
	if v.Coin.Sign() < 0 {
		return errors.New("negative coin amount")
	}
	return nil
}

func (v *Value) MarshalCBOR() ([]byte, error) {
	if v.Coin == nil {
		v.Coin = new(big.Int)
	}
	if v.Assets == nil || v.Assets.Len() == 0 {
		return cbor.Encode(v.Coin)
	}
	return cbor.EncodeGeneric(v)
}

// Amount returns a copy of the coin amount
func (v Value) Amount() *big.Int {
	if v.Coin == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(v.Coin)
}

// HasAssets reports whether the value carries any multi-assets
func (v Value) HasAssets() bool {
	return v.Assets != nil && v.Assets.Len() > 0
}
