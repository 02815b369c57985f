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
	"fmt"
	"math/big"

	"github.com/blinklabs-io/utxokit/cbor"
	utxorpc "github.com/utxorpc/go-codegen/utxorpc/v1alpha/cardano"
)

// Native script CBOR tags
const (
	nativeScriptPubkey           = 0
	nativeScriptAll              = 1
	nativeScriptAny              = 2
	nativeScriptNofK             = 3
	nativeScriptInvalidBefore    = 4
	nativeScriptInvalidHereafter = 5
)

var ErrUtxorpcOverflow = errors.New("quantity does not fit in uint64")

func (i Input) Utxorpc() *utxorpc.TxInput {
	return &utxorpc.TxInput{
		TxHash:      i.TxId.Bytes(),
		OutputIndex: i.OutputIndex,
	}
}

// Utxorpc returns the UTxO RPC form of the output. It fails when the coin or an asset
// quantity does not fit in uint64
func (o *Output) Utxorpc() (*utxorpc.TxOutput, error) {
	coin, err := utxorpcUint64(o.Amount())
	if err != nil {
		return nil, fmt.Errorf("coin: %w", err)
	}
	ret := &utxorpc.TxOutput{
		Address: o.OutputAddress.Bytes(),
		Coin:    coin,
	}
	if ret.Address == nil {
		ret.Address = []byte{}
	}
	if assets := o.Assets(); assets != nil {
		for _, policyId := range assets.Policies() {
			ma := &utxorpc.Multiasset{
				PolicyId: policyId.Bytes(),
			}
			for _, assetName := range assets.Assets(policyId) {
				amount, err := utxorpcUint64(assets.Asset(policyId, assetName))
				if err != nil {
					return nil, fmt.Errorf(
						"asset %s.%x: %w",
						policyId.String(),
						assetName,
						err,
					)
				}
				ma.Assets = append(
					ma.Assets,
					&utxorpc.Asset{
						Name:       assetName,
						OutputCoin: amount,
					},
				)
			}
			ret.Assets = append(ret.Assets, ma)
		}
	}
	if datumHash := o.DatumHash(); datumHash != nil {
		ret.Datum = &utxorpc.Datum{
			Hash: datumHash.Bytes(),
		}
	}
	if datum := o.Datum(); datum != nil {
		datumCbor, err := datum.MarshalCBOR()
		if err != nil {
			return nil, err
		}
		datumHash := Blake2b256Hash(datumCbor)
		ret.Datum = &utxorpc.Datum{
			Hash:         datumHash.Bytes(),
			OriginalCbor: datumCbor,
		}
	}
	if scriptRef := o.ScriptRef(); scriptRef != nil {
		script, err := scriptRef.Utxorpc()
		if err != nil {
			return nil, err
		}
		ret.Script = script
	}
	return ret, nil
}

// Utxorpc returns the UTxO RPC form of the script. Plutus scripts carry the flat-encoded
// program
func (s *ScriptRef) Utxorpc() (*utxorpc.Script, error) {
	raw, err := s.RawScriptBytes()
	if err != nil {
		return nil, err
	}
	switch s.Type {
	case ScriptRefTypeNativeScript:
		native, err := nativeScriptUtxorpc(raw)
		if err != nil {
			return nil, err
		}
		return &utxorpc.Script{
			Script: &utxorpc.Script_Native{Native: native},
		}, nil
	case ScriptRefTypePlutusV1:
		return &utxorpc.Script{
			Script: &utxorpc.Script_PlutusV1{PlutusV1: raw},
		}, nil
	case ScriptRefTypePlutusV2:
		return &utxorpc.Script{
			Script: &utxorpc.Script_PlutusV2{PlutusV2: raw},
		}, nil
	case ScriptRefTypePlutusV3:
		return &utxorpc.Script{
			Script: &utxorpc.Script_PlutusV3{PlutusV3: raw},
		}, nil
	default:
		return nil, fmt.Errorf("unknown script type %d", s.Type)
	}
}

func nativeScriptUtxorpc(data []byte) (*utxorpc.NativeScript, error) {
	scriptType, err := cbor.DecodeIdFromList(data)
	if err != nil {
		return nil, fmt.Errorf("invalid native script: %w", err)
	}
	switch scriptType {
	case nativeScriptPubkey:
		var tmp struct {
			cbor.StructAsArray
			Type uint
			Hash []byte
		}
		if err := cbor.DecodeStrict(data, &tmp); err != nil {
			return nil, fmt.Errorf("invalid native script: %w", err)
		}
		return &utxorpc.NativeScript{
			NativeScript: &utxorpc.NativeScript_ScriptPubkey{ScriptPubkey: tmp.Hash},
		}, nil
	case nativeScriptAll, nativeScriptAny:
		var tmp struct {
			cbor.StructAsArray
			Type    uint
			Scripts []cbor.RawMessage
		}
		if err := cbor.DecodeStrict(data, &tmp); err != nil {
			return nil, fmt.Errorf("invalid native script: %w", err)
		}
		items, err := nativeScriptsUtxorpc(tmp.Scripts)
		if err != nil {
			return nil, err
		}
		list := &utxorpc.NativeScriptList{Items: items}
		if scriptType == nativeScriptAll {
			return &utxorpc.NativeScript{
				NativeScript: &utxorpc.NativeScript_ScriptAll{ScriptAll: list},
			}, nil
		}
		return &utxorpc.NativeScript{
			NativeScript: &utxorpc.NativeScript_ScriptAny{ScriptAny: list},
		}, nil
	case nativeScriptNofK:
		var tmp struct {
			cbor.StructAsArray
			Type    uint
			N       uint32
			Scripts []cbor.RawMessage
		}
		if err := cbor.DecodeStrict(data, &tmp); err != nil {
			return nil, fmt.Errorf("invalid native script: %w", err)
		}
		items, err := nativeScriptsUtxorpc(tmp.Scripts)
		if err != nil {
			return nil, err
		}
		return &utxorpc.NativeScript{
			NativeScript: &utxorpc.NativeScript_ScriptNOfK{
				ScriptNOfK: &utxorpc.ScriptNOfK{
					K:       tmp.N,
					Scripts: items,
				},
			},
		}, nil
	case nativeScriptInvalidBefore, nativeScriptInvalidHereafter:
		var tmp struct {
			cbor.StructAsArray
			Type uint
			Slot uint64
		}
		if err := cbor.DecodeStrict(data, &tmp); err != nil {
			return nil, fmt.Errorf("invalid native script: %w", err)
		}
		if scriptType == nativeScriptInvalidBefore {
			return &utxorpc.NativeScript{
				NativeScript: &utxorpc.NativeScript_InvalidBefore{InvalidBefore: tmp.Slot},
			}, nil
		}
		return &utxorpc.NativeScript{
			NativeScript: &utxorpc.NativeScript_InvalidHereafter{InvalidHereafter: tmp.Slot},
		}, nil
	default:
		return nil, fmt.Errorf("invalid native script: unknown type %d", scriptType)
	}
}

func nativeScriptsUtxorpc(scripts []cbor.RawMessage) ([]*utxorpc.NativeScript, error) {
	ret := make([]*utxorpc.NativeScript, 0, len(scripts))
	for _, script := range scripts {
		tmp, err := nativeScriptUtxorpc(script)
		if err != nil {
			return nil, err
		}
		ret = append(ret, tmp)
	}
	return ret, nil
}

func utxorpcUint64(v *big.Int) (uint64, error) {
	if v == nil {
		return 0, nil
	}
	if v.Sign() < 0 || !v.IsUint64() {
		return 0, fmt.Errorf("%w: %s", ErrUtxorpcOverflow, v.String())
	}
	return v.Uint64(), nil
}
