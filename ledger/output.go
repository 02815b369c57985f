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
)

// Output is a transaction output. It encodes in the post-Alonzo map format and also
// decodes legacy [address, value, datum_hash?] array outputs
type Output struct {
	cbor.DecodeStoreCbor
	OutputAddress   Address      `cbor:"0,keyasint"`
	OutputAmount    Value        `cbor:"1,keyasint"`
	DatumOption     *DatumOption `cbor:"2,keyasint,omitempty"`
	OutputScriptRef *ScriptRef   `cbor:"3,keyasint,omitempty"`
	legacyOutput    bool
}

// NewOutput builds a post-Alonzo output. Either of datumOption and scriptRef may be nil
func NewOutput(
	addr Address,
	amount Value,
	datumOption *DatumOption,
	scriptRef *ScriptRef,
) *Output {
	return &Output{
		OutputAddress:   addr,
		OutputAmount:    amount,
		DatumOption:     datumOption,
		OutputScriptRef: scriptRef,
	}
}

// NewOutputFromCbor decodes an output from CBOR
func NewOutputFromCbor(data []byte) (*Output, error) {
	var o Output
	if err := cbor.DecodeStrict(data, &o); err != nil {
		return nil, fmt.Errorf("output decode error: %w", err)
	}
	return &o, nil
}

func (o *Output) UnmarshalCBOR(cborData []byte) error {
	mt, ok := cbor.MajorType(cborData)
	if !ok {
		return errors.New("empty output")
	}
	switch mt {
	case cbor.CborTypeArray:
		if err := o.unmarshalLegacy(cborData); err != nil {
			return err
		}
	case cbor.CborTypeMap:
		if err := cbor.DecodeGeneric(cborData, o); err != nil {
			return err
		}
		o.legacyOutput = false
	default:
		return fmt.Errorf("unexpected output CBOR major type: 0x%x", mt)
	}
	o.SetCbor(cborData)
	return nil
}

func (o *Output) unmarshalLegacy(cborData []byte) error {
	var items []cbor.RawMessage
	if _, err := cbor.Decode(cborData, &items); err != nil {
		return err
	}
	if len(items) != 2 && len(items) != 3 {
		return fmt.Errorf("legacy output has %d items, expected 2 or 3", len(items))
	}
	var addr Address
	if _, err := cbor.Decode(items[0], &addr); err != nil {
		return err
	}
	var amount Value
	if _, err := cbor.Decode(items[1], &amount); err != nil {
		return err
	}
	o.OutputAddress = addr
	o.OutputAmount = amount
	o.DatumOption = nil
	o.OutputScriptRef = nil
	if len(items) == 3 {
		var datumHash DatumHash
		if _, err := cbor.Decode(items[2], &datumHash); err != nil {
			return err
		}
		o.DatumOption = NewDatumOptionHash(datumHash)
	}
	o.legacyOutput = true
	return nil
}

func (o *Output) MarshalCBOR() ([]byte, error) {
	if o.DatumOption != nil && o.DatumOption.hash != nil && o.DatumOption.data != nil {
		return nil, errors.New("output datum option has both a hash and inline data")
	}
	if o.legacyOutput {
		tmpObj := []any{&o.OutputAddress, &o.OutputAmount}
		if hash := o.DatumHash(); hash != nil {
			tmpObj = append(tmpObj, hash)
		}
		return cbor.Encode(tmpObj)
	}
	return cbor.EncodeGeneric(o)
}

func (o Output) Address() Address {
	return o.OutputAddress
}

func (o Output) Amount() *big.Int {
	return o.OutputAmount.Amount()
}

func (o Output) Assets() *MultiAsset {
	return o.OutputAmount.Assets
}

func (o Output) Value() Value {
	return o.OutputAmount
}

func (o Output) DatumHash() *DatumHash {
	return o.DatumOption.Hash()
}

func (o Output) Datum() *Datum {
	return o.DatumOption.Data()
}

func (o Output) ScriptRef() *ScriptRef {
	return o.OutputScriptRef
}

// IsLegacy reports whether the output was decoded from the legacy array format
func (o Output) IsLegacy() bool {
	return o.legacyOutput
}
