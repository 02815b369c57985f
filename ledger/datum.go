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

	"github.com/blinklabs-io/plutigo/data"
	"github.com/blinklabs-io/utxokit/cbor"
)

const (
	DatumOptionTypeHash = 0
	DatumOptionTypeData = 1
)

// Datum represents a Plutus datum along with the exact CBOR it was built from
type Datum struct {
	cbor.DecodeStoreCbor
	Data data.PlutusData
}

// NewDatumFromCbor parses the provided CBOR as Plutus data. The original bytes are kept
// so that the datum hash and re-encoding match the input exactly
func NewDatumFromCbor(cborData []byte) (*Datum, error) {
	d := &Datum{}
	if err := d.UnmarshalCBOR(cborData); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Datum) UnmarshalCBOR(cborData []byte) error {
	tmpData, err := data.Decode(cborData)
	if err != nil {
		return fmt.Errorf("invalid plutus data: %w", err)
	}
	d.Data = tmpData
	d.SetCbor(cborData)
	return nil
}

func (d *Datum) MarshalCBOR() ([]byte, error) {
	if cborData := d.Cbor(); cborData != nil {
		return cborData, nil
	}
	return data.Encode(d.Data)
}

// Hash returns the datum hash, which is computed over the datum CBOR
func (d *Datum) Hash() (DatumHash, error) {
	cborData, err := d.MarshalCBOR()
	if err != nil {
		return DatumHash{}, err
	}
	return Blake2b256Hash(cborData), nil
}

// DatumOption attaches a datum to an output either by hash or inline. Exactly one of the
// two is set
type DatumOption struct {
	hash *DatumHash
	data *Datum
}

func NewDatumOptionHash(hash DatumHash) *DatumOption {
	return &DatumOption{hash: &hash}
}

func NewDatumOptionData(datum *Datum) *DatumOption {
	return &DatumOption{data: datum}
}

// Hash returns the datum hash for a hash datum option, or nil for an inline datum
func (d *DatumOption) Hash() *DatumHash {
	if d == nil {
		return nil
	}
	return d.hash
}

// Data returns the inline datum, or nil for a hash datum option
func (d *DatumOption) Data() *Datum {
	if d == nil {
		return nil
	}
	return d.data
}

func (d *DatumOption) UnmarshalCBOR(cborData []byte) error {
	datumOptionType, err := cbor.DecodeIdFromList(cborData)
	if err != nil {
		return err
	}
	switch datumOptionType {
	case DatumOptionTypeHash:
		var tmpDatumHash struct {
			cbor.StructAsArray
			Type int
			Hash DatumHash
		}
		if _, err := cbor.Decode(cborData, &tmpDatumHash); err != nil {
			return err
		}
		d.hash = &(tmpDatumHash.Hash)
		d.data = nil
	case DatumOptionTypeData:
		var tmpDatumData struct {
			cbor.StructAsArray
			Type     int
			DataCbor cbor.WrappedCbor
		}
		if _, err := cbor.Decode(cborData, &tmpDatumData); err != nil {
			return err
		}
		datum, err := NewDatumFromCbor(tmpDatumData.DataCbor.Bytes())
		if err != nil {
			return err
		}
		d.data = datum
		d.hash = nil
	default:
		return fmt.Errorf("unsupported datum option type: %d", datumOptionType)
	}
	return nil
}

func (d *DatumOption) MarshalCBOR() ([]byte, error) {
	var tmpObj []any
	switch {
	case d.hash != nil && d.data != nil:
		return nil, errors.New("datum option has both a hash and inline data")
	case d.hash != nil:
		tmpObj = []any{DatumOptionTypeHash, d.hash}
	case d.data != nil:
		datumCbor, err := d.data.MarshalCBOR()
		if err != nil {
			return nil, err
		}
		tmpObj = []any{DatumOptionTypeData, cbor.WrappedCbor(datumCbor)}
	default:
		return nil, errors.New("unknown datum option type")
	}
	return cbor.Encode(&tmpObj)
}
