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

package utxo

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/blinklabs-io/utxokit/asset"
	"github.com/blinklabs-io/utxokit/cbor"
	"github.com/blinklabs-io/utxokit/ledger"
)

// ToOutput builds the binary ledger output for an application output
func ToOutput(out TxOutput) (*ledger.Output, error) {
	if out.DatumHash != "" && out.Datum != "" {
		return nil, ErrAmbiguousDatum
	}
	addr, err := ledger.NewAddress(out.Address)
	if err != nil {
		return nil, err
	}
	value, err := asset.ToValue(out.Assets)
	if err != nil {
		return nil, err
	}
	var datumOption *ledger.DatumOption
	switch {
	case out.DatumHash != "":
		datumHash, err := ledger.NewBlake2b256FromHex(out.DatumHash)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidDatum, err)
		}
		datumOption = ledger.NewDatumOptionHash(datumHash)
	case out.Datum != "":
		datumCbor, err := hex.DecodeString(out.Datum)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidDatum, err)
		}
		datum, err := ledger.NewDatumFromCbor(datumCbor)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidDatum, err)
		}
		datumOption = ledger.NewDatumOptionData(datum)
	}
	var scriptRef *ledger.ScriptRef
	if out.ScriptRef != nil {
		scriptRef, err = toScriptRef(*out.ScriptRef)
		if err != nil {
			return nil, err
		}
	}
	return ledger.NewOutput(addr, value, datumOption, scriptRef), nil
}

// ToInput builds the binary ledger input for an output reference
func ToInput(ref OutRef) (ledger.Input, error) {
	input, err := ledger.NewInput(ref.TxHash, int(ref.OutputIndex))
	if err != nil {
		return ledger.Input{}, fmt.Errorf("%w: %w", ErrInvalidTxHash, err)
	}
	return input, nil
}

// ToUnspentOutput builds the binary input/output pair for a UTxO
func ToUnspentOutput(u UTxO) (*ledger.UnspentOutput, error) {
	input, err := ToInput(u.OutRef)
	if err != nil {
		return nil, err
	}
	output, err := ToOutput(u.TxOutput)
	if err != nil {
		return nil, err
	}
	return ledger.NewUnspentOutput(input, output), nil
}

// FromInput returns the output reference for a binary ledger input
func FromInput(in ledger.TransactionInput) (OutRef, error) {
	if in == nil {
		return OutRef{}, errors.New("nil transaction input")
	}
	return OutRef{
		TxHash:      in.Id().String(),
		OutputIndex: in.Index(),
	}, nil
}

// FromOutput returns the application output for a binary ledger output
func FromOutput(out ledger.TransactionOutput) (TxOutput, error) {
	if out == nil {
		return TxOutput{}, errors.New("nil transaction output")
	}
	ret := TxOutput{
		Address: out.Address().String(),
		Assets: asset.FromValue(
			ledger.NewValue(out.Amount(), out.Assets()),
		),
	}
	if datumHash := out.DatumHash(); datumHash != nil {
		ret.DatumHash = datumHash.String()
	}
	if datum := out.Datum(); datum != nil {
		datumCbor, err := datum.MarshalCBOR()
		if err != nil {
			return TxOutput{}, fmt.Errorf("%w: %w", ErrInvalidDatum, err)
		}
		ret.Datum = hex.EncodeToString(datumCbor)
	}
	if scriptRef := out.ScriptRef(); scriptRef != nil {
		script, err := fromScriptRef(scriptRef)
		if err != nil {
			return TxOutput{}, err
		}
		ret.ScriptRef = &script
	}
	return ret, nil
}

// FromLedger returns the UTxO for a binary ledger input and output
func FromLedger(
	in ledger.TransactionInput,
	out ledger.TransactionOutput,
) (UTxO, error) {
	ref, err := FromInput(in)
	if err != nil {
		return UTxO{}, err
	}
	output, err := FromOutput(out)
	if err != nil {
		return UTxO{}, err
	}
	return UTxO{OutRef: ref, TxOutput: output}, nil
}

// FromUnspentOutput returns the UTxO for a binary unspent output
func FromUnspentOutput(x *ledger.UnspentOutput) (UTxO, error) {
	if x == nil {
		return UTxO{}, errors.New("nil unspent output")
	}
	return FromLedger(x.Input(), x.Output())
}

// FromUnspentOutputCbor decodes a CBOR unspent output and returns the UTxO for it
func FromUnspentOutputCbor(data []byte) (UTxO, error) {
	x, err := ledger.NewUnspentOutputFromCbor(data)
	if err != nil {
		return UTxO{}, err
	}
	return FromUnspentOutput(x)
}

func toScriptRef(script Script) (*ledger.ScriptRef, error) {
	refType, ok := scriptTypeRefTypes[script.Type]
	if !ok {
		return nil, fmt.Errorf("%w: unknown script type %q", ErrInvalidScript, script.Type)
	}
	scriptCbor, err := hex.DecodeString(script.Script)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidScript, err)
	}
	if refType != ledger.ScriptRefTypeNativeScript {
		scriptCbor, err = doubleCborEncode(scriptCbor)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidScript, err)
		}
	}
	ret, err := ledger.NewScriptRef(refType, scriptCbor)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidScript, err)
	}
	return ret, nil
}

func fromScriptRef(ref *ledger.ScriptRef) (Script, error) {
	for scriptType, refType := range scriptTypeRefTypes {
		if refType == ref.Type {
			return Script{
				Type:   scriptType,
				Script: hex.EncodeToString(ref.Script),
			}, nil
		}
	}
	return Script{}, fmt.Errorf("%w: unknown script type %d", ErrInvalidScript, ref.Type)
}

// doubleCborEncode brings a Plutus script to the bytestring-in-bytestring form found in
// reference scripts. Scripts that already have that form are returned unchanged
func doubleCborEncode(script []byte) ([]byte, error) {
	var inner []byte
	if err := cbor.DecodeStrict(script, &inner); err != nil {
		// Raw flat-encoded program
		wrapped, err := cbor.Encode(script)
		if err != nil {
			return nil, err
		}
		return cbor.Encode(wrapped)
	}
	var flat []byte
	if err := cbor.DecodeStrict(inner, &flat); err != nil {
		// Single CBOR layer
		return cbor.Encode(script)
	}
	return script, nil
}
