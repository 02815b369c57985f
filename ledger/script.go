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
	"slices"

	"github.com/blinklabs-io/utxokit/cbor"
)

const (
	ScriptRefTypeNativeScript = 0
	ScriptRefTypePlutusV1     = 1
	ScriptRefTypePlutusV2     = 2
	ScriptRefTypePlutusV3     = 3
)

// ScriptRef is a reference script attached to an output. Script holds the CBOR of
// the script itself: a native script structure, or a bytestring wrapping the
// flat-encoded Plutus program
type ScriptRef struct {
	Type   uint
	Script cbor.RawMessage
}

// NewScriptRef validates the script CBOR for the given script type and returns a ScriptRef
func NewScriptRef(scriptType uint, scriptCbor []byte) (*ScriptRef, error) {
	if scriptType > ScriptRefTypePlutusV3 {
		return nil, fmt.Errorf("unknown script type %d", scriptType)
	}
	if len(scriptCbor) == 0 {
		return nil, errors.New("empty script")
	}
	if scriptType == ScriptRefTypeNativeScript {
		var tmp []cbor.RawMessage
		if err := cbor.DecodeStrict(scriptCbor, &tmp); err != nil {
			return nil, fmt.Errorf("invalid native script: %w", err)
		}
	} else {
		var tmp []byte
		if err := cbor.DecodeStrict(scriptCbor, &tmp); err != nil {
			return nil, fmt.Errorf("invalid plutus script: %w", err)
		}
	}
	return &ScriptRef{
		Type:   scriptType,
		Script: slices.Clone(scriptCbor),
	}, nil
}

func (s *ScriptRef) UnmarshalCBOR(data []byte) error {
	// Unwrap outer CBOR tag
	var tmpTag cbor.WrappedCbor
	if _, err := cbor.Decode(data, &tmpTag); err != nil {
		return err
	}
	var rawScript struct {
		cbor.StructAsArray
		Type uint
		Raw  cbor.RawMessage
	}
	if _, err := cbor.Decode(tmpTag.Bytes(), &rawScript); err != nil {
		return err
	}
	tmpScript, err := NewScriptRef(rawScript.Type, rawScript.Raw)
	if err != nil {
		return err
	}
	*s = *tmpScript
	return nil
}

func (s *ScriptRef) MarshalCBOR() ([]byte, error) {
	tmpData := []any{
		s.Type,
		s.Script,
	}
	tmpDataCbor, err := cbor.Encode(tmpData)
	if err != nil {
		return nil, err
	}
	return cbor.Encode(cbor.WrappedCbor(tmpDataCbor))
}

// RawScriptBytes returns the script bytes used for hashing: the native script CBOR,
// or the flat-encoded program for Plutus scripts
func (s *ScriptRef) RawScriptBytes() ([]byte, error) {
	if s.Type == ScriptRefTypeNativeScript {
		return slices.Clone([]byte(s.Script)), nil
	}
	var tmp []byte
	if _, err := cbor.Decode(s.Script, &tmp); err != nil {
		return nil, err
	}
	return tmp, nil
}

// Hash returns the script hash: Blake2b-224 over the language tag and the raw script bytes
func (s *ScriptRef) Hash() (ScriptHash, error) {
	raw, err := s.RawScriptBytes()
	if err != nil {
		return ScriptHash{}, err
	}
	return Blake2b224Hash(
		slices.Concat(
			[]byte{byte(s.Type)},
			raw,
		),
	), nil
}
