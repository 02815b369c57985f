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
	"fmt"

	"github.com/blinklabs-io/utxokit/asset"
	"github.com/blinklabs-io/utxokit/ledger"
)

// OutRef identifies an unspent output by transaction hash and output index
type OutRef struct {
	TxHash      string `json:"txHash"      yaml:"txHash"`
	OutputIndex uint32 `json:"outputIndex" yaml:"outputIndex"`
}

// Equal reports whether both refer to the same output
func (o OutRef) Equal(other OutRef) bool {
	return o.TxHash == other.TxHash && o.OutputIndex == other.OutputIndex
}

func (o OutRef) String() string {
	return fmt.Sprintf("%s#%d", o.TxHash, o.OutputIndex)
}

type ScriptType string

const (
	ScriptTypeNative   ScriptType = "Native"
	ScriptTypePlutusV1 ScriptType = "PlutusV1"
	ScriptTypePlutusV2 ScriptType = "PlutusV2"
	ScriptTypePlutusV3 ScriptType = "PlutusV3"
)

var scriptTypeRefTypes = map[ScriptType]uint{
	ScriptTypeNative:   ledger.ScriptRefTypeNativeScript,
	ScriptTypePlutusV1: ledger.ScriptRefTypePlutusV1,
	ScriptTypePlutusV2: ledger.ScriptRefTypePlutusV2,
	ScriptTypePlutusV3: ledger.ScriptRefTypePlutusV3,
}

// Script is a reference script. Script holds the CBOR hex of the script as it appears in
// the ledger, which for Plutus scripts is a bytestring wrapping the flat-encoded program
type Script struct {
	Type   ScriptType `json:"type"   yaml:"type"`
	Script string     `json:"script" yaml:"script"`
}

// TxOutput is an output as applications see it. DatumHash and Datum are hex strings, and at
// most one of them may be set
type TxOutput struct {
	Address   string       `json:"address"             yaml:"address"`
	Assets    asset.Assets `json:"assets"              yaml:"assets"`
	DatumHash string       `json:"datumHash,omitempty" yaml:"datumHash,omitempty"`
	Datum     string       `json:"datum,omitempty"     yaml:"datum,omitempty"`
	ScriptRef *Script      `json:"scriptRef,omitempty" yaml:"scriptRef,omitempty"`
}

// UTxO is a spendable output together with the reference that identifies it
type UTxO struct {
	OutRef   `yaml:",inline"`
	TxOutput `yaml:",inline"`
}

// Equal reports whether two UTxOs refer to the same output. Addresses and values are not
// compared
func Equal(a UTxO, b UTxO) bool {
	return a.OutRef.Equal(b.OutRef)
}
