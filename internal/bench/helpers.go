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

// Package bench provides benchmark fixtures for UTxO translation and selection.
package bench

import (
	"fmt"
	"math/big"

	"github.com/blinklabs-io/utxokit/asset"
	"github.com/blinklabs-io/utxokit/ledger"
	"github.com/blinklabs-io/utxokit/utxo"
)

const (
	benchAddress = "addr1v887yfpftg5z660dmf063hj0zv0zh8xjrfkfyd2e07j076cecha5k"
	// Constr 0 []
	benchDatum = "d87980"
	// Always-succeeds PlutusV2 script
	benchScript = "4e4d01000033222220051200120011"
	// "token"
	benchTokenName = "746f6b656e"
)

// UtxoSetSizes are the UTxO set sizes used by the size-scaled benchmarks
var UtxoSetSizes = []int{10, 100, 1000}

// BenchUtxos returns count UTxOs with distinct references. Every UTxO holds lovelace and a
// token under one of three policies. Every third UTxO carries an inline datum and every
// fifth carries a reference script
func BenchUtxos(count int) []utxo.UTxO {
	ret := make([]utxo.UTxO, 0, count)
	for i := range count {
		u := utxo.UTxO{
			OutRef: utxo.OutRef{
				TxHash:      fmt.Sprintf("%064x", i/4+1),
				OutputIndex: uint32(i % 4), // #nosec G115
			},
			TxOutput: utxo.TxOutput{
				Address: benchAddress,
				Assets: asset.Assets{
					asset.Lovelace:                      big.NewInt(int64(1_000_000 + (i*7919)%10_000_000)),
					BenchPolicyId(i%3) + benchTokenName: big.NewInt(int64(i + 1)),
				},
			},
		}
		if i%3 == 0 {
			u.Datum = benchDatum
		}
		if i%5 == 0 {
			u.ScriptRef = &utxo.Script{
				Type:   utxo.ScriptTypePlutusV2,
				Script: benchScript,
			}
		}
		ret = append(ret, u)
	}
	return ret
}

// BenchUnspentOutputs returns the binary form of BenchUtxos
func BenchUnspentOutputs(count int) ([]*ledger.UnspentOutput, error) {
	return utxo.ToUnspentOutputs(BenchUtxos(count))
}

// MustBenchUnspentOutputs is like BenchUnspentOutputs but panics on error
func MustBenchUnspentOutputs(count int) []*ledger.UnspentOutput {
	ret, err := BenchUnspentOutputs(count)
	if err != nil {
		panic(fmt.Sprintf("failed to build unspent outputs: %v", err))
	}
	return ret
}

// BenchPolicyId returns a deterministic policy ID for the given index
func BenchPolicyId(idx int) string {
	return fmt.Sprintf("%056x", idx+1)
}

// BenchToken returns the unit of the benchmark token under the given policy index
func BenchToken(idx int) string {
	return BenchPolicyId(idx) + benchTokenName
}
