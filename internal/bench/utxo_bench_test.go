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

package bench

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/blinklabs-io/utxokit/asset"
	"github.com/blinklabs-io/utxokit/utxo"
)

// benchSink prevents compiler dead-code elimination in benchmarks.
var benchSink any

func TestBenchUtxos(t *testing.T) {
	utxos := BenchUtxos(20)
	if len(utxos) != 20 {
		t.Fatalf("expected 20 UTxOs, got %d", len(utxos))
	}
	seen := make(map[string]bool)
	for _, u := range utxos {
		if seen[u.OutRef.String()] {
			t.Fatalf("duplicate reference %s", u.OutRef)
		}
		seen[u.OutRef.String()] = true
	}
	outputs := MustBenchUnspentOutputs(20)
	back, err := utxo.FromUnspentOutputs(outputs)
	if err != nil {
		t.Fatalf("FromUnspentOutputs failed: %v", err)
	}
	for i := range utxos {
		if !utxo.Equal(utxos[i], back[i]) {
			t.Fatalf("UTxO %d: reference mismatch", i)
		}
		if !asset.Equal(utxos[i].Assets, back[i].Assets) {
			t.Fatalf("UTxO %d: assets mismatch", i)
		}
		if utxos[i].Datum != back[i].Datum {
			t.Fatalf("UTxO %d: datum mismatch", i)
		}
	}
}

// BenchmarkToUnspentOutput benchmarks translating a single UTxO to its binary form.
func BenchmarkToUnspentOutput(b *testing.B) {
	u := BenchUtxos(1)[0]
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchSink, _ = utxo.ToUnspentOutput(u)
	}
}

// BenchmarkFromUnspentOutputCbor benchmarks decoding and translating a single UTxO.
func BenchmarkFromUnspentOutputCbor(b *testing.B) {
	data, err := MustBenchUnspentOutputs(1)[0].Cbor()
	if err != nil {
		b.Fatalf("Cbor failed: %v", err)
	}
	b.SetBytes(int64(len(data)))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchSink, _ = utxo.FromUnspentOutputCbor(data)
	}
}

// BenchmarkToUnspentOutputs benchmarks batch translation by set size and worker count.
func BenchmarkToUnspentOutputs(b *testing.B) {
	for _, size := range UtxoSetSizes {
		utxos := BenchUtxos(size)
		for _, workers := range []int{1, 4} {
			translator := utxo.NewTranslator(utxo.WithWorkers(workers))
			b.Run(fmt.Sprintf("Size_%d/Workers_%d", size, workers), func(b *testing.B) {
				b.ReportAllocs()
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					benchSink, _ = translator.ToUnspentOutputs(utxos)
				}
			})
		}
	}
}

// BenchmarkFromUnspentOutputs benchmarks batch translation from the binary form.
func BenchmarkFromUnspentOutputs(b *testing.B) {
	for _, size := range UtxoSetSizes {
		outputs := MustBenchUnspentOutputs(size)
		for _, workers := range []int{1, 4} {
			translator := utxo.NewTranslator(utxo.WithWorkers(workers))
			b.Run(fmt.Sprintf("Size_%d/Workers_%d", size, workers), func(b *testing.B) {
				b.ReportAllocs()
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					benchSink, _ = translator.FromUnspentOutputs(outputs)
				}
			})
		}
	}
}

// BenchmarkSelect benchmarks coin selection where most of the set must be scanned.
func BenchmarkSelect(b *testing.B) {
	for _, size := range UtxoSetSizes {
		utxos := BenchUtxos(size)
		required := asset.Assets{
			asset.Lovelace: big.NewInt(int64(size) * 1_000_000),
			BenchToken(2):  big.NewInt(1),
		}
		b.Run(fmt.Sprintf("Size_%d", size), func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				benchSink, _ = utxo.Select(utxos, required)
			}
		})
	}
}

// BenchmarkSortByLovelace benchmarks sorting UTxOs by lovelace.
func BenchmarkSortByLovelace(b *testing.B) {
	for _, size := range UtxoSetSizes {
		utxos := BenchUtxos(size)
		b.Run(fmt.Sprintf("Size_%d", size), func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				benchSink = utxo.SortByLovelace(utxos, utxo.SortDescending)
			}
		})
	}
}
