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

package utxo_test

import (
	"bytes"
	"log/slog"
	"math/big"
	"testing"

	"github.com/blinklabs-io/utxokit/asset"
	"github.com/blinklabs-io/utxokit/internal/test"
	"github.com/blinklabs-io/utxokit/utxo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func selectTestUtxo(idx uint32, assets asset.Assets) utxo.UTxO {
	return utxo.UTxO{
		OutRef: utxo.OutRef{
			TxHash:      test.TxHash(0x01),
			OutputIndex: idx,
		},
		TxOutput: utxo.TxOutput{
			Address: testAddress,
			Assets:  assets,
		},
	}
}

func outputIndexes(utxos []utxo.UTxO) []uint32 {
	ret := make([]uint32, 0, len(utxos))
	for _, u := range utxos {
		ret = append(ret, u.OutputIndex)
	}
	return ret
}

func TestSelectUtxos(t *testing.T) {
	tokenA := test.PolicyId(0xaa) + "61"
	tokenB := test.PolicyId(0xbb) + "62"
	testDefs := []struct {
		name     string
		utxos    []utxo.UTxO
		required asset.Assets
		expected []uint32
	}{
		{
			name: "needs both in order",
			utxos: []utxo.UTxO{
				selectTestUtxo(0, asset.FromLovelace(5)),
				selectTestUtxo(1, asset.FromLovelace(3)),
			},
			required: asset.FromLovelace(7),
			expected: []uint32{0, 1},
		},
		{
			name: "insufficient",
			utxos: []utxo.UTxO{
				selectTestUtxo(0, asset.FromLovelace(5)),
				selectTestUtxo(1, asset.FromLovelace(3)),
			},
			required: asset.FromLovelace(100),
			expected: []uint32{},
		},
		{
			name: "first satisfies",
			utxos: []utxo.UTxO{
				selectTestUtxo(0, asset.FromLovelace(10)),
				selectTestUtxo(1, asset.FromLovelace(10)),
			},
			required: asset.FromLovelace(7),
			expected: []uint32{0},
		},
		{
			name: "exact match",
			utxos: []utxo.UTxO{
				selectTestUtxo(0, asset.FromLovelace(7)),
				selectTestUtxo(1, asset.FromLovelace(10)),
			},
			required: asset.FromLovelace(7),
			expected: []uint32{0},
		},
		{
			name: "skips non-contributing",
			utxos: []utxo.UTxO{
				selectTestUtxo(0, asset.Assets{tokenB: big.NewInt(1)}),
				selectTestUtxo(1, asset.Assets{asset.Lovelace: big.NewInt(0), tokenA: big.NewInt(2)}),
				selectTestUtxo(2, asset.Assets{tokenA: big.NewInt(3)}),
			},
			required: asset.Assets{tokenA: big.NewInt(4)},
			expected: []uint32{1, 2},
		},
		{
			name: "multi-asset, one utxo covers two units",
			utxos: []utxo.UTxO{
				selectTestUtxo(0, asset.Assets{asset.Lovelace: big.NewInt(2)}),
				selectTestUtxo(1, asset.Assets{asset.Lovelace: big.NewInt(5), tokenA: big.NewInt(1)}),
				selectTestUtxo(2, asset.Assets{tokenB: big.NewInt(9)}),
			},
			required: asset.Assets{asset.Lovelace: big.NewInt(6), tokenA: big.NewInt(1)},
			expected: []uint32{0, 1},
		},
		{
			name: "big quantities",
			utxos: []utxo.UTxO{
				selectTestUtxo(0, asset.Assets{tokenA: test.BigInt("9007199254740993")}),
				selectTestUtxo(1, asset.Assets{tokenA: test.BigInt("9007199254740993")}),
			},
			required: asset.Assets{tokenA: test.BigInt("18014398509481986")},
			expected: []uint32{0, 1},
		},
		{
			name: "nothing required",
			utxos: []utxo.UTxO{
				selectTestUtxo(0, asset.FromLovelace(5)),
			},
			required: asset.Assets{asset.Lovelace: big.NewInt(0)},
			expected: []uint32{},
		},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.name, func(t *testing.T) {
			selected := utxo.SelectUtxos(testDef.utxos, testDef.required)
			require.NotNil(t, selected)
			assert.Equal(t, testDef.expected, outputIndexes(selected))
		})
	}
}

func TestSelectStatus(t *testing.T) {
	utxos := []utxo.UTxO{
		selectTestUtxo(0, asset.FromLovelace(5)),
		selectTestUtxo(1, asset.FromLovelace(3)),
	}
	selection, err := utxo.Select(utxos, asset.FromLovelace(7))
	require.NoError(t, err)
	assert.Equal(t, utxo.SelectionSatisfied, selection.Status)
	assert.Len(t, selection.Selected, 2)

	selection, err = utxo.Select(utxos, asset.Assets{})
	require.NoError(t, err)
	assert.Equal(t, utxo.SelectionTrivial, selection.Status)
	assert.Empty(t, selection.Selected)

	_, err = utxo.Select(utxos, asset.FromLovelace(100))
	require.ErrorIs(t, err, utxo.ErrSelectionInsufficient)
	var insufficientErr utxo.InsufficientError
	require.ErrorAs(t, err, &insufficientErr)
	assert.True(
		t,
		asset.Equal(asset.FromLovelace(92), insufficientErr.Missing),
		"got %v",
		insufficientErr.Missing,
	)
	assert.Contains(t, err.Error(), "lovelace=92")
}

func TestSelectDoesNotModifyInput(t *testing.T) {
	utxos := []utxo.UTxO{
		selectTestUtxo(0, asset.FromLovelace(5)),
		selectTestUtxo(1, asset.FromLovelace(3)),
	}
	required := asset.FromLovelace(7)
	utxo.SelectUtxos(utxos, required)
	utxo.SelectUtxos(utxos, asset.FromLovelace(100))
	assert.Equal(t, int64(7), required.Lovelace().Int64())
	assert.Equal(t, int64(5), utxos[0].Assets.Lovelace().Int64())
	assert.Equal(t, int64(3), utxos[1].Assets.Lovelace().Int64())
}

func TestSelectLogger(t *testing.T) {
	var logBuf bytes.Buffer
	logger := slog.New(
		slog.NewTextHandler(&logBuf, &slog.HandlerOptions{Level: slog.LevelDebug}),
	)
	utxos := []utxo.UTxO{
		selectTestUtxo(0, asset.FromLovelace(5)),
	}
	_, err := utxo.Select(utxos, asset.FromLovelace(7), utxo.WithSelectLogger(logger))
	require.ErrorIs(t, err, utxo.ErrSelectionInsufficient)
	assert.Contains(t, logBuf.String(), "coin selection ran out of UTxOs")
	assert.Contains(t, logBuf.String(), "missing_units=1")
	// Nothing is logged when the selection succeeds
	logBuf.Reset()
	_, err = utxo.Select(utxos, asset.FromLovelace(5), utxo.WithSelectLogger(logger))
	require.NoError(t, err)
	assert.Empty(t, logBuf.String())
}
