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
	"encoding/hex"
	"math/big"
	"testing"

	"github.com/blinklabs-io/utxokit/asset"
	"github.com/blinklabs-io/utxokit/cbor"
	"github.com/blinklabs-io/utxokit/internal/test"
	"github.com/blinklabs-io/utxokit/ledger"
	"github.com/blinklabs-io/utxokit/utxo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testAddress   = "addr1v887yfpftg5z660dmf063hj0zv0zh8xjrfkfyd2e07j076cecha5k"
	testTxHash    = "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"
	testPolicyId  = "29a8fb8318718bd756124f0c144f56d4b4579dc5edf2dd42d669ac61"
	testTokenName = "4d794d696e746564546f6b656e"
	testDatumHash = "923918e403bf43c34b4ef6b48eb2ee04babed17320d8d1b9ff9ad086e86f44ec"
	// Constr 0 []
	testDatum = "d87980"
	// Always-succeeds PlutusV2 script
	testScript = "4e4d01000033222220051200120011"

	testUnspentCborHex = "82825820" + testTxHash + "03a200581d61cfe224295a282d69edda5fa8de4f131e2b9cd21a6c9235597fa4ff6b01821a001e8480a1581c" + testPolicyId + "a14d" + testTokenName + "01"
)

func testUtxo() utxo.UTxO {
	return utxo.UTxO{
		OutRef: utxo.OutRef{
			TxHash:      testTxHash,
			OutputIndex: 3,
		},
		TxOutput: utxo.TxOutput{
			Address: testAddress,
			Assets: asset.Assets{
				asset.Lovelace:               big.NewInt(2_000_000),
				testPolicyId + testTokenName: big.NewInt(1),
			},
		},
	}
}

func TestToUnspentOutput(t *testing.T) {
	x, err := utxo.ToUnspentOutput(testUtxo())
	require.NoError(t, err)
	cborHex, err := x.CborHex()
	require.NoError(t, err)
	assert.Equal(t, testUnspentCborHex, cborHex)
}

func TestFromUnspentOutputCbor(t *testing.T) {
	u, err := utxo.FromUnspentOutputCbor(test.DecodeHexString(testUnspentCborHex))
	require.NoError(t, err)
	expected := testUtxo()
	assert.Equal(t, expected.OutRef, u.OutRef)
	assert.Equal(t, expected.Address, u.Address)
	assert.True(t, asset.Equal(expected.Assets, u.Assets), "got %v", u.Assets)
	assert.Empty(t, u.DatumHash)
	assert.Empty(t, u.Datum)
	assert.Nil(t, u.ScriptRef)
}

func TestUtxoRoundTrip(t *testing.T) {
	testDefs := []struct {
		name   string
		modify func(*utxo.UTxO)
	}{
		{
			name:   "plain",
			modify: func(*utxo.UTxO) {},
		},
		{
			name: "datum hash",
			modify: func(u *utxo.UTxO) {
				u.DatumHash = testDatumHash
			},
		},
		{
			name: "inline datum",
			modify: func(u *utxo.UTxO) {
				u.Datum = testDatum
			},
		},
		{
			name: "inline datum and plutus script",
			modify: func(u *utxo.UTxO) {
				u.Datum = testDatum
				u.ScriptRef = &utxo.Script{
					Type:   utxo.ScriptTypePlutusV2,
					Script: testScript,
				}
			},
		},
		{
			name: "native script",
			modify: func(u *utxo.UTxO) {
				u.ScriptRef = &utxo.Script{
					Type:   utxo.ScriptTypeNative,
					Script: "8200581c" + test.PolicyId(0x0f),
				}
			},
		},
		{
			name: "byron address",
			modify: func(u *utxo.UTxO) {
				u.Address = "FHnt4NL7yPXvDWHa8bVs73UEUdJd64VxWXSFNqetECtYfTd9TtJguJ14Lu3feth"
			},
		},
		{
			name: "huge quantity",
			modify: func(u *utxo.UTxO) {
				u.Assets[testPolicyId+testTokenName] = test.BigInt("18446744073709551617")
			},
		},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.name, func(t *testing.T) {
			u := testUtxo()
			testDef.modify(&u)
			x, err := utxo.ToUnspentOutput(u)
			require.NoError(t, err)
			cborData, err := x.Cbor()
			require.NoError(t, err)
			decoded, err := utxo.FromUnspentOutputCbor(cborData)
			require.NoError(t, err)
			assert.Equal(t, u.OutRef, decoded.OutRef)
			assert.Equal(t, u.Address, decoded.Address)
			assert.True(t, asset.Equal(u.Assets, decoded.Assets), "got %v", decoded.Assets)
			assert.Equal(t, u.DatumHash, decoded.DatumHash)
			assert.Equal(t, u.Datum, decoded.Datum)
			assert.Equal(t, u.ScriptRef, decoded.ScriptRef)
		})
	}
}

func TestToOutputScriptEncodings(t *testing.T) {
	// Single CBOR and raw flat forms are brought to the reference script form
	for _, script := range []string{testScript, testScript[2:], testScript[4:]} {
		out := testUtxo().TxOutput
		out.ScriptRef = &utxo.Script{Type: utxo.ScriptTypePlutusV2, Script: script}
		binOut, err := utxo.ToOutput(out)
		require.NoError(t, err, script)
		require.NotNil(t, binOut.ScriptRef())
		assert.Equal(t, testScript, hex.EncodeToString(binOut.ScriptRef().Script))
		hash, err := binOut.ScriptRef().Hash()
		require.NoError(t, err)
		assert.Equal(
			t,
			"793f8c8cffba081b2a56462fc219cc8fe652d6a338b62c7b134876e7",
			hash.String(),
		)
	}
}

func TestToOutputAmbiguousDatum(t *testing.T) {
	out := testUtxo().TxOutput
	out.DatumHash = testDatumHash
	out.Datum = testDatum
	_, err := utxo.ToOutput(out)
	assert.ErrorIs(t, err, utxo.ErrAmbiguousDatum)
	u := testUtxo()
	u.TxOutput = out
	_, err = utxo.ToUnspentOutput(u)
	assert.ErrorIs(t, err, utxo.ErrAmbiguousDatum)
}

func TestToOutputErrors(t *testing.T) {
	testDefs := []struct {
		name   string
		modify func(*utxo.TxOutput)
		err    error
	}{
		{
			name:   "bad address",
			modify: func(o *utxo.TxOutput) { o.Address = "addr1notvalid" },
			err:    ledger.ErrInvalidAddress,
		},
		{
			name:   "bad unit",
			modify: func(o *utxo.TxOutput) { o.Assets["abcd"] = big.NewInt(1) },
			err:    asset.ErrInvalidUnitFormat,
		},
		{
			name:   "negative quantity",
			modify: func(o *utxo.TxOutput) { o.Assets[asset.Lovelace] = big.NewInt(-1) },
			err:    asset.ErrNegativeQuantity,
		},
		{
			name:   "short datum hash",
			modify: func(o *utxo.TxOutput) { o.DatumHash = testDatumHash[:62] },
			err:    utxo.ErrInvalidDatum,
		},
		{
			name:   "datum not hex",
			modify: func(o *utxo.TxOutput) { o.Datum = "zz" },
			err:    utxo.ErrInvalidDatum,
		},
		{
			name:   "datum not plutus data",
			modify: func(o *utxo.TxOutput) { o.Datum = "ff" },
			err:    utxo.ErrInvalidDatum,
		},
		{
			name: "unknown script type",
			modify: func(o *utxo.TxOutput) {
				o.ScriptRef = &utxo.Script{Type: "PlutusV9", Script: testScript}
			},
			err: utxo.ErrInvalidScript,
		},
		{
			name: "native script not an array",
			modify: func(o *utxo.TxOutput) {
				o.ScriptRef = &utxo.Script{Type: utxo.ScriptTypeNative, Script: testScript}
			},
			err: utxo.ErrInvalidScript,
		},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.name, func(t *testing.T) {
			out := testUtxo().TxOutput
			testDef.modify(&out)
			_, err := utxo.ToOutput(out)
			assert.ErrorIs(t, err, testDef.err)
		})
	}
}

func TestToInput(t *testing.T) {
	in, err := utxo.ToInput(utxo.OutRef{TxHash: testTxHash, OutputIndex: 7})
	require.NoError(t, err)
	assert.Equal(t, testTxHash, in.Id().String())
	assert.Equal(t, uint32(7), in.Index())
	cborData, err := cbor.Encode(in)
	require.NoError(t, err)
	assert.Equal(t, "825820"+testTxHash+"07", hex.EncodeToString(cborData))
	for _, txHash := range []string{"", testTxHash[:62], testTxHash + "00", "zz" + testTxHash[2:]} {
		_, err := utxo.ToInput(utxo.OutRef{TxHash: txHash})
		assert.ErrorIs(t, err, utxo.ErrInvalidTxHash, txHash)
	}
}

func TestFromLedgerLegacyOutput(t *testing.T) {
	out, err := ledger.NewOutputFromCbor(test.DecodeHexString(
		"83581d61cfe224295a282d69edda5fa8de4f131e2b9cd21a6c9235597fa4ff6b1a001e84805820" + testDatumHash,
	))
	require.NoError(t, err)
	in, err := ledger.NewInput(testTxHash, 0)
	require.NoError(t, err)
	u, err := utxo.FromLedger(in, out)
	require.NoError(t, err)
	assert.Equal(t, testAddress, u.Address)
	assert.Equal(t, testDatumHash, u.DatumHash)
	assert.True(t, asset.Equal(asset.FromLovelace(2_000_000), u.Assets))
}

func TestFromNil(t *testing.T) {
	_, err := utxo.FromUnspentOutput(nil)
	assert.Error(t, err)
	_, err = utxo.FromOutput(nil)
	assert.Error(t, err)
	_, err = utxo.FromInput(nil)
	assert.Error(t, err)
}

func TestTranslationDoesNotModifyInput(t *testing.T) {
	u := testUtxo()
	x, err := utxo.ToUnspentOutput(u)
	require.NoError(t, err)
	assert.True(t, asset.Equal(testUtxo().Assets, u.Assets))
	decoded, err := utxo.FromUnspentOutput(x)
	require.NoError(t, err)
	decoded.Assets[asset.Lovelace].SetInt64(1)
	again, err := utxo.FromUnspentOutput(x)
	require.NoError(t, err)
	assert.Equal(t, int64(2_000_000), again.Assets.Lovelace().Int64())
}
