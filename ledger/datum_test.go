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
	"encoding/hex"
	"testing"

	"github.com/blinklabs-io/utxokit/cbor"
	"github.com/blinklabs-io/utxokit/internal/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDatumHash(t *testing.T) {
	// Constr 0 []
	datum, err := NewDatumFromCbor(test.DecodeHexString("d87980"))
	require.NoError(t, err)
	hash, err := datum.Hash()
	require.NoError(t, err)
	assert.Equal(
		t,
		"923918e403bf43c34b4ef6b48eb2ee04babed17320d8d1b9ff9ad086e86f44ec",
		hash.String(),
	)
}

func TestDatumInvalid(t *testing.T) {
	_, err := NewDatumFromCbor(test.DecodeHexString("ff"))
	assert.Error(t, err)
}

func TestDatumOptionDecode(t *testing.T) {
	testDefs := []struct {
		name         string
		cborHex      string
		expectedHash string
		expectedData string
	}{
		{
			name:         "hash",
			cborHex:      "82005820923918e403bf43c34b4ef6b48eb2ee04babed17320d8d1b9ff9ad086e86f44ec",
			expectedHash: "923918e403bf43c34b4ef6b48eb2ee04babed17320d8d1b9ff9ad086e86f44ec",
		},
		{
			name:         "inline",
			cborHex:      "8201d81843d87980",
			expectedData: "d87980",
		},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.name, func(t *testing.T) {
			var opt DatumOption
			_, err := cbor.Decode(test.DecodeHexString(testDef.cborHex), &opt)
			require.NoError(t, err)
			if testDef.expectedHash != "" {
				require.NotNil(t, opt.Hash())
				assert.Equal(t, testDef.expectedHash, opt.Hash().String())
				assert.Nil(t, opt.Data())
			} else {
				assert.Nil(t, opt.Hash())
				require.NotNil(t, opt.Data())
				assert.Equal(t, testDef.expectedData, hex.EncodeToString(opt.Data().Cbor()))
			}
			cborData, err := cbor.Encode(&opt)
			require.NoError(t, err)
			assert.Equal(t, testDef.cborHex, hex.EncodeToString(cborData))
		})
	}
}

func TestDatumOptionInvalid(t *testing.T) {
	testDefs := []string{
		// Unknown option type
		"8202d87980",
		// Inline datum without tag 24
		"8201d87980",
		// Inline datum that isn't valid plutus data
		"8201d81841ff",
	}
	for _, testDef := range testDefs {
		var opt DatumOption
		_, err := cbor.Decode(test.DecodeHexString(testDef), &opt)
		assert.Error(t, err, testDef)
	}
}

func TestDatumOptionAmbiguous(t *testing.T) {
	datum, err := NewDatumFromCbor(test.DecodeHexString("d87980"))
	require.NoError(t, err)
	opt := &DatumOption{hash: &DatumHash{}, data: datum}
	_, err = cbor.Encode(opt)
	assert.Error(t, err)
	_, err = cbor.Encode(&DatumOption{})
	assert.Error(t, err)
}
