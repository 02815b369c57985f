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
	"fmt"

	"github.com/blinklabs-io/utxokit/cbor"
)

// UnspentOutput pairs an input with the output it refers to. It encodes as [input, output]
type UnspentOutput struct {
	cbor.StructAsArray
	UtxoInput  Input
	UtxoOutput Output
}

func NewUnspentOutput(input Input, output *Output) *UnspentOutput {
	ret := &UnspentOutput{UtxoInput: input}
	if output != nil {
		ret.UtxoOutput = *output
	}
	return ret
}

// NewUnspentOutputFromCbor decodes an unspent output from CBOR
func NewUnspentOutputFromCbor(data []byte) (*UnspentOutput, error) {
	var u UnspentOutput
	if err := cbor.DecodeStrict(data, &u); err != nil {
		return nil, fmt.Errorf("unspent output decode error: %w", err)
	}
	return &u, nil
}

// NewUnspentOutputFromCborHex decodes an unspent output from hex-encoded CBOR
func NewUnspentOutputFromCborHex(cborHex string) (*UnspentOutput, error) {
	data, err := hex.DecodeString(cborHex)
	if err != nil {
		return nil, fmt.Errorf("unspent output decode error: %w", err)
	}
	return NewUnspentOutputFromCbor(data)
}

func (u *UnspentOutput) Input() TransactionInput {
	return u.UtxoInput
}

func (u *UnspentOutput) Output() TransactionOutput {
	return &u.UtxoOutput
}

// Cbor returns the CBOR encoding of the unspent output
func (u *UnspentOutput) Cbor() ([]byte, error) {
	return cbor.Encode(u)
}

// CborHex returns the hex-encoded CBOR of the unspent output
func (u *UnspentOutput) CborHex() (string, error) {
	data, err := u.Cbor()
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(data), nil
}
