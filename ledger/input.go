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
	"math"

	"github.com/blinklabs-io/utxokit/cbor"
)

type Input struct {
	cbor.StructAsArray
	TxId        Blake2b256
	OutputIndex uint32
}

// NewInput builds an Input from a hex transaction hash and an output index
func NewInput(hash string, idx int) (Input, error) {
	txId, err := NewBlake2b256FromHex(hash)
	if err != nil {
		return Input{}, fmt.Errorf("invalid transaction hash: %w", err)
	}
	if idx < 0 || idx > math.MaxUint32 {
		return Input{}, fmt.Errorf("output index out of range: %d", idx)
	}
	return Input{
		TxId:        txId,
		OutputIndex: uint32(idx),
	}, nil
}

func (i Input) Id() Blake2b256 {
	return i.TxId
}

func (i Input) Index() uint32 {
	return i.OutputIndex
}

func (i Input) String() string {
	return fmt.Sprintf("%s#%d", hex.EncodeToString(i.TxId[:]), i.OutputIndex)
}

func (i Input) MarshalJSON() ([]byte, error) {
	return []byte("\"" + i.String() + "\""), nil
}
