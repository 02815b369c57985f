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
	"math/big"
)

// TransactionInput is the read side of a binary transaction input
type TransactionInput interface {
	Id() Blake2b256
	Index() uint32
	String() string
}

// TransactionOutput is the read side of a binary transaction output
type TransactionOutput interface {
	Address() Address
	Amount() *big.Int
	Assets() *MultiAsset
	DatumHash() *DatumHash
	Datum() *Datum
	ScriptRef() *ScriptRef
	Cbor() []byte
}
