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

package test

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"
)

// DecodeHexString is a helper function for tests that decodes hex strings. It doesn't return
// an error value, which makes it usable inline.
func DecodeHexString(hexData string) []byte {
	// Strip off any leading/trailing whitespace in hex string
	hexData = strings.TrimSpace(hexData)
	decoded, err := hex.DecodeString(hexData)
	if err != nil {
		panic(fmt.Sprintf("error decoding hex: %s", err))
	}
	return decoded
}

// BigInt parses a base-10 integer string, panicking on bad input
func BigInt(val string) *big.Int {
	ret, ok := new(big.Int).SetString(val, 10)
	if !ok {
		panic(fmt.Sprintf("invalid integer: %s", val))
	}
	return ret
}

// TxHash returns a 64 character transaction hash made of a repeated hex digit pair
func TxHash(b byte) string {
	return strings.Repeat(fmt.Sprintf("%02x", b), 32)
}

// PolicyId returns a 56 character policy ID made of a repeated hex digit pair
func PolicyId(b byte) string {
	return strings.Repeat(fmt.Sprintf("%02x", b), 28)
}
