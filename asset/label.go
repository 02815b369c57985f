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

package asset

import (
	"encoding/hex"
	"fmt"
	"strconv"

	"github.com/sigurn/crc8"
)

const (
	// LabelLength is the length of an encoded CIP-67 label in hex characters
	LabelLength = 8

	LabelReferenceNft = 100
	LabelNft          = 222
	LabelFungible     = 333
	LabelRichFungible = 444

	maxLabel = 0xffff
)

var crc8Table = crc8.MakeTable(crc8.CRC8)

// ToLabel encodes a CIP-67 label: a zero nibble, the number as 4 hex digits, a CRC-8 of
// those 2 bytes and a closing zero nibble
func ToLabel(num int) (string, error) {
	if num < 0 || num > maxLabel {
		return "", fmt.Errorf("%w: %d is outside 0-%d", ErrInvalidLabel, num, maxLabel)
	}
	numHex := fmt.Sprintf("%04x", num)
	// numHex is always valid hex
	numBytes, _ := hex.DecodeString(numHex)
	return fmt.Sprintf("0%s%02x0", numHex, crc8.Checksum(numBytes, crc8Table)), nil
}

// FromLabel decodes a CIP-67 label, reporting false if the input isn't one
func FromLabel(label string) (uint16, bool) {
	if len(label) != LabelLength || label[0] != '0' || label[7] != '0' {
		return 0, false
	}
	if !isLowerHex(label) {
		return 0, false
	}
	numHex := label[1:5]
	num, err := strconv.ParseUint(numHex, 16, 16)
	if err != nil {
		return 0, false
	}
	numBytes, err := hex.DecodeString(numHex)
	if err != nil {
		return 0, false
	}
	checksum, err := strconv.ParseUint(label[5:7], 16, 8)
	if err != nil {
		return 0, false
	}
	if byte(checksum) != crc8.Checksum(numBytes, crc8Table) {
		return 0, false
	}
	return uint16(num), true
}
