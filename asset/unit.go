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

	"github.com/blinklabs-io/utxokit/ledger"
)

const (
	// Lovelace is the reserved unit for the native currency
	Lovelace = "lovelace"

	// PolicyIdLength is the length of a policy ID in hex characters
	PolicyIdLength = ledger.Blake2b224Size * 2
	// MaxAssetNameLength is the length limit of a label plus asset name in hex characters
	MaxAssetNameLength = ledger.MaxAssetNameSize * 2
	// MaxUnitLength is the length limit of a whole unit in hex characters
	MaxUnitLength = PolicyIdLength + MaxAssetNameLength
)

// UnitParts is a unit split into its components. AssetName is everything after the
// policy ID, and Name is the asset name without the label when one is present.
// Empty strings mean the part is absent
type UnitParts struct {
	PolicyId  string
	AssetName string
	Name      string
	Label     uint16
	HasLabel  bool
}

// SplitUnit splits a unit into its policy ID, asset name and optional CIP-67 label.
// It does no validation of its own: callers that need a well-formed unit should
// call ValidateUnit first
func SplitUnit(unit string) UnitParts {
	var ret UnitParts
	if len(unit) <= PolicyIdLength {
		ret.PolicyId = unit
		return ret
	}
	ret.PolicyId = unit[:PolicyIdLength]
	ret.AssetName = unit[PolicyIdLength:]
	ret.Name = ret.AssetName
	if len(ret.AssetName) >= LabelLength {
		if label, ok := FromLabel(ret.AssetName[:LabelLength]); ok {
			ret.Label = label
			ret.HasLabel = true
			ret.Name = ret.AssetName[LabelLength:]
		}
	}
	return ret
}

// Unit joins the parts back into a unit
func (p UnitParts) Unit() (string, error) {
	if p.HasLabel {
		return JoinLabeledUnit(p.PolicyId, p.Label, p.Name)
	}
	return JoinUnit(p.PolicyId, p.Name)
}

// JoinUnit builds a unit from a hex policy ID and hex asset name
func JoinUnit(policyId string, name string) (string, error) {
	return joinUnit(policyId, "", name)
}

// JoinLabeledUnit builds a unit from a hex policy ID, a CIP-67 label and a hex asset name
func JoinLabeledUnit(policyId string, label uint16, name string) (string, error) {
	// The range of uint16 is always a valid label
	labelHex, _ := ToLabel(int(label))
	return joinUnit(policyId, labelHex, name)
}

func joinUnit(policyId string, labelHex string, name string) (string, error) {
	unit := policyId + labelHex + name
	if len(labelHex)+len(name) > MaxAssetNameLength {
		return "", UnitError{Unit: unit, Err: ErrAssetNameTooLong}
	}
	if len(policyId) != PolicyIdLength || !isLowerHex(policyId) {
		return "", UnitError{Unit: unit, Err: ErrInvalidPolicyId}
	}
	if len(name)%2 != 0 || !isLowerHex(name) {
		return "", UnitError{Unit: unit, Err: ErrInvalidUnitFormat}
	}
	return unit, nil
}

// ValidateUnit checks that a unit is either "lovelace" or a lowercase hex policy ID
// followed by an asset name of at most 32 bytes
func ValidateUnit(unit string) error {
	if unit == Lovelace {
		return nil
	}
	if len(unit) < PolicyIdLength {
		return UnitError{
			Unit: unit,
			Err:  fmt.Errorf("%w: shorter than a policy ID", ErrInvalidUnitFormat),
		}
	}
	if len(unit) > MaxUnitLength {
		return UnitError{Unit: unit, Err: ErrAssetNameTooLong}
	}
	if len(unit)%2 != 0 || !isLowerHex(unit) {
		return UnitError{
			Unit: unit,
			Err:  fmt.Errorf("%w: not lowercase hex", ErrInvalidUnitFormat),
		}
	}
	return nil
}

// Fingerprint returns the CIP-14 asset fingerprint for a unit
func Fingerprint(unit string) (string, error) {
	if unit == Lovelace {
		return "", UnitError{
			Unit: unit,
			Err:  fmt.Errorf("%w: native currency has no fingerprint", ErrInvalidUnitFormat),
		}
	}
	policyId, assetName, err := decodeUnit(unit)
	if err != nil {
		return "", err
	}
	return ledger.NewAssetFingerprint(policyId.Bytes(), assetName).String(), nil
}

// decodeUnit validates a non-lovelace unit and returns its binary policy ID and asset name
func decodeUnit(unit string) (ledger.PolicyId, []byte, error) {
	if err := ValidateUnit(unit); err != nil {
		return ledger.PolicyId{}, nil, err
	}
	policyId, err := ledger.NewBlake2b224FromHex(unit[:PolicyIdLength])
	if err != nil {
		return ledger.PolicyId{}, nil, UnitError{Unit: unit, Err: ErrInvalidPolicyId}
	}
	assetName, err := hex.DecodeString(unit[PolicyIdLength:])
	if err != nil {
		return ledger.PolicyId{}, nil, UnitError{Unit: unit, Err: ErrInvalidUnitFormat}
	}
	return policyId, assetName, nil
}

func isLowerHex(s string) bool {
	for i := range len(s) {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}
