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
	"errors"
	"fmt"
)

var (
	ErrInvalidUnitFormat = errors.New("invalid unit format")
	ErrInvalidPolicyId   = errors.New("invalid policy ID")
	ErrAssetNameTooLong  = errors.New("asset name size exceeds 32 bytes")
	ErrNegativeQuantity  = errors.New("negative asset quantity")
	ErrInvalidLabel      = errors.New("invalid label")
)

// UnitError ties a unit codec failure to the unit that caused it
type UnitError struct {
	Unit string
	Err  error
}

func (e UnitError) Error() string {
	return fmt.Sprintf("unit %q: %v", e.Unit, e.Err)
}

func (e UnitError) Unwrap() error { return e.Err }
