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

package utxo

import (
	"errors"
	"fmt"
	"strings"

	"github.com/blinklabs-io/utxokit/asset"
)

var (
	ErrAmbiguousDatum        = errors.New("output has both a datum hash and an inline datum")
	ErrInvalidTxHash         = errors.New("invalid transaction hash")
	ErrInvalidDatum          = errors.New("invalid datum")
	ErrInvalidScript         = errors.New("invalid reference script")
	ErrSelectionInsufficient = errors.New("insufficient assets for selection")
)

// BatchElementError reports the element that caused a batch translation to fail
type BatchElementError struct {
	Index int
	Err   error
}

func (e BatchElementError) Error() string {
	return fmt.Sprintf("batch element %d: %v", e.Index, e.Err)
}

func (e BatchElementError) Unwrap() error { return e.Err }

// InsufficientError reports the quantities still outstanding when selection runs out of UTxOs
type InsufficientError struct {
	Missing asset.Assets
}

func (e InsufficientError) Error() string {
	parts := make([]string, 0, len(e.Missing))
	for _, unit := range e.Missing.Units() {
		parts = append(parts, fmt.Sprintf("%s=%s", unit, e.Missing.Quantity(unit)))
	}
	return fmt.Sprintf(
		"%s: missing [%s]",
		ErrSelectionInsufficient.Error(),
		strings.Join(parts, ", "),
	)
}

func (InsufficientError) Is(target error) bool {
	return target == ErrSelectionInsufficient
}
