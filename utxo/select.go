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
	"log/slog"
	"math/big"

	"github.com/blinklabs-io/utxokit/asset"
)

type SelectionStatus int

const (
	// SelectionSatisfied means the selected UTxOs cover everything required
	SelectionSatisfied SelectionStatus = iota
	// SelectionTrivial means nothing was required, so nothing was selected
	SelectionTrivial
)

func (s SelectionStatus) String() string {
	switch s {
	case SelectionSatisfied:
		return "satisfied"
	case SelectionTrivial:
		return "trivial"
	default:
		return "unknown"
	}
}

// Selection is the result of a successful coin selection
type Selection struct {
	Status   SelectionStatus
	Selected []UTxO
}

type selectConfig struct {
	logger *slog.Logger
}

type SelectOptionFunc func(*selectConfig)

// WithSelectLogger specifies the logger that records selection shortfalls. Defaults to
// slog.Default()
func WithSelectLogger(logger *slog.Logger) SelectOptionFunc {
	return func(c *selectConfig) {
		c.logger = logger
	}
}

// Select greedily picks UTxOs, in the order given, until the required assets are covered.
// A UTxO is picked when it holds a positive quantity of any unit that is still outstanding,
// and the scan stops as soon as nothing is outstanding. Only units with a positive required
// quantity count. When the UTxOs run out first, the error is an InsufficientError holding
// what is still missing
func Select(
	utxos []UTxO,
	required asset.Assets,
	opts ...SelectOptionFunc,
) (Selection, error) {
	outstanding := make(map[string]*big.Int, len(required))
	for unit, qty := range required {
		if qty != nil && qty.Sign() > 0 {
			outstanding[unit] = new(big.Int).Set(qty)
		}
	}
	if len(outstanding) == 0 {
		return Selection{Status: SelectionTrivial, Selected: []UTxO{}}, nil
	}
	selected := []UTxO{}
	for _, u := range utxos {
		if len(outstanding) == 0 {
			break
		}
		contributed := false
		for unit, need := range outstanding {
			have := u.Assets[unit]
			if have == nil || have.Sign() <= 0 {
				continue
			}
			contributed = true
			if have.Cmp(need) >= 0 {
				delete(outstanding, unit)
			} else {
				need.Sub(need, have)
			}
		}
		if contributed {
			selected = append(selected, u)
		}
	}
	if len(outstanding) > 0 {
		cfg := selectConfig{}
		for _, opt := range opts {
			opt(&cfg)
		}
		if cfg.logger == nil {
			cfg.logger = slog.Default()
		}
		missing := asset.Assets(outstanding)
		cfg.logger.Debug(
			"coin selection ran out of UTxOs",
			"component", "utxo",
			"utxos", len(utxos),
			"missing_units", len(missing),
		)
		return Selection{}, InsufficientError{Missing: missing}
	}
	return Selection{Status: SelectionSatisfied, Selected: selected}, nil
}

// SelectUtxos is Select reduced to a plain list: the selected UTxOs, or an empty list when
// nothing was required or the UTxOs fall short
func SelectUtxos(utxos []UTxO, required asset.Assets) []UTxO {
	selection, err := Select(utxos, required)
	if err != nil {
		return []UTxO{}
	}
	return selection.Selected
}
