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
	"fmt"
	"slices"
	"strings"
)

type SortOrder string

const (
	SortDescending SortOrder = "descending"
	SortAscending  SortOrder = "ascending"
)

// ParseSortOrder parses a sort order name. An empty name means descending
func ParseSortOrder(order string) (SortOrder, error) {
	switch SortOrder(strings.ToLower(order)) {
	case "", SortDescending:
		return SortDescending, nil
	case SortAscending:
		return SortAscending, nil
	default:
		return "", fmt.Errorf("unknown sort order: %s", order)
	}
}

// SortByLovelace returns a copy of utxos stably sorted by their lovelace quantity. A missing
// quantity counts as zero. Any order other than SortAscending sorts in descending order
func SortByLovelace(utxos []UTxO, order SortOrder) []UTxO {
	ret := slices.Clone(utxos)
	if ret == nil {
		ret = []UTxO{}
	}
	slices.SortStableFunc(ret, func(a, b UTxO) int {
		cmp := a.Assets.Lovelace().Cmp(b.Assets.Lovelace())
		if order != SortAscending {
			return -cmp
		}
		return cmp
	})
	return ret
}
