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
	"maps"
	"math/big"
	"slices"
)

// Assets maps units to quantities
type Assets map[string]*big.Int

// FromLovelace returns an Assets holding only the specified amount of native currency
func FromLovelace(amount int64) Assets {
	return Assets{Lovelace: big.NewInt(amount)}
}

// Merge adds the quantities of all the provided maps together into a new map. Missing and
// nil quantities count as zero, and the inputs are never modified
func Merge(assets ...Assets) Assets {
	ret := Assets{}
	for _, a := range assets {
		for unit, qty := range a {
			sum, ok := ret[unit]
			if !ok {
				sum = new(big.Int)
				ret[unit] = sum
			}
			if qty != nil {
				sum.Add(sum, qty)
			}
		}
	}
	return ret
}

// Subtract returns a new map with the quantities in b taken away from those in a.
// The result may contain negative quantities
func Subtract(a Assets, b Assets) Assets {
	ret := a.Clone()
	for unit, qty := range b {
		diff, ok := ret[unit]
		if !ok {
			diff = new(big.Int)
			ret[unit] = diff
		}
		if qty != nil {
			diff.Sub(diff, qty)
		}
	}
	return ret
}

// Equal reports whether both maps hold the same units with equal quantities. A unit
// with a zero quantity is not the same as an absent unit
func Equal(a Assets, b Assets) bool {
	if len(a) != len(b) {
		return false
	}
	for unit, qtyA := range a {
		qtyB, ok := b[unit]
		if !ok {
			return false
		}
		if quantityOrZero(qtyA).Cmp(quantityOrZero(qtyB)) != 0 {
			return false
		}
	}
	return true
}

// Clone returns a deep copy
func (a Assets) Clone() Assets {
	if a == nil {
		return Assets{}
	}
	ret := make(Assets, len(a))
	for unit, qty := range a {
		ret[unit] = new(big.Int).Set(quantityOrZero(qty))
	}
	return ret
}

// Quantity returns a copy of the quantity of a unit, or zero if it's absent
func (a Assets) Quantity(unit string) *big.Int {
	return new(big.Int).Set(quantityOrZero(a[unit]))
}

// Lovelace returns the native currency quantity
func (a Assets) Lovelace() *big.Int {
	return a.Quantity(Lovelace)
}

// Normalize returns a copy without zero-quantity units. The lovelace entry is always kept
func (a Assets) Normalize() Assets {
	ret := make(Assets, len(a))
	for unit, qty := range a {
		if unit != Lovelace && quantityOrZero(qty).Sign() == 0 {
			continue
		}
		ret[unit] = new(big.Int).Set(quantityOrZero(qty))
	}
	return ret
}

// Covers reports whether a holds at least the quantity of every unit in need
func (a Assets) Covers(need Assets) bool {
	for unit, qty := range need {
		if quantityOrZero(a[unit]).Cmp(quantityOrZero(qty)) < 0 {
			return false
		}
	}
	return true
}

// Units returns the units in sorted order, with lovelace first
func (a Assets) Units() []string {
	ret := slices.Collect(maps.Keys(a))
	slices.SortFunc(ret, func(x, y string) int {
		switch {
		case x == y:
			return 0
		case x == Lovelace:
			return -1
		case y == Lovelace:
			return 1
		case x < y:
			return -1
		default:
			return 1
		}
	})
	return ret
}

func quantityOrZero(qty *big.Int) *big.Int {
	if qty == nil {
		return new(big.Int)
	}
	return qty
}
