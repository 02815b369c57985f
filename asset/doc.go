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

// Package asset handles asset units and the unit to quantity maps used by
// applications, and converts those maps to and from the binary ledger value.
//
// A unit is the hex policy ID (56 characters) followed by the hex asset name,
// which may itself start with a CIP-67 label. The reserved unit "lovelace"
// denotes the native currency.
package asset
