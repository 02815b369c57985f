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

// Package utxo translates application UTxO records to and from their binary ledger
// form, and provides greedy multi-asset coin selection over them.
//
// Translation is pure: every call builds new values and never modifies its
// arguments. Batch operations are atomic, so either every element translates or
// the call fails with a BatchElementError naming the first failing index.
package utxo
