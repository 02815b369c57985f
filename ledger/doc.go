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

// Package ledger implements the binary Cardano ledger types needed to describe unspent
// transaction outputs: addresses, hashes, multi-asset values, datums, reference scripts,
// inputs and outputs.
//
// Outputs decode from both the legacy array form and the post-Alonzo map form, and always
// encode in the form they were decoded from or built as. All encoding goes through the
// canonical encoder in the cbor package.
package ledger
