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

// Package cbor provides the CBOR encoding/decoding used by the ledger types in this module.
//
// It wraps github.com/fxamacker/cbor/v2 with a canonical encoder (core
// deterministic map ordering, shortest integer form for big integers) and a
// decoder that understands tag 24 (wrapped CBOR) through WrappedCbor.
//
// Embeddable types for struct encoding:
//   - StructAsArray: encode struct fields as a CBOR array instead of a map
//   - DecodeStoreCbor: keep the original CBOR bytes of a decoded value
//
// EncodeGeneric and DecodeGeneric bypass a type's own MarshalCBOR and
// UnmarshalCBOR methods, which lets a custom unmarshaler fall back to the
// default struct decoding for one of several accepted wire shapes.
package cbor
