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

package ledger

import (
	"errors"
	"fmt"
	"hash/crc32"
	"strings"

	"github.com/blinklabs-io/utxokit/cbor"
	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/btcsuite/btcd/btcutil/bech32"
)

const (
	AddressHeaderTypeMask    = 0xF0
	AddressHeaderNetworkMask = 0x0F
	AddressHashSize          = 28

	AddressNetworkTestnet = 0
	AddressNetworkMainnet = 1

	AddressTypeKeyKey        = 0b0000
	AddressTypeScriptKey     = 0b0001
	AddressTypeKeyScript     = 0b0010
	AddressTypeScriptScript  = 0b0011
	AddressTypeKeyPointer    = 0b0100
	AddressTypeScriptPointer = 0b0101
	AddressTypeKeyNone       = 0b0110
	AddressTypeScriptNone    = 0b0111
	AddressTypeByron         = 0b1000
	AddressTypeNoneKey       = 0b1110
	AddressTypeNoneScript    = 0b1111
)

var ErrInvalidAddress = errors.New("invalid address")

// Address is a ledger address kept in its raw binary form. Shelley-era addresses
// render as bech32 and Byron addresses as base58
type Address struct {
	addressType uint8
	networkId   uint8
	raw         []byte
}

// NewAddress returns an Address based on the provided bech32/base58 address string.
// Mixed case input is assumed to be a base58 encoded Byron address. The bech32 prefix
// must match the address type and network in the header
func NewAddress(addr string) (Address, error) {
	// bech32 allows all-uppercase strings
	if strings.ToUpper(addr) == addr {
		addr = strings.ToLower(addr)
	}
	if strings.ToLower(addr) != addr {
		decoded := base58.Decode(addr)
		if len(decoded) == 0 {
			return Address{}, fmt.Errorf("%w: invalid base58: %s", ErrInvalidAddress, addr)
		}
		ret, err := NewAddressFromBytes(decoded)
		if err != nil {
			return Address{}, err
		}
		if ret.addressType != AddressTypeByron {
			return Address{}, fmt.Errorf("%w: base58 address is not a Byron address", ErrInvalidAddress)
		}
		return ret, nil
	}
	hrp, data, err := bech32.DecodeNoLimit(addr)
	if err != nil {
		return Address{}, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}
	decoded, err := bech32.ConvertBits(data, 5, 8, false)
	if err != nil {
		return Address{}, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}
	ret, err := NewAddressFromBytes(decoded)
	if err != nil {
		return Address{}, err
	}
	if ret.addressType == AddressTypeByron {
		return Address{}, fmt.Errorf("%w: Byron address must be base58", ErrInvalidAddress)
	}
	if hrp != ret.hrp() {
		return Address{}, fmt.Errorf(
			"%w: prefix %q does not match header, expected %q",
			ErrInvalidAddress,
			hrp,
			ret.hrp(),
		)
	}
	return ret, nil
}

// NewAddressFromBytes returns an Address based on the raw bytes provided
func NewAddressFromBytes(addrBytes []byte) (Address, error) {
	var ret Address
	if err := ret.populateFromBytes(addrBytes); err != nil {
		return Address{}, err
	}
	return ret, nil
}

// NewAddressFromParts returns an Address based on the individual parts of the address that are provided
func NewAddressFromParts(
	addrType uint8,
	networkId uint8,
	paymentAddr []byte,
	stakingAddr []byte,
) (Address, error) {
	if networkId != AddressNetworkTestnet &&
		networkId != AddressNetworkMainnet {
		return Address{}, fmt.Errorf("%w: invalid network ID", ErrInvalidAddress)
	}
	header := (addrType << 4) | (networkId & AddressHeaderNetworkMask)
	buf := make([]byte, 0, 1+len(paymentAddr)+len(stakingAddr))
	buf = append(buf, header)
	buf = append(buf, paymentAddr...)
	buf = append(buf, stakingAddr...)
	return NewAddressFromBytes(buf)
}

func (a *Address) populateFromBytes(data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("%w: empty address", ErrInvalidAddress)
	}
	header := data[0]
	addrType := (header & AddressHeaderTypeMask) >> 4
	var minLen int
	switch addrType {
	case AddressTypeByron:
		if err := validateByronAddress(data); err != nil {
			return err
		}
	case AddressTypeKeyKey, AddressTypeScriptKey, AddressTypeKeyScript, AddressTypeScriptScript:
		minLen = 1 + 2*AddressHashSize
	case AddressTypeKeyPointer, AddressTypeScriptPointer:
		// Pointers are 3 variable-length naturals of at least a byte each
		minLen = 1 + AddressHashSize + 3
	case AddressTypeKeyNone, AddressTypeScriptNone, AddressTypeNoneKey, AddressTypeNoneScript:
		minLen = 1 + AddressHashSize
	default:
		return fmt.Errorf("%w: unknown address type %d", ErrInvalidAddress, addrType)
	}
	if len(data) < minLen {
		return fmt.Errorf(
			"%w: address type %d needs at least %d bytes, got %d",
			ErrInvalidAddress,
			addrType,
			minLen,
			len(data),
		)
	}
	a.addressType = addrType
	if addrType != AddressTypeByron {
		a.networkId = header & AddressHeaderNetworkMask
	}
	a.raw = make([]byte, len(data))
	copy(a.raw, data)
	return nil
}

type byronAddress struct {
	cbor.StructAsArray
	Payload  cbor.WrappedCbor
	Checksum uint32
}

func validateByronAddress(data []byte) error {
	var rawAddr byronAddress
	if err := cbor.DecodeStrict(data, &rawAddr); err != nil {
		return fmt.Errorf("%w: invalid Byron address data: %w", ErrInvalidAddress, err)
	}
	if crc32.ChecksumIEEE(rawAddr.Payload.Bytes()) != rawAddr.Checksum {
		return fmt.Errorf(
			"%w: invalid Byron address data: checksum does not match",
			ErrInvalidAddress,
		)
	}
	return nil
}

func (a *Address) UnmarshalCBOR(data []byte) error {
	// Try to unwrap as bytestring (Shelley and forward)
	tmpData := []byte{}
	if _, err := cbor.Decode(data, &tmpData); err == nil {
		return a.populateFromBytes(tmpData)
	}
	// Probably a legacy Byron address encoded inline
	return a.populateFromBytes(data)
}

func (a Address) MarshalCBOR() ([]byte, error) {
	if len(a.raw) == 0 {
		return nil, fmt.Errorf("%w: empty address", ErrInvalidAddress)
	}
	return cbor.Encode(a.raw)
}

// Type returns the address type from the header
func (a Address) Type() uint8 {
	return a.addressType
}

// NetworkId returns the network ID from the header. Byron addresses always report testnet
func (a Address) NetworkId() uint8 {
	return a.networkId
}

// Bytes returns a copy of the raw address bytes
func (a Address) Bytes() []byte {
	if a.raw == nil {
		return nil
	}
	ret := make([]byte, len(a.raw))
	copy(ret, a.raw)
	return ret
}

// PaymentHash returns the key or script hash of the payment part, if the address has one
func (a Address) PaymentHash() (Blake2b224, bool) {
	switch a.addressType {
	case AddressTypeByron, AddressTypeNoneKey, AddressTypeNoneScript:
		return Blake2b224{}, false
	}
	if len(a.raw) < 1+AddressHashSize {
		return Blake2b224{}, false
	}
	return NewBlake2b224(a.raw[1 : 1+AddressHashSize]), true
}

func (a Address) hrp() string {
	switch a.addressType {
	case AddressTypeNoneKey, AddressTypeNoneScript:
		if a.networkId == AddressNetworkMainnet {
			return "stake"
		}
		return "stake_test"
	}
	if a.networkId == AddressNetworkMainnet {
		return "addr"
	}
	return "addr_test"
}

// String returns the bech32 (or base58 for Byron) representation of the address
func (a Address) String() string {
	if len(a.raw) == 0 {
		return ""
	}
	if a.addressType == AddressTypeByron {
		return base58.Encode(a.raw)
	}
	encoded, err := bech32Encode(a.hrp(), a.raw)
	if err != nil {
		panic(fmt.Sprintf("unexpected error encoding data as bech32: %s", err))
	}
	return encoded
}

func (a Address) MarshalJSON() ([]byte, error) {
	return []byte(`"` + a.String() + `"`), nil
}
