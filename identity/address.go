// Package identity provides the 20-byte participant address type used to
// identify the operator, backers, and external contracts throughout the
// campaign ledger.
package identity

import (
	"encoding/hex"
	"fmt"

	ec "github.com/bsv-blockchain/go-sdk/primitives/ec"
	bsvhash "github.com/bsv-blockchain/go-sdk/primitives/hash"
)

// AddressSize is the length of an address in bytes (HASH160 output).
const AddressSize = 20

// Address identifies a participant or external contract.
type Address [AddressSize]byte

// ZeroAddress is the null address. It is never a valid participant.
var ZeroAddress Address

// IsZero reports whether the address is the null address.
func (a Address) IsZero() bool {
	return a == ZeroAddress
}

// String returns the hex encoding of the address.
func (a Address) String() string {
	return hex.EncodeToString(a[:])
}

// AddressFromPublicKey derives an address as HASH160 of the compressed
// public key point.
func AddressFromPublicKey(pub *ec.PublicKey) Address {
	var a Address
	copy(a[:], bsvhash.Hash160(pub.Compressed()))
	return a
}

// ParseAddress decodes a hex-encoded address string.
func ParseAddress(s string) (Address, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return ZeroAddress, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}
	if len(b) != AddressSize {
		return ZeroAddress, fmt.Errorf("%w: must be %d bytes, got %d", ErrInvalidAddress, AddressSize, len(b))
	}
	var a Address
	copy(a[:], b)
	return a, nil
}
