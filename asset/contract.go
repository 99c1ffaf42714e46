// Package asset defines the external collaborator interfaces the campaign
// ledger depends on: the non-fungible asset contract whose acquisition is
// being funded, the value bridge that converts wrapped value into directly
// held pooled value, and the payment rail that moves value out of the pool.
//
// The ledger never assumes a concrete implementation; tests use the
// function-field mocks in mock.go.
package asset

import "github.com/wilsoncusack/crowdfund/identity"

// NFTContract is the external non-fungible asset contract.
type NFTContract interface {
	// SupportsNFTCapability reports whether the contract advertises the
	// non-fungible-asset capability. Checked once at campaign creation;
	// a false result is a fatal configuration error.
	SupportsNFTCapability() bool

	// Mint forwards asset-creation instructions and returns the new
	// asset token id.
	Mint(data string, shares uint64) (uint64, error)

	// AcceptOffer accepts a sale offer for the given asset token.
	// Proceeds are expected to arrive through the value bridge.
	AcceptOffer(tokenID, offer uint64) error

	// SetTokenURI updates the per-token metadata URI.
	SetTokenURI(id uint64, uri string) error

	// SetContentURI updates the alternate (content) metadata URI.
	SetContentURI(id uint64, uri string) error

	// Transfer moves the asset token to a new owner.
	Transfer(id uint64, to identity.Address) error
}

// ValueBridge converts a wrapped value representation into directly held
// pooled value. Implementations are expected to deliver the unwrapped
// amount to the campaign's inbound value hook before Unwrap returns.
type ValueBridge interface {
	Unwrap(amount uint64) error
}

// PaymentRail moves value out of the pool to a recipient. Refunds,
// redemptions, and the funding sweep all leave through this interface.
type PaymentRail interface {
	Transfer(to identity.Address, amount uint64) error
}
