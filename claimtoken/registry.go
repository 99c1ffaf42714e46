// Package claimtoken tracks ownership of the transferable claim tokens a
// campaign issues to its backers. Each token is keyed by the campaign's
// monotonically increasing token id and carries a fixed share count.
//
// Transfer and approval follow standard token-ownership semantics: the
// owner may transfer or approve, and an approved address may transfer
// once (approval clears on transfer).
package claimtoken

import (
	"sync"

	"github.com/wilsoncusack/crowdfund/identity"
)

// Registry is an in-process claim-token ownership ledger.
type Registry struct {
	name   string
	symbol string

	mu       sync.Mutex
	owners   map[uint64]identity.Address
	approved map[uint64]identity.Address
	shares   map[uint64]uint64
	supply   uint64 // sum of minted share units
}

// NewRegistry creates an empty registry with the given token name and symbol.
func NewRegistry(name, symbol string) *Registry {
	return &Registry{
		name:     name,
		symbol:   symbol,
		owners:   make(map[uint64]identity.Address),
		approved: make(map[uint64]identity.Address),
		shares:   make(map[uint64]uint64),
	}
}

// Name returns the token name.
func (r *Registry) Name() string { return r.name }

// Symbol returns the token symbol.
func (r *Registry) Symbol() string { return r.symbol }

// Mint creates a new token owned by owner carrying the given share count.
func (r *Registry) Mint(owner identity.Address, tokenID, shares uint64) error {
	if owner.IsZero() {
		return ErrZeroOwner
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.owners[tokenID]; ok {
		return ErrDuplicateToken
	}
	r.owners[tokenID] = owner
	r.shares[tokenID] = shares
	r.supply += shares
	return nil
}

// Burn removes a token and its shares from the registry. Used to roll a
// mint back when the surrounding ledger operation aborts.
func (r *Registry) Burn(tokenID uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.shares[tokenID]
	if !ok {
		return ErrUnknownToken
	}
	delete(r.owners, tokenID)
	delete(r.approved, tokenID)
	delete(r.shares, tokenID)
	r.supply -= s
	return nil
}

// OwnerOf returns the current owner of a token.
func (r *Registry) OwnerOf(tokenID uint64) (identity.Address, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	owner, ok := r.owners[tokenID]
	if !ok {
		return identity.ZeroAddress, ErrUnknownToken
	}
	return owner, nil
}

// SharesOf returns the share count a token carries.
func (r *Registry) SharesOf(tokenID uint64) (uint64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.shares[tokenID]
	if !ok {
		return 0, ErrUnknownToken
	}
	return s, nil
}

// TotalSupply returns the total share units across all minted tokens.
func (r *Registry) TotalSupply() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.supply
}

// Approve lets the owner designate an address that may transfer the token.
func (r *Registry) Approve(caller identity.Address, tokenID uint64, spender identity.Address) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	owner, ok := r.owners[tokenID]
	if !ok {
		return ErrUnknownToken
	}
	if owner != caller {
		return ErrNotAuthorized
	}
	r.approved[tokenID] = spender
	return nil
}

// Approved returns the approved address for a token, or the zero address.
func (r *Registry) Approved(tokenID uint64) identity.Address {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.approved[tokenID]
}

// Transfer moves a token to a new owner. The caller must be the owner or
// the approved address; any approval is cleared.
func (r *Registry) Transfer(caller identity.Address, tokenID uint64, to identity.Address) error {
	if to.IsZero() {
		return ErrZeroOwner
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	owner, ok := r.owners[tokenID]
	if !ok {
		return ErrUnknownToken
	}
	if caller != owner && caller != r.approved[tokenID] {
		return ErrNotAuthorized
	}
	r.owners[tokenID] = to
	delete(r.approved, tokenID)
	return nil
}

// CanAct reports whether addr is the owner of or approved for the token.
func (r *Registry) CanAct(addr identity.Address, tokenID uint64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	owner, ok := r.owners[tokenID]
	if !ok {
		return false, ErrUnknownToken
	}
	return addr == owner || addr == r.approved[tokenID], nil
}
