package claimtoken

import "errors"

var (
	// ErrUnknownToken indicates the token id has not been minted.
	ErrUnknownToken = errors.New("claimtoken: unknown token")

	// ErrDuplicateToken indicates the token id has already been minted.
	ErrDuplicateToken = errors.New("claimtoken: token already minted")

	// ErrNotAuthorized indicates the caller is neither the owner nor the
	// approved address for the token.
	ErrNotAuthorized = errors.New("claimtoken: caller not authorized")

	// ErrZeroOwner indicates a mint or transfer to the null address.
	ErrZeroOwner = errors.New("claimtoken: owner must not be the zero address")
)
