package campaign

import "errors"

// Configuration errors (construction time, fatal).
var (
	// ErrZeroOperator indicates the operator address is the zero address.
	ErrZeroOperator = errors.New("campaign: operator address must not be zero")

	// ErrNilAsset indicates no asset contract was supplied.
	ErrNilAsset = errors.New("campaign: asset contract must not be nil")

	// ErrNilBridge indicates no value bridge was supplied.
	ErrNilBridge = errors.New("campaign: value bridge must not be nil")

	// ErrZeroBridgeAddr indicates the value bridge address is the zero address.
	ErrZeroBridgeAddr = errors.New("campaign: value bridge address must not be zero")

	// ErrNilRail indicates no payment rail was supplied.
	ErrNilRail = errors.New("campaign: payment rail must not be nil")

	// ErrZeroFundingCap indicates the funding cap is zero.
	ErrZeroFundingCap = errors.New("campaign: funding cap must be positive")

	// ErrEquityTooHigh indicates the operator equity percent is 100 or more.
	ErrEquityTooHigh = errors.New("campaign: operator equity percent must be below 100")

	// ErrNotNFTContract indicates the asset contract failed the
	// non-fungible-asset capability check.
	ErrNotNFTContract = errors.New("campaign: asset contract does not advertise the non-fungible capability")
)

// Guard errors.
var (
	// ErrReentrantCall indicates a mutating operation was entered while
	// another operation's external call was still in flight.
	ErrReentrantCall = errors.New("campaign: reentrant call rejected")

	// ErrNotOperator indicates an operator-only operation was called by a
	// non-operator.
	ErrNotOperator = errors.New("campaign: caller is not the operator")

	// ErrWrongPhase indicates the operation is not legal in the current phase.
	ErrWrongPhase = errors.New("campaign: operation not legal in current phase")

	// ErrUnexpectedValue indicates value was attached to a non-payable call.
	ErrUnexpectedValue = errors.New("campaign: unexpected attached value")
)

// Ledger errors.
var (
	// ErrBackerMismatch indicates the declared backer is not the caller.
	ErrBackerMismatch = errors.New("campaign: backer must be the caller")

	// ErrValueMismatch indicates the declared amount differs from the
	// value actually attached to the call.
	ErrValueMismatch = errors.New("campaign: declared amount does not match attached value")

	// ErrZeroAmount indicates a zero amount where a positive one is required.
	ErrZeroAmount = errors.New("campaign: amount must be positive")

	// ErrCapReached indicates the funding cap was already reached.
	ErrCapReached = errors.New("campaign: funding cap reached")

	// ErrNoPooledBalance indicates a redemption was attempted against an
	// empty pool.
	ErrNoPooledBalance = errors.New("campaign: no pooled balance")

	// ErrNotTokenOwner indicates the caller neither owns nor is approved
	// for the claim token.
	ErrNotTokenOwner = errors.New("campaign: caller does not control claim token")

	// ErrInsufficientEntitlement indicates the requested redemption exceeds
	// the token's remaining entitlement.
	ErrInsufficientEntitlement = errors.New("campaign: insufficient redeemable balance")

	// ErrZeroTotalShares indicates an operation requiring outstanding
	// shares found none.
	ErrZeroTotalShares = errors.New("campaign: zero total shares")

	// ErrBridgeShortfall indicates the value bridge did not deliver the
	// expected sale proceeds.
	ErrBridgeShortfall = errors.New("campaign: value bridge did not deliver sale proceeds")

	// ErrSnapshotMismatch indicates a snapshot was taken from a campaign
	// with a different configuration.
	ErrSnapshotMismatch = errors.New("campaign: snapshot does not match configuration")
)

// Invariant violations (irrecoverable).
var (
	// ErrUnsolicitedValue indicates a direct inbound transfer that did not
	// originate from the value bridge. Accepting it would corrupt the
	// solvency bookkeeping, so it aborts unconditionally.
	ErrUnsolicitedValue = errors.New("campaign: unsolicited value transfer rejected")
)
