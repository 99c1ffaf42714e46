package campaign

import (
	"github.com/wilsoncusack/crowdfund/asset"
	"github.com/wilsoncusack/crowdfund/identity"
)

// Config holds the immutable campaign parameters fixed at creation.
type Config struct {
	// Name and Symbol label the claim tokens issued to backers.
	Name   string
	Symbol string

	// Operator controls the asset lifecycle and receives the funding
	// sweep plus the equity grant at close.
	Operator identity.Address

	// Asset is the external non-fungible asset contract being funded.
	Asset asset.NFTContract

	// Bridge converts wrapped value into directly held pooled value, and
	// BridgeAddr is the only address the inbound value hook accepts from.
	Bridge     asset.ValueBridge
	BridgeAddr identity.Address

	// Rail carries all outbound value: refunds, redemptions, the sweep.
	Rail asset.PaymentRail

	// FundingCap is the maximum pooled value accepted during Funding.
	FundingCap uint64

	// OperatorPercent is the fraction of final claim-token supply granted
	// to the operator at close. Must be below 100.
	OperatorPercent uint64
}

// Validate checks that all configuration values are acceptable and returns
// the first error encountered, or nil if valid.
func (cfg Config) Validate() error {
	if cfg.Operator.IsZero() {
		return ErrZeroOperator
	}
	if cfg.Asset == nil {
		return ErrNilAsset
	}
	if cfg.Bridge == nil {
		return ErrNilBridge
	}
	if cfg.BridgeAddr.IsZero() {
		return ErrZeroBridgeAddr
	}
	if cfg.Rail == nil {
		return ErrNilRail
	}
	if cfg.FundingCap == 0 {
		return ErrZeroFundingCap
	}
	if cfg.OperatorPercent >= 100 {
		return ErrEquityTooHigh
	}
	if !cfg.Asset.SupportsNFTCapability() {
		return ErrNotNFTContract
	}
	return nil
}
