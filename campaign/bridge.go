package campaign

import (
	"fmt"

	"github.com/wilsoncusack/crowdfund/identity"
)

// AssetReceivedAck is the acknowledgement the inbound asset hook returns to
// signal the asset was accepted.
const AssetReceivedAck = "onAssetReceived"

// MintAsset forwards asset-creation instructions to the external asset
// contract. Operator only; no ledger effect. Returns the asset token id.
func (c *Campaign) MintAsset(call Call, data string, shares uint64) (uint64, error) {
	if err := c.guard.acquire(); err != nil {
		return 0, err
	}
	defer c.guard.release()

	if err := c.requireNoValue(call); err != nil {
		return 0, err
	}
	if err := c.requireOperator(call); err != nil {
		return 0, err
	}

	var id uint64
	err := c.interact(func() error {
		var mintErr error
		id, mintErr = c.cfg.Asset.Mint(data, shares)
		return mintErr
	})
	if err != nil {
		return 0, fmt.Errorf("campaign: mint asset: %w", err)
	}
	return id, nil
}

// AcceptSaleOffer accepts a sale offer for the asset. Operator only, legal
// only in Trading. Forwards the acceptance, pulls the proceeds through the
// value bridge, then folds the offer into the value-per-share with the
// incremental update: the post-close balance no longer includes the swept
// funding, so a balance-derived recompute would misprice.
func (c *Campaign) AcceptSaleOffer(call Call, tokenID, offer uint64) error {
	if err := c.guard.acquire(); err != nil {
		return err
	}
	defer c.guard.release()

	if err := c.requireNoValue(call); err != nil {
		return err
	}
	if err := c.requireOperator(call); err != nil {
		return err
	}
	if c.phase != Trading {
		return fmt.Errorf("%w: sale acceptance requires %s", ErrWrongPhase, Trading)
	}
	if offer == 0 {
		return ErrZeroAmount
	}
	if c.totalShares == 0 {
		return ErrZeroTotalShares
	}

	preBalance := c.balance
	err := c.interact(func() error {
		if acceptErr := c.cfg.Asset.AcceptOffer(tokenID, offer); acceptErr != nil {
			return fmt.Errorf("accept offer: %w", acceptErr)
		}
		if unwrapErr := c.cfg.Bridge.Unwrap(offer); unwrapErr != nil {
			return fmt.Errorf("unwrap proceeds: %w", unwrapErr)
		}
		return nil
	})
	if err != nil {
		c.balance = preBalance
		return fmt.Errorf("campaign: %w", err)
	}
	if c.balance < preBalance+offer {
		delivered := c.balance - preBalance
		c.balance = preBalance
		return fmt.Errorf("%w: expected %d, received %d", ErrBridgeShortfall, offer, delivered)
	}

	c.shareValue += offer * TokenScale / c.totalShares
	c.emit(SaleAccepted{Amount: offer})
	return nil
}

// UpdateAssetMetadata forwards a per-token metadata URI update. Operator
// only; no ledger effect.
func (c *Campaign) UpdateAssetMetadata(call Call, id uint64, uri string) error {
	return c.assetPassThrough(call, func() error {
		return c.cfg.Asset.SetTokenURI(id, uri)
	})
}

// UpdateAssetMetadataAlt forwards a content metadata URI update. Operator
// only; no ledger effect.
func (c *Campaign) UpdateAssetMetadataAlt(call Call, id uint64, uri string) error {
	return c.assetPassThrough(call, func() error {
		return c.cfg.Asset.SetContentURI(id, uri)
	})
}

// TransferAsset forwards an asset transfer. Operator only; no ledger effect.
func (c *Campaign) TransferAsset(call Call, id uint64, to identity.Address) error {
	return c.assetPassThrough(call, func() error {
		return c.cfg.Asset.Transfer(id, to)
	})
}

func (c *Campaign) assetPassThrough(call Call, fn func() error) error {
	if err := c.guard.acquire(); err != nil {
		return err
	}
	defer c.guard.release()

	if err := c.requireNoValue(call); err != nil {
		return err
	}
	if err := c.requireOperator(call); err != nil {
		return err
	}
	if err := c.interact(fn); err != nil {
		return fmt.Errorf("campaign: asset contract: %w", err)
	}
	return nil
}

// UnwrapBridgedValue forwards to the value bridge to convert bridged value
// into directly held pooled value. Callable by anyone; the bridge delivers
// the unwrapped amount through ReceiveValue before returning.
func (c *Campaign) UnwrapBridgedValue(amount uint64) error {
	if err := c.guard.acquire(); err != nil {
		return err
	}
	defer c.guard.release()

	if amount == 0 {
		return ErrZeroAmount
	}
	err := c.interact(func() error {
		return c.cfg.Bridge.Unwrap(amount)
	})
	if err != nil {
		return fmt.Errorf("campaign: unwrap bridged value: %w", err)
	}
	return nil
}

// ReceiveValue is the inbound value-acceptance hook. Only the configured
// value bridge may deliver value; any other direct transfer is an
// unconditional abort, since accepting it would corrupt the solvency
// bookkeeping. This is the one call allowed to re-enter the ledger while
// an outbound interaction is in flight.
func (c *Campaign) ReceiveValue(from identity.Address, amount uint64) error {
	c.guard.mu.Lock()
	defer c.guard.mu.Unlock()

	if from != c.cfg.BridgeAddr {
		return fmt.Errorf("%w: from %s", ErrUnsolicitedValue, from)
	}
	c.balance += amount
	return nil
}

// ReceiveAsset is the inbound non-fungible-asset receipt hook. It
// acknowledges receipt with AssetReceivedAck and emits an AssetReceived
// notification.
func (c *Campaign) ReceiveAsset(from identity.Address, tokenID uint64) (string, error) {
	c.guard.mu.Lock()
	defer c.guard.mu.Unlock()

	c.emit(AssetReceived{TokenID: tokenID, From: from})
	return AssetReceivedAck, nil
}
