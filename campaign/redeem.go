package campaign

import (
	"fmt"

	"github.com/wilsoncusack/crowdfund/claimtoken"
)

// Redeem pays out part of a claim token's entitlement. Legal in both
// phases: a backer may exit before the asset is sold, forfeiting upside,
// since the value-per-share only reflects funds currently pooled.
//
// The entitlement is the record's pro-rata share of pooled value at the
// current value-per-share, rounded in the pool's favor, so the solvency
// invariant guarantees the pool covers any amount within it. The
// proportional split against total claim-token supply is the separate
// RedeemShares path. Returns the amount paid.
func (c *Campaign) Redeem(call Call, tokenID, amount uint64) (uint64, error) {
	if err := c.guard.acquire(); err != nil {
		return 0, err
	}
	defer c.guard.release()

	rec, err := c.checkRedeem(call, tokenID, amount)
	if err != nil {
		return 0, err
	}
	if remaining := c.entitlement(rec); remaining < amount {
		return 0, fmt.Errorf("%w: requested %d, redeemable %d", ErrInsufficientEntitlement, amount, remaining)
	}
	if amount > c.balance {
		return 0, fmt.Errorf("%w: requested %d exceeds pooled balance %d", ErrInsufficientEntitlement, amount, c.balance)
	}

	return c.payout(call, tokenID, rec, amount)
}

// RedeemShares redeems against the claim-token total supply instead of the
// internal share ledger: the payout is the share amount's proportional
// split of the pooled balance, with the remainder rounded up by one unit
// and clamped to the balance. The paid amount is debited from the record's
// entitlement, which must cover it. Returns the amount paid.
func (c *Campaign) RedeemShares(call Call, tokenID, shareAmount uint64) (uint64, error) {
	if err := c.guard.acquire(); err != nil {
		return 0, err
	}
	defer c.guard.release()

	rec, err := c.checkRedeem(call, tokenID, shareAmount)
	if err != nil {
		return 0, err
	}
	if shareAmount > rec.Shares {
		return 0, fmt.Errorf("%w: %d shares requested, record holds %d", ErrInsufficientEntitlement, shareAmount, rec.Shares)
	}

	paid := c.redeemableFromShares(shareAmount)
	if remaining := c.entitlement(rec); remaining < paid {
		return 0, fmt.Errorf("%w: proportional payout %d, redeemable %d", ErrInsufficientEntitlement, paid, remaining)
	}
	if paid == 0 {
		return 0, ErrInsufficientEntitlement
	}

	return c.payout(call, tokenID, rec, paid)
}

// checkRedeem validates the shared redemption preconditions and resolves
// the claim record.
func (c *Campaign) checkRedeem(call Call, tokenID, amount uint64) (*ClaimRecord, error) {
	if err := c.requireNoValue(call); err != nil {
		return nil, err
	}
	if c.balance == 0 {
		return nil, ErrNoPooledBalance
	}
	if amount == 0 {
		return nil, ErrZeroAmount
	}
	rec, ok := c.records[tokenID]
	if !ok {
		return nil, fmt.Errorf("campaign: redeem: %w", claimtoken.ErrUnknownToken)
	}
	canAct, err := c.tokens.CanAct(call.Caller, tokenID)
	if err != nil {
		return nil, fmt.Errorf("campaign: redeem: %w", err)
	}
	if !canAct {
		return nil, ErrNotTokenOwner
	}
	return rec, nil
}

// payout debits the record, sends the value out the payment rail, and
// emits the redemption event. Rolls the debit back if the transfer fails.
func (c *Campaign) payout(call Call, tokenID uint64, rec *ClaimRecord, paid uint64) (uint64, error) {
	rec.ValueWithdrawn += paid
	c.balance -= paid

	err := c.interact(func() error {
		return c.cfg.Rail.Transfer(call.Caller, paid)
	})
	if err != nil {
		rec.ValueWithdrawn -= paid
		c.balance += paid
		return 0, fmt.Errorf("campaign: redemption payout: %w", err)
	}

	c.emit(RedemptionExecuted{Redeemer: call.Caller, TokenID: tokenID, Paid: paid})
	return paid, nil
}
