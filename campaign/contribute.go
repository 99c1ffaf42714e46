package campaign

import (
	"fmt"

	"github.com/wilsoncusack/crowdfund/identity"
)

// Contribute records an incoming contribution during the Funding phase and
// issues a claim token to the backer. The declared amount must match the
// attached value and the backer must be the caller.
//
// If accepting the full amount would exceed the funding cap, only the
// remaining headroom is accepted and the excess is returned to the caller.
// A contribution arriving once the cap is already reached aborts whole.
//
// Returns the new claim token id and the accepted amount.
func (c *Campaign) Contribute(call Call, backer identity.Address, amount uint64) (uint64, uint64, error) {
	if err := c.guard.acquire(); err != nil {
		return 0, 0, err
	}
	defer c.guard.release()

	if c.phase != Funding {
		return 0, 0, fmt.Errorf("%w: contribute requires %s", ErrWrongPhase, Funding)
	}
	if backer != call.Caller {
		return 0, 0, ErrBackerMismatch
	}
	if amount != call.Value {
		return 0, 0, fmt.Errorf("%w: declared %d, attached %d", ErrValueMismatch, amount, call.Value)
	}
	if amount == 0 {
		return 0, 0, ErrZeroAmount
	}

	accepted := amount
	refund := uint64(0)
	if c.balance+amount > c.cfg.FundingCap {
		if c.balance >= c.cfg.FundingCap {
			return 0, 0, ErrCapReached
		}
		accepted = c.cfg.FundingCap - c.balance
		refund = amount - accepted
	}

	tokenID := c.nextTokenID
	shares := ValueToShares(accepted)
	if err := c.tokens.Mint(backer, tokenID, shares); err != nil {
		return 0, 0, fmt.Errorf("campaign: mint claim token: %w", err)
	}

	// Snapshot the pre-recompute value-per-share on the record.
	c.records[tokenID] = &ClaimRecord{
		ShareValueOnJoin: c.shareValue,
		Shares:           shares,
	}
	c.nextTokenID++
	c.totalShares += shares
	c.balance += accepted
	c.totalRaised += accepted
	c.recomputeShareValue()

	if refund > 0 {
		err := c.interact(func() error {
			return c.cfg.Rail.Transfer(call.Caller, refund)
		})
		if err != nil {
			c.rollbackContribution(tokenID, shares, accepted)
			return 0, 0, fmt.Errorf("campaign: refund excess: %w", err)
		}
	}

	c.emit(ContributionAccepted{Backer: backer, TokenID: tokenID, Accepted: accepted})
	return tokenID, accepted, nil
}

// rollbackContribution undoes a recorded contribution after a failed
// refund so the whole call aborts with no partial state.
func (c *Campaign) rollbackContribution(tokenID, shares, accepted uint64) {
	_ = c.tokens.Burn(tokenID)
	delete(c.records, tokenID)
	c.nextTokenID--
	c.totalShares -= shares
	c.balance -= accepted
	c.totalRaised -= accepted
	c.recomputeShareValue()
}
