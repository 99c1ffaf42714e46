package campaign

import "fmt"

// CloseFunding performs the single Funding to Trading transition. Operator
// only. Mints the operator's equity record so that, immediately after
// minting, the operator holds exactly OperatorPercent of the claim-token
// supply, then sweeps the entire pooled balance to the operator as the
// campaign's funding proceeds.
//
// Returns the operator's claim token id (zero when OperatorPercent is 0)
// and the swept amount.
func (c *Campaign) CloseFunding(call Call) (uint64, uint64, error) {
	if err := c.guard.acquire(); err != nil {
		return 0, 0, err
	}
	defer c.guard.release()

	if err := c.requireNoValue(call); err != nil {
		return 0, 0, err
	}
	if err := c.requireOperator(call); err != nil {
		return 0, 0, err
	}
	if c.phase != Funding {
		return 0, 0, fmt.Errorf("%w: close requires %s", ErrWrongPhase, Funding)
	}

	// Solve shares so op/(supply+op) == pct/100: op = pct*supply/(100-pct).
	// Applied exactly once, from the pre-grant supply.
	pct := c.cfg.OperatorPercent
	opShares := pct * c.tokens.TotalSupply() / (100 - pct)

	opTokenID := uint64(0)
	if opShares > 0 {
		opTokenID = c.nextTokenID
		if err := c.tokens.Mint(c.cfg.Operator, opTokenID, opShares); err != nil {
			return 0, 0, fmt.Errorf("campaign: mint equity record: %w", err)
		}
		c.records[opTokenID] = &ClaimRecord{
			ShareValueOnJoin: c.shareValue,
			Shares:           opShares,
		}
		c.nextTokenID++
		c.totalShares += opShares
	}

	sweep := c.balance
	c.balance = 0
	c.recomputeShareValue()
	c.phase = Trading

	if sweep > 0 {
		err := c.interact(func() error {
			return c.cfg.Rail.Transfer(c.cfg.Operator, sweep)
		})
		if err != nil {
			c.rollbackClose(opTokenID, opShares, sweep)
			return 0, 0, fmt.Errorf("campaign: funding sweep: %w", err)
		}
	}

	c.emit(FundingClosed{Raised: sweep, OperatorShares: opShares})
	return opTokenID, sweep, nil
}

// rollbackClose undoes the transition after a failed sweep.
func (c *Campaign) rollbackClose(opTokenID, opShares, sweep uint64) {
	if opShares > 0 {
		_ = c.tokens.Burn(opTokenID)
		delete(c.records, opTokenID)
		c.nextTokenID--
		c.totalShares -= opShares
	}
	c.balance = sweep
	c.recomputeShareValue()
	c.phase = Funding
}
