package campaign

// TokenScale is the fixed multiplier converting value units into share
// units. One accepted value unit mints TokenScale shares, giving the
// value-per-share enough resolution to split small balances.
const TokenScale = 1000

// RoundUpDiv divides a by b rounding any remainder up by one unit.
// RoundUpDiv(0, b) is 0.
func RoundUpDiv(a, b uint64) uint64 {
	if a == 0 {
		return 0
	}
	return (a-1)/b + 1
}

// ValueToShares converts a value amount into share units.
func ValueToShares(amount uint64) uint64 {
	return amount * TokenScale
}

// SharesToValue converts share units into a value amount, truncating.
// Exact inverse of ValueToShares only when shares is a multiple of
// TokenScale.
func SharesToValue(shares uint64) uint64 {
	return shares / TokenScale
}

// ClaimRecord is the per-claim-token ledger entry. Shares is fixed at
// creation; ValueWithdrawn only ever grows.
type ClaimRecord struct {
	// ShareValueOnJoin is the value-per-share snapshot taken when the
	// record was created, before the recompute its creation triggered.
	ShareValueOnJoin uint64

	// ValueWithdrawn is the cumulative value already redeemed.
	ValueWithdrawn uint64

	// Shares is the number of share units the record controls.
	Shares uint64
}

// recomputeShareValue refreshes the scaled value-per-share from the pooled
// balance, rounding the remainder up by one unit. During Funding the
// balance never exceeds one value unit per TokenScale shares (withdrawals
// only lower it), so the rounded value stays at par and the sum of all
// entitlements equals the balance exactly. A plain floor would instead
// collapse the value to zero after any funding-phase redemption.
func (c *Campaign) recomputeShareValue() {
	if c.totalShares == 0 {
		c.shareValue = 0
		return
	}
	c.shareValue = RoundUpDiv(c.balance*TokenScale, c.totalShares)
}

// entitlement returns the value currently redeemable against a record.
// A stale shareValue can leave the raw product below ValueWithdrawn; the
// remainder is then zero, never an underflow.
func (c *Campaign) entitlement(rec *ClaimRecord) uint64 {
	gross := rec.Shares * c.shareValue / TokenScale
	if gross <= rec.ValueWithdrawn {
		return 0
	}
	return gross - rec.ValueWithdrawn
}

// redeemableFromShares computes the proportional payout for a share amount
// against the claim-token total supply. The one-unit round-up pays out
// dust the floor bias left behind; the clamp keeps the payout within the
// pooled balance.
func (c *Campaign) redeemableFromShares(shareAmount uint64) uint64 {
	supply := c.tokens.TotalSupply()
	if supply == 0 {
		return 0
	}
	v := RoundUpDiv(shareAmount*c.balance, supply)
	if v > c.balance {
		v = c.balance
	}
	return v
}
