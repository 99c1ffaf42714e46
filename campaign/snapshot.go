package campaign

import "github.com/wilsoncusack/crowdfund/identity"

// Snapshot is the persisted state surface: the phase flag, the immutable
// configuration scalars, the global ledger totals, and the per-token claim
// records. Collaborator references are not part of it; they are rebound at
// restore time through the campaign's own configuration.
type Snapshot struct {
	Name            string
	Symbol          string
	Operator        identity.Address
	BridgeAddr      identity.Address
	FundingCap      uint64
	OperatorPercent uint64

	Phase       Phase
	Balance     uint64
	TotalRaised uint64
	TotalShares uint64
	ShareValue  uint64
	NextTokenID uint64
	Records     map[uint64]ClaimRecord

	Owners map[uint64]identity.Address
}

// Snapshot captures the persisted state surface.
func (c *Campaign) Snapshot() *Snapshot {
	c.guard.mu.Lock()
	defer c.guard.mu.Unlock()

	s := &Snapshot{
		Name:            c.cfg.Name,
		Symbol:          c.cfg.Symbol,
		Operator:        c.cfg.Operator,
		BridgeAddr:      c.cfg.BridgeAddr,
		FundingCap:      c.cfg.FundingCap,
		OperatorPercent: c.cfg.OperatorPercent,
		Phase:           c.phase,
		Balance:         c.balance,
		TotalRaised:     c.totalRaised,
		TotalShares:     c.totalShares,
		ShareValue:      c.shareValue,
		NextTokenID:     c.nextTokenID,
		Records:         make(map[uint64]ClaimRecord, len(c.records)),
		Owners:          make(map[uint64]identity.Address, len(c.records)),
	}
	for id, rec := range c.records {
		s.Records[id] = *rec
		if owner, err := c.tokens.OwnerOf(id); err == nil {
			s.Owners[id] = owner
		}
	}
	return s
}

// Restore replaces the campaign's mutable state with a snapshot taken from
// a campaign with the same configuration. The claim-token registry is
// rebuilt from the recorded owners.
func (c *Campaign) Restore(s *Snapshot) error {
	c.guard.mu.Lock()
	defer c.guard.mu.Unlock()

	if s.Operator != c.cfg.Operator ||
		s.BridgeAddr != c.cfg.BridgeAddr ||
		s.FundingCap != c.cfg.FundingCap ||
		s.OperatorPercent != c.cfg.OperatorPercent {
		return ErrSnapshotMismatch
	}

	c.phase = s.Phase
	c.balance = s.Balance
	c.totalRaised = s.TotalRaised
	c.totalShares = s.TotalShares
	c.shareValue = s.ShareValue
	c.nextTokenID = s.NextTokenID
	c.records = make(map[uint64]*ClaimRecord, len(s.Records))
	for id, rec := range s.Records {
		cp := rec
		c.records[id] = &cp
		if owner, ok := s.Owners[id]; ok {
			if err := c.tokens.Mint(owner, id, rec.Shares); err != nil {
				return err
			}
		}
	}
	return nil
}
