// Package campaign implements the share-accounting ledger and funding/
// trading state machine for a single crowdfunding campaign around one
// non-fungible asset.
//
// Contributors pool value during the Funding phase and receive tradeable
// claim tokens carrying shares proportional to their accepted
// contribution. The operator closes funding exactly once, taking the
// pooled balance and an equity grant, and later accepts a sale offer
// whose proceeds flow back through the value bridge for pro-rata
// redemption.
//
// Every mutating operation is transactional: it either commits fully or
// aborts with no partial state. Operations follow checks-effects-
// interactions ordering, and an explicit reentrancy flag rejects calls
// made back into the ledger while an outbound external call is in flight.
package campaign

import (
	"go.uber.org/zap"

	"github.com/wilsoncusack/crowdfund/claimtoken"
	"github.com/wilsoncusack/crowdfund/identity"
)

// Call carries the caller identity and attached value of one external call.
type Call struct {
	Caller identity.Address
	Value  uint64
}

// Campaign manages one funding campaign for one asset.
type Campaign struct {
	cfg    Config
	tokens *claimtoken.Registry
	log    *zap.Logger
	events *eventLog

	guard guard

	phase       Phase
	balance     uint64
	totalRaised uint64

	totalShares uint64
	shareValue  uint64 // scaled by TokenScale
	nextTokenID uint64
	records     map[uint64]*ClaimRecord
}

// Option configures a Campaign at creation.
type Option func(*Campaign)

// WithLogger mirrors emitted events to the given structured logger.
func WithLogger(log *zap.Logger) Option {
	return func(c *Campaign) { c.log = log }
}

// New validates the configuration and creates a campaign in the Funding
// phase. Configuration errors are fatal; there is no retry path.
func New(cfg Config, opts ...Option) (*Campaign, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	c := &Campaign{
		cfg:         cfg,
		tokens:      claimtoken.NewRegistry(cfg.Name, cfg.Symbol),
		log:         zap.NewNop(),
		events:      &eventLog{},
		phase:       Funding,
		nextTokenID: 1,
		records:     make(map[uint64]*ClaimRecord),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Tokens returns the claim-token ownership registry.
func (c *Campaign) Tokens() *claimtoken.Registry { return c.tokens }

// Events returns a copy of the append-only event log.
func (c *Campaign) Events() []Event { return c.events.list() }

// Phase returns the current lifecycle phase.
func (c *Campaign) Phase() Phase {
	c.guard.mu.Lock()
	defer c.guard.mu.Unlock()
	return c.phase
}

// Balance returns the pooled balance.
func (c *Campaign) Balance() uint64 {
	c.guard.mu.Lock()
	defer c.guard.mu.Unlock()
	return c.balance
}

// TotalRaised returns the cumulative accepted contribution total.
func (c *Campaign) TotalRaised() uint64 {
	c.guard.mu.Lock()
	defer c.guard.mu.Unlock()
	return c.totalRaised
}

// TotalShares returns the share units outstanding across all records.
func (c *Campaign) TotalShares() uint64 {
	c.guard.mu.Lock()
	defer c.guard.mu.Unlock()
	return c.totalShares
}

// ShareValue returns the current scaled value-per-share.
func (c *Campaign) ShareValue() uint64 {
	c.guard.mu.Lock()
	defer c.guard.mu.Unlock()
	return c.shareValue
}

// Record returns a copy of the claim record for a token id.
func (c *Campaign) Record(tokenID uint64) (ClaimRecord, error) {
	c.guard.mu.Lock()
	defer c.guard.mu.Unlock()
	rec, ok := c.records[tokenID]
	if !ok {
		return ClaimRecord{}, claimtoken.ErrUnknownToken
	}
	return *rec, nil
}

// Records returns a copy of every claim record keyed by token id.
func (c *Campaign) Records() map[uint64]ClaimRecord {
	c.guard.mu.Lock()
	defer c.guard.mu.Unlock()
	out := make(map[uint64]ClaimRecord, len(c.records))
	for id, rec := range c.records {
		out[id] = *rec
	}
	return out
}

// Entitlement returns the value currently redeemable against a token.
func (c *Campaign) Entitlement(tokenID uint64) (uint64, error) {
	c.guard.mu.Lock()
	defer c.guard.mu.Unlock()
	rec, ok := c.records[tokenID]
	if !ok {
		return 0, claimtoken.ErrUnknownToken
	}
	return c.entitlement(rec), nil
}

// RedeemableFromShares returns the proportional payout for a share amount
// against the claim-token total supply and current pooled balance.
func (c *Campaign) RedeemableFromShares(shareAmount uint64) uint64 {
	c.guard.mu.Lock()
	defer c.guard.mu.Unlock()
	return c.redeemableFromShares(shareAmount)
}

// Operator returns the operator address.
func (c *Campaign) Operator() identity.Address { return c.cfg.Operator }

// FundingCap returns the funding cap.
func (c *Campaign) FundingCap() uint64 { return c.cfg.FundingCap }

// OperatorPercent returns the operator equity percent.
func (c *Campaign) OperatorPercent() uint64 { return c.cfg.OperatorPercent }
