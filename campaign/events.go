package campaign

import (
	"sync"

	"go.uber.org/zap"

	"github.com/wilsoncusack/crowdfund/identity"
)

// Event is one entry in the campaign's append-only notification log.
type Event interface {
	// Name returns the stable event name used in the structured log.
	Name() string

	// Fields returns the event's payload as structured log fields.
	Fields() []zap.Field
}

// ContributionAccepted is emitted when a contribution is accepted. Accepted
// carries the accepted amount, not the original transfer amount.
type ContributionAccepted struct {
	Backer   identity.Address
	TokenID  uint64
	Accepted uint64
}

func (ContributionAccepted) Name() string { return "contribution_accepted" }

func (e ContributionAccepted) Fields() []zap.Field {
	return []zap.Field{
		zap.String("backer", e.Backer.String()),
		zap.Uint64("token_id", e.TokenID),
		zap.Uint64("accepted", e.Accepted),
	}
}

// FundingClosed is emitted by the single Funding to Trading transition.
type FundingClosed struct {
	Raised         uint64
	OperatorShares uint64
}

func (FundingClosed) Name() string { return "funding_closed" }

func (e FundingClosed) Fields() []zap.Field {
	return []zap.Field{
		zap.Uint64("raised", e.Raised),
		zap.Uint64("operator_shares", e.OperatorShares),
	}
}

// SaleAccepted is emitted when the operator accepts a sale offer.
type SaleAccepted struct {
	Amount uint64
}

func (SaleAccepted) Name() string { return "sale_accepted" }

func (e SaleAccepted) Fields() []zap.Field {
	return []zap.Field{zap.Uint64("amount", e.Amount)}
}

// RedemptionExecuted is emitted after a successful redemption. Paid is the
// amount actually paid out.
type RedemptionExecuted struct {
	Redeemer identity.Address
	TokenID  uint64
	Paid     uint64
}

func (RedemptionExecuted) Name() string { return "redemption_executed" }

func (e RedemptionExecuted) Fields() []zap.Field {
	return []zap.Field{
		zap.String("redeemer", e.Redeemer.String()),
		zap.Uint64("token_id", e.TokenID),
		zap.Uint64("paid", e.Paid),
	}
}

// AssetReceived is emitted when the inbound asset hook acknowledges an
// asset token.
type AssetReceived struct {
	TokenID uint64
	From    identity.Address
}

func (AssetReceived) Name() string { return "asset_received" }

func (e AssetReceived) Fields() []zap.Field {
	return []zap.Field{
		zap.Uint64("token_id", e.TokenID),
		zap.String("from", e.From.String()),
	}
}

// eventLog is the append-only event log. Entries are never removed.
type eventLog struct {
	mu     sync.Mutex
	events []Event
}

func (l *eventLog) append(ev Event) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = append(l.events, ev)
}

func (l *eventLog) list() []Event {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Event, len(l.events))
	copy(out, l.events)
	return out
}

// emit appends the event to the log and mirrors it to the structured logger.
func (c *Campaign) emit(ev Event) {
	c.events.append(ev)
	c.log.Info(ev.Name(), ev.Fields()...)
}
