package campaign

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wilsoncusack/crowdfund/identity"
)

func TestCloseFunding_OperatorEquity(t *testing.T) {
	env := newTestEnv(t, 20, 10)
	x, y := makeAddr(0xAA), makeAddr(0xCC)

	_, _, err := env.c.Contribute(callV(x, 5), x, 5)
	require.NoError(t, err)
	_, _, err = env.c.Contribute(callV(y, 4), y, 4)
	require.NoError(t, err)
	require.Equal(t, uint64(9000), env.c.TotalShares())

	opToken, sweep, err := env.c.CloseFunding(call(env.operator))
	require.NoError(t, err)
	assert.Equal(t, uint64(9), sweep)
	requireSolvent(t, env.c)

	// 10% equity over a 9000-share pre-close supply is 1000 shares,
	// bringing the total to 10000: exactly 10% of final supply.
	rec, err := env.c.Record(opToken)
	require.NoError(t, err)
	assert.Equal(t, uint64(1000), rec.Shares)
	assert.Equal(t, uint64(10000), env.c.TotalShares())
	assert.Equal(t, uint64(10000), env.c.Tokens().TotalSupply())

	owner, err := env.c.Tokens().OwnerOf(opToken)
	require.NoError(t, err)
	assert.Equal(t, env.operator, owner)

	// Entire pooled balance went to the operator.
	assert.Equal(t, uint64(0), env.c.Balance())
	require.NotEmpty(t, env.rail.Sent)
	last := env.rail.Sent[len(env.rail.Sent)-1]
	assert.Equal(t, env.operator, last.To)
	assert.Equal(t, uint64(9), last.Amount)

	assert.Equal(t, Trading, env.c.Phase())
	assert.Equal(t, uint64(0), env.c.ShareValue())

	events := env.c.Events()
	closed, ok := events[len(events)-1].(FundingClosed)
	require.True(t, ok)
	assert.Equal(t, uint64(9), closed.Raised)
	assert.Equal(t, uint64(1000), closed.OperatorShares)
}

func TestCloseFunding_SucceedsExactlyOnce(t *testing.T) {
	env := newTestEnv(t, 10, 10)
	x := makeAddr(0xAA)

	_, _, err := env.c.Contribute(callV(x, 5), x, 5)
	require.NoError(t, err)

	_, _, err = env.c.CloseFunding(call(env.operator))
	require.NoError(t, err)

	_, _, err = env.c.CloseFunding(call(env.operator))
	assert.ErrorIs(t, err, ErrWrongPhase)
}

func TestCloseFunding_NotOperator(t *testing.T) {
	env := newTestEnv(t, 10, 10)
	x := makeAddr(0xAA)

	_, _, err := env.c.CloseFunding(call(x))
	assert.ErrorIs(t, err, ErrNotOperator)
	assert.Equal(t, Funding, env.c.Phase())
}

func TestCloseFunding_ZeroEquityPercent(t *testing.T) {
	env := newTestEnv(t, 10, 0)
	x := makeAddr(0xAA)

	_, _, err := env.c.Contribute(callV(x, 5), x, 5)
	require.NoError(t, err)

	opToken, sweep, err := env.c.CloseFunding(call(env.operator))
	require.NoError(t, err)
	assert.Equal(t, uint64(0), opToken)
	assert.Equal(t, uint64(5), sweep)

	// No equity record minted.
	assert.Equal(t, uint64(5000), env.c.TotalShares())
	assert.Equal(t, uint64(5000), env.c.Tokens().TotalSupply())
	assert.Len(t, env.c.Records(), 1)
	assert.Equal(t, Trading, env.c.Phase())
}

func TestCloseFunding_SweepFailureRollsBack(t *testing.T) {
	env := newTestEnv(t, 10, 10)
	x := makeAddr(0xAA)

	_, _, err := env.c.Contribute(callV(x, 9), x, 9)
	require.NoError(t, err)

	railErr := errors.New("rail down")
	env.rail.TransferFn = func(to identity.Address, amount uint64) error { return railErr }

	_, _, err = env.c.CloseFunding(call(env.operator))
	require.ErrorIs(t, err, railErr)

	// Whole-call abort: still funding, equity grant undone.
	assert.Equal(t, Funding, env.c.Phase())
	assert.Equal(t, uint64(9), env.c.Balance())
	assert.Equal(t, uint64(9000), env.c.TotalShares())
	assert.Equal(t, uint64(9000), env.c.Tokens().TotalSupply())
	assert.Len(t, env.c.Records(), 1)
	requireSolvent(t, env.c)

	// Close succeeds once the rail recovers.
	env.rail.TransferFn = nil
	_, _, err = env.c.CloseFunding(call(env.operator))
	require.NoError(t, err)
	assert.Equal(t, Trading, env.c.Phase())
}

func TestCloseFunding_RejectsAttachedValue(t *testing.T) {
	env := newTestEnv(t, 10, 10)
	_, _, err := env.c.CloseFunding(callV(env.operator, 1))
	assert.ErrorIs(t, err, ErrUnexpectedValue)
}
