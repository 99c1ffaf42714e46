package campaign

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundUpDiv(t *testing.T) {
	tests := []struct {
		a, b, want uint64
	}{
		{0, 5, 0},
		{1, 5, 1},
		{4, 5, 1},
		{5, 5, 1},
		{6, 5, 2},
		{10, 3, 4},
		{9, 3, 3},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, RoundUpDiv(tt.a, tt.b), "RoundUpDiv(%d, %d)", tt.a, tt.b)
	}
}

func TestConversions(t *testing.T) {
	// ValueToShares is strictly increasing.
	prev := ValueToShares(0)
	for v := uint64(1); v <= 100; v++ {
		cur := ValueToShares(v)
		require.Greater(t, cur, prev)
		prev = cur
	}

	// Round-tripping share counts never gains shares.
	for _, s := range []uint64{0, 1, 999, 1000, 1001, 1500, 2000, 123456} {
		assert.LessOrEqual(t, ValueToShares(SharesToValue(s)), s, "shares %d", s)
	}

	// Exact inverse on whole multiples of the scale.
	for _, v := range []uint64{0, 1, 7, 1000} {
		assert.Equal(t, v, SharesToValue(ValueToShares(v)))
	}
}

func TestShareValue_ParDuringFunding(t *testing.T) {
	env := newTestEnv(t, 100, 0)
	x, y := makeAddr(0xAA), makeAddr(0xCC)

	// Value-per-share holds at par through contributions and
	// withdrawals: the sum of entitlements always equals the balance.
	_, _, err := env.c.Contribute(callV(x, 40), x, 40)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), env.c.ShareValue())

	_, err = env.c.Redeem(call(x), 1, 13)
	require.NoError(t, err)

	_, _, err = env.c.Contribute(callV(y, 25), y, 25)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), env.c.ShareValue())

	entX, err := env.c.Entitlement(1)
	require.NoError(t, err)
	entY, err := env.c.Entitlement(2)
	require.NoError(t, err)
	assert.Equal(t, uint64(27), entX)
	assert.Equal(t, uint64(25), entY)
	assert.Equal(t, entX+entY, env.c.Balance())
}

func TestEntitlement_StaleSnapshotClampsToZero(t *testing.T) {
	env := newTestEnv(t, 10, 0)
	x := makeAddr(0xAA)

	tokenID, _, err := env.c.Contribute(callV(x, 5), x, 5)
	require.NoError(t, err)
	_, err = env.c.Redeem(call(x), tokenID, 2)
	require.NoError(t, err)

	// Closing zeroes the value-per-share while the withdrawn amount
	// persists; the entitlement clamps rather than underflowing.
	_, _, err = env.c.CloseFunding(call(env.operator))
	require.NoError(t, err)

	ent, err := env.c.Entitlement(tokenID)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), ent)
}

func TestSolvency_MixedLifecycle(t *testing.T) {
	env := newTestEnv(t, 10, 10)
	x, y := makeAddr(0xAA), makeAddr(0xCC)

	step := func(name string, fn func() error) {
		t.Helper()
		require.NoError(t, fn(), name)
		requireSolvent(t, env.c)
	}

	step("x contributes 4", func() error {
		_, _, err := env.c.Contribute(callV(x, 4), x, 4)
		return err
	})
	step("x redeems 1", func() error {
		_, err := env.c.Redeem(call(x), 1, 1)
		return err
	})
	step("y contributes 7", func() error {
		_, _, err := env.c.Contribute(callV(y, 7), y, 7)
		return err
	})
	step("close funding", func() error {
		_, _, err := env.c.CloseFunding(call(env.operator))
		return err
	})

	env.nft.AcceptOfferFn = func(tokenID, offer uint64) error { return nil }
	step("sale at 13", func() error {
		return env.c.AcceptSaleOffer(call(env.operator), 1, 13)
	})

	// Drain every entitlement; the pool must cover all of them, with
	// only rounding dust left behind.
	for id := range env.c.Records() {
		ent, err := env.c.Entitlement(id)
		require.NoError(t, err)
		if ent == 0 {
			continue
		}
		owner, err := env.c.Tokens().OwnerOf(id)
		require.NoError(t, err)
		_, err = env.c.Redeem(call(owner), id, ent)
		require.NoError(t, err)
		requireSolvent(t, env.c)
	}
}
