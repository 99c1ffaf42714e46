package campaign

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotRestore_RoundTrip(t *testing.T) {
	env := newTestEnv(t, 10, 10)
	x, y := makeAddr(0xAA), makeAddr(0xCC)

	_, _, err := env.c.Contribute(callV(x, 4), x, 4)
	require.NoError(t, err)
	_, _, err = env.c.Contribute(callV(y, 6), y, 6)
	require.NoError(t, err)
	_, err = env.c.Redeem(call(x), 1, 1)
	require.NoError(t, err)

	snap := env.c.Snapshot()

	restored := newTestEnv(t, 10, 10)
	require.NoError(t, restored.c.Restore(snap))

	assert.Equal(t, env.c.Phase(), restored.c.Phase())
	assert.Equal(t, env.c.Balance(), restored.c.Balance())
	assert.Equal(t, env.c.TotalRaised(), restored.c.TotalRaised())
	assert.Equal(t, env.c.TotalShares(), restored.c.TotalShares())
	assert.Equal(t, env.c.ShareValue(), restored.c.ShareValue())
	assert.Equal(t, env.c.Records(), restored.c.Records())

	owner, err := restored.c.Tokens().OwnerOf(1)
	require.NoError(t, err)
	assert.Equal(t, x, owner)
	owner, err = restored.c.Tokens().OwnerOf(2)
	require.NoError(t, err)
	assert.Equal(t, y, owner)

	// The restored campaign keeps operating from where the original
	// left off: token numbering and entitlements carry over.
	ent, err := restored.c.Entitlement(1)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), ent)

	z := makeAddr(0xDD)
	tokenID, accepted, err := restored.c.Contribute(callV(z, 1), z, 1)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), tokenID)
	assert.Equal(t, uint64(1), accepted)
}

func TestSnapshot_IsDetachedCopy(t *testing.T) {
	env := newTestEnv(t, 10, 0)
	x := makeAddr(0xAA)

	_, _, err := env.c.Contribute(callV(x, 4), x, 4)
	require.NoError(t, err)

	snap := env.c.Snapshot()
	_, err = env.c.Redeem(call(x), 1, 2)
	require.NoError(t, err)

	assert.Equal(t, uint64(4), snap.Balance)
	assert.Equal(t, uint64(0), snap.Records[1].ValueWithdrawn)
}

func TestRestore_ConfigMismatch(t *testing.T) {
	env := newTestEnv(t, 10, 10)
	snap := env.c.Snapshot()

	other := newTestEnv(t, 20, 10)
	err := other.c.Restore(snap)
	require.ErrorIs(t, err, ErrSnapshotMismatch)
}
