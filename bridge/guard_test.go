package bridge

import (
	"errors"
	"testing"

	"goflopbridge/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuardReserveAndCommit(t *testing.T) {
	store := newFakeStore()
	guard := &Guard{Store: store}

	require.NoError(t, guard.Reserve("tx1"))
	require.NoError(t, guard.Commit("tx1", types.DIRECTION_FLOP_TO_WFLOP))

	require.Len(t, store.records, 1)
	rec := store.records[0]
	assert.Equal(t, "tx1", rec.TxID)
	assert.Equal(t, types.DIRECTION_FLOP_TO_WFLOP, rec.Direction)
	assert.NotEmpty(t, rec.ID)
	assert.NotZero(t, rec.TsCreated)
	assert.False(t, store.reserved["tx1"])
}

func TestGuardRejectsProcessed(t *testing.T) {
	store := newFakeStore()
	store.processed["tx1"] = true
	guard := &Guard{Store: store}

	err := guard.Reserve("tx1")
	assert.True(t, errors.Is(err, ErrAlreadyProcessed))
	assert.False(t, store.reserved["tx1"], "rejection must not leak the reservation")
}

// orderedStore records the sequence of guard operations.
type orderedStore struct {
	*fakeStore
	ops []string
}

func (o *orderedStore) IsProcessed(txid string) (bool, error) {
	o.ops = append(o.ops, "ledger")
	return o.fakeStore.IsProcessed(txid)
}

func (o *orderedStore) Reserve(txid string) (bool, error) {
	o.ops = append(o.ops, "reserve")
	return o.fakeStore.Reserve(txid)
}

func TestGuardReadsLedgerUnderReservation(t *testing.T) {
	// the ledger read must happen while holding the reservation; a read
	// taken first can go stale the moment a concurrent commit frees its
	// reservation, letting a committed txid settle twice
	store := &orderedStore{fakeStore: newFakeStore()}
	guard := &Guard{Store: store}

	require.NoError(t, guard.Reserve("tx1"))
	assert.Equal(t, []string{"reserve", "ledger"}, store.ops)
}

func TestGuardRejectsCommittedTxAfterReservationFreed(t *testing.T) {
	store := newFakeStore()
	guard := &Guard{Store: store}

	// first request settles: reservation taken, record committed,
	// reservation dropped
	require.NoError(t, guard.Reserve("tx1"))
	require.NoError(t, guard.Commit("tx1", types.DIRECTION_FLOP_TO_WFLOP))
	require.False(t, store.reserved["tx1"])

	// a second request can acquire the freed reservation but must still
	// be stopped by the permanent record
	err := guard.Reserve("tx1")
	assert.True(t, errors.Is(err, ErrAlreadyProcessed))
	assert.False(t, store.reserved["tx1"])
}

func TestGuardRejectsConcurrentReservation(t *testing.T) {
	store := newFakeStore()
	guard := &Guard{Store: store}

	require.NoError(t, guard.Reserve("tx1"))
	err := guard.Reserve("tx1")
	assert.True(t, errors.Is(err, ErrAlreadyProcessed))
}

func TestGuardReleaseMakesTxRetryable(t *testing.T) {
	store := newFakeStore()
	guard := &Guard{Store: store}

	require.NoError(t, guard.Reserve("tx1"))
	require.NoError(t, guard.Release("tx1"))
	assert.NoError(t, guard.Reserve("tx1"))
}

func TestGuardStoreErrors(t *testing.T) {
	store := newFakeStore()
	store.isErr = errors.New("redis down")
	guard := &Guard{Store: store}

	err := guard.Reserve("tx1")
	assert.True(t, errors.Is(err, ErrStoreUnavailable))

	store = newFakeStore()
	store.commitErr = errors.New("redis down")
	guard = &Guard{Store: store}
	require.NoError(t, guard.Reserve("tx1"))
	err = guard.Commit("tx1", types.DIRECTION_WFLOP_TO_FLOP)
	assert.True(t, errors.Is(err, ErrStoreUnavailable))
}
