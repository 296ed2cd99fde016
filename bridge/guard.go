package bridge

import (
	"fmt"
	"log"
	"time"

	"goflopbridge/types"

	"github.com/google/uuid"
)

// Guard keeps the bridge's permanent ledger of consumed source
// transactions. Reservation is an atomic insert-if-absent with expiry, so
// two concurrent submissions of one txid cannot both proceed; the permanent
// record is written only on Commit.
type Guard struct {
	Store Store
}

// Reserve acquires the reservation first and reads the ledger while
// holding it. Checking the ledger before reserving would leave a window
// where a commit by a concurrent request frees its reservation between
// the stale read and the acquire.
func (g *Guard) Reserve(txid string) error {
	ok, err := g.Store.Reserve(txid)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrStoreUnavailable, err.Error())
	}
	if !ok {
		// another request for the same txid is in flight
		return fmt.Errorf("%w: %s", ErrAlreadyProcessed, txid)
	}

	processed, err := g.Store.IsProcessed(txid)
	if err != nil {
		g.release(txid)
		return fmt.Errorf("%w: %s", ErrStoreUnavailable, err.Error())
	}
	if processed {
		g.release(txid)
		return fmt.Errorf("%w: %s", ErrAlreadyProcessed, txid)
	}
	return nil
}

// a failed release is not fatal, the reservation expires with its TTL
func (g *Guard) release(txid string) {
	if err := g.Store.Release(txid); err != nil {
		log.Printf("guard %s: error releasing reservation: %s", txid, err.Error())
	}
}

// Release frees a reservation whose settlement did not commit. The txid
// stays eligible for a retried settlement attempt.
func (g *Guard) Release(txid string) error {
	return g.Store.Release(txid)
}

// Commit writes the permanent record. Called only after the destination
// side effect has been accepted by its chain.
func (g *Guard) Commit(txid string, direction types.SwapDirection) error {
	rec := &types.ProcessedTxRecord{
		ID:        uuid.New().String(),
		TxID:      txid,
		Direction: direction,
		TsCreated: time.Now().Unix(),
	}
	if err := g.Store.Commit(rec); err != nil {
		return fmt.Errorf("%w: %s", ErrStoreUnavailable, err.Error())
	}
	return nil
}
