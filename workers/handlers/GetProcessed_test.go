package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goflopbridge/types"
)

type fakeLedger struct {
	records map[string]*types.ProcessedTxRecord
	err     error
}

func (f *fakeLedger) GetProcessed(txid string) (*types.ProcessedTxRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.records[txid], nil
}

func (f *fakeLedger) FindAllProcessed() ([]*types.ProcessedTxRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	recs := make([]*types.ProcessedTxRecord, 0, len(f.records))
	for _, rec := range f.records {
		recs = append(recs, rec)
	}
	return recs, nil
}

func getProcessedTx(h *Handler, txid string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodGet, "/stats/processed/"+txid, nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("txid", txid)
	r = r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))

	w := httptest.NewRecorder()
	h.GetProcessedTx(w, r)
	return w
}

func TestGetProcessedTx(t *testing.T) {
	h := &Handler{Store: &fakeLedger{records: map[string]*types.ProcessedTxRecord{
		"tx1": {ID: "rec-1", TxID: "tx1", Direction: types.DIRECTION_FLOP_TO_WFLOP, TsCreated: 1756400000},
	}}}

	w := getProcessedTx(h, "tx1")
	require.Equal(t, http.StatusOK, w.Code)

	var rec types.ProcessedTxRecord
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rec))
	assert.Equal(t, "tx1", rec.TxID)
	assert.Equal(t, types.DIRECTION_FLOP_TO_WFLOP, rec.Direction)
}

func TestGetProcessedTxNotFound(t *testing.T) {
	h := &Handler{Store: &fakeLedger{records: map[string]*types.ProcessedTxRecord{}}}

	w := getProcessedTx(h, "missing")
	require.Equal(t, http.StatusNotFound, w.Code)

	var resp APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "error", resp.Status)
}

func TestGetProcessedTxStoreError(t *testing.T) {
	h := &Handler{Store: &fakeLedger{err: errors.New("redis down")}}

	w := getProcessedTx(h, "tx1")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestGetProcessedList(t *testing.T) {
	h := &Handler{Store: &fakeLedger{records: map[string]*types.ProcessedTxRecord{
		"tx1": {ID: "rec-1", TxID: "tx1"},
		"tx2": {ID: "rec-2", TxID: "tx2"},
	}}}

	r := httptest.NewRequest(http.MethodGet, "/stats/processed", nil)
	w := httptest.NewRecorder()
	h.GetProcessed(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	var recs []*types.ProcessedTxRecord
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &recs))
	assert.Len(t, recs, 2)
}
