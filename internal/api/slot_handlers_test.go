package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"campusparking/internal/db"
	"campusparking/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSlotStore struct {
	slots    []db.Slot
	failWith error
}

func (f *fakeSlotStore) ListSlots() ([]db.Slot, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	out := make([]db.Slot, len(f.slots))
	copy(out, f.slots)
	return out, nil
}

func (f *fakeSlotStore) SeedSlots(lotNos []string) error { return nil }

func getSlots(t *testing.T, h *SlotHandler) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/slots", nil)
	rec := httptest.NewRecorder()
	h.ListSlots(rec, req)
	return rec
}

func TestListSlots(t *testing.T) {
	store := &fakeSlotStore{slots: []db.Slot{
		{LotNo: "A1", IsTaken: false},
		{LotNo: "A2", IsTaken: true},
		{LotNo: "B1", IsTaken: false},
	}}
	h := NewSlotHandler(service.NewSlotService(store))

	rec := getSlots(t, h)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp []SlotResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, 3)
	assert.Equal(t, SlotResponse{LotNo: "A1", IsTaken: false}, resp[0])
	assert.Equal(t, SlotResponse{LotNo: "A2", IsTaken: true}, resp[1])

	// Wire contract: the occupancy field is spelled isTaken.
	assert.Contains(t, rec.Body.String(), `"isTaken"`)
}

func TestListSlotsIdempotent(t *testing.T) {
	store := &fakeSlotStore{slots: []db.Slot{{LotNo: "A1"}, {LotNo: "B1", IsTaken: true}}}
	h := NewSlotHandler(service.NewSlotService(store))

	first := getSlots(t, h)
	second := getSlots(t, h)
	assert.Equal(t, first.Body.String(), second.Body.String())
}

func TestListSlotsEmpty(t *testing.T) {
	h := NewSlotHandler(service.NewSlotService(&fakeSlotStore{}))

	rec := getSlots(t, h)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestListSlotsStorageError(t *testing.T) {
	h := NewSlotHandler(service.NewSlotService(&fakeSlotStore{failWith: errors.New("connection refused")}))

	rec := getSlots(t, h)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
