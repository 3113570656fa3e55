package reserve_visit

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	reserveVisit "github.com/m04kA/FLM-VisitService/internal/usecase/reserve_visit"
)

type fakeUseCase struct {
	gotReq *reserveVisit.Request
	resp   *reserveVisit.Response
	err    error
}

func (uc *fakeUseCase) Execute(_ context.Context, req *reserveVisit.Request) (*reserveVisit.Response, error) {
	uc.gotReq = req
	return uc.resp, uc.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newRouter(uc ReserveVisitUseCase) *mux.Router {
	r := mux.NewRouter()
	h := NewHandler(uc, nopLogger{})
	r.HandleFunc("/api/v1/flats/{flatId}/visits", h.Handle).Methods(http.MethodPost)
	return r
}

func doRequest(t *testing.T, router *mux.Router, url string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, url, bytes.NewReader(raw))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandleCreated(t *testing.T) {
	uc := &fakeUseCase{
		resp: &reserveVisit.Response{FlatID: 5, VisitorID: 7, StartTime: 36000, Status: "requested"},
	}
	router := newRouter(uc)

	rec := doRequest(t, router, "/api/v1/flats/5/visits", ReserveVisitRequest{VisitorID: 7, StartTime: 36000})

	assert.Equal(t, http.StatusCreated, rec.Code)

	// flatId из URL попадает в запрос use case
	require.NotNil(t, uc.gotReq)
	assert.Equal(t, int64(5), uc.gotReq.FlatID)
	assert.Equal(t, int64(7), uc.gotReq.VisitorID)

	var resp VisitResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "requested", resp.Status)
}

func TestHandleInvalidFlatID(t *testing.T) {
	router := newRouter(&fakeUseCase{})

	rec := doRequest(t, router, "/api/v1/flats/abc/visits", ReserveVisitRequest{VisitorID: 7, StartTime: 36000})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleInvalidBody(t *testing.T) {
	router := newRouter(&fakeUseCase{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/flats/5/visits", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"time not aligned", reserveVisit.ErrTimeNotAligned, http.StatusBadRequest},
		{"outside visiting hours", reserveVisit.ErrOutsideVisitingHours, http.StatusBadRequest},
		{"too soon", reserveVisit.ErrTooSoonToVisit, http.StatusBadRequest},
		{"not in next week", reserveVisit.ErrNotInNextWeek, http.StatusBadRequest},
		{"already reserved", reserveVisit.ErrSlotAlreadyReserved, http.StatusConflict},
		{"invalid input", reserveVisit.ErrInvalidInput, http.StatusBadRequest},
		{"internal", reserveVisit.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newRouter(&fakeUseCase{err: tt.err})

			rec := doRequest(t, router, "/api/v1/flats/5/visits", ReserveVisitRequest{VisitorID: 7, StartTime: 36000})

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
