package cancel_visit

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

	cancelVisit "github.com/m04kA/FLM-VisitService/internal/usecase/cancel_visit"
)

type fakeUseCase struct {
	gotReq *cancelVisit.Request
	err    error
}

func (uc *fakeUseCase) Execute(_ context.Context, req *cancelVisit.Request) error {
	uc.gotReq = req
	return uc.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newRouter(uc CancelVisitUseCase) *mux.Router {
	r := mux.NewRouter()
	h := NewHandler(uc, nopLogger{})
	r.HandleFunc("/api/v1/flats/{flatId}/visits/{startTime}/cancel", h.Handle).Methods(http.MethodPatch)
	return r
}

func doRequest(t *testing.T, router *mux.Router, url string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPatch, url, bytes.NewReader(raw))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandleCanceled(t *testing.T) {
	uc := &fakeUseCase{}
	router := newRouter(uc)

	rec := doRequest(t, router, "/api/v1/flats/5/visits/36000/cancel", CancelVisitRequest{VisitorID: 7})

	assert.Equal(t, http.StatusOK, rec.Code)

	require.NotNil(t, uc.gotReq)
	assert.Equal(t, int64(5), uc.gotReq.FlatID)
	assert.Equal(t, int64(7), uc.gotReq.VisitorID)
	assert.Equal(t, int64(36000), uc.gotReq.StartTime)
}

func TestHandleNotFound(t *testing.T) {
	// "Не найдена", "чужая бронь" и "уже отклонена" дают один и тот же 404
	router := newRouter(&fakeUseCase{err: cancelVisit.ErrReservationNotFound})

	rec := doRequest(t, router, "/api/v1/flats/5/visits/36000/cancel", CancelVisitRequest{VisitorID: 7})

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleInvalidPathParams(t *testing.T) {
	router := newRouter(&fakeUseCase{})

	rec := doRequest(t, router, "/api/v1/flats/abc/visits/36000/cancel", CancelVisitRequest{VisitorID: 7})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, router, "/api/v1/flats/5/visits/xyz/cancel", CancelVisitRequest{VisitorID: 7})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
