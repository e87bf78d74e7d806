package create_reserve

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	createReserve "github.com/hairmatch/HM-ReserveService/internal/usecase/create_reserve"
)

type fakeUseCase struct {
	resp *createReserve.Response
	err  error
}

func (f *fakeUseCase) Execute(ctx context.Context, req *createReserve.Request) (*createReserve.Response, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func doRequest(t *testing.T, uc CreateReserveUseCase, body string) *httptest.ResponseRecorder {
	t.Helper()
	h := NewHandler(uc, noopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/reserve/create", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

const validBody = `{"customer": 1, "hairdresser": 2, "service": 3, "start_time": "2026-03-02T10:00:00Z"}`

func TestHandle_Created(t *testing.T) {
	uc := &fakeUseCase{resp: &createReserve.Response{ID: 1}}

	rec := doRequest(t, uc, validBody)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var payload map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, "reserve created successfully", payload["message"])
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"slot taken", createReserve.ErrSlotTaken, http.StatusConflict},
		{"customer double booked", createReserve.ErrCustomerDoubleBooked, http.StatusConflict},
		{"customer missing", createReserve.ErrCustomerNotFound, http.StatusNotFound},
		{"hairdresser missing", createReserve.ErrHairdresserNotFound, http.StatusNotFound},
		{"service missing", createReserve.ErrServiceNotFound, http.StatusNotFound},
		{"invalid input", createReserve.ErrInvalidInput, http.StatusBadRequest},
		{"internal", createReserve.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, &fakeUseCase{err: tt.err}, validBody)
			assert.Equal(t, tt.wantStatus, rec.Code)

			var payload map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
			assert.NotEmpty(t, payload["error"])
		})
	}
}

func TestHandle_ConflictReasonsAreDistinct(t *testing.T) {
	taken := doRequest(t, &fakeUseCase{err: createReserve.ErrSlotTaken}, validBody)
	double := doRequest(t, &fakeUseCase{err: createReserve.ErrCustomerDoubleBooked}, validBody)

	assert.Equal(t, http.StatusConflict, taken.Code)
	assert.Equal(t, http.StatusConflict, double.Code)
	assert.NotEqual(t, taken.Body.String(), double.Body.String())
}

func TestHandle_BadBody(t *testing.T) {
	rec := doRequest(t, &fakeUseCase{}, `{"customer": "one"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_BadStartTime(t *testing.T) {
	rec := doRequest(t, &fakeUseCase{}, `{"customer": 1, "hairdresser": 2, "service": 3, "start_time": "tomorrow"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
