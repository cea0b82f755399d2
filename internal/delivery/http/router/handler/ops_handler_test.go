package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	mockUsecase "clinica/internal/mocks/usecase"
	"clinica/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestOpsHandler_PendingCancellations(t *testing.T) {
	mockAutoCancel := mockUsecase.NewMockAutoCancelUsecase(t)
	handler := NewOpsHandler(mockAutoCancel, testLogger())

	mockAutoCancel.EXPECT().
		CountPending(mock.Anything).
		Return(7, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/ops/auto-cancel/pending", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, handler.PendingCancellations(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"pending":7`)
}

func TestOpsHandler_RunAutoCancel(t *testing.T) {
	mockAutoCancel := mockUsecase.NewMockAutoCancelUsecase(t)
	handler := NewOpsHandler(mockAutoCancel, testLogger())

	mockAutoCancel.EXPECT().
		Run(mock.Anything).
		Return(&usecase.AutoCancelSummary{Candidates: 3, Cancelled: 2, Skipped: 1}, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/ops/auto-cancel/run", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, handler.RunAutoCancel(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Sweep completed")
}
