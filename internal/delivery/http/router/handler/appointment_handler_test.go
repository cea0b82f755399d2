package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "clinica/internal/domain/errors"
	mockUsecase "clinica/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newConfirmContext(id string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/appointments/"+id+"/confirm", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(id)

	return c, rec
}

func TestAppointmentHandler_Confirm_Success(t *testing.T) {
	mockAppointments := mockUsecase.NewMockAppointmentUsecase(t)
	handler := NewAppointmentHandler(mockAppointments, testLogger())

	appointmentID := uuid.New()
	mockAppointments.EXPECT().
		Confirm(mock.Anything, appointmentID).
		Return(nil)

	c, rec := newConfirmContext(appointmentID.String())

	require.NoError(t, handler.Confirm(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Cita confirmada")
}

func TestAppointmentHandler_Confirm_InvalidID(t *testing.T) {
	mockAppointments := mockUsecase.NewMockAppointmentUsecase(t)
	handler := NewAppointmentHandler(mockAppointments, testLogger())

	c, rec := newConfirmContext("not-a-uuid")

	require.NoError(t, handler.Confirm(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAppointmentHandler_Confirm_NoLongerConfirmable(t *testing.T) {
	mockAppointments := mockUsecase.NewMockAppointmentUsecase(t)
	handler := NewAppointmentHandler(mockAppointments, testLogger())

	appointmentID := uuid.New()
	mockAppointments.EXPECT().
		Confirm(mock.Anything, appointmentID).
		Return(domainerrors.ErrInvalidAppointmentState)

	c, _ := newConfirmContext(appointmentID.String())

	err := handler.Confirm(c)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidAppointmentState)
}
