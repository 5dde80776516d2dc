package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"kioskopos/internal/dto"
	"kioskopos/internal/middleware"
	"kioskopos/internal/model"
	"kioskopos/internal/service"
)

// reportCashStub serves a fixed shift; the remaining CashService methods
// are never reached by the report handler.
type reportCashStub struct {
	service.CashService
	shift *model.Shift
}

func (s *reportCashStub) ShiftDetail(_ context.Context, _ uuid.UUID) (*model.Shift, []model.CashTransaction, error) {
	return s.shift, nil, nil
}

type configStub struct {
	service.ConfigService
}

func (s *configStub) Get(_ context.Context) (*dto.ConfigurationResponse, error) {
	return &dto.ConfigurationResponse{BusinessName: "Kiosco Test"}, nil
}

func requestReport(t *testing.T, rol, userID string, shift *model.Shift) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	h := NewShiftsHandler(&reportCashStub{shift: shift}, &configStub{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/v1/shifts/"+shift.ID.String()+"/report", nil)
	c.Params = gin.Params{{Key: "id", Value: shift.ID.String()}}
	c.Set(middleware.ClaimsKey, &middleware.JWTClaims{UserID: userID, Rol: rol})

	h.Report(c)
	return w
}

func closedShift() *model.Shift {
	closing := decimal.NewFromInt(1500)
	expected := decimal.NewFromInt(1500)
	diff := decimal.Zero
	recon := "cuadrada"
	now := time.Now()
	return &model.Shift{
		ID:             uuid.New(),
		UserID:         uuid.New(),
		UserName:       "Cajera Uno",
		OpeningCash:    decimal.NewFromInt(500),
		Status:         "cerrada",
		StartDate:      now.Add(-8 * time.Hour),
		EndDate:        &now,
		ClosingCash:    &closing,
		ExpectedCash:   &expected,
		Difference:     &diff,
		Reconciliation: &recon,
	}
}

func TestShiftReportRejectsOtherOperators(t *testing.T) {
	shift := closedShift()

	w := requestReport(t, middleware.RolCajero, uuid.New().String(), shift)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestShiftReportAllowsOwnerAndAdmin(t *testing.T) {
	shift := closedShift()

	owner := requestReport(t, middleware.RolCajero, shift.UserID.String(), shift)
	assert.Equal(t, http.StatusOK, owner.Code)
	assert.Equal(t, "application/pdf", owner.Header().Get("Content-Type"))

	admin := requestReport(t, middleware.RolAdministrador, uuid.New().String(), shift)
	assert.Equal(t, http.StatusOK, admin.Code)
}
