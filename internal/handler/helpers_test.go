package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"kioskopos/internal/repository"
	"kioskopos/internal/service"
)

func respondTo(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	respondError(c, err)
	return w
}

func TestRespondErrorKnownMappings(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, respondTo(t, service.ErrNotFound).Code)
	assert.Equal(t, http.StatusConflict, respondTo(t, service.ErrInvalidState).Code)
	assert.Equal(t, http.StatusConflict, respondTo(t, repository.ErrStockConflict).Code)
	assert.Equal(t, http.StatusUnprocessableEntity, respondTo(t, service.ErrMissingCustomerInfo).Code)
	assert.Equal(t, http.StatusBadRequest, respondTo(t, &service.InputError{Msg: "el monto debe ser mayor a cero"}).Code)
}

func TestRespondErrorUnknownIsInternalAndOpaque(t *testing.T) {
	// Raw driver errors must not reach the client as 4xx with their text
	w := respondTo(t, errors.New("pq: deadlock detected (SQLSTATE 40P01)"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Error interno del servidor")
	assert.NotContains(t, w.Body.String(), "deadlock")
}
