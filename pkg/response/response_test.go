package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookbnb/service-booking/pkg/domain"
)

func errorResponse(t *testing.T, err error) (int, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	Error(c, err)

	var body Message
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec.Code, body.Message
}

func TestErrorMapsDomainErrors(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantCode    int
		wantMessage string
	}{
		{
			"validation",
			domain.NewValidationError("tenant_id is required"),
			http.StatusBadRequest,
			"tenant_id is required",
		},
		{
			"not found",
			domain.NewNotFoundError("Booking", "No booking by that id was found."),
			http.StatusNotFound,
			"No booking by that id was found.",
		},
		{
			"precondition failed",
			domain.NewPreconditionFailedError("The intent booking has overlapping dates"),
			http.StatusPreconditionFailed,
			"The intent booking has overlapping dates",
		},
		{
			"conflict",
			domain.NewConflictError("booking was modified concurrently"),
			http.StatusConflict,
			"booking was modified concurrently",
		},
		{
			"store unavailable",
			domain.NewUnavailableError("failed to save booking", errors.New("connection refused")),
			http.StatusInternalServerError,
			"failed to save booking",
		},
		{
			"unrecognized error",
			errors.New("pq: out of memory"),
			http.StatusInternalServerError,
			"internal server error",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, message := errorResponse(t, tt.err)
			assert.Equal(t, tt.wantCode, code)
			assert.Equal(t, tt.wantMessage, message)
		})
	}
}

func TestErrorUnwrapsWrappedDomainErrors(t *testing.T) {
	wrapped := fmt.Errorf("create booking: %w",
		domain.NewPreconditionFailedError("The intent booking has overlapping dates"))
	code, message := errorResponse(t, wrapped)
	assert.Equal(t, http.StatusPreconditionFailed, code)
	assert.Equal(t, "The intent booking has overlapping dates", message)
}
