package handler

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/bookbnb/service-booking/internal/application"
	bookingDomain "github.com/bookbnb/service-booking/internal/domain/booking"
	"github.com/bookbnb/service-booking/pkg/response"
)

// MetricsHandler handles HTTP requests for the metrics endpoint.
type MetricsHandler struct {
	service *application.MetricsService
}

// NewMetricsHandler creates a new MetricsHandler.
func NewMetricsHandler(service *application.MetricsService) *MetricsHandler {
	return &MetricsHandler{service: service}
}

// RegisterRoutes registers the metrics route on the given router group.
func (h *MetricsHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/metrics", h.GetMetrics)
}

// GetMetrics handles GET /metrics?start_date=&end_date=.
func (h *MetricsHandler) GetMetrics(c *gin.Context) {
	start, err := requiredDateParam(c, "start_date")
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	end, err := requiredDateParam(c, "end_date")
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	metrics, err := h.service.All(c.Request.Context(), start, end)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, metrics)
}

func requiredDateParam(c *gin.Context, name string) (bookingDomain.Date, error) {
	raw, ok := c.GetQuery(name)
	if !ok || raw == "" {
		return bookingDomain.Date{}, fmt.Errorf("%s is required", name)
	}
	d, err := bookingDomain.ParseDate(raw)
	if err != nil {
		return bookingDomain.Date{}, fmt.Errorf("invalid %s: expected a YYYY-MM-DD date", name)
	}
	return d, nil
}
