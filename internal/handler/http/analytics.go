package http

import (
	"net/http"

	"github.com/attendlyhq/attendly-backend-go/internal/domain/analytics"
	"github.com/attendlyhq/attendly-backend-go/internal/handler/http/response"
)

type AnalyticsHandler interface {
	GetSummary(w http.ResponseWriter, r *http.Request)
}

type analyticsHandlerImpl struct {
	analyticsService analytics.AnalyticsService
}

func NewAnalyticsHandler(analyticsService analytics.AnalyticsService) AnalyticsHandler {
	return &analyticsHandlerImpl{
		analyticsService: analyticsService,
	}
}

// GetSummary implements AnalyticsHandler.
func (h *analyticsHandlerImpl) GetSummary(w http.ResponseWriter, r *http.Request) {
	req := analytics.SummaryRequest{
		EmployeeID: r.URL.Query().Get("employee_id"),
		FromDate:   r.URL.Query().Get("from"),
		ToDate:     r.URL.Query().Get("to"),
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.analyticsService.GetSummary(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
