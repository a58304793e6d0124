package validators

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "ticket-desk.com/ticket-desk/internal/data_models"
)

func ValidateCreateTicketRequest(r *dto.CreateTicketRequest) error {
	if r.Subject == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "asunto is required")
	}
	return nil
}
