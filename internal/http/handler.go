package http

import (
	"log"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"ticket-desk.com/ticket-desk/internal/constants"
	dto "ticket-desk.com/ticket-desk/internal/data_models"
	apperrors "ticket-desk.com/ticket-desk/internal/errors"
	"ticket-desk.com/ticket-desk/internal/http/validators"
	model "ticket-desk.com/ticket-desk/internal/models"
	"ticket-desk.com/ticket-desk/internal/services"
)

type Handler struct {
	ticketService *services.TicketService
	userService   *services.UserService
}

func NewHandler(ticketService *services.TicketService, userService *services.UserService) *Handler {
	return &Handler{
		ticketService: ticketService,
		userService:   userService,
	}
}

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"message": "API de Tickets funcionando correctamente",
	})
}

func (h *Handler) ListTickets(c echo.Context) error {
	tickets, err := h.ticketService.ListTickets(c.Request().Context())
	if err != nil {
		return httpError(err)
	}

	items := make([]echo.Map, 0, len(tickets))
	for _, t := range tickets {
		items = append(items, echo.Map{
			"id":      t.ID,
			"asunto":  t.Subject,
			"estado":  t.Status.Label(),
			"fecha":   t.CreatedAt,
			"mensaje": t.InitialMessage,
		})
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) GetTicket(c echo.Context) error {
	id, err := ticketID(c)
	if err != nil {
		return err
	}

	ticket, err := h.ticketService.GetTicket(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, ticketJSON(ticket))
}

func (h *Handler) CreateTicket(c echo.Context) error {
	var req dto.CreateTicketRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateCreateTicketRequest(&req); err != nil {
		return err
	}

	ticket, err := h.ticketService.CreateTicket(c.Request().Context(), req.Subject, req.InitialMessage)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"id":     ticket.ID,
		"status": "creado",
	})
}

func (h *Handler) UpdateTicket(c echo.Context) error {
	id, err := ticketID(c)
	if err != nil {
		return err
	}

	var req dto.CreateTicketRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateCreateTicketRequest(&req); err != nil {
		return err
	}

	ticket, err := h.ticketService.UpdateTicket(c.Request().Context(), id, req.Subject, req.InitialMessage)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"id":     ticket.ID,
		"status": "actualizado",
	})
}

func (h *Handler) DeleteTicket(c echo.Context) error {
	id, err := ticketID(c)
	if err != nil {
		return err
	}

	if err := h.ticketService.DeleteTicket(c.Request().Context(), id); err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"status": "eliminado",
		"id":     id,
	})
}

func (h *Handler) Register(c echo.Context) error {
	var req dto.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}

	user, err := h.userService.Register(c.Request().Context(), req.Email, req.Password, constants.Role(req.Role))
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, userJSON(user))
}

func (h *Handler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}

	user, err := h.userService.Authenticate(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, userJSON(user))
}

func ticketID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid ticket id")
	}
	return uint(id), nil
}

func ticketJSON(t *model.Ticket) echo.Map {
	return echo.Map{
		"id":      t.ID,
		"asunto":  t.Subject,
		"mensaje": t.InitialMessage,
		"estado":  t.Status.Label(),
		"fecha":   t.CreatedAt,
	}
}

func userJSON(u *model.User) echo.Map {
	return echo.Map{
		"id":    u.ID,
		"email": u.Email,
		"role":  u.Role,
	}
}

// httpError translates the store taxonomy. Backend failures are logged here
// and the client gets the generic message, never the cause.
func httpError(err error) *echo.HTTPError {
	code := apperrors.StatusCode(err)
	if code == http.StatusInternalServerError {
		log.Printf("store failure: %v", err)
		return echo.NewHTTPError(code, apperrors.ErrStoreUnavailable.Message)
	}
	return echo.NewHTTPError(code, err.Error())
}
