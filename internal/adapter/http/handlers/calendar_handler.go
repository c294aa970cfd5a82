package handlers

import (
	"errors"
	"net/http"
	"strconv"

	request "taller_mecanico/internal/adapter/http/dto/request"
	"taller_mecanico/internal/usecase"
	"taller_mecanico/pkg"

	"github.com/gin-gonic/gin"
)

type CalendarHandler struct {
	usecase usecase.ICalendarUseCase
}

func NewCalendarHandler(uc usecase.ICalendarUseCase) *CalendarHandler {
	return &CalendarHandler{usecase: uc}
}

// ListMonth returns the notes of ?year=&month=.
//
//	@Summary	Calendar notes of a month
//	@Tags		calendar
//	@Produce	json
//	@Param		year	query	int	true	"Year"
//	@Param		month	query	int	true	"Month 1-12"
//	@Success	200		{array}	entities.CalendarEvent
//	@Failure	400		{object}	pkg.HTTPError
//	@Router		/v1/events [get]
func (h *CalendarHandler) ListMonth(c *gin.Context) {
	year, _ := strconv.Atoi(c.Query("year"))
	month, _ := strconv.Atoi(c.Query("month"))

	events, err := h.usecase.ListMonth(c.Request.Context(), year, month)
	if err != nil {
		writeError(c, mapCalendarError(err))
		return
	}
	c.JSON(http.StatusOK, events)
}

// Upsert stores the note of a day. Blank text removes it and answers 204.
//
//	@Summary	Set calendar note
//	@Tags		calendar
//	@Accept		json
//	@Produce	json
//	@Param		body	body		request.CalendarEventRequest	true	"Note"
//	@Success	200		{object}	entities.CalendarEvent
//	@Success	204
//	@Failure	400		{object}	pkg.HTTPError
//	@Router		/v1/events [post]
func (h *CalendarHandler) Upsert(c *gin.Context) {
	var payload request.CalendarEventRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	event, stored, err := h.usecase.Upsert(c.Request.Context(), payload.Date, payload.Text)
	if err != nil {
		writeError(c, mapCalendarError(err))
		return
	}
	if !stored {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, event)
}

func mapCalendarError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidEventDate), errors.Is(err, usecase.ErrInvalidEventMonth):
		return validationError("INVALID_EVENT", err)
	default:
		return internalError(err)
	}
}
