package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	request "taller_mecanico/internal/adapter/http/dto/request"
	response "taller_mecanico/internal/adapter/http/dto/response"
	"taller_mecanico/internal/usecase"
	"taller_mecanico/pkg"

	"github.com/gin-gonic/gin"
)

// WorkOrderHandler handles HTTP requests for work orders and the job history.
type WorkOrderHandler struct {
	usecase usecase.IWorkOrderUseCase
}

func NewWorkOrderHandler(uc usecase.IWorkOrderUseCase) *WorkOrderHandler {
	return &WorkOrderHandler{usecase: uc}
}

// CreateWorkOrder posts a job and mirrors it onto the vehicle's open invoice.
//
//	@Summary	Create work order
//	@Tags		work-orders
//	@Accept		json
//	@Produce	json
//	@Param		body	body		request.WorkOrderRequest	true	"Work order"
//	@Success	201		{object}	response.WorkOrderResultResponse
//	@Failure	400		{object}	pkg.HTTPError
//	@Failure	404		{object}	pkg.HTTPError
//	@Failure	409		{object}	pkg.HTTPError
//	@Router		/v1/work-orders [post]
func (h *WorkOrderHandler) CreateWorkOrder(c *gin.Context) {
	var payload request.WorkOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[work-order][handler] invalid payload err=%v", err)
		writeError(c, errInvalidRequest)
		return
	}

	result, err := h.usecase.CreateWorkOrder(c.Request.Context(), payload.ToInput())
	if err != nil {
		log.Printf("[work-order][handler] create failed vehicle_id=%s err=%v", payload.VehicleID, err)
		writeError(c, mapWorkOrderError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromWorkOrderResult(result))
}

// History lists jobs newest first.
//
//	@Summary	Job history
//	@Tags		work-orders
//	@Produce	json
//	@Param		limit	query	int	false	"Max entries (default 50)"
//	@Success	200		{array}	response.HistoryEntryResponse
//	@Router		/v1/history [get]
func (h *WorkOrderHandler) History(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeError(c, errInvalidRequest)
			return
		}
		limit = n
	}

	entries, err := h.usecase.History(c.Request.Context(), limit)
	if err != nil {
		log.Printf("[work-order][handler] history failed err=%v", err)
		writeError(c, mapWorkOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromHistory(entries))
}

func mapWorkOrderError(err error) *pkg.AppError {
	if appErr, ok := mapCommonError(err); ok {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrTooManyWorkOrderLines):
		return validationError("TOO_MANY_LINES", err)
	case errors.Is(err, usecase.ErrPartNotFound):
		return pkg.NewDomainErrorSimple("PART_NOT_FOUND", "Spare part not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
