package handlers

import (
	"errors"
	"net/http"

	"taller_mecanico/internal/usecase"
	"taller_mecanico/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)

// validation errors carry a message meant for the operator.
func validationError(code string, err error) *pkg.AppError {
	return pkg.NewDomainError(code, err.Error(), err, http.StatusBadRequest)
}

func internalError(err error) *pkg.AppError {
	return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
}

// mapCommonError covers the outcomes shared by several use cases.
func mapCommonError(err error) (*pkg.AppError, bool) {
	switch {
	case errors.Is(err, usecase.ErrInvalidVehicleID):
		return validationError("INVALID_VEHICLE", err), true
	case errors.Is(err, usecase.ErrVehicleNotFound):
		return pkg.NewDomainErrorSimple("VEHICLE_NOT_FOUND", "Vehicle not found", http.StatusNotFound), true
	case errors.Is(err, usecase.ErrConcurrentUpdate):
		return pkg.NewDomainError("CONCURRENT_UPDATE", err.Error(), err, http.StatusConflict), true
	}
	return nil, false
}

func writeError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
