package handlers

import (
	"errors"
	"log"
	"net/http"

	request "taller_mecanico/internal/adapter/http/dto/request"
	response "taller_mecanico/internal/adapter/http/dto/response"
	"taller_mecanico/internal/usecase"
	"taller_mecanico/pkg"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves vehicles, clients and spare parts.
type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewCatalogHandler(uc usecase.ICatalogUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

//	@Summary	Create vehicle
//	@Tags		catalog
//	@Accept		json
//	@Produce	json
//	@Param		body	body		request.VehicleRequest	true	"Vehicle"
//	@Success	201		{object}	response.VehicleResponse
//	@Failure	400		{object}	pkg.HTTPError
//	@Router		/v1/vehicles [post]
func (h *CatalogHandler) CreateVehicle(c *gin.Context) {
	var payload request.VehicleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	v, err := h.usecase.CreateVehicle(c.Request.Context(), payload.ToInput())
	if err != nil {
		log.Printf("[catalog][handler] create vehicle failed err=%v", err)
		writeError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromVehicle(v))
}

//	@Summary	List vehicles
//	@Tags		catalog
//	@Produce	json
//	@Success	200	{array}	response.VehicleResponse
//	@Router		/v1/vehicles [get]
func (h *CatalogHandler) ListVehicles(c *gin.Context) {
	vs, err := h.usecase.ListVehicles(c.Request.Context())
	if err != nil {
		writeError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromVehicles(vs))
}

//	@Summary	Get vehicle
//	@Tags		catalog
//	@Produce	json
//	@Param		id	path		string	true	"Vehicle ID"
//	@Success	200	{object}	response.VehicleResponse
//	@Failure	404	{object}	pkg.HTTPError
//	@Router		/v1/vehicles/{id} [get]
func (h *CatalogHandler) GetVehicle(c *gin.Context) {
	v, err := h.usecase.GetVehicle(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromVehicle(v))
}

//	@Summary	Update vehicle
//	@Tags		catalog
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string					true	"Vehicle ID"
//	@Param		body	body		request.VehicleRequest	true	"Vehicle"
//	@Success	200		{object}	response.VehicleResponse
//	@Failure	404		{object}	pkg.HTTPError
//	@Router		/v1/vehicles/{id} [put]
func (h *CatalogHandler) UpdateVehicle(c *gin.Context) {
	var payload request.VehicleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	v, err := h.usecase.UpdateVehicle(c.Request.Context(), c.Param("id"), payload.ToInput())
	if err != nil {
		log.Printf("[catalog][handler] update vehicle failed vehicle_id=%s err=%v", c.Param("id"), err)
		writeError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromVehicle(v))
}

//	@Summary	Delete vehicle
//	@Tags		catalog
//	@Param		id	path	string	true	"Vehicle ID"
//	@Success	204
//	@Failure	404	{object}	pkg.HTTPError
//	@Router		/v1/vehicles/{id} [delete]
func (h *CatalogHandler) DeleteVehicle(c *gin.Context) {
	if err := h.usecase.DeleteVehicle(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, mapCatalogError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

//	@Summary	Create client
//	@Tags		catalog
//	@Accept		json
//	@Produce	json
//	@Param		body	body		request.ClientRequest	true	"Client"
//	@Success	201		{object}	entities.Client
//	@Failure	400		{object}	pkg.HTTPError
//	@Router		/v1/clients [post]
func (h *CatalogHandler) CreateClient(c *gin.Context) {
	var payload request.ClientRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	client, err := h.usecase.CreateClient(c.Request.Context(), payload.ToInput())
	if err != nil {
		writeError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusCreated, client)
}

//	@Summary	List clients
//	@Tags		catalog
//	@Produce	json
//	@Success	200	{array}	entities.Client
//	@Router		/v1/clients [get]
func (h *CatalogHandler) ListClients(c *gin.Context) {
	clients, err := h.usecase.ListClients(c.Request.Context())
	if err != nil {
		writeError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, clients)
}

//	@Summary	Get client
//	@Tags		catalog
//	@Produce	json
//	@Param		id	path		string	true	"Client ID"
//	@Success	200	{object}	entities.Client
//	@Failure	404	{object}	pkg.HTTPError
//	@Router		/v1/clients/{id} [get]
func (h *CatalogHandler) GetClient(c *gin.Context) {
	client, err := h.usecase.GetClient(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, client)
}

//	@Summary	Create spare part
//	@Tags		catalog
//	@Accept		json
//	@Produce	json
//	@Param		body	body		request.PartRequest	true	"Spare part"
//	@Success	201		{object}	response.SparePartResponse
//	@Failure	400		{object}	pkg.HTTPError
//	@Router		/v1/parts [post]
func (h *CatalogHandler) CreatePart(c *gin.Context) {
	var payload request.PartRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	p, err := h.usecase.CreatePart(c.Request.Context(), payload.ToInput())
	if err != nil {
		writeError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromSparePart(p))
}

//	@Summary	List spare parts
//	@Tags		catalog
//	@Produce	json
//	@Success	200	{array}	response.SparePartResponse
//	@Router		/v1/parts [get]
func (h *CatalogHandler) ListParts(c *gin.Context) {
	ps, err := h.usecase.ListParts(c.Request.Context())
	if err != nil {
		writeError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSpareParts(ps))
}

//	@Summary	Get spare part
//	@Tags		catalog
//	@Produce	json
//	@Param		id	path		string	true	"Spare part ID"
//	@Success	200	{object}	response.SparePartResponse
//	@Failure	404	{object}	pkg.HTTPError
//	@Router		/v1/parts/{id} [get]
func (h *CatalogHandler) GetPart(c *gin.Context) {
	p, err := h.usecase.GetPart(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSparePart(p))
}

func mapCatalogError(err error) *pkg.AppError {
	if appErr, ok := mapCommonError(err); ok {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidPlate), errors.Is(err, usecase.ErrInvalidModel):
		return validationError("INVALID_VEHICLE", err)
	case errors.Is(err, usecase.ErrInvalidClientName), errors.Is(err, usecase.ErrInvalidClientID):
		return validationError("INVALID_CLIENT", err)
	case errors.Is(err, usecase.ErrInvalidPartName), errors.Is(err, usecase.ErrInvalidPartPrice), errors.Is(err, usecase.ErrInvalidPartID):
		return validationError("INVALID_PART", err)
	case errors.Is(err, usecase.ErrClientNotFound):
		return pkg.NewDomainErrorSimple("CLIENT_NOT_FOUND", "Client not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPartNotFound):
		return pkg.NewDomainErrorSimple("PART_NOT_FOUND", "Spare part not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
