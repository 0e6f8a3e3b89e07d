package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/braider-booking/internal/dto"
	"github.com/BruksfildServices01/braider-booking/internal/httperr"
	"github.com/BruksfildServices01/braider-booking/internal/httpresp"
	"github.com/BruksfildServices01/braider-booking/internal/middleware"
	ucCatalog "github.com/BruksfildServices01/braider-booking/internal/usecase/catalog"
)

type ServiceHandler struct {
	create *ucCatalog.CreateService
	list   *ucCatalog.ListServices
	update *ucCatalog.UpdateService
	remove *ucCatalog.RemoveService
}

func NewServiceHandler(
	create *ucCatalog.CreateService,
	list *ucCatalog.ListServices,
	update *ucCatalog.UpdateService,
	remove *ucCatalog.RemoveService,
) *ServiceHandler {
	return &ServiceHandler{create: create, list: list, update: update, remove: remove}
}

type CreateServiceRequest struct {
	Name        string  `json:"name" binding:"required"`
	Price       float64 `json:"price"`
	DurationMin int     `json:"duration_min" binding:"required"`
}

type UpdateServiceRequest struct {
	Name        *string  `json:"name"`
	Price       *float64 `json:"price"`
	DurationMin *int     `json:"duration_min"`
	Available   *bool    `json:"available"`
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	s, err := h.create.Execute(c.Request.Context(), middleware.ProviderID(c), ucCatalog.ServiceInput{
		Name:        req.Name,
		Price:       req.Price,
		DurationMin: req.DurationMin,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.Created(c, dto.Service(s))
}

func (h *ServiceHandler) List(c *gin.Context) {
	services, err := h.list.Execute(c.Request.Context(), middleware.ProviderID(c), false)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.List(c, dto.Services(services))
}

func (h *ServiceHandler) Update(c *gin.Context) {
	serviceID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	s, err := h.update.Execute(c.Request.Context(), middleware.ProviderID(c), serviceID, ucCatalog.UpdateServiceInput{
		Name:        req.Name,
		Price:       req.Price,
		DurationMin: req.DurationMin,
		Available:   req.Available,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, dto.Service(s))
}

func (h *ServiceHandler) Remove(c *gin.Context) {
	serviceID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	if err := h.remove.Execute(c.Request.Context(), middleware.ProviderID(c), serviceID); err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.NoContent(c)
}
