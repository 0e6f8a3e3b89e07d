package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/braider-booking/internal/domain/catalog"
	"github.com/BruksfildServices01/braider-booking/internal/dto"
	"github.com/BruksfildServices01/braider-booking/internal/httperr"
	"github.com/BruksfildServices01/braider-booking/internal/httpresp"
	ucCatalog "github.com/BruksfildServices01/braider-booking/internal/usecase/catalog"
)

// AdminHandler cobre a revisão de providers pela plataforma.
type AdminHandler struct {
	register   *ucCatalog.RegisterProvider
	review     *ucCatalog.ReviewProvider
	deactivate *ucCatalog.DeactivateProvider
}

func NewAdminHandler(
	register *ucCatalog.RegisterProvider,
	review *ucCatalog.ReviewProvider,
	deactivate *ucCatalog.DeactivateProvider,
) *AdminHandler {
	return &AdminHandler{register: register, review: review, deactivate: deactivate}
}

type RegisterProviderRequest struct {
	Name     string `json:"name" binding:"required"`
	Bio      string `json:"bio"`
	Location string `json:"location"`
}

type ReviewRequest struct {
	Decision string `json:"decision" binding:"required"`
}

func (h *AdminHandler) Register(c *gin.Context) {
	var req RegisterProviderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	p, err := h.register.Execute(c.Request.Context(), ucCatalog.RegisterProviderInput{
		Name:     req.Name,
		Bio:      req.Bio,
		Location: req.Location,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.Created(c, dto.Provider(p))
}

func (h *AdminHandler) Review(c *gin.Context) {
	providerID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	var req ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	p, err := h.review.Execute(c.Request.Context(), providerID, domain.Decision(req.Decision))
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, dto.Provider(p))
}

func (h *AdminHandler) Deactivate(c *gin.Context) {
	providerID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	p, err := h.deactivate.Execute(c.Request.Context(), providerID)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, dto.Provider(p))
}
