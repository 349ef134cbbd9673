package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/grocermart/partnersync/internal/server/http/dto"
)

// PartnerHandler manages outbound partner exchange endpoints.
type PartnerHandler struct {
	facade ExchangeFacade
}

// NewPartnerHandler constructs PartnerHandler.
func NewPartnerHandler(facade ExchangeFacade) *PartnerHandler {
	return &PartnerHandler{facade: facade}
}

// SendOrder handles POST /api/partner/orders/:id/send.
func (h *PartnerHandler) SendOrder(c *gin.Context) {
	if err := h.facade.SendOrder(c.Request.Context(), c.Param("id")); err != nil {
		c.Status(statusFromError(err))
		return
	}
	c.Status(http.StatusOK)
}

// ExportSnapshot handles POST /api/partner/export/:entity.
func (h *PartnerHandler) ExportSnapshot(c *gin.Context) {
	if err := h.facade.ExportSnapshot(c.Request.Context(), c.Param("entity")); err != nil {
		c.Status(statusFromError(err))
		return
	}
	c.Status(http.StatusOK)
}

// SyncEntity handles POST /api/partner/sync/:entity/:key.
func (h *PartnerHandler) SyncEntity(c *gin.Context) {
	if err := h.facade.SyncEntity(c.Request.Context(), c.Param("entity"), c.Param("key")); err != nil {
		c.Status(statusFromError(err))
		return
	}
	c.Status(http.StatusOK)
}

// Archive handles POST /api/partner/archive.
func (h *PartnerHandler) Archive(c *gin.Context) {
	var req dto.ArchiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	if err := h.facade.ArchiveImport(c.Request.Context(), req.Entity, req.Path); err != nil {
		c.Status(statusFromError(err))
		return
	}
	c.Status(http.StatusOK)
}
