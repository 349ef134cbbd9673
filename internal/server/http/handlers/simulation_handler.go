package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/grocermart/partnersync/internal/domain/model"
	"github.com/grocermart/partnersync/internal/server/http/dto"
)

// SimulationHandler manages fulfillment simulation endpoints.
type SimulationHandler struct {
	facade SimulationFacade
}

// NewSimulationHandler constructs SimulationHandler.
func NewSimulationHandler(facade SimulationFacade) *SimulationHandler {
	return &SimulationHandler{facade: facade}
}

// Simulate handles POST /api/orders/:id/simulate.
func (h *SimulationHandler) Simulate(c *gin.Context) {
	simulated, err := h.facade.Simulate(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Status(statusFromError(err))
		return
	}
	c.JSON(http.StatusCreated, toSimulatedOrderResponse(simulated))
}

// Get handles GET /api/simulations/:id.
func (h *SimulationHandler) Get(c *gin.Context) {
	simulated, err := h.facade.Simulation(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Status(statusFromError(err))
		return
	}
	c.JSON(http.StatusOK, toSimulatedOrderResponse(simulated))
}

// Cleanup handles DELETE /api/simulations/:id. Deleting an expired or
// unknown simulation succeeds.
func (h *SimulationHandler) Cleanup(c *gin.Context) {
	if err := h.facade.CleanupSimulation(c.Request.Context(), c.Param("id")); err != nil {
		c.Status(statusFromError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// CleanupAll handles DELETE /api/simulations.
func (h *SimulationHandler) CleanupAll(c *gin.Context) {
	if err := h.facade.CleanupSimulations(c.Request.Context()); err != nil {
		c.Status(statusFromError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func toSimulatedOrderResponse(order *model.SimulatedOrder) dto.SimulatedOrderResponse {
	items := make([]dto.SimulatedItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, dto.SimulatedItemResponse{
			Position:  item.Position,
			EAN:       item.EAN,
			Ref:       item.Ref,
			Title:     item.Title,
			Quantity:  item.Quantity,
			BasePrice: item.BasePrice,
			TaxRate:   item.TaxRate,
		})
	}
	return dto.SimulatedOrderResponse{
		ID:            order.ID,
		SourceOrderID: order.SourceOrderID,
		UserEmail:     order.UserEmail,
		StoreCode:     order.StoreCode,
		Subtotal:      order.Subtotal,
		TaxTotal:      order.TaxTotal,
		FinalTotal:    order.FinalTotal,
		Status:        string(order.Status),
		CreatedAt:     order.CreatedAt,
		Items:         items,
	}
}
