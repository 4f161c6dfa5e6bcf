package controllers

import (
	"net/http"

	"marketplace/services"
	"marketplace/utils"

	"github.com/gin-gonic/gin"
)

type SaleController struct {
	Sales *services.SaleService
}

func NewSaleController(s *services.SaleService) *SaleController {
	return &SaleController{Sales: s}
}

// GET /api/proveedor/ventas
func (h *SaleController) List(c *gin.Context) {
	records, err := h.Sales.ListForProvider(c.Request.Context(), utils.CurrentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}
