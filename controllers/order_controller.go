package controllers

import (
	"net/http"

	"marketplace/pkg/resp"
	"marketplace/services"
	"marketplace/utils"

	"github.com/gin-gonic/gin"
)

type OrderController struct{ Svc *services.OrderService }

func NewOrderController(s *services.OrderService) *OrderController { return &OrderController{Svc: s} }

type CheckoutRequest struct {
	DireccionEntrega string `json:"direccionEntrega" binding:"required,notblank"`
	TelefonoContacto string `json:"telefonoContacto" binding:"required,notblank,max=20"`
	MetodoPago       string `json:"metodoPago" binding:"omitempty,max=30"`
}

// POST /api/pedidos
func (oc *OrderController) Create(c *gin.Context) {
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, bindErrorMessage(err))
		return
	}
	order, err := oc.Svc.Checkout(c.Request.Context(), utils.CurrentUserID(c), services.CheckoutInput{
		DireccionEntrega: req.DireccionEntrega,
		TelefonoContacto: req.TelefonoContacto,
		MetodoPago:       req.MetodoPago,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	resp.Created(c, "order created", order)
}

// GET /api/pedidos/mis-pedidos
func (oc *OrderController) ListMine(c *gin.Context) {
	orders, err := oc.Svc.ListForBuyer(c.Request.Context(), utils.CurrentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}
