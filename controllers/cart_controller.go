package controllers

import (
	"strconv"

	"marketplace/pkg/resp"
	"marketplace/services"
	"marketplace/utils"

	"github.com/gin-gonic/gin"
)

type CartController struct{ Svc *services.CartService }

func NewCartController(s *services.CartService) *CartController { return &CartController{Svc: s} }

type AddToCartRequest struct {
	ProductoID uint `json:"productoId" binding:"required"`
	Cantidad   int  `json:"cantidad" binding:"required,min=1,max=1000"`
}

type UpdateQtyRequest struct {
	Cantidad *int `json:"cantidad" binding:"required,max=1000"`
}

// GET /api/carrito
func (h *CartController) Get(c *gin.Context) {
	cart, err := h.Svc.Get(c.Request.Context(), utils.CurrentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, "ok", cart)
}

// POST /api/carrito/items
func (h *CartController) Add(c *gin.Context) {
	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, bindErrorMessage(err))
		return
	}
	uid := utils.CurrentUserID(c)
	if err := h.Svc.AddItem(c.Request.Context(), uid, req.ProductoID, req.Cantidad); err != nil {
		respondError(c, err)
		return
	}
	cart, err := h.Svc.Get(c.Request.Context(), uid)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.Created(c, "item added", cart)
}

// PATCH /api/carrito/items/:id
func (h *CartController) UpdateQty(c *gin.Context) {
	itemID, ok := pathID(c)
	if !ok {
		return
	}
	var req UpdateQtyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, bindErrorMessage(err))
		return
	}
	if err := h.Svc.UpdateQty(c.Request.Context(), utils.CurrentUserID(c), itemID, *req.Cantidad); err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, "cart updated", nil)
}

// DELETE /api/carrito/items/:id
func (h *CartController) RemoveItem(c *gin.Context) {
	itemID, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.Svc.RemoveItem(c.Request.Context(), utils.CurrentUserID(c), itemID); err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, "item removed", nil)
}

// DELETE /api/carrito
func (h *CartController) Clear(c *gin.Context) {
	if err := h.Svc.Clear(c.Request.Context(), utils.CurrentUserID(c)); err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, "cart cleared", nil)
}

// pathID parses :id and answers 400 itself when it is not a positive integer.
func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		resp.BadRequest(c, "invalid id")
		return 0, false
	}
	return uint(id), true
}
