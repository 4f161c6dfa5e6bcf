package controllers

import (
	"marketplace/pkg/resp"
	"marketplace/services"

	"github.com/gin-gonic/gin"
)

type ProductController struct{ Svc *services.ProductService }

func NewProductController(s *services.ProductService) *ProductController {
	return &ProductController{Svc: s}
}

// GET /api/productos
func (h *ProductController) List(c *gin.Context) {
	items, err := h.Svc.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, "ok", items)
}

// GET /api/productos/:id
func (h *ProductController) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	p, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, "ok", p)
}
