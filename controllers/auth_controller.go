package controllers

import (
	"net/http"

	"marketplace/pkg/resp"
	"marketplace/services"
	"marketplace/utils"

	"github.com/gin-gonic/gin"
)

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6,max=72"`
	Nombre   string `json:"nombre" binding:"required,notblank"`
	Apellido string `json:"apellido" binding:"required,notblank"`
	Telefono string `json:"telefono" binding:"omitempty,max=20"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdateProfileRequest struct {
	Nombre   string `json:"nombre" binding:"required,notblank"`
	Apellido string `json:"apellido" binding:"required,notblank"`
	Telefono string `json:"telefono" binding:"omitempty,max=20"`
}

type UserController struct {
	Auth    *services.AuthService
	Profile *services.ProfileService
}

func NewUserController(auth *services.AuthService, profile *services.ProfileService) *UserController {
	return &UserController{Auth: auth, Profile: profile}
}

// POST /api/usuarios/registro
func (h *UserController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, bindErrorMessage(err))
		return
	}

	user, err := h.Auth.Register(c.Request.Context(), services.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		Nombre:   req.Nombre,
		Apellido: req.Apellido,
		Telefono: req.Telefono,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	resp.Created(c, "user registered", user)
}

// GET /api/usuarios/verificar-email?email=
func (h *UserController) CheckEmail(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		resp.BadRequest(c, "email is required")
		return
	}
	exists, err := h.Auth.EmailExists(c.Request.Context(), email)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"existe": exists, "disponible": !exists})
}

// POST /api/auth/login
func (h *UserController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, bindErrorMessage(err))
		return
	}
	token, user, err := h.Auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, "login successful", gin.H{"token": token, "tokenType": "Bearer", "usuario": user})
}

// GET /api/usuarios/perfil
func (h *UserController) GetProfile(c *gin.Context) {
	user, err := h.Profile.GetProfile(c.Request.Context(), utils.CurrentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, services.ToUserResponse(user))
}

// PUT /api/usuarios/perfil
func (h *UserController) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, bindErrorMessage(err))
		return
	}
	user, err := h.Profile.UpdateProfile(c.Request.Context(), utils.CurrentUserID(c), services.ProfileUpdate{
		Nombre:   req.Nombre,
		Apellido: req.Apellido,
		Telefono: req.Telefono,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, "profile updated", services.ToUserResponse(user))
}
