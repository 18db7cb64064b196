package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobly/internal/apperrors"
	"jobly/internal/dtos"
	"jobly/internal/services"
)

type UserHandler struct {
	Users *services.UserService
}

func NewUserHandler(users *services.UserService) *UserHandler {
	return &UserHandler{Users: users}
}

// Login is POST /login: exchanges credentials for a bearer token.
func (h *UserHandler) Login(c *gin.Context) {
	var req dtos.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		renderError(c, apperrors.FromBinding(err))
		return
	}
	token, err := h.Users.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// Register is POST /users. The fresh identity gets a token right away.
func (h *UserHandler) Register(c *gin.Context) {
	var req dtos.UserCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		renderError(c, apperrors.FromBinding(err))
		return
	}
	user, token, err := h.Users.Create(c.Request.Context(), req)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"user": user, "token": token})
}

// List is GET /users.
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.Users.All(c.Request.Context())
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

// Get is GET /users/:username.
func (h *UserHandler) Get(c *gin.Context) {
	user, err := h.Users.Get(c.Request.Context(), c.Param("username"))
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// Update is PATCH /users/:username.
func (h *UserHandler) Update(c *gin.Context) {
	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		renderError(c, apperrors.FromBinding(err))
		return
	}
	user, err := h.Users.Update(c.Request.Context(), c.Param("username"), fields)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// Delete is DELETE /users/:username.
func (h *UserHandler) Delete(c *gin.Context) {
	if err := h.Users.Remove(c.Request.Context(), c.Param("username")); err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}
