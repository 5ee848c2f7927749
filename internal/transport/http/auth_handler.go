package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/avick-dev/bizmarket-service/internal/app/user/usecases/login_user"
	"github.com/avick-dev/bizmarket-service/internal/app/user/usecases/register_user"
)

// AuthHandler serves registration and login.
type AuthHandler struct {
	register *register_user.Interactor
	login    *login_user.Interactor
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(register *register_user.Interactor, login *login_user.Interactor) *AuthHandler {
	return &AuthHandler{
		register: register,
		login:    login,
	}
}

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Phone    string `json:"phone"`
	Role     string `json:"role" binding:"required"`
	Location string `json:"location"`
}

// Register handles POST /api/v1/auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, err := h.register.Execute(c.Request.Context(), &register_user.Request{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
		Role:     req.Role,
		Location: req.Location,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user_id": userID})
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login handles POST /api/v1/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.login.Execute(c.Request.Context(), &login_user.Request{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":   result.Token,
		"user_id": result.UserID,
		"name":    result.Name,
		"email":   result.Email,
		"role":    result.Role,
	})
}
