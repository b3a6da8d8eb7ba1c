package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"femaqua-be/internal/metrics"
	"femaqua-be/internal/middleware"
	"femaqua-be/internal/models"
	"femaqua-be/internal/service"
)

type AuthController struct {
	authService service.AuthService
	metrics     *metrics.Metrics
}

func NewAuthController(authService service.AuthService, m *metrics.Metrics) *AuthController {
	return &AuthController{
		authService: authService,
		metrics:     m,
	}
}

// Register handles POST /v1/register
func (ac *AuthController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := ac.authService.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	ac.metrics.AuthEvent("register", err)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.NewUserResponse(user))
}

// Login handles POST /v1/login
func (ac *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	token, err := ac.authService.Login(c.Request.Context(), req.Email, req.Password)
	ac.metrics.AuthEvent("login", err)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.LoginResponse{Token: token})
}

// Logout handles POST /v1/logout. Only the presented token is revoked.
func (ac *AuthController) Logout(c *gin.Context) {
	err := ac.authService.Logout(c.Request.Context(), middleware.BearerToken(c))
	ac.metrics.AuthEvent("logout", err)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusOK)
}
