// internal/interfaces/http/handlers/auth.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/pkg/auth"
)

// AuthHandler handles the login endpoint for the single static admin
// credential. There is no user store: the credential comes from config and
// a successful login yields a JWT carrying the is_admin flag.
type AuthHandler struct {
	config       *config.Config
	jwtManager   *auth.JWTManager
	passwordHash string
}

// NewAuthHandler creates a new auth handler. The configured admin password
// is hashed once here so requests only ever compare against the hash.
func NewAuthHandler(cfg *config.Config) (*AuthHandler, error) {
	hash, err := auth.HashPassword(cfg.Admin.Password, cfg.Security.BcryptCost)
	if err != nil {
		return nil, err
	}

	return &AuthHandler{
		config:       cfg,
		jwtManager:   auth.NewJWTManager(cfg),
		passwordHash: hash,
	}, nil
}

// LoginRequest represents the login request body
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	if !auth.ConstantTimeEquals(req.Email, h.config.Admin.Email) ||
		!auth.CheckPassword(req.Password, h.passwordHash) {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Invalid credentials",
		})
		return
	}

	token, err := h.jwtManager.GenerateAccessToken(req.Email, true)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to generate token",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"data": gin.H{
			"access_token": token,
			"expires_in":   int(h.config.JWT.AccessTokenExpiry.Seconds()),
			"is_admin":     true,
		},
	})
}
