package delivery

import (
	"errors"
	"net/http"

	authdomain "journal-backend/internal/auth/domain"
	authdto "journal-backend/internal/auth/dto"
	"journal-backend/internal/auth/usecase"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles registration and the session lifecycle endpoints
type AuthHandler struct {
	authUsecase usecase.AuthUsecase
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authUsecase usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
	}
}

// Register creates a new account and returns its initial token triple
// POST /register/
func (h *AuthHandler) Register(c *gin.Context) {
	var req authdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := h.authUsecase.Register(&req)
	if err != nil {
		if errors.Is(err, authdomain.ErrUserAlreadyExists) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "User already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, session)
}

// Login verifies credentials and returns the stored token triple. The
// session is not renewed here; POST /session/ does that.
// POST /login/
func (h *AuthHandler) Login(c *gin.Context) {
	var req authdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := h.authUsecase.Login(&req)
	if err != nil {
		if errors.Is(err, authdomain.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, session)
}

// RenewSession consumes the update token carried in the bearer header and
// responds with a fresh triple
// POST /session/
func (h *AuthHandler) RenewSession(c *gin.Context) {
	token, err := ExtractBearerToken(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	session, err := h.authUsecase.RenewSession(token)
	if err != nil {
		if errors.Is(err, authdomain.ErrInvalidUpdateToken) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid update token"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, session)
}

// Logout tombstones the caller's session; the old tokens stop matching
// immediately
// POST /logout/
func (h *AuthHandler) Logout(c *gin.Context) {
	user := CurrentUser(c)

	if err := h.authUsecase.Logout(user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

// Me returns the authenticated user
// GET /me/
func (h *AuthHandler) Me(c *gin.Context) {
	c.JSON(http.StatusOK, CurrentUser(c))
}
