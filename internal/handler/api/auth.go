package api

import (
	"errors"
	"net/http"

	reqdto "github.com/bothrasports-ops/arena-manager/internal/handler/dto/request"
	resdto "github.com/bothrasports-ops/arena-manager/internal/handler/dto/response"
	"github.com/bothrasports-ops/arena-manager/internal/handler/httperr"
	"github.com/bothrasports-ops/arena-manager/internal/handler/middleware"
	"github.com/bothrasports-ops/arena-manager/internal/pkg/config"
	"github.com/bothrasports-ops/arena-manager/internal/pkg/cookie"
	"github.com/bothrasports-ops/arena-manager/internal/pkg/jwt"
	"github.com/bothrasports-ops/arena-manager/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authCommands commands.AuthCommands
	jwtService   *jwt.Service
	cookieCfg    config.CookieConfig
}

func NewAuthHandler(authCommands commands.AuthCommands, jwtService *jwt.Service, cfg config.Config) *AuthHandler {
	return &AuthHandler{
		authCommands: authCommands,
		jwtService:   jwtService,
		cookieCfg:    cfg.Cookie,
	}
}

// @Summary Front desk login
// @Description Login with the front desk username and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.authCommands.Login(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidCredentials):
			// Same message for a wrong username and a wrong password.
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid username or password", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	cookie.SetSessionCookie(c, h.cookieCfg, result.AccessToken, h.jwtService.TokenDuration())

	response := resdto.LoginResponse{
		AccessToken: result.AccessToken,
		User:        resdto.SessionUser{Name: result.Username},
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Front desk logout
// @Description Clear the current session
// @Tags auth
// @Security BearerAuth
// @Success 204 "No Content"
// @Failure 401 {object} httperr.Response
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	// The token itself stays valid until expiry; logout just drops the cookie.
	cookie.ClearSessionCookie(c, h.cookieCfg)
	c.Status(http.StatusNoContent)
}

// @Summary Get current session
// @Description Get the authenticated front desk user
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.SessionUser
// @Failure 401 {object} httperr.Response
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	username, ok := middleware.GetSessionUser(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("no session user in context"), "Not authenticated", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.SessionUser{Name: username})
}
