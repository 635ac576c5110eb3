//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/bothrasports-ops/arena-manager/internal/handler/api"
	resdto "github.com/bothrasports-ops/arena-manager/internal/handler/dto/response"
	"github.com/bothrasports-ops/arena-manager/internal/pkg/clock"
	"github.com/bothrasports-ops/arena-manager/internal/pkg/config"
	"github.com/bothrasports-ops/arena-manager/internal/pkg/cookie"
	"github.com/bothrasports-ops/arena-manager/internal/pkg/jwt"
	"github.com/bothrasports-ops/arena-manager/internal/usecase/commands"
	"github.com/bothrasports-ops/arena-manager/tests/common/helper"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router  *gin.Engine
	handler *api.AuthHandler
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	cfg := config.NewTestConfig()
	jwtService := jwt.NewService(cfg.JWT.Secret, time.Hour, clock.NewRealClock())
	verifier := commands.NewFrontDeskVerifier(cfg)
	authCommands := commands.NewAuthCommands(verifier, jwtService)
	s.handler = api.NewAuthHandler(authCommands, jwtService, cfg)

	s.router.POST("/auth/login", s.handler.Login)
	s.router.POST("/auth/logout", s.handler.Logout)
	s.router.GET("/auth/me", func(c *gin.Context) {
		if c.GetHeader("Authorization") != "" {
			c.Set("session_user", "admin")
		}
		s.handler.Me(c)
	})
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/auth/login"
	cfg := config.NewTestConfig()

	s.Run("success: returns 200 OK and sets the session cookie", func() {
		body := map[string]any{
			"username": cfg.FrontDesk.Username,
			"password": cfg.FrontDesk.Password,
		}
		rec := helper.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")

		var response resdto.LoginResponse
		helper.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(cfg.FrontDesk.Username, response.User.Name)
		s.NotEmpty(response.AccessToken)

		var sessionCookie *http.Cookie
		for _, ck := range rec.Result().Cookies() {
			if ck.Name == cookie.SessionTokenCookieName {
				sessionCookie = ck
			}
		}
		s.Require().NotNil(sessionCookie)
		s.Equal(response.AccessToken, sessionCookie.Value)
	})

	s.Run("error: 401 with the same message for either wrong half", func() {
		cases := []map[string]any{
			{"username": cfg.FrontDesk.Username, "password": "wrong"},
			{"username": "intruder", "password": cfg.FrontDesk.Password},
		}
		for _, body := range cases {
			rec := helper.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
			helper.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid username or password")
		}
	})

	s.Run("error: 400 Bad Request on missing fields", func() {
		cases := []map[string]any{
			{"username": cfg.FrontDesk.Username},
			{"password": cfg.FrontDesk.Password},
			{},
		}
		for _, body := range cases {
			rec := helper.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
			helper.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
		}
	})
}

func (s *AuthHandlerTestSuite) TestLogout() {
	rec := helper.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/logout", nil, "")
	s.Equal(http.StatusNoContent, rec.Code)

	var cleared *http.Cookie
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == cookie.SessionTokenCookieName {
			cleared = ck
		}
	}
	s.Require().NotNil(cleared)
	s.Empty(cleared.Value)
}

func (s *AuthHandlerTestSuite) TestMe() {
	s.Run("success: echoes the session user", func() {
		rec := helper.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/me", nil, "any-token")

		var response resdto.SessionUser
		helper.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("admin", response.Name)
	})

	s.Run("error: 401 without a session", func() {
		rec := helper.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/me", nil, "")
		helper.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})
}
