package commands

import (
	"context"
	"crypto/subtle"

	reqdto "github.com/bothrasports-ops/arena-manager/internal/handler/dto/request"
	"github.com/bothrasports-ops/arena-manager/internal/pkg/config"
	"github.com/bothrasports-ops/arena-manager/internal/pkg/errs"
	"github.com/bothrasports-ops/arena-manager/internal/pkg/jwt"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errs.New("invalid credentials")
	ErrTokenGeneration    = errs.New("token generation failed")
)

// CredentialVerifier decouples the session state machine from how the
// credential pair is checked, so a real identity provider can be substituted
// without touching login.
type CredentialVerifier interface {
	Verify(username, secret string) bool
}

type LoginResult struct {
	Username    string
	AccessToken string
}

type AuthCommands interface {
	Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error)
}

type authCommandsImpl struct {
	verifier   CredentialVerifier
	jwtService *jwt.Service
}

func NewAuthCommands(verifier CredentialVerifier, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		verifier:   verifier,
		jwtService: jwtService,
	}
}

// Login issues no store calls: credential verification is local and a
// failure reports the same generic error regardless of which half of the
// pair was wrong.
func (a *authCommandsImpl) Login(_ context.Context, req reqdto.LoginRequest) (*LoginResult, error) {
	username, password := req.Normalized()

	if !a.verifier.Verify(username, password) {
		return nil, ErrInvalidCredentials
	}

	token, err := a.jwtService.GenerateToken(username)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &LoginResult{
		Username:    username,
		AccessToken: token,
	}, nil
}

// FrontDeskVerifier checks against the single env-configured credential
// pair. A bcrypt hash takes precedence; the plain password fallback uses a
// constant-time compare.
type FrontDeskVerifier struct {
	cfg config.FrontDeskConfig
}

func NewFrontDeskVerifier(cfg config.Config) CredentialVerifier {
	return &FrontDeskVerifier{cfg: cfg.FrontDesk}
}

func (v *FrontDeskVerifier) Verify(username, secret string) bool {
	if subtle.ConstantTimeCompare([]byte(username), []byte(v.cfg.Username)) != 1 {
		return false
	}

	if v.cfg.PasswordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(v.cfg.PasswordHash), []byte(secret)) == nil
	}
	if v.cfg.Password == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(secret), []byte(v.cfg.Password)) == 1
}
