// Package auth checks admin credentials and issues and verifies the bearer
// tokens that guard the gateway API.
package auth

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/smart-parking/console/internal/entity/dto/v1"
	"github.com/smart-parking/console/internal/usecase/sqldb"
	"github.com/smart-parking/console/pkg/consoleerrors"
	"github.com/smart-parking/console/pkg/logger"
)

const (
	RoleAdmin = "admin"
	RoleDemo  = "demo"

	demoAdminID = "demo"
	issuer      = "parking-gateway"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrExpiredToken       = errors.New("token expired")

	ErrAuthUseCase = consoleerrors.CreateConsoleError("AuthUseCase")
	ErrDatabase    = sqldb.DatabaseError{Console: ErrAuthUseCase}
)

// Claims -.
type Claims struct {
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// UseCase -.
type UseCase struct {
	repo       Repository
	log        logger.Interface
	key        []byte
	expiration time.Duration
	demoMode   bool
	now        func() time.Time
}

// Option -.
type Option func(*UseCase)

// WithDemoMode lets a failed credential check log in as a local demo identity.
func WithDemoMode(enabled bool) Option {
	return func(uc *UseCase) {
		uc.demoMode = enabled
	}
}

// WithClock replaces time.Now for token timestamps and expiry checks.
func WithClock(now func() time.Time) Option {
	return func(uc *UseCase) {
		uc.now = now
	}
}

// New -.
func New(r Repository, jwtKey string, expiration time.Duration, log logger.Interface, opts ...Option) *UseCase {
	uc := &UseCase{
		repo:       r,
		log:        log,
		key:        []byte(jwtKey),
		expiration: expiration,
		now:        time.Now,
	}

	for _, opt := range opts {
		opt(uc)
	}

	return uc
}

// Login checks the credentials and returns a signed token with the profile.
func (uc *UseCase) Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error) {
	admin, err := uc.repo.GetByUsername(ctx, req.Username)
	if err != nil {
		return dto.LoginResponse{}, ErrDatabase.Wrap("Login", "uc.repo.GetByUsername", err)
	}

	if admin == nil || bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)) != nil {
		if !uc.demoMode {
			return dto.LoginResponse{}, ErrInvalidCredentials
		}

		uc.log.Warn("usecase - auth - Login: demo mode login for %q", req.Username)

		return uc.issue(dto.AdminProfile{
			ID:       demoAdminID,
			Username: req.Username,
			Role:     RoleDemo,
		})
	}

	return uc.issue(dto.AdminProfile{
		ID:       admin.ID,
		Username: admin.Username,
		Email:    admin.Email,
		Role:     RoleAdmin,
	})
}

func (uc *UseCase) issue(profile dto.AdminProfile) (dto.LoginResponse, error) {
	now := uc.now()

	claims := &Claims{
		Username: profile.Username,
		Email:    profile.Email,
		Role:     profile.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   profile.ID,
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(uc.expiration)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(uc.key)
	if err != nil {
		return dto.LoginResponse{}, ErrAuthUseCase.Wrap("issue", "token.SignedString", err)
	}

	return dto.LoginResponse{Token: token, User: profile}, nil
}

// Verify parses and validates a bearer token.
func (uc *UseCase) Verify(token string) (*Claims, error) {
	claims := &Claims{}

	parsed, err := jwt.ParseWithClaims(token, claims, func(_ *jwt.Token) (interface{}, error) {
		return uc.key, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(uc.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}

		return nil, ErrInvalidToken
	}

	if !parsed.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// HashPassword returns the bcrypt hash stored for an admin.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	return string(hash), nil
}
