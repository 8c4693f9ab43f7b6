package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/smart-parking/console/internal/entity"
	"github.com/smart-parking/console/internal/entity/dto/v1"
	"github.com/smart-parking/console/internal/mocks"
	"github.com/smart-parking/console/internal/usecase/auth"
	"github.com/smart-parking/console/internal/usecase/sqldb"
	"github.com/smart-parking/console/pkg/logger"
)

const testKey = "test-signing-key"

var fixedNow = time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)

func adminFixture(t *testing.T, password string) *entity.Admin {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	return &entity.Admin{
		ID:           "a-1",
		Username:     "admin",
		Email:        "admin@parking.local",
		PasswordHash: string(hash),
	}
}

func TestLogin(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		demoMode bool
		req      dto.LoginRequest
		setup    func(repo *mocks.MockAuthRepository)
		wantRole string
		wantID   string
		err      error
	}{
		{
			name: "valid credentials",
			req:  dto.LoginRequest{Username: "admin", Password: "admin123"},
			setup: func(repo *mocks.MockAuthRepository) {
				repo.EXPECT().GetByUsername(gomock.Any(), "admin").Return(adminFixture(t, "admin123"), nil)
			},
			wantRole: auth.RoleAdmin,
			wantID:   "a-1",
		},
		{
			name: "wrong password",
			req:  dto.LoginRequest{Username: "admin", Password: "nope"},
			setup: func(repo *mocks.MockAuthRepository) {
				repo.EXPECT().GetByUsername(gomock.Any(), "admin").Return(adminFixture(t, "admin123"), nil)
			},
			err: auth.ErrInvalidCredentials,
		},
		{
			name: "unknown user",
			req:  dto.LoginRequest{Username: "ghost", Password: "x"},
			setup: func(repo *mocks.MockAuthRepository) {
				repo.EXPECT().GetByUsername(gomock.Any(), "ghost").Return(nil, nil)
			},
			err: auth.ErrInvalidCredentials,
		},
		{
			name:     "demo mode falls back to demo identity",
			demoMode: true,
			req:      dto.LoginRequest{Username: "visitor", Password: "x"},
			setup: func(repo *mocks.MockAuthRepository) {
				repo.EXPECT().GetByUsername(gomock.Any(), "visitor").Return(nil, nil)
			},
			wantRole: auth.RoleDemo,
			wantID:   "demo",
		},
		{
			name:     "demo mode still lets real admins in",
			demoMode: true,
			req:      dto.LoginRequest{Username: "admin", Password: "admin123"},
			setup: func(repo *mocks.MockAuthRepository) {
				repo.EXPECT().GetByUsername(gomock.Any(), "admin").Return(adminFixture(t, "admin123"), nil)
			},
			wantRole: auth.RoleAdmin,
			wantID:   "a-1",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctl := gomock.NewController(t)
			repo := mocks.NewMockAuthRepository(ctl)
			tc.setup(repo)

			uc := auth.New(repo, testKey, 24*time.Hour, logger.New("error"),
				auth.WithDemoMode(tc.demoMode),
				auth.WithClock(func() time.Time { return fixedNow }),
			)

			res, err := uc.Login(context.Background(), tc.req)
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)
				assert.Empty(t, res.Token)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.wantRole, res.User.Role)
			assert.Equal(t, tc.wantID, res.User.ID)
			assert.Equal(t, tc.req.Username, res.User.Username)

			claims, err := uc.Verify(res.Token)
			require.NoError(t, err)
			assert.Equal(t, tc.wantID, claims.Subject)
			assert.Equal(t, tc.wantRole, claims.Role)
			assert.Equal(t, fixedNow.Add(24*time.Hour), claims.ExpiresAt.Time)
		})
	}
}

func TestLogin_DatabaseError(t *testing.T) {
	t.Parallel()

	ctl := gomock.NewController(t)
	repo := mocks.NewMockAuthRepository(ctl)
	repo.EXPECT().GetByUsername(gomock.Any(), "admin").Return(nil, errors.New("disk I/O error"))

	// a broken store is never a reason to hand out a demo token
	uc := auth.New(repo, testKey, time.Hour, logger.New("error"), auth.WithDemoMode(true))

	_, err := uc.Login(context.Background(), dto.LoginRequest{Username: "admin", Password: "x"})

	var dbErr sqldb.DatabaseError
	require.True(t, errors.As(err, &dbErr))
	assert.NotErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestVerify(t *testing.T) {
	t.Parallel()

	now := fixedNow
	clock := func() time.Time { return now }

	ctl := gomock.NewController(t)
	repo := mocks.NewMockAuthRepository(ctl)
	repo.EXPECT().GetByUsername(gomock.Any(), "admin").Return(adminFixture(t, "pw"), nil)

	uc := auth.New(repo, testKey, 24*time.Hour, logger.New("error"), auth.WithClock(clock))

	res, err := uc.Login(context.Background(), dto.LoginRequest{Username: "admin", Password: "pw"})
	require.NoError(t, err)

	t.Run("valid within expiry", func(t *testing.T) {
		t.Parallel()

		verifier := auth.New(nil, testKey, 24*time.Hour, logger.New("error"),
			auth.WithClock(func() time.Time { return now.Add(23 * time.Hour) }))

		_, err := verifier.Verify(res.Token)
		assert.NoError(t, err)
	})

	t.Run("expired after 24h", func(t *testing.T) {
		t.Parallel()

		verifier := auth.New(nil, testKey, 24*time.Hour, logger.New("error"),
			auth.WithClock(func() time.Time { return now.Add(25 * time.Hour) }))

		_, err := verifier.Verify(res.Token)
		assert.ErrorIs(t, err, auth.ErrExpiredToken)
	})

	t.Run("wrong key", func(t *testing.T) {
		t.Parallel()

		verifier := auth.New(nil, "other-key", 24*time.Hour, logger.New("error"), auth.WithClock(clock))

		_, err := verifier.Verify(res.Token)
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		t.Parallel()

		_, err := uc.Verify("not-a-jwt")
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("none algorithm rejected", func(t *testing.T) {
		t.Parallel()

		unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, &auth.Claims{
			Role: auth.RoleAdmin,
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			},
		})

		token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = uc.Verify(token)
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("missing expiry rejected", func(t *testing.T) {
		t.Parallel()

		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &auth.Claims{Role: auth.RoleAdmin}).SignedString([]byte(testKey))
		require.NoError(t, err)

		_, err = uc.Verify(token)
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})
}

func TestHashPassword(t *testing.T) {
	t.Parallel()

	hash, err := auth.HashPassword("s3cret")
	require.NoError(t, err)

	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("s3cret")))
	assert.Error(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("other")))
}
