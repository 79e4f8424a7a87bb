// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-car-rental/internal/config"
	"github.com/MKhiriev/go-car-rental/internal/logger"
	"github.com/MKhiriev/go-car-rental/internal/mock"
	"github.com/MKhiriev/go-car-rental/internal/store"
	"github.com/MKhiriev/go-car-rental/internal/utils"
	"github.com/MKhiriev/go-car-rental/models"
)

const (
	testSignKey = "test-sign-key"
	testIssuer  = "test-issuer"
)

// fakeHasher lets tests force hashing failures.
type fakeHasher struct {
	hashFn    func(password string) (string, error)
	compareFn func(hash, password string) error
}

func (f *fakeHasher) Hash(password string) (string, error) {
	if f.hashFn != nil {
		return f.hashFn(password)
	}
	return "hashed:" + password, nil
}

func (f *fakeHasher) Compare(hash, password string) error {
	if f.compareFn != nil {
		return f.compareFn(hash, password)
	}
	if hash != "hashed:"+password {
		return utils.ErrPasswordMismatch
	}
	return nil
}

func testAppConfig() config.App {
	return config.App{
		TokenSignKey: testSignKey,
		TokenIssuer:  testIssuer,
	}
}

func newTestAuthSvc(t *testing.T, hasher PasswordHasher) (*authService, *mock.MockUserRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)

	repo := mock.NewMockUserRepository(ctrl)
	if hasher == nil {
		hasher = &fakeHasher{}
	}

	svc := NewAuthService(repo, hasher, testAppConfig(), logger.Nop()).(*authService)
	return svc, repo
}

// ── RegisterUser ─────────────────────────────────────────────────────────────

func TestAuthService_RegisterUser_Success(t *testing.T) {
	svc, repo := newTestAuthSvc(t, nil)
	ctx := context.Background()

	gomock.InOrder(
		repo.EXPECT().FindUserByUsername(ctx, "alice").Return(models.User{}, store.ErrUserNotFound),
		repo.EXPECT().CreateUser(ctx, models.User{Username: "alice", Password: "hashed:pw"}).
			Return(models.User{UserID: 1, Username: "alice", Password: "hashed:pw"}, nil),
	)

	user, err := svc.RegisterUser(ctx, models.Credentials{Username: "alice", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.UserID)
}

func TestAuthService_RegisterUser_StoresBcryptHash(t *testing.T) {
	svc, repo := newTestAuthSvc(t, utils.NewPasswordHasher(4))
	ctx := context.Background()

	repo.EXPECT().FindUserByUsername(ctx, "alice").Return(models.User{}, store.ErrUserNotFound)
	repo.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) (models.User, error) {
			assert.NotEqual(t, "plain", u.Password, "password must be hashed before storing")
			assert.NoError(t, utils.NewPasswordHasher(4).Compare(u.Password, "plain"))
			u.UserID = 2
			return u, nil
		},
	)

	_, err := svc.RegisterUser(ctx, models.Credentials{Username: "alice", Password: "plain"})
	require.NoError(t, err)
}

func TestAuthService_RegisterUser_UsernameTaken(t *testing.T) {
	svc, repo := newTestAuthSvc(t, nil)
	ctx := context.Background()

	repo.EXPECT().FindUserByUsername(ctx, "alice").Return(models.User{UserID: 1, Username: "alice"}, nil)

	_, err := svc.RegisterUser(ctx, models.Credentials{Username: "alice", Password: "pw"})
	assert.ErrorIs(t, err, ErrUsernameAlreadyExists)
}

func TestAuthService_RegisterUser_UniqueViolationRace(t *testing.T) {
	svc, repo := newTestAuthSvc(t, nil)
	ctx := context.Background()

	repo.EXPECT().FindUserByUsername(ctx, "alice").Return(models.User{}, store.ErrUserNotFound)
	repo.EXPECT().CreateUser(ctx, gomock.Any()).Return(models.User{}, store.ErrUsernameAlreadyExists)

	_, err := svc.RegisterUser(ctx, models.Credentials{Username: "alice", Password: "pw"})
	assert.ErrorIs(t, err, ErrUsernameAlreadyExists)
}

func TestAuthService_RegisterUser_Failures(t *testing.T) {
	dbErr := errors.New("db down")

	t.Run("lookup error", func(t *testing.T) {
		svc, repo := newTestAuthSvc(t, nil)
		repo.EXPECT().FindUserByUsername(gomock.Any(), "alice").Return(models.User{}, dbErr)

		_, err := svc.RegisterUser(context.Background(), models.Credentials{Username: "alice", Password: "pw"})
		assert.ErrorIs(t, err, dbErr)
		assert.NotErrorIs(t, err, ErrUsernameAlreadyExists)
	})

	t.Run("hash error", func(t *testing.T) {
		hashErr := errors.New("hash failed")
		svc, repo := newTestAuthSvc(t, &fakeHasher{hashFn: func(string) (string, error) { return "", hashErr }})
		repo.EXPECT().FindUserByUsername(gomock.Any(), "alice").Return(models.User{}, store.ErrUserNotFound)

		_, err := svc.RegisterUser(context.Background(), models.Credentials{Username: "alice", Password: "pw"})
		assert.ErrorIs(t, err, hashErr)
	})

	t.Run("create error", func(t *testing.T) {
		svc, repo := newTestAuthSvc(t, nil)
		repo.EXPECT().FindUserByUsername(gomock.Any(), "alice").Return(models.User{}, store.ErrUserNotFound)
		repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{}, dbErr)

		_, err := svc.RegisterUser(context.Background(), models.Credentials{Username: "alice", Password: "pw"})
		assert.ErrorIs(t, err, dbErr)
	})
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestAuthService_Login(t *testing.T) {
	stored := models.User{UserID: 3, Username: "alice", Password: "hashed:pw"}

	tests := []struct {
		name      string
		password  string
		findUser  models.User
		findErr   error
		compareFn func(hash, password string) error
		wantErr   error
	}{
		{name: "success", password: "pw", findUser: stored},
		{name: "unknown user", password: "pw", findErr: store.ErrUserNotFound, wantErr: ErrUserDoesNotExist},
		{name: "wrong password", password: "nope", findUser: stored, wantErr: ErrWrongPassword},
		{
			name:      "malformed hash",
			password:  "pw",
			findUser:  stored,
			compareFn: func(string, string) error { return errors.New("bad hash") },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newTestAuthSvc(t, &fakeHasher{compareFn: tt.compareFn})
			repo.EXPECT().FindUserByUsername(gomock.Any(), "alice").Return(tt.findUser, tt.findErr)

			user, err := svc.Login(context.Background(), models.Credentials{Username: "alice", Password: tt.password})

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.compareFn != nil:
				require.Error(t, err)
				assert.NotErrorIs(t, err, ErrWrongPassword)
			default:
				require.NoError(t, err)
				assert.Equal(t, stored, user)
			}
		})
	}
}

// ── Tokens ───────────────────────────────────────────────────────────────────

func TestAuthService_CreateAndParseToken(t *testing.T) {
	svc, _ := newTestAuthSvc(t, nil)
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, models.User{UserID: 42, Username: "alice"})
	require.NoError(t, err)
	require.NotEmpty(t, token.String())

	parsed, err := svc.ParseToken(ctx, token.String())
	require.NoError(t, err)
	assert.Equal(t, int64(42), parsed.UserID)
	assert.Equal(t, "alice", parsed.Username)
}

func TestAuthService_CreateToken_Failure(t *testing.T) {
	svc, _ := newTestAuthSvc(t, nil)
	svc.tokenSignKey = ""

	_, err := svc.CreateToken(context.Background(), models.User{UserID: 1})
	assert.ErrorIs(t, err, ErrTokenCreationFailed)
}

func TestAuthService_ParseToken_Invalid(t *testing.T) {
	svc, _ := newTestAuthSvc(t, nil)
	ctx := context.Background()

	otherIssuer, err := utils.GenerateJWTToken("someone-else", 1, "alice", 0, testSignKey)
	require.NoError(t, err)
	otherKey, err := utils.GenerateJWTToken(testIssuer, 1, "alice", 0, "other-key")
	require.NoError(t, err)
	expired, err := utils.GenerateJWTToken(testIssuer, 1, "alice", time.Nanosecond, testSignKey)
	require.NoError(t, err)
	time.Sleep(1100 * time.Millisecond)

	for name, raw := range map[string]string{
		"garbage":      "not-a-jwt",
		"empty":        "",
		"wrong issuer": otherIssuer.String(),
		"wrong key":    otherKey.String(),
		"expired":      expired.String(),
	} {
		t.Run(name, func(t *testing.T) {
			_, err := svc.ParseToken(ctx, raw)
			assert.ErrorIs(t, err, ErrTokenInvalid)
		})
	}
}
