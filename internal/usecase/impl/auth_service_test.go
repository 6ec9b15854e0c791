package impl

import (
	"context"
	"net/http"
	"testing"
	"time"

	"portfolio/internal/domain/entity"
	domainerrors "portfolio/internal/domain/errors"
	"portfolio/internal/domain/repository"
	"portfolio/internal/domain/service"
	mockRepo "portfolio/internal/mocks/repository"
	"portfolio/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const txFuncType = "func(repository.RepositoryFactory) error"

func newTestUser(verified bool) *entity.User {
	return &entity.User{
		ID:           uuid.New(),
		FirstName:    "Ana",
		SecondName:   "M.",
		FirstSurname: "Lopez",
		Email:        "ana@x.com",
		Phone:        "555",
		Photo:        "photo.png",
		PasswordHash: "hashed",
		IsVerified:   verified,
	}
}

func newRegisterInput() *usecase.RegisterInput {
	return &usecase.RegisterInput{
		FirstName:    "Ana",
		SecondName:   "M.",
		FirstSurname: "Lopez",
		Email:        "Ana@X.com",
		Phone:        "555",
		Password:     "Secret123!",
		Photo:        "photo.png",
	}
}

// expectTx runs the transaction body against a factory configured by setup and returns its error.
func (f authServiceFixtures) expectTx(t *testing.T, setup func(factory *mockRepo.MockRepositoryFactory)) {
	t.Helper()

	f.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType(txFuncType)).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			setup(factory)

			return fn(factory)
		})
}

func appErrorCode(t *testing.T, err error) string {
	t.Helper()

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr), "expected an AppError, got %v", err)

	return appErr.ErrorCode()
}

func TestAuthService_Register_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	input := newRegisterInput()

	fx.userRepo.EXPECT().
		FindByNameAndEmail(ctx, "Ana", "Lopez", "ana@x.com").
		Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash("Secret123!").Return("hashed", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			assert.Equal(t, "ana@x.com", user.Email)
			assert.Equal(t, "hashed", user.PasswordHash)
			assert.False(t, user.IsVerified)
			user.ID = uuid.New()
		}).
		Return(nil)
	fx.tokenService.EXPECT().GenerateVerificationToken(mock.Anything).Return("verify-token", nil)
	fx.mailer.EXPECT().
		SendVerification(ctx, mock.Anything, "https://api.test/auth/verify/ana@x.com?token=verify-token").
		Return(nil)

	result, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, result.Status)
	assert.Equal(t, "Account successfully created for Ana Lopez", result.Message)
	assert.Equal(t, &entity.UserSummary{Name: "Ana", LastName: "Lopez", Photo: "photo.png"}, result.User)
	assert.Empty(t, result.Token)
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByNameAndEmail(ctx, "Ana", "Lopez", "ana@x.com").
		Return(newTestUser(false), nil)

	result, err := fx.service.Register(ctx, newRegisterInput())

	require.Error(t, err)
	assert.Nil(t, result)
	assert.Equal(t, "USER_ALREADY_EXISTS", appErrorCode(t, err))

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
	assert.Equal(t, "The entered email (Ana@X.com) already has an associated account with the name Ana Lopez", appErr.Message())
}

func TestAuthService_Register_StoreFailureIsLogged(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByNameAndEmail(ctx, "Ana", "Lopez", "ana@x.com").
		Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash("Secret123!").Return("hashed", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.Anything).
		Return(domainerrors.NewDatabaseExecuteError(errors.New("connection reset"), "failed to create user"))
	fx.errorLogger.EXPECT().
		LogError(ctx, "Error in the registration service", mock.Anything, "back").
		Return()

	result, err := fx.service.Register(ctx, newRegisterInput())

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.Is(err, domainerrors.ErrUserCreationFailed))
}

func TestAuthService_Register_EmailTakenByAnotherName(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByNameAndEmail(ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash(mock.Anything).Return("hashed", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.Anything).
		Return(domainerrors.ErrUserAlreadyExists.WrapMessage("email already exists"))

	_, err := fx.service.Register(ctx, newRegisterInput())

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestAuthService_Register_MailFailureKeepsAccount(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByNameAndEmail(ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash(mock.Anything).Return("hashed", nil)
	fx.userRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	fx.tokenService.EXPECT().GenerateVerificationToken(mock.Anything).Return("verify-token", nil)
	fx.mailer.EXPECT().SendVerification(ctx, mock.Anything, mock.Anything).Return(errors.New("smtp down"))
	fx.errorLogger.EXPECT().
		LogError(ctx, "Error sending the verification email", "smtp down", "back").
		Return()

	result, err := fx.service.Register(ctx, newRegisterInput())

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, result.Status)
}

func TestAuthService_VerifyEmail(t *testing.T) {
	user := newTestUser(false)
	validClaims := &service.Claims{UserID: user.ID, Email: user.Email, Type: service.TokenKindVerify}

	tests := []struct {
		name  string
		email string
		setup func(fx authServiceFixtures)
		want  string
	}{
		{
			name:  "invalid token",
			email: user.Email,
			setup: func(fx authServiceFixtures) {
				fx.tokenService.EXPECT().ValidateToken("tok", service.TokenKindVerify).Return(nil, service.ErrTokenExpired)
			},
			want: "https://web.test/notification?status=error&reason=invalid_token",
		},
		{
			name:  "email mismatch",
			email: "other@x.com",
			setup: func(fx authServiceFixtures) {
				fx.tokenService.EXPECT().ValidateToken("tok", service.TokenKindVerify).Return(validClaims, nil)
			},
			want: "https://web.test/notification?status=error&reason=email_mismatch",
		},
		{
			name:  "unknown user",
			email: user.Email,
			setup: func(fx authServiceFixtures) {
				fx.tokenService.EXPECT().ValidateToken("tok", service.TokenKindVerify).Return(validClaims, nil)
				fx.userRepo.EXPECT().FindByEmail(mock.Anything, user.Email).Return(nil, repository.ErrUserNotFound)
			},
			want: "https://web.test/notification?status=error&reason=user_not_found",
		},
		{
			name:  "already verified",
			email: user.Email,
			setup: func(fx authServiceFixtures) {
				fx.tokenService.EXPECT().ValidateToken("tok", service.TokenKindVerify).Return(validClaims, nil)
				fx.userRepo.EXPECT().FindByEmail(mock.Anything, user.Email).Return(newTestUser(true), nil)
			},
			want: "https://web.test/notification?status=warning&reason=already_verified",
		},
		{
			name:  "verifies account",
			email: "ANA@x.com",
			setup: func(fx authServiceFixtures) {
				fx.tokenService.EXPECT().ValidateToken("tok", service.TokenKindVerify).Return(validClaims, nil)
				fx.userRepo.EXPECT().FindByEmail(mock.Anything, user.Email).Return(user, nil)
				fx.userRepo.EXPECT().MarkVerified(mock.Anything, user.ID).Return(nil)
			},
			want: "https://web.test/login?verified=true",
		},
		{
			name:  "store failure",
			email: user.Email,
			setup: func(fx authServiceFixtures) {
				fx.tokenService.EXPECT().ValidateToken("tok", service.TokenKindVerify).Return(validClaims, nil)
				fx.userRepo.EXPECT().FindByEmail(mock.Anything, user.Email).Return(user, nil)
				fx.userRepo.EXPECT().MarkVerified(mock.Anything, user.ID).Return(errors.New("db down"))
				fx.errorLogger.EXPECT().LogError(mock.Anything, "Error in the email verification service", "db down", "back").Return()
			},
			want: "https://web.test/notification?status=error&reason=verification_failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAuthService(t)
			tt.setup(fx)

			assert.Equal(t, tt.want, fx.service.VerifyEmail(context.Background(), tt.email, "tok"))
		})
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	user := newTestUser(true)
	expiresAt := time.Now().Add(24 * time.Hour)

	fx.userRepo.EXPECT().FindByEmail(ctx, "ana@x.com").Return(user, nil)
	fx.hasher.EXPECT().Check("Secret123!", "hashed").Return(true)
	fx.tokenService.EXPECT().GenerateAccessToken(user).Return("access-token", nil)
	fx.tokenService.EXPECT().GenerateRefreshToken(user).Return(&service.IssuedRefreshToken{
		Token:     "refresh-token",
		Hash:      "refresh-hash",
		ExpiresAt: expiresAt,
	}, nil)
	fx.refreshTokenRepo.EXPECT().
		CreateRefreshToken(ctx, mock.AnythingOfType("*entity.RefreshToken")).
		Run(func(_ context.Context, token *entity.RefreshToken) {
			assert.Equal(t, user.ID, token.UserID)
			assert.Equal(t, "refresh-hash", token.TokenHash)
			assert.Equal(t, expiresAt, token.ExpiresAt)
		}).
		Return(nil)

	result, err := fx.service.Login(ctx, &usecase.LoginInput{Email: " Ana@x.com", Password: "Secret123!"})

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, result.Status)
	assert.Equal(t, "access-token", result.Token)
	assert.Equal(t, "refresh-token", result.RefreshToken)
	assert.Equal(t, expiresAt, result.RefreshExpiresAt)
	assert.Equal(t, "Ana", result.User.Name)
}

func TestAuthService_Login_Failures(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(fx authServiceFixtures)
		wantCode string
		wantHTTP int
	}{
		{
			name: "unknown user",
			setup: func(fx authServiceFixtures) {
				fx.userRepo.EXPECT().FindByEmail(mock.Anything, "ana@x.com").Return(nil, repository.ErrUserNotFound)
			},
			wantCode: "USER_NOT_FOUND",
			wantHTTP: http.StatusNotFound,
		},
		{
			name: "unverified",
			setup: func(fx authServiceFixtures) {
				fx.userRepo.EXPECT().FindByEmail(mock.Anything, "ana@x.com").Return(newTestUser(false), nil)
			},
			wantCode: "EMAIL_NOT_VERIFIED",
			wantHTTP: http.StatusUnauthorized,
		},
		{
			name: "wrong password",
			setup: func(fx authServiceFixtures) {
				fx.userRepo.EXPECT().FindByEmail(mock.Anything, "ana@x.com").Return(newTestUser(true), nil)
				fx.hasher.EXPECT().Check("Secret123!", "hashed").Return(false)
			},
			wantCode: "PASSWORD_MISMATCH",
			wantHTTP: http.StatusBadRequest,
		},
		{
			name: "store failure",
			setup: func(fx authServiceFixtures) {
				fx.userRepo.EXPECT().FindByEmail(mock.Anything, "ana@x.com").Return(nil, errors.New("db down"))
				fx.errorLogger.EXPECT().LogError(mock.Anything, "Error in the login service", "db down", "back").Return()
			},
			wantCode: "LOGIN_FAILED",
			wantHTTP: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAuthService(t)
			tt.setup(fx)

			result, err := fx.service.Login(context.Background(), &usecase.LoginInput{Email: "ana@x.com", Password: "Secret123!"})

			require.Error(t, err)
			assert.Nil(t, result)
			assert.Equal(t, tt.wantCode, appErrorCode(t, err))

			var appErr domainerrors.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, tt.wantHTTP, appErr.HTTPCode())
		})
	}
}

func TestAuthService_Refresh_RotatesSession(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	user := newTestUser(true)
	active := &entity.RefreshToken{ID: uuid.New(), UserID: user.ID, TokenHash: "old-hash"}

	fx.tokenService.EXPECT().HashToken("old-token").Return("old-hash")
	fx.refreshTokenRepo.EXPECT().FindRefreshTokenByHash(mock.Anything, "old-hash").Return(active, nil)
	fx.refreshTokenRepo.EXPECT().IsRevoked(mock.Anything, "old-hash").Return(false, nil)
	fx.tokenService.EXPECT().
		ValidateToken("old-token", service.TokenKindRefresh).
		Return(&service.Claims{UserID: user.ID, Type: service.TokenKindRefresh}, nil)

	fx.expectTx(t, func(factory *mockRepo.MockRepositoryFactory) {
		txTokens := mockRepo.NewMockRefreshTokenRepository(t)
		txUsers := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().RefreshTokenRepo().Return(txTokens)
		factory.EXPECT().UserRepo().Return(txUsers)

		txTokens.EXPECT().RetireRefreshToken(ctx, "old-hash", entity.RevokeReasonRotated).Return(active, nil)
		txUsers.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
		txTokens.EXPECT().CreateRefreshToken(ctx, mock.AnythingOfType("*entity.RefreshToken")).Return(nil)
	})

	fx.tokenService.EXPECT().GenerateAccessToken(user).Return("new-access", nil)
	fx.tokenService.EXPECT().GenerateRefreshToken(user).Return(&service.IssuedRefreshToken{
		Token:     "new-token",
		Hash:      "new-hash",
		ExpiresAt: time.Now().Add(time.Hour),
	}, nil)

	result, err := fx.service.Refresh(ctx, "old-token")

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, result.Status)
	assert.Equal(t, "new-access", result.Token)
	assert.Equal(t, "new-token", result.RefreshToken)
}

func TestAuthService_Refresh_RejectsUnusableTokens(t *testing.T) {
	tests := []struct {
		name     string
		active   error
		revoked  bool
		wantCode string
	}{
		{name: "not active", active: repository.ErrRefreshTokenNotFound, wantCode: "REFRESH_TOKEN_INVALID"},
		{name: "expired", active: repository.ErrRefreshTokenExpired, wantCode: "REFRESH_TOKEN_INVALID"},
		{name: "revoked", revoked: true, wantCode: "REFRESH_TOKEN_INVALID"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAuthService(t)

			fx.tokenService.EXPECT().HashToken("tok").Return("hash")
			if tt.active != nil {
				fx.refreshTokenRepo.EXPECT().FindRefreshTokenByHash(mock.Anything, "hash").Return(nil, tt.active)
			} else {
				fx.refreshTokenRepo.EXPECT().FindRefreshTokenByHash(mock.Anything, "hash").Return(&entity.RefreshToken{}, nil)
			}
			fx.refreshTokenRepo.EXPECT().IsRevoked(mock.Anything, "hash").Return(tt.revoked, nil)

			result, err := fx.service.Refresh(context.Background(), "tok")

			require.Error(t, err)
			assert.Nil(t, result)
			assert.Equal(t, tt.wantCode, appErrorCode(t, err))
		})
	}
}

func TestAuthService_Refresh_MissingCookie(t *testing.T) {
	fx := createTestAuthService(t)

	_, err := fx.service.Refresh(context.Background(), "")

	assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenMissing))
}

func TestAuthService_Refresh_SignatureFailureIsServiceFailure(t *testing.T) {
	fx := createTestAuthService(t)

	fx.tokenService.EXPECT().HashToken("tok").Return("hash")
	fx.refreshTokenRepo.EXPECT().FindRefreshTokenByHash(mock.Anything, "hash").Return(&entity.RefreshToken{}, nil)
	fx.refreshTokenRepo.EXPECT().IsRevoked(mock.Anything, "hash").Return(false, nil)
	fx.tokenService.EXPECT().ValidateToken("tok", service.TokenKindRefresh).Return(nil, service.ErrTokenExpired)
	fx.errorLogger.EXPECT().LogError(mock.Anything, "Error in the refresh token service", mock.Anything, "back").Return()

	_, err := fx.service.Refresh(context.Background(), "tok")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrRefreshFailed))
}

func TestAuthService_Refresh_LostRace(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.tokenService.EXPECT().HashToken("tok").Return("hash")
	fx.refreshTokenRepo.EXPECT().FindRefreshTokenByHash(mock.Anything, "hash").Return(&entity.RefreshToken{UserID: userID}, nil)
	fx.refreshTokenRepo.EXPECT().IsRevoked(mock.Anything, "hash").Return(false, nil)
	fx.tokenService.EXPECT().
		ValidateToken("tok", service.TokenKindRefresh).
		Return(&service.Claims{UserID: userID, Type: service.TokenKindRefresh}, nil)

	fx.expectTx(t, func(factory *mockRepo.MockRepositoryFactory) {
		txTokens := mockRepo.NewMockRefreshTokenRepository(t)
		factory.EXPECT().RefreshTokenRepo().Return(txTokens)
		txTokens.EXPECT().
			RetireRefreshToken(ctx, "hash", entity.RevokeReasonRotated).
			Return(nil, repository.ErrRefreshTokenNotFound)
	})

	_, err := fx.service.Refresh(ctx, "tok")

	require.Error(t, err)
	assert.Equal(t, "REFRESH_TOKEN_INVALID", appErrorCode(t, err))
}

func TestAuthService_Refresh_UserGone(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.tokenService.EXPECT().HashToken("tok").Return("hash")
	fx.refreshTokenRepo.EXPECT().FindRefreshTokenByHash(mock.Anything, "hash").Return(&entity.RefreshToken{UserID: userID}, nil)
	fx.refreshTokenRepo.EXPECT().IsRevoked(mock.Anything, "hash").Return(false, nil)
	fx.tokenService.EXPECT().
		ValidateToken("tok", service.TokenKindRefresh).
		Return(&service.Claims{UserID: userID, Type: service.TokenKindRefresh}, nil)

	fx.expectTx(t, func(factory *mockRepo.MockRepositoryFactory) {
		txTokens := mockRepo.NewMockRefreshTokenRepository(t)
		txUsers := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().RefreshTokenRepo().Return(txTokens)
		factory.EXPECT().UserRepo().Return(txUsers)
		txTokens.EXPECT().
			RetireRefreshToken(ctx, "hash", entity.RevokeReasonRotated).
			Return(&entity.RefreshToken{UserID: userID}, nil)
		txUsers.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)
	})

	_, err := fx.service.Refresh(ctx, "tok")

	require.Error(t, err)
	assert.Equal(t, "USER_NOT_FOUND", appErrorCode(t, err))
}

func TestAuthService_Logout(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.tokenService.EXPECT().HashToken("tok").Return("hash")
	fx.expectTx(t, func(factory *mockRepo.MockRepositoryFactory) {
		txTokens := mockRepo.NewMockRefreshTokenRepository(t)
		factory.EXPECT().RefreshTokenRepo().Return(txTokens)
		txTokens.EXPECT().
			RetireRefreshToken(ctx, "hash", entity.RevokeReasonLogout).
			Return(&entity.RefreshToken{UserID: userID}, nil)
	})

	result, err := fx.service.Logout(ctx, userID, "tok")

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, result.Status)
	assert.True(t, result.ClearSession)
	assert.Equal(t, &entity.UserSummary{}, result.User)
}

func TestAuthService_Logout_Errors(t *testing.T) {
	t.Run("missing cookie", func(t *testing.T) {
		fx := createTestAuthService(t)

		_, err := fx.service.Logout(context.Background(), uuid.New(), "")

		assert.Equal(t, "REFRESH_TOKEN_MISSING", appErrorCode(t, err))
	})

	t.Run("unknown token", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()

		fx.tokenService.EXPECT().HashToken("tok").Return("hash")
		fx.expectTx(t, func(factory *mockRepo.MockRepositoryFactory) {
			txTokens := mockRepo.NewMockRefreshTokenRepository(t)
			factory.EXPECT().RefreshTokenRepo().Return(txTokens)
			txTokens.EXPECT().
				RetireRefreshToken(ctx, "hash", entity.RevokeReasonLogout).
				Return(nil, repository.ErrRefreshTokenNotFound)
		})

		_, err := fx.service.Logout(ctx, uuid.New(), "tok")

		assert.Equal(t, "REFRESH_TOKEN_INVALID", appErrorCode(t, err))
	})

	t.Run("cookie of another user", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()

		fx.tokenService.EXPECT().HashToken("tok").Return("hash")
		fx.expectTx(t, func(factory *mockRepo.MockRepositoryFactory) {
			txTokens := mockRepo.NewMockRefreshTokenRepository(t)
			factory.EXPECT().RefreshTokenRepo().Return(txTokens)
			txTokens.EXPECT().
				RetireRefreshToken(ctx, "hash", entity.RevokeReasonLogout).
				Return(&entity.RefreshToken{UserID: uuid.New()}, nil)
		})

		_, err := fx.service.Logout(ctx, uuid.New(), "tok")

		assert.Equal(t, "REFRESH_TOKEN_INVALID", appErrorCode(t, err))
	})
}

func TestAuthService_ForgotPassword_UniformResponse(t *testing.T) {
	t.Run("unknown email", func(t *testing.T) {
		fx := createTestAuthService(t)

		fx.userRepo.EXPECT().FindByEmail(mock.Anything, "ghost@x.com").Return(nil, repository.ErrUserNotFound)

		result, err := fx.service.ForgotPassword(context.Background(), "ghost@x.com")

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, result.Status)
		assert.Equal(t, forgotPasswordMessage, result.Message)
	})

	t.Run("existing account", func(t *testing.T) {
		fx := createTestAuthService(t)
		user := newTestUser(true)

		fx.userRepo.EXPECT().FindByEmail(mock.Anything, "ana@x.com").Return(user, nil)
		fx.tokenService.EXPECT().GeneratePasswordResetToken(user).Return("reset/token", nil)
		fx.mailer.EXPECT().
			SendPasswordReset(mock.Anything, user, "https://api.test/auth/reset-password?token=reset%2Ftoken").
			Return(nil)

		result, err := fx.service.ForgotPassword(context.Background(), "Ana@x.com")

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, result.Status)
		assert.Equal(t, forgotPasswordMessage, result.Message)
	})
}

func TestAuthService_ResetPassword(t *testing.T) {
	t.Run("valid token", func(t *testing.T) {
		fx := createTestAuthService(t)
		fx.tokenService.EXPECT().ValidateToken("tok", service.TokenKindReset).Return(&service.Claims{}, nil)

		assert.Equal(t, "https://web.test/change-password?token=tok", fx.service.ResetPassword(context.Background(), "tok"))
	})

	t.Run("expired token", func(t *testing.T) {
		fx := createTestAuthService(t)
		fx.tokenService.EXPECT().ValidateToken("tok", service.TokenKindReset).Return(nil, service.ErrTokenExpired)

		assert.Equal(t,
			"https://web.test/notification?status=error&reason=reset_token_invalid",
			fx.service.ResetPassword(context.Background(), "tok"))
	})
}

func TestAuthService_ChangePassword(t *testing.T) {
	userID := uuid.New()
	input := &usecase.ChangePasswordInput{Token: "tok", Password: "NewSecret1"}

	t.Run("success", func(t *testing.T) {
		fx := createTestAuthService(t)
		fx.tokenService.EXPECT().ValidateToken("tok", service.TokenKindReset).Return(&service.Claims{UserID: userID}, nil)
		fx.hasher.EXPECT().Hash("NewSecret1").Return("new-hash", nil)
		fx.userRepo.EXPECT().UpdatePassword(mock.Anything, userID, "new-hash").Return(nil)

		result, err := fx.service.ChangePassword(context.Background(), input)

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, result.Status)
	})

	t.Run("invalid token", func(t *testing.T) {
		fx := createTestAuthService(t)
		fx.tokenService.EXPECT().ValidateToken("tok", service.TokenKindReset).Return(nil, service.ErrTokenInvalid)

		_, err := fx.service.ChangePassword(context.Background(), input)

		assert.Equal(t, "TOKEN_INVALID", appErrorCode(t, err))
	})

	t.Run("user gone", func(t *testing.T) {
		fx := createTestAuthService(t)
		fx.tokenService.EXPECT().ValidateToken("tok", service.TokenKindReset).Return(&service.Claims{UserID: userID}, nil)
		fx.hasher.EXPECT().Hash("NewSecret1").Return("new-hash", nil)
		fx.userRepo.EXPECT().UpdatePassword(mock.Anything, userID, "new-hash").Return(repository.ErrUserNotFound)

		_, err := fx.service.ChangePassword(context.Background(), input)

		assert.Equal(t, "USER_NOT_FOUND", appErrorCode(t, err))
	})
}

func TestAuthService_PurgeExpiredSessions(t *testing.T) {
	fx := createTestAuthService(t)
	fx.refreshTokenRepo.EXPECT().DeleteExpiredRefreshTokens(mock.Anything).Return(int64(3), nil)

	count, err := fx.service.PurgeExpiredSessions(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}
