// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"portfolio/config"
	deliverycontext "portfolio/internal/delivery/context"
	"portfolio/internal/domain/constants"
	"portfolio/internal/domain/entity"
	domainerrors "portfolio/internal/domain/errors"
	"portfolio/internal/domain/repository"
	"portfolio/internal/domain/service"
	"portfolio/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

// Error log titles, one per operation.
const (
	titleRegister       = "Error in the registration service"
	titleVerifyMail     = "Error sending the verification email"
	titleVerifyEmail    = "Error in the email verification service"
	titleLogin          = "Error in the login service"
	titleRefresh        = "Error in the refresh token service"
	titleLogout         = "Error in the logout service"
	titleForgotPassword = "Error in the forgot password service"
	titleChangePassword = "Error in the change password service"
)

// Redirect reasons understood by the web notification view.
const (
	reasonInvalidToken      = "invalid_token"
	reasonEmailMismatch     = "email_mismatch"
	reasonUserNotFound      = "user_not_found"
	reasonAlreadyVerified   = "already_verified"
	reasonVerifyFailed      = "verification_failed"
	reasonResetTokenInvalid = "reset_token_invalid"
)

const forgotPasswordMessage = "If the account exists, a reset link has been sent to your email"

// authService implements the AuthUsecase interface.
type authService struct {
	txManager        repository.TransactionManager
	userRepo         repository.UserRepository
	refreshTokenRepo repository.RefreshTokenRepository
	hasher           service.PasswordHasher
	tokenService     service.TokenService
	mailer           service.AuthMailer
	errorLogger      service.ErrorLogger
	webURL           string
	apiURL           string
	logger           *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	UserRepo         repository.UserRepository
	RefreshTokenRepo repository.RefreshTokenRepository
	Hasher           service.PasswordHasher
	TokenService     service.TokenService
	Mailer           service.AuthMailer
	ErrorLogger      service.ErrorLogger
	Config           *config.Config
	Logger           *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	srv := &authService{
		txManager:        params.TxManager,
		userRepo:         params.UserRepo,
		refreshTokenRepo: params.RefreshTokenRepo,
		hasher:           params.Hasher,
		tokenService:     params.TokenService,
		mailer:           params.Mailer,
		errorLogger:      params.ErrorLogger,
		logger:           params.Logger,
	}
	if params.Config != nil && params.Config.Site != nil {
		srv.webURL = strings.TrimRight(params.Config.Site.WebURL, "/")
		srv.apiURL = strings.TrimRight(params.Config.Site.APIURL, "/")
	}

	return srv
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// fail records an infrastructure failure and returns the generic business error shown to the client.
func (srv *authService) fail(ctx context.Context, title string, err error, public *domainerrors.BaseError) error {
	srv.errorLogger.LogError(ctx, title, err.Error(), constants.SourceBack)

	return errors.Wrap(public, err.Error())
}

// Register creates an unverified account and emails the verification link.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthResult, error) {
	email := entity.NormalizeEmail(input.Email)

	existing, err := srv.userRepo.FindByNameAndEmail(ctx, input.FirstName, input.FirstSurname, email)
	switch {
	case err == nil:
		srv.log(ctx).Warn("Existing account", slog.String("email", email))

		return nil, domainerrors.ErrUserAlreadyExists.WithMessage(fmt.Sprintf(
			"The entered email (%s) already has an associated account with the name %s %s",
			input.Email, existing.FirstName, existing.FirstSurname,
		))
	case !errors.Is(err, repository.ErrUserNotFound):
		return nil, srv.fail(ctx, titleRegister, err, domainerrors.ErrUserCreationFailed)
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, srv.fail(ctx, titleRegister, err, domainerrors.ErrUserCreationFailed)
	}

	user := &entity.User{
		FirstName:     input.FirstName,
		SecondName:    input.SecondName,
		FirstSurname:  input.FirstSurname,
		SecondSurname: input.SecondSurname,
		Email:         email,
		Phone:         input.Phone,
		Photo:         input.Photo,
		PasswordHash:  hashedPassword,
	}
	if err := srv.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domainerrors.ErrUserAlreadyExists) {
			return nil, errors.WithStack(err)
		}

		return nil, srv.fail(ctx, titleRegister, err, domainerrors.ErrUserCreationFailed)
	}

	srv.sendVerification(ctx, user)

	srv.log(ctx).Info("Account created", slog.String("user_id", user.ID.String()))

	return &usecase.AuthResult{
		Status:  http.StatusCreated,
		Message: fmt.Sprintf("Account successfully created for %s %s", user.FirstName, user.FirstSurname),
		User:    user.Summary(),
	}, nil
}

// sendVerification emails the verification link. A failure is recorded but keeps the account.
func (srv *authService) sendVerification(ctx context.Context, user *entity.User) {
	token, err := srv.tokenService.GenerateVerificationToken(user)
	if err != nil {
		srv.errorLogger.LogError(ctx, titleVerifyMail, err.Error(), constants.SourceBack)

		return
	}

	link := fmt.Sprintf("%s/auth/verify/%s?token=%s", srv.apiURL, url.PathEscape(user.Email), url.QueryEscape(token))
	if err := srv.mailer.SendVerification(ctx, user, link); err != nil {
		srv.errorLogger.LogError(ctx, titleVerifyMail, err.Error(), constants.SourceBack)
	}
}

// VerifyEmail flips the verified flag and returns where the browser goes next.
func (srv *authService) VerifyEmail(ctx context.Context, email, token string) string {
	claims, err := srv.tokenService.ValidateToken(token, service.TokenKindVerify)
	if err != nil {
		srv.log(ctx).Warn("Rejected verification token", slog.Any("error", err))

		return srv.notificationURL("error", reasonInvalidToken)
	}

	email = entity.NormalizeEmail(email)
	if entity.NormalizeEmail(claims.Email) != email {
		return srv.notificationURL("error", reasonEmailMismatch)
	}

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrUserNotFound) {
		return srv.notificationURL("error", reasonUserNotFound)
	}
	if err != nil {
		srv.errorLogger.LogError(ctx, titleVerifyEmail, err.Error(), constants.SourceBack)

		return srv.notificationURL("error", reasonVerifyFailed)
	}

	if user.IsVerified {
		return srv.notificationURL("warning", reasonAlreadyVerified)
	}

	if err := srv.userRepo.MarkVerified(ctx, user.ID); err != nil {
		srv.errorLogger.LogError(ctx, titleVerifyEmail, err.Error(), constants.SourceBack)

		return srv.notificationURL("error", reasonVerifyFailed)
	}

	srv.log(ctx).Info("Email verified", slog.String("user_id", user.ID.String()))

	return srv.webURL + "/login?verified=true"
}

// Login checks the credentials and opens a new session.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthResult, error) {
	user, err := srv.userRepo.FindByEmail(ctx, entity.NormalizeEmail(input.Email))
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.WithStack(domainerrors.ErrUserNotFound)
	}
	if err != nil {
		return nil, srv.fail(ctx, titleLogin, err, domainerrors.ErrLoginFailed)
	}

	if !user.IsVerified {
		return nil, errors.WithStack(domainerrors.ErrEmailNotVerified)
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Password mismatch", slog.String("user_id", user.ID.String()))

		return nil, errors.WithStack(domainerrors.ErrPasswordMismatch)
	}

	result, err := srv.issueSession(ctx, srv.refreshTokenRepo, user)
	if err != nil {
		return nil, srv.fail(ctx, titleLogin, err, domainerrors.ErrLoginFailed)
	}
	result.Status = http.StatusOK
	result.Message = "Successful login"

	return result, nil
}

// Refresh retires the presented refresh token and issues a new session.
func (srv *authService) Refresh(ctx context.Context, refreshToken string) (*usecase.AuthResult, error) {
	if refreshToken == "" {
		return nil, errors.WithStack(domainerrors.ErrRefreshTokenMissing)
	}

	tokenHash := srv.tokenService.HashToken(refreshToken)
	usable, err := srv.isUsable(ctx, tokenHash)
	if err != nil {
		return nil, srv.fail(ctx, titleRefresh, err, domainerrors.ErrRefreshFailed)
	}
	if !usable {
		return nil, errors.WithStack(domainerrors.ErrRefreshTokenInvalid)
	}

	claims, err := srv.tokenService.ValidateToken(refreshToken, service.TokenKindRefresh)
	if err != nil {
		return nil, srv.fail(ctx, titleRefresh, err, domainerrors.ErrRefreshFailed)
	}

	var result *usecase.AuthResult
	err = srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		tokenRepo := factory.RefreshTokenRepo()

		retired, err := tokenRepo.RetireRefreshToken(ctx, tokenHash, entity.RevokeReasonRotated)
		if err != nil {
			return err
		}
		if retired.UserID != claims.UserID {
			return repository.ErrRefreshTokenNotFound
		}

		user, err := factory.UserRepo().FindByID(ctx, claims.UserID)
		if err != nil {
			return err
		}

		result, err = srv.issueSession(ctx, tokenRepo, user)

		return err
	})

	switch {
	case err == nil:
	case errors.Is(err, repository.ErrRefreshTokenNotFound):
		// Another request already rotated this token.
		return nil, errors.WithStack(domainerrors.ErrRefreshTokenInvalid)
	case errors.Is(err, repository.ErrUserNotFound):
		return nil, errors.WithStack(domainerrors.ErrUserNotFound)
	default:
		return nil, srv.fail(ctx, titleRefresh, err, domainerrors.ErrRefreshFailed)
	}

	result.Status = http.StatusOK
	result.Message = "Session refreshed"

	return result, nil
}

// isUsable looks the hash up in the active and revoked sets at the same time.
func (srv *authService) isUsable(ctx context.Context, tokenHash string) (bool, error) {
	var (
		active  bool
		revoked bool
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		_, err := srv.refreshTokenRepo.FindRefreshTokenByHash(groupCtx, tokenHash)
		switch {
		case err == nil:
			active = true
		case errors.Is(err, repository.ErrRefreshTokenNotFound), errors.Is(err, repository.ErrRefreshTokenExpired):
		default:
			return err
		}

		return nil
	})
	group.Go(func() error {
		var err error
		revoked, err = srv.refreshTokenRepo.IsRevoked(groupCtx, tokenHash)

		return err
	})

	if err := group.Wait(); err != nil {
		return false, errors.WithStack(err)
	}

	return active && !revoked, nil
}

// Logout retires the session's refresh token. The bearer token stays valid until it expires.
// A cookie issued to another user is rejected and its session is left untouched.
func (srv *authService) Logout(ctx context.Context, userID uuid.UUID, refreshToken string) (*usecase.AuthResult, error) {
	if refreshToken == "" {
		return nil, errors.WithStack(domainerrors.ErrRefreshTokenMissing)
	}

	tokenHash := srv.tokenService.HashToken(refreshToken)
	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		retired, err := factory.RefreshTokenRepo().RetireRefreshToken(ctx, tokenHash, entity.RevokeReasonLogout)
		if err != nil {
			return err
		}
		if retired.UserID != userID {
			// Rolls the retire back.
			return repository.ErrRefreshTokenNotFound
		}

		return nil
	})
	if errors.Is(err, repository.ErrRefreshTokenNotFound) {
		return nil, errors.WithStack(domainerrors.ErrRefreshTokenInvalid)
	}
	if err != nil {
		return nil, srv.fail(ctx, titleLogout, err, domainerrors.ErrLogoutFailed)
	}

	return &usecase.AuthResult{
		Status:       http.StatusOK,
		Message:      "Session closed successfully",
		User:         &entity.UserSummary{},
		ClearSession: true,
	}, nil
}

// ForgotPassword emails a reset link when the account exists. The answer is the same either way.
func (srv *authService) ForgotPassword(ctx context.Context, email string) (*usecase.AuthResult, error) {
	result := &usecase.AuthResult{
		Status:  http.StatusOK,
		Message: forgotPasswordMessage,
		User:    &entity.UserSummary{},
	}

	user, err := srv.userRepo.FindByEmail(ctx, entity.NormalizeEmail(email))
	if errors.Is(err, repository.ErrUserNotFound) {
		srv.log(ctx).Info("Password reset requested for unknown email")

		return result, nil
	}
	if err != nil {
		return nil, srv.fail(ctx, titleForgotPassword, err, domainerrors.ErrPasswordResetFailed)
	}

	token, err := srv.tokenService.GeneratePasswordResetToken(user)
	if err != nil {
		return nil, srv.fail(ctx, titleForgotPassword, err, domainerrors.ErrPasswordResetFailed)
	}

	link := fmt.Sprintf("%s/auth/reset-password?token=%s", srv.apiURL, url.QueryEscape(token))
	if err := srv.mailer.SendPasswordReset(ctx, user, link); err != nil {
		srv.errorLogger.LogError(ctx, titleForgotPassword, err.Error(), constants.SourceBack)
	}

	return result, nil
}

// ResetPassword checks the reset token and returns where the browser goes next.
func (srv *authService) ResetPassword(ctx context.Context, token string) string {
	if _, err := srv.tokenService.ValidateToken(token, service.TokenKindReset); err != nil {
		srv.log(ctx).Warn("Rejected reset token", slog.Any("error", err))

		return srv.notificationURL("error", reasonResetTokenInvalid)
	}

	return srv.webURL + "/change-password?token=" + url.QueryEscape(token)
}

// ChangePassword replaces the password of the account named by the reset token.
func (srv *authService) ChangePassword(ctx context.Context, input *usecase.ChangePasswordInput) (*usecase.AuthResult, error) {
	claims, err := srv.tokenService.ValidateToken(input.Token, service.TokenKindReset)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrTokenInvalid, err.Error())
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, srv.fail(ctx, titleChangePassword, err, domainerrors.ErrPasswordChangeFailed)
	}

	err = srv.userRepo.UpdatePassword(ctx, claims.UserID, hashedPassword)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.WithStack(domainerrors.ErrUserNotFound)
	}
	if err != nil {
		return nil, srv.fail(ctx, titleChangePassword, err, domainerrors.ErrPasswordChangeFailed)
	}

	srv.log(ctx).Info("Password changed", slog.String("user_id", claims.UserID.String()))

	return &usecase.AuthResult{
		Status:  http.StatusOK,
		Message: "Password updated successfully",
		User:    &entity.UserSummary{},
	}, nil
}

// PurgeExpiredSessions deletes refresh tokens past their expiry.
func (srv *authService) PurgeExpiredSessions(ctx context.Context) (int64, error) {
	count, err := srv.refreshTokenRepo.DeleteExpiredRefreshTokens(ctx)
	if err != nil {
		return 0, errors.WithStack(err)
	}

	return count, nil
}

// issueSession signs an access token and stores a new refresh token for the user.
func (srv *authService) issueSession(ctx context.Context, tokenRepo repository.RefreshTokenRepository, user *entity.User) (*usecase.AuthResult, error) {
	accessToken, err := srv.tokenService.GenerateAccessToken(user)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	issued, err := srv.tokenService.GenerateRefreshToken(user)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate refresh token")
	}

	if err := tokenRepo.CreateRefreshToken(ctx, &entity.RefreshToken{
		UserID:    user.ID,
		TokenHash: issued.Hash,
		ExpiresAt: issued.ExpiresAt,
	}); err != nil {
		return nil, errors.Wrap(err, "failed to store refresh token")
	}

	return &usecase.AuthResult{
		Token:            accessToken,
		User:             user.Summary(),
		RefreshToken:     issued.Token,
		RefreshExpiresAt: issued.ExpiresAt,
	}, nil
}

func (srv *authService) notificationURL(status, reason string) string {
	return fmt.Sprintf("%s/notification?status=%s&reason=%s", srv.webURL, status, reason)
}
