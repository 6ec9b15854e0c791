package impl

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"portfolio/internal/domain/entity"
	domainerrors "portfolio/internal/domain/errors"
	"portfolio/internal/domain/repository"
	"portfolio/internal/domain/service"
	mockRepo "portfolio/internal/mocks/repository"
	mockSvc "portfolio/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// memoryTokenStore is a refresh token store whose retire step claims a row exactly once.
type memoryTokenStore struct {
	mu      sync.Mutex
	active  map[string]*entity.RefreshToken
	revoked map[string]entity.RevokeReason
}

func newMemoryTokenStore() *memoryTokenStore {
	return &memoryTokenStore{
		active:  make(map[string]*entity.RefreshToken),
		revoked: make(map[string]entity.RevokeReason),
	}
}

func (s *memoryTokenStore) CreateRefreshToken(_ context.Context, token *entity.RefreshToken) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.active[token.TokenHash] = token

	return nil
}

func (s *memoryTokenStore) FindRefreshTokenByHash(_ context.Context, tokenHash string) (*entity.RefreshToken, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	token, ok := s.active[tokenHash]
	if !ok {
		return nil, repository.ErrRefreshTokenNotFound
	}

	return token, nil
}

func (s *memoryTokenStore) IsRevoked(_ context.Context, tokenHash string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.revoked[tokenHash]

	return ok, nil
}

func (s *memoryTokenStore) RetireRefreshToken(_ context.Context, tokenHash string, reason entity.RevokeReason) (*entity.RefreshToken, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	token, ok := s.active[tokenHash]
	if !ok {
		return nil, repository.ErrRefreshTokenNotFound
	}
	delete(s.active, tokenHash)
	s.revoked[tokenHash] = reason

	return token, nil
}

func (s *memoryTokenStore) DeleteExpiredRefreshTokens(context.Context) (int64, error) {
	return 0, nil
}

type memoryTxManager struct {
	factory repository.RepositoryFactory
}

func (tm *memoryTxManager) Execute(_ context.Context, fn func(txRepoFactory repository.RepositoryFactory) error) error {
	return fn(tm.factory)
}

func TestAuthService_Refresh_ConcurrentReplayIssuesOneSession(t *testing.T) {
	const callers = 8

	user := newTestUser(true)
	store := newMemoryTokenStore()
	_ = store.CreateRefreshToken(context.Background(), &entity.RefreshToken{
		ID:        uuid.New(),
		UserID:    user.ID,
		TokenHash: "hash:shared",
		ExpiresAt: time.Now().Add(time.Hour),
	})

	users := mockRepo.NewMockUserRepository(t)
	users.EXPECT().FindByID(mock.Anything, user.ID).Return(user, nil).Maybe()

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().RefreshTokenRepo().Return(store).Maybe()
	factory.EXPECT().UserRepo().Return(users).Maybe()

	var issued atomic.Int64
	tokens := mockSvc.NewMockTokenService(t)
	tokens.EXPECT().HashToken(mock.Anything).RunAndReturn(func(raw string) string { return "hash:" + raw })
	tokens.EXPECT().
		ValidateToken("shared", service.TokenKindRefresh).
		Return(&service.Claims{UserID: user.ID, Type: service.TokenKindRefresh}, nil).
		Maybe()
	tokens.EXPECT().GenerateAccessToken(user).Return("access", nil).Maybe()
	tokens.EXPECT().
		GenerateRefreshToken(user).
		RunAndReturn(func(*entity.User) (*service.IssuedRefreshToken, error) {
			n := issued.Add(1)

			return &service.IssuedRefreshToken{
				Token:     fmt.Sprintf("next-%d", n),
				Hash:      fmt.Sprintf("hash:next-%d", n),
				ExpiresAt: time.Now().Add(time.Hour),
			}, nil
		}).
		Maybe()

	svc := NewAuthService(AuthServiceParams{
		TxManager:        &memoryTxManager{factory: factory},
		UserRepo:         users,
		RefreshTokenRepo: store,
		Hasher:           mockSvc.NewMockPasswordHasher(t),
		TokenService:     tokens,
		Mailer:           mockSvc.NewMockAuthMailer(t),
		ErrorLogger:      mockSvc.NewMockErrorLogger(t),
		Config:           newTestConfig(),
		Logger:           newDiscardLogger(),
	})

	var (
		wg        sync.WaitGroup
		successes atomic.Int64
		rejected  atomic.Int64
	)
	start := make(chan struct{})
	for range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start

			_, err := svc.Refresh(context.Background(), "shared")
			switch {
			case err == nil:
				successes.Add(1)
			case errors.Is(err, domainerrors.ErrRefreshTokenInvalid):
				rejected.Add(1)
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	close(start)
	wg.Wait()

	assert.Equal(t, int64(1), successes.Load())
	assert.Equal(t, int64(callers-1), rejected.Load())
	assert.Equal(t, int64(1), issued.Load())

	revoked, _ := store.IsRevoked(context.Background(), "hash:shared")
	assert.True(t, revoked)
	_, err := store.FindRefreshTokenByHash(context.Background(), "hash:next-1")
	assert.NoError(t, err)
}
