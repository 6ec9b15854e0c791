package postgres

import (
	"context"
	"regexp"
	"testing"
	"time"

	"portfolio/internal/domain/entity"
	"portfolio/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	retireDeleteSQL = `DELETE FROM "refresh_tokens" WHERE token_hash = $1 RETURNING *`
	retireInsertSQL = `INSERT INTO "revoked_tokens" .* ON CONFLICT \("token_hash"\) DO NOTHING`
)

func newSQLMockRepo(t *testing.T) (sqlmock.Sqlmock, repository.RefreshTokenRepository) {
	t.Helper()

	sqlDB, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	return sqlMock, NewRefreshTokenRepository(db)
}

func TestRefreshTokenRepository_RetireRefreshToken(t *testing.T) {
	ctx := context.Background()
	tokenID := uuid.New()
	userID := uuid.New()
	expiresAt := time.Now().Add(time.Hour).UTC().Truncate(time.Second)

	t.Run("deletes and records the revocation", func(t *testing.T) {
		sqlMock, repo := newSQLMockRepo(t)

		rows := sqlmock.NewRows([]string{"id", "user_id", "token_hash", "expires_at", "created_at"}).
			AddRow(tokenID.String(), userID.String(), "hash", expiresAt, expiresAt.Add(-time.Hour))
		sqlMock.ExpectQuery(regexp.QuoteMeta(retireDeleteSQL)).
			WithArgs("hash").
			WillReturnRows(rows)
		sqlMock.ExpectExec(retireInsertSQL).
			WithArgs(sqlmock.AnyArg(), userID.String(), "hash", string(entity.RevokeReasonRotated), sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))

		token, err := repo.RetireRefreshToken(ctx, "hash", entity.RevokeReasonRotated)

		require.NoError(t, err)
		assert.Equal(t, tokenID, token.ID)
		assert.Equal(t, userID, token.UserID)
		assert.True(t, expiresAt.Equal(token.ExpiresAt))
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})

	t.Run("zero rows means another caller won", func(t *testing.T) {
		sqlMock, repo := newSQLMockRepo(t)

		sqlMock.ExpectQuery(regexp.QuoteMeta(retireDeleteSQL)).
			WithArgs("hash").
			WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "token_hash", "expires_at", "created_at"}))

		token, err := repo.RetireRefreshToken(ctx, "hash", entity.RevokeReasonLogout)

		assert.Nil(t, token)
		assert.ErrorIs(t, err, repository.ErrRefreshTokenNotFound)
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})

	t.Run("delete failure", func(t *testing.T) {
		sqlMock, repo := newSQLMockRepo(t)

		sqlMock.ExpectQuery(regexp.QuoteMeta(retireDeleteSQL)).
			WithArgs("hash").
			WillReturnError(errors.New("connection reset"))

		_, err := repo.RetireRefreshToken(ctx, "hash", entity.RevokeReasonLogout)

		require.Error(t, err)
		assert.NotErrorIs(t, err, repository.ErrRefreshTokenNotFound)
		assert.Contains(t, err.Error(), "failed to delete refresh token")
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})

	t.Run("revocation insert failure", func(t *testing.T) {
		sqlMock, repo := newSQLMockRepo(t)

		rows := sqlmock.NewRows([]string{"id", "user_id", "token_hash", "expires_at", "created_at"}).
			AddRow(tokenID.String(), userID.String(), "hash", expiresAt, expiresAt)
		sqlMock.ExpectQuery(regexp.QuoteMeta(retireDeleteSQL)).
			WithArgs("hash").
			WillReturnRows(rows)
		sqlMock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "revoked_tokens"`)).
			WillReturnError(errors.New("disk full"))

		_, err := repo.RetireRefreshToken(ctx, "hash", entity.RevokeReasonLogout)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to record revoked token")
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})
}
