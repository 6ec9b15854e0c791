package postgres

import (
	"testing"
	"time"

	"portfolio/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestUserMapperRoundTrip(t *testing.T) {
	now := time.Now().UTC()
	user := &entity.User{
		ID:            uuid.New(),
		FirstName:     "Ada",
		SecondName:    "Augusta",
		FirstSurname:  "Lovelace",
		SecondSurname: "Byron",
		Email:         "ada@example.com",
		Phone:         "+44 20 0000",
		Photo:         "photos/ada.png",
		PasswordHash:  "$2a$10$hash",
		IsVerified:    true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	assert.Equal(t, user, toUserDomain(fromUserDomain(user)))
	assert.Nil(t, toUserDomain(nil))
	assert.Nil(t, fromUserDomain(nil))
}

func TestEmailMapperKeepsColumns(t *testing.T) {
	email := &entity.InboxEmail{
		ID:           uuid.New(),
		Type:         entity.EmailTypeReview,
		SenderName:   "Grace",
		SenderEmail:  "grace@example.com",
		TimeZone:     "America/Bogota",
		Message:      "Great article",
		ArticleTitle: "Compilers",
		ArticleLink:  "https://blog.example.com/compilers",
		ArticleImage: "https://blog.example.com/compilers.png",
		Status:       entity.EmailStatusQueued,
	}

	emailM := fromEmailDomain(email)
	assert.Equal(t, "review", emailM.EmailType)
	assert.Equal(t, "Grace", emailM.NameSender)
	assert.Equal(t, "America/Bogota", emailM.TZ)
	assert.Equal(t, "queued", emailM.Status)

	assert.Equal(t, email, toEmailDomain(emailM))
}

func TestRefreshTokenMapper(t *testing.T) {
	token := &entity.RefreshToken{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		TokenHash: "abc123",
		ExpiresAt: time.Now().Add(time.Hour).UTC(),
	}

	assert.Equal(t, token, toRefreshTokenDomain(fromRefreshTokenDomain(token)))
}
