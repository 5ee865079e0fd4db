package authenticating

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/revenue-engine/infrastructure/repository/mocks"
	"github.com/vfg2006/revenue-engine/internal/config"
	"github.com/vfg2006/revenue-engine/internal/domain"
	"github.com/vfg2006/revenue-engine/pkg/apiErrors"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

var testNow = time.Date(2024, 6, 12, 10, 0, 0, 0, time.UTC)

func newTestService(t *testing.T) (*Service, *mocks.MockAPIClientRepository) {
	ctrl := gomock.NewController(t)
	clientRepo := mocks.NewMockAPIClientRepository(ctrl)

	return &Service{
		clientRepo: clientRepo,
		cfg:        config.Auth{Secret: "test-secret", TokenTTL: time.Hour},
		now:        func() time.Time { return testNow },
	}, clientRepo
}

func hashSecret(t *testing.T, secret string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestIssueToken(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		clientID string
		secret   string
		setup    func(t *testing.T, repo *mocks.MockAPIClientRepository)
		validate func(t *testing.T, s *Service, token *domain.Token, err error)
	}{
		{
			name:     "credenciais válidas",
			clientID: "channel-manager",
			secret:   "s3cret",
			setup: func(t *testing.T, repo *mocks.MockAPIClientRepository) {
				repo.EXPECT().GetByClientID(gomock.Any(), "channel-manager").Return(&domain.APIClient{
					ClientID:   "channel-manager",
					Name:       "Channel Manager",
					SecretHash: hashSecret(t, "s3cret"),
					RoleID:     domain.RoleRevenueManager,
					Active:     true,
				}, nil)
			},
			validate: func(t *testing.T, s *Service, token *domain.Token, err error) {
				require.NoError(t, err)
				assert.Equal(t, "Bearer", token.TokenType)
				assert.Equal(t, testNow.Add(time.Hour), token.ExpiresAt)

				claims, err := s.ValidateToken(token.AccessToken)
				require.NoError(t, err)
				assert.Equal(t, "channel-manager", claims.ClientID)
				assert.Equal(t, domain.RoleRevenueManager, claims.RoleID)
			},
		},
		{
			name:     "segredo incorreto",
			clientID: "channel-manager",
			secret:   "wrong",
			setup: func(t *testing.T, repo *mocks.MockAPIClientRepository) {
				repo.EXPECT().GetByClientID(gomock.Any(), "channel-manager").Return(&domain.APIClient{
					ClientID:   "channel-manager",
					SecretHash: hashSecret(t, "s3cret"),
					Active:     true,
				}, nil)
			},
			validate: func(t *testing.T, s *Service, token *domain.Token, err error) {
				assert.ErrorIs(t, err, ErrInvalidCredentials)
				assert.True(t, IsCredentialsError(err))
				assert.Nil(t, token)
			},
		},
		{
			name:     "cliente desativado",
			clientID: "legacy",
			secret:   "s3cret",
			setup: func(t *testing.T, repo *mocks.MockAPIClientRepository) {
				repo.EXPECT().GetByClientID(gomock.Any(), "legacy").Return(&domain.APIClient{
					ClientID:   "legacy",
					SecretHash: hashSecret(t, "s3cret"),
					Active:     false,
				}, nil)
			},
			validate: func(t *testing.T, s *Service, token *domain.Token, err error) {
				assert.ErrorIs(t, err, ErrClientDisabled)

				var authErr *AuthError
				require.True(t, errors.As(err, &authErr))
				assert.Equal(t, apiErrors.ErrClientDisabled, authErr.Code)
				assert.Equal(t, "legacy", authErr.ClientID)
			},
		},
		{
			name:     "cliente inexistente",
			clientID: "ghost",
			secret:   "s3cret",
			setup: func(t *testing.T, repo *mocks.MockAPIClientRepository) {
				repo.EXPECT().GetByClientID(gomock.Any(), "ghost").Return(nil, nil)
			},
			validate: func(t *testing.T, s *Service, token *domain.Token, err error) {
				assert.ErrorIs(t, err, ErrInvalidCredentials)
			},
		},
		{
			name:     "credenciais ausentes",
			clientID: "",
			secret:   "",
			setup:    func(t *testing.T, repo *mocks.MockAPIClientRepository) {},
			validate: func(t *testing.T, s *Service, token *domain.Token, err error) {
				assert.ErrorIs(t, err, ErrMissingRequiredData)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo := newTestService(t)
			tt.setup(t, repo)

			token, err := service.IssueToken(ctx, tt.clientID, tt.secret)
			tt.validate(t, service, token, err)
		})
	}
}

func TestValidateToken(t *testing.T) {
	client := &domain.APIClient{ClientID: "analytics", Name: "Analytics", RoleID: domain.RoleAnalyst}

	t.Run("token expirado", func(t *testing.T) {
		service, _ := newTestService(t)

		token, err := generateJWT(client, testNow.Add(-time.Minute), "test-secret")
		require.NoError(t, err)

		_, err = service.ValidateToken(token)
		assert.ErrorIs(t, err, ErrExpiredToken)
		assert.True(t, IsAuthorizationError(err))
	})

	t.Run("assinatura com outro segredo", func(t *testing.T) {
		service, _ := newTestService(t)

		token, err := generateJWT(client, testNow.Add(time.Hour), "other-secret")
		require.NoError(t, err)

		_, err = service.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("token malformado", func(t *testing.T) {
		service, _ := newTestService(t)

		_, err := service.ValidateToken("not-a-jwt")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
