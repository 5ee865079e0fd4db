package authenticating

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/revenue-engine/infrastructure/repository"
	"github.com/vfg2006/revenue-engine/internal/config"
	"github.com/vfg2006/revenue-engine/internal/domain"
	"github.com/vfg2006/revenue-engine/pkg/apiErrors"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=service.go -destination=mocks/authenticator.go -package=mocks

type Authenticator interface {
	IssueToken(ctx context.Context, clientID, secret string) (*domain.Token, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
}

type Service struct {
	clientRepo repository.APIClientRepository
	cfg        config.Auth
	now        func() time.Time
}

func NewService(clientRepo repository.APIClientRepository, cfg *config.Config) Authenticator {
	return &Service{
		clientRepo: clientRepo,
		cfg:        cfg.Auth,
		now:        time.Now,
	}
}

// IssueToken troca as credenciais de um cliente de serviço por um JWT
func (s *Service) IssueToken(ctx context.Context, clientID, secret string) (*domain.Token, error) {
	if clientID == "" || secret == "" {
		return nil, NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "client_id e client_secret são obrigatórios")
	}

	client, err := s.clientRepo.GetByClientID(ctx, clientID)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao consultar cliente no banco de dados")
	}

	if client == nil {
		return nil, NewClientAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, clientID, "Cliente não encontrado")
	}

	if !client.Active {
		return nil, NewClientAuthError(ErrClientDisabled, apiErrors.ErrClientDisabled, clientID, "Cliente desativado")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(client.SecretHash), []byte(secret)); err != nil {
		return nil, NewClientAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, clientID, "Segredo incorreto")
	}

	expiresAt := s.now().Add(s.tokenTTL())

	token, err := generateJWT(client, expiresAt, s.cfg.Secret)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrInternalServer, "Erro ao gerar token de autenticação")
	}

	logrus.WithFields(logrus.Fields{
		"client_id": client.ClientID,
		"role_id":   client.RoleID,
	}).Info("Token emitido")

	return &domain.Token{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
	}, nil
}

func (s *Service) tokenTTL() time.Duration {
	if s.cfg.TokenTTL <= 0 {
		return 24 * time.Hour
	}
	return s.cfg.TokenTTL
}

func generateJWT(client *domain.APIClient, expiresAt time.Time, secretKey string) (string, error) {
	claims := domain.Claims{
		ClientID:   client.ClientID,
		ClientName: client.Name,
		RoleID:     client.RoleID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   client.ClientID,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secretKey))
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.Secret), nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, NewAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, err.Error())
		}
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, err.Error())
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "")
	}

	return claims, nil
}
