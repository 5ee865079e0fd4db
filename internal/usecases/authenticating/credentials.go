package authenticating

import (
	"context"
	"strings"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/pkg/errors"
	"github.com/vfg2006/revenue-engine/infrastructure/repository"
	"github.com/vfg2006/revenue-engine/internal/domain"
	"github.com/vfg2006/revenue-engine/pkg/apiErrors"
	"golang.org/x/crypto/bcrypt"
)

const (
	secretAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	secretLength   = 40
	suffixAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
	suffixLength   = 6
)

// RegisterClient cria um cliente de serviço e devolve o segredo em texto puro.
// O segredo não é recuperável depois: apenas o hash bcrypt é gravado.
func RegisterClient(ctx context.Context, clientRepo repository.APIClientRepository, name string, roleID int) (*domain.APIClient, string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, "", NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "nome do cliente é obrigatório")
	}

	switch roleID {
	case domain.RoleAdmin, domain.RoleRevenueManager, domain.RoleAnalyst:
	default:
		return nil, "", NewAuthError(ErrInvalidRole, apiErrors.ErrInvalidRequest, "role inexistente")
	}

	suffix, err := gonanoid.Generate(suffixAlphabet, suffixLength)
	if err != nil {
		return nil, "", errors.Wrap(err, "erro ao gerar identificador do cliente")
	}

	secret, err := gonanoid.Generate(secretAlphabet, secretLength)
	if err != nil {
		return nil, "", errors.Wrap(err, "erro ao gerar segredo do cliente")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", errors.Wrap(err, "erro ao gerar hash do segredo")
	}

	client := &domain.APIClient{
		ClientID:   slugify(name) + "-" + suffix,
		Name:       name,
		SecretHash: string(hash),
		RoleID:     roleID,
		Active:     true,
	}

	if err := clientRepo.Create(ctx, client); err != nil {
		return nil, "", NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao gravar cliente no banco de dados")
	}

	return client, secret, nil
}

func slugify(name string) string {
	var b strings.Builder
	lastDash := false
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		case !lastDash && b.Len() > 0:
			b.WriteByte('-')
			lastDash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
