package handler

import (
	"net/http"

	"github.com/vfg2006/revenue-engine/internal/domain"
	"github.com/vfg2006/revenue-engine/internal/usecases/authenticating"
	"github.com/vfg2006/revenue-engine/pkg/apiErrors"
	"github.com/vfg2006/revenue-engine/pkg/log"
)

// IssueToken troca as credenciais de um cliente por um token de acesso
func IssueToken(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.TokenRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		token, err := service.IssueToken(r.Context(), req.ClientID, req.ClientSecret)
		if err != nil {
			handleServiceError(w, r, err)
			return
		}

		log.ForContext(r.Context()).WithField("client_id", req.ClientID).Info("auth: token emitido")
		writeJSON(w, http.StatusOK, token)
	}
}
