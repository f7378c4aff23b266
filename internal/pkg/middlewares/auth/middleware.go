package auth

import (
	"crypto/subtle"
	"net/http"
	"strconv"
	"strings"

	"recycling/internal/entities"
	"recycling/pkg/logger"
)

const bearerPrefix = "Bearer "

// Middleware проверяет Bearer токен и кладёт владельца запроса в контекст.
func Middleware(log handlerLogger, parser TokenParser) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, bearerPrefix) {
				writeError(w, log, http.StatusUnauthorized, "missing bearer token")
				return
			}

			claims, err := parser.Parse(strings.TrimPrefix(header, bearerPrefix))
			if err != nil {
				log.With(
					logger.NewField("error", err),
					logger.NewField("path", r.URL.Path),
				).Warn("rejected access token")
				writeError(w, log, http.StatusUnauthorized, "invalid or expired token")
				return
			}

			kind := entities.HolderKind(claims.Role)
			id, err := strconv.ParseInt(claims.Subject, 10, 64)
			if err != nil || !kind.IsValid() {
				writeError(w, log, http.StatusUnauthorized, "invalid or expired token")
				return
			}

			identity := entities.Identity{
				Holder: entities.Holder{Kind: kind, ID: id},
				Email:  claims.Email,
			}
			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), identity)))
		})
	}
}

// RequireRole пропускает только владельцев указанного типа. Ставится после Middleware.
func RequireRole(log handlerLogger, kind entities.HolderKind) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := IdentityFromContext(r.Context())
			if !ok {
				writeError(w, log, http.StatusUnauthorized, "missing bearer token")
				return
			}
			if identity.Holder.Kind != kind {
				writeError(w, log, http.StatusForbidden, "only "+kind.String()+" accounts can access this resource")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// AdminKey защищает служебные маршруты статическим ключом. Пустой ключ закрывает их полностью.
func AdminKey(log handlerLogger, key string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			provided := r.Header.Get("X-Admin-Key")
			if key == "" || subtle.ConstantTimeCompare([]byte(provided), []byte(key)) != 1 {
				writeError(w, log, http.StatusForbidden, "admin key required")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func writeError(w http.ResponseWriter, log handlerLogger, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err := w.Write([]byte(`{"error":"` + message + `"}`))
	if err != nil {
		log.With(
			logger.NewField("error", err),
		).Error("failed to write auth error response")
	}
}
