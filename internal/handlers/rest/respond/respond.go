package respond

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"recycling/internal/entities"
	"recycling/internal/generated/dto"
	"recycling/internal/pkg/middlewares/auth"
	"recycling/pkg/logger"
)

var ErrInvalidPathParam = errors.New("invalid path parameter")

type errorLogger interface {
	Error(msg string, fields ...logger.Field)
}

func JSON(w http.ResponseWriter, log errorLogger, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(body)
	if err != nil {
		log.Error("encode JSON response", logger.NewField("error", err))
	}
}

func Error(w http.ResponseWriter, log errorLogger, status int, message string) {
	JSON(w, log, status, dto.ErrorResponse{Error: message})
}

// InternalError логирует причину, клиенту уходит только общий текст.
func InternalError(w http.ResponseWriter, log errorLogger, r *http.Request, err error) {
	log.Error("request failed",
		logger.NewField("error", err),
		logger.NewField("method", r.Method),
		logger.NewField("path", r.URL.Path),
	)
	Error(w, log, http.StatusInternalServerError, "internal server error")
}

// Message текст самой внутренней ошибки цепочки, без контекста сервисного слоя.
func Message(err error) string {
	for {
		inner := errors.Unwrap(err)
		if inner == nil {
			return err.Error()
		}
		err = inner
	}
}

// Identity владелец запроса, положенный auth middleware.
func Identity(r *http.Request) (entities.Identity, bool) {
	return auth.IdentityFromContext(r.Context())
}

func PathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(mux.Vars(r)[name], 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidPathParam
	}
	return id, nil
}
