package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/toymix/internal/domain/errors"
	"github.com/polkiloo/toymix/internal/server/http/dto"
)

const (
	msgInternal      = "Erro interno do servidor"
	msgInvalidAmount = "Valor deve ser maior que zero"
)

// messages holds the per-resource texts for errors that depend on the endpoint.
// An empty internal falls back to the generic server error text.
type messages struct {
	notFound string
	conflict string
	internal string
}

// respondError maps domain errors to a status and a fixed message.
// The raw error is attached to the gin context for the request logger.
func respondError(c *gin.Context, err error, m messages) {
	_ = c.Error(err)

	status, msg := http.StatusInternalServerError, msgInternal
	if m.internal != "" {
		msg = m.internal
	}
	switch {
	case errors.Is(err, domainErrors.ErrNotFound):
		status, msg = http.StatusNotFound, m.notFound
	case errors.Is(err, domainErrors.ErrAlreadyExists):
		status, msg = http.StatusBadRequest, m.conflict
	case errors.Is(err, domainErrors.ErrInvalidAmount):
		status, msg = http.StatusBadRequest, msgInvalidAmount
	case errors.Is(err, domainErrors.ErrInvalidInput):
		status, msg = http.StatusBadRequest, validationMessage(err)
	}
	c.AbortWithStatusJSON(status, dto.ErrorResponse{Error: msg})
}

func badRequest(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, dto.ErrorResponse{Error: msg})
}

// validationMessage strips the sentinel prefix from wrapped validation errors.
func validationMessage(err error) string {
	msg := err.Error()
	if rest, ok := strings.CutPrefix(msg, domainErrors.ErrInvalidInput.Error()+": "); ok {
		return rest
	}
	return msg
}

// pathID parses the :id route parameter. Malformed ids never match a row.
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// queryInt returns the integer query parameter or zero when absent or malformed.
func queryInt(c *gin.Context, key string) int {
	n, err := strconv.Atoi(strings.TrimSpace(c.Query(key)))
	if err != nil {
		return 0
	}
	return n
}

// queryID parses an optional numeric filter. ok is false for malformed input.
func queryID(c *gin.Context, key string) (*int64, bool) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil, true
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, false
	}
	return &id, true
}
