package server

import (
	"net/http"

	"github.com/joshwakefield/jd-brief/internal/generator"
	"github.com/joshwakefield/jd-brief/internal/storage"
)

// ErrUnauthorized indicates a missing or wrong bot token
type ErrUnauthorized struct{}

func (e *ErrUnauthorized) Error() string {
	return "invalid bot token"
}

// ErrArtifactNotFound indicates no stored brief under the given key
type ErrArtifactNotFound struct {
	Key string
}

func (e *ErrArtifactNotFound) Error() string {
	return "brief not found: " + e.Key
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrUnauthorized:
		return http.StatusUnauthorized
	case *ErrArtifactNotFound:
		return http.StatusNotFound
	case *generator.InputSizeError:
		return http.StatusBadRequest
	case *generator.SchemaViolationError:
		return http.StatusUnprocessableEntity
	case *generator.MalformedOutputError, *generator.GenerationError:
		return http.StatusBadGateway
	case *storage.Error:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
