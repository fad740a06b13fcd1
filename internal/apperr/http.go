package apperr

import (
	"errors"
	"net/http"

	"github.com/2beens/gymtracker/pkg"

	log "github.com/sirupsen/logrus"
)

type ErrorResponse struct {
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}

func StatusCode(kind Kind) int {
	switch kind {
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict, KindStateConflict:
		return http.StatusConflict
	case KindInvalidInput:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// WriteHTTP writes err as a JSON error body. Errors without a kind become a
// generic 500, their text is never exposed.
func WriteHTTP(w http.ResponseWriter, err error) {
	var e *Error
	if !errors.As(err, &e) {
		pkg.WriteJSON(w, ErrorResponse{Message: "internal server error"}, http.StatusInternalServerError)
		return
	}

	msg := e.Message
	if msg == "" {
		msg = string(e.Kind)
	}
	pkg.WriteJSON(w, ErrorResponse{Message: msg, Errors: e.Fields}, StatusCode(e.Kind))
}

// Handle logs err the way handlers do and writes it. Unclassified errors are
// server failures and go to the error log, client errors only to trace.
func Handle(w http.ResponseWriter, op string, err error) {
	if KindOf(err) == "" {
		log.Errorf("failed to %s: %s", op, err)
	} else {
		log.Tracef("%s: %s", op, err)
	}
	WriteHTTP(w, err)
}
