package response

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"catalog-service/pkg/apperror"
)

// Postgres error code for unique constraint violations (class 23).
const pgUniqueViolation = "23505"

// Classify maps an error surfaced by request handling to the HTTP status
// and body that the client should receive. First match wins, evaluated in
// this exact order:
//
//  1. *apperror.HTTPError            -> its status and message
//  2. *pgconn.PgError code 23505     -> 409 conflict
//  3. pgx.ErrNoRows / sql.ErrNoRows  -> 404 not found
//  4. validation failure             -> 400 with field details
//  5. anything else                  -> 500, detail suppressed
//
// An HTTPError with a status outside 100..599 is treated as unclassified;
// the responder logs the original value.
func Classify(err error) (int, Resp) {
	var httpErr *apperror.HTTPError
	if errors.As(err, &httpErr) {
		if !apperror.ValidStatus(httpErr.StatusCode) {
			return http.StatusInternalServerError, Resp{Error: MessageInternal}
		}
		return httpErr.StatusCode, Resp{Error: httpErr.Message}
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return http.StatusConflict, Resp{Error: MessageConflict}
	}

	if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows) {
		return http.StatusNotFound, Resp{Error: MessageNotFound}
	}

	var validationErr *apperror.ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest, Resp{Error: MessageValidation, Details: validationErr.Details}
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		return http.StatusBadRequest, Resp{Error: MessageValidation, Details: fieldDetails(fieldErrs)}
	}

	return http.StatusInternalServerError, Resp{Error: MessageInternal}
}

// fieldDetails converts gin binding failures into the wire detail shape.
func fieldDetails(errs validator.ValidationErrors) []apperror.FieldDetail {
	details := make([]apperror.FieldDetail, 0, len(errs))
	for _, fe := range errs {
		details = append(details, apperror.FieldDetail{
			Field:   fe.Field(),
			Message: validationMessage(fe),
		})
	}
	return details
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "oneof":
		return "must be one of: " + fe.Param()
	case "gt":
		return "must be greater than " + fe.Param()
	case "gte":
		return "must be at least " + fe.Param()
	case "uuid":
		return "must be a valid UUID"
	default:
		return "failed validation on rule '" + fe.Tag() + "'"
	}
}
