package models

import (
	"github.com/cockroachdb/errors"
)

// Base errors, related to default API status codes
var (
	// BadParameterError is rendered with the http status code 400
	BadParameterError = errors.New("bad parameter")

	// UnAuthorizedError is rendered with the http status code 401
	UnAuthorizedError = errors.New("unauthorized")

	// ForbiddenError is rendered with the http status code 403
	ForbiddenError = errors.New("forbidden")

	// NotFoundError is rendered with the http status code 404
	NotFoundError = errors.New("not found")

	// ConflictError is rendered with the http status code 409
	ConflictError = errors.New("duplicate value")
)

// Change-log related errors
var ErrUnknownChangeLogAction = errors.Wrap(BadParameterError, "unknown change log action")

// Filter related errors
var (
	ErrUnknownFilterOperator = errors.Wrap(BadParameterError, "unknown filter operator")
	ErrOperatorNotApplicable = errors.Wrap(BadParameterError,
		"filter operator is not applicable to this data type")
)

// DB related errors
var ErrIgnoreRollBackError = errors.New("ignore rollback error")
