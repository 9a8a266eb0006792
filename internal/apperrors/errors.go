package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrEmptyPayload indicates that the request body was blank or absent.
var ErrEmptyPayload = errors.New("request payload is empty")

// ErrUnsupportedParameter indicates that the request carried a top-level
// parameter outside the recognized set.
var ErrUnsupportedParameter = errors.New("unsupported parameter")

// ErrMalformedRequest indicates that a required header field is missing or invalid.
var ErrMalformedRequest = errors.New("malformed request")

// ErrMalformedLineItem indicates a debit/credit line item that is missing its
// amount, or carries neither a GL account id nor a complete savings reference.
var ErrMalformedLineItem = errors.New("malformed debit/credit entry")

// ErrAccountNotConfigured indicates that no control GL account is mapped for a
// savings product (and payment type). The whole request is aborted.
var ErrAccountNotConfigured = errors.New("no GL account configured for savings product")
