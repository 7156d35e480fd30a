package errors

import (
	stdErrors "errors"
	"fmt"
)

type Code string

const (
	CodeValidation        Code = "VALIDATION_ERROR"
	CodeInvalidProduct    Code = "INVALID_PRODUCT"
	CodeEmptyCart         Code = "EMPTY_CART"
	CodeInvalidIdentifier Code = "INVALID_IDENTIFIER"
	CodeMissingUser       Code = "MISSING_USER"
	CodeUnauthorized      Code = "UNAUTHORIZED"
	CodeNotFound          Code = "NOT_FOUND"
	CodeNetwork           Code = "NETWORK_ERROR"
	CodeServer            Code = "SERVER_ERROR"
	CodeInternal          Code = "INTERNAL_ERROR"
)

// Metadata drives how the UI layer surfaces a failure: whether the action is
// safe to retry as-is and the fallback toast copy when the backend supplied
// no message of its own.
type Metadata struct {
	Retryable      bool
	UserMessage    string
	DetailsAllowed bool
}

var metadataByCode = map[Code]Metadata{
	CodeValidation: {
		Retryable:      false,
		UserMessage:    "validation failed",
		DetailsAllowed: true,
	},
	CodeInvalidProduct: {
		Retryable:      false,
		UserMessage:    "invalid product: missing identifier",
		DetailsAllowed: true,
	},
	CodeEmptyCart: {
		Retryable:      false,
		UserMessage:    "your cart is empty",
		DetailsAllowed: false,
	},
	CodeInvalidIdentifier: {
		Retryable:      false,
		UserMessage:    "an item in your cart is no longer valid",
		DetailsAllowed: true,
	},
	CodeMissingUser: {
		Retryable:      false,
		UserMessage:    "sign in to continue",
		DetailsAllowed: false,
	},
	CodeUnauthorized: {
		Retryable:      false,
		UserMessage:    "session expired, please sign in again",
		DetailsAllowed: false,
	},
	CodeNotFound: {
		Retryable:      false,
		UserMessage:    "resource not found",
		DetailsAllowed: false,
	},
	CodeNetwork: {
		Retryable:      true,
		UserMessage:    "network unavailable, check your connection",
		DetailsAllowed: false,
	},
	CodeServer: {
		Retryable:      true,
		UserMessage:    "something went wrong on our side",
		DetailsAllowed: true,
	},
	CodeInternal: {
		Retryable:      false,
		UserMessage:    "unexpected error",
		DetailsAllowed: false,
	},
}

func MetadataFor(code Code) Metadata {
	if meta, ok := metadataByCode[code]; ok {
		return meta
	}
	return metadataByCode[CodeInternal]
}

type Error struct {
	code    Code
	message string
	details any
	cause   error
}

func New(code Code, message string) *Error {
	return &Error{code: code, message: message}
}

func Wrap(code Code, err error, message string) *Error {
	if err == nil {
		return New(code, message)
	}
	return &Error{code: code, message: message, cause: err}
}

func (e *Error) Code() Code {
	if e == nil {
		return CodeInternal
	}
	return e.code
}

func (e *Error) Message() string {
	if e == nil {
		return ""
	}
	return e.message
}

func (e *Error) Details() any {
	if e == nil {
		return nil
	}
	return e.details
}

func (e *Error) WithDetails(details any) *Error {
	if e == nil {
		return nil
	}
	e.details = details
	return e
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: %s", e.code, e.message)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.cause
}

func As(err error) *Error {
	if err == nil {
		return nil
	}
	var typed *Error
	if stdErrors.As(err, &typed) {
		return typed
	}
	return nil
}

// CodeOf extracts the typed code from any error, defaulting to CodeInternal.
func CodeOf(err error) Code {
	if typed := As(err); typed != nil {
		return typed.Code()
	}
	return CodeInternal
}

// IsRetryable reports whether the user may safely retry the failed action.
func IsRetryable(err error) bool {
	return MetadataFor(CodeOf(err)).Retryable
}
