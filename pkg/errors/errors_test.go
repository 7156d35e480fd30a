package errors

import (
	stdErrors "errors"
	"testing"
)

func TestMetadataForKnownCodes(t *testing.T) {
	tests := []struct {
		code      Code
		userMsg   string
		retryable bool
		detailsOK bool
	}{
		{code: CodeValidation, userMsg: "validation failed", detailsOK: true},
		{code: CodeEmptyCart, userMsg: "your cart is empty"},
		{code: CodeInvalidIdentifier, userMsg: "an item in your cart is no longer valid", detailsOK: true},
		{code: CodeMissingUser, userMsg: "sign in to continue"},
		{code: CodeUnauthorized, userMsg: "session expired, please sign in again"},
		{code: CodeNetwork, userMsg: "network unavailable, check your connection", retryable: true},
		{code: CodeServer, userMsg: "something went wrong on our side", retryable: true, detailsOK: true},
	}

	for _, tt := range tests {
		meta := MetadataFor(tt.code)
		if meta.UserMessage != tt.userMsg {
			t.Fatalf("code %s expected user message %q got %q", tt.code, tt.userMsg, meta.UserMessage)
		}
		if meta.Retryable != tt.retryable {
			t.Fatalf("code %s expected retryable %v got %v", tt.code, tt.retryable, meta.Retryable)
		}
		if meta.DetailsAllowed != tt.detailsOK {
			t.Fatalf("code %s expected details allowed %v got %v", tt.code, tt.detailsOK, meta.DetailsAllowed)
		}
	}
}

func TestMetadataForUnknownCodeDefaultsToInternal(t *testing.T) {
	meta := MetadataFor("SOMETHING_UNKNOWN")
	if meta.UserMessage != "unexpected error" {
		t.Fatalf("expected internal metadata, got %q", meta.UserMessage)
	}
}

func TestErrorConstructors(t *testing.T) {
	base := New(CodeValidation, "missing foo")
	if base.Code() != CodeValidation {
		t.Fatalf("expected validation code, got %s", base.Code())
	}
	if base.Message() != "missing foo" {
		t.Fatalf("unexpected message %q", base.Message())
	}
	if base.Details() != nil {
		t.Fatalf("details should be nil by default")
	}

	detail := map[string]any{"field": "foo"}
	base.WithDetails(detail)
	if base.Details() == nil {
		t.Fatalf("details should be preserved")
	}

	cause := stdErrors.New("boom")
	wrapped := Wrap(CodeServer, cause, "create order")
	if !stdErrors.Is(wrapped, cause) {
		t.Fatalf("wrapped error should unwrap to cause")
	}
	if wrapped.Code() != CodeServer {
		t.Fatalf("expected server code, got %s", wrapped.Code())
	}
}

func TestAsAndCodeOf(t *testing.T) {
	err := New(CodeEmptyCart, "cart is empty")
	if typed := As(err); typed == nil || typed.Code() != CodeEmptyCart {
		t.Fatalf("expected typed error back, got %v", typed)
	}
	if As(stdErrors.New("plain")) != nil {
		t.Fatal("plain error should not convert")
	}
	if CodeOf(stdErrors.New("plain")) != CodeInternal {
		t.Fatal("plain error should default to internal code")
	}
	if !IsRetryable(New(CodeNetwork, "dial tcp")) {
		t.Fatal("network errors should be retryable")
	}
	if IsRetryable(err) {
		t.Fatal("empty cart should not be retryable")
	}
}

func TestDumpBuildsChain(t *testing.T) {
	cause := stdErrors.New("connection refused")
	err := Wrap(CodeNetwork, cause, "execute request")
	d := Dump(err)
	if d.Code != CodeNetwork {
		t.Fatalf("expected network code, got %s", d.Code)
	}
	if len(d.Chain) != 2 {
		t.Fatalf("expected two entries in chain, got %d", len(d.Chain))
	}
}
