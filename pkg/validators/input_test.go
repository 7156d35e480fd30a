package validators

import (
	"testing"

	pkgerrors "github.com/spikemate/mobile-core/pkg/errors"
)

type loginForm struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

func TestStructValid(t *testing.T) {
	form := loginForm{Email: "coach@club.fr", Password: "secret1"}
	if err := Struct(form); err != nil {
		t.Fatalf("expected valid form, got %v", err)
	}
}

func TestStructCollectsFieldErrors(t *testing.T) {
	form := loginForm{Email: "not-an-email", Password: ""}
	err := Struct(form)
	if err == nil {
		t.Fatal("expected validation error")
	}
	typed := pkgerrors.As(err)
	if typed == nil {
		t.Fatalf("expected typed error, got %T", err)
	}
	if typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation code, got %s", typed.Code())
	}
	details, ok := typed.Details().(map[string]string)
	if !ok {
		t.Fatalf("expected details map, got %T", typed.Details())
	}
	if details["email"] != "must be a valid email" {
		t.Fatalf("unexpected email message %q", details["email"])
	}
	if details["password"] != "is required" {
		t.Fatalf("unexpected password message %q", details["password"])
	}
}
