package objectid

import "testing"

func TestIsValid(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want bool
	}{
		{name: "canonical lower", id: "507f1f77bcf86cd799439011", want: true},
		{name: "upper hex", id: "507F1F77BCF86CD799439011", want: true},
		{name: "too short", id: "507f1f77bcf86cd79943901", want: false},
		{name: "too long", id: "507f1f77bcf86cd7994390111", want: false},
		{name: "non hex", id: "507f1f77bcf86cd79943901z", want: false},
		{name: "empty", id: "", want: false},
		{name: "uuid shaped", id: "8f8b0e1c-1d2e-4f3a-9b4c", want: false},
	}

	for _, tt := range tests {
		if got := IsValid(tt.id); got != tt.want {
			t.Fatalf("%s: IsValid(%q) = %v, want %v", tt.name, tt.id, got, tt.want)
		}
	}
}
