package validate

import (
	"reflect"
	"testing"
)

func TestRegistration_Valid(t *testing.T) {
	t.Parallel()

	payload := map[string]any{
		"name":     "A",
		"email":    "a@a.com",
		"password": "abcd",
	}

	if msgs := Registration().Validate(payload); msgs != nil {
		t.Errorf("expected valid payload, got violations: %v", msgs)
	}
}

func TestRegistration_CollectsAllViolations(t *testing.T) {
	t.Parallel()

	payload := map[string]any{
		"email":    "not-an-email",
		"password": "ab",
	}

	want := []string{
		`"name" is required`,
		`"email" must be a valid email`,
		`"password" length must be at least 3 characters long`,
	}

	got := Registration().Validate(payload)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Validate() = %v, want %v", got, want)
	}
}

func TestValidate_TypeMismatch(t *testing.T) {
	t.Parallel()

	payload := map[string]any{
		"name":     42.0,
		"email":    "a@a.com",
		"password": "abcd",
	}

	got := Registration().Validate(payload)
	want := []string{`"name" must be a string`}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Validate() = %v, want %v", got, want)
	}
}

func TestValidate_EmptyRequiredString(t *testing.T) {
	t.Parallel()

	payload := map[string]any{
		"name":     "",
		"email":    "a@a.com",
		"password": "abcd",
	}

	got := Registration().Validate(payload)
	want := []string{`"name" is not allowed to be empty`}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Validate() = %v, want %v", got, want)
	}
}

func TestValidate_UnknownFieldsIgnoredByDefault(t *testing.T) {
	t.Parallel()

	payload := map[string]any{
		"email":    "a@a.com",
		"password": "abcd",
		"extra":    "ignored",
	}

	if msgs := Login().Validate(payload); msgs != nil {
		t.Errorf("unknown fields should be ignored, got: %v", msgs)
	}
}

func TestValidate_StrictMode(t *testing.T) {
	t.Parallel()

	schema := Login()
	schema.Strict = true

	payload := map[string]any{
		"email":    "a@a.com",
		"password": "abcd",
		"zz":       1.0,
		"aa":       true,
	}

	want := []string{`"aa" is not allowed`, `"zz" is not allowed`}
	got := schema.Validate(payload)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Validate() = %v, want %v", got, want)
	}
}

func TestTransaction(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		payload map[string]any
		want    []string
	}{
		{
			name:    "valid",
			payload: map[string]any{"value": 100.0, "description": "salary"},
			want:    nil,
		},
		{
			name:    "zero value",
			payload: map[string]any{"value": 0.0, "description": "salary"},
			want:    []string{`"value" must be a positive number`},
		},
		{
			name:    "negative value",
			payload: map[string]any{"value": -5.0, "description": "salary"},
			want:    []string{`"value" must be a positive number`},
		},
		{
			name:    "value not a number",
			payload: map[string]any{"value": "100", "description": "salary"},
			want:    []string{`"value" must be a number`},
		},
		{
			name:    "everything missing",
			payload: map[string]any{},
			want:    []string{`"value" is required`, `"description" is required`},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Transaction().Validate(tt.payload)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Validate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEmailPattern(t *testing.T) {
	t.Parallel()

	tests := []struct {
		email string
		valid bool
	}{
		{"a@a.com", true},
		{"user.name+tag@example.co", true},
		{"caio@caio", false},
		{"@a.com", false},
		{"a@.com", false},
		{"a a@a.com", false},
		{"", false},
	}

	for _, tt := range tests {
		tt := tt
		payload := map[string]any{"email": tt.email, "password": "abcd"}
		msgs := Login().Validate(payload)
		gotValid := len(msgs) == 0
		if gotValid != tt.valid {
			t.Errorf("email %q: valid = %v, want %v (violations: %v)", tt.email, gotValid, tt.valid, msgs)
		}
	}
}
