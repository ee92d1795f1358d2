package validator

import (
	"testing"

	"storerating/internal/errors"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signup struct {
	Name     string `json:"name" validate:"required,min=20,max=60"`
	Password string `json:"password" validate:"required,password"`
	Role     string `json:"role" validate:"omitempty,role"`
}

func newTestValidator(t *testing.T) *CustomValidator {
	t.Helper()

	v, err := New()
	require.NoError(t, err)

	return v
}

func TestNew_RejectsBadRule(t *testing.T) {
	_, err := newWithRules(map[string]validator.Func{"": validateRole})
	assert.Error(t, err)

	_, err = newWithRules(map[string]validator.Func{"role": nil})
	assert.Error(t, err)
}

func TestValidatePassword(t *testing.T) {
	v := newTestValidator(t)

	tests := []struct {
		password string
		valid    bool
	}{
		{"Secret#1", true},
		{"Sixteen!Chars123", true},
		{"Seven#1", false},
		{"Seventeen!Chars12", false},
		{"secret#123", false},
		{"Secret1234", false},
		{"Ünïcode€Pass", true},
	}

	for _, tt := range tests {
		t.Run(tt.password, func(t *testing.T) {
			err := v.Validate(&signup{Name: "Katherine Coleman Johnson", Password: tt.password})
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Contains(t, FieldErrors(err), "password")
			}
		})
	}
}

func TestValidateRole(t *testing.T) {
	v := newTestValidator(t)

	for _, role := range []string{"user", "owner", "admin", "ADMIN"} {
		assert.NoError(t, v.Validate(&signup{Name: "Katherine Coleman Johnson", Password: "Secret#1", Role: role}), role)
	}

	err := v.Validate(&signup{Name: "Katherine Coleman Johnson", Password: "Secret#1", Role: "superuser"})
	assert.Equal(t, map[string]string{"role": "must be one of: user owner admin"}, FieldErrors(err))
}

func TestFieldErrors(t *testing.T) {
	v := newTestValidator(t)

	err := v.Validate(&signup{Name: "Short", Password: ""})
	require.Error(t, err)

	fields := FieldErrors(err)
	assert.Equal(t, "must be at least 20 characters", fields["name"])
	assert.Equal(t, "is required", fields["password"])
}

func TestFieldErrors_NonValidationError(t *testing.T) {
	assert.Nil(t, FieldErrors(errors.New("boom")))
	assert.Nil(t, FieldErrors(nil))
}
