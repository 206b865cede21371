package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type signup struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"min=8"`
	Role     string `json:"role,omitempty" validate:"omitempty,oneof=admin member"`
	Age      int    `validate:"gte=18"`
}

func TestValidateStructValid(t *testing.T) {
	errs := ValidateStruct(&signup{Email: "a@b.io", Password: "longenough", Age: 20})
	assert.Empty(t, errs)
}

func TestValidateStructMessages(t *testing.T) {
	errs := ValidateStruct(&signup{Email: "", Password: "short", Role: "root", Age: 3})

	assert.Equal(t, "The field 'email' is required.", errs["email"])
	assert.Equal(t, "The field 'password' must be at least 8 characters long.", errs["password"])
	assert.Equal(t, "The field 'role' must be one of admin member.", errs["role"])
	assert.Equal(t, "The field 'Age' must be greater than or equal to 18.", errs["Age"])
}

func TestValidateStructNonPointer(t *testing.T) {
	errs := ValidateStruct(signup{Password: "longenough", Age: 30})
	assert.Contains(t, errs, "email")
}

func TestValidateStructLanguage(t *testing.T) {
	errs := ValidateStruct(&signup{Password: "longenough", Age: 30}, "zh")
	assert.Equal(t, "字段 'email' 为必填项。", errs["email"])
}

func TestOneOf(t *testing.T) {
	assert.True(t, OneOf("info", "success", "error", "warning", "info"))
	assert.False(t, OneOf("notice", "success", "error", "warning", "info"))
	assert.False(t, OneOf("", "success", "error"))
	assert.False(t, OneOf("info"))
}

func TestRequired(t *testing.T) {
	assert.True(t, Required("x"))
	assert.False(t, Required(""))
}
