package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateSignup(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
		fields   []string
	}{
		{name: "valid", username: "alice", password: "pw"},
		{name: "missing username", password: "pw", fields: []string{"username"}},
		{name: "missing password", username: "alice", fields: []string{"password"}},
		{name: "missing both", fields: []string{"username", "password"}},
		{name: "whitespace username is kept", username: " ", password: "pw"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateSignup(tt.username, tt.password)
			assert.Equal(t, len(tt.fields) > 0, errs.HasErrors())
			assert.Len(t, errs, len(tt.fields))
			for _, f := range tt.fields {
				assert.Contains(t, errs, f)
			}
		})
	}
}

func TestValidateMessage(t *testing.T) {
	assert.True(t, ValidateMessage("").HasErrors())
	assert.False(t, ValidateMessage("hi").HasErrors())
	assert.False(t, ValidateMessage(" ").HasErrors())
}

func TestValidationErrors_Error(t *testing.T) {
	errs := ValidateSignup("", "")
	assert.Equal(t, "password is required; username is required", errs.Error())

	var err error = errs
	assert.EqualError(t, err, errs.Error())
}
