package validator

import (
	"sort"
	"strings"
)

type ValidationErrors map[string]string

func (v ValidationErrors) HasErrors() bool {
	return len(v) > 0
}

func (v ValidationErrors) Add(field, message string) {
	v[field] = message
}

// Error joins the messages in field order so the output is stable.
func (v ValidationErrors) Error() string {
	fields := make([]string, 0, len(v))
	for f := range v {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	msgs := make([]string, 0, len(fields))
	for _, f := range fields {
		msgs = append(msgs, v[f])
	}
	return strings.Join(msgs, "; ")
}

// ValidateSignup only checks presence. Usernames are matched exactly, so no
// trimming or case folding is applied.
func ValidateSignup(username, password string) ValidationErrors {
	errs := make(ValidationErrors)

	if username == "" {
		errs.Add("username", "username is required")
	}
	if password == "" {
		errs.Add("password", "password is required")
	}

	return errs
}

func ValidateMessage(text string) ValidationErrors {
	errs := make(ValidationErrors)

	if text == "" {
		errs.Add("text", "text is required")
	}

	return errs
}
