package transport

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func fieldNames(details []FieldError) []string {
	names := make([]string, 0, len(details))
	for _, d := range details {
		names = append(names, d.Field)
	}
	return names
}

func TestValidate_CreateUser(t *testing.T) {
	details := Validate(CreateUserRequest{})
	require.Len(t, details, 3)
	require.ElementsMatch(t, []string{"email", "password", "name"}, fieldNames(details))

	details = Validate(CreateUserRequest{Email: "bad", Password: "secret123", Name: "A"})
	require.Len(t, details, 1)
	require.Equal(t, "email", details[0].Field)
	require.Equal(t, "must be a valid email address", details[0].Message)

	details = Validate(CreateUserRequest{Email: "a@b.com", Password: "123", Name: "A"})
	require.Len(t, details, 1)
	require.Equal(t, "password", details[0].Field)

	require.Nil(t, Validate(CreateUserRequest{Email: "a@b.com", Password: "secret123", Name: "A"}))
}

func TestValidate_EnumFields(t *testing.T) {
	details := Validate(CreateTaskRequest{ProjectID: 1, Title: "T", Status: "later", Priority: "urgent"})
	require.ElementsMatch(t, []string{"status", "priority"}, fieldNames(details))

	require.Nil(t, Validate(CreateTaskRequest{ProjectID: 1, Title: "T", Status: "in_progress", Priority: "high"}))
}

func TestValidate_ReportsJSONFieldNames(t *testing.T) {
	details := Validate(CreateProjectRequest{Title: "T"})
	require.Len(t, details, 1)
	require.Equal(t, "user_id", details[0].Field)
}

func TestValidate_OptionalUpdateFields(t *testing.T) {
	// Nil pointers are skipped entirely.
	require.Nil(t, Validate(UpdateUserRequest{}))

	bad := "nope"
	details := Validate(UpdateUserRequest{Email: &bad})
	require.Len(t, details, 1)
	require.Equal(t, "email", details[0].Field)
}

func TestEnvelope_Defaults(t *testing.T) {
	env := NewSuccess(nil, "")
	require.True(t, env.Success)
	require.Equal(t, "Success", env.Message)

	env = NewError("NOT_FOUND", "User not found", nil)
	require.False(t, env.Success)
	require.Equal(t, "NOT_FOUND", env.Error.Code)
}
