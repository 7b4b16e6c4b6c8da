package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type optionalPayload struct {
	Description Optional[string]    `json:"description"`
	DueDate     Optional[time.Time] `json:"due_date"`
}

func TestOptional_AbsentField(t *testing.T) {
	var p optionalPayload
	require.NoError(t, json.Unmarshal([]byte(`{}`), &p))

	require.False(t, p.Description.Present)
	require.False(t, p.DueDate.Present)
}

func TestOptional_ExplicitNull(t *testing.T) {
	var p optionalPayload
	require.NoError(t, json.Unmarshal([]byte(`{"description": null, "due_date": null}`), &p))

	require.True(t, p.Description.Present)
	require.False(t, p.Description.Valid)
	require.True(t, p.DueDate.Present)
	require.False(t, p.DueDate.Valid)
}

func TestOptional_EmptyStringIsAValue(t *testing.T) {
	var p optionalPayload
	require.NoError(t, json.Unmarshal([]byte(`{"description": ""}`), &p))

	require.True(t, p.Description.Present)
	require.True(t, p.Description.Valid)
	require.Equal(t, "", p.Description.Value)
}

func TestOptional_Value(t *testing.T) {
	var p optionalPayload
	require.NoError(t, json.Unmarshal([]byte(`{"description": "d", "due_date": "2026-03-01T12:00:00Z"}`), &p))

	require.True(t, p.Description.Valid)
	require.Equal(t, "d", p.Description.Value)
	require.True(t, p.DueDate.Valid)
	require.Equal(t, time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC), p.DueDate.Value)
}

func TestOptional_Constructors(t *testing.T) {
	s := Some("x")
	require.True(t, s.Present)
	require.True(t, s.Valid)

	n := Null[string]()
	require.True(t, n.Present)
	require.False(t, n.Valid)
}
