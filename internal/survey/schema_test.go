package survey

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_Accepts(t *testing.T) {
	require.NoError(t, Validate(strings.NewReader(laptopYAML)))
	require.NoError(t, Validate(strings.NewReader(`{"devices":[{"type":"Tablet","count":1}],"streamingAcademicHours":"made up label"}`)))
}

func TestValidate_Rejects(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"hours above 24", "devices:\n  - type: Laptop\n    hoursPerDay: 30\n"},
		{"negative count", "devices:\n  - type: Laptop\n    count: -1\n"},
		{"fractional count", `{"devices":[{"type":"Laptop","count":1.5}]}`},
		{"device without type", "devices:\n  - count: 1\n"},
		{"quiz out of range", "quiz:\n  quizAiUsageImpact: 11\n"},
		{"age too low", "age: 5\n"},
		{"consent not boolean", `{"researchConsent":"yes"}`},
		{"label not string", "primaryPowerSource: 3\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(strings.NewReader(tt.in))
			require.ErrorIs(t, err, ErrSchemaViolation)
		})
	}
}

func TestValidate_BadInput(t *testing.T) {
	assert.ErrorIs(t, Validate(strings.NewReader("")), ErrEmptyInput)

	err := Validate(strings.NewReader("devices: ["))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrSchemaViolation)
}
