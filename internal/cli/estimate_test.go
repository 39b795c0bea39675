package cli_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/digicarbon/digicarbon/internal/survey"
)

type estimateJSON struct {
	RecordID string `json:"record_id"`
	Daily    struct {
		Total    float64 `json:"total"`
		Devices  float64 `json:"devices"`
		Charging float64 `json:"charging"`
	} `json:"daily"`
	Projection struct {
		AnnualKg     float64 `json:"annual_kg"`
		CostEstimate float64 `json:"cost_estimate"`
	} `json:"projection"`
	Currency     string `json:"currency"`
	SelfEstimate *struct {
		Outcome string `json:"outcome"`
	} `json:"self_estimate"`
	Quiz struct {
		Answered int `json:"answered"`
	} `json:"quiz"`
	Warnings []survey.Warning `json:"warnings"`
}

func decodeEstimate(t *testing.T, out string) estimateJSON {
	t.Helper()
	var got estimateJSON
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	return got
}

func TestEstimate_JSON(t *testing.T) {
	setupCLITest(t)
	path := writeFile(t, "answers.yaml", laptopAnswers)

	out, _, err := execute(t, "", "estimate", "--answers", path, "--output", "json")
	require.NoError(t, err)

	got := decodeEstimate(t, out)
	assert.InDelta(t, 0.722, got.Daily.Total, 0.01)
	assert.InDelta(t, got.Daily.Devices*0.2, got.Daily.Charging, 1e-12)
	assert.InDelta(t, got.Daily.Total*365, got.Projection.AnnualKg, 1e-9)
	assert.InDelta(t, got.Projection.AnnualKg*3, got.Projection.CostEstimate, 1e-9)
	assert.Equal(t, "INR", got.Currency)
	require.NotNil(t, got.SelfEstimate)
	assert.Equal(t, 1, got.Quiz.Answered)
	assert.Empty(t, got.RecordID)
}

func TestEstimate_Stdin(t *testing.T) {
	setupCLITest(t)

	in := `{"streamingEntertainmentHours":"10-20 hours"}`
	out, _, err := execute(t, in, "estimate", "--answers", "-", "--output", "json",
		"--price-per-tonne", "25", "--currency", "USD")
	require.NoError(t, err)

	got := decodeEstimate(t, out)
	assert.InDelta(t, 15*0.055/7, got.Daily.Total, 1e-12)
	assert.InDelta(t, got.Projection.AnnualKg*25/1000, got.Projection.CostEstimate, 1e-12)
	assert.Equal(t, "USD", got.Currency)
}

func TestEstimate_Table(t *testing.T) {
	setupCLITest(t)
	path := writeFile(t, "answers.yaml", laptopAnswers)

	out, _, err := execute(t, "", "estimate", "--answers", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Digital Carbon Footprint")
	assert.Contains(t, out, "kg/day")
	assert.Contains(t, out, "₹")
	assert.Contains(t, out, "Self-estimate:")
}

func TestEstimate_ClampsAndReports(t *testing.T) {
	setupCLITest(t)
	path := writeFile(t, "answers.yaml", "devices:\n  - type: Laptop\n    count: 1\n    hoursPerDay: 30\n")

	out, _, err := execute(t, "", "estimate", "--answers", path, "--output", "json")
	require.NoError(t, err)
	got := decodeEstimate(t, out)
	require.Len(t, got.Warnings, 1)
	assert.Equal(t, "devices[0].hoursPerDay", got.Warnings[0].Field)

	_, _, err = execute(t, "", "estimate", "--answers", path, "--strict")
	require.ErrorIs(t, err, survey.ErrSchemaViolation)
}

func TestEstimate_Errors(t *testing.T) {
	setupCLITest(t)

	_, _, err := execute(t, "", "estimate")
	require.Error(t, err, "--answers is required")

	_, _, err = execute(t, "", "estimate", "--answers", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	bad := writeFile(t, "v2.yaml", "schema_version: 2.0.0\n")
	_, _, err = execute(t, "", "estimate", "--answers", bad)
	require.ErrorIs(t, err, survey.ErrUnsupportedSchema)

	path := writeFile(t, "answers.yaml", laptopAnswers)
	_, _, err = execute(t, "", "estimate", "--answers", path, "--output", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported output format")
}

func TestEstimate_Record(t *testing.T) {
	home := setupCLITest(t)
	path := writeFile(t, "answers.yaml", laptopAnswers)

	out, stderr, err := execute(t, "", "estimate", "--answers", path, "--output", "json", "--record")
	require.NoError(t, err)
	got := decodeEstimate(t, out)
	require.NotEmpty(t, got.RecordID)
	assert.Contains(t, stderr, got.RecordID)

	f, err := os.Open(filepath.Join(home, "records.jsonl"))
	require.NoError(t, err)
	defer f.Close()
	records, err := survey.ReadRecords(f)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, got.RecordID, records[0].ID)
	assert.InDelta(t, got.Daily.Total, records[0].Result.Total, 1e-12)
}

func TestEstimate_RecordWithoutConsent(t *testing.T) {
	setupCLITest(t)
	noConsent := strings.Replace(laptopAnswers, "researchConsent: true", "researchConsent: false", 1)
	path := writeFile(t, "answers.yaml", noConsent)

	_, _, err := execute(t, "", "estimate", "--answers", path, "--record")
	require.ErrorIs(t, err, survey.ErrNoConsent)
}
