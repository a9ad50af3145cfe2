package jobfile

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"dispatch_service/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
jobs:
  - id: job-1
    business_id: biz-1
    vertical: HVAC
    service_type: service
    required_certifications: [epa_608]
    location: {longitude: -97.74, latitude: 30.27}
    preferred_tech_id: tech-a
    estimated_hours: 1.5
  - id: job-2
    business_id: biz-1
    vertical: cleaning
`

func TestParse(t *testing.T) {
	jobs, err := Parse([]byte(sample))
	require.NoError(t, err)
	require.Len(t, jobs, 2)

	assert.Equal(t, entities.VerticalHVAC, jobs[0].Vertical)
	assert.Equal(t, entities.ServiceTypeService, jobs[0].ServiceType)
	require.NotNil(t, jobs[0].Location)
	assert.InDelta(t, 30.27, jobs[0].Location.Latitude, 1e-9)
	assert.Equal(t, 1.5, jobs[0].Hours())

	assert.Nil(t, jobs[1].Location)
	assert.Equal(t, entities.VerticalCleaning.Capabilities().DefaultJobHours, jobs[1].Hours())
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"missing id", "jobs:\n  - business_id: biz-1\n    vertical: hvac\n"},
		{"missing business", "jobs:\n  - id: j\n    vertical: hvac\n"},
		{"unknown vertical", "jobs:\n  - id: j\n    business_id: b\n    vertical: roofing\n"},
		{"bad coordinates", "jobs:\n  - id: j\n    business_id: b\n    vertical: hvac\n    location: {longitude: 0, latitude: 91}\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			require.Error(t, err)
			assert.True(t, errors.Is(err, entities.ErrValidation))
		})
	}

	_, err := Parse([]byte("jobs:\n  - id: j\n    business_id: b\n    vertical: hvac\n  - id: j\n    business_id: b\n    vertical: hvac\n"))
	assert.ErrorContains(t, err, "duplicate")

	_, err = Parse([]byte("jobs: ["))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jobs.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))

	jobs, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, jobs, 2)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
