package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"dispatch_service/internal/adapter/http/middleware"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("ROUTING_PROVIDER", "straight_line")
	t.Setenv("LOG_FILE", filepath.Join(t.TempDir(), "dispatchctl.log"))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() { rootCmd.SetArgs(nil) })
	err := rootCmd.Execute()
	return out.String(), err
}

func TestSweep_Memory(t *testing.T) {
	out, err := run(t, "sweep")
	require.NoError(t, err)
	assert.Contains(t, out, "expired 0 suggestions")
}

func TestTablesCreate_RequiresDynamoDB(t *testing.T) {
	_, err := run(t, "tables", "create")
	assert.ErrorIs(t, err, errNeedsDynamoDB)
}

func TestJobs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jobs.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
jobs:
  - id: job-1
    business_id: biz-1
    vertical: plumbing
    location: {longitude: -97.7, latitude: 30.2}
`), 0o600))

	out, err := run(t, "jobs", "validate", path)
	require.NoError(t, err)
	assert.Contains(t, out, "job-1")
	assert.Contains(t, out, "1 jobs ok")

	_, err = run(t, "jobs", "import", path)
	assert.ErrorIs(t, err, errNeedsDynamoDB)

	_, err = run(t, "jobs", "validate", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestOptimize_UnknownTechnician(t *testing.T) {
	_, err := run(t, "optimize", "--business", "biz-1", "--tech", "nobody", "--date", "2025-03-03")
	assert.ErrorContains(t, err, "not found")
}

func TestToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	out, err := run(t, "token", "--business", "biz-9", "--subject", "ops")
	require.NoError(t, err)

	claims, err := middleware.ParseToken(strings.TrimSpace(out), "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "biz-9", claims.BusinessID)
	assert.Equal(t, "ops", claims.Subject)
}

func TestToken_RequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	_, err := run(t, "token", "--business", "biz-9")
	assert.ErrorContains(t, err, "JWT_SECRET")
}
