package commands_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moneyovertime/mot/internal/config"
)

var binaryPath string

func TestMain(m *testing.M) {
	// Build the binary once for all tests.
	tmpDir, err := os.MkdirTemp("", "mot-test-*")
	if err != nil {
		panic(err)
	}

	binaryPath = filepath.Join(tmpDir, "mot")
	cmd := exec.Command("go", "build", "-o", binaryPath, "../../cmd/mot")
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		os.RemoveAll(tmpDir)
		panic("failed to build binary: " + err.Error())
	}

	code := m.Run()
	os.RemoveAll(tmpDir)
	os.Exit(code)
}

func runMot(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut strings.Builder
	cmd := exec.Command(binaryPath, args...)
	cmd.Stdout = &out
	cmd.Stderr = &errOut
	err = cmd.Run()
	return out.String(), errOut.String(), err
}

func exitCode(t *testing.T, err error) int {
	t.Helper()
	var exitErr *exec.ExitError
	require.ErrorAs(t, err, &exitErr)
	return exitErr.ExitCode()
}

func TestBinary_Plot(t *testing.T) {
	out, _, err := runMot(t, "plot", "-f", "../../testdata/movements_trailing_comma.csv", "-o", "csv")
	require.NoError(t, err)
	assert.Equal(t, "date,balance\n15/06/2024,65.00\n16/06/2024,50.00\n17/06/2024,1175.00\n01/07/2024,1177.00\n", out)
}

func TestBinary_PlotBOMAndCRLF(t *testing.T) {
	out, _, err := runMot(t, "plot", "-f", "../../testdata/ledger_bom.csv",
		"--date-label", "Date", "--amount-label", "Amount", "--date-format", "%Y-%m-%d", "-o", "csv")
	require.NoError(t, err)
	assert.Equal(t, "date,balance\n2024-01-01,10.00\n2024-01-03,17.50\n", out)
}

func TestBinary_FileNotFound(t *testing.T) {
	out, stderr, err := runMot(t, "plot", "-f", "does-not-exist.csv")
	assert.Equal(t, 1, exitCode(t, err))
	assert.Empty(t, out)
	assert.Equal(t, "File not found!\n", stderr)
}

func TestBinary_DiffBadLabel(t *testing.T) {
	_, stderr, err := runMot(t, "diff",
		"--source-file", "../../testdata/movements_default.csv",
		"--source-amount-label", "total",
		"--reference-file", "../../testdata/movements_scenario.csv")
	assert.Equal(t, 1, exitCode(t, err))
	assert.Contains(t, stderr, "Error reading the files, check if arguments are correct, use --help for more.")
	assert.NotContains(t, stderr, "total")
}

func TestBinary_DiffVerbose(t *testing.T) {
	_, stderr, err := runMot(t, "-v", "diff",
		"--source-file", "../../testdata/movements_default.csv",
		"--source-amount-label", "total",
		"--reference-file", "../../testdata/movements_scenario.csv")
	assert.Equal(t, 1, exitCode(t, err))
	assert.Contains(t, stderr, "total")
}

func TestBinary_ConfigInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "mot.yaml")
	out, _, err := runMot(t, "config", "init", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.BuiltinSource(), cfg.Defaults)
	assert.Contains(t, cfg.ProfileNames(), "bank")
}

func TestBinary_Version(t *testing.T) {
	out, _, err := runMot(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "commit:")
}
