package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_MatchesOriginalRoom(t *testing.T) {
	cfg := Default()

	assert.Equal(t, []string{"ERR_404", "ERR_500", "ERR_TIMEOUT"}, cfg.ErrorSequence)
	assert.Equal(t, "404500TIMEOUT", cfg.SafeCode)
	assert.Equal(t, [DialCount]int{4, 0, 2}, cfg.RestartDialSequence)
	assert.Equal(t, [ButtonCount]string{"INIT", "VERIFY", "RESTART"}, cfg.RestartButtonSequence)
	assert.Len(t, cfg.CodeErrors, 4)
	assert.Len(t, cfg.ErrorLog, 3)
	require.NoError(t, cfg.Validate())
}

func TestDeriveSafeCode(t *testing.T) {
	assert.Equal(t, "404500TIMEOUT", DeriveSafeCode(Default().ErrorSequence))
	assert.Equal(t, "12ERR_AB", DeriveSafeCode([]string{" ERR_12", "err_ab"}), "only the upper-case prefix is stripped")
	assert.Equal(t, "", DeriveSafeCode(nil))
}

func TestValidate_ReportsEveryProblem(t *testing.T) {
	cfg := Default()
	cfg.ErrorSequence = nil
	cfg.SafeCode = "  "
	cfg.RestartDialSequence = [DialCount]int{10, -1, 2}
	cfg.RestartButtonSequence = [ButtonCount]string{"INIT", "", "SHUTDOWN"}

	err := cfg.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalid)
	for _, want := range []string{
		"error_sequence is empty",
		"safe_code is empty",
		"restart_dial_sequence[0] = 10",
		"restart_dial_sequence[1] = -1",
		"restart_button_sequence[1] is empty",
		`"SHUTDOWN" is missing`,
	} {
		assert.Contains(t, err.Error(), want)
	}
}

func TestPanelLabels_DisplayOrderWithoutDuplicates(t *testing.T) {
	cfg := Default()
	assert.Equal(t, []string{"VERIFY", "RESTART", "INIT"}, cfg.PanelLabels())

	cfg.RestartPanelLayout = [ButtonCount]string{"A", "A", ""}
	assert.Equal(t, []string{"A"}, cfg.PanelLabels())
}

func TestParse_EmptyDocumentKeepsDefaults(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParse_OverridesAndDerivesSafeCode(t *testing.T) {
	cfg, err := Parse([]byte(`
error_sequence: [ERR_418, ERR_503]
restart_dial_sequence: [1, 2, 3]
restart_button_sequence: [VERIFY, INIT, RESTART]
`))
	require.NoError(t, err)
	assert.Equal(t, "418503", cfg.SafeCode)
	assert.Equal(t, [DialCount]int{1, 2, 3}, cfg.RestartDialSequence)
	assert.Equal(t, [ButtonCount]string{"VERIFY", "INIT", "RESTART"}, cfg.RestartButtonSequence)
	assert.Equal(t, Default().AccessKeySerial, cfg.AccessKeySerial)
}

func TestParse_ExplicitSafeCodeWins(t *testing.T) {
	cfg, err := Parse([]byte("safe_code: OPENSESAME\n"))
	require.NoError(t, err)
	assert.Equal(t, "OPENSESAME", cfg.SafeCode)
}

func TestParse_Rejects(t *testing.T) {
	tests := map[string]string{
		"unknown key":      "dials: [1, 2, 3]\n",
		"short dial array": "restart_dial_sequence: [1, 2]\n",
		"dial out of range": "restart_dial_sequence: [1, 2, 30]\n",
		"not yaml":         "restart_dial_sequence: [\n",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "room.yaml")
	require.NoError(t, os.WriteFile(path, []byte("access_key_serial: AK-2030-1234\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "AK-2030-1234", cfg.AccessKeySerial)
	assert.Equal(t, "404500TIMEOUT", cfg.SafeCode)
}
