package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.Log.Development)
	assert.Equal(t, 170, cfg.Eval.MaxFactorial)
	assert.Equal(t, DisplayFormat, cfg.Output.Format)
	assert.NoError(t, cfg.Validate())
}

func TestLoadNoFile(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keycalc.yaml")

	cfg := Default()
	cfg.Log.Level = "warn"
	cfg.Eval.MaxFactorial = 20
	cfg.Output.Format = "%.3f"
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keycalc.yaml")
	writeFile(t, path, "log:\n  level: debug\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	// Unset sections keep their defaults.
	assert.Equal(t, 170, cfg.Eval.MaxFactorial)
	assert.Equal(t, DisplayFormat, cfg.Output.Format)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	_, err := Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.yaml")
	writeFile(t, bad, "log: [\n")
	_, err = Load(bad)
	assert.Error(t, err)

	invalid := filepath.Join(dir, "invalid.yaml")
	writeFile(t, invalid, "log:\n  level: loud\neval:\n  max_factorial: 171\noutput:\n  format: plain\n")
	_, err = Load(invalid)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log.level")
	assert.Contains(t, err.Error(), "eval.max_factorial")
	assert.Contains(t, err.Error(), "output.format")
}

func TestEnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keycalc.yaml")
	writeFile(t, path, "log:\n  level: warn\neval:\n  max_factorial: 20\n")

	t.Run("env beats file", func(t *testing.T) {
		t.Setenv("KEYCALC_LOG_LEVEL", "error")
		t.Setenv("KEYCALC_LOG_DEVELOPMENT", "true")
		t.Setenv("KEYCALC_OUTPUT_FORMAT", "%e")

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "error", cfg.Log.Level)
		assert.True(t, cfg.Log.Development)
		assert.Equal(t, 20, cfg.Eval.MaxFactorial)
		assert.Equal(t, "%e", cfg.Output.Format)
	})

	t.Run("env alone", func(t *testing.T) {
		t.Setenv("KEYCALC_EVAL_MAX_FACTORIAL", "12")

		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, 12, cfg.Eval.MaxFactorial)
		assert.Equal(t, "info", cfg.Log.Level)
	})

	t.Run("bad env", func(t *testing.T) {
		t.Setenv("KEYCALC_EVAL_MAX_FACTORIAL", "many")

		_, err := Load("")
		assert.Error(t, err)
	})
}

func TestValidateFormat(t *testing.T) {
	cases := []struct {
		format string
		ok     bool
	}{
		{DisplayFormat, true},
		{"%g", true},
		{"%.2f", true},
		{"%e", true},
		{"%v", true},
		{"= %8.3f", true},
		{"plain", false},
		{"%d", false},
		{"%s", false},
		{"%%", false},
		{"%g %g", false},
	}
	for _, c := range cases {
		cfg := Default()
		cfg.Output.Format = c.format
		err := cfg.Validate()
		if c.ok {
			assert.NoError(t, err, "format %q", c.format)
		} else {
			assert.ErrorContains(t, err, "output.format", "format %q", c.format)
		}
	}
}

func TestMarshal(t *testing.T) {
	cfg := Default()
	cfg.Eval.MaxFactorial = 9
	data, err := cfg.Marshal()
	require.NoError(t, err)
	assert.Contains(t, string(data), "max_factorial: 9")

	path := filepath.Join(t.TempDir(), "keycalc.yaml")
	writeFile(t, path, string(data))
	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
