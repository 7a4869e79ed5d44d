package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/getarg/internal/app"
)

func parse(t *testing.T, args ...string) (*app.Config, string, bool, error) {
	t.Helper()
	out := &bytes.Buffer{}
	cfg, reg, shouldExit, err := Parse(append([]string{"getarg"}, args...), out)
	require.NotNil(t, reg, "the registry is always returned")
	return cfg, out.String(), shouldExit, err
}

func TestParse_Defaults(t *testing.T) {
	cfg, _, shouldExit, err := parse(t)

	require.NoError(t, err)
	require.False(t, shouldExit)
	assert.Equal(t, &app.Config{
		LogFormat:       "text",
		LogLevel:        "info",
		ReportFormat:    "text",
		PrintArgs:       true,
		Evals:           nil,
		HealthcheckPort: 0,
	}, cfg)
}

func TestParse_AllFlags(t *testing.T) {
	cfg, _, shouldExit, err := parse(t,
		"--format=YAML",
		"-loglevel=debug",
		"-logformat=json",
		"-healthcheckport=8080",
		"-eval=flag(\"-x\")",
		"-eval=num(\"-y\", 1)",
		"-printargs",
		"positional",
	)

	require.NoError(t, err)
	require.False(t, shouldExit)
	assert.Equal(t, "yaml", cfg.ReportFormat)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 8080, cfg.HealthcheckPort)
	assert.Equal(t, []string{`flag("-x")`, `num("-y", 1)`}, cfg.Evals)
	assert.True(t, cfg.PrintArgs)
}

func TestParse_PrintArgs(t *testing.T) {
	testCases := []struct {
		name     string
		args     []string
		expected bool
	}{
		{name: "default on", args: nil, expected: true},
		{name: "negated", args: []string{"-noprintargs"}, expected: false},
		{name: "eval turns it off", args: []string{"-eval=1"}, expected: false},
		{name: "explicit wins over eval", args: []string{"-eval=1", "-printargs"}, expected: true},
		{name: "cancelled negation wins over eval", args: []string{"-eval=1", "-noprintargs=0"}, expected: true},
		{name: "explicit zero", args: []string{"-printargs=0"}, expected: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, _, _, err := parse(t, tc.args...)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, cfg.PrintArgs)
		})
	}
}

func TestParse_Help(t *testing.T) {
	for _, flag := range []string{"-help", "--help", "-h", "-?"} {
		t.Run(flag, func(t *testing.T) {
			cfg, out, shouldExit, err := parse(t, flag)
			require.NoError(t, err)
			assert.True(t, shouldExit)
			assert.Nil(t, cfg)
			assert.Contains(t, out, "Usage:")
		})
	}

	t.Run("negated help", func(t *testing.T) {
		_, out, shouldExit, err := parse(t, "-nohelp")
		require.NoError(t, err)
		assert.False(t, shouldExit)
		assert.Empty(t, out)
	})
}

func TestParse_Invalid(t *testing.T) {
	testCases := []struct {
		name     string
		args     []string
		contains string
	}{
		{name: "log format", args: []string{"-logformat=xml"}, contains: "invalid logformat"},
		{name: "log level", args: []string{"-loglevel=trace"}, contains: "invalid loglevel"},
		{name: "report format", args: []string{"-format=xml"}, contains: "invalid report format"},
		{name: "port", args: []string{"-healthcheckport=70000"}, contains: "invalid healthcheck port"},
		{name: "empty eval", args: []string{"-eval="}, contains: "is empty"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, _, shouldExit, err := parse(t, tc.args...)
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.False(t, shouldExit)

			var exitErr *ExitError
			require.ErrorAs(t, err, &exitErr)
			assert.Equal(t, 2, exitErr.Code)
			assert.Contains(t, exitErr.Message, tc.contains)
		})
	}
}

func TestParse_MalformedPortDisablesServer(t *testing.T) {
	cfg, _, _, err := parse(t, "-healthcheckport=abc")
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.HealthcheckPort)
}
