package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/getarg/internal/app"
	"github.com/vk/getarg/internal/argreg"
	"github.com/vk/getarg/internal/report"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

const usage = `
getarg - inspect how a command line resolves into typed flag values.

Usage:
  getarg [flags]

Every -name or --name token is recorded; -name=value sets a value and
-noname negates a boolean. Unknown flags are accepted and reported.

Options:
  -format=text|json|yaml      Report format (default text).
  -printargs                  Write the resolved flag report (default on;
                              off when -eval is given).
  -eval=EXPR                  Evaluate an HCL expression against the flags.
                              Can be repeated. Functions: flag, flag_or,
                              str, num, has, values; variable: args.
  -healthcheckport=N          Serve /health, /args and /metrics on port N
                              until interrupted. 0 disables.
  -logformat=text|json        Log output format (default text).
  -loglevel=LEVEL             debug, info, warn or error (default info).
  -help, -h, -?               Show this help.
`

// Parse processes the full argument vector, argv[0] included. It returns the
// populated registry together with the application config, a boolean
// indicating if the program should exit cleanly, or an ExitError.
func Parse(argv []string, output io.Writer) (*app.Config, *argreg.Registry, bool, error) {
	slog.Debug("CLI parser started.")
	reg := argreg.Parse(argv)
	slog.Debug("Arguments parsed successfully.", "flags", reg.Len())

	if reg.GetBool("-help") || reg.GetBool("-h") || reg.GetBool("-?") {
		fmt.Fprint(output, usage)
		return nil, reg, true, nil
	}

	// Expression runs print only their results unless the report was asked
	// for explicitly in either form.
	if reg.Has("-eval") && !reg.Has("-noprintargs") {
		reg.SoftSetBool("-printargs", false)
	}

	logFormat := strings.ToLower(reg.GetString("-logformat", "text"))
	if logFormat != "text" && logFormat != "json" {
		return nil, reg, false, &ExitError{Code: 2, Message: "invalid logformat: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(reg.GetString("-loglevel", "info"))
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, reg, false, &ExitError{Code: 2, Message: "invalid loglevel: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		LogFormat:       logFormat,
		LogLevel:        logLevel,
		ReportFormat:    strings.ToLower(reg.GetString("-format", report.FormatText)),
		PrintArgs:       reg.GetBoolDefault("-printargs", true),
		Evals:           reg.Values("-eval"),
		HealthcheckPort: int(reg.GetInt("-healthcheckport", 0)),
	})
	if err != nil {
		return nil, reg, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, reg, false, nil
}
