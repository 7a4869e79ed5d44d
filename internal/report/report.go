// Package report resolves every parsed flag of a registry into its typed
// views and renders the result as text, JSON or YAML.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/vk/getarg/internal/argreg"
	"gopkg.in/yaml.v3"
)

// Output formats understood by Write.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Entry is the resolved view of one flag.
type Entry struct {
	Name        string   `json:"name" yaml:"name"`
	String      string   `json:"string" yaml:"string"`
	Int         int64    `json:"int" yaml:"int"`
	Bool        bool     `json:"bool" yaml:"bool"`
	Occurrences []string `json:"occurrences" yaml:"occurrences"`
}

// Build resolves every flag in reg, sorted by name.
func Build(reg *argreg.Registry) []Entry {
	names := reg.Names()
	entries := make([]Entry, 0, len(names))
	for _, name := range names {
		entries = append(entries, Entry{
			Name:        name,
			String:      reg.GetString(name, ""),
			Int:         reg.GetInt(name, 0),
			Bool:        reg.GetBool(name),
			Occurrences: reg.Values(name),
		})
	}
	return entries
}

// Write renders entries to w in the given format.
func Write(w io.Writer, format string, entries []Entry) error {
	switch strings.ToLower(format) {
	case FormatText:
		return writeText(w, entries)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(entries); err != nil {
			return fmt.Errorf("failed to encode json report: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(entries); err != nil {
			return fmt.Errorf("failed to encode yaml report: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("failed to encode yaml report: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unknown report format %q", format)
	}
}

func writeText(w io.Writer, entries []Entry) error {
	if len(entries) == 0 {
		_, err := fmt.Fprintln(w, "(no flags)")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "FLAG\tSTRING\tINT\tBOOL\tOCCURRENCES")
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%q\t%d\t%t\t%d\n", e.Name, e.String, e.Int, e.Bool, len(e.Occurrences))
	}
	return tw.Flush()
}
