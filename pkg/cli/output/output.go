// Package output renders generated command vectors for the terminal or for machines.
package output

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"al.essio.dev/pkg/shellescape"
	"sigs.k8s.io/yaml"
)

// ErrInvalidFormat is returned when an unknown output format is requested.
var ErrInvalidFormat = errors.New("invalid output format")

// Format selects how commands are rendered.
type Format string

const (
	// FormatShell renders one shell-quoted command per line, grouped by environment.
	FormatShell Format = "shell"
	// FormatJSON renders a JSON array of CommandSet.
	FormatJSON Format = "json"
	// FormatYAML renders a YAML list of CommandSet.
	FormatYAML Format = "yaml"
)

// ValidFormats returns the supported formats.
func ValidFormats() []Format {
	return []Format{FormatShell, FormatJSON, FormatYAML}
}

// Set for Format (pflag.Value interface).
func (f *Format) Set(value string) error {
	for _, format := range ValidFormats() {
		if strings.EqualFold(value, string(format)) {
			*f = format

			return nil
		}
	}

	return fmt.Errorf("%w: %s (valid options: %s, %s, %s)",
		ErrInvalidFormat, value, FormatShell, FormatJSON, FormatYAML)
}

// String returns the string representation of the Format.
func (f *Format) String() string {
	return string(*f)
}

// Type returns the type name for pflag.
func (f *Format) Type() string {
	return "Format"
}

// CommandSet is the list of commands that initialise one environment.
type CommandSet struct {
	Environment string     `json:"environment"`
	Commands    [][]string `json:"commands"`
}

// Render writes sets to writer in format.
func Render(writer io.Writer, format Format, sets []CommandSet) error {
	switch format {
	case FormatShell, "":
		return renderShell(writer, sets)
	case FormatJSON:
		data, err := json.MarshalIndent(normalize(sets), "", "  ")
		if err != nil {
			return fmt.Errorf("marshal commands to json: %w", err)
		}

		return write(writer, append(data, '\n'))
	case FormatYAML:
		data, err := yaml.Marshal(normalize(sets))
		if err != nil {
			return fmt.Errorf("marshal commands to yaml: %w", err)
		}

		return write(writer, data)
	default:
		return fmt.Errorf("%w: %s", ErrInvalidFormat, format)
	}
}

// ShellLine joins a command vector into a single shell-safe line.
func ShellLine(command []string) string {
	return shellescape.QuoteCommand(command)
}

func renderShell(writer io.Writer, sets []CommandSet) error {
	var builder strings.Builder

	for i, set := range sets {
		if i > 0 {
			builder.WriteString("\n")
		}

		if set.Environment != "" {
			fmt.Fprintf(&builder, "# %s\n", set.Environment)
		}

		for _, command := range set.Commands {
			builder.WriteString(ShellLine(command))
			builder.WriteString("\n")
		}
	}

	return write(writer, []byte(builder.String()))
}

// normalize replaces nil command lists so machine output always has an array.
func normalize(sets []CommandSet) []CommandSet {
	normalized := make([]CommandSet, len(sets))

	for i, set := range sets {
		if set.Commands == nil {
			set.Commands = [][]string{}
		}

		normalized[i] = set
	}

	return normalized
}

func write(writer io.Writer, data []byte) error {
	_, err := writer.Write(data)
	if err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	return nil
}
