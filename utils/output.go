package utils

import (
	"encoding/json"
	"fmt"
	"io"

	"gowallet/config"
	wtypes "gowallet/types"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"
)

// Render writes a handler result to w in the configured output format.
// Human output uses the value's own String form when it has one and
// falls back to indented JSON otherwise.
func Render(w io.Writer, cfg *config.Config, v any) error {
	switch cfg.Format {
	case wtypes.FormatJSON:
		d, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal response: %w", err)
		}
		_, err = fmt.Fprintln(w, string(d))
		return err

	case wtypes.FormatYAML:
		d, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("failed to marshal response: %w", err)
		}
		_, err = fmt.Fprint(w, string(d))
		return err

	default:
		if s, ok := v.(fmt.Stringer); ok {
			_, err := fmt.Fprintln(w, s.String())
			return err
		}
		d, _ := json.MarshalIndent(v, "", "  ")
		_, err := fmt.Fprintln(w, string(d))
		return err
	}
}

// Warn prints a highlighted diagnostic line to w.
func Warn(w io.Writer, format string, a ...any) {
	fmt.Fprintln(w, color.YellowString(format, a...))
}
