package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/bcomnes/semver-bump/internal/config"
	semverbump "github.com/bcomnes/semver-bump/pkg"
)

// writeResult prints res in the given format. The text format is just the new
// version so the command composes in shell pipelines.
func writeResult(w io.Writer, format string, res semverbump.Result) error {
	switch format {
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(res), "failed to write json output")
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(res); err != nil {
			return errors.Wrap(err, "failed to write yaml output")
		}
		return enc.Close()
	default:
		_, err := fmt.Fprintln(w, res.Next)
		return err
	}
}
