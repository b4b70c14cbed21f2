package conf

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/byte4ever/cgen/templating"
)

// Reserved keys selecting the three paths.
const (
	KeyTemplateFile = "template-file"
	KeyHeaderFile   = "header-file"
	KeySourceFile   = "source-file"
)

const whitespace = " \t\n\v\f\r"

// Load reads the configuration at path. The format is
// chosen by extension: .yaml and .yml are YAML, .json is
// JSON, anything else is the plain key = value format.
func Load(path string) (templating.Request, error) {
	const errCtx = "loading config"

	fi, err := os.Open(path) //nolint:gosec // path from CLI argument
	if err != nil {
		return templating.Request{}, fmt.Errorf(
			"%s: %w: %w",
			errCtx, templating.ErrConfigUnreadable, err,
		)
	}

	defer fi.Close() //nolint:errcheck // read-only handle

	var req templating.Request

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		req, err = ParseYAML(fi)
	case ".json":
		req, err = ParseJSON(fi)
	default:
		req, err = Parse(fi)
	}

	if err != nil {
		return templating.Request{}, fmt.Errorf(
			"%s: %s: %w", errCtx, path, err,
		)
	}

	slog.Debug(
		"loaded config",
		"path", path,
		"template", req.TemplateFile,
		"keys", len(req.KeyValues),
	)

	return req, nil
}

// Parse reads the plain format. Lines without '=' are
// ignored. Each line is split at its first '=' and both
// sides are trimmed.
func Parse(rd io.Reader) (templating.Request, error) {
	const errCtx = "parsing config"

	var req templating.Request

	err := templating.EachLine(
		rd, templating.ConfigBufSize,
		func(line string) error {
			key, value, found := strings.Cut(line, "=")
			if !found {
				return nil
			}

			set(
				&req,
				strings.Trim(key, whitespace),
				strings.Trim(value, whitespace),
			)

			return nil
		},
	)
	if err != nil {
		return templating.Request{}, fmt.Errorf(
			"%s: %w: %w",
			errCtx, templating.ErrConfigMalformed, err,
		)
	}

	if err := validate(req); err != nil {
		return templating.Request{}, fmt.Errorf(
			"%s: %w", errCtx, err,
		)
	}

	return req, nil
}

// set assigns a reserved path or appends a substitution.
func set(req *templating.Request, key, value string) {
	switch key {
	case KeyTemplateFile:
		req.TemplateFile = value
	case KeyHeaderFile:
		req.HeaderFile = value
	case KeySourceFile:
		req.SourceFile = value
	default:
		req.KeyValues = append(
			req.KeyValues,
			templating.KeyValue{Key: key, Value: value},
		)
	}
}

// validate checks that all three paths are present.
func validate(req templating.Request) error {
	var missing []string

	for _, pa := range []struct {
		key   string
		value string
	}{
		{KeyTemplateFile, req.TemplateFile},
		{KeyHeaderFile, req.HeaderFile},
		{KeySourceFile, req.SourceFile},
	} {
		if pa.value == "" {
			missing = append(missing, pa.key)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf(
			"%w: missing %s",
			templating.ErrConfigMalformed,
			strings.Join(missing, ", "),
		)
	}

	return nil
}
