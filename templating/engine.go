package templating

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/valyala/fasttemplate"

	"github.com/byte4ever/cgen/digester"
)

// DefaultBanner is the first line of every generated
// file unless Engine.Banner overrides it.
const DefaultBanner = "/* This file is generated by the cgen program." +
	" Do not edit. */\n"

// includeTpl renders the directive that makes the source
// file include its header, written right after the
// banner.
var includeTpl = fasttemplate.New(
	"\n#include \"{{header}}\"\n", "{{", "}}",
)

// Request describes one specialization run.
type Request struct {
	// TemplateFile is the template to read.
	TemplateFile string

	// HeaderFile receives declarations. Its path is also
	// what the source file includes, verbatim.
	HeaderFile string

	// SourceFile receives definitions.
	SourceFile string

	// KeyValues are applied in order to every content
	// line.
	KeyValues []KeyValue
}

// Engine specializes templates into header and source
// files.
type Engine struct {
	// Banner replaces DefaultBanner when non-empty. A
	// missing trailing newline is added.
	Banner string
}

// Run specializes req.TemplateFile into req.HeaderFile
// and req.SourceFile. Outputs are truncated first; on
// failure they are left partially written and must be
// treated as invalid by the caller.
func (en *Engine) Run(req Request) (retErr error) {
	const errCtx = "running specialization"

	tpl, err := os.Open(req.TemplateFile)
	if err != nil {
		return fmt.Errorf(
			"%s: %w: %w", errCtx, ErrTemplateUnreadable, err,
		)
	}

	defer tpl.Close() //nolint:errcheck // read-only handle

	header, closeHeader, err := openOutput(req.HeaderFile)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	defer func() {
		if closeErr := closeHeader(); closeErr != nil && retErr == nil {
			retErr = fmt.Errorf("%s: %w", errCtx, closeErr)
		}
	}()

	source, closeSource, err := openOutput(req.SourceFile)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	defer func() {
		if closeErr := closeSource(); closeErr != nil && retErr == nil {
			retErr = fmt.Errorf("%s: %w", errCtx, closeErr)
		}
	}()

	if err := en.generate(tpl, header, source, req); err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	return nil
}

// Check generates req in memory and compares the result
// with the header and source files on disk. Nothing is
// written. It returns an error wrapping ErrStale when
// either file is missing or differs.
func (en *Engine) Check(req Request) error {
	const errCtx = "checking generated files"

	tpl, err := os.Open(req.TemplateFile)
	if err != nil {
		return fmt.Errorf(
			"%s: %w: %w", errCtx, ErrTemplateUnreadable, err,
		)
	}

	defer tpl.Close() //nolint:errcheck // read-only handle

	var header, source bytes.Buffer

	if err := en.generate(tpl, &header, &source, req); err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	var stale []string

	for _, out := range []struct {
		path string
		data []byte
	}{
		{req.HeaderFile, header.Bytes()},
		{req.SourceFile, source.Bytes()},
	} {
		ok, err := digester.Matches(out.path, out.data)
		if err != nil {
			return fmt.Errorf("%s: %w", errCtx, err)
		}

		if !ok {
			stale = append(stale, out.path)
		}
	}

	if len(stale) > 0 {
		return fmt.Errorf(
			"%s: %w: %s",
			errCtx, ErrStale, strings.Join(stale, ", "),
		)
	}

	return nil
}

// generate writes the preambles and specializes tpl.
func (en *Engine) generate(
	tpl io.Reader,
	header io.Writer,
	source io.Writer,
	req Request,
) error {
	banner := en.banner()

	if err := writeLine(header, "header", banner); err != nil {
		return err
	}

	if err := writeLine(source, "source", banner); err != nil {
		return err
	}

	include := includeTpl.ExecuteString(map[string]interface{}{
		"header": req.HeaderFile,
	})

	if err := writeLine(source, "source", include); err != nil {
		return err
	}

	return Specialize(tpl, header, source, req.KeyValues)
}

// banner returns the configured banner, falling back to
// DefaultBanner.
func (en *Engine) banner() string {
	if en.Banner == "" {
		return DefaultBanner
	}

	if !strings.HasSuffix(en.Banner, "\n") {
		return en.Banner + "\n"
	}

	return en.Banner
}

// openOutput creates or truncates path and returns a
// buffered writer on it. The returned closer flushes and
// closes the file; it must be called on every path.
func openOutput(path string) (io.Writer, func() error, error) {
	const errCtx = "opening output"

	fi, err := os.OpenFile( //nolint:gosec // path from configuration
		path,
		os.O_WRONLY|os.O_CREATE|os.O_TRUNC,
		0o666,
	)
	if err != nil {
		return nil, nil, fmt.Errorf(
			"%s: %w: %w", errCtx, ErrOutputUnwritable, err,
		)
	}

	slog.Debug("opened output", "path", path)

	bw := bufio.NewWriter(fi)

	return bw, func() error {
		flushErr := bw.Flush()
		closeErr := fi.Close()

		for _, err := range []error{flushErr, closeErr} {
			if err != nil {
				return fmt.Errorf(
					"closing %s: %w: %w",
					path, ErrOutputUnwritable, err,
				)
			}
		}

		return nil
	}, nil
}
