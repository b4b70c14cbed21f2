package templating

import "errors"

// Fatal error kinds. Callers match them with errors.Is.
var (
	// ErrConfigUnreadable reports a configuration that
	// could not be opened or read.
	ErrConfigUnreadable = errors.New("config unreadable")

	// ErrConfigMalformed reports a configuration with an
	// overlong line, a decode error or a missing path.
	ErrConfigMalformed = errors.New("config malformed")

	// ErrTemplateUnreadable reports a template that could
	// not be opened or read.
	ErrTemplateUnreadable = errors.New("template unreadable")

	// ErrTemplateMalformed reports a template line that
	// exceeds the line bound.
	ErrTemplateMalformed = errors.New("template malformed")

	// ErrOutputUnwritable reports a header or source file
	// that could not be created, written or closed.
	ErrOutputUnwritable = errors.New("output unwritable")

	// ErrStale reports generated files that differ from
	// what the current request would produce.
	ErrStale = errors.New("generated files are stale")
)
