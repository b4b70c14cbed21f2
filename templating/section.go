package templating

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Section tells where template content lines go.
type Section int

// Sections, in the order a template usually lists them.
const (
	// SectionNone drops content. Templates use it for
	// scaffolding that only keeps the raw template
	// compilable, such as placeholder typedefs.
	SectionNone Section = iota

	// SectionDeclaration sends content to the header.
	SectionDeclaration

	// SectionDefinition sends content to the source.
	SectionDefinition

	// SectionBoth sends content to the source and the
	// prototypes extracted from it to the header.
	SectionBoth
)

// Marker lines. A template line starting with one of
// these switches the current section and is not emitted.
const (
	MarkerDeclaration = "// cgen header file include"
	MarkerDefinition  = "// cgen source file include"
	MarkerBoth        = "// cgen header file declarations and source file definitions"
)

var sectionNames = map[Section]string{
	SectionNone:        "none",
	SectionDeclaration: "declaration",
	SectionDefinition:  "definition",
	SectionBoth:        "both",
}

func (se Section) String() string {
	if name, ok := sectionNames[se]; ok {
		return name
	}

	return fmt.Sprintf("Section(%d)", int(se))
}

// ParseMarker reports the section selected by line when
// line is a marker line.
func ParseMarker(line string) (Section, bool) {
	switch {
	case strings.HasPrefix(line, MarkerDeclaration):
		return SectionDeclaration, true
	case strings.HasPrefix(line, MarkerDefinition):
		return SectionDefinition, true
	case strings.HasPrefix(line, MarkerBoth):
		return SectionBoth, true
	default:
		return SectionNone, false
	}
}

// Specialize streams the template tpl once, applies kvs
// to every content line and routes the result to header
// and source according to the current section. Content
// before the first marker line is dropped.
func Specialize(
	tpl io.Reader,
	header io.Writer,
	source io.Writer,
	kvs []KeyValue,
) error {
	const errCtx = "specializing template"

	section := SectionNone
	num := 0

	err := EachLine(tpl, TemplateBufSize, func(line string) error {
		num++

		if next, ok := ParseMarker(line); ok {
			slog.Debug(
				"entering section",
				"section", next,
				"line", num,
			)

			section = next

			return nil
		}

		return route(section, line, num, header, source, kvs)
	})

	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrOutputUnwritable):
		return fmt.Errorf("%s: %w", errCtx, err)
	case errors.Is(err, ErrLineTooLong):
		return fmt.Errorf(
			"%s: %w: %w", errCtx, ErrTemplateMalformed, err,
		)
	default:
		return fmt.Errorf(
			"%s: %w: %w", errCtx, ErrTemplateUnreadable, err,
		)
	}
}

// route writes one content line for the given section.
func route(
	section Section,
	line string,
	num int,
	header io.Writer,
	source io.Writer,
	kvs []KeyValue,
) error {
	if section == SectionNone {
		return nil
	}

	expanded := ReplaceAll(line, kvs)

	switch section {
	case SectionDeclaration:
		return writeLine(header, "header", expanded)
	case SectionDefinition:
		return writeLine(source, "source", expanded)
	case SectionBoth:
		if err := writeLine(
			source, "source", expanded,
		); err != nil {
			return err
		}

		decl, ok := ExtractDeclaration(expanded)
		if !ok {
			return nil
		}

		slog.Debug(
			"extracted declaration",
			"line", num,
			"declaration", strings.TrimSuffix(decl, "\n"),
		)

		return writeLine(header, "header", decl)
	default:
		return nil
	}
}

func writeLine(wr io.Writer, name string, text string) error {
	if _, err := io.WriteString(wr, text); err != nil {
		return fmt.Errorf(
			"writing %s: %w: %w",
			name, ErrOutputUnwritable, err,
		)
	}

	return nil
}
