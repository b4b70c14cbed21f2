// Binary cgen specializes a C template into a header and
// a source file as described by a configuration file.
// It prints nothing on success.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/byte4ever/cgen/conf"
	"github.com/byte4ever/cgen/stamper"
	"github.com/byte4ever/cgen/templating"
)

var errUsage = errors.New("usage")

type arrayFlags []string

func (af *arrayFlags) String() string {
	return ""
}

func (af *arrayFlags) Set(value string) error {
	*af = append(*af, value)
	return nil
}

func run(args []string, stderr io.Writer) error {
	const errCtx = "cgen"

	var (
		stampInfoFiles arrayFlags
		check          bool
		verbose        bool
	)

	fs := flag.NewFlagSet("cgen", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: cgen [flags] conf-file\n")
		fs.PrintDefaults()
	}

	fs.Var(
		&stampInfoFiles,
		"stamp-info-file",
		"workspace status file expanding {VAR} in values (repeatable)",
	)

	fs.BoolVar(
		&check, "check", false,
		"verify generated files are up to date without writing",
	)

	fs.BoolVar(
		&verbose, "v", false,
		"log debug information to stderr",
	)

	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	if fs.NArg() != 1 {
		fs.Usage()

		return errUsage
	}

	if verbose {
		slog.SetDefault(slog.New(slog.NewTextHandler(
			stderr,
			&slog.HandlerOptions{Level: slog.LevelDebug},
		)))
	}

	req, err := conf.Load(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	if len(stampInfoFiles) > 0 {
		req.KeyValues, err = stamper.StampValues(
			stampInfoFiles, req.KeyValues,
		)
		if err != nil {
			return fmt.Errorf("%s: %w", errCtx, err)
		}
	}

	en := templating.Engine{}

	if check {
		err = en.Check(req)
	} else {
		err = en.Run(req)
	}

	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	return nil
}

func main() {
	if err := run(os.Args[1:], os.Stderr); err != nil {
		if !errors.Is(err, errUsage) {
			slog.Error(err.Error())
		}

		os.Exit(1)
	}
}
