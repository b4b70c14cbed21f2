package stamper

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/valyala/fasttemplate"

	"github.com/byte4ever/cgen/templating"
)

// LoadStamps reads workspace status files and merges them
// into a single map. Each line is "KEY VALUE" with the
// first space as delimiter. Lines without a space are
// silently skipped.
func LoadStamps(
	infoFiles []string,
) (map[string]interface{}, error) {
	const errCtx = "loading stamps"

	stamps := make(map[string]interface{})

	for _, sf := range infoFiles {
		content, err := os.ReadFile(sf) //nolint:gosec // paths from CLI flags
		if err != nil {
			return nil, fmt.Errorf(
				"%s: %w", errCtx, err,
			)
		}

		for _, line := range strings.Split(
			string(content), "\n",
		) {
			key, value, found := strings.Cut(line, " ")
			if found {
				stamps[key] = value
			}
		}
	}

	return stamps, nil
}

// StampValues loads workspace status variables from
// infoFiles and substitutes {VAR} placeholders in every
// value of kvs. Keys are left alone and unknown
// variables are preserved as-is. The input slice is not
// modified.
func StampValues(
	infoFiles []string,
	kvs []templating.KeyValue,
) ([]templating.KeyValue, error) {
	const errCtx = "stamping values"

	stamps, err := LoadStamps(infoFiles)
	if err != nil {
		return nil, fmt.Errorf(
			"%s: %w", errCtx, err,
		)
	}

	stamped := make([]templating.KeyValue, len(kvs))

	for idx, kv := range kvs {
		stamped[idx] = templating.KeyValue{
			Key: kv.Key,
			Value: fasttemplate.ExecuteStringStd(
				kv.Value, "{", "}", stamps,
			),
		}
	}

	slog.Debug(
		"stamped values",
		"files", len(infoFiles),
		"variables", len(stamps),
	)

	return stamped, nil
}
