package stamper_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/byte4ever/cgen/stamper"
	"github.com/byte4ever/cgen/templating"
)

// writeTemp creates a temporary file with content and
// returns its path.
func writeTemp(
	tb testing.TB,
	dir string,
	name string,
	content string,
) string {
	tb.Helper()

	pa := filepath.Join(dir, name)
	require.NoError(
		tb,
		os.WriteFile(pa, []byte(content), 0o600),
	)

	return pa
}

func TestStampValues_substitutes_variables(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	sf := writeTemp(
		t, dir, "status.txt",
		"BUILD_USER alice\nGIT_SHA deadbeef\n",
	)

	got, err := stamper.StampValues(
		[]string{sf},
		[]templating.KeyValue{
			{Key: "NAME", Value: "vec_{GIT_SHA}"},
			{Key: "{BUILD_USER}", Value: "{BUILD_USER}"},
		},
	)

	require.NoError(t, err)
	assert.Equal(t, []templating.KeyValue{
		{Key: "NAME", Value: "vec_deadbeef"},
		{Key: "{BUILD_USER}", Value: "alice"},
	}, got)
}

func TestStampValues_c_braces_preserved(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	sf := writeTemp(t, dir, "status.txt", "KNOWN val\n")

	got, err := stamper.StampValues(
		[]string{sf},
		[]templating.KeyValue{
			{Key: "TYPE", Value: "struct { int x; }"},
			{Key: "OTHER", Value: "{KNOWN} and {UNKNOWN}"},
		},
	)

	require.NoError(t, err)
	assert.Equal(t, "struct { int x; }", got[0].Value)
	assert.Equal(t, "val and {UNKNOWN}", got[1].Value)
}

func TestStampValues_does_not_modify_input(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	sf := writeTemp(t, dir, "status.txt", "VER 2.0\n")

	in := []templating.KeyValue{{Key: "V", Value: "{VER}"}}

	got, err := stamper.StampValues([]string{sf}, in)

	require.NoError(t, err)
	assert.Equal(t, "2.0", got[0].Value)
	assert.Equal(t, "{VER}", in[0].Value)
}

func TestStampValues_later_file_overrides_earlier(
	t *testing.T,
) {
	t.Parallel()

	dir := t.TempDir()

	sf1 := writeTemp(t, dir, "s1.txt", "VER 1.0\n")
	sf2 := writeTemp(t, dir, "s2.txt", "VER 2.0\n")

	got, err := stamper.StampValues(
		[]string{sf1, sf2},
		[]templating.KeyValue{{Key: "V", Value: "version={VER}"}},
	)

	require.NoError(t, err)
	assert.Equal(t, "version=2.0", got[0].Value)
}

func TestStampValues_empty(t *testing.T) {
	t.Parallel()

	got, err := stamper.StampValues(nil, nil)

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestStampValues_missing_stamp_file(t *testing.T) {
	t.Parallel()

	_, err := stamper.StampValues(
		[]string{"/nonexistent/stamp.txt"},
		[]templating.KeyValue{{Key: "K", Value: "v"}},
	)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading stamps")
}

func TestLoadStamps_returns_map(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	sf := writeTemp(
		t, dir, "status.txt",
		"BUILD_USER alice\nGIT_SHA deadbeef\n",
	)

	stamps, err := stamper.LoadStamps([]string{sf})

	require.NoError(t, err)
	assert.Equal(t, "alice", stamps["BUILD_USER"])
	assert.Equal(t, "deadbeef", stamps["GIT_SHA"])
}

func TestLoadStamps_value_with_spaces(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	sf := writeTemp(
		t, dir, "status.txt",
		"MSG hello world from CI\n",
	)

	stamps, err := stamper.LoadStamps([]string{sf})

	require.NoError(t, err)
	assert.Equal(t, "hello world from CI", stamps["MSG"])
}

func TestLoadStamps_skips_malformed_lines(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	sf := writeTemp(
		t, dir, "status.txt",
		"GOOD value\nBADLINE\n\nALSO_GOOD val2\n",
	)

	stamps, err := stamper.LoadStamps([]string{sf})

	require.NoError(t, err)
	assert.Len(t, stamps, 2)
	assert.Equal(t, "value", stamps["GOOD"])
	assert.Equal(t, "val2", stamps["ALSO_GOOD"])
}

func TestLoadStamps_missing_file(t *testing.T) {
	t.Parallel()

	_, err := stamper.LoadStamps(
		[]string{"/nonexistent/file.txt"},
	)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading stamps")
}

func FuzzStampValues(f *testing.F) {
	f.Add("Hello {name}!", "name", "World")
	f.Add("{a}{b}", "a", "x")
	f.Add("{", "k", "v")
	f.Add("}", "k", "v")
	f.Add("{key}", "key", "")
	f.Add("{a} and {b}", "a", "{nested}")

	f.Fuzz(func(
		t *testing.T,
		value string,
		key string,
		val string,
	) {
		if key == "" {
			return
		}

		dir := t.TempDir()
		sf := filepath.Join(dir, "stamp.txt")

		err := os.WriteFile(
			sf,
			[]byte(key+" "+val+"\n"),
			0o600,
		)
		if err != nil {
			return
		}

		got, err := stamper.StampValues(
			[]string{sf},
			[]templating.KeyValue{{Key: "K", Value: value}},
		)

		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "K", got[0].Key)
	})
}
