package cli

import (
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/replicate/uuidtool/test"
	"github.com/replicate/uuidtool/uuid"
)

const fixture = "550e8400-e29b-41d4-a716-446655440000"

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	out, err := test.Execute(t, NewRoot(), stdin, args...)
	return out.Stdout, err
}

func TestGen(t *testing.T) {
	testcases := []struct {
		name    string
		args    []string
		version byte
		shape   uuid.Shape
		upper   bool
	}{
		{name: "default", args: []string{"gen"}, version: uuid.V4},
		{name: "v4", args: []string{"gen", "v4"}, version: uuid.V4},
		{name: "bare 7", args: []string{"gen", "7"}, version: uuid.V7},
		{name: "V7 uppercase token", args: []string{"gen", "V7"}, version: uuid.V7},
		{name: "compact", args: []string{"gen", "--compact"}, version: uuid.V4, shape: uuid.ShapeCompact},
		{name: "hex beats compact", args: []string{"gen", "v7", "--compact", "--hex"}, version: uuid.V7, shape: uuid.ShapeHex},
		{name: "uppercase", args: []string{"gen", "--uppercase"}, version: uuid.V4, upper: true},
		{name: "uppercase hex", args: []string{"gen", "--hex", "--uppercase"}, version: uuid.V4, shape: uuid.ShapeHex, upper: true},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			stdout, err := run(t, "", tc.args...)
			require.NoError(t, err)

			line := strings.TrimSuffix(stdout, "\n")
			require.NotContains(t, line, "\n")

			u, err := uuid.Parse(line)
			require.NoError(t, err)
			assert.Equal(t, tc.version, u.Version())
			assert.Equal(t, uuid.VariantRFC4122, u.Variant())
			assert.Equal(t, uuid.Format(u, uuid.FormatOptions{Shape: tc.shape, Uppercase: tc.upper}), line)
		})
	}
}

func TestGenCount(t *testing.T) {
	stdout, err := run(t, "", "gen", "v7", "-n", "5")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(stdout, "\n"), "\n")
	require.Len(t, lines, 5)

	seen := make(map[string]bool)
	for _, line := range lines {
		assert.False(t, seen[line], "duplicate %s", line)
		seen[line] = true
	}

	stdout, err = run(t, "", "gen", "--count", "0")
	require.NoError(t, err)
	assert.Empty(t, stdout)
}

func TestGenTimestamps(t *testing.T) {
	before := time.Now().Truncate(time.Millisecond)
	stdout, err := run(t, "", "gen", "v7", "--timestamps")
	require.NoError(t, err)
	after := time.Now()

	fields := strings.Fields(stdout)
	require.Len(t, fields, 2)

	u, err := uuid.Parse(fields[0])
	require.NoError(t, err)
	assert.Equal(t, uuid.V7, u.Version())

	ts, err := time.Parse(time.RFC3339Nano, fields[1])
	require.NoError(t, err)
	assert.False(t, ts.Before(before), "%s before %s", ts, before)
	assert.False(t, ts.After(after), "%s after %s", ts, after)
}

func TestGenUnknownVersion(t *testing.T) {
	stdout, err := run(t, "", "gen", "v5")
	require.Error(t, err)
	assert.Empty(t, stdout)
	assert.EqualError(t, err, "unknown UUID version 'v5'. Supported: v4, v7")

	var schemeErr *uuid.UnknownSchemeError
	assert.ErrorAs(t, err, &schemeErr)
	assert.False(t, IsUsageError(err))
}

func TestFmt(t *testing.T) {
	testcases := []struct {
		name     string
		stdin    string
		args     []string
		expected string
	}{
		{name: "canonical default", args: []string{"fmt", "550E8400E29B41D4A716446655440000"}, expected: fixture},
		{name: "canonical flag", args: []string{"fmt", "--canonical", "550E8400E29B41D4A716446655440000"}, expected: fixture},
		{name: "compact", args: []string{"fmt", "--compact", fixture}, expected: "550e8400e29b41d4a716446655440000"},
		{name: "hex", args: []string{"fmt", "--hex", fixture}, expected: "0x550e8400e29b41d4a716446655440000"},
		{name: "hex beats compact", args: []string{"fmt", "--compact", "--hex", fixture}, expected: "0x550e8400e29b41d4a716446655440000"},
		{name: "compact beats canonical", args: []string{"fmt", "--canonical", "--compact", fixture}, expected: "550e8400e29b41d4a716446655440000"},
		{name: "uppercase", args: []string{"fmt", "--uppercase", fixture}, expected: "550E8400-E29B-41D4-A716-446655440000"},
		{name: "uppercase hex", args: []string{"fmt", "--hex", "--uppercase", fixture}, expected: "0X550E8400E29B41D4A716446655440000"},
		{name: "hex prefix input", args: []string{"fmt", "0X550E8400E29B41D4A716446655440000"}, expected: fixture},
		{name: "braced input", args: []string{"fmt", "{" + fixture + "}"}, expected: fixture},
		{name: "urn input", args: []string{"fmt", "urn:uuid:" + fixture}, expected: fixture},
		{name: "stdin", stdin: "  " + fixture + "  \n", args: []string{"fmt", "--compact"}, expected: "550e8400e29b41d4a716446655440000"},
		{name: "stdin without newline", stdin: "0x550e8400e29b41d4a716446655440000", args: []string{"fmt"}, expected: fixture},
		{name: "stdin first line only", stdin: fixture + "\nnot-a-uuid\n", args: []string{"fmt"}, expected: fixture},
		{name: "argument wins over stdin", stdin: "not-a-uuid\n", args: []string{"fmt", fixture}, expected: fixture},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			stdout, err := run(t, tc.stdin, tc.args...)
			require.NoError(t, err)
			assert.Equal(t, tc.expected+"\n", stdout)
		})
	}
}

func TestFmtInvalid(t *testing.T) {
	for _, stdin := range []string{"not-a-uuid\n", "", "\n"} {
		stdout, err := run(t, stdin, "fmt")
		require.Error(t, err)
		assert.Empty(t, stdout)

		var parseErr *uuid.ParseError
		require.ErrorAs(t, err, &parseErr)
		assert.True(t, strings.HasPrefix(err.Error(), "invalid UUID '"), err.Error())
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, io.ErrClosedPipe
}

func TestFmtStdinFailure(t *testing.T) {
	cmd := NewRoot()
	cmd.SetIn(failingReader{})
	cmd.SetArgs([]string{"fmt"})

	err := cmd.ExecuteContext(test.Context(t))
	require.Error(t, err)
	assert.True(t, errors.Is(err, io.ErrClosedPipe))
	assert.False(t, IsUsageError(err))
	assert.False(t, uuid.IsInputError(err))
}

func TestInfo(t *testing.T) {
	testcases := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "v4",
			input:    fixture,
			expected: "version: 4\nvariant: RFC4122\ntype: random\n",
		},
		{
			name:  "v7",
			input: "017f22e2-79b0-7cc3-98c4-dc0c0c07398f",
			expected: "version: 7\nvariant: RFC4122\n" +
				"timestamp: 1645557742.000000000 (Unix epoch)\n" +
				"timestamp_ms: 1645557742000\n",
		},
		{
			name:  "v1",
			input: "C232AB00-9414-11EC-B3C8-9F6BDECED846",
			expected: "version: 1\nvariant: RFC4122\n" +
				"timestamp: 1645557742.000000000 (Unix epoch)\n",
		},
		{
			name:     "nil",
			input:    "00000000000000000000000000000000",
			expected: "version: 0\nvariant: NCS\n",
		},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			stdout, err := run(t, "", "info", tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, stdout)
		})
	}

	_, err := run(t, "", "info", "xyz")
	assert.EqualError(t, err, "invalid UUID 'xyz': invalid UUID length: 3")
}

func TestNil(t *testing.T) {
	testcases := []struct {
		args     []string
		expected string
	}{
		{args: nil, expected: "00000000-0000-0000-0000-000000000000"},
		{args: []string{"--compact"}, expected: "00000000000000000000000000000000"},
		{args: []string{"--hex"}, expected: "0x00000000000000000000000000000000"},
		{args: []string{"--hex", "--uppercase"}, expected: "0X00000000000000000000000000000000"},
	}

	for _, tc := range testcases {
		stdout, err := run(t, "", append([]string{"nil"}, tc.args...)...)
		require.NoError(t, err)
		assert.Equal(t, tc.expected+"\n", stdout, "nil %v", tc.args)
	}
}

func TestNormalize(t *testing.T) {
	testcases := []struct {
		name     string
		args     []string
		expected string
	}{
		{name: "compact", args: []string{"D004A78FD44C1B4E8213324AE10814DC"}, expected: "8FA704D04CD44E1B8213324AE10814DC"},
		{name: "hyphenated lowercase", args: []string{"d004a78f-d44c-1b4e-8213-324ae10814dc"}, expected: "8FA704D04CD44E1B8213324AE10814DC"},
		{name: "hex prefix", args: []string{"0xD004A78FD44C1B4E8213324AE10814DC"}, expected: "8FA704D04CD44E1B8213324AE10814DC"},
		{name: "canonical", args: []string{"--canonical", "D004A78FD44C1B4E8213324AE10814DC"}, expected: "8FA704D0-4CD4-4E1B-8213-324AE10814DC"},
		{name: "hex", args: []string{"--hex", "D004A78FD44C1B4E8213324AE10814DC"}, expected: "0X8FA704D04CD44E1B8213324AE10814DC"},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			stdout, err := run(t, "", append([]string{"normalize"}, tc.args...)...)
			require.NoError(t, err)
			assert.Equal(t, tc.expected+"\n", stdout)
		})
	}
}

func TestNormalizeInvalid(t *testing.T) {
	_, err := run(t, "", "normalize", "D004A78F")
	assert.EqualError(t, err, "invalid UUID length: expected 32 hex characters, got 8")

	_, err = run(t, "", "normalize", "--canonical", "ZZ04A78FD44C1B4E8213324AE10814DC")
	assert.EqualError(t, err, "invalid hex character in 'ZZ'")
	assert.True(t, uuid.IsInputError(err))
}
