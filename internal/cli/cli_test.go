package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args and captured output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cfg = nil
	cmd := NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestPreviewFixedTime(t *testing.T) {
	out, err := execute(t, "preview", "07:25")
	require.NoError(t, err)

	assert.Contains(t, out, "07:25")
	assert.Contains(t, out, "ES ISCH FÜF VOR HAUBI ACHTI")
}

func TestPreviewDots(t *testing.T) {
	out, err := execute(t, "preview", "07:47")
	require.NoError(t, err)

	assert.Contains(t, out, "ES ISCH VIERT VOR ACHTI")
	assert.Equal(t, 2, strings.Count(out, "●"))
}

func TestPreviewInvalidTime(t *testing.T) {
	tests := []struct {
		name string
		arg  string
	}{
		{"no colon", "0725"},
		{"hour out of range", "24:00"},
		{"minute out of range", "07:60"},
		{"negative hour", "-1:30"},
		{"not a number", "aa:bb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, "preview", tt.arg)
			assert.Error(t, err)
		})
	}
}

func TestPreviewHonorsColorFlag(t *testing.T) {
	_, err := execute(t, "preview", "07:00", "--color", "warm")
	require.NoError(t, err)

	_, err = execute(t, "preview", "07:00", "--color", "mauve")
	assert.Error(t, err)
}

func TestDemoWalksAllIntervals(t *testing.T) {
	out, err := execute(t, "demo")
	require.NoError(t, err)

	// Every phrasing of the ten o'clock hour shows up once.
	for _, phrase := range []string{
		"ES ISCH ZÄNI UHR",
		"ES ISCH FÜF AB ZÄNI",
		"ES ISCH ZÄÄ AB ZÄNI",
		"ES ISCH VIERT AB ZÄNI",
		"ES ISCH ZWÄNZG AB ZÄNI",
		"ES ISCH FÜF VOR HAUBI ÖUFI",
		"ES ISCH HAUBI ÖUFI",
		"ES ISCH FÜF AB HAUBI ÖUFI",
		"ES ISCH ZWÄNZG VOR ÖUFI",
		"ES ISCH VIERT VOR ÖUFI",
		"ES ISCH ZÄÄ VOR ÖUFI",
		"ES ISCH FÜF VOR ÖUFI",
	} {
		assert.Contains(t, out, phrase)
	}
}

func TestDemoInvalidHour(t *testing.T) {
	_, err := execute(t, "demo", "--hour", "25")
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)

	assert.Contains(t, out, "baernuhr v")
	assert.Contains(t, out, "word clock")
}

func TestParseClockTime(t *testing.T) {
	hour, minute, err := parseClockTime("23:59")
	require.NoError(t, err)
	assert.Equal(t, 23, hour)
	assert.Equal(t, 59, minute)

	hour, minute, err = parseClockTime("7:05")
	require.NoError(t, err)
	assert.Equal(t, 7, hour)
	assert.Equal(t, 5, minute)
}
