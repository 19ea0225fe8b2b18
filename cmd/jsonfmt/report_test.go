package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d1ced/jsondoc"
)

func report(t *testing.T, input string) string {
	t.Helper()
	_, err := jsondoc.Parse(input)
	require.Error(t, err)
	b := &bytes.Buffer{}
	reportSyntaxError(b, "in.json", []byte(input), err.(*jsondoc.SyntaxError))
	return b.String()
}

func TestReportEOF(t *testing.T) {
	got := report(t, "[1,2")
	want := "in.json:4: unexpected end of input on position 4; unclosed Array\n" +
		"[1,2\n" +
		"    ^\n"
	assert.Equal(t, want, got)
}

func TestReportMultiline(t *testing.T) {
	got := report(t, "{\r\n\t\"a\": [1,\r\n\t\tx]\r\n}")
	lines := strings.Split(got, "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "\t\tx]", lines[1])
	assert.Equal(t, "\t\t^", lines[2])
}

func TestReportLongLine(t *testing.T) {
	input := "[" + strings.Repeat(`"abcdefgh",`, 20) + "?" + strings.Repeat(`,"abcdefgh"`, 20) + "]"
	got := report(t, input)
	lines := strings.Split(got, "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[1], "..."))
	assert.True(t, strings.HasSuffix(lines[1], "..."))
	assert.Equal(t, 3+2*reportWindow+3, len(lines[1]))
	assert.Equal(t, strings.Repeat(" ", 3+reportWindow)+"^", lines[2])
}
