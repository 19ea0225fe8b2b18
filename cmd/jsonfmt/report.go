package main

import (
	"bytes"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/d1ced/jsondoc"
)

// context shown on each side of the offending byte of a long line
const reportWindow = 60

// reportSyntaxError writes where in data the parse failed: a
// "name:offset: message" header, the line holding the offending byte and a
// caret pointing at it.
func reportSyntaxError(w io.Writer, name string, data []byte, serr *jsondoc.SyntaxError) {
	bold := color.New(color.Bold)
	red := color.New(color.FgRed, color.Bold)

	pos := int(serr.Position)
	if pos > len(data) {
		pos = len(data)
	}
	bold.Fprintf(w, "%s:%d:", name, pos)
	fmt.Fprintf(w, " %s\n", serr)

	start := bytes.LastIndexByte(data[:pos], '\n') + 1
	end := len(data)
	if i := bytes.IndexByte(data[pos:], '\n'); i >= 0 {
		end = pos + i
	}
	prefix, suffix := "", ""
	if pos-start > reportWindow {
		start, prefix = pos-reportWindow, "..."
	}
	if end-pos > reportWindow {
		end, suffix = pos+reportWindow, "..."
	}
	line := bytes.TrimSuffix(data[start:end], []byte("\r"))
	fmt.Fprintf(w, "%s%s%s\n", prefix, line, suffix)

	// keep tabs so the caret lines up with the line above
	pad := make([]byte, 0, len(prefix)+pos-start)
	for i := 0; i < len(prefix); i++ {
		pad = append(pad, ' ')
	}
	for _, b := range data[start:pos] {
		if b == '\t' {
			pad = append(pad, '\t')
		} else {
			pad = append(pad, ' ')
		}
	}
	fmt.Fprintf(w, "%s", pad)
	red.Fprintln(w, "^")
}
