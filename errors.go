// errors.go: caret-snippet rendering for parse errors.
//
// WrapErrorWithSource recognizes *ParseError (parser.go) and returns a new
// error whose message includes the input line with a caret under the
// 1-based column where parsing failed:
//
//	unexpected ')'
//
//	  | ( a ) )
//	  |       ^
//
// Any other error is returned unchanged. The column is clamped to the line
// bounds so a truncated input (column one past the end) still renders. The
// output is plain text; the REPL adds its own color and prefix.
package minilisp

import (
	"fmt"
	"strings"
)

// WrapErrorWithSource augments a parse error with a caret-annotated snippet
// of the line that produced it. Non-parse errors pass through untouched.
func WrapErrorWithSource(err error, src string) error {
	pe, ok := err.(*ParseError)
	if !ok {
		return err
	}
	return fmt.Errorf("%s", caretSnippet(src, pe.Col, pe.Msg))
}

func caretSnippet(src string, col int, msg string) string {
	if col < 1 {
		col = 1
	}
	if n := len([]rune(src)); col > n+1 {
		col = n + 1
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", msg)
	fmt.Fprintf(&b, "  | %s\n", src)
	fmt.Fprintf(&b, "  | %s^", strings.Repeat(" ", col-1))
	return b.String()
}
