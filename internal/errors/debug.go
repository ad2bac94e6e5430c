package errors

import (
	goerrors "errors"
	"fmt"
	"strings"
)

func formatErrorWithDebug(f fmt.State, err *Error, includeChain bool) {
	_, _ = fmt.Fprint(f, err.Error())
	if len(err.Frames) > 0 {
		renderFrames(f, err.Frames)
	}

	if includeChain {
		for cause := goerrors.Unwrap(err); cause != nil; cause = goerrors.Unwrap(cause) {
			_, _ = fmt.Fprint(f, "\n\ncaused by: ")
			if next, ok := cause.(*Error); ok {
				formatErrorWithDebug(f, next, false)
			} else {
				_, _ = fmt.Fprintf(f, "%v", cause)
			}
		}
	}
}

func renderFrames(f fmt.State, frames []string) {
	_, _ = fmt.Fprint(f, "\n")
	_, _ = fmt.Fprintln(f, centerLine(" Builtin Calls ", '-', 79))
	for i, name := range frames {
		_, _ = fmt.Fprintf(f, "%4d | %s\n", i, name)
	}
	_, _ = fmt.Fprint(f, strings.Repeat("-", 79))
}

func centerLine(title string, fill rune, width int) string {
	if len(title) >= width {
		return title
	}
	pad := width - len(title)
	left := pad / 2
	right := pad - left
	return strings.Repeat(string(fill), left) + title + strings.Repeat(string(fill), right)
}
