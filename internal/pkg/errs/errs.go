// Package errs wraps cockroachdb/errors so call sites get stack traces and
// marks without importing it directly.
package errs

import (
	"fmt"
	"strings"

	cr "github.com/cockroachdb/errors"
)

func New(msg string) error {
	return cr.New(msg)
}

func Newf(format string, args ...any) error {
	return cr.Newf(format, args...)
}

// Wrap and Wrapf return nil for a nil err.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return cr.Wrapf(err, format, args...)
}

// Mark tags err so Is(err, mark) holds while Error() still shows the cause.
// A nil err yields mark itself.
func Mark(err error, mark error) error {
	if err == nil {
		return mark
	}
	return cr.Mark(err, mark)
}

// Is also matches marks attached with Mark, which the standard library does not see.
func Is(err, reference error) bool {
	return cr.Is(err, reference)
}

// ExtractStackLines renders err with %+v and keeps the first maxLines
// non-blank lines, trimmed, for structured log fields.
func ExtractStackLines(err error, maxLines int) []string {
	if err == nil {
		return nil
	}
	var lines []string
	for line := range strings.Lines(fmt.Sprintf("%+v", err)) {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
		if maxLines > 0 && len(lines) == maxLines {
			break
		}
	}
	return lines
}
