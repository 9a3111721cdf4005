package protocol

import (
	"bytes"
	"fmt"
	"strings"
)

// ReadString extracts text from buf[start:end]. Reading stops at the first
// NUL byte and trailing whitespace is removed. Bounds outside buf are
// clamped, so a short buffer yields a shorter (possibly empty) string.
func ReadString(buf []byte, start, end int) string {
	if start < 0 {
		start = 0
	}
	if end > len(buf) {
		end = len(buf)
	}
	if start >= end {
		return ""
	}

	field := buf[start:end]
	if i := bytes.IndexByte(field, 0); i >= 0 {
		field = field[:i]
	}
	return strings.TrimRight(string(field), " \t\r\n\v\f")
}

// putString writes s into dst, NUL padding the remainder. s must fit.
func putString(dst []byte, s string) error {
	if len(s) > len(dst) {
		return fmt.Errorf("%d bytes does not fit in a %d byte field", len(s), len(dst))
	}
	n := copy(dst, s)
	clear(dst[n:])
	return nil
}
