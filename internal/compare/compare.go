// Package compare provides deep structural equality for decoded station
// state, and a helper that only applies changes that actually differ.
package compare

import (
	"reflect"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var options = cmp.Options{
	cmp.Comparer(func(a, b time.Time) bool { return a.Equal(b) }),
	cmpopts.EquateEmpty(),
	cmp.Exporter(func(reflect.Type) bool { return true }),
}

// Equal reports whether a and b are structurally equal. Slices, arrays,
// maps, structs and pointers are compared element by element; time.Time
// values are equal when they denote the same instant, whatever their zone.
// Nil and empty containers are treated as equal.
func Equal(a, b any) bool {
	return cmp.Equal(a, b, options)
}

// Diff renders the differences between a and b, or "" if they are Equal.
func Diff(a, b any) string {
	return cmp.Diff(a, b, options)
}

// Update stores v in *dst unless the current value is already Equal to it,
// and reports whether a change was made.
func Update[T any](dst *T, v T) bool {
	if Equal(*dst, v) {
		return false
	}
	*dst = v
	return true
}
