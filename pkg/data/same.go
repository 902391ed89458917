// Package data provides the data-model contract consumed by the binding
// layer: a cheap structural equivalence check and scoped field accessors.
package data

import "reflect"

// Same reports whether two values are equivalent for change detection.
//
// This is a shallow check, not full deep equality: reference types compare by
// identity (two slices are "same" only if they share backing storage), and
// comparable types compare with ==. It exists so that values shared by
// reference can short-circuit without walking their contents.
func Same(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false
	}
	switch va.Kind() {
	case reflect.Pointer, reflect.Chan, reflect.Func, reflect.UnsafePointer, reflect.Map:
		return va.Pointer() == vb.Pointer()
	case reflect.Slice:
		return va.Len() == vb.Len() && (va.Len() == 0 || va.Pointer() == vb.Pointer())
	}
	if va.Type().Comparable() {
		return a == b
	}
	return reflect.DeepEqual(a, b)
}
