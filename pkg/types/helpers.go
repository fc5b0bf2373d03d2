package types

import "cmp"

// sameValue reports whether other is a field of type T with the same type
// tag and an equal value.
func sameValue[T interface{ Type() Type }](self T, other Field, eq func(a, b T) bool) bool {
	o, ok := other.(T)
	if !ok {
		return false
	}
	return self.Type() == o.Type() && eq(self, o)
}

func equalOrdered[T cmp.Ordered](a, b T) bool {
	return a == b
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
