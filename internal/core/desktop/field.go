package desktop

// field holds a value that is either unset or set exactly once.
// Later assignments are ignored so the first occurrence of a key wins.
type field[T any] struct {
	value T
	set   bool
}

// assign stores v if the field is still unset and reports whether it did
func (f *field[T]) assign(v T) bool {
	if f.set {
		return false
	}
	f.value = v
	f.set = true
	return true
}

// get returns the value, or the zero value when unset
func (f field[T]) get() T {
	return f.value
}

// isSet reports whether the field has been assigned
func (f field[T]) isSet() bool {
	return f.set
}
