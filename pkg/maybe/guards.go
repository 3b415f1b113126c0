package maybe

type optionMarker interface{ isOption() }

type resultMarker interface{ isResult() }

// IsOption reports whether v is an Option of any value type.
func IsOption(v any) bool {
	_, ok := v.(optionMarker)
	return ok
}

// IsResult reports whether v is a Result of any value type.
func IsResult(v any) bool {
	_, ok := v.(resultMarker)
	return ok
}
