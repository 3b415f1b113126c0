package async

type optionAsyncMarker interface{ isOptionAsync() }

type resultAsyncMarker interface{ isResultAsync() }

// IsOption reports whether v is an async Option of any value type.
func IsOption(v any) bool {
	_, ok := v.(optionAsyncMarker)
	return ok
}

// IsResult reports whether v is an async Result of any value type.
func IsResult(v any) bool {
	_, ok := v.(resultAsyncMarker)
	return ok
}
