package ptr

func String(s string) *string {
	return &s
}

func To[T any](v T) *T {
	return &v
}
