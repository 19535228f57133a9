package utils

// NilIfEmpty stores empty strings as NULL.
func NilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
