package sanitizer

// NonNegative floors n at zero.
func NonNegative(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
