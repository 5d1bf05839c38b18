package ordering

type number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Compare returns -1 when a sorts before b, 1 when a sorts after b, and 0
// when the two are equal. It is the value comparator handed to [StableSort]
// throughout the tool.
func Compare[T number](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
