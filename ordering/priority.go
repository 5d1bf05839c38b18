package ordering

// Prioritizable is an item exposing an integer execution priority.
type Prioritizable interface {
	Priority() int
}

// ByPriority returns items ordered by descending priority. Items with equal
// priority keep their original relative order, which is what makes rule
// execution order reproducible across runs when several rules declare the
// same priority.
func ByPriority[P Prioritizable](items []P) []P {
	return StableSort(items,
		func(p P) int { return p.Priority() },
		func(a, b int) int { return Compare(b, a) },
	)
}
