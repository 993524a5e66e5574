package conformance

// Suite is an ordered list of checks validating one aspect of a binding's
// documented surface. Suites run in declared order; checks within a suite
// run in declared order too.
type Suite struct {
	Name        string
	Description string
	Checks      []Check
}

// Len returns the number of checks in the suite.
func (s Suite) Len() int {
	return len(s.Checks)
}
