package script

// Classify returns the first definition, in declaration order, that owns r.
// The returned pointer is borrowed from the table and must not be modified.
// The boolean is false when no definition matches.
func (t *Table) Classify(r rune) (*Definition, bool) {
	for i := range t.defs {
		for _, rg := range t.defs[i].Ranges {
			if rg.Contains(r) {
				return &t.defs[i], true
			}
		}
	}
	return nil, false
}

// Classify classifies r against the Default table.
func Classify(r rune) (*Definition, bool) {
	return Default.Classify(r)
}
