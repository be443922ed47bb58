package script

// Directions returns the direction of every classified code point in text,
// in text order. Unclassified code points are skipped.
func (t *Table) Directions(text string) []Direction {
	dirs := make([]Direction, 0, len(text))
	for _, r := range text {
		if def, ok := t.Classify(r); ok {
			dirs = append(dirs, def.Direction)
		}
	}
	return dirs
}

// Languages counts classified code points per script name. The tally's Total
// excludes unclassified code points.
func (t *Table) Languages(text string) *Tally[string] {
	counts := newTally[string]()
	for _, r := range text {
		if def, ok := t.Classify(r); ok {
			counts.add(def.Name)
		}
	}
	return counts
}

// CountDirections tallies a direction sequence in first-occurrence order.
func CountDirections(dirs []Direction) *Tally[Direction] {
	counts := newTally[Direction]()
	for _, d := range dirs {
		counts.add(d)
	}
	return counts
}

// Directions collects directions from text using the Default table.
func Directions(text string) []Direction {
	return Default.Directions(text)
}

// Languages tallies script names in text using the Default table.
func Languages(text string) *Tally[string] {
	return Default.Languages(text)
}
