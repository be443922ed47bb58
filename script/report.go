package script

// DominantDirection returns the direction with the highest count in dirs.
// On a tie the direction seen first in dirs wins. The boolean is false when
// dirs is empty, in which case there is no dominant direction.
func DominantDirection(dirs []Direction) (Direction, bool) {
	if len(dirs) == 0 {
		return LTR, false
	}
	return dominant(CountDirections(dirs))
}

func dominant(counts *Tally[Direction]) (Direction, bool) {
	if counts.Len() == 0 {
		return LTR, false
	}
	best := counts.keys[0]
	for _, d := range counts.keys[1:] {
		// Strictly greater: an equal count never replaces an earlier key.
		if counts.counts[d] > counts.counts[best] {
			best = d
		}
	}
	return best, true
}

// Share is one script's portion of the classified characters, in percent.
type Share struct {
	Name    string
	Percent float64
}

// Report holds per-script percentages in first-occurrence order.
// The zero value is an empty report.
type Report struct {
	shares []Share
}

// NewReport converts a language tally into percentages of its total.
// A tally with a zero total yields an empty report.
func NewReport(counts *Tally[string]) Report {
	if counts == nil || counts.Total() == 0 {
		return Report{}
	}
	total := float64(counts.Total())
	shares := make([]Share, 0, counts.Len())
	for _, e := range counts.Entries() {
		shares = append(shares, Share{
			Name:    e.Key,
			Percent: 100.0 * float64(e.Count) / total,
		})
	}
	return Report{shares: shares}
}

// Len returns the number of scripts in the report.
func (r Report) Len() int {
	return len(r.shares)
}

// IsEmpty reports whether no script was classified.
func (r Report) IsEmpty() bool {
	return len(r.shares) == 0
}

// Shares returns a copy of the report's entries.
func (r Report) Shares() []Share {
	out := make([]Share, len(r.shares))
	copy(out, r.shares)
	return out
}

// Percent returns the percentage for the named script.
func (r Report) Percent(name string) (float64, bool) {
	for _, s := range r.shares {
		if s.Name == name {
			return s.Percent, true
		}
	}
	return 0, false
}

// Map returns the report as a map keyed by script name. Iteration order of
// the map is unspecified; use Shares when order matters.
func (r Report) Map() map[string]float64 {
	m := make(map[string]float64, len(r.shares))
	for _, s := range r.shares {
		m[s.Name] = s.Percent
	}
	return m
}

// Percentages returns the per-script percentage breakdown of text.
func (t *Table) Percentages(text string) Report {
	return NewReport(t.Languages(text))
}

// Percentages reports text against the Default table.
func Percentages(text string) Report {
	return Default.Percentages(text)
}

// Analysis is the combined result of classifying a text once.
type Analysis struct {
	// Directions tallies the direction of every classified character.
	Directions *Tally[Direction]
	// Dominant is only meaningful when HasDominant is true.
	Dominant    Direction
	HasDominant bool
	Languages   *Tally[string]
	Report      Report
}

// Analyze classifies text in a single pass and builds every derived result.
func (t *Table) Analyze(text string) Analysis {
	dirs := newTally[Direction]()
	langs := newTally[string]()
	for _, r := range text {
		def, ok := t.Classify(r)
		if !ok {
			continue
		}
		dirs.add(def.Direction)
		langs.add(def.Name)
	}

	dom, ok := dominant(dirs)
	return Analysis{
		Directions:  dirs,
		Dominant:    dom,
		HasDominant: ok,
		Languages:   langs,
		Report:      NewReport(langs),
	}
}

// Analyze analyzes text against the Default table.
func Analyze(text string) Analysis {
	return Default.Analyze(text)
}
