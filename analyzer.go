package scriptmix

import (
	"fmt"
	"io"
	"strings"

	"github.com/tsawler/scriptmix/htmltext"
	"github.com/tsawler/scriptmix/script"
)

// Analyzer provides a fluent interface for classifying text.
// Option methods return a new Analyzer and never modify the receiver, so a
// configured Analyzer can be shared between goroutines.
type Analyzer struct {
	options AnalyzeOptions
}

// New returns an Analyzer that uses script.Default.
//
// Example:
//
//	a := scriptmix.New().Analyze("Привет")
//	fmt.Println(a.Dominant) // ltr
func New() *Analyzer {
	return &Analyzer{options: defaultOptions()}
}

func (a *Analyzer) clone() *Analyzer {
	return &Analyzer{options: a.options.clone()}
}

// Table sets the script table used for classification. A nil table restores
// script.Default.
func (a *Analyzer) Table(t *script.Table) *Analyzer {
	newA := a.clone()
	if t == nil {
		t = script.Default
	}
	newA.options.table = t
	return newA
}

// TrimSpace trims leading and trailing whitespace from the input before it
// is analyzed. This only matters for tables that classify whitespace.
func (a *Analyzer) TrimSpace() *Analyzer {
	newA := a.clone()
	newA.options.trimSpace = true
	return newA
}

// Analyze classifies text and returns every derived result.
func (a *Analyzer) Analyze(text string) script.Analysis {
	if a.options.trimSpace {
		text = strings.TrimSpace(text)
	}
	return a.options.table.Analyze(text)
}

// DominantDirection returns the dominant direction tag of text, or "" when
// nothing in text is classified.
func (a *Analyzer) DominantDirection(text string) string {
	res := a.Analyze(text)
	if !res.HasDominant {
		return ""
	}
	return res.Dominant.String()
}

// LanguagePercentages returns the per-script percentages of text.
func (a *Analyzer) LanguagePercentages(text string) script.Report {
	return a.Analyze(text).Report
}

// AnalyzeHTML extracts the visible text of an HTML document and analyzes it.
//
// Example:
//
//	f, _ := os.Open("page.html")
//	defer f.Close()
//	a, err := scriptmix.New().AnalyzeHTML(f)
func (a *Analyzer) AnalyzeHTML(r io.Reader) (script.Analysis, error) {
	text, err := htmltext.Extract(r)
	if err != nil {
		return script.Analysis{}, fmt.Errorf("extracting text: %w", err)
	}
	return a.Analyze(text), nil
}
