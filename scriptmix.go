// Package scriptmix reports which writing systems a text is made of and which
// reading direction dominates.
//
// Basic usage:
//
//	dir := scriptmix.DominantDirection("Hello مرحبا") // "ltr"
//	pct := scriptmix.LanguagePercentages("abبب")      // map[Arabic:50 Latin:50]
//
// With options:
//
//	analysis, err := scriptmix.New().
//	    Table(myTable).
//	    AnalyzeHTML(resp.Body)
//
// For classification of single code points and custom tables, the lower-level
// script package is also available.
package scriptmix

import (
	"github.com/tsawler/scriptmix/script"
)

// DominantDirection returns the direction tag ("ltr", "rtl" or "ttb") held by
// most classified characters of text. Ties go to the direction that appears
// first. It returns "" when no character of text is classified.
func DominantDirection(text string) string {
	dir, ok := script.DominantDirection(script.Directions(text))
	if !ok {
		return ""
	}
	return dir.String()
}

// LanguagePercentages returns the share of classified characters per script
// name, in percent. The map is empty when no character is classified.
func LanguagePercentages(text string) map[string]float64 {
	return script.Percentages(text).Map()
}

// LanguageReport is LanguagePercentages with the scripts kept in the order in
// which they first appear in text.
func LanguageReport(text string) script.Report {
	return script.Percentages(text)
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	a := scriptmix.Must(scriptmix.New().AnalyzeHTML(f))
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
