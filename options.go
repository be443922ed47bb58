package scriptmix

import "github.com/tsawler/scriptmix/script"

// AnalyzeOptions holds configuration for an Analyzer.
type AnalyzeOptions struct {
	// Script table used for classification
	table *script.Table

	// Input preparation
	trimSpace bool // Trim leading and trailing whitespace before analysis
}

// defaultOptions returns the default analysis options.
func defaultOptions() AnalyzeOptions {
	return AnalyzeOptions{
		table:     script.Default,
		trimSpace: false,
	}
}

// clone creates a copy of AnalyzeOptions. Tables are immutable and shared.
func (o AnalyzeOptions) clone() AnalyzeOptions {
	return AnalyzeOptions{
		table:     o.table,
		trimSpace: o.trimSpace,
	}
}
