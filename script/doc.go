// Package script classifies text by writing system and reading direction.
//
// This package maps each code point of a string to a script definition from
// a [Table] and aggregates the results.
//
// # Script Tables
//
// A [Table] is an ordered list of [Definition] values. Each definition owns
// one or more half-open code point ranges and carries a [Direction]:
//
//   - LTR - left-to-right (Latin, Cyrillic)
//   - RTL - right-to-left (Arabic)
//   - TTB - top-to-bottom (Hiragana)
//
// [Default] holds the built-in sample scripts. Custom tables are built with
// [NewTable]. When ranges of two definitions overlap, the definition declared
// first wins.
//
// # Classification
//
//	def, ok := script.Classify('ب')
//	// def.Name == "Arabic", def.Direction == script.RTL
//
// Code points outside every range are unclassified and contribute nothing to
// directions, tallies or percentages.
//
// # Reports
//
//   - [DominantDirection] - majority vote, first seen wins ties
//   - [Table.Percentages] - per-script share of classified characters
//   - [Table.Analyze] - both, from a single pass over the text
//
// Empty or fully unclassified input has no dominant direction and produces an
// empty [Report].
package script
