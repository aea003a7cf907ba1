// Package lvlcat is your in-memory toolkit for categorical data — ordered
// level lists, compact integer codes, and every level reshuffle you need
// between raw labels and a tidy, countable encoding.
//
// 🚀 What is lvlcat?
//
//	A small, deterministic, dependency-light library that brings together:
//		• Core primitives: build a Factor from raw labels, with inferred or explicit levels
//		• Counting: per-level tallies in level order, missing observations tracked separately
//		• Level surgery: rename labels in place, relevel to a new order, drop to a subset
//		• Merging: combine two Factors or unify a whole batch onto one shared level set
//		• Reordering: by frequency, by first appearance, reversed, rotated, or shuffled
//
// ✨ Why choose lvlcat?
//
//   - Value semantics – every transform returns a new Factor; nothing you hold ever
//     changes behind your back
//   - Deterministic – byte-wise default level ordering, injectable RNG for shuffles
//   - Pure Go – no cgo, no hidden deps
//   - Explicit errors – sentinel errors for every rejected input, matched with errors.Is
//
// Everything is organized under two subpackages:
//
//	factor/  — the Factor value type: construction, inspection, counting,
//	           renaming, releveling, combining, unifying
//	reorder/ — level-order transforms over a Factor: frequency, appearance,
//	           reverse, shift, shuffle
//
// Quick sketch:
//
//	raw    = [SI2 SI1 SI2 IF]
//	levels = [I1 SI2 SI1 VS2 VS1 VVS2 VVS1 IF]
//	codes  = [ 1   2   1   7]
//
//	counting yields SI2→2, SI1→1, IF→1, every other level 0.
//
// Dive into each package's doc.go for the full API, complexity notes, and
// runnable examples.
//
//	go get github.com/katalvlaran/lvlcat
package lvlcat
