// Package align computes optimal local alignments between two symbolic
// sequences with the Smith-Waterman dynamic program.
//
// 🚀 What is local alignment?
//
//	Given two sequences, find the pair of substrings whose alignment
//	maximizes a substitution score, allowing gaps at a penalty and
//	resetting any negative-scoring prefix to zero. It is the workhorse
//	of biological sequence comparison (BLAST-style search, read
//	mapping) and of fuzzy matching in general.
//
// ✨ Key features:
//   - score matrix + trace matrix construction in one sweep (Build)
//   - every co-optimal move recorded per cell, so Traceback can
//     enumerate all optimal alignments, not just one (ModeAll/ModeOne)
//   - pluggable gap policies via scoring.GapPolicy: the linear policy
//     keeps the fill at O(N·M); the constant per-event policy scans
//     candidate gap lengths
//   - score-only evaluation with two rolling rows (MaxScore) when the
//     alignments themselves are not needed: O(min(N,M)) extra memory
//   - optional concurrent exploration of multiple maxima
//     (Options.Workers) with output order identical to the sequential run
//   - BLAST-style text rendering of finished alignments ((Alignment).Text)
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/swalign/align"
//	  "github.com/katalvlaran/swalign/scoring"
//	)
//
//	query, _ := align.NewSequence("query", "GGTTGACTA")
//	subject, _ := align.NewSequence("subject", "TGTTACGG")
//	model := scoring.Uniform(3, -3, "ACGT", scoring.LinearGap(2))
//
//	opts := align.DefaultOptions()
//	alignments, err := align.Align(query, subject, model, &opts)
//
// Performance:
//
//   - Time:   O(N·M) with a linear gap policy,
//     O(N·M·max(N,M)) with a length-independent (constant) one
//   - Memory: O(N·M) for Build, O(min rolling rows) for MaxScore
//
// Errors are sentinel values (ErrEmptySequence, ErrNilModel,
// ErrInvalidTrace) plus scoring.ErrUnknownSymbol propagated from the
// substitution lookup. See example_test.go for runnable walkthroughs.
package align
