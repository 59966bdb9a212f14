// Package swalign is a small toolkit for optimal local alignment of
// symbolic sequences — the Smith-Waterman dynamic program with full
// co-optimal traceback, pluggable scoring, and FASTA plumbing.
//
// 🚀 What is swalign?
//
//	Given two sequences and a substitution model, swalign finds every
//	highest-scoring local alignment between them:
//	  • score + trace matrix construction in one sweep
//	  • enumeration of all co-optimal alignments, or exactly one
//	  • linear or constant (per-gap-event) gap penalties
//	  • BLAST-style text rendering of results
//
// Everything is organized under three subpackages and one command:
//
//	align/   — score/trace matrix construction, traceback, rendering
//	scoring/ — substitution tables, gap policies, table-file parsing
//	fasta/   — minimal FASTA record reading
//	cmd/swalign — the command-line front end
//
// Quick ASCII example, the textbook case:
//
//	Query:   2 GTTGAC 7
//	           GTT AC
//	Sbjct:   2 GTT-AC 6
//
// Dive into align/doc.go for the algorithm walkthrough and the
// example_test.go files for runnable usage.
//
//	go get github.com/katalvlaran/swalign
package swalign
