package align_test

import (
	"fmt"

	"github.com/katalvlaran/swalign/align"
	"github.com/katalvlaran/swalign/scoring"
)

// ExampleAlign runs the textbook Smith-Waterman case: GGTTGACTA against
// TGTTACGG under +3/-3 with a -2 per-column gap. One optimal local
// alignment exists, scoring 13.
func ExampleAlign() {
	query, _ := align.NewSequence("query", "GGTTGACTA")
	subject, _ := align.NewSequence("subject", "TGTTACGG")
	model := scoring.Uniform(3, -3, "ACGT", scoring.LinearGap(2))

	alignments, err := align.Align(query, subject, model, nil)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	al := alignments[0]
	fmt.Printf("alignments=%d score=%d\n", len(alignments), al.Score)
	fmt.Println(al.Query)
	fmt.Println(al.Midline)
	fmt.Println(al.Subject)
	fmt.Printf("query %d-%d, subject %d-%d\n", al.QueryStart, al.QueryEnd, al.SubjectStart, al.SubjectEnd)
	// Output:
	// alignments=1 score=13
	// GTTGAC
	// GTT AC
	// GTT-AC
	// query 2-7, subject 2-6
}

// ExampleAlign_modeOne asks for a single deterministic alignment even
// when several co-optimal ones exist.
func ExampleAlign_modeOne() {
	query, _ := align.NewSequence("q", "CAGC")
	subject, _ := align.NewSequence("s", "CATC")
	model := scoring.Uniform(2, -2, "ACGT", scoring.LinearGap(1))

	opts := align.DefaultOptions()
	opts.Mode = align.ModeOne
	alignments, _ := align.Align(query, subject, model, &opts)
	fmt.Printf("alignments=%d\n", len(alignments))
	fmt.Println(alignments[0])
	// Output:
	// alignments=1
	// q:1-2 s:1-2 score=4
}

// ExampleAlignment_Text renders an alignment as BLAST-style blocks.
func ExampleAlignment_Text() {
	query, _ := align.NewSequence("query", "GGTTGACTA")
	subject, _ := align.NewSequence("subject", "TGTTACGG")
	model := scoring.Uniform(3, -3, "ACGT", scoring.LinearGap(2))

	alignments, _ := align.Align(query, subject, model, nil)
	fmt.Print(alignments[0].Text(0))
	// Output:
	// Query:   2 GTTGAC 7
	//            GTT AC
	// Sbjct:   2 GTT-AC 6
}

// ExampleMaxScore computes only the optimal score, with two rolling rows
// instead of a full matrix.
func ExampleMaxScore() {
	query, _ := align.NewSequence("q", "AATTAA")
	subject, _ := align.NewSequence("s", "AAAA")

	linear, _ := align.MaxScore(query, subject, scoring.Uniform(3, -3, "AT", scoring.LinearGap(2)))
	constant, _ := align.MaxScore(query, subject, scoring.Uniform(3, -3, "AT", scoring.ConstantGap(2)))
	fmt.Printf("linear=%d constant=%d\n", linear, constant)
	// Output:
	// linear=8 constant=10
}
