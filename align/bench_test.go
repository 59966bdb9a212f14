package align_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/swalign/align"
	"github.com/katalvlaran/swalign/scoring"
)

// benchSequences builds two deterministic pseudo-random ACGT sequences.
func benchSequences(b *testing.B, n, m int) (align.Sequence, align.Sequence) {
	b.Helper()
	rng := rand.New(rand.NewSource(42))
	q, err := align.NewSequence("q", benchRandom(rng, n))
	if err != nil {
		b.Fatalf("NewSequence failed: %v", err)
	}
	s, err := align.NewSequence("s", benchRandom(rng, m))
	if err != nil {
		b.Fatalf("NewSequence failed: %v", err)
	}

	return q, s
}

func benchRandom(rng *rand.Rand, n int) string {
	const alphabet = "ACGT"
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = alphabet[rng.Intn(len(alphabet))]
	}

	return string(buf)
}

// benchmarkBuild runs Build on n×m sequences with the given gap policy.
func benchmarkBuild(b *testing.B, n, m int, gap scoring.GapPolicy) {
	q, s := benchSequences(b, n, m)
	model := scoring.Uniform(3, -3, "ACGT", gap)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := align.Build(q, s, model); err != nil {
			b.Fatalf("Build failed: %v", err)
		}
	}
}

// BenchmarkBuild_LinearSmall benchmarks the O(N·M) linear-gap fill on 100×100.
func BenchmarkBuild_LinearSmall(b *testing.B) {
	benchmarkBuild(b, 100, 100, scoring.LinearGap(2))
}

// BenchmarkBuild_LinearMedium benchmarks the linear-gap fill on 500×500.
func BenchmarkBuild_LinearMedium(b *testing.B) {
	benchmarkBuild(b, 500, 500, scoring.LinearGap(2))
}

// BenchmarkBuild_ConstantSmall benchmarks the gap-length-scanning fill on 100×100.
func BenchmarkBuild_ConstantSmall(b *testing.B) {
	benchmarkBuild(b, 100, 100, scoring.ConstantGap(8))
}

// BenchmarkMaxScore_Rolling benchmarks the two-row score-only evaluation on 500×500.
func BenchmarkMaxScore_Rolling(b *testing.B) {
	q, s := benchSequences(b, 500, 500)
	model := scoring.Uniform(3, -3, "ACGT", scoring.LinearGap(2))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := align.MaxScore(q, s, model); err != nil {
			b.Fatalf("MaxScore failed: %v", err)
		}
	}
}

// BenchmarkTraceback_One benchmarks a single-alignment walk on 200×200.
func BenchmarkTraceback_One(b *testing.B) {
	q, s := benchSequences(b, 200, 200)
	model := scoring.Uniform(3, -3, "ACGT", scoring.LinearGap(2))
	m, err := align.Build(q, s, model)
	if err != nil {
		b.Fatalf("Build failed: %v", err)
	}
	opts := align.DefaultOptions()
	opts.Mode = align.ModeOne

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = align.Traceback(m, &opts); err != nil {
			b.Fatalf("Traceback failed: %v", err)
		}
	}
}
