package rng

import (
	"testing"
)

func TestNewRNG_Determinism(t *testing.T) {
	masterSeed := "universe-seed-123"
	label := "test_stage"

	rng1 := NewRNG(masterSeed, label)
	rng2 := NewRNG(masterSeed, label)

	if rng1.Seed() != rng2.Seed() {
		t.Errorf("Same inputs produced different seeds: %d vs %d", rng1.Seed(), rng2.Seed())
	}

	for i := 0; i < 100; i++ {
		v1 := rng1.Uint64()
		v2 := rng2.Uint64()
		if v1 != v2 {
			t.Errorf("Iteration %d: Same RNGs produced different values: %d vs %d", i, v1, v2)
		}
	}
}

func TestNewRNG_SequenceDeterminism(t *testing.T) {
	masterSeed := "987654321"
	label := "graph_synthesis"

	rng1 := NewRNG(masterSeed, label)
	sequence1 := make([]uint64, 50)
	for i := range sequence1 {
		sequence1[i] = rng1.Uint64()
	}

	rng2 := NewRNG(masterSeed, label)
	sequence2 := make([]uint64, 50)
	for i := range sequence2 {
		sequence2[i] = rng2.Uint64()
	}

	for i := range sequence1 {
		if sequence1[i] != sequence2[i] {
			t.Errorf("Position %d: sequences differ: %d vs %d", i, sequence1[i], sequence2[i])
		}
	}
}

func TestNewRNG_DifferentLabels(t *testing.T) {
	masterSeed := "123456789"

	rng1 := NewRNG(masterSeed, "attempt:1")
	rng2 := NewRNG(masterSeed, "attempt:2")
	rng3 := NewRNG(masterSeed, "attempt:3")

	if rng1.Seed() == rng2.Seed() {
		t.Error("Different labels produced identical seeds")
	}
	if rng1.Seed() == rng3.Seed() {
		t.Error("Different labels produced identical seeds")
	}
	if rng2.Seed() == rng3.Seed() {
		t.Error("Different labels produced identical seeds")
	}

	if rng1.StageName() != "attempt:1" {
		t.Errorf("Stage name not preserved: got %s", rng1.StageName())
	}
}

func TestNewRNG_DifferentMasterSeeds(t *testing.T) {
	label := "test_stage"

	rng1 := NewRNG("111", label)
	rng2 := NewRNG("222", label)
	rng3 := NewRNG("333", label)

	if rng1.Seed() == rng2.Seed() {
		t.Error("Different master seeds produced identical seeds")
	}
	if rng1.Seed() == rng3.Seed() {
		t.Error("Different master seeds produced identical seeds")
	}
	if rng2.Seed() == rng3.Seed() {
		t.Error("Different master seeds produced identical seeds")
	}
}

func TestNewAttemptRNG_Determinism(t *testing.T) {
	a1 := NewAttemptRNG("seed-0", 3)
	a2 := NewAttemptRNG("seed-0", 3)
	if a1.Seed() != a2.Seed() {
		t.Errorf("same (seed, attempt) produced different RNG seeds")
	}

	a3 := NewAttemptRNG("seed-0", 4)
	if a1.Seed() == a3.Seed() {
		t.Errorf("different attempt indices produced the same RNG seed")
	}
}

func TestRNG_Derive(t *testing.T) {
	base := NewAttemptRNG("seed-0", 1)
	d1 := base.Derive("world:0")
	d2 := base.Derive("world:0")
	d3 := base.Derive("world:1")

	if d1.Seed() != d2.Seed() {
		t.Error("Derive is not deterministic for the same sub-label")
	}
	if d1.Seed() == d3.Seed() {
		t.Error("Derive produced identical seeds for different sub-labels")
	}
}

func TestRNG_Intn(t *testing.T) {
	masterSeed := "123456789"
	label := "test"

	rng := NewRNG(masterSeed, label)

	for i := 0; i < 100; i++ {
		v := rng.Intn(10)
		if v < 0 || v >= 10 {
			t.Errorf("Intn(10) produced out-of-range value: %d", v)
		}
	}

	rng1 := NewRNG(masterSeed, label)
	rng2 := NewRNG(masterSeed, label)

	for i := 0; i < 50; i++ {
		v1 := rng1.Intn(100)
		v2 := rng2.Intn(100)
		if v1 != v2 {
			t.Errorf("Iteration %d: Intn not deterministic: %d vs %d", i, v1, v2)
		}
	}
}

func TestRNG_IntnPanic(t *testing.T) {
	rng := NewRNG("123456789", "test")

	defer func() {
		if r := recover(); r == nil {
			t.Error("Intn(0) did not panic")
		}
	}()

	rng.Intn(0)
}

func TestRNG_Float64(t *testing.T) {
	masterSeed := "123456789"
	label := "test"

	rng := NewRNG(masterSeed, label)

	for i := 0; i < 100; i++ {
		v := rng.Float64()
		if v < 0.0 || v >= 1.0 {
			t.Errorf("Float64() produced out-of-range value: %f", v)
		}
	}

	rng1 := NewRNG(masterSeed, label)
	rng2 := NewRNG(masterSeed, label)

	for i := 0; i < 50; i++ {
		v1 := rng1.Float64()
		v2 := rng2.Float64()
		if v1 != v2 {
			t.Errorf("Iteration %d: Float64 not deterministic: %f vs %f", i, v1, v2)
		}
	}
}

func TestRNG_Shuffle(t *testing.T) {
	masterSeed := "123456789"
	label := "test"

	rng1 := NewRNG(masterSeed, label)
	slice1 := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	rng1.Shuffle(len(slice1), func(i, j int) {
		slice1[i], slice1[j] = slice1[j], slice1[i]
	})

	rng2 := NewRNG(masterSeed, label)
	slice2 := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	rng2.Shuffle(len(slice2), func(i, j int) {
		slice2[i], slice2[j] = slice2[j], slice2[i]
	})

	for i := range slice1 {
		if slice1[i] != slice2[i] {
			t.Errorf("Position %d: Shuffle not deterministic: %d vs %d", i, slice1[i], slice2[i])
		}
	}

	allSame := true
	for i := range slice1 {
		if slice1[i] != i {
			allSame = false
			break
		}
	}
	if allSame {
		t.Error("Shuffle did not change order (extremely unlikely)")
	}
}

func TestRNG_IntRange(t *testing.T) {
	rng := NewRNG("123456789", "test")

	for i := 0; i < 100; i++ {
		v := rng.IntRange(5, 10)
		if v < 5 || v > 10 {
			t.Errorf("IntRange(5, 10) produced out-of-range value: %d", v)
		}
	}

	for i := 0; i < 10; i++ {
		v := rng.IntRange(7, 7)
		if v != 7 {
			t.Errorf("IntRange(7, 7) produced wrong value: %d", v)
		}
	}
}

func TestRNG_IntRangePanic(t *testing.T) {
	rng := NewRNG("123456789", "test")

	defer func() {
		if r := recover(); r == nil {
			t.Error("IntRange(10, 5) did not panic")
		}
	}()

	rng.IntRange(10, 5)
}

func TestRNG_Float64Range(t *testing.T) {
	rng := NewRNG("123456789", "test")

	for i := 0; i < 100; i++ {
		v := rng.Float64Range(5.0, 10.0)
		if v < 5.0 || v >= 10.0 {
			t.Errorf("Float64Range(5.0, 10.0) produced out-of-range value: %f", v)
		}
	}
}

func TestRNG_Float64RangePanic(t *testing.T) {
	rng := NewRNG("123456789", "test")

	defer func() {
		if r := recover(); r == nil {
			t.Error("Float64Range(10.0, 5.0) did not panic")
		}
	}()

	rng.Float64Range(10.0, 5.0)
}

func TestRNG_Bool(t *testing.T) {
	masterSeed := "123456789"
	label := "test"

	rng1 := NewRNG(masterSeed, label)
	rng2 := NewRNG(masterSeed, label)

	for i := 0; i < 50; i++ {
		v1 := rng1.Bool()
		v2 := rng2.Bool()
		if v1 != v2 {
			t.Errorf("Iteration %d: Bool not deterministic: %v vs %v", i, v1, v2)
		}
	}

	rng3 := NewRNG(masterSeed, label)
	trueCount := 0
	falseCount := 0
	for i := 0; i < 100; i++ {
		if rng3.Bool() {
			trueCount++
		} else {
			falseCount++
		}
	}

	if trueCount == 0 || falseCount == 0 {
		t.Error("Bool() produced only one value across 100 samples (extremely unlikely)")
	}
}

func TestRNG_WeightedChoice(t *testing.T) {
	masterSeed := "123456789"
	label := "test"

	tests := []struct {
		name    string
		weights []float64
		want    int // -1 for "should return -1"
	}{
		{"empty weights", []float64{}, -1},
		{"all zero weights", []float64{0, 0, 0}, -1},
		{"single weight", []float64{1.0}, 0},
		{"equal weights", []float64{1.0, 1.0, 1.0}, -2}, // -2 means "valid index"
		{"skewed weights", []float64{0.0, 10.0, 0.0}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng := NewRNG(masterSeed, label)
			got := rng.WeightedChoice(tt.weights)

			if tt.want == -1 {
				if got != -1 {
					t.Errorf("WeightedChoice() = %d, want -1", got)
				}
			} else if tt.want >= 0 {
				if got != tt.want {
					t.Errorf("WeightedChoice() = %d, want %d", got, tt.want)
				}
			} else {
				if got < 0 || got >= len(tt.weights) {
					t.Errorf("WeightedChoice() = %d, want valid index [0, %d)", got, len(tt.weights))
				}
			}
		})
	}

	weights := []float64{1.0, 2.0, 3.0}
	rng1 := NewRNG(masterSeed, label)
	rng2 := NewRNG(masterSeed, label)

	for i := 0; i < 50; i++ {
		v1 := rng1.WeightedChoice(weights)
		v2 := rng2.WeightedChoice(weights)
		if v1 != v2 {
			t.Errorf("Iteration %d: WeightedChoice not deterministic: %d vs %d", i, v1, v2)
		}
	}
}

func TestRNG_WeightedChoicePanic(t *testing.T) {
	rng := NewRNG("123456789", "test")

	defer func() {
		if r := recover(); r == nil {
			t.Error("WeightedChoice with negative weights did not panic")
		}
	}()

	rng.WeightedChoice([]float64{1.0, -1.0, 2.0})
}

func BenchmarkNewRNG(b *testing.B) {
	masterSeed := "123456789"
	label := "benchmark_stage"

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = NewRNG(masterSeed, label)
	}
}

func BenchmarkRNG_Uint64(b *testing.B) {
	rng := NewRNG("123456789", "benchmark")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = rng.Uint64()
	}
}

func BenchmarkRNG_Intn(b *testing.B) {
	rng := NewRNG("123456789", "benchmark")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = rng.Intn(100)
	}
}

func BenchmarkRNG_Float64(b *testing.B) {
	rng := NewRNG("123456789", "benchmark")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = rng.Float64()
	}
}
