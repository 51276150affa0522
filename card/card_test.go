package card

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

func pool(n int) []string {
	labels := make([]string, n)
	for i := range labels {
		labels[i] = fmt.Sprintf("label %d", i)
	}
	return labels
}

func TestGenerateDrawsDistinctLabelsFromPool(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for _, size := range []int{25, 26, 40, 200} {
		labels := pool(size)
		inPool := make(map[string]bool, size)
		for _, l := range labels {
			inPool[l] = true
		}

		for trial := 0; trial < 50; trial++ {
			c, err := Generate(labels, 5, rng)
			if err != nil {
				t.Fatalf("pool of %d: %v", size, err)
			}
			if len(c) != 25 {
				t.Fatalf("pool of %d: expected 25 labels, got %d", size, len(c))
			}
			seen := make(map[string]bool, 25)
			for _, l := range c {
				if !inPool[l] {
					t.Fatalf("label %q not in pool", l)
				}
				if seen[l] {
					t.Fatalf("label %q drawn twice", l)
				}
				seen[l] = true
			}
		}
	}
}

func TestGenerateLeavesInputUntouched(t *testing.T) {
	labels := pool(30)
	want := pool(30)

	if _, err := Generate(labels, 5, rand.New(rand.NewPCG(3, 4))); err != nil {
		t.Fatal(err)
	}
	for i := range want {
		if labels[i] != want[i] {
			t.Fatalf("input changed at %d: %q", i, labels[i])
		}
	}
}

func TestGenerateInsufficientData(t *testing.T) {
	labels := pool(24)
	want := pool(24)

	c, err := Generate(labels, 5, rand.New(rand.NewPCG(5, 6)))
	if !errors.Is(err, ErrInsufficientData) {
		t.Fatalf("expected ErrInsufficientData, got %v", err)
	}
	if c != nil {
		t.Fatalf("expected no card, got %v", c)
	}
	for i := range want {
		if labels[i] != want[i] {
			t.Fatalf("input changed at %d: %q", i, labels[i])
		}
	}
}

// Every label must be equally likely at every position.
func TestGeneratePositionsUnbiased(t *testing.T) {
	const (
		poolSize = 30
		trials   = 30000
	)
	labels := pool(poolSize)
	index := make(map[string]int, poolSize)
	for i, l := range labels {
		index[l] = i
	}

	counts := make([][]float64, 25)
	for p := range counts {
		counts[p] = make([]float64, poolSize)
	}

	rng := rand.New(rand.NewPCG(7, 8))
	for trial := 0; trial < trials; trial++ {
		c, err := Generate(labels, 5, rng)
		if err != nil {
			t.Fatal(err)
		}
		for p, l := range c {
			counts[p][index[l]]++
		}
	}

	expected := make([]float64, poolSize)
	for i := range expected {
		expected[i] = float64(trials) / poolSize
	}
	chi := distuv.ChiSquared{K: poolSize - 1}
	for p, observed := range counts {
		x := stat.ChiSquare(observed, expected)
		if pValue := chi.Survival(x); pValue < 1e-6 {
			t.Errorf("position %d biased: chi2=%.1f p=%g", p, x, pValue)
		}
	}
}

func TestAt(t *testing.T) {
	c := Card(pool(25))
	if got := c.At(2, 3, 5); got != "label 13" {
		t.Fatalf("expected 'label 13', got '%v'", got)
	}
}
