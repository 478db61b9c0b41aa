// Package simqueue simulates a multiserver queue under size-based scheduling
// policies and reports mean response time per offered load. It is the data
// producer for the plotting tools: its output is the semicolon table they parse.
package simqueue

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Hyperexp is a two-branch hyperexponential job-size distribution: with
// probability ProbLow a sample is drawn from Exp(LowMu), otherwise from
// Exp(HighMu).
type Hyperexp struct {
	LowMu   float64
	HighMu  float64
	ProbLow float64
}

// DefaultDist is the job-size distribution used throughout the experiments;
// its mean is 1 (0.95/1.9 + 0.05/0.1).
var DefaultDist = Hyperexp{LowMu: 1.9, HighMu: 0.1, ProbLow: 0.95}

// Sample draws one job size.
func (h Hyperexp) Sample(rng *rand.Rand) float64 {
	mu := h.HighMu
	if rng.Float64() < h.ProbLow {
		mu = h.LowMu
	}
	return distuv.Exponential{Rate: mu, Src: rng}.Rand()
}

// Mean returns the distribution's expected value.
func (h Hyperexp) Mean() float64 {
	return h.ProbLow/h.LowMu + (1-h.ProbLow)/h.HighMu
}
