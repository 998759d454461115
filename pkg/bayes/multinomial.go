// Package bayes implements a multinomial Naive Bayes classifier over count
// vectors, trained by frequency counting with additive smoothing.
package bayes

import (
	"errors"
	"fmt"
	"math"
)

// DefaultAlpha is Laplace smoothing.
const DefaultAlpha = 1.0

var (
	ErrNoSamples         = errors.New("no training samples")
	ErrDimensionMismatch = errors.New("feature vector has the wrong width")
	ErrLabelOutOfRange   = errors.New("label index out of range")
	ErrNegativeFeature   = errors.New("feature counts must be non-negative")
	ErrEmptyClass        = errors.New("class has no training samples")
	ErrInvalidParams     = errors.New("invalid model parameters")
)

// Params is the serializable state of a trained Model.
type Params struct {
	Alpha          float64     `json:"alpha"`
	ClassCount     []float64   `json:"class_count"`
	ClassLogPrior  []float64   `json:"class_log_prior"`
	FeatureCount   [][]float64 `json:"feature_count"`
	FeatureLogProb [][]float64 `json:"feature_log_prob"`
}

// Model is immutable once built and safe for concurrent use.
type Model struct {
	params Params
}

// Train fits a model on count vectors X with class indices y in [0, numClasses).
func Train(X [][]float64, y []int, numClasses int, alpha float64) (*Model, error) {
	if len(X) == 0 || numClasses <= 0 {
		return nil, ErrNoSamples
	}
	if len(X) != len(y) {
		return nil, fmt.Errorf("got %d vectors for %d labels: %w", len(X), len(y), ErrDimensionMismatch)
	}
	if alpha < 0 {
		return nil, fmt.Errorf("alpha %v: %w", alpha, ErrInvalidParams)
	}

	width := len(X[0])
	if width == 0 {
		return nil, fmt.Errorf("zero width vectors: %w", ErrDimensionMismatch)
	}

	classCount := make([]float64, numClasses)
	featureCount := make([][]float64, numClasses)
	for c := range featureCount {
		featureCount[c] = make([]float64, width)
	}

	for i, x := range X {
		if len(x) != width {
			return nil, fmt.Errorf("sample %d has %d features, want %d: %w", i, len(x), width, ErrDimensionMismatch)
		}
		c := y[i]
		if c < 0 || c >= numClasses {
			return nil, fmt.Errorf("sample %d label %d: %w", i, c, ErrLabelOutOfRange)
		}

		classCount[c]++
		for j, v := range x {
			if v < 0 {
				return nil, fmt.Errorf("sample %d feature %d: %w", i, j, ErrNegativeFeature)
			}
			featureCount[c][j] += v
		}
	}

	total := float64(len(X))
	classLogPrior := make([]float64, numClasses)
	featureLogProb := make([][]float64, numClasses)

	for c := 0; c < numClasses; c++ {
		if classCount[c] == 0 {
			return nil, fmt.Errorf("class %d: %w", c, ErrEmptyClass)
		}
		classLogPrior[c] = math.Log(classCount[c] / total)

		var sum float64
		for _, v := range featureCount[c] {
			sum += v
		}
		denom := math.Log(sum + alpha*float64(width))

		featureLogProb[c] = make([]float64, width)
		for j, v := range featureCount[c] {
			featureLogProb[c][j] = math.Log(v+alpha) - denom
		}
	}

	return &Model{params: Params{
		Alpha:          alpha,
		ClassCount:     classCount,
		ClassLogPrior:  classLogPrior,
		FeatureCount:   featureCount,
		FeatureLogProb: featureLogProb,
	}}, nil
}

// FromParams restores a model, checking that the parameter shapes agree.
func FromParams(p Params) (*Model, error) {
	classes := len(p.ClassLogPrior)
	if classes == 0 {
		return nil, fmt.Errorf("no classes: %w", ErrInvalidParams)
	}
	if len(p.FeatureLogProb) != classes {
		return nil, fmt.Errorf("%d prior rows for %d probability rows: %w", classes, len(p.FeatureLogProb), ErrInvalidParams)
	}

	width := len(p.FeatureLogProb[0])
	if width == 0 {
		return nil, fmt.Errorf("zero width: %w", ErrInvalidParams)
	}
	for c, row := range p.FeatureLogProb {
		if len(row) != width {
			return nil, fmt.Errorf("row %d has %d features, want %d: %w", c, len(row), width, ErrInvalidParams)
		}
	}

	return &Model{params: clone(p)}, nil
}

func (m *Model) Params() Params {
	return clone(m.params)
}

func (m *Model) NumClasses() int {
	return len(m.params.ClassLogPrior)
}

func (m *Model) NumFeatures() int {
	return len(m.params.FeatureLogProb[0])
}

// JointLogLikelihood returns log P(c) + Σ x_j log P(j|c) for every class.
func (m *Model) JointLogLikelihood(x []float64) ([]float64, error) {
	if len(x) != m.NumFeatures() {
		return nil, fmt.Errorf("got %d features, want %d: %w", len(x), m.NumFeatures(), ErrDimensionMismatch)
	}

	scores := make([]float64, m.NumClasses())
	for c, prior := range m.params.ClassLogPrior {
		score := prior
		for j, v := range x {
			if v != 0 {
				score += v * m.params.FeatureLogProb[c][j]
			}
		}
		scores[c] = score
	}
	return scores, nil
}

// Predict returns the most probable class. Ties go to the lowest index, so a
// zero vector yields the class with the largest prior.
func (m *Model) Predict(x []float64) (int, error) {
	scores, err := m.JointLogLikelihood(x)
	if err != nil {
		return 0, err
	}

	best := 0
	for c := 1; c < len(scores); c++ {
		if scores[c] > scores[best] {
			best = c
		}
	}
	return best, nil
}

func clone(p Params) Params {
	return Params{
		Alpha:          p.Alpha,
		ClassCount:     append([]float64(nil), p.ClassCount...),
		ClassLogPrior:  append([]float64(nil), p.ClassLogPrior...),
		FeatureCount:   cloneMatrix(p.FeatureCount),
		FeatureLogProb: cloneMatrix(p.FeatureLogProb),
	}
}

func cloneMatrix(m [][]float64) [][]float64 {
	if m == nil {
		return nil
	}
	out := make([][]float64, len(m))
	for i, row := range m {
		out[i] = append([]float64(nil), row...)
	}
	return out
}
