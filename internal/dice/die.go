package dice

import (
	"fmt"
	"sync"
)

// FaceWeight pairs a face with its weight (or probability, for Probabilities).
type FaceWeight[L comparable] struct {
	Face   L
	Weight float64
}

// Die is a finite set of distinct faces with a mutable weight per face.
// Weights are relative; they do not have to sum to 1.
type Die[L comparable] struct {
	mu      sync.Mutex
	faces   []L
	index   map[L]int
	weights []float64
	rng     RandomSource
}

// Option configures a Die at construction.
type Option func(*options)

type options struct {
	rng     RandomSource
	weights []float64
}

// WithRandomSource sets the source the die draws from. Nil keeps DefaultRNG.
func WithRandomSource(rng RandomSource) Option {
	return func(o *options) { o.rng = rng }
}

// WithWeights sets the initial weights, aligned with faces.
func WithWeights(weights []float64) Option {
	return func(o *options) { o.weights = weights }
}

// New creates a die with the given faces, every face weighted 1.0 unless WithWeights is used.
func New[L comparable](faces []L, opts ...Option) (*Die[L], error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	index, err := validateFaces(faces)
	if err != nil {
		return nil, err
	}

	weights := make([]float64, len(faces))
	if o.weights != nil {
		if len(o.weights) != len(faces) {
			return nil, fmt.Errorf("%w: %d weights for %d faces", ErrInvalidInput, len(o.weights), len(faces))
		}
		for i, w := range o.weights {
			if err := validateWeight(w); err != nil {
				return nil, fmt.Errorf("face %v: %w", faces[i], err)
			}
			weights[i] = w
		}
	} else {
		for i := range weights {
			weights[i] = 1.0
		}
	}

	rng := o.rng
	if rng == nil {
		rng = DefaultRNG()
	}
	return &Die[L]{
		faces:   append([]L(nil), faces...),
		index:   index,
		weights: weights,
		rng:     rng,
	}, nil
}

// SetWeight replaces the weight of one face. On error the die is unchanged.
func (d *Die[L]) SetWeight(face L, weight float64) error {
	i, ok := d.index[face]
	if !ok {
		return fmt.Errorf("%w: %v", ErrUnknownLabel, face)
	}
	if err := validateWeight(weight); err != nil {
		return fmt.Errorf("face %v: %w", face, err)
	}
	d.mu.Lock()
	d.weights[i] = weight
	d.mu.Unlock()
	return nil
}

// Draw performs count independent weighted draws with replacement.
func (d *Die[L]) Draw(count int) ([]L, error) {
	if count < 1 {
		return nil, fmt.Errorf("%w: draw count %d must be >= 1", ErrInvalidInput, count)
	}
	d.mu.Lock()
	defer d.mu.Unlock()

	out := make([]L, count)
	for n := range out {
		i, err := pick(d.weights, d.rng)
		if err != nil {
			return nil, err
		}
		out[n] = d.faces[i]
	}
	return out, nil
}

// Roll draws a single face.
func (d *Die[L]) Roll() (L, error) {
	out, err := d.Draw(1)
	if err != nil {
		var zero L
		return zero, err
	}
	return out[0], nil
}

// Faces returns the faces in construction order.
func (d *Die[L]) Faces() []L {
	return append([]L(nil), d.faces...)
}

// Len returns the number of faces.
func (d *Die[L]) Len() int { return len(d.faces) }

// Weight returns the current weight of face.
func (d *Die[L]) Weight(face L) (float64, bool) {
	i, ok := d.index[face]
	if !ok {
		return 0, false
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.weights[i], true
}

// Snapshot returns a copy of the current face weights in face order.
func (d *Die[L]) Snapshot() []FaceWeight[L] {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]FaceWeight[L], len(d.faces))
	for i, f := range d.faces {
		out[i] = FaceWeight[L]{Face: f, Weight: d.weights[i]}
	}
	return out
}

// Probabilities returns the weights normalized to sum to 1.
// A die whose weights are all zero has no distribution and yields ErrInvalidWeight.
func (d *Die[L]) Probabilities() ([]FaceWeight[L], error) {
	snap := d.Snapshot()
	total := 0.0
	for _, fw := range snap {
		total += fw.Weight
	}
	if total <= 0 {
		return nil, fmt.Errorf("%w: every face has weight 0", ErrInvalidWeight)
	}
	for i := range snap {
		snap[i].Weight /= total
	}
	return snap, nil
}
