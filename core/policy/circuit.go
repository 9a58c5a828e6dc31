// Package policy maps a low-dimensional traffic state onto four discrete
// risk levels through a classically simulated variational rotation circuit.
// The simulation is plain linear algebra over a four-amplitude complex
// state vector; no quantum hardware or SDK is involved.
package policy

import (
	"fmt"
	"math"
	"math/cmplx"
	"math/rand"

	"gonum.org/v1/gonum/floats"
)

const (
	numQubits = 2
	// NumOutcomes is the number of joint basis outcomes of the circuit.
	NumOutcomes = 1 << numQubits
)

// Config holds circuit dimensioning and the weight-initialization seed.
type Config struct {
	Layers int   `json:"layers"`
	Seed   int64 `json:"seed"`
}

// SetDefaults applies the standard two-layer, seed-42 policy.
func (c *Config) SetDefaults() {
	if c.Layers == 0 {
		c.Layers = 2
	}
	if c.Seed == 0 {
		c.Seed = 42
	}
}

// Validate checks the circuit dimensioning.
func (c Config) Validate() error {
	if c.Layers < 1 {
		return fmt.Errorf("layers must be positive, got %d", c.Layers)
	}
	return nil
}

// gate is a 2x2 unitary applied to one subsystem.
type gate [2][2]complex128

func rotX(theta float64) gate {
	c := complex(math.Cos(theta/2), 0)
	s := complex(0, -math.Sin(theta/2))
	return gate{{c, s}, {s, c}}
}

func rotY(theta float64) gate {
	c := complex(math.Cos(theta/2), 0)
	s := complex(math.Sin(theta/2), 0)
	return gate{{c, -s}, {s, c}}
}

func rotZ(theta float64) gate {
	return gate{
		{cmplx.Exp(complex(0, -theta/2)), 0},
		{0, cmplx.Exp(complex(0, theta/2))},
	}
}

// Circuit is a fixed-width variational rotation circuit over two two-level
// subsystems. Weights are drawn once from a seeded N(0, 0.1) and held
// constant for the lifetime of the instance: the policy is a fixed seeded
// heuristic, not an online learner. Probabilities is a pure function of the
// weights and input, so inference is bit-for-bit reproducible.
type Circuit struct {
	layers  int
	weights [][numQubits][3]float64 // per layer, per qubit: RX, RY, RZ angles
}

// NewCircuit draws the rotation angles for cfg.Layers layers from the
// seeded initializer.
func NewCircuit(cfg Config) *Circuit {
	cfg.SetDefaults()
	rng := rand.New(rand.NewSource(cfg.Seed))
	weights := make([][numQubits][3]float64, cfg.Layers)
	for l := range weights {
		for q := 0; q < numQubits; q++ {
			for i := 0; i < 3; i++ {
				weights[l][q][i] = rng.NormFloat64() * 0.1
			}
		}
	}
	return &Circuit{layers: cfg.Layers, weights: weights}
}

// Probabilities runs the circuit on the 2-vector x (each component in
// [0, 1]) and returns the normalized probability of each joint basis
// outcome.
func (c *Circuit) Probabilities(x [2]float64) [NumOutcomes]float64 {
	// Start in the joint ground state.
	state := [NumOutcomes]complex128{1}

	// Angle encoding: one Y-rotation per subsystem.
	applySingle(&state, rotY(math.Pi*x[0]), 0)
	applySingle(&state, rotY(math.Pi*x[1]), 1)

	for l := 0; l < c.layers; l++ {
		applyCNOT(&state)
		for q := 0; q < numQubits; q++ {
			w := c.weights[l][q]
			applySingle(&state, rotX(w[0]), q)
			applySingle(&state, rotY(w[1]), q)
			applySingle(&state, rotZ(w[2]), q)
		}
	}

	var probs [NumOutcomes]float64
	for i, a := range state {
		probs[i] = real(a)*real(a) + imag(a)*imag(a)
	}
	// Renormalize against floating drift.
	if sum := floats.Sum(probs[:]); sum > 0 {
		floats.Scale(1/sum, probs[:])
	} else {
		for i := range probs {
			probs[i] = 1.0 / NumOutcomes
		}
	}
	return probs
}

// applySingle applies a 2x2 unitary to the given subsystem. Subsystem 0 is
// the high bit of the basis index, matching |q0 q1> outcome ordering.
func applySingle(state *[NumOutcomes]complex128, u gate, qubit int) {
	bit := NumOutcomes >> (qubit + 1)
	for i := 0; i < NumOutcomes; i++ {
		if i&bit != 0 {
			continue
		}
		j := i | bit
		a0, a1 := state[i], state[j]
		state[i] = u[0][0]*a0 + u[0][1]*a1
		state[j] = u[1][0]*a0 + u[1][1]*a1
	}
}

// applyCNOT flips subsystem 1 when subsystem 0 is set: it swaps the |10>
// and |11> amplitudes.
func applyCNOT(state *[NumOutcomes]complex128) {
	state[2], state[3] = state[3], state[2]
}
