package physics

import "github.com/san-kum/quarkviz/internal/quantum"

// Neutrino walks the integer lattice, taking one of the four unit moves
// uniformly at random per step.
type Neutrino struct{}

func NewNeutrino() *Neutrino { return &Neutrino{} }

// Simulate returns a path of steps+1 points starting at the origin.
func (n *Neutrino) Simulate(steps int, rng quantum.Rand) (quantum.Path, error) {
	if err := quantum.CheckSteps(steps); err != nil {
		return quantum.Path{}, err
	}
	path := quantum.NewPath(steps)
	for i := 0; i < steps; i++ {
		m := quantum.Moves[rng.Intn(len(quantum.Moves))]
		path.Append(m[0], m[1])
	}
	return path, nil
}
