package lab

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// PlasmaPromptSize is the grid size used when plasma is picked from the prompt.
const PlasmaPromptSize = 100

// Prompt is the plain text selector. It reads a choice and the numeric
// parameters the choice needs, then runs the simulation. An invalid choice
// prints a message and returns nil; malformed numbers return an error.
type Prompt struct {
	In  io.Reader
	Out io.Writer
}

func (p Prompt) Run(ctx context.Context, r *Runner) error {
	sc := bufio.NewScanner(p.In)

	fmt.Fprintln(p.Out, "Select a simulation to run:")
	fmt.Fprintln(p.Out, "1: Quark-Gluon Plasma Simulation")
	fmt.Fprintln(p.Out, "2: Neutrino Transport Simulation")
	fmt.Fprintln(p.Out, "3: Dark Matter Interaction Simulation")
	choice := p.line(sc, "Enter 1, 2, or 3: ")

	switch choice {
	case "1":
		return r.GenerateAndDisplayPlasma(ctx, PlasmaPromptSize)
	case "2":
		steps, err := p.readInt(sc, "Enter the number of steps for the neutrino transport simulation: ")
		if err != nil {
			return err
		}
		return r.RunNeutrinoWalk(ctx, steps)
	case "3":
		particles, err := p.readInt(sc, "Enter the number of dark matter particles: ")
		if err != nil {
			return err
		}
		steps, err := p.readInt(sc, "Enter the number of simulation steps: ")
		if err != nil {
			return err
		}
		return r.RunDarkMatterField(ctx, particles, steps)
	default:
		fmt.Fprintln(p.Out, "Invalid choice. Please enter 1, 2, or 3.")
		return nil
	}
}

func (p Prompt) line(sc *bufio.Scanner, prompt string) string {
	fmt.Fprint(p.Out, prompt)
	if !sc.Scan() {
		return ""
	}
	return strings.TrimSpace(sc.Text())
}

func (p Prompt) readInt(sc *bufio.Scanner, prompt string) (int, error) {
	s := p.line(sc, prompt)
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q: %w", s, err)
	}
	return n, nil
}
