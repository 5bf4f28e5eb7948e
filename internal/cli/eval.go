package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/oneloop"
	"github.com/katalvlaran/oneloop/laurent"
)

// NewA0Command creates the one-point (tadpole) subcommand.
func NewA0Command(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "a0 <m²>",
		Short: "Evaluate the one-point (tadpole) integral",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := parseMass(args[0])
			if err != nil {
				return err
			}
			return printResult(cmd, rootOpts, oneloop.OnePoint(m))
		},
	}
}

// NewB0Command creates the two-point (bubble) subcommand.
func NewB0Command(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "b0 <p²> <m1²> <m2²>",
		Short: "Evaluate the two-point (bubble) integral",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parseInvariant(args[0])
			if err != nil {
				return err
			}
			ms, err := parseMasses(args[1:])
			if err != nil {
				return err
			}
			return printResult(cmd, rootOpts, oneloop.TwoPoint(p, ms[0], ms[1]))
		},
	}
}

// NewC0Command creates the three-point (triangle) subcommand.
func NewC0Command(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "c0 <p1²> <p2²> <p3²> <m1²> <m2²> <m3²>",
		Short: "Evaluate the three-point (triangle) integral",
		Args:  cobra.ExactArgs(6),
		RunE: func(cmd *cobra.Command, args []string) error {
			ps, err := parseInvariants(args[:3])
			if err != nil {
				return err
			}
			ms, err := parseMasses(args[3:])
			if err != nil {
				return err
			}
			return printResult(cmd, rootOpts,
				oneloop.ThreePoint(ps[0], ps[1], ps[2], ms[0], ms[1], ms[2]))
		},
	}
}

// NewD0Command creates the four-point (box) subcommand.
func NewD0Command(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "d0 <p1²> <p2²> <p3²> <p4²> <p12> <p23> <m1²> <m2²> <m3²> <m4²>",
		Short: "Evaluate the four-point (box) integral",
		Args:  cobra.ExactArgs(10),
		RunE: func(cmd *cobra.Command, args []string) error {
			ps, err := parseInvariants(args[:6])
			if err != nil {
				return err
			}
			ms, err := parseMasses(args[6:])
			if err != nil {
				return err
			}
			return printResult(cmd, rootOpts,
				oneloop.FourPoint(ps[0], ps[1], ps[2], ps[3], ps[4], ps[5],
					ms[0], ms[1], ms[2], ms[3]))
		},
	}
}

func parseInvariant(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid invariant %q: %w", s, err)
	}
	return v, nil
}

func parseInvariants(args []string) ([]float64, error) {
	out := make([]float64, len(args))
	for i, a := range args {
		v, err := parseInvariant(a)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func parseMass(s string) (complex128, error) {
	v, err := strconv.ParseComplex(s, 128)
	if err != nil {
		return 0, fmt.Errorf("invalid squared mass %q: %w", s, err)
	}
	return v, nil
}

func parseMasses(args []string) ([]complex128, error) {
	out := make([]complex128, len(args))
	for i, a := range args {
		v, err := parseMass(a)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func printResult(cmd *cobra.Command, opts *RootOptions, r laurent.Result) error {
	if opts.Feynman {
		r = r.Scale(complex(oneloop.ToFeynman, 0))
	}
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "ε⁻² = %v\n", r.EpsilonMinus2())
	fmt.Fprintf(w, "ε⁻¹ = %v\n", r.EpsilonMinus1())
	fmt.Fprintf(w, "ε⁰  = %v\n", r.Epsilon0())
	return nil
}
