package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubesim/internal/notation"
)

var (
	applyColor    bool
	applyDescribe bool
)

var applyCmd = &cobra.Command{
	Use:   "apply <algorithm>",
	Short: "Apply an algorithm to a solved cube and print the result",
	Long: `Apply an algorithm to a fresh solved cube, print the resulting net and the
inverse algorithm. Arguments are joined, so quoting is optional:

  cubesim apply "R U R' U'"
  cubesim apply --size 4 r U2 r'`,
	Args: cobra.MinimumNArgs(1),
	RunE: runApply,
}

func init() {
	applyCmd.Flags().BoolVar(&applyColor, "color", false, "Render the net with colored blocks")
	applyCmd.Flags().BoolVar(&applyDescribe, "describe", false, "Also print the moves in plain words")
	rootCmd.AddCommand(applyCmd)
}

func runApply(cmd *cobra.Command, args []string) error {
	sim, err := newSimulator()
	if err != nil {
		return err
	}

	input := strings.Join(args, " ")
	if cfg.CaseToggled {
		input = notation.SwapCase(input)
	}

	alg, err := sim.ApplyAlgorithm(input)
	if err != nil {
		return friendlyError(err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprint(out, renderNet(sim.Cube(), applyColor))
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Algorithm: %s (%d quarter turns)\n", alg, alg.Moves.QuarterTurnCount())
	if simplified := alg.Moves.Simplify(); len(simplified) != len(alg.Moves) {
		fmt.Fprintf(out, "Shorter:   %s\n", simplified)
	}
	fmt.Fprintf(out, "Inverse:   %s\n", alg.Inverse())
	if applyDescribe {
		fmt.Fprintf(out, "In words:  %s\n", notation.DescribeSequence(alg.Moves))
	}
	if sim.Cube().IsSolved() {
		fmt.Fprintln(out, "Cube is solved")
	}
	return nil
}
