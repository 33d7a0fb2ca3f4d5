package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/nxncube"
)

var (
	scrambleSize   int
	scrambleLength int
	scrambleSeed   int64
)

var scrambleCmd = &cobra.Command{
	Use:   "scramble",
	Short: "Generate and display a scramble",
	Long: `Generate a random scramble for a cube of the given size and display
the resulting state as an unfolded net.

The scramble is reproducible: pass --seed to get the same sequence again.`,
	RunE: runScramble,
}

func init() {
	rootCmd.AddCommand(scrambleCmd)
	scrambleCmd.Flags().IntVarP(&scrambleSize, "size", "n", 3, "Cube size")
	scrambleCmd.Flags().IntVarP(&scrambleLength, "length", "l", 0, "Scramble length (default: size dependent)")
	scrambleCmd.Flags().Int64Var(&scrambleSeed, "seed", 0, "Random seed (default: current time)")
}

// scrambleLengthFor picks a scramble length that mixes a cube of the given
// size reasonably well.
func scrambleLengthFor(size int) int {
	return 10 * size
}

func runScramble(cmd *cobra.Command, args []string) error {
	length := scrambleLength
	if length <= 0 {
		length = scrambleLengthFor(scrambleSize)
	}
	seed := scrambleSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	c, err := nxncube.NewCube(scrambleSize)
	if err != nil {
		return err
	}
	moves := nxncube.Scramble(scrambleSize, length, seed)
	c.ApplyMoves(moves)

	fmt.Printf("Scramble (%dx%d, seed %d):\n\n", scrambleSize, scrambleSize, seed)
	fmt.Println(nxncube.FormatMoves(moves))
	fmt.Println()
	fmt.Println(RenderNet(c))
	return nil
}
