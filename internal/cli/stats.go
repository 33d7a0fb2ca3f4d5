package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregate solve statistics",
	Long:  `Display per-size aggregates over all completed solves: solve count, average move count, average duration, and how many solves needed a parity recovery.`,
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	stats, err := storageRepo(db).StatsBySize()
	if err != nil {
		return err
	}
	if len(stats) == 0 {
		fmt.Println("No completed solves. Run: nxncube solve")
		return nil
	}

	fmt.Printf("%-6s %7s %12s %12s %9s\n", "size", "solves", "avg moves", "avg time", "parities")
	for _, st := range stats {
		avg := time.Duration(st.AvgDurationMs) * time.Millisecond
		fmt.Printf("%dx%-4d %7d %12.1f %12s %9d\n",
			st.Size, st.Size, st.Count, st.AvgMoveCount, avg.Round(time.Millisecond), st.ParityCount)
	}
	return nil
}
