// Package cli implements the command-line interface for nxncube.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/SeamusWaldron/nxncube/internal/storage"
)

const version = "0.1.0"

var (
	// Global flags
	dbPath  string
	verbose bool
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "nxncube",
	Short: "NxN cube scrambler and reduction solver",
	Long: `nxncube scrambles and solves NxN twisty cubes of any size.

Big cubes are solved by reduction: centers are rebuilt and edges paired
with exact three-cycle commutators until the cube behaves like a 3x3,
with automatic recovery from the parity states even-sized cubes can
produce. Solves are recorded to a local SQLite database and can be
replayed move by move in the terminal.`,
	Version: version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database file path (default: ~/.nxncube/nxncube.db)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}

// openDB opens the database from the --db flag or the default path and
// applies pending migrations.
func openDB() (*storage.DB, error) {
	var db *storage.DB
	var err error
	if dbPath != "" {
		db, err = storage.Open(dbPath)
	} else {
		db, err = storage.OpenDefault()
	}
	if err != nil {
		return nil, err
	}
	if err := db.MigrateUp(); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// newLogger builds the logger for a command run, honoring --verbose.
func newLogger() (*zap.Logger, error) {
	if !verbose {
		return zap.NewNop(), nil
	}
	return zap.NewDevelopment()
}

func storageRepo(db *storage.DB) *storage.SolveRepository {
	return storage.NewSolveRepository(db)
}

// lookupSolve resolves a solve from a command's args: an explicit ID, or the
// most recent solve when --last is set.
func lookupSolve(repo *storage.SolveRepository, args []string, last bool) (*storage.Solve, error) {
	if len(args) > 0 {
		return repo.Get(args[0])
	}
	if last {
		return repo.GetLast()
	}
	return nil, fmt.Errorf("specify a solve ID or --last")
}
