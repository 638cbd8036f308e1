package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "chiphash <csv_file>",
	Short: "Hash NFT ticket rows as CHIP-0007 metadata documents",
	Long: `chiphash reads a CSV of NFT tickets, builds a CHIP-0007 metadata document
for every row, and writes <stem>.output.csv with the SHA-256 of each
document appended in a Hash column.

Rows with an empty team name inherit the team of the row above. Every
document carries series_total, the number of data rows in the file, so
the input is read twice.

Examples:
  # Hash a ticket list, writing tickets.output.csv in the working directory
  chiphash tickets.csv

  # Write next to the other build artifacts
  chiphash tickets.csv --output-dir build

  # Override the collection for a different event
  chiphash tickets.csv --collection-file event.env --set collection_name="Free Dinner"

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration or collection overrides
  20 - Malformed CSV input
  21 - Input unreadable or output unwritable`,
	Args:         cobra.ExactArgs(1),
	RunE:         runHash,
	SilenceUsage: true,
}

var verboseFlag bool

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo(rootCmd.OutOrStdout())
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output for all commands")
}
