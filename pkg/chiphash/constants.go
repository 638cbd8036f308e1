package chiphash

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess      = 0  // All rows hashed and written
	ExitGeneralError = 1  // Unknown or unclassified error
	ExitUsageError   = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic        = 3  // Internal panic (unexpected crash)
	ExitConfigError  = 10 // Invalid configuration or collection overrides
	ExitFormatError  = 20 // Malformed CSV input
	ExitIOError      = 21 // Input unreadable or output unwritable
)

// Column names recognized in the input CSV and emitted in the output CSV.
const (
	ColumnTeam             = "TEAM NAMES"
	ColumnTeamAlias        = "Teams"
	ColumnSeriesNumber     = "Series Number"
	ColumnFilename         = "Filename"
	ColumnName             = "Name"
	ColumnDescription      = "Description"
	ColumnGender           = "Gender"
	ColumnAttributes       = "Attributes"
	ColumnUUID             = "UUID"
	ColumnSensitiveContent = "Sensitive Content"
	ColumnHash             = "Hash"
)

// OutputColumns is the fixed header of the output CSV, in order.
var OutputColumns = []string{
	ColumnTeam,
	ColumnSeriesNumber,
	ColumnFilename,
	ColumnName,
	ColumnDescription,
	ColumnGender,
	ColumnAttributes,
	ColumnUUID,
	ColumnHash,
}

const (
	// DefaultFormat is the format tag written into every metadata document.
	DefaultFormat = "CHIP-0007"

	// DefaultCollectionName is the collection name shared by every document.
	DefaultCollectionName = "Zuri NFT Tickets for Free Lunch"

	// DefaultCollectionDescription is the value of the collection's description attribute.
	DefaultCollectionDescription = "Rewards for accomplishments during HNGi9."

	// OutputSuffix is appended to the input file stem to name the output CSV.
	OutputSuffix = ".output.csv"

	// DefaultScratchDir is the scratch directory used by file materialization,
	// relative to the working directory.
	DefaultScratchDir = "tmp"
)
