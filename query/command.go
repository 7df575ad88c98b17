package query

type CommandType uint8

const (
	CommandSet CommandType = iota
	CommandGet
	CommandUnset
	CommandCounts
	CommandFind

	CommandBegin
	CommandCommit
	CommandRollback

	CommandEnd
	CommandHelp
)

const (
	SET      = "SET"
	GET      = "GET"
	UNSET    = "UNSET"
	COUNTS   = "COUNTS"
	FIND     = "FIND"
	BEGIN    = "BEGIN"
	COMMIT   = "COMMIT"
	ROLLBACK = "ROLLBACK"
	END      = "END"
	HELP     = "HELP"
)

// Command is one parsed user command. Key is set for key-addressed
// commands, Value for SET and for the value-addressed COUNTS and FIND.
type Command struct {
	Type  CommandType
	Key   string
	Value string
}

type CommandMeta struct {
	Name        string
	Usage       string
	Description string
}

var CommandRegistry = map[CommandType]CommandMeta{
	CommandSet: {
		Name:        SET,
		Usage:       "SET <key> <value>",
		Description: "Set value for a key",
	},
	CommandGet: {
		Name:        GET,
		Usage:       "GET <key>",
		Description: "Get value of a key",
	},
	CommandUnset: {
		Name:        UNSET,
		Usage:       "UNSET <key>",
		Description: "Remove a key",
	},
	CommandCounts: {
		Name:        COUNTS,
		Usage:       "COUNTS <value>",
		Description: "Count keys holding a value",
	},
	CommandFind: {
		Name:        FIND,
		Usage:       "FIND <value>",
		Description: "List keys holding a value",
	},
	CommandBegin: {
		Name:        BEGIN,
		Usage:       "BEGIN",
		Description: "Start a new transaction",
	},
	CommandCommit: {
		Name:        COMMIT,
		Usage:       "COMMIT",
		Description: "Commit current transaction",
	},
	CommandRollback: {
		Name:        ROLLBACK,
		Usage:       "ROLLBACK",
		Description: "Undo current transaction",
	},
	CommandEnd: {
		Name:        END,
		Usage:       "END",
		Description: "Exit the session",
	},
	CommandHelp: {
		Name:        HELP,
		Usage:       "HELP",
		Description: "Show help message",
	},
}
