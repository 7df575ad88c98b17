package query

import (
	"testing"

	"github.com/DmitriyGrigoriev/console-app/test"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantCommand *Command
		wantError   error
	}{
		{
			name:  "SET simple",
			input: "SET foo bar",
			wantCommand: &Command{
				Type:  CommandSet,
				Key:   "foo",
				Value: "bar",
			},
		},
		{
			name:  "SET with spaces in value",
			input: "SET foo 'hello world'",
			wantCommand: &Command{
				Type:  CommandSet,
				Key:   "foo",
				Value: "hello world",
			},
		},
		{
			name:  "SET with empty quoted value",
			input: `SET foo ""`,
			wantCommand: &Command{
				Type:  CommandSet,
				Key:   "foo",
				Value: "",
			},
		},
		{
			name:  "SET lowercase keyword",
			input: "set foo bar",
			wantCommand: &Command{
				Type:  CommandSet,
				Key:   "foo",
				Value: "bar",
			},
		},
		{
			name:      "SET missing value",
			input:     "SET foo",
			wantError: InvalidNumberOfTokens,
		},
		{
			name:      "SET invalid key",
			input:     "SET f!oo bar",
			wantError: InvalidKeyError,
		},
		{
			name:  "GET valid",
			input: "GET foo",
			wantCommand: &Command{
				Type: CommandGet,
				Key:  "foo",
			},
		},
		{
			name:      "GET missing key",
			input:     "GET",
			wantError: InvalidNumberOfTokens,
		},
		{
			name:      "GET invalid key",
			input:     "GET !",
			wantError: InvalidKeyError,
		},
		{
			name:  "UNSET valid",
			input: "UNSET foo",
			wantCommand: &Command{
				Type: CommandUnset,
				Key:  "foo",
			},
		},
		{
			name:      "UNSET extra arguments",
			input:     "UNSET foo bar",
			wantError: InvalidNumberOfTokens,
		},
		{
			name:  "COUNTS valid",
			input: "COUNTS 10",
			wantCommand: &Command{
				Type:  CommandCounts,
				Value: "10",
			},
		},
		{
			name:      "COUNTS missing value",
			input:     "COUNTS",
			wantError: InvalidNumberOfTokens,
		},
		{
			name:  "FIND valid",
			input: "FIND 10",
			wantCommand: &Command{
				Type:  CommandFind,
				Value: "10",
			},
		},
		{
			name:  "BEGIN",
			input: "BEGIN",
			wantCommand: &Command{
				Type: CommandBegin,
			},
		},
		{
			name:      "BEGIN extra arguments",
			input:     "BEGIN now",
			wantError: InvalidNumberOfTokens,
		},
		{
			name:  "COMMIT",
			input: "COMMIT",
			wantCommand: &Command{
				Type: CommandCommit,
			},
		},
		{
			name:  "ROLLBACK",
			input: "ROLLBACK",
			wantCommand: &Command{
				Type: CommandRollback,
			},
		},
		{
			name:  "END",
			input: "END",
			wantCommand: &Command{
				Type: CommandEnd,
			},
		},
		{
			name:  "HELP",
			input: "HELP",
			wantCommand: &Command{
				Type: CommandHelp,
			},
		},
		{
			name:      "unterminated quote",
			input:     "SET foo 'bar",
			wantError: UnterminatedQuoteError,
		},
		{
			name:      "unknown command",
			input:     "FOO bar",
			wantError: InvalidCommandError,
		},
		{
			name:      "empty string",
			input:     "",
			wantError: InvalidCommandError,
		},
		{
			name:      "whitespace only",
			input:     "   \t ",
			wantError: InvalidCommandError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := Parse(tt.input)

			if tt.wantError != nil {
				test.AssertError(t, err, tt.wantError)
				return
			}

			test.AssertNoError(t, err)
			test.AssertEqual(t, cmd.Type, tt.wantCommand.Type)
			test.AssertEqual(t, cmd.Key, tt.wantCommand.Key)
			test.AssertEqual(t, cmd.Value, tt.wantCommand.Value)
		})
	}
}
