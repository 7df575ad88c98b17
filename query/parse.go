package query

import (
	"errors"
	"strings"
)

var InvalidCommandError = errors.New("invalid command")
var InvalidKeyError = errors.New("invalid key")
var InvalidNumberOfTokens = errors.New("invalid number of tokens")

// Parse turns one input line into a Command. Keywords are matched
// case-insensitively; keys are validated, values are opaque.
func Parse(input string) (*Command, error) {
	trimmedInput := strings.TrimSpace(input)

	if trimmedInput == "" {
		return nil, InvalidCommandError
	}

	tokens, err := tokenize(trimmedInput)

	if err != nil {
		return nil, err
	}

	if len(tokens) == 0 {
		return nil, InvalidCommandError
	}

	switch strings.ToUpper(tokens[0]) {
	case SET:
		if len(tokens) != 3 {
			return nil, InvalidNumberOfTokens
		}

		key := tokens[1]

		if !isValidKey(key) {
			return nil, InvalidKeyError
		}

		return &Command{
			Type:  CommandSet,
			Key:   key,
			Value: tokens[2],
		}, nil

	case GET:
		return keyCommand(CommandGet, tokens)

	case UNSET:
		return keyCommand(CommandUnset, tokens)

	case COUNTS:
		return valueCommand(CommandCounts, tokens)

	case FIND:
		return valueCommand(CommandFind, tokens)

	case BEGIN:
		return bareCommand(CommandBegin, tokens)

	case COMMIT:
		return bareCommand(CommandCommit, tokens)

	case ROLLBACK:
		return bareCommand(CommandRollback, tokens)

	case END:
		return bareCommand(CommandEnd, tokens)

	case HELP:
		return bareCommand(CommandHelp, tokens)

	default:
		return nil, InvalidCommandError
	}
}

func keyCommand(commandType CommandType, tokens []string) (*Command, error) {
	if len(tokens) != 2 {
		return nil, InvalidNumberOfTokens
	}

	key := tokens[1]

	if !isValidKey(key) {
		return nil, InvalidKeyError
	}

	return &Command{
		Type: commandType,
		Key:  key,
	}, nil
}

func valueCommand(commandType CommandType, tokens []string) (*Command, error) {
	if len(tokens) != 2 {
		return nil, InvalidNumberOfTokens
	}

	return &Command{
		Type:  commandType,
		Value: tokens[1],
	}, nil
}

func bareCommand(commandType CommandType, tokens []string) (*Command, error) {
	if len(tokens) != 1 {
		return nil, InvalidNumberOfTokens
	}

	return &Command{
		Type: commandType,
	}, nil
}

func isValidKey(key string) bool {
	if key == "" {
		return false
	}

	for i := 0; i < len(key); i++ {
		c := key[i]

		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		case c == '_', c == '-', c == '.':
		default:
			return false
		}
	}

	return true
}
