package query

import (
	"errors"
	"strings"
)

var UnterminatedQuoteError = errors.New("unterminated quoted string")

// tokenize splits input on whitespace. A token wrapped in single or
// double quotes may contain whitespace; the quotes are stripped.
func tokenize(input string) ([]string, error) {
	var tokens []string
	var current strings.Builder

	var quote byte

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}

	for i := 0; i < len(input); i++ {
		c := input[i]

		switch {
		case quote != 0 && c == quote:
			tokens = append(tokens, current.String())
			current.Reset()
			quote = 0

		case quote != 0:
			current.WriteByte(c)

		case c == '\'' || c == '"':
			flush()
			quote = c

		case c == ' ' || c == '\t' || c == '\n':
			flush()

		default:
			current.WriteByte(c)
		}
	}

	if quote != 0 {
		return nil, UnterminatedQuoteError
	}

	flush()
	return tokens, nil
}
