// Package complete implements the tree-descent completion engine: it walks
// the command catalog along the tokens of a partial input line and proposes
// subcommands, flags, examples or filesystem entries for the token under the
// cursor.
package complete

import "unicode"

// Tokenize splits the input line up to the cursor into completed tokens and
// the partial token being typed. Tokens split on unquoted whitespace; single
// and double quotes group characters, and an unmatched quote extends the
// token to the end of the input without error. Quote characters themselves
// are not part of the token text. A cursor that follows trailing whitespace
// yields an empty partial token.
func Tokenize(line string, cursor int) (completed []string, partial string) {
	if cursor > len(line) {
		cursor = len(line)
	}
	if cursor < 0 {
		cursor = 0
	}
	input := line[:cursor]

	var tokens []string
	var current []rune
	inToken := false
	var quote rune

	for _, ch := range input {
		switch {
		case quote != 0:
			if ch == quote {
				quote = 0
			} else {
				current = append(current, ch)
			}
		case ch == '\'' || ch == '"':
			quote = ch
			inToken = true
		case unicode.IsSpace(ch):
			if inToken {
				tokens = append(tokens, string(current))
				current = current[:0]
				inToken = false
			}
		default:
			current = append(current, ch)
			inToken = true
		}
	}

	if inToken {
		// The trailing token is still being typed: it is the partial.
		return tokens, string(current)
	}
	return tokens, ""
}
