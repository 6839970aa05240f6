package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/leonardinius/pepl/internal/jsoncodec"
	"github.com/leonardinius/pepl/internal/value"
)

var ErrBadCall = errors.New("expected module.function(args)")

// Call is one parsed input line.
type Call struct {
	Module   string
	Function string
	Args     []value.Value
}

// ParseLine reads `module.function(arg, ...)` where the arguments are JSON
// values. Blank lines and `#` comments yield ok=false.
func ParseLine(line string) (call Call, ok bool, err error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return Call{}, false, nil
	}

	open := strings.IndexByte(line, '(')
	if open < 0 || !strings.HasSuffix(line, ")") {
		return Call{}, false, fmt.Errorf("%w: %q", ErrBadCall, line)
	}

	mod, fn, found := strings.Cut(strings.TrimSpace(line[:open]), ".")
	if !found || !isIdent(mod) || !isIdent(fn) {
		return Call{}, false, fmt.Errorf("%w: %q", ErrBadCall, line)
	}

	args, err := jsoncodec.ParseValues(line[open+1 : len(line)-1])
	if err != nil {
		return Call{}, false, fmt.Errorf("%s.%s: arguments: %w", mod, fn, err)
	}

	return Call{Module: mod, Function: fn, Args: args}, true, nil
}

func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, c := range s {
		switch {
		case c == '_', 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z':
		case '0' <= c && c <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}
