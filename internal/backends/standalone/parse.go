package standalone

import (
	"errors"
	"strings"

	"github.com/vs-ude/skslc/internal/errlog"
	"github.com/vs-ude/skslc/internal/sksl"
)

// Parse runs a lexical validation over the source text: comments and
// string literals must terminate and bracket delimiters must balance.
// Anything deeper is left to a real compiler stage.
func (t *Toolchain) Parse(kind sksl.ProgramKind, source string, settings sksl.Settings) (*sksl.Program, error) {
	log := errlog.NewErrorLog()
	lmap := errlog.NewLocationMap()
	file := lmap.AddFile(errlog.NewSourceFile(kind.String() + " shader"))
	scanSource(source, file, log)
	if len(log.Errors) != 0 {
		return nil, errors.New(strings.TrimSuffix(log.ToString(lmap), "\n"))
	}
	return &sksl.Program{Kind: kind, Source: source, Settings: settings}, nil
}

type openDelimiter struct {
	open byte
	line int
	pos  int
}

func closerFor(open byte) string {
	switch open {
	case '(':
		return ")"
	case '[':
		return "]"
	}
	return "}"
}

func openerFor(close byte) byte {
	switch close {
	case ')':
		return '('
	case ']':
		return '['
	}
	return '{'
}

func scanSource(source string, file int, log *errlog.ErrorLog) {
	line, pos := 1, 1
	var stack []openDelimiter
	sawCode := false
	i := 0
	advance := func() {
		if source[i] == '\n' {
			line++
			pos = 1
		} else {
			pos++
		}
		i++
	}
	for i < len(source) {
		c := source[i]
		switch {
		case c == '/' && i+1 < len(source) && source[i+1] == '/':
			for i < len(source) && source[i] != '\n' {
				advance()
			}
		case c == '/' && i+1 < len(source) && source[i+1] == '*':
			startLine, startPos := line, pos
			advance()
			advance()
			closed := false
			for i < len(source) {
				if source[i] == '*' && i+1 < len(source) && source[i+1] == '/' {
					advance()
					advance()
					closed = true
					break
				}
				advance()
			}
			if !closed {
				log.AddError(errlog.ErrorUnterminatedComment, errlog.Point(file, startLine, startPos))
			}
		case c == '"':
			startLine, startPos := line, pos
			advance()
			closed := false
			for i < len(source) && source[i] != '\n' {
				if source[i] == '\\' && i+1 < len(source) {
					advance()
					advance()
					continue
				}
				if source[i] == '"' {
					advance()
					closed = true
					break
				}
				advance()
			}
			if !closed {
				log.AddError(errlog.ErrorUnterminatedString, errlog.Point(file, startLine, startPos))
			}
			sawCode = true
		case c == '(' || c == '[' || c == '{':
			stack = append(stack, openDelimiter{c, line, pos})
			sawCode = true
			advance()
		case c == ')' || c == ']' || c == '}':
			if len(stack) == 0 || stack[len(stack)-1].open != openerFor(c) {
				log.AddError(errlog.ErrorUnexpectedClosingDelimiter, errlog.Point(file, line, pos), string(c))
			} else {
				stack = stack[:len(stack)-1]
			}
			sawCode = true
			advance()
		default:
			if c > ' ' {
				sawCode = true
			}
			advance()
		}
	}
	for j := len(stack) - 1; j >= 0; j-- {
		d := stack[j]
		log.AddError(errlog.ErrorUnbalancedDelimiter, errlog.Point(file, d.line, d.pos), closerFor(d.open))
	}
	if !sawCode {
		log.AddError(errlog.ErrorEmptyProgram, errlog.Point(file, 1, 1))
	}
}
