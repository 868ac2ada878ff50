package errlog

import (
	"fmt"
)

// ErrorLog ...
type ErrorLog struct {
	Errors []*Error
}

// ErrorCode ...
type ErrorCode int

const (
	// ErrorUnterminatedComment ...
	ErrorUnterminatedComment ErrorCode = 1 + iota
	// ErrorUnterminatedString ...
	ErrorUnterminatedString
	// ErrorUnbalancedDelimiter ...
	ErrorUnbalancedDelimiter
	// ErrorUnexpectedClosingDelimiter ...
	ErrorUnexpectedClosingDelimiter
	// ErrorEmptyProgram ...
	ErrorEmptyProgram
	// ErrorIllegalCharacter ...
	ErrorIllegalCharacter
	// ErrorModuleNotFound ...
	ErrorModuleNotFound
	// ErrorModuleEmpty ...
	ErrorModuleEmpty
)

// Error ...
type Error struct {
	code     ErrorCode
	location LocationRange
	args     []string
}

// NewError ...
func NewError(code ErrorCode, loc LocationRange, args ...string) *Error {
	return &Error{code: code, location: loc, args: args}
}

// NewErrorLog ...
func NewErrorLog() *ErrorLog {
	return &ErrorLog{}
}

// AddError ...
func (log *ErrorLog) AddError(code ErrorCode, loc LocationRange, args ...string) *Error {
	err := NewError(code, loc, args...)
	log.Errors = append(log.Errors, err)
	return err
}

// ToString ...
func (log *ErrorLog) ToString(l *LocationMap) string {
	str := ""
	for _, e := range log.Errors {
		str += ErrorToString(e, l) + "\n"
	}
	return str
}

// Error ...
func (e *Error) Error() string {
	return e.ToString()
}

// ToString ...
func (e *Error) ToString() string {
	switch e.code {
	case ErrorUnterminatedComment:
		return "Unterminated block comment"
	case ErrorUnterminatedString:
		return "Unterminated string literal"
	case ErrorUnbalancedDelimiter:
		return "Missing closing `" + e.args[0] + "`"
	case ErrorUnexpectedClosingDelimiter:
		return "Unexpected `" + e.args[0] + "`"
	case ErrorEmptyProgram:
		return "Program contains no code"
	case ErrorIllegalCharacter:
		return "Illegal character `" + e.args[0] + "`"
	case ErrorModuleNotFound:
		return "Module " + e.args[0] + " could not be found"
	case ErrorModuleEmpty:
		return "Module " + e.args[0] + " declares no symbols"
	}
	panic("Unknown error code")
}

// Location ...
func (e *Error) Location() LocationRange {
	return e.location
}

// ErrorToString ...
func ErrorToString(e *Error, l *LocationMap) string {
	file, line, pos := l.Decode(e.location.From)
	return fmt.Sprintf("%v:%v:%v: %v", file.Name, line, pos, e.ToString())
}
