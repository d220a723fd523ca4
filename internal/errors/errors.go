// Package errors provides the structured diagnostic type used across the
// Lambda Photon pipeline. Every stage failure is reported as a single
// CompilerError carrying a Kind, a position, and the offending source so it
// can be formatted with a file:line:col header, the source line, and a
// caret.
package errors

import (
	"fmt"
	"strings"

	"github.com/lambdaphoton/lp/internal/lexer"
)

// Kind classifies which pipeline stage produced a CompilerError, per the
// exit-code table of the compiler's error handling design.
type Kind int

const (
	KindInputMissing Kind = iota
	KindIOReadFailed
	KindLexFailed
	KindParseFailed
	KindVerifyFailed
	KindEmitFailed
	KindLinkFailed
)

var kindNames = [...]string{
	"input missing", "read failed", "lex failed", "parse failed",
	"verification failed", "emit failed", "link failed",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown failure"
}

// CompilerError represents a single compilation error with position and
// source context.
type CompilerError struct {
	Kind    Kind
	Message string
	Source  string
	File    string
	Pos     lexer.Position
}

// New creates a CompilerError of the given kind.
func New(kind Kind, pos lexer.Position, message, source, file string) *CompilerError {
	return &CompilerError{Kind: kind, Pos: pos, Message: message, Source: source, File: file}
}

// Error implements the error interface.
func (e *CompilerError) Error() string {
	return e.Format(false)
}

// Format formats the error message with source context. If color is true,
// ANSI color codes are used for terminal output.
func (e *CompilerError) Format(color bool) string {
	var sb strings.Builder

	if e.File != "" {
		sb.WriteString(fmt.Sprintf("%s: %s in %s:%d:%d\n", e.Kind, e.Message, e.File, e.Pos.Line, e.Pos.Column))
	} else {
		sb.WriteString(fmt.Sprintf("%s: %s at %d:%d\n", e.Kind, e.Message, e.Pos.Line, e.Pos.Column))
	}

	sourceLine := e.getSourceLine(e.Pos.Line)
	if sourceLine != "" {
		lineNumStr := fmt.Sprintf("%4d | ", e.Pos.Line)
		sb.WriteString(lineNumStr)
		sb.WriteString(sourceLine)
		sb.WriteString("\n")

		sb.WriteString(strings.Repeat(" ", len(lineNumStr)+e.Pos.Column-1))
		if color {
			sb.WriteString("\033[1;31m")
		}
		sb.WriteString("^")
		if color {
			sb.WriteString("\033[0m")
		}
		sb.WriteString("\n")
	}

	return strings.TrimRight(sb.String(), "\n")
}

// getSourceLine extracts a specific line from the source code. Lines are
// 1-indexed.
func (e *CompilerError) getSourceLine(lineNum int) string {
	if e.Source == "" {
		return ""
	}
	lines := strings.Split(e.Source, "\n")
	if lineNum < 1 || lineNum > len(lines) {
		return ""
	}
	return lines[lineNum-1]
}
