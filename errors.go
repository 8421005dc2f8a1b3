/*
 * errors.go, part of gomdl.
 *
 *
 * Copyright 2026 The goChem authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 */

package mdl

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies the errors returned by this package.
type Kind int

const (
	// ReadError means the source could not be read or decompressed.
	ReadError Kind = iota + 1
	// FormatError means a missing line, a missing or non-numeric field,
	// an invalid bond code or a bond referring to a non-existent atom.
	FormatError
	// UnsupportedElement means an element symbol is absent from the valence table.
	UnsupportedElement
)

func (k Kind) String() string {
	switch k {
	case ReadError:
		return "read error"
	case FormatError:
		return "format error"
	case UnsupportedElement:
		return "unsupported element"
	default:
		return "unknown error"
	}
}

// Phases of the parsing, used to tell where an error happened.
const (
	PhaseHeader = "header"
	PhaseCounts = "counts"
	PhaseAtoms  = "atoms"
	PhaseBonds  = "bonds"
)

// Error is the error type for everything in this package. It follows the
// goChem error convention: a message, the file involved (if any), and a
// "decoration" slice with the names of the functions it went through.
type Error struct {
	kind     Kind
	message  string
	filename string
	phase    string
	line     int //1-based, 0 if not related to a particular line.
	deco     []string
	critical bool
	err      error
}

func (err *Error) Error() string {
	var b strings.Builder
	b.WriteString("mdl")
	if err.filename != "" {
		fmt.Fprintf(&b, " file %s", err.filename)
	}
	b.WriteString(" error: ")
	if err.line > 0 {
		fmt.Fprintf(&b, "line %d ", err.line)
	}
	if err.phase != "" {
		fmt.Fprintf(&b, "(%s) ", err.phase)
	}
	b.WriteString(err.message)
	if err.err != nil {
		fmt.Fprintf(&b, ": %s", err.err.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error, if any.
func (err *Error) Unwrap() error { return err.err }

// Kind returns the class of the error.
func (err *Error) Kind() Kind { return err.kind }

// Phase returns the parsing phase where the error happened, or an empty string.
func (err *Error) Phase() string { return err.phase }

// Line returns the 1-based line number where the error happened, or 0.
func (err *Error) Line() int { return err.line }

// FileName returns the file associated to the error, or an empty string.
func (err *Error) FileName() string { return err.filename }

// Format returns the format of the file involved, always "mdl".
func (err *Error) Format() string { return "mdl" }

// Critical returns true if the error is critical. All errors from
// the parser are.
func (err *Error) Critical() bool { return err.critical }

// Decorate adds dec to the decoration slice, and returns the slice.
// An empty dec just returns the current decoration.
func (err *Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// IsKind reports whether err is, or wraps, an *Error of kind k.
func IsKind(err error, k Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.kind == k
	}
	return false
}

func formatError(phase string, line int, message string, cause error) *Error {
	return &Error{kind: FormatError, message: message, phase: phase, line: line, critical: true, err: cause}
}

//errDecorate decorates err with the caller's name if it is an *Error.
//other errors are returned untouched.
func errDecorate(err error, caller string) error {
	var e *Error
	if errors.As(err, &e) {
		e.Decorate(caller)
	}
	return err
}
