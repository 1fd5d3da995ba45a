// Package codegen emits a compiled variable-NFA as a self-contained Go
// source file: one function that reconstructs the automaton from data
// literals, so a program built around one fixed pattern need not link
// regexp/syntax or repeat Glushkov construction at start-up.
package codegen

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

// Identifier names used in generated automaton source files.
const (
	BuildFuncName  = "BuildAutomaton"
	PatternConst   = "Pattern"
	VariablesFunc  = "variableTable"
	LabelsVarName  = "labelTable"
	EdgesVarName   = "edgeTable"
	FinalsVarName  = "finalTable"
	VariablePrefix = "v"
)

// VariableIdent returns the generated local identifier for the variable with
// the given id, e.g. VariableIdent(3) == "v3".
func VariableIdent(id int) string {
	return fmt.Sprintf("%s%d", VariablePrefix, id)
}

// LowerFirst converts the first character of a string to lowercase.
func LowerFirst(s string) string {
	if s == "" {
		return s
	}
	r, n := utf8.DecodeRuneInString(s)
	return string(unicode.ToLower(r)) + s[n:]
}

// UpperFirst converts the first character of a string to uppercase.
func UpperFirst(s string) string {
	if s == "" {
		return s
	}
	r, n := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[n:]
}
