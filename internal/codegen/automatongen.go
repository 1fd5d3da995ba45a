package codegen

import (
	"fmt"
	"sort"

	"github.com/dave/jennifer/jen"

	"github.com/varspan/varspan/internal/automaton"
	"github.com/varspan/varspan/internal/mapping"
)

const (
	automatonPkg = "github.com/varspan/varspan/internal/automaton"
	mappingPkg   = "github.com/varspan/varspan/internal/mapping"
)

// WriteAutomatonFile renders the compiled automaton in result as a
// standalone Go source file in package pkgName at path, the ahead-of-time
// counterpart to calling automaton.Build(pattern) at run time. The
// generated BuildAutomaton function depends only on the automaton and
// mapping packages, never on regexp/syntax.
func WriteAutomatonFile(path, pkgName, pattern string, result *automaton.Result) error {
	f := jen.NewFile(pkgName)
	f.HeaderComment(fmt.Sprintf("Code generated from pattern %q. DO NOT EDIT.", pattern))

	f.Const().Id(PatternConst).Op("=").Lit(pattern)
	f.Line()

	f.Func().Id(BuildFuncName).Params().Op("*").Qual(automatonPkg, "Automaton").Block(
		buildAutomatonBody(result)...,
	)

	return f.Save(path)
}

func buildAutomatonBody(result *automaton.Result) []jen.Code {
	a := result.Automaton
	var stmts []jen.Code

	ids := make([]int, 0, len(result.Variables))
	byID := make(map[int]*mapping.Variable, len(result.Variables))
	for _, v := range result.Variables {
		ids = append(ids, v.ID())
		byID[v.ID()] = v
	}
	sort.Ints(ids)
	for _, id := range ids {
		stmts = append(stmts, jen.Id(VariableIdent(id)).Op(":=").Qual(mappingPkg, "NewVariable").Call(
			jen.Lit(id), jen.Lit(byID[id].Name()),
		))
	}

	stmts = append(stmts, jen.Id(LabelsVarName).Op(":=").Index().Qual(automatonPkg, "Label").Values(
		labelValues(a)...,
	))

	stmts = append(stmts, jen.Id(EdgesVarName).Op(":=").Index().Qual(automatonPkg, "Edge").Values(
		edgeValues(a)...,
	))

	stmts = append(stmts, jen.Id(FinalsVarName).Op(":=").Index().Bool().Values(
		finalValues(a)...,
	))

	stmts = append(stmts, jen.Return(jen.Qual(automatonPkg, "FromTable").Call(
		jen.Lit(a.NStates), jen.Id(LabelsVarName), jen.Id(EdgesVarName), jen.Id(FinalsVarName),
	)))

	return stmts
}

func labelValues(a *automaton.Automaton) []jen.Code {
	var out []jen.Code
	for _, lbl := range a.Labels {
		switch lbl.Kind {
		case automaton.LabelAtom:
			ranges := lbl.Atom.Ranges()
			litRanges := make([]jen.Code, 0, len(ranges))
			for _, r := range ranges {
				litRanges = append(litRanges, jen.LitRune(r))
			}
			out = append(out, jen.Values(jen.Dict{
				jen.Id("Kind"): jen.Qual(automatonPkg, "LabelAtom"),
				jen.Id("Atom"): jen.Qual(automatonPkg, "NewAtomRanges").Call(jen.Index().Rune().Values(litRanges...)),
			}))
		case automaton.LabelMarker:
			ctor := "NewOpen"
			if lbl.Marker.Tag == mapping.Close {
				ctor = "NewClose"
			}
			out = append(out, jen.Values(jen.Dict{
				jen.Id("Kind"):   jen.Qual(automatonPkg, "LabelMarker"),
				jen.Id("Marker"): jen.Qual(mappingPkg, ctor).Call(jen.Id(VariableIdent(lbl.Marker.Var.ID()))),
			}))
		}
	}
	return out
}

func edgeValues(a *automaton.Automaton) []jen.Code {
	var out []jen.Code
	for s := 0; s < a.NStates; s++ {
		for _, e := range a.Out(s) {
			out = append(out, jen.Values(jen.Dict{
				jen.Id("Source"):   jen.Lit(e.Source),
				jen.Id("Target"):   jen.Lit(e.Target),
				jen.Id("LabelIdx"): jen.Lit(e.LabelIdx),
			}))
		}
	}
	return out
}

func finalValues(a *automaton.Automaton) []jen.Code {
	out := make([]jen.Code, a.NStates)
	for s := 0; s < a.NStates; s++ {
		out[s] = jen.Lit(a.IsFinal(s))
	}
	return out
}
