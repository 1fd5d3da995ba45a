package automaton

// factors are the Glushkov local-language factors (P, D, F, G) of
// SPEC_FULL.md §4.1: possible first positions, possible last positions,
// adjacent-position pairs, and whether the empty word belongs.
type factors struct {
	p []int
	d []int
	f [][2]int
	g bool
}

// localLang is a local language: the Glushkov factors together with the
// owned list of position labels they index into (renumbered to start at 0
// for this sub-expression; unify renumbers them when two languages combine).
type localLang struct {
	labels  []Label
	factors factors
}

func emptyLang() localLang { return localLang{} }

func epsilonLang() localLang { return localLang{factors: factors{g: true}} }

func atomLang(l Label) localLang {
	return localLang{
		labels:  []Label{l},
		factors: factors{p: []int{0}, d: []int{0}},
	}
}

// unify merges two languages' label tables into one, offsetting lang2's
// position indices by len(lang1.labels) so the two factor sets refer to a
// single shared table (mirrors original_source/src/glushkov.rs's
// unify_atoms).
func unify(lang1, lang2 localLang) (labels []Label, f1, f2 factors) {
	offset := len(lang1.labels)

	f2 = factors{g: lang2.factors.g}
	for _, x := range lang2.factors.p {
		f2.p = append(f2.p, x+offset)
	}
	for _, x := range lang2.factors.d {
		f2.d = append(f2.d, x+offset)
	}
	for _, pair := range lang2.factors.f {
		f2.f = append(f2.f, [2]int{pair[0] + offset, pair[1] + offset})
	}

	labels = make([]Label, 0, len(lang1.labels)+len(lang2.labels))
	labels = append(labels, lang1.labels...)
	labels = append(labels, lang2.labels...)

	f1 = lang1.factors
	return labels, f1, f2
}

func concatLang(lang1, lang2 localLang) localLang {
	labels, f1, f2 := unify(lang1, lang2)

	f := factors{g: f1.g && f2.g}
	if f1.g {
		f.p = append(append([]int{}, f1.p...), f2.p...)
	} else {
		f.p = append([]int{}, f1.p...)
	}
	if f2.g {
		f.d = append(append([]int{}, f2.d...), f1.d...)
	} else {
		f.d = append([]int{}, f2.d...)
	}

	f.f = append(f.f, f1.f...)
	f.f = append(f.f, f2.f...)
	for _, x := range f1.d {
		for _, y := range f2.p {
			f.f = append(f.f, [2]int{x, y})
		}
	}

	return localLang{labels: labels, factors: f}
}

func altLang(lang1, lang2 localLang) localLang {
	labels, f1, f2 := unify(lang1, lang2)

	f := factors{g: f1.g || f2.g}
	f.p = append(append([]int{}, f1.p...), f2.p...)
	f.d = append(append([]int{}, f1.d...), f2.d...)
	f.f = append(append([][2]int{}, f1.f...), f2.f...)

	return localLang{labels: labels, factors: f}
}

func optionalLang(lang localLang) localLang {
	lang.factors.g = true
	return lang
}

func closureLang(lang localLang) localLang {
	f := lang.factors
	for _, x := range f.d {
		for _, y := range f.p {
			f.f = append(f.f, [2]int{x, y})
		}
	}
	lang.factors = f
	return lang
}
