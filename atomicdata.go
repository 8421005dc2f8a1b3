/*
 * atomicdata.go, part of gomdl.
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
	"fmt"
	"sort"
	"strings"
)

// Symbol is an element symbol as it is written in the atom block of a molfile,
// i.e. "C", "Cl", "Na". Pseudo-atoms such as "Du", "LP", "A" or "ANY" are also Symbols.
type Symbol string

// UpperSymbol is an upper-case element code ("C", "CL", "NA"). The valence
// table is keyed by these.
type UpperSymbol string

// Upper returns the upper-case code for the symbol. It is the only
// place where a Symbol should be re-cased.
func (S Symbol) Upper() UpperSymbol {
	return UpperSymbol(strings.ToUpper(strings.TrimSpace(string(S))))
}

// DummyAtomType is the type given to any symbol not present in the
// atom type table.
const DummyAtomType = "DU"

//Default valences. D is deuterium, A and Q are
//the query placeholders.
var symbolValence = map[UpperSymbol]int{
	"H":  1,
	"D":  1,
	"C":  4,
	"N":  3,
	"O":  2,
	"S":  2,
	"SE": 2,
	"TE": 2,
	"P":  3,
	"F":  1,
	"CL": 1,
	"BR": 1,
	"I":  1,
	"B":  3,
	"LI": 1,
	"NA": 1,
	"K":  1,
	"CA": 2,
	"SR": 2,
	"MG": 2,
	"FE": 3,
	"MN": 2,
	"HG": 2,
	"SI": 4,
	"SN": 4,
	"ZN": 2,
	"CU": 2,
	"A":  4,
	"Q":  4,
}

//The internal atom types, keyed by the symbols as written in
//the file.
var symbolAtomType = map[Symbol]string{
	"H":   "H",
	"C":   "C3",
	"O":   "O2",
	"N":   "N3",
	"F":   "F",
	"Cl":  "CL",
	"Br":  "BR",
	"I":   "I",
	"Al":  "AL",
	"ANY": "A",
	"Ca":  "CA",
	"Du":  "DU",
	"K":   "K",
	"Li":  "LI",
	"LP":  "LP",
	"Na":  "NA",
	"S":   "S3",
	"Si":  "SI",
	"P":   "P4",
	"A":   "A",
	"Q":   "Q",
}

// Valence returns the default number of valences for the element s.
// Elements not in the table produce an UnsupportedElement error, never
// a guessed value.
func Valence(s UpperSymbol) (int, error) {
	v, ok := symbolValence[s]
	if !ok {
		return 0, &Error{kind: UnsupportedElement, message: fmt.Sprintf("no valence known for element %q", string(s)), deco: []string{"Valence"}, critical: true}
	}
	return v, nil
}

// IsHeavy returns true for every atom except hydrogen. Metals and
// deuterium count as heavy.
func IsHeavy(s Symbol) bool {
	return s != "H"
}

// AtomType returns the normalized atom type for s, or DummyAtomType
// if s is not known.
func AtomType(s Symbol) string {
	if t, ok := symbolAtomType[s]; ok {
		return t
	}
	return DummyAtomType
}

// ValenceSymbols returns the sorted codes present in the valence table.
func ValenceSymbols() []UpperSymbol {
	ret := make([]UpperSymbol, 0, len(symbolValence))
	for k := range symbolValence {
		ret = append(ret, k)
	}
	sort.Slice(ret, func(i, j int) bool { return ret[i] < ret[j] })
	return ret
}

// AtomTypeSymbols returns the sorted symbols present in the atom type table.
func AtomTypeSymbols() []Symbol {
	ret := make([]Symbol, 0, len(symbolAtomType))
	for k := range symbolAtomType {
		ret = append(ret, k)
	}
	sort.Slice(ret, func(i, j int) bool { return ret[i] < ret[j] })
	return ret
}
