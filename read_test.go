/*
 * read_test.go, part of gomdl.
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
 */

package mdl

import (
	"errors"
	"os"
	"reflect"
	"strings"
	"testing"
)

const minimalMol = `CO
ignored

  2  1
0 0 0 C 0
1 0 0 O 0
1 2 2
`

//heavy-heavy bonds recomputed from the atom and bond slices.
func countHeavyBonds(mol *Molecule) int {
	n := 0
	for _, b := range mol.Bonds {
		if mol.Atoms[b.A1].Symbol != "H" && mol.Atoms[b.A2].Symbol != "H" {
			n++
		}
	}
	return n
}

func countHeavy(mol *Molecule) int {
	n := 0
	for _, a := range mol.Atoms {
		if a.Symbol != "H" {
			n++
		}
	}
	return n
}

func TestParseMinimal(Te *testing.T) {
	mol, err := Parse([]byte(minimalMol))
	if err != nil {
		Te.Fatal(err)
	}
	if mol.Name != "CO" || mol.Comment != "" {
		Te.Errorf("name %q comment %q", mol.Name, mol.Comment)
	}
	if mol.NHeavy != 2 || mol.HeavyBonds != 1 {
		Te.Errorf("NHeavy %d HeavyBonds %d, want 2 and 1", mol.NHeavy, mol.HeavyBonds)
	}
	if a := mol.Atom(0); a.Type != "C3" || a.Valence != 4 || a.X != 0 {
		Te.Errorf("atom 0: %+v", *a)
	}
	if a := mol.Atom(1); a.Type != "O2" || a.Valence != 2 || a.X != 1 || a.Y != 0 || a.Z != 0 {
		Te.Errorf("atom 1: %+v", *a)
	}
	b := mol.Bond(0)
	if b.A1 != 0 || b.A2 != 1 || b.Type != Double {
		Te.Errorf("bond 0: %+v", *b)
	}
	if b.Deferred != (BondDeferred{}) || mol.Atoms[0].Deferred != (AtomDeferred{}) {
		Te.Errorf("deferred fields should stay at their zero values")
	}
}

func TestLoadFormaldehyde(Te *testing.T) {
	mol, err := Load("test/formaldehyde.mol")
	if err != nil {
		Te.Fatal(err)
	}
	if natoms, nbonds := mol.Counts(); natoms != 4 || nbonds != 3 {
		Te.Errorf("counts %d %d, want 4 3", natoms, nbonds)
	}
	if mol.Name != "formaldehyde" || mol.Comment != "a small test molecule" {
		Te.Errorf("name %q comment %q", mol.Name, mol.Comment)
	}
	if mol.NCarbon != 1 || mol.NOxygen != 1 || mol.NNitrogen != 0 {
		Te.Errorf("C %d O %d N %d", mol.NCarbon, mol.NOxygen, mol.NNitrogen)
	}
	if mol.NHeavy != 2 || mol.NHeavy != countHeavy(mol) {
		Te.Errorf("NHeavy %d", mol.NHeavy)
	}
	if mol.HeavyBonds != 1 || mol.HeavyBonds != countHeavyBonds(mol) {
		Te.Errorf("HeavyBonds %d", mol.HeavyBonds)
	}
	for i, a := range mol.Atoms[2:] {
		if a.Heavy || a.Type != "H" || a.Valence != 1 {
			Te.Errorf("hydrogen %d: %+v", i+2, a)
		}
	}
}

func TestLoadChargesAndSymbols(Te *testing.T) {
	mol, err := Load("test/chloroacetate.mol")
	if err != nil {
		Te.Fatal(err)
	}
	if mol.NCarbon != 2 || mol.NOxygen != 2 || mol.NHeavy != 6 || mol.HeavyBonds != 4 {
		Te.Errorf("C %d O %d heavy %d heavy bonds %d", mol.NCarbon, mol.NOxygen, mol.NHeavy, mol.HeavyBonds)
	}
	cl := mol.Atom(4)
	if cl.Symbol != "Cl" || cl.Type != "CL" || cl.Valence != 1 {
		Te.Errorf("chlorine: %+v", *cl)
	}
	na := mol.Atom(5)
	if na.Type != "NA" || na.FormalCharge != 1 || na.RealCharge != 1 || !na.Heavy {
		Te.Errorf("sodium: %+v", *na)
	}
	if o := mol.Atom(3); o.FormalCharge != -1 {
		Te.Errorf("carboxylate oxygen charge %d", o.FormalCharge)
	}
}

func TestChargeRounding(Te *testing.T) {
	cases := []struct {
		field string
		real  float64
		want  int
	}{
		{"1.5", 1.5, 2},
		{"-1.5", -1.5, -2},
		{"0.4", 0.4, 0},
		{"-0.4", -0.4, 0},
		{"2.49", 2.49, 2},
		{"0.5", 0.5, 1},
	}
	for _, c := range cases {
		mol, err := Parse([]byte("q\n\n\n1 0\n0 0 0 N " + c.field + "\n"))
		if err != nil {
			Te.Errorf("charge %s: %v", c.field, err)
			continue
		}
		a := mol.Atom(0)
		if a.FormalCharge != c.want || a.RealCharge != c.real {
			Te.Errorf("charge %s: formal %d real %v, want %d %v", c.field, a.FormalCharge, a.RealCharge, c.want, c.real)
		}
	}
}

//Only exactly "C", "O" and "N" are counted.
func TestElementCountsCaseSensitive(Te *testing.T) {
	in := "x\n\n\n4 0\n0 0 0 Cl 0\n0 0 0 Na 0\n0 0 0 C 0\n0 0 0 Ca 0\n"
	mol, err := Parse([]byte(in))
	if err != nil {
		Te.Fatal(err)
	}
	if mol.NCarbon != 1 || mol.NNitrogen != 0 || mol.NOxygen != 0 || mol.NHeavy != 4 {
		Te.Errorf("C %d N %d O %d heavy %d", mol.NCarbon, mol.NNitrogen, mol.NOxygen, mol.NHeavy)
	}
}

func TestBondTypeFromCode(Te *testing.T) {
	want := []BondType{Single, Double, Triple, Aromatic, SingleOrDouble, SingleOrAromatic, DoubleOrAromatic, Any, Any}
	for i, w := range want {
		code := string(rune('1' + i))
		got, err := BondTypeFromCode(code)
		if err != nil {
			Te.Errorf("code %s: %v", code, err)
			continue
		}
		if got != w {
			Te.Errorf("code %s: got %v want %v", code, got, w)
		}
	}
	for _, bad := range []string{"0", "A", "10", "", "-1"} {
		if _, err := BondTypeFromCode(bad); !IsKind(err, FormatError) {
			Te.Errorf("code %q: expected a format error, got %v", bad, err)
		}
	}
	if Any.Code() != 'a' || Single.Code() != 'S' || SingleOrDouble.Code() != 'l' {
		Te.Errorf("wrong one-character codes")
	}
	if Aromatic.String() != "aromatic" || DoubleOrAromatic.String() != "double-or-aromatic" {
		Te.Errorf("wrong bond type names")
	}
}

func TestParseErrors(Te *testing.T) {
	cases := []struct {
		name  string
		in    string
		kind  Kind
		phase string
		line  int
	}{
		{"empty", "", FormatError, PhaseHeader, 2},
		{"no counts", "a\nb\nc\n", FormatError, PhaseCounts, 4},
		{"one count", "a\n\n\n3\n", FormatError, PhaseCounts, 4},
		{"bad count", "a\n\n\nx 1\n", FormatError, PhaseCounts, 4},
		{"negative count", "a\n\n\n-1 0\n", FormatError, PhaseCounts, 4},
		{"short atoms", "a\n\n\n2 0\n0 0 0 C 0\n", FormatError, PhaseAtoms, 6},
		{"bad coordinate", "a\n\n\n1 0\n0 zero 0 C 0\n", FormatError, PhaseAtoms, 5},
		{"missing charge", "a\n\n\n1 0\n0 0 0 C\n", FormatError, PhaseAtoms, 5},
		{"bad charge", "a\n\n\n1 0\n0 0 0 C plus\n", FormatError, PhaseAtoms, 5},
		{"infinite coordinate", "a\n\n\n1 0\nInf 0 0 C 0\n", FormatError, PhaseAtoms, 5},
		{"NaN coordinate", "a\n\n\n1 0\n0 NaN 0 C 0\n", FormatError, PhaseAtoms, 5},
		{"overflowing coordinate", "a\n\n\n1 0\n0 0 1e999 C 0\n", FormatError, PhaseAtoms, 5},
		{"infinite charge", "a\n\n\n1 0\n0 0 0 C +Inf\n", FormatError, PhaseAtoms, 5},
		{"NaN charge", "a\n\n\n1 0\n0 0 0 C NaN\n", FormatError, PhaseAtoms, 5},
		{"huge charge", "a\n\n\n1 0\n0 0 0 C 1e300\n", FormatError, PhaseAtoms, 5},
		{"huge negative charge", "a\n\n\n1 0\n0 0 0 C -1e19\n", FormatError, PhaseAtoms, 5},
		{"unknown element", "a\n\n\n1 0\n0 0 0 Xx 0\n", UnsupportedElement, PhaseAtoms, 5},
		{"short bonds", "a\n\n\n2 2\n0 0 0 C 0\n1 0 0 C 0\n1 2 1\n", FormatError, PhaseBonds, 8},
		{"bad bond code", "a\n\n\n2 1\n0 0 0 C 0\n1 0 0 C 0\n1 2 0\n", FormatError, PhaseBonds, 7},
		{"letter bond code", "a\n\n\n2 1\n0 0 0 C 0\n1 0 0 C 0\n1 2 A\n", FormatError, PhaseBonds, 7},
		{"bad bond index", "a\n\n\n2 1\n0 0 0 C 0\n1 0 0 C 0\none 2 1\n", FormatError, PhaseBonds, 7},
		{"bond out of range", "a\n\n\n2 1\n0 0 0 C 0\n1 0 0 C 0\n1 3 1\n", FormatError, PhaseBonds, 7},
		{"bond index zero", "a\n\n\n2 1\n0 0 0 C 0\n1 0 0 C 0\n0 2 1\n", FormatError, PhaseBonds, 7},
		{"self bond", "a\n\n\n2 1\n0 0 0 C 0\n1 0 0 C 0\n2 2 1\n", FormatError, PhaseBonds, 7},
		{"missing bond code", "a\n\n\n2 1\n0 0 0 C 0\n1 0 0 C 0\n1 2\n", FormatError, PhaseBonds, 7},
	}
	for _, c := range cases {
		mol, err := Parse([]byte(c.in))
		if err == nil {
			Te.Errorf("%s: expected an error", c.name)
			continue
		}
		if mol != nil {
			Te.Errorf("%s: got a partial molecule", c.name)
		}
		var e *Error
		if !errors.As(err, &e) {
			Te.Errorf("%s: error is not *Error: %v", c.name, err)
			continue
		}
		if e.Kind() != c.kind || e.Phase() != c.phase || e.Line() != c.line {
			Te.Errorf("%s: got kind %v phase %q line %d, want %v %q %d (%v)", c.name, e.Kind(), e.Phase(), e.Line(), c.kind, c.phase, c.line, err)
		}
	}
}

//Fields after the ones we read, and \r\n line endings, are accepted.
func TestParseTrailingFieldsAndCRLF(Te *testing.T) {
	in := strings.ReplaceAll(minimalMol, "\n", "\r\n")
	in = strings.Replace(in, "1 2 2", "1 2 2 0 0 0 0", 1)
	in = strings.Replace(in, "0 0 0 C 0", "0 0 0 C 0 0 0 0 0 0", 1)
	mol, err := Parse([]byte(in))
	if err != nil {
		Te.Fatal(err)
	}
	if mol.Name != "CO" || mol.Len() != 2 || mol.Bonds[0].Type != Double {
		Te.Errorf("unexpected result %+v", mol)
	}
}

func TestLoadIdempotent(Te *testing.T) {
	m1, err := Load("test/chloroacetate.mol")
	if err != nil {
		Te.Fatal(err)
	}
	m2, err := Load("test/chloroacetate.mol")
	if err != nil {
		Te.Fatal(err)
	}
	if !reflect.DeepEqual(m1, m2) {
		Te.Errorf("two loads of the same file differ:\n%+v\n%+v", m1, m2)
	}
}

func TestLoadMissingFile(Te *testing.T) {
	_, err := Load("test/does-not-exist.mol")
	if !IsKind(err, ReadError) {
		Te.Fatalf("expected a read error, got %v", err)
	}
	var e *Error
	errors.As(err, &e)
	if e.FileName() != "test/does-not-exist.mol" || !errors.Is(err, os.ErrNotExist) {
		Te.Errorf("error should keep the file name and the cause: %v", err)
	}
}

func TestLoadErrorHasFileName(Te *testing.T) {
	name := Te.TempDir() + "/bad.mol"
	if err := os.WriteFile(name, []byte("a\n\n\n1 0\n"), 0o644); err != nil {
		Te.Fatal(err)
	}
	_, err := Load(name)
	var e *Error
	if !errors.As(err, &e) {
		Te.Fatalf("expected *Error, got %v", err)
	}
	if e.FileName() != name || !strings.Contains(e.Error(), name) {
		Te.Errorf("file name missing from error: %v", err)
	}
	if d := e.Decorate(""); len(d) == 0 || d[len(d)-1] != "Load" {
		Te.Errorf("decoration %v should end with Load", d)
	}
}

func TestRead(Te *testing.T) {
	mol, err := Read(strings.NewReader(minimalMol))
	if err != nil {
		Te.Fatal(err)
	}
	if mol.Len() != 2 {
		Te.Errorf("got %d atoms", mol.Len())
	}
}

func TestBondTypeText(Te *testing.T) {
	for t := Single; t <= Any; t++ {
		text, err := t.MarshalText()
		if err != nil {
			Te.Fatal(err)
		}
		var back BondType
		if err := back.UnmarshalText(text); err != nil || back != t {
			Te.Errorf("%v: got %v, %v", t, back, err)
		}
	}
	var b BondType
	if err := b.UnmarshalText([]byte("quadruple")); err == nil {
		Te.Errorf("expected an error for an unknown bond type")
	}
	if _, err := BondType(0).MarshalText(); err == nil {
		Te.Errorf("expected an error for the zero bond type")
	}
}
