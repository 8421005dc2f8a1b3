/*
 * molfile.go, part of gomdl.
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

import "fmt"

// AtomDeferred holds atomic properties that the parser does not compute.
// They are always at their zero values after a Parse.
type AtomDeferred struct {
	ExplicitH     int //explicit H count
	TotalH        int //total H count
	Neighbors     int
	Rings         int
	Aromatic      bool
	QueryAromatic bool //potentially aromatic in a query structure
	StereoCare    bool
	Metal         bool
	Nucleon       int
	Radical       int
	Tag           bool
}

// Atom is one atom of the connection table.
type Atom struct {
	Symbol       Symbol //as read
	Type         string
	X, Y, Z      float64
	FormalCharge int     //the charge field, rounded
	RealCharge   float64 //the charge field, as read
	Heavy        bool
	Valence      int
	Deferred     AtomDeferred
}

// BondType is the order (or query order) of a bond.
type BondType int

const (
	Single BondType = iota + 1
	Double
	Triple
	Aromatic
	SingleOrDouble
	SingleOrAromatic
	DoubleOrAromatic
	Any
)

var bondTypeNames = map[BondType]string{
	Single:           "single",
	Double:           "double",
	Triple:           "triple",
	Aromatic:         "aromatic",
	SingleOrDouble:   "single-or-double",
	SingleOrAromatic: "single-or-aromatic",
	DoubleOrAromatic: "double-or-aromatic",
	Any:              "any",
}

//the one-character codes used by older
//programs for each bond type.
var bondTypeCodes = map[BondType]byte{
	Single:           'S',
	Double:           'D',
	Triple:           'T',
	Aromatic:         'A',
	SingleOrDouble:   'l',
	SingleOrAromatic: 's',
	DoubleOrAromatic: 'd',
	Any:              'a',
}

//The bond block code. 9 is "any" in JSME.
var mdlBondCodes = map[string]BondType{
	"1": Single,
	"2": Double,
	"3": Triple,
	"4": Aromatic,
	"5": SingleOrDouble,
	"6": SingleOrAromatic,
	"7": DoubleOrAromatic,
	"8": Any,
	"9": Any,
}

func (B BondType) String() string {
	if s, ok := bondTypeNames[B]; ok {
		return s
	}
	return fmt.Sprintf("BondType(%d)", int(B))
}

// Code returns the one-character symbol for the bond type, or 0 for an invalid type.
func (B BondType) Code() byte {
	return bondTypeCodes[B]
}

// Order returns the bond order as a number. Aromatic bonds are 1.5, query
// types (which don't have a defined order) are 0.
func (B BondType) Order() float64 {
	switch B {
	case Single:
		return 1
	case Double:
		return 2
	case Triple:
		return 3
	case Aromatic:
		return 1.5
	default:
		return 0
	}
}

// MarshalText allows bond types to be serialized by name.
func (B BondType) MarshalText() ([]byte, error) {
	s, ok := bondTypeNames[B]
	if !ok {
		return nil, fmt.Errorf("invalid bond type %d", int(B))
	}
	return []byte(s), nil
}

// UnmarshalText reads a bond type written by MarshalText.
func (B *BondType) UnmarshalText(text []byte) error {
	for k, v := range bondTypeNames {
		if v == string(text) {
			*B = k
			return nil
		}
	}
	return fmt.Errorf("unknown bond type %q", string(text))
}

// BondTypeFromCode maps the bond-order field of a bond line ("1" to "9")
// to a BondType. Anything else is a FormatError.
func BondTypeFromCode(code string) (BondType, error) {
	if t, ok := mdlBondCodes[code]; ok {
		return t, nil
	}
	return 0, &Error{kind: FormatError, message: fmt.Sprintf("invalid bond code %q", code), phase: PhaseBonds, deco: []string{"BondTypeFromCode"}, critical: true}
}

// BondDeferred holds bond properties that the parser does not compute.
type BondDeferred struct {
	Rings         int
	Aromatic      bool
	QueryAromatic bool //potentially aromatic in a query structure
	Topology      int  //see the MDL file description
	Stereo        int
	MDLStereo     int
}

// Bond joins two atoms, given by their 0-based indexes in the molecule.
type Bond struct {
	A1, A2   int
	Type     BondType
	Deferred BondDeferred
}

// Molecule is the result of parsing a molfile. It is not modified after
// Parse returns.
type Molecule struct {
	Name       string
	Comment    string
	NCarbon    int
	NOxygen    int
	NNitrogen  int
	NHeavy     int
	HeavyBonds int //bonds where both atoms are heavy
	Atoms      []Atom
	Bonds      []Bond
}

// Len returns the number of atoms in the molecule.
func (M *Molecule) Len() int {
	return len(M.Atoms)
}

// Atom returns a pointer to the atom i. Panics if out of range.
func (M *Molecule) Atom(i int) *Atom {
	if i < 0 || i >= len(M.Atoms) {
		panic(fmt.Sprintf("Molecule: requested atom %d out of range", i))
	}
	return &M.Atoms[i]
}

// Bond returns a pointer to the bond i. Panics if out of range.
func (M *Molecule) Bond(i int) *Bond {
	if i < 0 || i >= len(M.Bonds) {
		panic(fmt.Sprintf("Molecule: requested bond %d out of range", i))
	}
	return &M.Bonds[i]
}

// Counts returns the number of atoms and bonds.
func (M *Molecule) Counts() (int, int) {
	return len(M.Atoms), len(M.Bonds)
}
