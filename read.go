/*
 * read.go, part of gomdl.
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
	"io"
	"math"
	"strconv"
	"strings"
)

// Load reads the molfile filename and returns the molecule in it.
// Files ending in .gz, .zst or .zstd are decompressed on the fly.
func Load(filename string) (*Molecule, error) {
	r, err := openMaybeCompressed(filename)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &Error{kind: ReadError, message: "unable to read file", filename: filename, deco: []string{"Load"}, critical: true, err: err}
	}
	mol, err := Parse(data)
	if err != nil {
		var e *Error
		if errors.As(err, &e) {
			e.filename = filename
		}
		return nil, errDecorate(err, "Load")
	}
	return mol, nil
}

// Read reads everything from r and parses it as a molfile.
func Read(r io.Reader) (*Molecule, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &Error{kind: ReadError, message: "unable to read input", deco: []string{"Read"}, critical: true, err: err}
	}
	mol, err := Parse(data)
	if err != nil {
		return nil, errDecorate(err, "Read")
	}
	return mol, nil
}

//lines hands out the lines of the file one at a time
//and keeps the count for error reporting.
type lines struct {
	l    []string
	curr int
}

func (L *lines) next(phase string) (string, error) {
	if L.curr >= len(L.l) {
		return "", formatError(phase, L.curr+1, "unexpected end of file", nil)
	}
	L.curr++
	return L.l[L.curr-1], nil
}

//lines not yet read. Used to avoid allocating for counts
//the file can't satisfy anyway.
func (L *lines) left() int {
	return len(L.l) - L.curr
}

//number of the line last returned by next, 1-based.
func (L *lines) number() int {
	return L.curr
}

// Parse builds a Molecule from the contents of a molfile.
// Either the whole molecule is returned, or nil and an *Error.
func Parse(data []byte) (*Molecule, error) {
	text := string(data)
	L := &lines{l: strings.Split(text, "\n")}
	//a final newline doesn't start a new line.
	if strings.HasSuffix(text, "\n") {
		L.l = L.l[:len(L.l)-1]
	}
	mol := new(Molecule)

	//header block
	name, err := L.next(PhaseHeader)
	if err != nil {
		return nil, errDecorate(err, "Parse")
	}
	mol.Name = strings.TrimSpace(name)
	if _, err = L.next(PhaseHeader); err != nil { //line 2 is not used.
		return nil, errDecorate(err, "Parse")
	}
	comment, err := L.next(PhaseHeader)
	if err != nil {
		return nil, errDecorate(err, "Parse")
	}
	mol.Comment = strings.TrimSpace(comment)

	natoms, nbonds, err := readCounts(L)
	if err != nil {
		return nil, errDecorate(err, "Parse")
	}

	mol.Atoms = make([]Atom, 0, min(natoms, L.left()))
	for i := 0; i < natoms; i++ {
		line, err := L.next(PhaseAtoms)
		if err != nil {
			err.(*Error).message = fmt.Sprintf("expected %d atoms, found %d", natoms, i)
			return nil, errDecorate(err, "Parse")
		}
		at, err := readAtomLine(line, L.number())
		if err != nil {
			return nil, errDecorate(err, "Parse")
		}
		switch at.Symbol {
		case "C":
			mol.NCarbon++
		case "O":
			mol.NOxygen++
		case "N":
			mol.NNitrogen++
		}
		if at.Heavy {
			mol.NHeavy++
		}
		mol.Atoms = append(mol.Atoms, at)
	}

	mol.Bonds = make([]Bond, 0, min(nbonds, L.left()))
	for i := 0; i < nbonds; i++ {
		line, err := L.next(PhaseBonds)
		if err != nil {
			err.(*Error).message = fmt.Sprintf("expected %d bonds, found %d", nbonds, i)
			return nil, errDecorate(err, "Parse")
		}
		b, err := readBondLine(line, L.number(), natoms)
		if err != nil {
			return nil, errDecorate(err, "Parse")
		}
		mol.Bonds = append(mol.Bonds, b)
	}

	for _, b := range mol.Bonds {
		if mol.Atoms[b.A1].Heavy && mol.Atoms[b.A2].Heavy {
			mol.HeavyBonds++
		}
	}
	return mol, nil
}

//readCounts reads the number of atoms and bonds from the 4th line.
//Whatever comes after those 2 fields (the chiral flag, etc.) is not read.
func readCounts(L *lines) (int, int, error) {
	line, err := L.next(PhaseCounts)
	if err != nil {
		return 0, 0, err
	}
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return 0, 0, formatError(PhaseCounts, L.number(), fmt.Sprintf("expected at least 2 fields, found %d", len(fields)), nil)
	}
	natoms, err := strconv.ParseUint(fields[0], 10, 31)
	if err != nil {
		return 0, 0, formatError(PhaseCounts, L.number(), "invalid atom count", err)
	}
	nbonds, err := strconv.ParseUint(fields[1], 10, 31)
	if err != nil {
		return 0, 0, formatError(PhaseCounts, L.number(), "invalid bond count", err)
	}
	return int(natoms), int(nbonds), nil
}

//readAtomLine parses a line of the atom block. The fields are
//x y z symbol charge; anything after those is ignored.
func readAtomLine(line string, number int) (Atom, error) {
	var at Atom
	fields := strings.Fields(line)
	if len(fields) < 5 {
		return at, formatError(PhaseAtoms, number, fmt.Sprintf("expected at least 5 fields, found %d", len(fields)), nil)
	}
	var coords [3]float64
	for i, name := range [3]string{"x", "y", "z"} {
		c, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return at, formatError(PhaseAtoms, number, fmt.Sprintf("invalid %s coordinate", name), err)
		}
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return at, formatError(PhaseAtoms, number, fmt.Sprintf("%s coordinate is not finite", name), nil)
		}
		coords[i] = c
	}
	chg, err := strconv.ParseFloat(fields[4], 64)
	if err != nil {
		return at, formatError(PhaseAtoms, number, "invalid charge", err)
	}
	rounded := math.Round(chg) //half away from zero
	if math.IsNaN(chg) || rounded < math.MinInt || rounded >= -math.MinInt {
		return at, formatError(PhaseAtoms, number, fmt.Sprintf("charge %s out of range", fields[4]), nil)
	}
	at.Symbol = Symbol(fields[3])
	at.Valence, err = Valence(at.Symbol.Upper())
	if err != nil {
		e := err.(*Error)
		e.phase = PhaseAtoms
		e.line = number
		return at, e
	}
	at.Type = AtomType(at.Symbol)
	at.X, at.Y, at.Z = coords[0], coords[1], coords[2]
	at.RealCharge = chg
	at.FormalCharge = int(rounded)
	at.Heavy = IsHeavy(at.Symbol)
	return at, nil
}

//readBondLine parses a line of the bond block: atom1 atom2 code, with
//1-based atom indexes. natoms is used to check the indexes.
func readBondLine(line string, number, natoms int) (Bond, error) {
	var b Bond
	fields := strings.Fields(line)
	if len(fields) < 3 {
		return b, formatError(PhaseBonds, number, fmt.Sprintf("expected at least 3 fields, found %d", len(fields)), nil)
	}
	var idx [2]int
	for i := range idx {
		a, err := strconv.Atoi(fields[i])
		if err != nil {
			return b, formatError(PhaseBonds, number, fmt.Sprintf("invalid index for atom %d", i+1), err)
		}
		if a < 1 || a > natoms {
			return b, formatError(PhaseBonds, number, fmt.Sprintf("atom %d out of range (%d atoms)", a, natoms), nil)
		}
		idx[i] = a - 1
	}
	if idx[0] == idx[1] {
		return b, formatError(PhaseBonds, number, fmt.Sprintf("atom %d bonded to itself", idx[0]+1), nil)
	}
	t, err := BondTypeFromCode(fields[2])
	if err != nil {
		e := err.(*Error)
		e.line = number
		return b, e
	}
	b.A1, b.A2, b.Type = idx[0], idx[1], t
	return b, nil
}
