/*
 * coords.go, part of gomdl.
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

import "gonum.org/v1/gonum/mat"

// Coords returns the coordinates of the molecule as a new Nx3 matrix,
// where each row is the position of the atom with the same index.
// Returns nil for a molecule without atoms, as gonum doesn't allow
// empty matrices.
func (M *Molecule) Coords() *mat.Dense {
	if len(M.Atoms) == 0 {
		return nil
	}
	data := make([]float64, 0, 3*len(M.Atoms))
	for _, a := range M.Atoms {
		data = append(data, a.X, a.Y, a.Z)
	}
	return mat.NewDense(len(M.Atoms), 3, data)
}

// Composition returns the number of atoms for each symbol in the molecule.
func (M *Molecule) Composition() map[string]int {
	ret := make(map[string]int)
	for _, a := range M.Atoms {
		ret[string(a.Symbol)]++
	}
	return ret
}
