/*
 * doc.go, part of gomdl.
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

/*
Package mdl reads MDL molfiles (one record of an SDF file) into a Molecule:
atoms with coordinates, charges and a few derived properties, and bonds with their
types.

	**Capabilities**

	Reads plain, gzip- or zstd-compressed molfiles (Load, Read, Parse).

	Derives, for each atom, a normalized atom type, the default valence
	and whether the atom is heavy (anything but hydrogen).

	Counts carbons, oxygens, nitrogens, heavy atoms and bonds between heavy atoms.

	Gives the coordinates as a gonum matrix, one atom per row.

The file is read as whitespace-separated fields:

	line 1   molecule name
	line 2   ignored
	line 3   comment
	line 4   natoms nbonds [ignored fields]
	atoms    x y z symbol charge [ignored fields]
	bonds    atom1 atom2 code [ignored fields]

Atom indexes in the bond block are 1-based in the file and 0-based in the Molecule.
Ring membership, aromaticity, stereo, isotopes and radicals are not perceived. Their
fields exist (see AtomDeferred and BondDeferred) but are always zero.

The valence table is keyed by upper-case codes (UpperSymbol, "CL") while the atom type
table uses the symbols as written in the file (Symbol, "Cl"). Symbol.Upper converts
between the two.

Every error returned is an *Error. Its Kind tells apart read errors, format errors
and elements missing from the valence table.
*/
package mdl
