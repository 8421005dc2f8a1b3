/*
 * graph.go, part of gomdl.
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

// Package chemgraph builds gonum graphs from the connection table of a molecule.
// Node IDs are the 0-based atom indexes.
package chemgraph

import (
	mdl "github.com/rmera/gomdl"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"
)

// FromMolecule returns an undirected graph with one node per atom and one edge
// per bond. The weight of each edge is the bond order (see mdl.BondType.Order).
// If two bonds join the same pair of atoms, the last one wins, so the
// graph can have fewer edges than mol has bonds.
func FromMolecule(mol *mdl.Molecule) *simple.WeightedUndirectedGraph {
	g := simple.NewWeightedUndirectedGraph(0, 0)
	for i := 0; i < mol.Len(); i++ {
		g.AddNode(simple.Node(i))
	}
	for _, b := range mol.Bonds {
		g.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(b.A1), T: simple.Node(b.A2), W: b.Type.Order()})
	}
	return g
}

// HeavyBonds counts the edges of g that join two heavy atoms of mol.
// It equals mol.HeavyBonds only when no pair of atoms is bonded twice
// in the file, as FromMolecule keeps a single edge per pair.
func HeavyBonds(g graph.Undirected, mol *mdl.Molecule) int {
	var n int
	nodes := g.Nodes()
	for nodes.Next() {
		u := nodes.Node().ID()
		if !mol.Atom(int(u)).Heavy {
			continue
		}
		to := g.From(u)
		for to.Next() {
			v := to.Node().ID()
			if u < v && mol.Atom(int(v)).Heavy {
				n++
			}
		}
	}
	return n
}

// Degree returns the number of atoms bonded to the atom i.
func Degree(g graph.Graph, i int) int {
	return g.From(int64(i)).Len()
}

// BondPath returns the indexes of the atoms in the path with fewest bonds
// between the atoms from and to, both included. It returns nil if
// there is no such path.
func BondPath(mol *mdl.Molecule, from, to int) []int {
	g := simple.NewUndirectedGraph()
	for i := 0; i < mol.Len(); i++ {
		g.AddNode(simple.Node(i))
	}
	for _, b := range mol.Bonds {
		g.SetEdge(simple.Edge{F: simple.Node(b.A1), T: simple.Node(b.A2)})
	}
	if g.Node(int64(from)) == nil || g.Node(int64(to)) == nil {
		return nil
	}
	shortest := path.DijkstraFrom(simple.Node(from), g)
	nodes, _ := shortest.To(int64(to))
	if len(nodes) == 0 {
		return nil
	}
	ret := make([]int, len(nodes))
	for i, v := range nodes {
		ret[i] = int(v.ID())
	}
	return ret
}
