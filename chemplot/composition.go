/*
 * composition.go, part of gomdl
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

// Package chemplot draws simple plots of molecules read with gomdl.
package chemplot

import (
	"fmt"
	"image/color"
	"sort"

	mdl "github.com/rmera/gomdl"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Composition returns the element symbols in mol, sorted, and the number of
// atoms of each.
func Composition(mol *mdl.Molecule) ([]string, plotter.Values) {
	comp := mol.Composition()
	names := make([]string, 0, len(comp))
	for k := range comp {
		names = append(names, k)
	}
	sort.Strings(names)
	vals := make(plotter.Values, len(names))
	for i, n := range names {
		vals[i] = float64(comp[n])
	}
	return names, vals
}

// CompositionPlot draws a bar chart with the number of atoms of each element in mol
// and saves it to filename. The image format is taken from the file extension.
func CompositionPlot(mol *mdl.Molecule, title, filename string) error {
	if mol.Len() == 0 {
		return fmt.Errorf("CompositionPlot: molecule %q has no atoms", mol.Name)
	}
	names, vals := Composition(mol)
	p := plot.New()
	p.Title.Text = title
	p.Title.Padding = 3 * vg.Millimeter
	p.Y.Label.Text = "Atoms"
	p.Y.Min = 0
	bars, err := plotter.NewBarChart(vals, vg.Points(20))
	if err != nil {
		return fmt.Errorf("CompositionPlot: %w", err)
	}
	bars.LineStyle.Width = vg.Length(0)
	bars.Color = color.RGBA{R: 40, G: 90, B: 180, A: 255}
	p.Add(bars, plotter.NewGrid())
	p.NominalX(names...)
	if err := p.Save(5*vg.Inch, 4*vg.Inch, filename); err != nil {
		return fmt.Errorf("CompositionPlot: %w", err)
	}
	return nil
}
