/*
 * output.go, part of gomdl.
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

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	mdl "github.com/rmera/gomdl"
	"github.com/rmera/gomdl/chemplot"
	"github.com/rmera/gomdl/internal/config"
	"gopkg.in/yaml.v3"
)

type atomSummary struct {
	Symbol       string     `json:"symbol" yaml:"symbol"`
	Type         string     `json:"type" yaml:"type"`
	Coords       [3]float64 `json:"coords" yaml:"coords,flow"`
	FormalCharge int        `json:"formal_charge" yaml:"formal_charge"`
	RealCharge   float64    `json:"real_charge" yaml:"real_charge"`
	Valence      int        `json:"valence" yaml:"valence"`
	Heavy        bool       `json:"heavy" yaml:"heavy"`
}

type bondSummary struct {
	Atoms [2]int       `json:"atoms" yaml:"atoms,flow"`
	Type  mdl.BondType `json:"type" yaml:"type"`
}

type molSummary struct {
	File       string        `json:"file" yaml:"file"`
	Name       string        `json:"name" yaml:"name"`
	Comment    string        `json:"comment,omitempty" yaml:"comment,omitempty"`
	Carbons    int           `json:"carbons" yaml:"carbons"`
	Oxygens    int           `json:"oxygens" yaml:"oxygens"`
	Nitrogens  int           `json:"nitrogens" yaml:"nitrogens"`
	Heavy      int           `json:"heavy_atoms" yaml:"heavy_atoms"`
	HeavyBonds int           `json:"heavy_bonds" yaml:"heavy_bonds"`
	Atoms      []atomSummary `json:"atoms" yaml:"atoms"`
	Bonds      []bondSummary `json:"bonds" yaml:"bonds"`
}

func summarize(file string, mol *mdl.Molecule) molSummary {
	s := molSummary{
		File:       file,
		Name:       mol.Name,
		Comment:    mol.Comment,
		Carbons:    mol.NCarbon,
		Oxygens:    mol.NOxygen,
		Nitrogens:  mol.NNitrogen,
		Heavy:      mol.NHeavy,
		HeavyBonds: mol.HeavyBonds,
		Atoms:      make([]atomSummary, 0, mol.Len()),
		Bonds:      make([]bondSummary, 0, len(mol.Bonds)),
	}
	for _, a := range mol.Atoms {
		s.Atoms = append(s.Atoms, atomSummary{
			Symbol:       string(a.Symbol),
			Type:         a.Type,
			Coords:       [3]float64{a.X, a.Y, a.Z},
			FormalCharge: a.FormalCharge,
			RealCharge:   a.RealCharge,
			Valence:      a.Valence,
			Heavy:        a.Heavy,
		})
	}
	for _, b := range mol.Bonds {
		s.Bonds = append(s.Bonds, bondSummary{Atoms: [2]int{b.A1, b.A2}, Type: b.Type})
	}
	return s
}

func printMolecules(out io.Writer, format, file string, mols []*mdl.Molecule) error {
	sums := make([]molSummary, 0, len(mols))
	for _, m := range mols {
		sums = append(sums, summarize(file, m))
	}
	switch format {
	case config.FormatJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(sums)
	case config.FormatYAML:
		enc := yaml.NewEncoder(out)
		defer enc.Close()
		return enc.Encode(sums)
	default:
		for _, s := range sums {
			_, err := fmt.Fprintf(out, "%s\t%s\tatoms: %d bonds: %d heavy: %d heavy bonds: %d C: %d O: %d N: %d\n",
				s.File, s.Name, len(s.Atoms), len(s.Bonds), s.Heavy, s.HeavyBonds, s.Carbons, s.Oxygens, s.Nitrogens)
			if err != nil {
				return err
			}
		}
		return nil
	}
}

func plotMolecules(dir, file string, mols []*mdl.Molecule) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	base := strings.SplitN(filepath.Base(file), ".", 2)[0]
	for i, m := range mols {
		name := filepath.Join(dir, fmt.Sprintf("%s-%d.png", base, i+1))
		title := m.Name
		if title == "" {
			title = base
		}
		if err := chemplot.CompositionPlot(m, title, name); err != nil {
			return err
		}
	}
	return nil
}
