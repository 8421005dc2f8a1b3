/*
 * sdf.go, part of gomdl.
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

// Package sdf reads SD files, which are molfiles one after the other, each
// terminated by a "$$$$" line. Each record is given to mdl.Parse.
package sdf

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	mdl "github.com/rmera/gomdl"
	"golang.org/x/sync/errgroup"
)

const terminator = "$$$$"

// Reader reads the records of an SD file one at a time.
type Reader struct {
	r      *bufio.Reader
	record int //records returned so far
}

// NewReader returns a Reader reading from r.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: bufio.NewReader(r)}
}

// NextRecord returns the raw text of the next record, without the
// terminator line. It returns io.EOF when there are no more records.
// A last record without a terminator is returned as well, unless it is
// only whitespace.
func (R *Reader) NextRecord() ([]byte, error) {
	var buf bytes.Buffer
	for {
		line, err := R.r.ReadBytes('\n')
		if err != nil && err != io.EOF {
			return nil, err
		}
		if string(bytes.TrimSpace(line)) == terminator {
			R.record++
			return buf.Bytes(), nil
		}
		buf.Write(line)
		if err == io.EOF {
			if len(bytes.TrimSpace(buf.Bytes())) == 0 {
				return nil, io.EOF
			}
			R.record++
			return buf.Bytes(), nil
		}
	}
}

// Next returns the molecule in the next record, or io.EOF if there are
// no more records. Parsing errors carry the 1-based record number in their
// decoration.
func (R *Reader) Next() (*mdl.Molecule, error) {
	rec, err := R.NextRecord()
	if err != nil {
		return nil, err
	}
	mol, err := mdl.Parse(rec)
	if err != nil {
		return nil, decorate(err, fmt.Sprintf("Next: record %d", R.record))
	}
	return mol, nil
}

// Records reads all the remaining records from R, without parsing them.
func (R *Reader) Records() ([][]byte, error) {
	var ret [][]byte
	for {
		rec, err := R.NextRecord()
		if err == io.EOF {
			return ret, nil
		}
		if err != nil {
			return nil, err
		}
		ret = append(ret, rec)
	}
}

// ReadAll parses every record in r using up to workers goroutines,
// and returns the molecules in the order they appear in the file.
// The first error stops the whole read.
func ReadAll(ctx context.Context, r io.Reader, workers int) ([]*mdl.Molecule, error) {
	if workers < 1 {
		workers = 1
	}
	records, err := NewReader(r).Records()
	if err != nil {
		return nil, err
	}
	mols := make([]*mdl.Molecule, len(records))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, rec := range records {
		i, rec := i, rec
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			mol, err := mdl.Parse(rec)
			if err != nil {
				return decorate(err, fmt.Sprintf("ReadAll: record %d", i+1))
			}
			mols[i] = mol
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return mols, nil
}

func decorate(err error, dec string) error {
	var e *mdl.Error
	if errors.As(err, &e) {
		e.Decorate(dec)
	}
	return err
}
