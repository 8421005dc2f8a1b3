/*
 * compress.go, part of gomdl.
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
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

//*zstd.Decoder doesn't implement io.ReadCloser, as its
//Close method returns nothing.
type zstdCloser struct {
	*zstd.Decoder
}

func (z zstdCloser) Close() error {
	z.Decoder.Close()
	return nil
}

//fileCloser closes both the decompressor and the file under it.
type fileCloser struct {
	io.ReadCloser
	f *os.File
}

func (F fileCloser) Close() error {
	err := F.ReadCloser.Close()
	if err2 := F.f.Close(); err == nil {
		err = err2
	}
	return err
}

// Open opens filename for reading. If the name ends in .gz, .zst or .zstd
// the returned reader decompresses the content. The caller must close it.
func Open(filename string) (io.ReadCloser, error) {
	r, err := openMaybeCompressed(filename)
	if err != nil {
		return nil, errDecorate(err, "Open")
	}
	return r, nil
}

func openMaybeCompressed(filename string) (io.ReadCloser, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, &Error{kind: ReadError, message: "unable to open file", filename: filename, deco: []string{"openMaybeCompressed"}, critical: true, err: err}
	}
	var AnyNewReader func(io.Reader) (io.ReadCloser, error)
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".gz":
		AnyNewReader = func(a io.Reader) (io.ReadCloser, error) { return gzip.NewReader(a) }
	case ".zst", ".zstd":
		AnyNewReader = func(a io.Reader) (io.ReadCloser, error) {
			r, err := zstd.NewReader(a)
			if err != nil {
				return nil, err
			}
			return zstdCloser{r}, nil
		}
	default:
		return f, nil
	}
	r, err := AnyNewReader(f)
	if err != nil {
		f.Close()
		return nil, &Error{kind: ReadError, message: "unable to decompress file", filename: filename, deco: []string{"openMaybeCompressed"}, critical: true, err: err}
	}
	return fileCloser{ReadCloser: r, f: f}, nil
}
