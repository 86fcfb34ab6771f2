// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package matrix provides a 2-D integer view of tensor.Tensor with a
// fixed-width text format.
//
// Dimension 0 of a matrix is its row length: the elements of one row are
// contiguous, and Dimensions() returns {cols, rows}.
package matrix

import (
	"cmp"
	"fmt"
	"io"

	"golang.org/x/exp/constraints"

	"github.com/born-ml/tensore/tensor"
)

// Matrix is a rank-2 tensor of integers backed by the heap allocator.
type Matrix[T constraints.Integer] = tensor.Tensor[T, [2]int, tensor.HeapAllocator[T]]

// New creates a zero-filled rows x cols matrix.
func New[T constraints.Integer](rows, cols int) (*Matrix[T], error) {
	return tensor.New[T]([2]int{cols, rows})
}

// Rows returns the number of rows.
func Rows[T constraints.Integer](m *Matrix[T]) int {
	return m.Dimensions()[1]
}

// Cols returns the number of columns (the row length).
func Cols[T constraints.Integer](m *Matrix[T]) int {
	return m.Dimensions()[0]
}

// At returns the element at (row, col).
func At[T constraints.Integer](m *Matrix[T], row, col int) (T, error) {
	return m.At([2]int{col, row})
}

// Set stores v at (row, col).
func Set[T constraints.Integer](m *Matrix[T], row, col int, v T) error {
	return m.SetAt([2]int{col, row}, v)
}

// Format writes m one row per line. Cells are right-aligned to the width
// of the widest element and separated by a single space.
//
// Example output for a 2x3 matrix filled 0..5:
//
//	0 1 2
//	3 4 5
func Format[T constraints.Integer](w io.Writer, m *Matrix[T]) error {
	width := 1
	for v, err := range tensor.Values(m.CBegin(), m.CEnd()) {
		if err != nil {
			return err
		}
		width = max(width, len(fmt.Sprint(v)))
	}

	cols := Cols(m)
	i := 0
	for v, err := range tensor.Values(m.CBegin(), m.CEnd()) {
		if err != nil {
			return err
		}
		sep := " "
		if i++; i%cols == 0 {
			sep = "\n"
		}
		if _, err := fmt.Fprintf(w, "%*d%s", width, v, sep); err != nil {
			return err
		}
	}
	return nil
}

// SortRows sorts every row in place: even rows ascending, odd rows descending.
func SortRows[T constraints.Integer](m *Matrix[T]) error {
	cols := Cols(m)
	rows := Rows(m)
	asc := cmp.Compare[T]
	desc := func(a, b T) int { return cmp.Compare(b, a) }

	begin := m.Begin()
	for r := 0; r < rows; r++ {
		first := begin.Add(r * cols)
		order := asc
		if r%2 == 1 {
			order = desc
		}
		if err := tensor.Sort(first, first.Add(cols), order); err != nil {
			return fmt.Errorf("sort row %d: %w", r, err)
		}
	}
	return nil
}
