// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor_test

import (
	"errors"
	"fmt"

	"github.com/born-ml/tensore/tensor"
)

func ExampleNew() {
	m, err := tensor.New[int]([2]int{2, 3})
	if err != nil {
		panic(err)
	}
	_ = tensor.Iota(m.Begin(), m.End(), 0)

	v, _ := m.At([2]int{1, 2})
	fmt.Println(m.Size(), m.Dimensions(), v)
	// Output: 6 [2 3] 5
}

func ExampleNew_clone() {
	a := tensor.MustNew[int]([1]int{3})
	_ = tensor.Iota(a.Begin(), a.End(), 1)

	b := a.Clone()
	_ = b.Set(0, 100)

	fmt.Println(a.Data(), b.Data())
	// Output: [1 2 3] [100 2 3]
}

func ExampleNew_move() {
	a := tensor.MustNew[int]([2]int{2, 2})
	b := a.Move()

	fmt.Println(a.Size(), b.Size())
	// Output: 0 4
}

func ExampleNew_resize() {
	m := tensor.MustNew[int]([2]int{2, 2})
	it := m.Begin()

	_ = m.Resize([2]int{3, 3})

	_, err := it.Value()
	fmt.Println(errors.Is(err, tensor.ErrIteratorInvalidated))
	// Output: true
}

func ExampleAccumulate() {
	t := tensor.MustNew[float64]([4]int{2, 2, 2, 2})
	_ = tensor.Iota(t.Begin(), t.End(), 0)

	half := t.Size() / 2
	lo, _ := tensor.Accumulate(t.CBegin(), t.CBegin().Add(half), 0)
	hi, _ := tensor.Accumulate(t.CBegin().Add(half), t.CEnd(), 0)

	fmt.Println(lo, hi, lo+hi)
	// Output: 28 92 120
}

func ExampleMakeReverse() {
	m := tensor.MustNew[int]([1]int{4})
	_ = tensor.Iota(m.Begin(), m.End(), 0)

	for r := m.RBegin(); r.Less(m.REnd()); r = r.Next() {
		v, _ := r.Value()
		fmt.Print(v, " ")
	}
	fmt.Println()
	// Output: 3 2 1 0
}
