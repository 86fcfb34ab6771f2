package tensor

import (
	"fmt"
	"math"
)

// Dims is the constraint for the extents array of a tensor.
// The array length is the tensor rank, so the rank is fixed at
// instantiation and a dimension list of the wrong length does not compile.
//
// Example:
//
//	t, err := tensor.New[float64]([3]int{4, 5, 6}) // rank 3
type Dims interface {
	~[1]int | ~[2]int | ~[3]int | ~[4]int | ~[5]int | ~[6]int | ~[7]int | ~[8]int
}

// numElements returns the product of all extents.
// Fails with ErrBadShape on a negative extent or int overflow.
func numElements[D Dims](dims D) (int, error) {
	n := 1
	for i := 0; i < len(dims); i++ {
		d := dims[i]
		if d < 0 {
			return 0, fmt.Errorf("%w: dimension %d has negative extent %d", ErrBadShape, i, d)
		}
		if d != 0 && n > math.MaxInt/d {
			return 0, fmt.Errorf("%w: element count of %v overflows int", ErrBadShape, dims)
		}
		n *= d
	}
	return n, nil
}

// product returns the product of extents without validation.
// Extents are validated once on the way in, so stored dims never overflow.
func product[D Dims](dims D) int {
	n := 1
	for i := 0; i < len(dims); i++ {
		n *= dims[i]
	}
	return n
}

// Strides returns the linear stride of every axis.
// Axis 0 varies fastest: stride[0] = 1, stride[k] = stride[k-1] * dims[k-1].
func Strides[D Dims](dims D) D {
	var strides D
	mult := 1
	for i := 0; i < len(dims); i++ {
		strides[i] = mult
		mult *= dims[i]
	}
	return strides
}

// linearIndex maps a coordinate to its position in the backing slice.
func linearIndex[D Dims](dims, coords D) (int, error) {
	index := 0
	mult := 1
	for i := 0; i < len(dims); i++ {
		if coords[i] < 0 || coords[i] >= dims[i] {
			return 0, fmt.Errorf("%w: coordinate %d on axis %d (extent %d)",
				ErrCoordinateOutOfRange, coords[i], i, dims[i])
		}
		index += coords[i] * mult
		mult *= dims[i]
	}
	return index, nil
}

// coordsOf is the inverse of linearIndex. The caller guarantees
// 0 <= index < product(dims).
func coordsOf[D Dims](dims D, index int) D {
	var coords D
	for i := 0; i < len(dims); i++ {
		coords[i] = index % dims[i]
		index /= dims[i]
	}
	return coords
}

// contains reports whether coords lies inside dims on every axis.
func contains[D Dims](dims, coords D) bool {
	for i := 0; i < len(dims); i++ {
		if coords[i] < 0 || coords[i] >= dims[i] {
			return false
		}
	}
	return true
}
