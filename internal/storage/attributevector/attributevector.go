// Package attributevector implements the fit-width index vector backing a
// dictionary column. Width is chosen once, at construction, to the
// narrowest of 8/16/32 bits that can address the dictionary without
// colliding with the reserved INVALID_VALUE_ID sentinel.
package attributevector

import "github.com/halvorsen/colscan/internal/colerrors"

// ValueID identifies a dictionary entry. The sentinel InvalidValueID equals
// the maximum representable value at a given width and is never a valid
// dictionary index.
type ValueID uint32

// InvalidValueID is the sentinel meaning "no such value id", narrowed to
// whatever width is in play. At width w bytes, the sentinel looks like
// (1<<(8*w))-1, which this constant already equals for width 4; narrowing
// casts for width 1/2 naturally produce the narrower sentinel.
const InvalidValueID ValueID = ^ValueID(0)

// Width is the storage width of an attribute vector, in bytes.
type Width int

const (
	Width1 Width = 1
	Width2 Width = 2
	Width4 Width = 4
)

// MaxDictionarySize returns the all-ones code of the given width, which is
// reserved for InvalidValueID. A dictionary fits the width only if its
// cardinality is strictly below this value (see FitWidth).
func MaxDictionarySize(w Width) int {
	switch w {
	case Width1:
		return 1<<8 - 1
	case Width2:
		return 1<<16 - 1
	case Width4:
		return 1<<32 - 1
	default:
		return 0
	}
}

// FitWidth returns the narrowest width that can hold dictionarySize
// distinct entries while keeping the top code free for InvalidValueID.
func FitWidth(dictionarySize int) Width {
	if dictionarySize < MaxDictionarySize(Width1) {
		return Width1
	}
	if dictionarySize < MaxDictionarySize(Width2) {
		return Width2
	}
	return Width4
}

// Vector is a sequence of ValueIDs stored at a fixed width. The backing
// slice is exposed per-width (Bytes8/Bytes16/Bytes32) so the scan kernel
// can operate on the raw typed vector directly instead of paying for a
// per-element Get/Set indirection in its hot loop.
type Vector struct {
	width   Width
	bytes8  []uint8
	bytes16 []uint16
	bytes32 []uint32
}

// New allocates a Vector of the given width with size entries, all zeroed.
func New(width Width, size int) *Vector {
	v := &Vector{width: width}
	switch width {
	case Width1:
		v.bytes8 = make([]uint8, size)
	case Width2:
		v.bytes16 = make([]uint16, size)
	case Width4:
		v.bytes32 = make([]uint32, size)
	}
	return v
}

func (v *Vector) Width() Width { return v.width }

func (v *Vector) Size() int {
	switch v.width {
	case Width1:
		return len(v.bytes8)
	case Width2:
		return len(v.bytes16)
	default:
		return len(v.bytes32)
	}
}

// Get returns the ValueID stored at position i.
func (v *Vector) Get(i int) (ValueID, error) {
	if i < 0 || i >= v.Size() {
		return 0, colerrors.NewRange("value_id_vector_index", i, v.Size())
	}
	switch v.width {
	case Width1:
		return ValueID(v.bytes8[i]), nil
	case Width2:
		return ValueID(v.bytes16[i]), nil
	default:
		return ValueID(v.bytes32[i]), nil
	}
}

// Set stores id at position i, failing if i is out of range.
func (v *Vector) Set(i int, id ValueID) error {
	if i < 0 || i >= v.Size() {
		return colerrors.NewRange("value_id_vector_index", i, v.Size())
	}
	switch v.width {
	case Width1:
		v.bytes8[i] = uint8(id)
	case Width2:
		v.bytes16[i] = uint16(id)
	default:
		v.bytes32[i] = uint32(id)
	}
	return nil
}

// Bytes8 returns the raw backing slice for a width-1 vector, or nil if the
// vector is not width 1. Used by the scan kernel to iterate the vector
// directly without going through Get.
func (v *Vector) Bytes8() []uint8 { return v.bytes8 }

// Bytes16 returns the raw backing slice for a width-2 vector, or nil
// otherwise.
func (v *Vector) Bytes16() []uint16 { return v.bytes16 }

// Bytes32 returns the raw backing slice for a width-4 vector, or nil
// otherwise.
func (v *Vector) Bytes32() []uint32 { return v.bytes32 }
