package ids

import (
	"iter"
	"slices"
	"strconv"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
)

// ID is an opaque key addressing one element of a relation.
type ID uint64

// String returns the decimal form of the identifier.
func (id ID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// IDs is a read-only collection of identifiers.
type IDs interface {
	// Len returns the number of identifiers.
	Len() int
	// IsEmpty reports whether the collection holds no identifiers.
	IsEmpty() bool
	// Contains reports whether id is a member.
	Contains(id ID) bool
	// All yields the identifiers. Each call starts a new pass.
	All() iter.Seq[ID]
}

// ArrayIDs is an insertion ordered identifier list.
type ArrayIDs struct {
	ids []ID
}

// NewArray creates an ArrayIDs holding the given identifiers in order.
func NewArray(ids ...ID) *ArrayIDs {
	return &ArrayIDs{ids: slices.Clone(ids)}
}

// NewArrayWithCapacity creates an empty ArrayIDs with room for n identifiers.
func NewArrayWithCapacity(n int) *ArrayIDs {
	return &ArrayIDs{ids: make([]ID, 0, n)}
}

// Add appends id.
func (a *ArrayIDs) Add(id ID) {
	a.ids = append(a.ids, id)
}

// Get returns the identifier at position i.
func (a *ArrayIDs) Get(i int) ID {
	return a.ids[i]
}

// Len implements IDs.
func (a *ArrayIDs) Len() int { return len(a.ids) }

// IsEmpty implements IDs.
func (a *ArrayIDs) IsEmpty() bool { return len(a.ids) == 0 }

// Contains implements IDs. It is a linear scan.
func (a *ArrayIDs) Contains(id ID) bool {
	return slices.Contains(a.ids, id)
}

// All implements IDs.
func (a *ArrayIDs) All() iter.Seq[ID] {
	return slices.Values(a.ids)
}

// Slice returns a copy of the identifiers.
func (a *ArrayIDs) Slice() []ID {
	return slices.Clone(a.ids)
}

// BitmapIDs is an identifier set backed by a roaring bitmap.
type BitmapIDs struct {
	bm *roaring64.Bitmap
}

// NewBitmap creates a BitmapIDs holding the given identifiers.
func NewBitmap(ids ...ID) *BitmapIDs {
	bm := roaring64.New()
	for _, id := range ids {
		bm.Add(uint64(id))
	}
	return &BitmapIDs{bm: bm}
}

// FromRoaring wraps an existing bitmap without copying it.
func FromRoaring(bm *roaring64.Bitmap) *BitmapIDs {
	if bm == nil {
		bm = roaring64.New()
	}
	return &BitmapIDs{bm: bm}
}

// Add inserts id. Returns false if it was already present.
func (b *BitmapIDs) Add(id ID) bool {
	return b.bm.CheckedAdd(uint64(id))
}

// Len implements IDs.
func (b *BitmapIDs) Len() int { return int(b.bm.GetCardinality()) }

// IsEmpty implements IDs.
func (b *BitmapIDs) IsEmpty() bool { return b.bm.IsEmpty() }

// Contains implements IDs.
func (b *BitmapIDs) Contains(id ID) bool {
	return b.bm.Contains(uint64(id))
}

// All implements IDs. Identifiers are yielded in ascending order.
func (b *BitmapIDs) All() iter.Seq[ID] {
	return func(yield func(ID) bool) {
		it := b.bm.Iterator()
		for it.HasNext() {
			if !yield(ID(it.Next())) {
				return
			}
		}
	}
}

// Bitmap returns the underlying bitmap.
func (b *BitmapIDs) Bitmap() *roaring64.Bitmap {
	return b.bm
}

// Collect copies ids into an ArrayIDs in iteration order.
func Collect(ids IDs) *ArrayIDs {
	out := NewArrayWithCapacity(ids.Len())
	for id := range ids.All() {
		out.Add(id)
	}
	return out
}
