package sqlgram

// NonEmptyList is an ordered collection with at least one element. Grammar
// productions requiring "one or more" items take a NonEmptyList so that
// empty-list bugs surface at construction, not at render time.
//
// The zero value violates the invariant; always build through NonEmpty or
// NewNonEmptyList.
type NonEmptyList[T any] struct {
	items []T
}

// NonEmpty builds a list from a statically non-empty literal. It cannot
// fail: the first element is required by the signature.
func NonEmpty[T any](first T, rest ...T) NonEmptyList[T] {
	items := make([]T, 0, 1+len(rest))
	items = append(items, first)
	items = append(items, rest...)
	return NonEmptyList[T]{items: items}
}

// NewNonEmptyList builds a list from a runtime slice, returning
// ErrEmptyList when the slice is empty. Element order is preserved and
// the input is copied.
func NewNonEmptyList[T any](items []T) (NonEmptyList[T], error) {
	if len(items) == 0 {
		return NonEmptyList[T]{}, ErrEmptyList
	}
	copied := make([]T, len(items))
	copy(copied, items)
	return NonEmptyList[T]{items: copied}, nil
}

// Len returns the number of elements; always >= 1 for a constructed list.
func (l NonEmptyList[T]) Len() int { return len(l.items) }

// First returns the first element.
func (l NonEmptyList[T]) First() T { return l.items[0] }

// Last returns the last element.
func (l NonEmptyList[T]) Last() T { return l.items[len(l.items)-1] }

// At returns the element at index i.
func (l NonEmptyList[T]) At(i int) T { return l.items[i] }

// Items returns a copy of the elements in order.
func (l NonEmptyList[T]) Items() []T {
	copied := make([]T, len(l.items))
	copy(copied, l.items)
	return copied
}

// Append returns a new list with the given elements added; the receiver
// is unchanged.
func (l NonEmptyList[T]) Append(items ...T) NonEmptyList[T] {
	combined := make([]T, 0, len(l.items)+len(items))
	combined = append(combined, l.items...)
	combined = append(combined, items...)
	return NonEmptyList[T]{items: combined}
}

// MapNonEmpty transforms every element in order. The result has the same
// length as the input, so the invariant carries over.
func MapNonEmpty[T, U any](l NonEmptyList[T], f func(T) U) NonEmptyList[U] {
	items := make([]U, len(l.items))
	for i, item := range l.items {
		items[i] = f(item)
	}
	return NonEmptyList[U]{items: items}
}
