package sqlgram

import "fmt"

// JoinedSequence composes an ordered list of child fragments with an
// optional separator emitted strictly between adjacent children: exactly
// len(children)-1 times, never at the boundaries, never at all for zero
// or one child. An empty sequence is valid and renders nothing.
type JoinedSequence struct {
	children  []Fragment
	separator Fragment // nil when no separator
}

// Join composes children in order with no separator.
func Join(children ...Fragment) JoinedSequence {
	return JoinSeparated(nil, children...)
}

// JoinSeparated composes children in order, emitting separator between
// each adjacent pair. A nil child is a programming error; use Compacting
// for lists with optional members.
func JoinSeparated(separator Fragment, children ...Fragment) JoinedSequence {
	kids := make([]Fragment, len(children))
	for i, child := range children {
		if child == nil {
			panic(fmt.Errorf("child %d is nil; use Compacting to drop absent fragments", i))
		}
		kids[i] = child
	}
	return JoinedSequence{children: kids, separator: separator}
}

// Compacting composes the present (non-nil) children in order with the
// given separator, silently dropping absent entries. An absent entry
// leaves no trace: no stray separator, no empty slot. This is how
// syntactically optional clauses vanish cleanly when unset.
func Compacting(separator Fragment, children ...Fragment) JoinedSequence {
	kids := make([]Fragment, 0, len(children))
	for _, child := range children {
		if child != nil {
			kids = append(kids, child)
		}
	}
	return JoinedSequence{children: kids, separator: separator}
}

// CompactingRequired is Compacting for grammar positions that require at
// least one present member. It returns ErrEmptyList when every entry is
// absent, so the caller can omit the clause or report an invalid
// statement instead of rendering a hole.
func CompactingRequired(separator Fragment, children ...Fragment) (JoinedSequence, error) {
	seq := Compacting(separator, children...)
	if len(seq.children) == 0 {
		return JoinedSequence{}, fmt.Errorf("all fragments are absent: %w", ErrEmptyList)
	}
	return seq, nil
}

// JoinNonEmpty composes the elements of a NonEmptyList with the given
// separator. The list's invariant guarantees the result is non-empty.
func JoinNonEmpty[T Fragment](separator Fragment, list NonEmptyList[T]) JoinedSequence {
	kids := make([]Fragment, list.Len())
	for i, item := range list.items {
		kids[i] = item
	}
	return JoinedSequence{children: kids, separator: separator}
}

// Len returns the number of children.
func (s JoinedSequence) Len() int { return len(s.children) }

// Tokens implements Fragment.
func (s JoinedSequence) Tokens() Iterator {
	return newSeqIterator(s.children, s.separator)
}

func (s JoinedSequence) parts() ([]Fragment, Fragment) {
	return s.children, s.separator
}

// composite is implemented by fragments whose token stream is itself a
// composition of child fragments. The traversal engine splices such
// fragments into its explicit frame stack instead of delegating to a
// nested iterator, so arbitrarily deep trees traverse with constant
// call-stack depth.
type composite interface {
	Fragment
	parts() (children []Fragment, separator Fragment)
}

// seqFrame is one level of the traversal state machine: which child
// starts next and whether a separator is due before it.
type seqFrame struct {
	children   []Fragment
	separator  Fragment
	next       int
	pendingSep bool
}

// seqIterator drives the composition state machine. At any moment it is
// either draining cur, a leaf iterator, or advancing the top frame to
// schedule the next child or separator. Composite children push a frame;
// everything else becomes cur via its own Tokens call.
type seqIterator struct {
	stack []seqFrame
	cur   Iterator
}

func newSeqIterator(children []Fragment, separator Fragment) *seqIterator {
	it := &seqIterator{}
	it.stack = append(it.stack, seqFrame{children: children, separator: separator})
	return it
}

// enter schedules f for traversal without growing the call stack when f
// is itself a composition.
func (it *seqIterator) enter(f Fragment) {
	if c, ok := f.(composite); ok {
		children, separator := c.parts()
		it.stack = append(it.stack, seqFrame{children: children, separator: separator})
		return
	}
	it.cur = f.Tokens()
}

func (it *seqIterator) Next() (Token, bool) {
	for {
		if it.cur != nil {
			if tok, ok := it.cur.Next(); ok {
				return tok, true
			}
			it.cur = nil
		}
		if len(it.stack) == 0 {
			return Token{}, false
		}
		top := &it.stack[len(it.stack)-1]
		switch {
		case top.pendingSep:
			top.pendingSep = false
			it.enter(top.separator)
		case top.next < len(top.children):
			child := top.children[top.next]
			top.next++
			// Schedule a separator only when another child follows, so it
			// can never trail the last child.
			if top.separator != nil && top.next < len(top.children) {
				top.pendingSep = true
			}
			it.enter(child)
		default:
			it.stack = it.stack[:len(it.stack)-1]
		}
	}
}
