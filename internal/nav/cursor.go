package nav

import "fmt"

// Cursor is an optional index into a list whose length is only known when
// the cursor is used. The zero value selects nothing.
//
// Every operation takes the current list length, so a cursor that was valid
// for a longer list is pulled back into range the next time it moves.
type Cursor struct {
	index int
	set   bool
}

// None returns a cursor with nothing selected.
func None() Cursor {
	return Cursor{}
}

// At returns a cursor selecting index i. Negative indices select 0.
func At(i int) Cursor {
	if i < 0 {
		i = 0
	}
	return Cursor{index: i, set: true}
}

// Index returns the selected index and whether anything is selected.
func (c Cursor) Index() (int, bool) {
	return c.index, c.set
}

// IsSet reports whether the cursor selects an index.
func (c Cursor) IsSet() bool {
	return c.set
}

// AtStart reports whether the cursor is at rest: nothing selected or index 0.
func (c Cursor) AtStart() bool {
	return !c.set || c.index == 0
}

// Advance moves one item forward, clamping at the last item of a list of
// length n. An empty cursor selects the first item when the list is not empty.
func (c Cursor) Advance(n int) Cursor {
	if !c.set {
		if n > 0 {
			return At(0)
		}
		return None()
	}
	return At(min(c.index+1, max(n-1, 0)))
}

// Retreat moves one item back. The boolean is true when the cursor was
// already on the first item; the cursor then stays on it and the caller
// decides whether that means leaving the current level.
func (c Cursor) Retreat(n int) (Cursor, bool) {
	if !c.set {
		if n > 0 {
			return At(0), false
		}
		return None(), false
	}
	if c.index == 0 {
		return c, true
	}
	return At(min(c.index-1, max(n, 1)-1)), false
}

// Clear deselects.
func (c Cursor) Clear() Cursor {
	return None()
}

// String implements fmt.Stringer
func (c Cursor) String() string {
	if !c.set {
		return "None"
	}
	return fmt.Sprintf("Some(%d)", c.index)
}
