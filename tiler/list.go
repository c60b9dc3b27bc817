package tiler

// List is an ordered collection of reserved area handles. The reservation
// core stages freshly laid areas in a temporary List and either merges it
// into a group's permanent List or releases it whole, so a commit is never
// partial.
type List struct {
	areas []Area
}

// Add appends one area handle.
func (l *List) Add(a Area) {
	l.areas = append(l.areas, a)
}

// Append moves every area from other to the end of l, leaving other empty.
func (l *List) Append(other *List) {
	l.areas = append(l.areas, other.areas...)
	other.areas = nil
}

// Take returns all held areas and empties the list.
func (l *List) Take() []Area {
	a := l.areas
	l.areas = nil
	return a
}

// Areas returns the held areas without draining the list. The returned slice
// is the list's backing store and must not be retained across mutations.
func (l *List) Areas() []Area {
	return l.areas
}

// Len returns the number of held areas.
func (l *List) Len() int {
	return len(l.areas)
}

// Empty reports whether the list holds no areas.
func (l *List) Empty() bool {
	return len(l.areas) == 0
}
