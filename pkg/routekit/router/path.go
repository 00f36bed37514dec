package router

// Path is the ordered push stack of a path node.
// The last entry is the top-most pushed destination.
type Path struct {
	entries []Destination
}

func newPath() *Path {
	return &Path{
		entries: make([]Destination, 0),
	}
}

// push adds a destination to the top of the path.
func (p *Path) push(d Destination) {
	p.entries = append(p.entries, d)
}

// truncate removes up to n entries from the top and returns how many were removed.
func (p *Path) truncate(n int) int {
	if n <= 0 {
		return 0
	}
	if n > len(p.entries) {
		n = len(p.entries)
	}
	p.entries = p.entries[:len(p.entries)-n]
	return n
}

// Peek returns the top entry without removing it.
// Returns false if the path is empty.
func (p *Path) Peek() (Destination, bool) {
	if len(p.entries) == 0 {
		return Destination{}, false
	}
	return p.entries[len(p.entries)-1], true
}

// IsEmpty returns true if the path has no entries.
func (p *Path) IsEmpty() bool {
	return len(p.entries) == 0
}

// Len returns the number of entries in the path.
func (p *Path) Len() int {
	return len(p.entries)
}

// Entries returns a copy of the path, bottom first.
func (p *Path) Entries() []Destination {
	out := make([]Destination, len(p.entries))
	copy(out, p.entries)
	return out
}
