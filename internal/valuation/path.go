package valuation

// pathSet holds the recipe names currently being resolved on one branch of the
// dependency walk. It is never mutated once created: with returns a new set, so
// sibling branches only ever see their shared ancestors.
type pathSet map[string]struct{}

func (p pathSet) contains(name string) bool {
	_, ok := p[name]
	return ok
}

func (p pathSet) with(name string) pathSet {
	next := make(pathSet, len(p)+1)
	for k := range p {
		next[k] = struct{}{}
	}
	next[name] = struct{}{}
	return next
}
