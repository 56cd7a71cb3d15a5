package game

// Cycler walks player identifiers round-robin in join order.
type Cycler struct {
	elements []PlayerID
	current  int
}

func NewCycler(elements []PlayerID) *Cycler {
	return &Cycler{
		elements: elements,
		current:  0,
	}
}

func (c *Cycler) Current() PlayerID {
	return c.elements[c.current]
}

func (c *Cycler) Next() PlayerID {
	c.current = (c.current + 1) % len(c.elements)
	return c.elements[c.current]
}
