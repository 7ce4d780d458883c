package lazy_test

// countingCollection is an instrumented int collection used to verify the
// single-pass guarantee: materializing an expression must read each
// source element exactly once per destination index.
type countingCollection struct {
	items  []int
	reads  int
	writes int
}

func newCounting(items []int) *countingCollection {
	return &countingCollection{items: items}
}

func (c *countingCollection) Len() int { return len(c.items) }

func (c *countingCollection) At(i int) int {
	c.reads++
	return c.items[i]
}

func (c *countingCollection) Set(i int, v int) {
	c.writes++
	c.items[i] = v
}
