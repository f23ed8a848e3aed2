package listbox

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"testing"
)

// churn applies random operations to a list box with header separators and
// checks visible traversal and separators after every step.
type churn struct {
	t      *testing.T
	rng    *rand.Rand
	f      *fixture
	rows   []*testRow
	groups map[Element]string
	next   int
}

func newChurn(t *testing.T, seed uint64) *churn {
	c := &churn{
		t:      t,
		rng:    rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		f:      newFixture(t),
		groups: make(map[Element]string),
	}
	c.f.lb.SetSeparatorFunc(HeaderSeparators(groupOf, func(group string) Element {
		sep := newSeparator()
		c.groups[sep] = group
		return sep
	}))
	return c
}

func (c *churn) label() string {
	c.next++
	return fmt.Sprintf("%c%d", 'a'+rune(c.rng.IntN(4)), c.next)
}

func (c *churn) pick() *testRow {
	if len(c.rows) == 0 {
		return nil
	}
	return c.rows[c.rng.IntN(len(c.rows))]
}

func (c *churn) step() string {
	lb := c.f.lb
	switch c.rng.IntN(9) {
	case 0, 1:
		row := newRow(c.label())
		c.rows = append(c.rows, row)
		lb.Add(row)
		return "add " + row.label
	case 2:
		row := c.pick()
		if row == nil {
			return "remove none"
		}
		c.rows = slices.DeleteFunc(c.rows, func(r *testRow) bool { return r == row })
		lb.Remove(row)
		return "remove " + row.label
	case 3:
		if c.rng.IntN(2) == 0 {
			lb.SetSortFunc(nil)
			return "unsort"
		}
		lb.SetSortFunc(byLabel)
		return "sort"
	case 4:
		if c.rng.IntN(3) == 0 {
			lb.SetFilterFunc(nil)
			return "unfilter"
		}
		hidden := string('a' + rune(c.rng.IntN(4)))
		lb.SetFilterFunc(func(e Element) bool { return groupOf(e) != hidden })
		return "filter out " + hidden
	case 5:
		row := c.pick()
		if row == nil {
			return "toggle none"
		}
		if row.Visible() {
			row.Hide()
			return "hide " + row.label
		}
		row.Show()
		return "show " + row.label
	case 6, 7:
		row := c.pick()
		if row == nil {
			return "change none"
		}
		old := row.label
		row.label = c.label()
		lb.ChildChanged(row)
		return "change " + old + " to " + row.label
	default:
		if lb.Visible() {
			lb.Hide()
			return "hide list"
		}
		lb.Show()
		return "show list"
	}
}

func (c *churn) check(seed uint64, n int, op string) {
	c.t.Helper()
	lb := c.f.lb
	fail := func(format string, args ...any) {
		c.t.Helper()
		c.t.Fatalf("seed %d step %d (%s): %s", seed, n, op, fmt.Sprintf(format, args...))
	}

	var displayed []Element
	for _, e := range lb.Children() {
		if isDisplayed(e) {
			displayed = append(displayed, e)
		}
	}

	var forward []Element
	for e := lb.FirstVisible(); e != nil; e = lb.NextVisible(e) {
		forward = append(forward, e)
	}
	if !slices.Equal(forward, displayed) {
		fail("forward = %s, want %s", labels(forward), labels(displayed))
	}

	var backward []Element
	for e := lb.LastVisible(); e != nil; e = lb.PreviousVisible(e) {
		backward = append(backward, e)
	}
	slices.Reverse(backward)
	if !slices.Equal(backward, displayed) {
		fail("backward = %s, want %s", labels(backward), labels(displayed))
	}

	if lb.sortFunc != nil {
		if !slices.IsSortedFunc(lb.Children(), byLabel) {
			fail("rows out of order: %s", labels(lb.Children()))
		}
	}

	if !lb.Visible() {
		return
	}
	for i, e := range displayed {
		sep := lb.Separator(e)
		want := i == 0 || groupOf(displayed[i-1]) != groupOf(e)
		if (sep != nil) != want {
			fail("row %s has separator = %v, want %v", labelOf(e), sep != nil, want)
		}
		if sep == nil {
			continue
		}
		if c.groups[sep] != groupOf(e) {
			fail("row %s has the header of group %q", labelOf(e), c.groups[sep])
		}
		if sep.Parent() != lb || isDestroyed(sep) {
			fail("row %s has a detached header", labelOf(e))
		}
	}
	for _, e := range lb.Children() {
		if !isDisplayed(e) && lb.Separator(e) != nil {
			fail("undisplayed row %s has a separator", labelOf(e))
		}
	}
}

func TestRandomOperationsKeepTraversalAndSeparators(t *testing.T) {
	for seed := range uint64(60) {
		c := newChurn(t, seed)
		for n := range 150 {
			op := c.step()
			c.check(seed, n, op)
		}
	}
}
