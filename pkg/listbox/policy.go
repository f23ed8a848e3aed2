package listbox

import (
	"strings"
	"sync"

	"github.com/junegunn/fzf/src/algo"
	"github.com/junegunn/fzf/src/util"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/BrandonKowalski/listbox/pkg/listbox/constants"
)

// PolicyOption configures a sort, filter or separator func when it is
// installed.
type PolicyOption func(*policyConfig)

type policyConfig struct {
	release func()
}

// OnRelease registers fn to run when the func it was installed with is
// replaced or the list box is destroyed.
func OnRelease(fn func()) PolicyOption {
	return func(c *policyConfig) {
		c.release = fn
	}
}

func releaseHook(opts []PolicyOption) func() {
	var cfg policyConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg.release
}

func runRelease(release *func()) {
	if *release == nil {
		return
	}
	fn := *release
	*release = nil
	fn()
}

// CollatedSort orders rows by the text textOf returns, using the collation
// rules of tag. Case, accents and width are ignored.
func CollatedSort(tag language.Tag, textOf func(Element) string) SortFunc {
	c := collate.New(tag, collate.Loose)
	return func(a, b Element) int {
		return c.CompareString(textOf(a), textOf(b))
	}
}

var fzfInit sync.Once

// FuzzyFilter shows rows whose text fuzzy-matches query, case-insensitively.
// An empty query shows every row.
func FuzzyFilter(query string, textOf func(Element) string) FilterFunc {
	pattern := []rune(strings.ToLower(strings.TrimSpace(query)))
	if len(pattern) == 0 {
		return func(Element) bool { return true }
	}

	fzfInit.Do(func() { algo.Init("default") })
	slab := util.MakeSlab(100*1024, 2048)

	return func(e Element) bool {
		chars := util.ToChars([]byte(textOf(e)))
		result, _ := algo.FuzzyMatchV2(false, true, true, &chars, pattern, false, slab)
		return result.Start >= 0
	}
}

// HeaderSeparators puts a header above the first row of every group.
// makeHeader is only called when a group starts somewhere new; headers it
// made earlier are kept while they still head the same group. Headers
// should embed Base so the ones the list box destroys can be forgotten.
func HeaderSeparators(groupOf func(Element) string, makeHeader func(group string) Element) SeparatorFunc {
	return newHeaderTracker(groupOf, makeHeader).separate
}

type destroyable interface {
	Destroyed() bool
}

func isDestroyed(e Element) bool {
	d, ok := e.(destroyable)
	return ok && d.Destroyed()
}

// headerTracker remembers the group of every header it made.
type headerTracker struct {
	groupOf    func(Element) string
	makeHeader func(group string) Element
	made       map[Element]string
	// sweepAt is the size of made that triggers the next sweep.
	sweepAt int
}

func newHeaderTracker(groupOf func(Element) string, makeHeader func(group string) Element) *headerTracker {
	return &headerTracker{
		groupOf:    groupOf,
		makeHeader: makeHeader,
		made:       make(map[Element]string),
		sweepAt:    constants.HeaderSweepThreshold,
	}
}

func (t *headerTracker) separate(current, child, before Element) SeparatorAction {
	group := t.groupOf(child)
	if before != nil && t.groupOf(before) == group {
		if current != nil {
			delete(t.made, current)
		}
		return SeparatorClear()
	}

	if current != nil {
		if g, ok := t.made[current]; ok && g == group {
			return SeparatorKeep()
		}
		delete(t.made, current)
	}

	header := t.makeHeader(group)
	if header == nil {
		return SeparatorClear()
	}
	t.made[header] = group
	if len(t.made) >= t.sweepAt {
		t.sweep()
	}
	return SeparatorReplace(header)
}

// sweep forgets headers that were destroyed without being seen again, such
// as the header of a row that got filtered out or removed.
func (t *headerTracker) sweep() {
	for header := range t.made {
		if isDestroyed(header) {
			delete(t.made, header)
		}
	}
	t.sweepAt = max(constants.HeaderSweepThreshold, 2*len(t.made))
}
