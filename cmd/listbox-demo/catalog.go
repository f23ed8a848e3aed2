package main

import (
	"cmp"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/BrandonKowalski/listbox/pkg/listbox"
)

//go:embed library.yaml
var defaultLibrary []byte

//go:embed locales/*.toml
var localeFS embed.FS

type entry struct {
	Title    string `yaml:"title"`
	Group    string `yaml:"group"`
	Favorite bool   `yaml:"favorite"`
}

// groupOrder fixes the order of the groups; unknown groups sort last.
var groupOrder = []string{"arcade", "console", "handheld"}

var groupMessages = map[string]*i18n.Message{
	"arcade":   {ID: "GroupArcade", Other: "Arcade"},
	"console":  {ID: "GroupConsole", Other: "Console"},
	"handheld": {ID: "GroupHandheld", Other: "Handheld"},
}

var (
	otherGroupMessage  = &i18n.Message{ID: "GroupOther", Other: "Other"}
	windowTitleMessage = &i18n.Message{ID: "WindowTitle", Other: "Game Library"}
	groupHeaderMessage = &i18n.Message{
		ID:    "GroupHeader",
		One:   "{{.Group}} ({{.Count}} game)",
		Other: "{{.Group}} ({{.Count}} games)",
	}
)

func parseLibrary(data []byte) ([]entry, error) {
	var entries []entry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decode library: %w", err)
	}
	for i, e := range entries {
		if strings.TrimSpace(e.Title) == "" {
			return nil, fmt.Errorf("library entry %d has no title", i)
		}
		entries[i].Group = strings.ToLower(strings.TrimSpace(e.Group))
	}
	return entries, nil
}

// loadLibrary reads a YAML library, or the built-in one when path is empty.
func loadLibrary(path string) ([]entry, error) {
	if path == "" {
		return parseLibrary(defaultLibrary)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read library: %w", err)
	}
	return parseLibrary(data)
}

// localeTag turns a --lang value or a POSIX locale such as "de_DE.UTF-8"
// into a language tag. English is the fallback.
func localeTag(raw string) language.Tag {
	raw, _, _ = strings.Cut(raw, ".")
	raw = strings.ReplaceAll(raw, "_", "-")
	if raw == "" || raw == "C" || raw == "POSIX" {
		return language.English
	}
	tag, err := language.Parse(raw)
	if err != nil {
		return language.English
	}
	return tag
}

func newLocalizer(tag language.Tag) (*i18n.Localizer, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	files, err := fs.ReadDir(localeFS, "locales")
	if err != nil {
		return nil, err
	}
	for _, f := range files {
		if _, err := bundle.LoadMessageFileFS(localeFS, path.Join("locales", f.Name())); err != nil {
			return nil, fmt.Errorf("load %s: %w", f.Name(), err)
		}
	}
	return i18n.NewLocalizer(bundle, tag.String()), nil
}

// rowFactory builds the elements of one host.
type rowFactory struct {
	row    func(e entry) listbox.Element
	header func(text string) listbox.Element
}

// catalog owns the demo rows and the policies that sort, filter and group
// them. It works with any host's elements.
type catalog struct {
	tag       language.Tag
	localizer *i18n.Localizer
	filter    listbox.FilterFunc
	entries   map[listbox.Element]entry
	library   []entry
	rows      []listbox.Element
	headers   []listbox.Element
}

func newCatalog(tag language.Tag, query string, library []entry) (*catalog, error) {
	localizer, err := newLocalizer(tag)
	if err != nil {
		return nil, err
	}
	c := &catalog{
		tag:       tag,
		localizer: localizer,
		entries:   make(map[listbox.Element]entry),
		library:   library,
	}
	c.filter = listbox.FuzzyFilter(query, c.title)
	return c, nil
}

func (c *catalog) localize(cfg *i18n.LocalizeConfig) string {
	s, err := c.localizer.Localize(cfg)
	if err != nil {
		listbox.GetLogger().Warn("Missing translation",
			"message", cfg.DefaultMessage.ID,
			"lang", c.tag.String(),
			"error", err)
		return cfg.DefaultMessage.Other
	}
	return s
}

func (c *catalog) windowTitle() string {
	return c.localize(&i18n.LocalizeConfig{DefaultMessage: windowTitleMessage})
}

func (c *catalog) groupName(group string) string {
	msg, ok := groupMessages[group]
	if !ok {
		msg = otherGroupMessage
	}
	return c.localize(&i18n.LocalizeConfig{DefaultMessage: msg})
}

func (c *catalog) headerText(group string) string {
	count := 0
	for row, e := range c.entries {
		if e.Group == group && c.filter(row) {
			count++
		}
	}
	return c.localize(&i18n.LocalizeConfig{
		DefaultMessage: groupHeaderMessage,
		PluralCount:    count,
		TemplateData: map[string]any{
			"Group": c.groupName(group),
			"Count": count,
		},
	})
}

func (c *catalog) title(e listbox.Element) string { return c.entries[e].Title }

func (c *catalog) group(e listbox.Element) string { return c.entries[e].Group }

func groupRank(group string) int {
	if i := slices.Index(groupOrder, group); i >= 0 {
		return i
	}
	return len(groupOrder)
}

// sortFunc orders by group, then by title in the catalog's language.
func (c *catalog) sortFunc() listbox.SortFunc {
	byTitle := listbox.CollatedSort(c.tag, c.title)
	return func(a, b listbox.Element) int {
		if r := cmp.Compare(groupRank(c.group(a)), groupRank(c.group(b))); r != 0 {
			return r
		}
		return byTitle(a, b)
	}
}

// populate adds one row per entry to box and installs the policies. Headers
// count the matching rows of their group, so they are made once every row
// is in place.
func (c *catalog) populate(box *listbox.ListBox, rows rowFactory) {
	box.SetSortFunc(c.sortFunc())
	box.SetFilterFunc(c.filter)

	for _, e := range c.library {
		row := rows.row(e)
		c.entries[row] = e
		c.rows = append(c.rows, row)
		box.Add(row)
	}

	box.SetSeparatorFunc(listbox.HeaderSeparators(c.group, func(group string) listbox.Element {
		header := rows.header(c.headerText(group))
		c.headers = append(slices.DeleteFunc(c.headers, c.dropDetached), header)
		return header
	}))

	box.ChildActivated.Connect(func(row listbox.Element) {
		e := c.entries[row]
		listbox.GetLogger().Info("Game launched", "title", e.Title, "group", e.Group)
	})
	box.ChildSelected.Connect(func(row listbox.Element) {
		if row == nil {
			listbox.GetLogger().Debug("Selection cleared")
			return
		}
		listbox.GetLogger().Debug("Game selected", "title", c.title(row))
	})
}

// destroyed reports whether the list box already destroyed a header.
func destroyed(e listbox.Element) bool {
	d, ok := e.(interface{ Destroyed() bool })
	return ok && d.Destroyed()
}

// dropDetached destroys a header the list box no longer shows and reports
// whether it can be forgotten. Cleared headers are detached but left alive.
func (c *catalog) dropDetached(header listbox.Element) bool {
	if header.Parent() != nil {
		return false
	}
	if !destroyed(header) {
		header.Destroy()
	}
	return true
}

// release destroys every row and header the catalog made. The list box
// must be destroyed first.
func (c *catalog) release() {
	for _, e := range c.rows {
		e.Destroy()
	}
	for _, e := range c.headers {
		if !destroyed(e) {
			e.Destroy()
		}
	}
	c.rows, c.headers = nil, nil
}
