package listbox_test

import (
	"fmt"
	"strings"

	"github.com/BrandonKowalski/listbox/pkg/listbox"
)

// Track is a minimal row: a label with a fixed height.
type Track struct {
	listbox.Base
	Album string
	Title string
}

func NewTrack(album, title string) *Track {
	t := &Track{Album: album, Title: title}
	t.Show()
	return t
}

func (t *Track) PreferredWidth() (int32, int32) { return 80, 120 }

func (t *Track) PreferredHeightForWidth(int32) (int32, int32) { return 18, 18 }

// Header labels the first track of an album.
type Header struct {
	listbox.Base
	Album string
}

func (h *Header) PreferredWidth() (int32, int32) { return 40, 40 }

func (h *Header) PreferredHeightForWidth(int32) (int32, int32) { return 10, 10 }

func title(e listbox.Element) string { return e.(*Track).Title }

// Example builds a sorted, grouped list and drives it with keys.
func Example() {
	lb := listbox.New(listbox.Options{})

	lb.SetSortFunc(func(a, b listbox.Element) int {
		ta, tb := a.(*Track), b.(*Track)
		if c := strings.Compare(ta.Album, tb.Album); c != 0 {
			return c
		}
		return strings.Compare(ta.Title, tb.Title)
	})
	lb.SetSeparatorFunc(listbox.HeaderSeparators(
		func(e listbox.Element) string { return e.(*Track).Album },
		func(album string) listbox.Element { return &Header{Album: album} },
	))

	lb.ChildSelected.Connect(func(e listbox.Element) {
		if e == nil {
			fmt.Println("selected: none")
			return
		}
		fmt.Println("selected:", title(e))
	})
	lb.ChildActivated.Connect(func(e listbox.Element) {
		fmt.Println("activated:", title(e))
	})

	lb.Add(NewTrack("Moon", "Time"))
	lb.Add(NewTrack("Animals", "Dogs"))
	lb.Add(NewTrack("Moon", "Breathe"))
	lb.Add(NewTrack("Animals", "Sheep"))

	lb.SizeAllocate(200, 200)

	lb.ForAll(true, func(e listbox.Element) {
		switch v := e.(type) {
		case *Header:
			fmt.Println("#", v.Album)
		case *Track:
			bounds, _ := lb.RowBounds(v)
			fmt.Printf("  %s at y=%d\n", v.Title, bounds.Y)
		}
	})

	lb.HandleKey(listbox.KeyEvent{Key: listbox.KeyHome})
	lb.HandleKey(listbox.KeyEvent{Key: listbox.KeyDown})
	lb.HandleKey(listbox.KeyEvent{Key: listbox.KeyEnter})
	lb.SelectChild(nil)

	// Output:
	// # Animals
	//   Dogs at y=10
	//   Sheep at y=32
	// # Moon
	//   Breathe at y=64
	//   Time at y=86
	// selected: Dogs
	// selected: Sheep
	// activated: Sheep
	// selected: none
}

// ExampleListBox_SetFilterFunc narrows a list with a fuzzy query.
func ExampleListBox_SetFilterFunc() {
	lb := listbox.New(listbox.Options{})
	for _, name := range []string{"Breathe", "Brain Damage", "Eclipse", "Money"} {
		lb.Add(NewTrack("Moon", name))
	}

	lb.SetFilterFunc(listbox.FuzzyFilter("brn", title))

	for e := lb.FirstVisible(); e != nil; e = lb.NextVisible(e) {
		fmt.Println(title(e))
	}
	// Output:
	// Brain Damage
}
