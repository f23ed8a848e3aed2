package listbox

import "testing"

func TestAllocateStacksRowsWithoutGaps(t *testing.T) {
	f := newFixture(t)
	rows := f.addRows("a1", "a2", "b1", "b2")
	rows[1].height = 40
	f.lb.SetSeparatorFunc(HeaderSeparators(groupOf, func(string) Element { return newSeparator() }))
	f.lb.SetFilterFunc(func(e Element) bool { return labelOf(e) != "b2" })

	f.lb.SizeAllocate(300, 400)

	p := f.lb.rowPadding()
	y := int32(0)
	for _, row := range rows {
		bounds, ok := f.lb.RowBounds(row)
		if !ok {
			t.Fatalf("no bounds for %s", row.label)
		}
		if !isDisplayed(row) {
			if bounds.H != 0 || bounds.Y != y {
				t.Errorf("%s: hidden row bounds = %+v, want zero height at %d", row.label, bounds, y)
			}
			continue
		}

		if sep := f.lb.Separator(row); sep != nil {
			sa := sep.Allocation()
			if sa.Y != y || sa.X != 0 || sa.W != 300 {
				t.Errorf("%s: separator allocation = %+v", row.label, sa)
			}
			y += sa.H
		}

		if bounds.Y != y {
			t.Errorf("%s: y = %d, want %d", row.label, bounds.Y, y)
		}
		if want := row.height + 2*p; bounds.H != want {
			t.Errorf("%s: height = %d, want %d", row.label, bounds.H, want)
		}

		a := row.Allocation()
		if a.X != p || a.Y != y+p || a.W != 300-2*p || a.H != row.height {
			t.Errorf("%s: child allocation = %+v", row.label, a)
		}
		y += bounds.H
	}

	minimum, natural := f.lb.PreferredHeightForWidth(300)
	if minimum != y || natural != y {
		t.Fatalf("preferred height = (%d, %d), want %d", minimum, natural, y)
	}
}

func TestPreferredWidthAddsFocusPadding(t *testing.T) {
	f := newFixture(t)
	rows := f.addRows("A", "B")
	rows[1].width = 160

	minimum, natural := f.lb.PreferredWidth()

	p := f.lb.rowPadding()
	if minimum != 80+2*p || natural != 160+2*p {
		t.Fatalf("preferred width = (%d, %d), want (%d, %d)", minimum, natural, 80+2*p, 160+2*p)
	}
}

func TestPreferredSizesIgnoreHiddenRows(t *testing.T) {
	f := newFixture(t)
	rows := f.addRows("A", "B")
	rows[1].width = 500
	rows[1].Hide()

	_, natural := f.lb.PreferredWidth()
	if natural != 100+2*f.lb.rowPadding() {
		t.Fatalf("natural width = %d, hidden row counted", natural)
	}

	_, height := f.lb.PreferredHeight()
	if height != 20+2*f.lb.rowPadding() {
		t.Fatalf("natural height = %d, want one row", height)
	}
}

func TestChildAtY(t *testing.T) {
	f := newFixture(t)
	rows := f.addRows("A", "B", "C")
	f.lb.SizeAllocate(200, 200)

	cases := []struct {
		y    int32
		want Element
	}{
		{0, rows[0]},
		{23, rows[0]},
		{24, rows[1]},
		{71, rows[2]},
		{72, nil},
		{-1, nil},
	}
	for _, tc := range cases {
		if got := f.lb.ChildAtY(tc.y); got != tc.want {
			t.Errorf("ChildAtY(%d) = %s, want %s", tc.y, labelOf(got), labelOf(tc.want))
		}
	}
}

func TestRequestModeIsHeightForWidth(t *testing.T) {
	f := newFixture(t)
	if f.lb.RequestMode() != HeightForWidth {
		t.Fatal("list box should trade height for width")
	}
}
