package listbox

// Adjustment models a scroll range. Value is the top of the visible page and
// is kept within [Lower, Upper-PageSize].
type Adjustment struct {
	value         float64
	lower         float64
	upper         float64
	stepIncrement float64
	pageIncrement float64
	pageSize      float64

	// ValueChanged fires with the new value whenever Value changes.
	ValueChanged Signal[float64]
}

func NewAdjustment(value, lower, upper, stepIncrement, pageIncrement, pageSize float64) *Adjustment {
	a := &Adjustment{}
	a.Configure(value, lower, upper, stepIncrement, pageIncrement, pageSize)
	return a
}

// Configure replaces every field at once. Value is clamped to the new range.
func (a *Adjustment) Configure(value, lower, upper, stepIncrement, pageIncrement, pageSize float64) {
	a.lower = lower
	a.upper = upper
	a.stepIncrement = stepIncrement
	a.pageIncrement = pageIncrement
	a.pageSize = pageSize
	a.SetValue(value)
}

func (a *Adjustment) Value() float64         { return a.value }
func (a *Adjustment) Lower() float64         { return a.lower }
func (a *Adjustment) Upper() float64         { return a.upper }
func (a *Adjustment) StepIncrement() float64 { return a.stepIncrement }
func (a *Adjustment) PageIncrement() float64 { return a.pageIncrement }
func (a *Adjustment) PageSize() float64      { return a.pageSize }

func (a *Adjustment) SetValue(value float64) {
	value = min(value, a.upper-a.pageSize)
	value = max(value, a.lower)
	if value == a.value {
		return
	}
	a.value = value
	a.ValueChanged.emit(value)
}

// ClampPage scrolls the minimum amount needed to show [lower, upper].
// When the range is taller than the page its top edge wins.
func (a *Adjustment) ClampPage(lower, upper float64) {
	lower = max(lower, a.lower)
	upper = min(upper, a.upper)

	value := a.value
	if value+a.pageSize < upper {
		value = upper - a.pageSize
	}
	if value > lower {
		value = lower
	}
	a.SetValue(value)
}
