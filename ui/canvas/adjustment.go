package canvas

import "math"

// Adjustment is one scroll axis: a value inside [lower, upper-pageSize].
type Adjustment struct {
	lower, upper, page, value float64
}

func (a *Adjustment) Lower() float64    { return a.lower }
func (a *Adjustment) Upper() float64    { return a.upper }
func (a *Adjustment) PageSize() float64 { return a.page }
func (a *Adjustment) Value() float64    { return a.value }

// SetValue stores v clamped to the scrollable range. When the page is larger
// than the content the only valid value is lower.
func (a *Adjustment) SetValue(v float64) {
	hi := max(a.lower, a.upper-a.page)
	switch {
	case v < a.lower || math.IsNaN(v):
		v = a.lower
	case v > hi:
		v = hi
	}
	a.value = v
}

func (a *Adjustment) configure(upper, page float64) {
	a.upper, a.page = upper, page
	a.SetValue(a.value)
}
