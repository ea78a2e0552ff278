package periodic

// Dimensions of the grid layouts.
const (
	Periods = 7
	Groups  = 18
	Columns = 32
)

// Layout is a 32-column periodic table. Empty cells hold the zero Element.
type Layout [][Columns]Element

// Left-step rows end on these atomic numbers. The last row is padded as if
// it ended at element 120.
var leftStepRowEnds = [...]int{2, 4, 12, 20, 38, 56, 88, 120}

var (
	standardLayout = buildStandard()
	leftStepLayout = buildLeftStep()
)

// StandardTable returns the long-form table: one row per period with the
// f-block inlined between groups 2 and 3.
func StandardTable() Layout {
	return clone(standardLayout)
}

// LeftStepTable returns Janet's left-step table: rows are filled by the
// n+l rule with the s-block on the right.
func LeftStepTable() Layout {
	return clone(leftStepLayout)
}

// Position returns the row and column of e in the layout.
func (l Layout) Position(e Element) (row, col int, ok bool) {
	for r := range l {
		for c, cell := range l[r] {
			if cell == e && e.Valid() {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}

func buildStandard() Layout {
	l := make(Layout, Periods)
	for _, e := range Elements() {
		l[e.Period()-1][standardColumn(e)] = e
	}
	return l
}

func standardColumn(e Element) int {
	switch {
	case e >= La && e < Lu:
		return 2 + int(e-La)
	case e >= Ac && e < Lr:
		return 2 + int(e-Ac)
	case e.Group() <= 2:
		return e.Group() - 1
	default:
		return e.Group() + Columns - Groups - 1
	}
}

func buildLeftStep() Layout {
	l := make(Layout, len(leftStepRowEnds))
	row := 0
	for _, e := range Elements() {
		for e.Number() > leftStepRowEnds[row] {
			row++
		}
		l[row][Columns-1-(leftStepRowEnds[row]-e.Number())] = e
	}
	return l
}

func clone(l Layout) Layout {
	out := make(Layout, len(l))
	copy(out, l)
	return out
}
