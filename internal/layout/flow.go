package layout

// flowResult holds the outcome of one flow pass.
type flowResult struct {
	bounds    []Rect
	preferred Size
}

// Flow places children in a flow starting at the top-left of remainder and
// returns their bounds and the content size they need. Children are placed
// regardless of their dock style; callers pass the undocked ones.
func Flow(remainder Rect, children []Layoutable, style Style, opts ...Option) (bounds []Rect, preferred Size) {
	r := newCalculator(opts).flow(remainder.Location(), remainder.normalized().Size(), children, style)
	return r.bounds, r.preferred
}

// flow lays children along the main axis. With WrapContents, a child whose
// box would cross avail on the main axis starts a new line, unless it is the
// first on its line. Lines advance by the largest cross-axis box they hold.
func (c *calculator) flow(origin Point, avail Size, children []Layoutable, style Style) flowResult {
	isRow := style.FlowDirection == FlowLeftToRight

	mainAvail := avail.Width
	if !isRow {
		mainAvail = avail.Height
	}

	res := flowResult{bounds: make([]Rect, len(children))}
	var mainPos, crossPos, lineCross, maxMain, maxCross int

	for i, child := range children {
		cs := c.styleOf(child)

		// Children are offered the line length, never the line's cross size
		proposed := Size{Width: Unbounded, Height: Unbounded}
		if isRow {
			proposed.Width = shrink(avail.Width, cs.Margin.Horizontal())
		} else {
			proposed.Height = shrink(avail.Height, cs.Margin.Vertical())
		}
		box := c.sizeFor(child, cs, proposed).Add(cs.Margin)

		boxMain, boxCross := box.Width, box.Height
		if !isRow {
			boxMain, boxCross = boxCross, boxMain
		}

		if style.WrapContents && mainPos > 0 && mainPos+boxMain > mainAvail {
			crossPos += lineCross
			mainPos = 0
			lineCross = 0
		}

		x, y := mainPos, crossPos
		if !isRow {
			x, y = y, x
		}
		slot := RectAt(origin.Add(Point{X: x, Y: y}), box)
		res.bounds[i] = slot.Inset(cs.Margin)

		mainPos += boxMain
		lineCross = max(lineCross, boxCross)
		maxMain = max(maxMain, mainPos)
		maxCross = max(maxCross, crossPos+lineCross)
	}

	if isRow {
		res.preferred = Size{Width: maxMain, Height: maxCross}
	} else {
		res.preferred = Size{Width: maxCross, Height: maxMain}
	}
	return res
}
