package layout

import (
	"slices"

	"go.uber.org/zap"
)

// TableResult holds the outcome of one table pass.
type TableResult struct {
	Bounds    []Rect
	Preferred Size
	Columns   []int
	Rows      []int
}

// Table places children in the cells of a table filling remainder and
// returns their bounds, the content size, and the resolved track sizes.
func Table(remainder Rect, children []Layoutable, style Style, opts ...Option) TableResult {
	r := newCalculator(opts).table(remainder.Location(), remainder.normalized().Size(), children, style)
	return TableResult{Bounds: r.bounds, Preferred: r.preferred, Columns: r.columns, Rows: r.rows}
}

// tableResult is the internal form of TableResult.
type tableResult struct {
	bounds    []Rect
	bases     []Size // child sizes before cells stretched them
	preferred Size
	columns   []int
	rows      []int
}

// placement is the cell range a child occupies.
type placement struct {
	col, row         int
	colSpan, rowSpan int
}

// spanItem is a child's demand along one axis.
type spanItem struct {
	start, span, size int
}

func (c *calculator) table(origin Point, avail Size, children []Layoutable, style Style) tableResult {
	cols := style.ColumnCount
	if cols <= 0 {
		cols = max(1, len(style.Columns))
	}
	spacing := max(0, style.CellSpacing)

	styles := make([]Style, len(children))
	for i, child := range children {
		styles[i] = c.styleOf(child)
	}
	places, rowCount := c.place(styles, cols, max(style.RowCount, len(style.Rows)))

	bases := make([]Size, len(children))
	colItems := make([]spanItem, len(children))
	rowItems := make([]spanItem, len(children))
	for i, child := range children {
		bases[i] = c.sizeFor(child, styles[i], Size{Width: Unbounded, Height: Unbounded})
		box := bases[i].Add(styles[i].Margin)
		p := places[i]
		colItems[i] = spanItem{start: p.col, span: p.colSpan, size: box.Width}
		rowItems[i] = spanItem{start: p.row, span: p.rowSpan, size: box.Height}
	}

	widths := c.sizeTracks("column", style.Columns, cols, avail.Width, spacing, colItems)
	heights := c.sizeTracks("row", style.Rows, rowCount, avail.Height, spacing, rowItems)
	xs := trackOffsets(widths, spacing)
	ys := trackOffsets(heights, spacing)

	res := tableResult{
		bounds:    make([]Rect, len(children)),
		bases:     bases,
		preferred: Size{Width: trackSpan(widths, 0, len(widths), spacing), Height: trackSpan(heights, 0, len(heights), spacing)},
		columns:   widths,
		rows:      heights,
	}
	for i, p := range places {
		cell := Rect{
			X:      origin.X + xs[p.col],
			Y:      origin.Y + ys[p.row],
			Width:  trackSpan(widths, p.col, p.colSpan, spacing),
			Height: trackSpan(heights, p.row, p.rowSpan, spacing),
		}
		res.bounds[i] = cell.Inset(styles[i].Margin)
	}
	return res
}

// place assigns cells. Children with an explicit Cell are placed first; the
// rest take the next free cell in row-major order. Column spans are clamped
// to the last column and stop short of occupied cells. Rows grow on demand.
func (c *calculator) place(styles []Style, cols, minRows int) ([]placement, int) {
	places := make([]placement, len(styles))
	taken := make(map[Cell]bool)
	rows := minRows

	occupy := func(p placement) {
		for r := p.row; r < p.row+p.rowSpan; r++ {
			for k := p.col; k < p.col+p.colSpan; k++ {
				taken[Cell{Column: k, Row: r}] = true
			}
		}
		rows = max(rows, p.row+p.rowSpan)
	}

	for i, s := range styles {
		if s.Cell == nil {
			continue
		}
		col, row := s.Cell.Column, s.Cell.Row
		if col < 0 || col >= cols || row < 0 {
			c.log.Debug("cell out of range clamped",
				zap.Int("column", col), zap.Int("row", row), zap.Int("columns", cols))
			col = clamp(col, 0, cols-1)
			row = max(0, row)
		}
		p := placement{col: col, row: row, colSpan: c.clampSpan(s.ColumnSpan, cols-col), rowSpan: s.RowSpan}
		places[i] = p
		occupy(p)
	}

	col, row := 0, 0
	for i, s := range styles {
		if s.Cell != nil {
			continue
		}
		for taken[Cell{Column: col, Row: row}] {
			col++
			if col >= cols {
				col = 0
				row++
			}
		}

		span := c.clampSpan(s.ColumnSpan, cols-col)
		for k := 1; k < span; k++ {
			if taken[Cell{Column: col + k, Row: row}] {
				c.log.Debug("column span cut short by occupied cell",
					zap.Int("span", span), zap.Int("kept", k))
				span = k
				break
			}
		}

		p := placement{col: col, row: row, colSpan: span, rowSpan: s.RowSpan}
		places[i] = p
		occupy(p)

		col += span
		if col >= cols {
			col = 0
			row++
		}
	}

	return places, rows
}

func (c *calculator) clampSpan(span, limit int) int {
	if span > limit {
		c.log.Debug("column span clamped", zap.Int("span", span), zap.Int("limit", limit))
		return limit
	}
	return span
}

// sizeTracks resolves one axis. Absolute tracks take their value, AutoSize
// tracks take their largest single-track child, Percent tracks share what is
// left of avail, and spanning children that still do not fit split the
// shortfall evenly over the AutoSize tracks they cross, or enlarge the last
// track of the span when none of them is AutoSize. When avail is Unbounded,
// Percent tracks are sized like AutoSize tracks.
func (c *calculator) sizeTracks(axis string, styles []TrackStyle, count, avail, spacing int, items []spanItem) []int {
	sizes := make([]int, count)
	bounded := avail < Unbounded
	contentSized := func(i int) bool {
		t := trackAt(styles, i)
		return t.SizeType == SizeAutoSize || (!bounded && t.SizeType == SizePercent)
	}

	// 1. Absolute
	for i := range sizes {
		if t := trackAt(styles, i); t.SizeType == SizeAbsolute {
			if t.Value < 0 {
				c.log.Debug("negative track size clamped", zap.String("axis", axis), zap.Int("track", i))
			}
			sizes[i] = max(0, int(t.Value))
		}
	}

	// 2. Content of single-track children
	for _, it := range items {
		if it.span == 1 && contentSized(it.start) {
			sizes[it.start] = max(sizes[it.start], it.size)
		}
	}

	// 3. Percent share of the remaining space
	if bounded {
		c.distributePercent(axis, styles, sizes, avail, spacing)
	}

	// 4. Spanning children, narrowest spans first
	var spans []spanItem
	for _, it := range items {
		if it.span > 1 {
			spans = append(spans, it)
		}
	}
	slices.SortStableFunc(spans, func(a, b spanItem) int { return a.span - b.span })

	for _, it := range spans {
		short := it.size - trackSpan(sizes, it.start, it.span, spacing)
		if short <= 0 {
			continue
		}
		var growable []int
		for k := it.start; k < it.start+it.span; k++ {
			if contentSized(k) {
				growable = append(growable, k)
			}
		}
		if len(growable) == 0 {
			c.log.Debug("spanning child enlarged the last track of its span",
				zap.String("axis", axis), zap.Int("start", it.start), zap.Int("span", it.span), zap.Int("short", short))
			growable = []int{it.start + it.span - 1}
		}
		share, extra := short/len(growable), short%len(growable)
		for j, k := range growable {
			sizes[k] += share
			if j >= len(growable)-extra {
				sizes[k]++
			}
		}
	}

	return sizes
}

// distributePercent gives Percent tracks their share of the space left after
// every other track and the spacing. Percentages summing past 100 are scaled
// down proportionally; when they reach 100 the rounding remainder goes to
// the last Percent track so the tracks fill avail exactly.
func (c *calculator) distributePercent(axis string, styles []TrackStyle, sizes []int, avail, spacing int) {
	var percent []int
	fixed, total := 0, 0.0
	for i := range sizes {
		t := trackAt(styles, i)
		if t.SizeType == SizePercent {
			percent = append(percent, i)
			total += max(0, t.Value)
			continue
		}
		fixed += sizes[i]
	}
	if len(percent) == 0 {
		return
	}

	remaining := max(0, avail-fixed-spacing*max(0, len(sizes)-1))
	scale := 100.0
	if total > 100 {
		c.log.Debug("percent tracks normalized", zap.String("axis", axis), zap.Float64("total", total))
		scale = total
	}

	used := 0
	for _, i := range percent {
		sizes[i] = int(float64(remaining) * max(0, trackAt(styles, i).Value) / scale)
		used += sizes[i]
	}
	if total >= 100 {
		sizes[percent[len(percent)-1]] += remaining - used
	}
}

// trackOffsets returns the leading edge of every track.
func trackOffsets(sizes []int, spacing int) []int {
	offsets := make([]int, len(sizes))
	pos := 0
	for i, s := range sizes {
		offsets[i] = pos
		pos += s + spacing
	}
	return offsets
}

// trackSpan returns the length covered by n tracks starting at start,
// including the spacing between them.
func trackSpan(sizes []int, start, n, spacing int) int {
	if n <= 0 {
		return 0
	}
	total := spacing * (n - 1)
	for _, s := range sizes[start : start+n] {
		total += s
	}
	return total
}
