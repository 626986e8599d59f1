package tabula

import (
	"github.com/mayfield/tabula/vtext"
)

// colStat tracks the width distribution of one flexible column across the
// sampled rows.
type colStat struct {
	index        int
	counts       map[int]int // line width -> occurrences
	width        int         // current candidate width
	min          int
	preformatted bool
	chopMass     int
	chopCount    int
	totalMass    int
}

// flexWidths chooses an interior width for each flexible column from
// sampled content. Columns are narrowed one cell at a time, always taking
// the cell whose removal clips the least character mass relative to the
// column's total, until the candidates fit avail. Preformatted columns
// keep their content width and reduce the budget for everyone else. With
// justify, leftover space is handed back proportionally so the table fills
// avail exactly.
//
// The result maps column index to width. It is deterministic: ties narrow
// the leftmost column and no wall-clock state is involved.
func flexWidths(sample [][]vtext.Text, headers []vtext.Text, specs []ColumnSpec, flex []int, avail int, justify bool) map[int]int {
	stats := make([]*colStat, 0, len(flex))
	for _, i := range flex {
		st := &colStat{
			index:        i,
			counts:       make(map[int]int),
			min:          max(specs[i].MinWidth, 1),
			preformatted: specs[i].Overflow == OverflowPreformatted,
		}
		record := func(w int) {
			st.counts[w]++
			if w > st.width {
				st.width = w
			}
		}
		for _, row := range sample {
			if i >= len(row) {
				continue
			}
			for _, line := range row[i].Lines() {
				record(line.Width())
			}
		}
		if i < len(headers) {
			record(headers[i].Width())
		}
		record(st.min)
		for w, n := range st.counts {
			st.totalMass += w * n
		}
		if st.totalMass == 0 {
			st.totalMass = 1
		}
		stats = append(stats, st)
	}
	adjustWidths(avail, stats)
	required := 0
	for _, st := range stats {
		required += st.width
	}
	if justify && required < avail && required > 0 {
		remaining := avail
		for _, st := range stats {
			st.width = st.width * avail / required
			remaining -= st.width
		}
		for n := 0; remaining > 0; n++ {
			stats[n%len(stats)].width++
			remaining--
		}
	}
	out := make(map[int]int, len(stats))
	for _, st := range stats {
		out[st.index] = st.width
	}
	return out
}

// adjustWidths narrows the candidate widths until they fit avail, scoring
// each narrowing by the fraction of the column's character mass it clips.
func adjustWidths(avail int, stats []*colStat) {
	var adjustable []*colStat
	for _, st := range stats {
		if st.preformatted {
			avail -= st.width
		} else {
			adjustable = append(adjustable, st)
		}
	}
	score := func(st *colStat) float64 {
		return float64(st.counts[st.width]+st.chopMass+st.chopCount) /
			float64(st.totalMass)
	}
	for {
		used := 0
		for _, st := range adjustable {
			used += st.width
		}
		if used <= avail {
			return
		}
		var chop *colStat
		best := 0.0
		for _, st := range adjustable {
			if st.width <= st.min {
				continue
			}
			if s := score(st); chop == nil || s < best {
				chop = st
				best = s
			}
		}
		if chop == nil {
			// Every column is as small as it can get; allow overflow.
			return
		}
		chop.chopCount += chop.counts[chop.width]
		chop.chopMass += chop.chopCount
		chop.width--
	}
}
