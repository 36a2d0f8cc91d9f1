package detector

import "container/list"

// compStats represents statistics for a connected edge component.
type compStats struct {
	count int
	minX  int
	minY  int
	maxX  int
	maxY  int
}

// connectedComponents labels 8-connected components in the edge mask and
// returns per-component stats. Edges from Canny are one pixel thin, so
// 8-connectivity is required to keep diagonal strokes in one component.
func connectedComponents(mask []bool, w, h int) ([]compStats, []int) {
	labels := make([]int, w*h)
	var comps []compStats
	label := 1

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			if mask[idx] && labels[idx] == 0 {
				comps = append(comps, componentBFS(mask, labels, w, h, x, y, label))
				label++
			}
		}
	}
	return comps, labels
}

// componentBFS flood-fills one component starting from a seed pixel.
func componentBFS(mask []bool, labels []int, w, h, startX, startY, label int) compStats {
	startIdx := startY*w + startX
	st := compStats{minX: startX, minY: startY, maxX: startX, maxY: startY}

	q := list.New()
	q.PushBack(startIdx)
	labels[startIdx] = label

	for q.Len() > 0 {
		e := q.Front()
		q.Remove(e)
		ci, ok := e.Value.(int)
		if !ok {
			continue
		}
		cx, cy := ci%w, ci/w
		updateComponentStats(&st, cx, cy)

		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				nx, ny := cx+dx, cy+dy
				if nx < 0 || ny < 0 || nx >= w || ny >= h {
					continue
				}
				ni := ny*w + nx
				if mask[ni] && labels[ni] == 0 {
					labels[ni] = label
					q.PushBack(ni)
				}
			}
		}
	}
	return st
}

func updateComponentStats(st *compStats, cx, cy int) {
	st.count++
	if cx < st.minX {
		st.minX = cx
	}
	if cy < st.minY {
		st.minY = cy
	}
	if cx > st.maxX {
		st.maxX = cx
	}
	if cy > st.maxY {
		st.maxY = cy
	}
}
