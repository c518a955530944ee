package clock

// Cell is a single grid position.
type Cell struct {
	Row int
	Col int
}

// LitPositions expands a word list into the set of grid cells to light.
// Unknown tokens are skipped; overlapping words are merged.
func LitPositions(words []string) []Cell {
	seen := make(map[Cell]bool)
	var cells []Cell
	for _, w := range words {
		pos, ok := Words[w]
		if !ok {
			continue
		}
		for col := pos.Start; col <= pos.End; col++ {
			c := Cell{Row: pos.Row, Col: col}
			if !seen[c] {
				seen[c] = true
				cells = append(cells, c)
			}
		}
	}
	return cells
}
