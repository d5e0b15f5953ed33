package fa

// Move computes the successor set of a set of states under one input symbol:
// the union of every member's transition cell for that symbol, as a list
// ordered ascending by state label with duplicates collapsed. A nil result
// means the successor set is empty.
func Move(states []*State, symbol int) []*State {
	var out []*State

	for _, st := range states {
		if st.Trans == nil || symbol >= len(st.Trans) {
			continue
		}
		for _, suc := range st.Trans[symbol] {
			if suc == nil {
				continue
			}
			out = insertOrdered(out, suc)
		}
	}

	return out
}
