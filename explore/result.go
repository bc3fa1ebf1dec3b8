package explore

import "github.com/katalvlaran/valvenet/activation"

// Result is the outcome of Explore. Records[i] is the terminal record of
// States[i]; States[0] is the root.
type Result struct {
	Index   *activation.Index
	Start   string
	Budget  int
	States  []State
	Records []Record
	Stats   Stats
}

// Best returns the record with the highest yield, the earliest one on ties.
// The root record guarantees a result even when nothing can be opened.
func (r *Result) Best() Record {
	best := r.Records[0]
	for _, rec := range r.Records[1:] {
		if rec.Yield > best.Yield {
			best = rec
		}
	}

	return best
}

// Max returns the highest recorded yield.
func (r *Result) Max() int { return r.Best().Yield }

// Sequence returns the valves opened on the way to rec, in opening order.
func (r *Result) Sequence(rec Record) []string {
	var bits []int
	for i := rec.State; r.States[i].Parent >= 0; i = r.States[i].Parent {
		bits = append(bits, r.States[i].At)
	}

	seq := make([]string, len(bits))
	for i, b := range bits {
		seq[len(bits)-1-i] = r.Index.ID(b)
	}

	return seq
}

// Minutes returns, for each valve in Sequence(rec), the minute at which it
// finished opening.
func (r *Result) Minutes(rec Record) []int {
	var out []int
	for i := rec.State; r.States[i].Parent >= 0; i = r.States[i].Parent {
		out = append(out, r.States[i].Minutes)
	}
	for a, b := 0, len(out)-1; a < b; a, b = a+1, b-1 {
		out[a], out[b] = out[b], out[a]
	}

	return out
}
