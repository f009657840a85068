package problemgen

// seenSet tracks question texts already emitted in one batch.
type seenSet map[string]struct{}

// add records text and reports whether it was new.
func (s seenSet) add(text string) bool {
	if _, ok := s[text]; ok {
		return false
	}
	s[text] = struct{}{}
	return true
}

// Dedup returns qs without questions whose text repeats an earlier one.
// Order is preserved.
func Dedup(qs []Question) []Question {
	seen := make(seenSet, len(qs))
	out := qs[:0:0]
	for _, q := range qs {
		if seen.add(q.Text) {
			out = append(out, q)
		}
	}
	return out
}
