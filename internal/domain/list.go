package domain

// ListOptions bounds a list query. A zero Limit means no limit.
type ListOptions struct {
	Offset int
	Limit  int
}

// Window returns the [start, end) slice bounds of opts over n records.
func (o ListOptions) Window(n int) (int, int) {
	start := o.Offset
	if start < 0 {
		start = 0
	}
	if start > n {
		start = n
	}
	end := n
	if o.Limit > 0 && start+o.Limit < n {
		end = start + o.Limit
	}
	return start, end
}
