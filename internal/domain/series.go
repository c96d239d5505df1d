package domain

// SeriesKind distinguishes the two shapes a chart series can take. Keeping
// this a closed set means the presentation layer never receives an untyped
// blob: either the labels are normalized categorical values or they are the
// fixed salary bucket names.
type SeriesKind string

const (
	// SeriesCategorical groups rows by a normalized field value.
	SeriesCategorical SeriesKind = "categorical"
	// SeriesBucketed groups rows by the fixed salary range table.
	SeriesBucketed SeriesKind = "bucketed"
)

// Series is an ordered, index-aligned (label, count) sequence for one
// property. Labels are unique; ordering is natural ascending for categorical
// properties and the fixed range order for salary, never source-incidental.
type Series struct {
	Kind     SeriesKind `json:"-"`
	Property string     `json:"-"`
	Labels   []string   `json:"labels"`
	Data     []int      `json:"data"`
}

// Empty reports whether the series carries no buckets, the "no data for X"
// state the UI renders instead of an error.
func (s Series) Empty() bool {
	return len(s.Labels) == 0
}

// Total returns the number of rows counted across all buckets.
func (s Series) Total() int {
	total := 0
	for _, n := range s.Data {
		total += n
	}
	return total
}
