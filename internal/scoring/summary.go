package scoring

// Summary aggregates a batch of reports.
type Summary struct {
	Count  int            `json:"count"`
	Mean   float64        `json:"mean"`
	Max    int            `json:"max"`
	Min    int            `json:"min"`
	Grades map[string]int `json:"grades"`
}

// Summarize derives batch statistics. It is only meaningful for a
// non-empty batch; an empty one yields the zero Summary.
func Summarize(reports []QualityReport) Summary {
	s := Summary{Grades: make(map[string]int)}
	if len(reports) == 0 {
		return s
	}

	s.Count = len(reports)
	s.Max = reports[0].Score
	s.Min = reports[0].Score

	total := 0
	for _, r := range reports {
		total += r.Score
		s.Max = max(s.Max, r.Score)
		s.Min = min(s.Min, r.Score)
		s.Grades[r.Grade]++
	}
	s.Mean = float64(total) / float64(s.Count)

	return s
}
