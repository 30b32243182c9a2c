package scoring

import (
	"reflect"
	"testing"
)

func reportsWithScores(scores ...int) []QualityReport {
	out := make([]QualityReport, len(scores))
	for i, s := range scores {
		out[i] = QualityReport{Score: s, Grade: GradeFromScore(s)}
	}
	return out
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		name    string
		reports []QualityReport
		want    Summary
	}{
		{
			name:    "empty batch",
			reports: nil,
			want:    Summary{Grades: map[string]int{}},
		},
		{
			name:    "single report",
			reports: reportsWithScores(82),
			want:    Summary{Count: 1, Mean: 82, Max: 82, Min: 82, Grades: map[string]int{"B": 1}},
		},
		{
			name:    "three reports",
			reports: reportsWithScores(90, 70, 50),
			want: Summary{
				Count:  3,
				Mean:   70.0,
				Max:    90,
				Min:    50,
				Grades: map[string]int{"A": 1, "C": 1, "F": 1},
			},
		},
		{
			name:    "fractional mean",
			reports: reportsWithScores(0, 0, 100),
			want: Summary{
				Count:  3,
				Mean:   100.0 / 3,
				Max:    100,
				Min:    0,
				Grades: map[string]int{"A": 1, "F": 2},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Summarize(tt.reports)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Summarize() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestSummarize_IncludesFailedReports(t *testing.T) {
	reports := append(reportsWithScores(88), Failed(errTest))
	got := Summarize(reports)

	if got.Min != 0 || got.Max != 88 || got.Grades["F"] != 1 {
		t.Errorf("Summarize() = %+v", got)
	}
}
