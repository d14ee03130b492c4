package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractYears(t *testing.T) {
	now := fixedClock()

	tests := []struct {
		line string
		want int
	}{
		{"5+ years of Go", 5},
		{"3-5 yrs in backend", 3},
		{"3 - 5 years of experience", 3},
		{"At least 1 year", 1},
		{"Bachelor's degree in Computer Science required, 3+ years experience", 3},
		{"Contributing since 2018", 6},
		{"Founded since 1900", 0},
		{"100 years of experience", 0},
		{"Experienced engineer, 60 years", 5},
		{"Senior engineer", 5},
		{"Junior developer", 0},
		{"Intermediate SQL", 2},
		{"Mid level role", 2},
		{"Entry level, senior mentoring available", 0},
		{"Must love dogs", 0},
		{"", 0},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractYears(tt.line, now))
		})
	}
}
