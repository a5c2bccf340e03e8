package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractLeadingNumber(t *testing.T) {
	tests := []struct {
		number string
		want   int
	}{
		{"4/102", 4},
		{"58/102", 58},
		{"102/102", 102},
		{"7", 7},
		{"25a/102", 25},
		{"SWSH001", 0},
		{"TG12/TG30", 0},
		{"", 0},
		{"/102", 0},
		{"99999999999999999999/102", 0},
	}

	for _, tt := range tests {
		t.Run(tt.number, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractLeadingNumber(tt.number))
		})
	}
}

// "7/102" must sort before "58/102" even though it is lexically larger
func TestExtractLeadingNumberOrdersNumerically(t *testing.T) {
	assert.Less(t, ExtractLeadingNumber("7/102"), ExtractLeadingNumber("58/102"))
	assert.Greater(t, "7/102", "58/102")
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		total int64
		want  int
	}{
		{0, 0},
		{1, 1},
		{PageSize, 1},
		{PageSize + 1, 2},
		{PageSize * 3, 3},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, TotalPages(tt.total), "total=%d", tt.total)
	}
}

func TestSearchCriteriaNormalized(t *testing.T) {
	assert.Equal(t, 1, SearchCriteria{Page: 0}.Normalized().Page)
	assert.Equal(t, 1, SearchCriteria{Page: -3}.Normalized().Page)
	assert.Equal(t, 5, SearchCriteria{Page: 5}.Normalized().Page)
}
