package genetics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimplifyRatio(t *testing.T) {
	for _, tc := range []struct {
		counts []int
		want   string
	}{
		{[]int{36, 12, 12, 4}, "9:3:3:1"},
		{[]int{9, 3, 3, 1}, "9:3:3:1"},
		{[]int{3, 1}, "3:1"},
		{[]int{2, 4, 2}, "1:2:1"},
		{[]int{4}, "1"},
		{[]int{0, 6, 3}, "2:1"},
		{[]int{}, ""},
		{nil, ""},
	} {
		assert.Equal(t, tc.want, SimplifyRatio(tc.counts), "counts %v", tc.counts)
	}
}
