package association

import (
	"testing"

	am "gwas/api/models/association"
	fo "gwas/api/models/constants/filter-operator"
	"gwas/api/models/constants/resolution"

	"github.com/stretchr/testify/assert"
)

func TestSelectResolution(t *testing.T) {
	thresholds := Thresholds{Intermediate: 600000, Large: 10000000}

	for _, tc := range []struct {
		width    int
		expected string
	}{
		{0, "fine"},
		{1, "fine"},
		{600000, "fine"},
		{600001, "medium"},
		{10000000, "medium"},
		{10000001, "coarse"},
		{am.UnboundedBounds().Width(), "coarse"},
	} {
		assert.Equal(t, tc.expected, string(SelectResolution(tc.width, thresholds)), "width %d", tc.width)
	}

	t.Run("should pick the fine store for a single variant whatever the other bounds", func(t *testing.T) {
		compiled := CompileFilters([]am.Filter{
			am.PosFilter{Operator: fo.Gte, Value: 0},
			am.PosFilter{Operator: fo.Eq, Value: 50000000},
		}, "1")

		assert.Equal(t, resolution.Fine, SelectResolution(compiled.Bounds.Width(), thresholds))
	})
}
