package repo

import (
	"testing"

	"github.com/pr-poehali-dev/perfume-shop-creation/internal/entities"

	"github.com/stretchr/testify/assert"
)

func TestPatchColumns(t *testing.T) {
	status := "shipped"
	name := "Анна"
	comment := ""

	testCases := []struct {
		name  string
		patch entities.OrderPatch
		want  map[string]any
	}{
		{
			name:  "empty patch produces no columns",
			patch: entities.OrderPatch{},
			want:  map[string]any{},
		},
		{
			name:  "only status",
			patch: entities.OrderPatch{Status: &status},
			want:  map[string]any{"status": "shipped"},
		},
		{
			name: "several fields",
			patch: entities.OrderPatch{
				Status:       &status,
				CustomerName: &name,
			},
			want: map[string]any{
				"status":        "shipped",
				"customer_name": "Анна",
			},
		},
		{
			name:  "explicit empty string is still a change",
			patch: entities.OrderPatch{Comment: &comment},
			want:  map[string]any{"comment": ""},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, patchColumns(tc.patch))
		})
	}
}
