package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTaskFilter_Limit(t *testing.T) {
	tests := []struct {
		name    string
		perPage int
		want    int
	}{
		{name: "unset_uses_default", perPage: 0, want: DefaultPerPage},
		{name: "negative_uses_default", perPage: -5, want: DefaultPerPage},
		{name: "explicit_value", perPage: 2, want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := TaskFilter{PerPage: tt.perPage}
			assert.Equal(t, tt.want, f.Limit())
		})
	}
}

func TestTaskFilter_Offset(t *testing.T) {
	tests := []struct {
		name    string
		page    int
		perPage int
		want    int
	}{
		{name: "unset_page_skips_nothing", page: 0, perPage: 20, want: 0},
		{name: "first_page", page: 1, perPage: 20, want: 0},
		{name: "second_page", page: 2, perPage: 2, want: 2},
		{name: "negative_page_clamped", page: -3, perPage: 10, want: 0},
		{name: "default_per_page_applied", page: 3, perPage: 0, want: 2 * DefaultPerPage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := TaskFilter{Page: tt.page, PerPage: tt.perPage}
			assert.Equal(t, tt.want, f.Offset())
		})
	}
}
