package store

import (
	"reflect"
	"strings"
	"testing"
)

func TestBuildSelectReviewsQuery(t *testing.T) {
	animeID := int64(21)
	userID := "u-1"

	tests := []struct {
		name         string
		filter       ReviewFilter
		wantContains []string
		wantAbsent   []string
		wantArgs     []any
	}{
		{
			name:         "no filter returns full ordered collection",
			filter:       ReviewFilter{},
			wantContains: []string{"SELECT", "FROM reviews", "ORDER BY created_at DESC"},
			wantAbsent:   []string{"WHERE"},
			wantArgs:     []any{},
		},
		{
			name:         "anime filter",
			filter:       ReviewFilter{AnimeID: &animeID},
			wantContains: []string{"WHERE anime_id = ?", "ORDER BY created_at DESC"},
			wantArgs:     []any{animeID},
		},
		{
			name:         "user filter",
			filter:       ReviewFilter{UserID: &userID},
			wantContains: []string{"WHERE user_id = ?", "ORDER BY created_at DESC"},
			wantArgs:     []any{userID},
		},
		{
			name:         "both filters combined with AND",
			filter:       ReviewFilter{AnimeID: &animeID, UserID: &userID},
			wantContains: []string{"anime_id = ?", "AND", "user_id = ?"},
			wantArgs:     []any{animeID, userID},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildSelectReviewsQuery(tt.filter)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			for _, want := range tt.wantContains {
				if !strings.Contains(query, want) {
					t.Errorf("query %q does not contain %q", query, want)
				}
			}
			for _, absent := range tt.wantAbsent {
				if strings.Contains(query, absent) {
					t.Errorf("query %q must not contain %q", query, absent)
				}
			}
			if len(args) != len(tt.wantArgs) {
				t.Fatalf("expected %d args, got %d", len(tt.wantArgs), len(args))
			}
			if len(tt.wantArgs) > 0 && !reflect.DeepEqual(args, tt.wantArgs) {
				t.Errorf("expected args %v, got %v", tt.wantArgs, args)
			}

			for _, column := range reviewColumns {
				if !strings.Contains(query, column) {
					t.Errorf("query %q misses column %q", query, column)
				}
			}
		})
	}
}
