package helpers

import "testing"

func TestNormalizeSkipLimit(t *testing.T) {
	tests := []struct {
		name      string
		skip      int
		limit     int
		wantSkip  int
		wantLimit int
	}{
		{"defaults", 0, 0, 0, DefaultLimit},
		{"explicit values", 10, 25, 10, 25},
		{"negative skip", -5, 25, 0, 25},
		{"negative limit", 0, -1, 0, DefaultLimit},
		{"limit above max", 0, MaxLimit + 1, 0, MaxLimit},
		{"limit at max", 0, MaxLimit, 0, MaxLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			skip, limit := NormalizeSkipLimit(tt.skip, tt.limit)
			if skip != tt.wantSkip || limit != tt.wantLimit {
				t.Errorf("NormalizeSkipLimit(%d, %d) = (%d, %d), want (%d, %d)",
					tt.skip, tt.limit, skip, limit, tt.wantSkip, tt.wantLimit)
			}
		})
	}
}
