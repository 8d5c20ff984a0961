package cmd

import (
	"testing"
	"time"

	"github.com/ocarel/pocketfolio"
)

func TestParseRange(t *testing.T) {
	testCases := []struct {
		name    string
		period  string
		start   string
		end     string
		want    pocketfolio.Range
		wantErr bool
	}{
		{
			name: "period around end date", period: "month", end: "2025-08-15",
			want: pocketfolio.NewRange(pocketfolio.NewDate(2025, time.August, 1), pocketfolio.NewDate(2025, time.August, 31)),
		},
		{
			name: "explicit start overrides period", period: "month", start: "2025-07-01", end: "2025-08-15",
			want: pocketfolio.NewRange(pocketfolio.NewDate(2025, time.July, 1), pocketfolio.NewDate(2025, time.August, 15)),
		},
		{
			name: "reversed boundaries swap", period: "month", start: "2025-08-15", end: "2025-07-01",
			want: pocketfolio.NewRange(pocketfolio.NewDate(2025, time.July, 1), pocketfolio.NewDate(2025, time.August, 15)),
		},
		{name: "bad period", period: "fortnight", end: "2025-08-15", wantErr: true},
		{name: "bad start", period: "month", start: "soon", end: "2025-08-15", wantErr: true},
		{name: "bad end", period: "month", end: "someday", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parseRange(tc.period, tc.start, tc.end)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("parseRange(%q, %q, %q) = %v, want error", tc.period, tc.start, tc.end, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseRange(%q, %q, %q) failed: %v", tc.period, tc.start, tc.end, err)
			}
			if got != tc.want {
				t.Errorf("parseRange(%q, %q, %q) = %v, want %v", tc.period, tc.start, tc.end, got, tc.want)
			}
		})
	}
}
