package service

import (
	"testing"
	"time"
)

func TestMonitoringService_Health(t *testing.T) {
	t.Parallel()

	loc := time.FixedZone("UTC-3", -3*60*60)
	start := time.Date(2024, 3, 1, 9, 0, 0, 0, loc)
	clock := start
	svc := NewMonitoringService("1.2.3", func() time.Time { return clock })

	type testCase struct {
		name       string
		advance    time.Duration
		wantUptime int64
	}
	cases := []testCase{
		{name: "at start", advance: 0, wantUptime: 0},
		{name: "sub-second truncates", advance: 900 * time.Millisecond, wantUptime: 0},
		{name: "grows", advance: 90 * time.Second, wantUptime: 90},
		{name: "clock went backwards", advance: -time.Minute, wantUptime: 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			clock = start.Add(tc.advance)
			got := svc.Health()
			if got.Status != "ok" || got.Version != "1.2.3" {
				t.Fatalf("unexpected report %+v", got)
			}
			if got.UptimeSeconds != tc.wantUptime {
				t.Fatalf("uptime=%d, want %d", got.UptimeSeconds, tc.wantUptime)
			}
			if got.Timestamp.Location() != time.UTC {
				t.Fatalf("timestamp not UTC: %v", got.Timestamp)
			}
		})
	}
}

func TestToUTC_PreservesZero(t *testing.T) {
	if got := toUTC(time.Time{}); !got.IsZero() {
		t.Fatalf("toUTC(zero)=%v", got)
	}
}
