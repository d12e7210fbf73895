package history

import (
	"testing"
	"time"

	"thermostat_api/internal/models"
)

func obs(temp int) models.Observation {
	return models.Observation{Temperature: temp, RecordedAt: time.Unix(int64(temp), 0)}
}

func temps(list []models.Observation) []int {
	out := make([]int, len(list))
	for i, o := range list {
		out[i] = o.Temperature
	}
	return out
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func intPtr(v int) *int { return &v }

func TestStore_AppendListNewestFirst(t *testing.T) {
	s := NewStore(DefaultCapacity)
	for _, v := range []int{15, 20, 25, 30, 35} {
		s.Append(obs(v))
	}
	if got := temps(s.List(nil)); !equalInts(got, []int{35, 30, 25, 20, 15}) {
		t.Fatalf("List(nil)=%v", got)
	}
	if s.Count() != 5 {
		t.Fatalf("Count()=%d, want 5", s.Count())
	}
}

func TestStore_ListLimit(t *testing.T) {
	s := NewStore(DefaultCapacity)
	for _, v := range []int{10, 12, 14, 16, 18, 20} {
		s.Append(obs(v))
	}
	cases := []struct {
		name  string
		limit *int
		want  []int
	}{
		{"nil_returns_all", nil, []int{20, 18, 16, 14, 12, 10}},
		{"three", intPtr(3), []int{20, 18, 16}},
		{"zero", intPtr(0), []int{}},
		{"negative", intPtr(-2), []int{}},
		{"beyond_count_not_padded", intPtr(50), []int{20, 18, 16, 14, 12, 10}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := temps(s.List(tc.limit)); !equalInts(got, tc.want) {
				t.Fatalf("List=%v, want %v", got, tc.want)
			}
		})
	}
}

func TestStore_CapacityDropsOldest(t *testing.T) {
	s := NewStore(DefaultCapacity)
	for i := 1; i <= 105; i++ {
		s.Append(obs(i))
	}
	if s.Count() != 100 {
		t.Fatalf("Count()=%d, want 100", s.Count())
	}
	got := temps(s.List(nil))
	if got[0] != 105 || got[99] != 6 {
		t.Fatalf("newest=%d oldest=%d, want 105 and 6", got[0], got[99])
	}
	for i := 1; i < len(got); i++ {
		if got[i] != got[i-1]-1 {
			t.Fatalf("order broken at %d: %v", i, got[i-1:i+1])
		}
	}
}

func TestStore_SmallCapacityWraps(t *testing.T) {
	s := NewStore(3)
	for _, v := range []int{1, 2, 3, 4, 5} {
		s.Append(obs(v))
	}
	if got := temps(s.List(nil)); !equalInts(got, []int{5, 4, 3}) {
		t.Fatalf("List=%v", got)
	}
	if got := temps(s.List(intPtr(2))); !equalInts(got, []int{5, 4}) {
		t.Fatalf("List(2)=%v", got)
	}
}

func TestStore_DuplicatesKept(t *testing.T) {
	s := NewStore(10)
	s.Append(obs(22))
	s.Append(obs(22))
	if s.Count() != 2 {
		t.Fatalf("Count()=%d, want 2", s.Count())
	}
}

func TestStore_Clear(t *testing.T) {
	s := NewStore(4)
	s.Append(obs(1))
	s.Append(obs(2))
	s.Clear()
	if s.Count() != 0 || len(s.List(nil)) != 0 {
		t.Fatalf("store not empty after Clear")
	}
	s.Append(obs(9))
	if got := temps(s.List(nil)); !equalInts(got, []int{9}) {
		t.Fatalf("List after Clear+Append=%v", got)
	}
}

func TestNewStore_DefaultsCapacity(t *testing.T) {
	if c := NewStore(0).Capacity(); c != DefaultCapacity {
		t.Fatalf("Capacity()=%d, want %d", c, DefaultCapacity)
	}
}
