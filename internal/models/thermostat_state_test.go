package models

import (
	"encoding/json"
	"testing"
)

func TestDecimal_MarshalJSON(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{5, "5.0"},
		{0, "0.0"},
		{3.14, "3.14"},
		{4.2, "4.2"},
		{-0.5, "-0.5"},
	}
	for _, tc := range cases {
		b, err := json.Marshal(Decimal(tc.in))
		if err != nil {
			t.Fatalf("marshal %v: %v", tc.in, err)
		}
		if string(b) != tc.want {
			t.Fatalf("marshal %v = %s, want %s", tc.in, b, tc.want)
		}
	}
}

func TestModes_SortedAndValid(t *testing.T) {
	got := Modes()
	want := []Mode{"apagado", "calentando", "encendido", "enfriando"}
	if len(got) != len(want) {
		t.Fatalf("modes=%v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("modes[%d]=%q, want %q", i, got[i], want[i])
		}
		if !got[i].Valid() {
			t.Fatalf("mode %q should be valid", got[i])
		}
	}
	if Mode("ventilando").Valid() {
		t.Fatalf("ventilando should be invalid")
	}
}
