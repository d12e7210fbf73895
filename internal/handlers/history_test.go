package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	api "thermostat_api"
	"thermostat_api/internal/models"
	"thermostat_api/internal/service"
)

func TestGetHistory(t *testing.T) {
	ts := time.Date(2024, 6, 1, 12, 0, 0, 123456789, time.UTC)
	th := defaultMockThermostat()
	th.history = service.HistoryPage{
		Entries: []models.Observation{
			{Temperature: 23, RecordedAt: ts.Add(time.Second)},
			{Temperature: 22, RecordedAt: ts},
		},
		Total: 5,
	}
	r := newTestRouter(newMockServices(th))

	w := doRequest(r, http.MethodGet, "/termostato/historial/?limite=2", "", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	var resp api.HistoryResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Total != 5 || len(resp.History) != 2 {
		t.Fatalf("unexpected response %+v", resp)
	}
	if resp.History[0].Temperature != 23 || resp.History[1].Timestamp != "2024-06-01T12:00:00.123456789Z" {
		t.Fatalf("unexpected entries %+v", resp.History)
	}
	if th.lastLimit == nil || *th.lastLimit != 2 {
		t.Fatalf("limit not forwarded: %v", th.lastLimit)
	}
}

func TestGetHistory_LimitParsing(t *testing.T) {
	cases := []struct {
		name      string
		query     string
		wantCode  int
		wantLimit *int
	}{
		{name: "absent", query: "", wantCode: http.StatusOK},
		{name: "zero", query: "?limite=0", wantCode: http.StatusOK, wantLimit: intPtr(0)},
		{name: "padded", query: "?limite=%203", wantCode: http.StatusOK, wantLimit: intPtr(3)},
		{name: "negative", query: "?limite=-1", wantCode: http.StatusBadRequest},
		{name: "not a number", query: "?limite=abc", wantCode: http.StatusBadRequest},
		{name: "fraction", query: "?limite=1.5", wantCode: http.StatusBadRequest},
		{name: "empty value", query: "?limite=", wantCode: http.StatusBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			th := defaultMockThermostat()
			r := newTestRouter(newMockServices(th))

			w := doRequest(r, http.MethodGet, "/termostato/historial/"+tc.query, "", "")
			if w.Code != tc.wantCode {
				t.Fatalf("status=%d, want %d", w.Code, tc.wantCode)
			}
			if tc.wantCode == http.StatusBadRequest {
				if e := decodeError(t, w); e.Message != "Parametro invalido" {
					t.Fatalf("mensaje=%q", e.Message)
				}
				return
			}
			switch {
			case tc.wantLimit == nil && th.lastLimit != nil:
				t.Fatalf("expected nil limit, got %d", *th.lastLimit)
			case tc.wantLimit != nil && (th.lastLimit == nil || *th.lastLimit != *tc.wantLimit):
				t.Fatalf("limit=%v, want %d", th.lastLimit, *tc.wantLimit)
			}
		})
	}
}

func TestGetHistory_EmptyIsArray(t *testing.T) {
	r := newTestRouter(newMockServices(defaultMockThermostat()))

	w := doRequest(r, http.MethodGet, "/termostato/historial/", "", "")
	if got := w.Body.String(); got != `{"historial":[],"total":0}` {
		t.Fatalf("body=%s", got)
	}
}

func intPtr(v int) *int { return &v }
