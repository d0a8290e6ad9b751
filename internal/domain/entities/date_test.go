package entities

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-03-12")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.String() != "2025-03-12" {
		t.Errorf("expected 2025-03-12, got %s", d)
	}

	if _, err := ParseDate("12/03/2025"); err == nil {
		t.Error("expected error for non-ISO format")
	}
	if _, err := ParseDate("2025-13-40"); err == nil {
		t.Error("expected error for impossible date")
	}
}

func TestDateAddDays(t *testing.T) {
	d := NewDate(2025, time.March, 1)

	if got := d.AddDays(-1).String(); got != "2025-02-28" {
		t.Errorf("expected month rollover to 2025-02-28, got %s", got)
	}
	if got := d.AddDays(31).String(); got != "2025-04-01" {
		t.Errorf("expected 2025-04-01, got %s", got)
	}
}

func TestDateJSONRoundTrip(t *testing.T) {
	d := NewDate(2025, time.March, 12)

	raw, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(raw) != `"2025-03-12"` {
		t.Errorf("expected quoted date, got %s", raw)
	}

	var back Date
	if err := json.Unmarshal(raw, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !back.Equal(d.Time) {
		t.Errorf("round trip changed date: %s", back)
	}

	if err := json.Unmarshal([]byte(`"not-a-date"`), &back); err == nil {
		t.Error("expected error for malformed date string")
	}
}

func TestDateScan(t *testing.T) {
	var d Date

	ts := time.Date(2025, 3, 12, 14, 30, 0, 0, time.FixedZone("X", 3600))
	if err := d.Scan(ts); err != nil {
		t.Fatalf("scan time: %v", err)
	}
	if d.String() != "2025-03-12" {
		t.Errorf("expected time-of-day dropped, got %s", d)
	}

	if err := d.Scan([]byte("2025-06-01")); err != nil {
		t.Fatalf("scan bytes: %v", err)
	}
	if d.String() != "2025-06-01" {
		t.Errorf("expected 2025-06-01, got %s", d)
	}

	if err := d.Scan(42); err == nil {
		t.Error("expected error scanning an int")
	}
}
