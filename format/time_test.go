package format

import (
	"testing"
	"time"
)

func TestAgo(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name     string
		t        time.Time
		expected string
	}{
		{"seconds ago", now.Add(-30 * time.Second), "ahora mismo"},
		{"minutes ago", now.Add(-5 * time.Minute), "hace 5m"},
		{"hours ago", now.Add(-3 * time.Hour), "hace 3h"},
		{"days ago", now.Add(-48 * time.Hour), "hace 2d"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			output := Ago(test.t)
			if output != test.expected {
				t.Errorf("Ago(%v) = %q; want %q", test.t, output, test.expected)
			}
		})
	}
}

func TestAgoFallsBackToDateAfterAMonth(t *testing.T) {
	old := time.Date(2020, 6, 15, 12, 0, 0, 0, time.Local)
	if output := Ago(old); output != Date(old) {
		t.Errorf("Ago(%v) = %q; want %q", old, output, Date(old))
	}
}

func TestDate(t *testing.T) {
	d := time.Date(2025, 1, 7, 15, 4, 5, 0, time.Local)
	if output := Date(d); output != "07/01/2025" {
		t.Errorf("Date(%v) = %q; want 07/01/2025", d, output)
	}
}
