package date

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{in: "2021-01-10", want: New(2021, time.January, 10)},
		{in: "2025-7-1", want: New(2025, time.July, 1)},
		{in: "01/10/2021", wantErr: true},
		{in: "not-a-date", wantErr: true},
	}
	for _, tc := range testCases {
		got, err := Parse(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("Parse(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if err == nil && got != tc.want {
			t.Errorf("Parse(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestParseUS(t *testing.T) {
	testCases := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{in: "01/10/2021", want: New(2021, time.January, 10)},
		{in: "7/1/2025", want: New(2025, time.July, 1)},
		{in: "2021-01-10", wantErr: true},
	}
	for _, tc := range testCases {
		got, err := ParseUS(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseUS(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if err == nil && got != tc.want {
			t.Errorf("ParseUS(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestCompare(t *testing.T) {
	a := New(2021, time.January, 10)
	b := New(2021, time.July, 20)
	if !a.Before(b) || b.Before(a) {
		t.Errorf("Before: %v should be before %v", a, b)
	}
	if !b.After(a) {
		t.Errorf("After: %v should be after %v", b, a)
	}
	if a.Compare(b) != -1 || b.Compare(a) != 1 || a.Compare(a) != 0 {
		t.Errorf("Compare: unexpected ordering between %v and %v", a, b)
	}
}

func TestNormalization(t *testing.T) {
	// Out-of-range day components normalize the same way time.Date does.
	got := New(2021, time.January, 32)
	want := New(2021, time.February, 1)
	if got != want {
		t.Errorf("New(2021, January, 32) = %v, want %v", got, want)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	d := New(2023, time.March, 15)
	raw, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	if string(raw) != `"2023-03-15"` {
		t.Errorf("Marshal() = %s, want %q", raw, "2023-03-15")
	}
	var back Date
	if err := json.Unmarshal(raw, &back); err != nil {
		t.Fatalf("Unmarshal() failed: %v", err)
	}
	if back != d {
		t.Errorf("round trip = %v, want %v", back, d)
	}
}
