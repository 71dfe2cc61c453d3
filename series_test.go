package etfwatch

import "testing"

func TestLookbackReturn(t *testing.T) {
	series := bars("100", "101", "102", "103", "104", "105", "110")
	tests := []struct {
		name string
		bars []Bar
		lb   Lookback
		want Percent
		ok   bool
	}{
		{"one day", series, OneDay, 4.76190, true},
		{"five day", series, FiveDay, 8.91089, true},
		{"one month needs 21 points", series, OneMonth, 0, false},
		{"too short", bars("100"), OneDay, 0, false},
		{"empty", nil, OneDay, 0, false},
		{"zero start", bars("0", "100"), OneDay, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := lookbackReturn(tt.bars, tt.lb)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if ok && !got.Equal(tt.want) {
				t.Errorf("return = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLookbackPoints(t *testing.T) {
	tests := []struct {
		lb     Lookback
		points int
		days   int
	}{
		{OneDay, 2, 14},
		{FiveDay, 6, 21},
		{OneMonth, 21, 60},
	}
	for _, tt := range tests {
		if got := tt.lb.points(); got != tt.points {
			t.Errorf("%s points() = %d, want %d", tt.lb, got, tt.points)
		}
		if got := tt.lb.fetchDays(); got != tt.days {
			t.Errorf("%s fetchDays() = %d, want %d", tt.lb, got, tt.days)
		}
	}
}

func TestParseLookback(t *testing.T) {
	if _, err := ParseLookback("2w"); err == nil {
		t.Error("ParseLookback(2w) should fail")
	}
	lb, err := ParseLookback("5d")
	if err != nil || lb != FiveDay {
		t.Errorf("ParseLookback(5d) = %v, %v", lb, err)
	}
}

func TestParseMarket(t *testing.T) {
	tests := []struct {
		in      string
		want    Market
		wantErr bool
	}{
		{"KR", Domestic, false},
		{"us", Foreign, false},
		{"JP", "", true},
	}
	for _, tt := range tests {
		got, err := ParseMarket(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseMarket(%q) error = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseMarket(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
