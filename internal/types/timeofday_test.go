package types

import "testing"

func TestResolveTimeOfDay(t *testing.T) {
	tests := []struct {
		name           string
		explicit       TimeOfDay
		timestamp      string
		want           TimeOfDay
		wantOverridden bool
	}{
		{"no timestamp keeps default", Normal, "", Normal, false},
		{"evening rush", Normal, "2025-11-05T17:30:00", Peak, true},
		{"morning rush start", Normal, "2025-11-05T07:00:00", Peak, true},
		{"morning rush end is exclusive", Normal, "2025-11-05T09:00:00", Normal, false},
		{"evening rush end is exclusive", Normal, "2025-11-05T19:00:00", Normal, false},
		{"midday keeps explicit peak", Peak, "2025-11-05T12:00:00", Peak, false},
		{"offset hour read as written", Normal, "2025-11-05T08:15:00+03:00", Peak, true},
		{"space separator", Normal, "2025-11-05 18:05:00", Peak, true},
		{"fractional seconds", Normal, "2025-11-05T17:59:59.123456", Peak, true},
		{"date only is midnight", Normal, "2025-11-05", Normal, false},
		{"garbage ignored", Normal, "yesterday at five", Normal, false},
		{"garbage keeps explicit peak", Peak, "not-a-time", Peak, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, overridden := ResolveTimeOfDay(tt.explicit, tt.timestamp)
			if got != tt.want || overridden != tt.wantOverridden {
				t.Errorf("ResolveTimeOfDay() = (%q, %v), want (%q, %v)", got, overridden, tt.want, tt.wantOverridden)
			}
		})
	}
}

func TestNormalizeTimeOfDay(t *testing.T) {
	if NormalizeTimeOfDay("") != Normal {
		t.Error("empty should default to normal")
	}
	if NormalizeTimeOfDay(" PEAK ") != Peak {
		t.Error("expected peak")
	}
	if NormalizeTimeOfDay("rush") != TimeOfDay("rush") {
		t.Error("unknown values pass through")
	}
}
