package chrono

import (
	"errors"
	"math"
	"testing"
)

func TestNewDuration(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []int64{0, 1, 59, 86400, math.MaxInt64}
		for _, s := range tests {
			got, err := NewDuration(s)
			if err != nil {
				t.Errorf("NewDuration(%v) failed: %v", s, err)
				continue
			}
			if got.Seconds() != s {
				t.Errorf("NewDuration(%v).Seconds() = %v, want %v", s, got.Seconds(), s)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []int64{-1, -86400, math.MinInt64}
		for _, s := range tests {
			_, err := NewDuration(s)
			if !errors.Is(err, ErrInvalidDuration) {
				t.Errorf("NewDuration(%v) error = %v, want %v", s, err, ErrInvalidDuration)
			}
		}
	})
}

func TestMustNewDuration(t *testing.T) {
	t.Run("error", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("MustNewDuration(-1) did not panic")
			}
		}()
		MustNewDuration(-1)
	})
}

func TestParseDuration(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			s    string
			want int64
		}{
			{"0", 0},
			{"60", 60},
			{"7776000", 7776000},
		}
		for _, tt := range tests {
			got, err := ParseDuration(tt.s)
			if err != nil {
				t.Errorf("ParseDuration(%q) failed: %v", tt.s, err)
				continue
			}
			if got.Seconds() != tt.want {
				t.Errorf("ParseDuration(%q) = %v, want %vs", tt.s, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			s    string
			want error
		}{
			"empty":    {"", ErrInvalidNumber},
			"fraction": {"1.5", ErrInvalidNumber},
			"letters":  {"1d", ErrInvalidNumber},
			"negative": {"-1", ErrInvalidDuration},
		}
		for name, tt := range tests {
			t.Run(name, func(t *testing.T) {
				_, err := ParseDuration(tt.s)
				if !errors.Is(err, tt.want) {
					t.Errorf("ParseDuration(%q) error = %v, want %v", tt.s, err, tt.want)
				}
			})
		}
	})
}

func TestDuration_Constants(t *testing.T) {
	tests := []struct {
		d    Duration
		want int64
	}{
		{Second, 1},
		{Minute, 60},
		{Hour, 3600},
		{Day, 86400},
		{Week, 604800},
		{Year, 31556952},
	}
	for _, tt := range tests {
		if got := tt.d.Seconds(); got != tt.want {
			t.Errorf("%v.Seconds() = %v, want %v", tt.d, got, tt.want)
		}
	}
}

func TestDuration_Add(t *testing.T) {
	got, err := Day.Add(Hour)
	if err != nil {
		t.Fatalf("%v.Add(%v) failed: %v", Day, Hour, err)
	}
	if got.Seconds() != 90000 {
		t.Errorf("%v.Add(%v) = %v, want 90000s", Day, Hour, got)
	}

	_, err = MustNewDuration(math.MaxInt64).Add(Second)
	if !errors.Is(err, ErrInvalidDuration) {
		t.Errorf("MaxInt64.Add(1s) error = %v, want %v", err, ErrInvalidDuration)
	}
}

func TestDuration_Mul(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			d    Duration
			n    int64
			want int64
		}{
			{Day, 0, 0},
			{Day, 1, 86400},
			{Day, 90, 7776000},
			{Duration{}, math.MaxInt64, 0},
		}
		for _, tt := range tests {
			got, err := tt.d.Mul(tt.n)
			if err != nil {
				t.Errorf("%v.Mul(%v) failed: %v", tt.d, tt.n, err)
				continue
			}
			if got.Seconds() != tt.want {
				t.Errorf("%v.Mul(%v) = %v, want %vs", tt.d, tt.n, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			d Duration
			n int64
		}{
			"negative": {Day, -1},
			"overflow": {Day, math.MaxInt64},
		}
		for name, tt := range tests {
			t.Run(name, func(t *testing.T) {
				_, err := tt.d.Mul(tt.n)
				if !errors.Is(err, ErrInvalidScalar) {
					t.Errorf("%v.Mul(%v) error = %v, want %v", tt.d, tt.n, err, ErrInvalidScalar)
				}
			})
		}
	})
}

func TestDuration_MulFloat(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			d    Duration
			f    float64
			want int64
		}{
			{Day, 0, 0},
			{Day, 1, 86400},
			{Day, 0.5, 43200},
			{Day, 1.5, 129600},
			{Second, 0.9, 0},
			{MustNewDuration(7), 0.5, 3},
			{Hour, 2.25, 8100},
		}
		for _, tt := range tests {
			got, err := tt.d.MulFloat(tt.f)
			if err != nil {
				t.Errorf("%v.MulFloat(%v) failed: %v", tt.d, tt.f, err)
				continue
			}
			if got.Seconds() != tt.want {
				t.Errorf("%v.MulFloat(%v) = %v, want %vs", tt.d, tt.f, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			d Duration
			f float64
		}{
			"nan":      {Day, math.NaN()},
			"inf":      {Day, math.Inf(1)},
			"neg inf":  {Day, math.Inf(-1)},
			"negative": {Day, -0.5},
			"overflow": {Year, 1e12},
		}
		for name, tt := range tests {
			t.Run(name, func(t *testing.T) {
				_, err := tt.d.MulFloat(tt.f)
				if !errors.Is(err, ErrInvalidScalar) {
					t.Errorf("%v.MulFloat(%v) error = %v, want %v", tt.d, tt.f, err, ErrInvalidScalar)
				}
			})
		}
	})
}

func TestDuration_Days(t *testing.T) {
	tests := []struct {
		d    Duration
		want float64
	}{
		{Duration{}, 0},
		{Day, 1},
		{Hour, 1.0 / 24},
		{MustNewDuration(90 * 86400), 90},
	}
	for _, tt := range tests {
		if got := tt.d.Days(); got != tt.want {
			t.Errorf("%v.Days() = %v, want %v", tt.d, got, tt.want)
		}
	}
}
