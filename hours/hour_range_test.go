package hours

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fuinorg/objects4go/errors"
)

func TestIsValidHour(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"00:00", true},
		{"09:05", true},
		{"23:59", true},
		{"24:00", true},
		{"24:01", false},
		{"25:00", false},
		{"09:60", false},
		{"9:00", false},
		{"09-00", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidHour(tt.value))
		})
	}

	h, err := ParseHour("13:45")
	require.NoError(t, err)
	assert.Equal(t, 13*60+45, h.Minutes())
	assert.Equal(t, "13:45", h.String())

	_, err = ParseHour("9:00")
	var appErr *errors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "hour", appErr.Argument())
	assert.Equal(t, "9:00", appErr.Value())

	_, err = NewHour(MinutesPerDay + 1)
	assert.Error(t, err)
}

func TestIsValidHourRange(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"09:00-17:00", true},
		{"00:00-24:00", true},
		{"18:00-03:00", true},
		{"23:59-24:00", true},
		{"", false},
		{"09:00", false},
		{"09:00-", false},
		{"-17:00", false},
		{"9:00-17:00", false},
		{"09:00-17:00-18:00", false},
		{"09:00 -17:00", false},
		{"09:00-09:00", false},
		{"24:00-03:00", false},
		{"18:00-00:00", false},
		{"25:00-26:00", false},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidHourRange(tt.value))
		})
	}
}

func TestParseHourRangeError(t *testing.T) {
	_, err := ParseHourRange("18:00-00:00")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeValidation))
	assert.Contains(t, err.Error(), "18:00-00:00")
}

func TestNewHourRange(t *testing.T) {
	r, err := NewHourRange(9*60, 17*60)
	require.NoError(t, err)
	assert.Equal(t, "09:00-17:00", r.String())
	assert.Equal(t, "09:00", r.From().String())
	assert.Equal(t, "17:00", r.To().String())

	_, err = NewHourRange(600, 600)
	assert.Error(t, err)
}

func TestHourRangeNormalize(t *testing.T) {
	r := MustParseHourRange("18:00-03:00")
	assert.False(t, r.IsNormalized())
	assert.Equal(t, []HourRange{
		MustParseHourRange("18:00-24:00"),
		MustParseHourRange("00:00-03:00"),
	}, r.Normalize())
	assert.Equal(t, 9*60, r.Duration())

	same := MustParseHourRange("09:00-17:00")
	assert.Equal(t, []HourRange{same}, same.Normalize())
	assert.Equal(t, 8*60, same.Duration())
}

func TestHourRangeOverlaps(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"09:00-12:00", "11:00-13:00", true},
		{"09:00-12:00", "12:00-13:00", false},
		{"09:00-12:00", "07:00-08:00", false},
		{"22:00-02:00", "23:00-01:00", true},
		{"22:00-02:00", "01:00-03:00", false},
		{"22:00-02:00", "23:30-24:00", true},
	}
	for _, tt := range tests {
		t.Run(tt.a+" "+tt.b, func(t *testing.T) {
			a, b := MustParseHourRange(tt.a), MustParseHourRange(tt.b)
			assert.Equal(t, tt.want, a.Overlaps(b))
			assert.Equal(t, tt.want, b.Overlaps(a))
		})
	}
}

func TestHourRangeContains(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"09:00-17:00", "10:00-11:00", true},
		{"09:00-17:00", "09:00-17:00", true},
		{"09:00-17:00", "08:00-10:00", false},
		{"09:00-17:00", "22:00-02:00", false},
		{"22:00-03:00", "23:00-01:00", true},
		{"22:00-03:00", "22:30-24:00", true},
		{"22:00-03:00", "01:00-02:00", false},
		{"18:00-03:00", "01:00-02:00", false},
		{"22:00-03:00", "21:00-23:00", false},
	}
	for _, tt := range tests {
		t.Run(tt.a+" "+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.want, MustParseHourRange(tt.a).Contains(MustParseHourRange(tt.b)))
		})
	}
}

func TestHourRangeContainsImpliesOverlaps(t *testing.T) {
	pairs := [][2]string{
		{"18:00-03:00", "01:00-02:00"},
		{"18:00-03:00", "19:00-20:00"},
		{"22:00-03:00", "23:00-01:00"},
		{"09:00-17:00", "10:00-11:00"},
	}
	for _, p := range pairs {
		t.Run(p[0]+" "+p[1], func(t *testing.T) {
			a, b := MustParseHourRange(p[0]), MustParseHourRange(p[1])
			if a.Contains(b) {
				assert.True(t, a.Overlaps(b))
			}
			assert.Equal(t, a.Overlaps(b), a.Contains(b))
		})
	}
}

func TestHourRangeCompare(t *testing.T) {
	a := MustParseHourRange("09:00-10:00")
	b := MustParseHourRange("09:00-11:00")
	c := MustParseHourRange("08:00-12:00")

	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, a.Compare(c))
	assert.Equal(t, 0, a.Compare(a))
	assert.True(t, a.Equals(MustParseHourRange("09:00-10:00")))
}

func TestHourRangeText(t *testing.T) {
	var r HourRange
	require.NoError(t, r.UnmarshalText([]byte("18:00-03:00")))
	text, err := r.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "18:00-03:00", string(text))

	assert.Error(t, r.UnmarshalText([]byte("nope")))
	assert.Panics(t, func() { MustParseHourRange("nope") })
}
