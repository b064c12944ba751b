package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewTimeStringFromString_Valid(t *testing.T) {
	ts, err := NewTimeStringFromString("09:30")

	assert.NoError(t, err)
	assert.Equal(t, "09:30", ts.String())
}

func TestNewTimeStringFromString_Invalid(t *testing.T) {
	cases := []string{"9:30", "25:00", "09:60", "0930", "", "morning"}

	for _, raw := range cases {
		_, err := NewTimeStringFromString(raw)
		assert.ErrorIs(t, err, ErrInvalidTimeString, "input %q", raw)
	}
}

func TestTimeString_Validate_RequiresCanonicalForm(t *testing.T) {
	assert.NoError(t, TimeString("09:30").Validate())

	// Неканоничное "9:30" сортировалось бы после "18:00"
	assert.ErrorIs(t, TimeString("9:30").Validate(), ErrInvalidTimeString)
	assert.ErrorIs(t, TimeString("09:5").Validate(), ErrInvalidTimeString)
}

func TestNewTimeString_FromTime(t *testing.T) {
	ts := NewTimeString(time.Date(2025, 9, 15, 14, 5, 33, 0, time.UTC))

	assert.Equal(t, TimeString("14:05"), ts)
}

func TestTimeString_Ordering(t *testing.T) {
	early := TimeString("09:00")
	late := TimeString("17:30")

	assert.True(t, early.IsBefore(late))
	assert.True(t, late.IsAfter(early))
	assert.False(t, early.IsAfter(late))
	assert.False(t, early.IsBefore(early))
}

func TestTimeString_Minutes(t *testing.T) {
	minutes, err := TimeString("10:45").Minutes()

	assert.NoError(t, err)
	assert.Equal(t, 10*60+45, minutes)
}

func TestTimeString_AddMinutes(t *testing.T) {
	result, err := TimeString("09:00").AddMinutes(90)

	assert.NoError(t, err)
	assert.Equal(t, TimeString("10:30"), result)
}

func TestTimeString_AddMinutes_PastMidnight(t *testing.T) {
	_, err := TimeString("23:30").AddMinutes(60)

	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_AddMinutes_MidnightRejected(t *testing.T) {
	// Ровно полночь — уже следующий день
	_, err := TimeString("23:00").AddMinutes(60)

	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_IsZero(t *testing.T) {
	assert.True(t, TimeString("").IsZero())
	assert.False(t, TimeString("00:00").IsZero())
}
