package hours_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fuinorg/objects4go/errors"
	"github.com/fuinorg/objects4go/hours"
	"github.com/fuinorg/objects4go/validation"
)

type shop struct {
	Name  string `json:"name" validate:"required"`
	Hours string `json:"hours" validate:"required,weeklyopeninghours"`
	Lunch string `json:"lunch" validate:"omitempty,hourranges"`
	Day   string `json:"day" validate:"dayoftheweek"`
}

func newEngine(t *testing.T) *validation.Engine {
	t.Helper()
	engine := validation.NewEngine()
	require.NoError(t, hours.RegisterValidations(engine))
	return engine
}

func TestRegisterValidations(t *testing.T) {
	engine := newEngine(t)
	for _, tag := range []string{
		hours.TagHourRange,
		hours.TagHourRanges,
		hours.TagDayOfTheWeek,
		hours.TagMultiDayOfTheWeek,
		hours.TagDayOpeningHours,
		hours.TagWeeklyOpeningHours,
	} {
		assert.True(t, engine.HasTag(tag), tag)
	}
}

func TestEngineStruct(t *testing.T) {
	engine := newEngine(t)

	valid := shop{Name: "Bakery", Hours: "Mon-Fri 06:00-18:00,Sat 06:00-12:00", Lunch: "12:00-13:00"}
	assert.NoError(t, engine.Struct(valid))

	invalid := shop{Name: "Bakery", Hours: "Mon 00:00-24:00,Mon 01:00-02:00", Day: "Someday"}
	err := engine.Struct(invalid)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeValidation))

	var appErr *errors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Contains(t, appErr.Details, "shop.hours")
	assert.Contains(t, appErr.Details, "shop.day")
	assert.NotContains(t, appErr.Details, "shop.lunch")
}

func TestEngineVar(t *testing.T) {
	engine := newEngine(t)
	assert.NoError(t, engine.Var("Mon/Wed-Fri", hours.TagMultiDayOfTheWeek))
	assert.Error(t, engine.Var("Fri-Mon", hours.TagMultiDayOfTheWeek))
	assert.NoError(t, engine.Var("18:00-03:00", hours.TagHourRange))
	assert.Error(t, engine.Var("PH 18:00-03:00", hours.TagDayOpeningHours))
}

func TestTextTypes(t *testing.T) {
	assert.True(t, validation.IsValid[hours.HourRange]("09:00-10:00"))
	assert.False(t, validation.IsValid[hours.HourRange]("10:00-10:00"))
	assert.True(t, validation.IsValid[hours.WeeklyOpeningHours]("Mon-Fri 09:00-17:00"))
	assert.False(t, validation.IsValid[hours.DayOfTheWeek]("Funday"))

	w, err := validation.ValueOf[hours.WeeklyOpeningHours]("Sun 22:00-02:00")
	require.NoError(t, err)
	assert.Equal(t, "MON 00:00-02:00,SUN 22:00-24:00", w.String())

	check := validation.Text[hours.HourRanges]("hour ranges")
	assert.Nil(t, check("09:00-12:00+13:00-14:00"))
	assert.NotNil(t, check("09:00-12:00+11:00-14:00"))
}
