package hours

import "github.com/fuinorg/objects4go/validation"

// Validation tags installed by RegisterValidations.
const (
	TagHourRange          = "hourrange"
	TagHourRanges         = "hourranges"
	TagDayOfTheWeek       = "dayoftheweek"
	TagMultiDayOfTheWeek  = "multidayoftheweek"
	TagDayOpeningHours    = "dayopeninghours"
	TagWeeklyOpeningHours = "weeklyopeninghours"
)

// RegisterValidations installs string tags for every type of this package,
// so that struct fields like
//
//	OpeningHours string `validate:"required,weeklyopeninghours"`
//
// are checked by engine.
func RegisterValidations(engine *validation.Engine) error {
	tags := map[string]validation.Validator[string]{
		TagHourRange:          validation.Text[HourRange]("hour range"),
		TagHourRanges:         validation.Text[HourRanges]("hour ranges"),
		TagDayOfTheWeek:       validation.Text[DayOfTheWeek]("day of the week"),
		TagMultiDayOfTheWeek:  validation.Text[MultiDayOfTheWeek]("multi day of the week"),
		TagDayOpeningHours:    validation.Text[DayOpeningHours]("day opening hours"),
		TagWeeklyOpeningHours: validation.Text[WeeklyOpeningHours]("weekly opening hours"),
	}
	for tag, check := range tags {
		if err := engine.RegisterText(tag, check); err != nil {
			return err
		}
	}
	return nil
}
