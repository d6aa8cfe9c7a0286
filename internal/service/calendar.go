package service

import "time"

// DayRange returns [midnight, next midnight) of the day containing t, in t's location.
func DayRange(t time.Time) (time.Time, time.Time) {
	y, m, d := t.Date()
	from := time.Date(y, m, d, 0, 0, 0, 0, t.Location())
	return from, from.AddDate(0, 0, 1)
}

// WeekRange returns the Monday based week containing t.
func WeekRange(t time.Time) (time.Time, time.Time) {
	day, _ := DayRange(t)
	sinceMonday := (int(day.Weekday()) + 6) % 7
	from := day.AddDate(0, 0, -sinceMonday)
	return from, from.AddDate(0, 0, 7)
}

func MonthRange(year int, month time.Month, loc *time.Location) (time.Time, time.Time) {
	from := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	return from, from.AddDate(0, 1, 0)
}
