package helper

import (
	"fmt"
	"time"
	_ "time/tzdata"
)

const DefaultDateTimeLayout = "2006-01-02 15:04:05"

// Clock supplies the current time. It backs GORM's NowFunc so audit
// columns are always written in UTC.
type Clock func() time.Time

// NowUTC is the production Clock.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// ConvertToLocal converts a UTC instant into the named IANA zone.
func ConvertToLocal(utc time.Time, timeZoneID string) (time.Time, error) {
	loc, err := time.LoadLocation(timeZoneID)
	if err != nil {
		return time.Time{}, fmt.Errorf("unknown time zone %q: %w", timeZoneID, err)
	}
	return utc.In(loc), nil
}

// ConvertToUTC interprets the wall clock of local in the named zone and
// returns the matching UTC instant.
func ConvertToUTC(local time.Time, timeZoneID string) (time.Time, error) {
	loc, err := time.LoadLocation(timeZoneID)
	if err != nil {
		return time.Time{}, fmt.Errorf("unknown time zone %q: %w", timeZoneID, err)
	}
	wall := time.Date(local.Year(), local.Month(), local.Day(),
		local.Hour(), local.Minute(), local.Second(), local.Nanosecond(), loc)
	return wall.UTC(), nil
}

func FormatDateTime(t time.Time, layout string) string {
	if layout == "" {
		layout = DefaultDateTimeLayout
	}
	return t.Format(layout)
}

// CalculateAge returns full years elapsed between birthDate and now.
func CalculateAge(birthDate, now time.Time) int {
	age := now.Year() - birthDate.Year()
	if now.Month() < birthDate.Month() ||
		(now.Month() == birthDate.Month() && now.Day() < birthDate.Day()) {
		age--
	}
	if age < 0 {
		return 0
	}
	return age
}

func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// IsBusinessHour reports whether t falls in [startHour, endHour) on a weekday.
func IsBusinessHour(t time.Time, startHour, endHour int) bool {
	if IsWeekend(t) {
		return false
	}
	return t.Hour() >= startHour && t.Hour() < endHour
}
