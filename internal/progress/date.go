package progress

import (
	"database/sql"
	"reflect"
	"strings"
	"time"

	"google.golang.org/protobuf/types/known/timestamppb"
	"gorm.io/datatypes"
)

const dateLayout = "2006-01-02"

// timestampWrapper is satisfied by store-native timestamp types such as timestamppb.Timestamp.
type timestampWrapper interface {
	AsTime() time.Time
}

type timeConverter interface {
	ToTime() time.Time
}

// NormalizeDate converts a date-ish value into the calendar day it denotes,
// at midnight in loc. Instants (time.Time, timestamp wrappers) are first moved
// into loc; wall dates (datatypes.Date, "2006-01-02" strings) keep their
// year/month/day as written. The second result is false when v is absent,
// zero or of an unrecognized type.
func NormalizeDate(v any, loc *time.Location) (time.Time, bool) {
	if loc == nil {
		loc = time.UTC
	}

	switch x := v.(type) {
	case nil:
		return time.Time{}, false
	case time.Time:
		return instantDate(x, loc)
	case *time.Time:
		if x == nil {
			return time.Time{}, false
		}
		return instantDate(*x, loc)
	case datatypes.Date:
		return wallDate(time.Time(x), loc)
	case *datatypes.Date:
		if x == nil {
			return time.Time{}, false
		}
		return wallDate(time.Time(*x), loc)
	case sql.NullTime:
		if !x.Valid {
			return time.Time{}, false
		}
		return instantDate(x.Time, loc)
	case *timestamppb.Timestamp:
		if x == nil || !x.IsValid() {
			return time.Time{}, false
		}
		return instantDate(x.AsTime(), loc)
	case string:
		return parseDate(x, loc)
	case timestampWrapper:
		if isNilPointer(x) {
			return time.Time{}, false
		}
		return instantDate(x.AsTime(), loc)
	case timeConverter:
		if isNilPointer(x) {
			return time.Time{}, false
		}
		return instantDate(x.ToTime(), loc)
	}
	return time.Time{}, false
}

func instantDate(t time.Time, loc *time.Location) (time.Time, bool) {
	if t.IsZero() {
		return time.Time{}, false
	}
	return DateOf(t.In(loc)), true
}

func wallDate(t time.Time, loc *time.Location) (time.Time, bool) {
	if t.IsZero() {
		return time.Time{}, false
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc), true
}

func parseDate(s string, loc *time.Location) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.ParseInLocation(dateLayout, s, loc); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return instantDate(t, loc)
	}
	return time.Time{}, false
}

func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Ptr && rv.IsNil()
}

// DateOf truncates t to midnight of its calendar day, keeping its location.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// WeekStart returns the Monday of the week containing t.
func WeekStart(t time.Time) time.Time {
	d := DateOf(t)
	weekday := int(d.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	return d.AddDate(0, 0, -(weekday - 1))
}

// EndOfDay returns the last representable instant of t's calendar day.
func EndOfDay(t time.Time) time.Time {
	return DateOf(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}
