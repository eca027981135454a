package progress

import (
	"database/sql"
	"testing"
	"time"

	"google.golang.org/protobuf/types/known/timestamppb"
	"gorm.io/datatypes"
)

type storeTimestamp struct{ t time.Time }

func (s *storeTimestamp) ToTime() time.Time { return s.t }

func TestNormalizeDate(t *testing.T) {
	utcEvening := time.Date(2024, time.March, 10, 22, 30, 0, 0, time.UTC)
	plus3 := time.FixedZone("UTC+3", 3*3600)
	var nilTime *time.Time
	var nilWrapper *storeTimestamp

	tests := []struct {
		name   string
		in     any
		loc    *time.Location
		want   time.Time
		wantOK bool
	}{
		{name: "nil", in: nil},
		{name: "zero time", in: time.Time{}},
		{name: "nil pointer", in: nilTime},
		{name: "unsupported", in: 42},
		{name: "empty string", in: "  "},
		{name: "garbage string", in: "next tuesday"},
		{name: "invalid null time", in: sql.NullTime{}},
		{name: "nil wrapper", in: nilWrapper},
		{name: "nil timestamppb", in: (*timestamppb.Timestamp)(nil)},
		{name: "time", in: utcEvening, want: time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC), wantOK: true},
		{name: "time into location", in: utcEvening, loc: plus3, want: time.Date(2024, time.March, 11, 0, 0, 0, 0, plus3), wantOK: true},
		{name: "time pointer", in: &utcEvening, want: time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC), wantOK: true},
		{name: "null time", in: sql.NullTime{Time: utcEvening, Valid: true}, want: time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC), wantOK: true},
		{name: "timestamppb", in: timestamppb.New(utcEvening), loc: plus3, want: time.Date(2024, time.March, 11, 0, 0, 0, 0, plus3), wantOK: true},
		{name: "wrapper", in: &storeTimestamp{t: utcEvening}, want: time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC), wantOK: true},
		{name: "wall date keeps its day", in: datatypes.Date(time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)), loc: time.FixedZone("UTC-5", -5*3600), want: time.Date(2024, time.March, 10, 0, 0, 0, 0, time.FixedZone("UTC-5", -5*3600)), wantOK: true},
		{name: "date string", in: "2024-03-10", loc: plus3, want: time.Date(2024, time.March, 10, 0, 0, 0, 0, plus3), wantOK: true},
		{name: "rfc3339 string", in: "2024-03-10T22:30:00Z", loc: plus3, want: time.Date(2024, time.March, 11, 0, 0, 0, 0, plus3), wantOK: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NormalizeDate(tt.in, tt.loc)
			if ok != tt.wantOK {
				t.Fatalf("ok: got=%v want=%v", ok, tt.wantOK)
			}
			if ok && !got.Equal(tt.want) {
				t.Fatalf("date: got=%v want=%v", got, tt.want)
			}
		})
	}
}

func TestWeekStartAndEndOfDay(t *testing.T) {
	cases := map[time.Time]time.Time{
		at(2024, time.January, 1, 5):   day(2024, time.January, 1),
		at(2024, time.January, 3, 23):  day(2024, time.January, 1),
		at(2024, time.January, 7, 12):  day(2024, time.January, 1),
		at(2024, time.January, 8, 0):   day(2024, time.January, 8),
		at(2023, time.December, 31, 0): day(2023, time.December, 25),
	}
	for in, want := range cases {
		if got := WeekStart(in); !got.Equal(want) {
			t.Fatalf("WeekStart(%v): got=%v want=%v", in, got, want)
		}
	}

	end := EndOfDay(at(2024, time.January, 2, 10))
	if !end.Before(day(2024, time.January, 3)) || end.Before(at(2024, time.January, 2, 23)) {
		t.Fatalf("EndOfDay: got=%v", end)
	}
}
