// internal/model/course.go
package model

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout は画面とのやり取りで使う日付の形式 (ISO 8601)
const DateLayout = "2006-01-02"

// DefaultCourseMonths は表にないコースの受講期間 (月数)
const DefaultCourseMonths = 6

// コース名
const (
	CourseJavaIntro     = "Java入門"
	CourseSpringPract   = "Spring実践"
	CourseWebAppDevelop = "Webアプリ開発"
)

// CalendarDate は時刻を持たない暦日です。ゼロ値は「未入力」を表します。
// 0001-01-01 も入力済みの日付として扱います。
type CalendarDate struct {
	t   time.Time
	set bool
}

// NewCalendarDate は年月日から CalendarDate を作ります。範囲外の日は time.Date と同じく繰り上がります。
func NewCalendarDate(year int, month time.Month, day int) CalendarDate {
	return CalendarDate{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC), set: true}
}

// ParseCalendarDate は "YYYY-MM-DD" を解釈します。空文字はゼロ値 (未入力) を返します。
func ParseCalendarDate(s string) (CalendarDate, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return CalendarDate{}, nil
	}
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return CalendarDate{}, fmt.Errorf("parse date %q: %w", s, ErrInvalidInput)
	}
	return CalendarDate{t: t, set: true}, nil
}

func (d CalendarDate) IsZero() bool {
	return !d.set
}

// AddMonths は月だけを進めます。日はそのままで、月末を越えた分は翌月に繰り越します
// (2023-01-31 + 1ヶ月 = 2023-03-03、2024-01-31 + 1ヶ月 = 2024-03-02)。
// 未入力はそのまま未入力を返します。
func (d CalendarDate) AddMonths(months int) CalendarDate {
	if !d.set {
		return d
	}
	return CalendarDate{t: d.t.AddDate(0, months, 0), set: true}
}

func (d CalendarDate) Before(o CalendarDate) bool {
	return d.t.Before(o.t)
}

func (d CalendarDate) After(o CalendarDate) bool {
	return d.t.After(o.t)
}

func (d CalendarDate) Equal(o CalendarDate) bool {
	return d.set == o.set && d.t.Equal(o.t)
}

func (d CalendarDate) Time() time.Time {
	return d.t
}

// String は ISO 8601 の日付を返します。ゼロ値は空文字。
func (d CalendarDate) String() string {
	if d.IsZero() {
		return ""
	}
	return d.t.Format(DateLayout)
}

func (d CalendarDate) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *CalendarDate) UnmarshalText(b []byte) error {
	parsed, err := ParseCalendarDate(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// DateRange はコースの開始日と終了日の組
type DateRange struct {
	Start CalendarDate `json:"start"`
	End   CalendarDate `json:"end"`
}

// Valid は End >= Start かどうか。手で終了日を書き換えた場合は崩れることがあります。
func (r DateRange) Valid() bool {
	return !r.End.Before(r.Start)
}

// CourseDurations はコース名 → 受講月数の表です。作成後は変更できません。
type CourseDurations struct {
	months        map[string]int
	defaultMonths int
}

// DefaultCourseTable は画面に組み込まれている標準のコース表 (呼ぶたびに新しいマップ)
func DefaultCourseTable() map[string]int {
	return map[string]int{
		CourseJavaIntro:     3,
		CourseSpringPract:   6,
		CourseWebAppDevelop: 8,
	}
}

func DefaultCourseDurations() CourseDurations {
	return NewCourseDurations(DefaultCourseTable(), DefaultCourseMonths)
}

// NewCourseDurations は表をコピーして保持します。defaultMonths が 0 以下なら DefaultCourseMonths。
func NewCourseDurations(months map[string]int, defaultMonths int) CourseDurations {
	if defaultMonths <= 0 {
		defaultMonths = DefaultCourseMonths
	}
	copied := make(map[string]int, len(months))
	for name, m := range months {
		copied[name] = m
	}
	return CourseDurations{months: copied, defaultMonths: defaultMonths}
}

// Months はコースの受講月数を返します。表にないコースは既定値。
func (c CourseDurations) Months(courseName string) int {
	if m, ok := c.months[courseName]; ok {
		return m
	}
	return c.DefaultMonths()
}

// Known は表に登録されたコースかどうか
func (c CourseDurations) Known(courseName string) bool {
	_, ok := c.months[courseName]
	return ok
}

func (c CourseDurations) DefaultMonths() int {
	if c.defaultMonths <= 0 {
		return DefaultCourseMonths
	}
	return c.defaultMonths
}
