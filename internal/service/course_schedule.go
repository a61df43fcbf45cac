// internal/service/course_schedule.go
package service

import (
	"fmt"
	"log/slog"
	"strings"

	"go_student_management/internal/model"
)

// CourseScheduleCalculator はコース名と開始日から終了日を求めます。
type CourseScheduleCalculator struct {
	durations model.CourseDurations
	logger    *slog.Logger
}

// NewCourseScheduleCalculator はコース表を受け取って計算機を作ります。logger が nil なら slog.Default()。
func NewCourseScheduleCalculator(durations model.CourseDurations, logger *slog.Logger) *CourseScheduleCalculator {
	if logger == nil {
		logger = slog.Default()
	}
	return &CourseScheduleCalculator{
		durations: durations,
		logger:    logger,
	}
}

// ComputeEndDate は開始日をコースの月数だけ進めた日を返します。
// コース名か開始日が未入力なら false (終了日欄はそのままにする)。
func (c *CourseScheduleCalculator) ComputeEndDate(courseName string, start model.CalendarDate) (model.CalendarDate, bool) {
	if courseName == "" || start.IsZero() {
		return model.CalendarDate{}, false
	}

	months := c.durations.Months(courseName)
	if !c.durations.Known(courseName) {
		c.logger.Debug("Unknown course, using default duration",
			slog.String("course_name", courseName),
			slog.Int("months", months),
		)
	}

	end := start.AddMonths(months)
	c.logger.Debug("End date calculated",
		slog.String("course_name", courseName),
		slog.Int("months", months),
		slog.String("start", start.String()),
		slog.String("end", end.String()),
	)
	return end, true
}

// DateRange は開始日と計算した終了日の組を返します。
func (c *CourseScheduleCalculator) DateRange(courseName string, start model.CalendarDate) (model.DateRange, bool) {
	end, ok := c.ComputeEndDate(courseName, start)
	if !ok {
		return model.DateRange{}, false
	}
	return model.DateRange{Start: start, End: end}, true
}

// ComputeEndDateISO は画面の文字列のまま計算します。
// 未入力の場合は model.ErrSkip、日付として読めない場合は model.ErrInvalidInput を返します。
func (c *CourseScheduleCalculator) ComputeEndDateISO(courseName, startISO string) (string, error) {
	if courseName == "" || strings.TrimSpace(startISO) == "" {
		return "", model.ErrSkip
	}
	start, err := model.ParseCalendarDate(startISO)
	if err != nil {
		return "", fmt.Errorf("course start date: %w", err)
	}
	end, ok := c.ComputeEndDate(courseName, start)
	if !ok {
		return "", model.ErrSkip
	}
	return end.String(), nil
}

// Durations は計算に使っているコース表
func (c *CourseScheduleCalculator) Durations() model.CourseDurations {
	return c.durations
}
