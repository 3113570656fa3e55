package reserve_visit

import (
	"fmt"
	"time"

	"github.com/m04kA/FLM-VisitService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.FlatID <= 0 {
		return fmt.Errorf("%w: flatID must be positive", ErrInvalidInput)
	}

	if req.VisitorID <= 0 {
		return fmt.Errorf("%w: visitorID must be positive", ErrInvalidInput)
	}

	if req.StartTime <= 0 {
		return fmt.Errorf("%w: startTime must be positive", ErrInvalidInput)
	}

	return nil
}

// validateStartTime проверяет бизнес-правила для времени начала визита.
// Порядок проверок фиксирован: кратность слоту, дневное окно, минимальный
// срок уведомления, попадание в следующую неделю. Все проверки выполняются
// до какой-либо мутации хранилища.
func validateStartTime(startTime int64, now time.Time, loc *time.Location) error {
	if startTime%domain.SlotDurationSeconds != 0 {
		return fmt.Errorf("%w: start time should be multiple of %s",
			ErrTimeNotAligned, domain.SlotDurationString)
	}

	local := time.Unix(startTime, 0).In(loc)
	sinceMidnight := secondsSinceMidnight(local)
	if sinceMidnight < domain.FirstSlotTime || sinceMidnight > domain.LastSlotTime {
		return fmt.Errorf("%w: start time should be between %s and %s",
			ErrOutsideVisitingHours, domain.FirstSlotTimeString, domain.LastSlotTimeString)
	}

	nowSec := now.Unix()
	if startTime-nowSec < domain.MinNoticeSeconds {
		return fmt.Errorf("%w: start time should be no sooner than %s from now",
			ErrTooSoonToVisit, domain.MinNoticeString)
	}

	weekAnchor := dateOf(time.Unix(nowSec, 0).In(loc)).AddDate(0, 0, 7)
	if !isSameWeek(weekAnchor, dateOf(local)) {
		return fmt.Errorf("%w: start time should be in the next week", ErrNotInNextWeek)
	}

	return nil
}

// secondsSinceMidnight возвращает секунды с локальной полуночи даты t.
// Считается через разницу с началом дня, а не через часы и минуты,
// чтобы переход на летнее время не искажал значение.
func secondsSinceMidnight(t time.Time) int64 {
	midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return int64(t.Sub(midnight) / time.Second)
}

// dateOf нормализует локальную календарную дату t в полночь UTC,
// чтобы разница дат в днях не зависела от сдвигов таймзоны
func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// isSameWeek проверяет, что две даты (полуночи UTC) лежат в одной
// календарной неделе понедельник-воскресенье.
// Даты упорядочиваются так, что a >= b; при разнице >= 7 дней недели
// заведомо разные, иначе недели совпадают тогда и только тогда, когда
// номер дня недели a не меньше номера дня недели b (Пн=1 ... Вс=7) -
// это ловит пересечение границы недели внутри интервала до 6 дней.
func isSameWeek(date1, date2 time.Time) bool {
	a, b := date1, date2
	if b.After(a) {
		a, b = b, a
	}

	dayDiff := int(a.Sub(b) / (24 * time.Hour))
	if dayDiff >= 7 {
		return false
	}

	return isoWeekday(a) >= isoWeekday(b)
}

// isoWeekday возвращает номер дня недели по ISO: Пн=1 ... Вс=7
func isoWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}
