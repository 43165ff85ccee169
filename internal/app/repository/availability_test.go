package repository

import (
	"testing"
	"time"

	"backend/internal/app/ds"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestRangesOverlap(t *testing.T) {
	tests := []struct {
		name   string
		aStart string
		aEnd   string
		bStart string
		bEnd   string
		want   bool
	}{
		{"полное пересечение", "2024-06-01", "2024-06-10", "2024-06-05", "2024-06-15", true},
		{"вложенный интервал", "2024-06-01", "2024-06-30", "2024-06-10", "2024-06-15", true},
		{"без пересечения", "2024-06-01", "2024-06-10", "2024-06-11", "2024-06-20", false},
		{"совпадающие границы: начало нового в день окончания существующего", "2024-06-01", "2024-06-10", "2024-06-10", "2024-06-20", true},
		{"совпадающие границы: окончание нового в день начала существующего", "2024-06-10", "2024-06-20", "2024-06-01", "2024-06-10", true},
		{"одинаковые интервалы", "2024-06-01", "2024-06-10", "2024-06-01", "2024-06-10", true},
		{"однодневные совпадающие", "2024-06-05", "2024-06-05", "2024-06-05", "2024-06-05", true},
		{"соседние через день", "2024-06-01", "2024-06-09", "2024-06-10", "2024-06-20", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := RangesOverlap(date(tc.aStart), date(tc.aEnd), date(tc.bStart), date(tc.bEnd))
			if got != tc.want {
				t.Errorf("RangesOverlap(%s-%s, %s-%s) = %v, want %v",
					tc.aStart, tc.aEnd, tc.bStart, tc.bEnd, got, tc.want)
			}
		})
	}
}

func TestCommittedArea(t *testing.T) {
	// Площадь 1000 кв. футов: 600 занято pending-бронью 01-10 июня
	bookings := []ds.Booking{
		{
			StartDate:    date("2024-06-01"),
			EndDate:      date("2024-06-10"),
			RequiredArea: 600,
			Status:       ds.BookingPending,
		},
	}

	// Запрос 05-15 июня пересекается: занято 600
	got := CommittedArea(bookings, date("2024-06-05"), date("2024-06-15"))
	if got != 600 {
		t.Errorf("CommittedArea = %d, want 600", got)
	}

	// Запрос 11-20 июня не пересекается: занято 0
	got = CommittedArea(bookings, date("2024-06-11"), date("2024-06-20"))
	if got != 0 {
		t.Errorf("CommittedArea = %d, want 0", got)
	}
}

func TestCommittedArea_StatusFilter(t *testing.T) {
	start, end := date("2024-06-01"), date("2024-06-30")

	bookings := []ds.Booking{
		{StartDate: start, EndDate: end, RequiredArea: 100, Status: ds.BookingPending},
		{StartDate: start, EndDate: end, RequiredArea: 200, Status: ds.BookingConfirmed},
		{StartDate: start, EndDate: end, RequiredArea: 300, Status: ds.BookingRejected},
		{StartDate: start, EndDate: end, RequiredArea: 400, Status: ds.BookingCancelled},
		{StartDate: start, EndDate: end, RequiredArea: 500, Status: ds.BookingCompleted},
	}

	// Площадь резервируют только pending и confirmed
	got := CommittedArea(bookings, start, end)
	if got != 300 {
		t.Errorf("CommittedArea = %d, want 300", got)
	}
}

func TestRemainingArea(t *testing.T) {
	bookings := []ds.Booking{
		{
			StartDate:    date("2024-06-01"),
			EndDate:      date("2024-06-10"),
			RequiredArea: 600,
			Status:       ds.BookingConfirmed,
		},
	}

	// 1000 - 600 = 400: запрос на 500 не пройдет
	remaining := RemainingArea(1000, bookings, date("2024-06-05"), date("2024-06-15"))
	if remaining != 400 {
		t.Errorf("RemainingArea = %d, want 400", remaining)
	}
	if 500 <= remaining {
		t.Error("запрос 500 кв. футов не должен пройти при остатке 400")
	}

	// Вне занятого интервала остаток полный
	remaining = RemainingArea(1000, bookings, date("2024-06-11"), date("2024-06-20"))
	if remaining != 1000 {
		t.Errorf("RemainingArea = %d, want 1000", remaining)
	}
}

func TestRemainingArea_Deterministic(t *testing.T) {
	bookings := []ds.Booking{
		{StartDate: date("2024-06-01"), EndDate: date("2024-06-10"), RequiredArea: 250, Status: ds.BookingPending},
		{StartDate: date("2024-06-05"), EndDate: date("2024-06-20"), RequiredArea: 150, Status: ds.BookingConfirmed},
	}

	first := RemainingArea(1000, bookings, date("2024-06-07"), date("2024-06-09"))
	for i := 0; i < 10; i++ {
		if got := RemainingArea(1000, bookings, date("2024-06-07"), date("2024-06-09")); got != first {
			t.Fatalf("повторный вызов вернул %d, первый - %d", got, first)
		}
	}
	if first != 600 {
		t.Errorf("RemainingArea = %d, want 600", first)
	}
}
