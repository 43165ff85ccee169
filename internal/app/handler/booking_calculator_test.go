package handler

import (
	"testing"
	"time"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestBookingDays(t *testing.T) {
	tests := []struct {
		start string
		end   string
		want  int
	}{
		{"2024-06-01", "2024-06-10", 9},
		{"2024-06-01", "2024-06-02", 1},
		{"2024-06-01", "2024-07-01", 30},
	}

	for _, tc := range tests {
		if got := BookingDays(day(tc.start), day(tc.end)); got != tc.want {
			t.Errorf("BookingDays(%s, %s) = %d, want %d", tc.start, tc.end, got, tc.want)
		}
	}
}

func TestCalculateBookingCost(t *testing.T) {
	tests := []struct {
		name      string
		dailyRate float64
		area      int
		start     string
		end       string
		want      float64
	}{
		{"целая ставка", 10.0, 100, "2024-06-01", "2024-06-10", 9000.00},
		{"дробная ставка", 0.5, 250, "2024-06-01", "2024-06-08", 875.00},
		{"ставка с копейками", 1.37, 300, "2024-06-01", "2024-06-04", 1233.00},
		{"одни сутки", 99.99, 1, "2024-06-01", "2024-06-02", 99.99},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := CalculateBookingCost(tc.dailyRate, tc.area, day(tc.start), day(tc.end))
			if got != tc.want {
				t.Errorf("CalculateBookingCost = %.2f, want %.2f", got, tc.want)
			}
		})
	}
}

func TestPriceMatches(t *testing.T) {
	tests := []struct {
		name     string
		claimed  float64
		expected float64
		want     bool
	}{
		{"точное совпадение", 9000.00, 9000.00, true},
		{"расхождение в копейку допустимо", 9000.01, 9000.00, true},
		{"расхождение в копейку вниз допустимо", 8999.99, 9000.00, true},
		{"расхождение в две копейки отклоняется", 9000.02, 9000.00, false},
		{"произвольная сумма отклоняется", 1.00, 9000.00, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := PriceMatches(tc.claimed, tc.expected); got != tc.want {
				t.Errorf("PriceMatches(%.2f, %.2f) = %v, want %v",
					tc.claimed, tc.expected, got, tc.want)
			}
		})
	}
}

func TestParseDateRange(t *testing.T) {
	futureStart := time.Now().AddDate(0, 1, 0).Format(dateLayout)
	futureEnd := time.Now().AddDate(0, 1, 10).Format(dateLayout)

	if _, _, err := parseDateRange(futureStart, futureEnd); err != nil {
		t.Errorf("валидный интервал отклонен: %v", err)
	}

	// Окончание должно быть строго позже начала
	if _, _, err := parseDateRange(futureStart, futureStart); err == nil {
		t.Error("интервал с совпадающими датами должен отклоняться")
	}

	// Начало в прошлом
	if _, _, err := parseDateRange("2020-01-01", futureEnd); err == nil {
		t.Error("начало в прошлом должно отклоняться")
	}

	// Мусор вместо даты
	if _, _, err := parseDateRange("not-a-date", futureEnd); err == nil {
		t.Error("неверный формат даты должен отклоняться")
	}
}
