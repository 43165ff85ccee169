package handler

import (
	"time"

	"github.com/shopspring/decimal"
)

// Расчет авторитетной стоимости брони. Клиентская сумма не принимается
// на веру: сервер пересчитывает ставка × площадь × дни и отклоняет
// расхождение.

// BookingDays возвращает число оплачиваемых суток между датами.
// Дата окончания в оплату не входит: [2024-06-01, 2024-06-10] - 9 суток.
func BookingDays(start, end time.Time) int {
	return int(end.Sub(start).Hours() / 24)
}

// CalculateBookingCost считает стоимость брони: ставка × площадь × дни.
// Арифметика на decimal, чтобы сумма не плавала на дробных ставках.
func CalculateBookingCost(dailyRate float64, requiredArea int, start, end time.Time) float64 {
	total := decimal.NewFromFloat(dailyRate).
		Mul(decimal.NewFromInt(int64(requiredArea))).
		Mul(decimal.NewFromInt(int64(BookingDays(start, end))))

	cost, _ := total.Round(2).Float64()
	return cost
}

// PriceMatches сравнивает заявленную клиентом сумму с рассчитанной.
// Допуск в одну копейку покрывает округление на стороне клиента.
func PriceMatches(claimed, expected float64) bool {
	diff := decimal.NewFromFloat(claimed).Sub(decimal.NewFromFloat(expected)).Abs()
	return diff.LessThanOrEqual(decimal.NewFromFloat(0.01))
}
