package docgen

import (
	"fmt"
	"strings"
	"time"

	"backend/internal/app/ds"
)

// Данные для формирования заказ-наряда: тендер, одобренное предложение
// и профили обеих сторон
type PurchaseOrderData struct {
	Tender      ds.Tender
	Quote       ds.Quote
	Company     ds.User
	Dealer      ds.User
	GeneratedAt time.Time
}

const dateLayout = "02.01.2006"

// PurchaseOrder формирует текст заказ-наряда по тендеру и одобренному
// предложению. Чистая функция форматирования, без состояния.
func PurchaseOrder(data PurchaseOrderData) string {
	var b strings.Builder

	line := strings.Repeat("=", 60)

	b.WriteString(line + "\n")
	b.WriteString("                      ЗАКАЗ-НАРЯД\n")
	fmt.Fprintf(&b, "            по тендеру №%d от %s\n", data.Tender.ID, data.Tender.CreatedAt.Format(dateLayout))
	b.WriteString(line + "\n\n")

	fmt.Fprintf(&b, "Дата формирования: %s\n\n", data.GeneratedAt.Format(dateLayout))

	b.WriteString("ЗАКАЗЧИК\n")
	fmt.Fprintf(&b, "  Организация:  %s\n", orDash(data.Company.CompanyName))
	fmt.Fprintf(&b, "  Представитель: %s\n", orDash(data.Company.FullName))
	fmt.Fprintf(&b, "  Email:        %s\n\n", orDash(data.Company.Email))

	b.WriteString("ИСПОЛНИТЕЛЬ\n")
	fmt.Fprintf(&b, "  Организация:  %s\n", orDash(data.Dealer.CompanyName))
	fmt.Fprintf(&b, "  Представитель: %s\n", orDash(data.Dealer.FullName))
	fmt.Fprintf(&b, "  Email:        %s\n\n", orDash(data.Dealer.Email))

	b.WriteString("ПРЕДМЕТ\n")
	fmt.Fprintf(&b, "  Тендер:       %s\n", data.Tender.Title)
	if data.Tender.Category != "" {
		fmt.Fprintf(&b, "  Категория:    %s\n", data.Tender.Category)
	}
	if data.Tender.Description != "" {
		fmt.Fprintf(&b, "  Описание:     %s\n", data.Tender.Description)
	}
	fmt.Fprintf(&b, "  Бюджет тендера:  %.2f руб.\n", data.Tender.Budget)
	fmt.Fprintf(&b, "  Сумма предложения: %.2f руб.\n", data.Quote.Budget)
	if data.Quote.Comment != "" {
		fmt.Fprintf(&b, "  Комментарий исполнителя: %s\n", data.Quote.Comment)
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "Предложение №%d одобрено заказчиком.\n", data.Quote.ID)
	b.WriteString(line + "\n")

	return b.String()
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}
