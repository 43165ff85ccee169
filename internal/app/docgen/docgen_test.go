package docgen

import (
	"strings"
	"testing"
	"time"

	"backend/internal/app/ds"
)

func TestPurchaseOrder(t *testing.T) {
	data := PurchaseOrderData{
		Tender: ds.Tender{
			ID:        42,
			Title:     "Логистика в регионы",
			Category:  "Логистика",
			Budget:    150000,
			CreatedAt: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		},
		Quote: ds.Quote{
			ID:      7,
			Budget:  135000,
			Comment: "Скидка при годовом контракте",
		},
		Company: ds.User{
			CompanyName: "ООО Ромашка",
			FullName:    "Иванов Иван",
			Email:       "ivanov@example.com",
		},
		Dealer: ds.User{
			CompanyName: "ООО Склад-Сервис",
			FullName:    "Петров Петр",
		},
		GeneratedAt: time.Date(2024, 6, 20, 0, 0, 0, 0, time.UTC),
	}

	doc := PurchaseOrder(data)

	for _, want := range []string{
		"ЗАКАЗ-НАРЯД",
		"по тендеру №42 от 01.06.2024",
		"Дата формирования: 20.06.2024",
		"ООО Ромашка",
		"ООО Склад-Сервис",
		"Логистика в регионы",
		"150000.00 руб.",
		"135000.00 руб.",
		"Скидка при годовом контракте",
		"Предложение №7 одобрено заказчиком.",
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("в заказ-наряде нет строки %q\n%s", want, doc)
		}
	}
}

func TestPurchaseOrder_EmptyFieldsDashed(t *testing.T) {
	data := PurchaseOrderData{
		Tender:      ds.Tender{ID: 1, Title: "Тест"},
		Quote:       ds.Quote{ID: 2, Budget: 100},
		GeneratedAt: time.Now(),
	}

	doc := PurchaseOrder(data)

	// Пустые реквизиты сторон заменяются прочерком
	if !strings.Contains(doc, "—") {
		t.Error("пустые поля должны заменяться прочерком")
	}
	// Пустые категория и комментарий не печатаются
	if strings.Contains(doc, "Категория:") {
		t.Error("пустая категория не должна печататься")
	}
	if strings.Contains(doc, "Комментарий исполнителя:") {
		t.Error("пустой комментарий не должен печататься")
	}
}
