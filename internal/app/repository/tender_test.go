package repository

import (
	"testing"
	"time"

	"backend/internal/app/ds"
)

func TestEffectiveTenderStatus(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	past := now.Add(-24 * time.Hour)
	future := now.Add(24 * time.Hour)

	tests := []struct {
		name     string
		status   string
		deadline time.Time
		want     string
	}{
		{"активный с будущим дедлайном остается активным", ds.TenderActive, future, ds.TenderActive},
		{"активный с истёкшим дедлайном отдается как closed", ds.TenderActive, past, ds.TenderClosed},
		{"черновик не трогаем даже после дедлайна", ds.TenderDraft, past, ds.TenderDraft},
		{"закрытый остается закрытым", ds.TenderClosed, future, ds.TenderClosed},
		{"дедлайн ровно сейчас - еще активен", ds.TenderActive, now, ds.TenderActive},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tender := &ds.Tender{Status: tc.status, Deadline: tc.deadline}
			if got := EffectiveTenderStatus(tender, now); got != tc.want {
				t.Errorf("EffectiveTenderStatus(%q, deadline=%v) = %q, want %q",
					tc.status, tc.deadline, got, tc.want)
			}
		})
	}
}

func TestEffectiveTenderStatus_DoesNotMutate(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	tender := &ds.Tender{Status: ds.TenderActive, Deadline: now.Add(-time.Hour)}

	if got := EffectiveTenderStatus(tender, now); got != ds.TenderClosed {
		t.Fatalf("EffectiveTenderStatus = %q, want %q", got, ds.TenderClosed)
	}
	// Сохраненный статус не меняется, закрытие существует только на чтении
	if tender.Status != ds.TenderActive {
		t.Errorf("сохраненный статус изменился на %q", tender.Status)
	}
}
