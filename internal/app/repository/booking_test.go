package repository

import (
	"testing"

	"backend/internal/app/ds"
)

func TestBookingActionStatus(t *testing.T) {
	tests := []struct {
		action string
		status string
		ok     bool
	}{
		{"confirm", ds.BookingConfirmed, true},
		{"reject", ds.BookingRejected, true},
		{"complete", ds.BookingCompleted, true},
		{"cancel", ds.BookingCancelled, true},
		{"approve", "", false},
		{"", "", false},
	}

	for _, tc := range tests {
		status, ok := BookingActionStatus(tc.action)
		if ok != tc.ok || status != tc.status {
			t.Errorf("BookingActionStatus(%q) = (%q, %v), want (%q, %v)",
				tc.action, status, ok, tc.status, tc.ok)
		}
	}
}

func TestCanTransitionBooking(t *testing.T) {
	allowed := map[[2]string]bool{
		{ds.BookingPending, ds.BookingConfirmed}:   true,
		{ds.BookingPending, ds.BookingRejected}:    true,
		{ds.BookingPending, ds.BookingCancelled}:   true,
		{ds.BookingConfirmed, ds.BookingCompleted}: true,
		{ds.BookingConfirmed, ds.BookingCancelled}: true,
	}

	statuses := []string{
		ds.BookingPending, ds.BookingConfirmed, ds.BookingRejected,
		ds.BookingCompleted, ds.BookingCancelled,
	}

	for _, from := range statuses {
		for _, to := range statuses {
			want := allowed[[2]string{from, to}]
			if got := CanTransitionBooking(from, to); got != want {
				t.Errorf("CanTransitionBooking(%q, %q) = %v, want %v", from, to, got, want)
			}
		}
	}
}

func TestCanTransitionBooking_TerminalStatuses(t *testing.T) {
	terminal := []string{ds.BookingRejected, ds.BookingCompleted, ds.BookingCancelled}
	targets := []string{
		ds.BookingPending, ds.BookingConfirmed, ds.BookingRejected,
		ds.BookingCompleted, ds.BookingCancelled,
	}

	for _, from := range terminal {
		for _, to := range targets {
			if CanTransitionBooking(from, to) {
				t.Errorf("терминальный статус %q не должен допускать переход в %q", from, to)
			}
		}
	}
}
