package service

import (
	"testing"
	"time"

	"github.com/iliyamo/hotel-front-desk/internal/model"
)

func notifTypes(ns []Notification) map[NotificationType]int {
	m := map[NotificationType]int{}
	for _, n := range ns {
		m[n.Type]++
	}
	return m
}

func TestDeriveNotificationsCheckInAndOutToday(t *testing.T) {
	now := time.Date(2023, time.June, 1, 15, 30, 0, 0, time.UTC)
	reservations := []model.Reservation{
		{ID: 1, GuestName: "Ada", CheckIn: "2023-06-01", CheckOut: "2023-06-05", TotalAmount: 100, DownPaymentAmount: 100},
		{ID: 2, GuestName: "Ben", CheckIn: "2023-05-28", CheckOut: "2023-06-01", TotalAmount: 200, DownPaymentAmount: 200},
		{ID: 3, GuestName: "Cleo", CheckIn: "2023-06-02", CheckOut: "2023-06-04", TotalAmount: 300, DownPaymentAmount: 300},
	}

	got := DeriveNotifications(reservations, now, time.UTC)
	types := notifTypes(got)
	if types[NotificationCheckIn] != 1 || types[NotificationCheckOut] != 1 {
		t.Errorf("want one check-in and one check-out alert, got %v", types)
	}
	if types[NotificationPayment] != 0 {
		t.Errorf("fully paid reservations must not raise payment alerts, got %v", types)
	}
}

func TestDeriveNotificationsSameDayInAndOut(t *testing.T) {
	now := time.Date(2023, time.June, 1, 9, 0, 0, 0, time.UTC)
	reservations := []model.Reservation{
		{ID: 5, GuestName: "Dana", CheckIn: "2023-06-01", CheckOut: "2023-06-01", TotalAmount: 50, DownPaymentAmount: 50},
	}

	got := DeriveNotifications(reservations, now, time.UTC)
	if len(got) != 2 {
		t.Fatalf("checkIn == checkOut == today must raise both alerts, got %d: %v", len(got), got)
	}
	if got[0].Type != NotificationCheckIn || got[1].Type != NotificationCheckOut {
		t.Errorf("want check-in then check-out, got %v then %v", got[0].Type, got[1].Type)
	}
	if got[0].ID != "checkin-5" || got[1].ID != "checkout-5" {
		t.Errorf("ids must be derived from the reservation id, got %q / %q", got[0].ID, got[1].ID)
	}
}

func TestDeriveNotificationsPaymentDueRegardlessOfDate(t *testing.T) {
	now := time.Date(2023, time.June, 15, 12, 0, 0, 0, time.UTC)
	reservations := []model.Reservation{
		{ID: 9, GuestName: "Eve", CheckIn: "2023-07-01", CheckOut: "2023-07-03", TotalAmount: 400, DownPaymentAmount: 100},
	}

	got := DeriveNotifications(reservations, now, time.UTC)
	if len(got) != 1 || got[0].Type != NotificationPayment {
		t.Fatalf("want a single payment alert, got %v", got)
	}
	if got[0].Message != "Payment due: Eve" {
		t.Errorf("unexpected message %q", got[0].Message)
	}
}

func TestDeriveNotificationsTripleAlert(t *testing.T) {
	now := time.Date(2023, time.June, 1, 0, 0, 0, 0, time.UTC)
	reservations := []model.Reservation{
		{ID: 4, GuestName: "Fay", CheckIn: "2023-06-01", CheckOut: "2023-06-01", TotalAmount: 300, DownPaymentAmount: 100},
	}

	got := DeriveNotifications(reservations, now, time.UTC)
	types := notifTypes(got)
	if len(got) != 3 || types[NotificationCheckIn] != 1 || types[NotificationCheckOut] != 1 || types[NotificationPayment] != 1 {
		t.Errorf("one reservation can raise all three alerts, got %v", got)
	}
}

func TestDeriveNotificationsTimezoneBoundary(t *testing.T) {
	// 23:30 on May 31 in UTC is already June 1 in UTC+2.
	now := time.Date(2023, time.May, 31, 23, 30, 0, 0, time.UTC)
	plus2 := time.FixedZone("UTC+2", 2*60*60)
	reservations := []model.Reservation{
		{ID: 1, GuestName: "Gil", CheckIn: "2023-06-01", CheckOut: "2023-06-02", TotalAmount: 0, DownPaymentAmount: 0},
	}

	if got := DeriveNotifications(reservations, now, time.UTC); len(got) != 0 {
		t.Errorf("in UTC it is still May 31, want no alerts, got %v", got)
	}
	got := DeriveNotifications(reservations, now, plus2)
	if len(got) != 1 || got[0].Type != NotificationCheckIn {
		t.Errorf("in UTC+2 it is June 1, want a check-in alert, got %v", got)
	}
}

func TestDeriveNotificationsEmpty(t *testing.T) {
	if got := DeriveNotifications(nil, time.Now(), time.UTC); len(got) != 0 {
		t.Errorf("no reservations must derive no alerts, got %v", got)
	}
}
