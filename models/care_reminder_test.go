package models

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCalculateNextDueDate(t *testing.T) {
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		reminder CareReminder
		want     time.Time
	}{
		{
			"daily",
			CareReminder{Frequency: FrequencyDaily, IsRecurring: true},
			now.AddDate(0, 0, 1),
		},
		{
			"weekly",
			CareReminder{Frequency: FrequencyWeekly, IsRecurring: true},
			now.AddDate(0, 0, 7),
		},
		{
			"monthly",
			CareReminder{Frequency: FrequencyMonthly, IsRecurring: true},
			now.AddDate(0, 1, 0),
		},
		{
			"seasonal",
			CareReminder{Frequency: FrequencySeasonal, IsRecurring: true},
			now.AddDate(0, 3, 0),
		},
		{
			"custom combines days weeks and months",
			CareReminder{
				Frequency:       FrequencyCustom,
				IsRecurring:     true,
				CustomFrequency: &CustomFrequency{Days: 2, Weeks: 1, Months: 1},
			},
			now.AddDate(0, 0, 9).AddDate(0, 1, 0),
		},
		{
			"custom without interval stays put",
			CareReminder{Frequency: FrequencyCustom, IsRecurring: true},
			now,
		},
		{
			"unknown frequency stays put",
			CareReminder{Frequency: "fortnightly", IsRecurring: true},
			now,
		},
		{
			"non-recurring returns zero time",
			CareReminder{Frequency: FrequencyWeekly, IsRecurring: false},
			time.Time{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.reminder.CalculateNextDueDate(now)
			if !got.Equal(tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestIsOverdue(t *testing.T) {
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)

	open := CareReminder{DueDate: now.AddDate(0, 0, -1)}
	if !open.IsOverdue(now) {
		t.Error("Expected past-due open reminder to be overdue")
	}

	done := CareReminder{DueDate: now.AddDate(0, 0, -1), IsCompleted: true}
	if done.IsOverdue(now) {
		t.Error("Expected completed reminder not to be overdue")
	}

	future := CareReminder{DueDate: now.AddDate(0, 0, 2)}
	if future.IsOverdue(now) {
		t.Error("Expected future reminder not to be overdue")
	}
}

func TestDaysUntilDue(t *testing.T) {
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)

	reminder := CareReminder{DueDate: now.Add(36 * time.Hour)}
	if got := reminder.DaysUntilDue(now); got != 2 {
		t.Errorf("Expected 2 days (rounded up), got %d", got)
	}

	overdue := CareReminder{DueDate: now.Add(-12 * time.Hour)}
	if got := overdue.DaysUntilDue(now); got != 0 {
		t.Errorf("Expected 0 for an overdue reminder, got %d", got)
	}
}

func TestNextOccurrence(t *testing.T) {
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)
	completed := now.AddDate(0, 0, -1)

	original := CareReminder{
		ID:            primitive.NewObjectID(),
		TreeID:        primitive.NewObjectID(),
		UserID:        primitive.NewObjectID(),
		Type:          ReminderWatering,
		DueDate:       completed,
		IsCompleted:   true,
		Priority:      PriorityHigh,
		Notes:         "water deeply",
		Frequency:     FrequencyWeekly,
		IsRecurring:   true,
		LastCompleted: &now,
	}

	due := original.CalculateNextDueDate(now)
	next := original.NextOccurrence(due, now)

	if next.ID == original.ID {
		t.Error("Expected the successor to be a new document")
	}
	if next.TreeID != original.TreeID || next.UserID != original.UserID {
		t.Error("Expected the successor to keep the tree and owner")
	}
	if next.Type != original.Type || next.Priority != original.Priority || next.Notes != original.Notes {
		t.Error("Expected the successor to copy the schedule fields")
	}
	if !next.DueDate.Equal(due) {
		t.Errorf("Expected due date %v, got %v", due, next.DueDate)
	}
	if next.IsCompleted {
		t.Error("Expected the successor to start open")
	}
	if next.LastCompleted != nil {
		t.Error("Expected the successor to have no completion history")
	}
	if !next.IsRecurring {
		t.Error("Expected the successor to stay recurring")
	}
}
