package models

import (
	"math"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Reminder types
const (
	ReminderWatering    = "watering"
	ReminderFertilizing = "fertilizing"
	ReminderPruning     = "pruning"
	ReminderHealthCheck = "health_check"
)

// Reminder priorities
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Recurrence frequencies
const (
	FrequencyDaily    = "daily"
	FrequencyWeekly   = "weekly"
	FrequencyMonthly  = "monthly"
	FrequencySeasonal = "seasonal"
	FrequencyCustom   = "custom"
)

// CustomFrequency describes a custom recurrence interval. Absent components
// count as zero.
type CustomFrequency struct {
	Days   int `bson:"days,omitempty" json:"days,omitempty"`
	Weeks  int `bson:"weeks,omitempty" json:"weeks,omitempty"`
	Months int `bson:"months,omitempty" json:"months,omitempty"`
}

// CareReminder schedules a care task for a tree. Completed recurring reminders
// are kept as historical records; recurrence spawns a new document rather than
// reusing this one.
type CareReminder struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	TreeID          primitive.ObjectID `bson:"treeId" json:"treeId"`
	UserID          primitive.ObjectID `bson:"userId" json:"userId"`
	Type            string             `bson:"type" json:"type"`
	DueDate         time.Time          `bson:"dueDate" json:"dueDate"`
	IsCompleted     bool               `bson:"isCompleted" json:"isCompleted"`
	Priority        string             `bson:"priority" json:"priority"`
	Notes           string             `bson:"notes" json:"notes"`
	Frequency       string             `bson:"frequency" json:"frequency"`
	CustomFrequency *CustomFrequency   `bson:"customFrequency,omitempty" json:"customFrequency,omitempty"`
	LastCompleted   *time.Time         `bson:"lastCompleted,omitempty" json:"lastCompleted,omitempty"`
	NextDueDate     *time.Time         `bson:"nextDueDate,omitempty" json:"nextDueDate,omitempty"`
	IsRecurring     bool               `bson:"isRecurring" json:"isRecurring"`
	ReminderSent    bool               `bson:"reminderSent" json:"reminderSent"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// CalculateNextDueDate returns the next occurrence measured from now.
// Only meaningful for recurring reminders; non-recurring ones return the
// zero time.
func (r *CareReminder) CalculateNextDueDate(now time.Time) time.Time {
	if !r.IsRecurring {
		return time.Time{}
	}

	switch r.Frequency {
	case FrequencyDaily:
		return now.AddDate(0, 0, 1)
	case FrequencyWeekly:
		return now.AddDate(0, 0, 7)
	case FrequencyMonthly:
		return now.AddDate(0, 1, 0)
	case FrequencySeasonal:
		return now.AddDate(0, 3, 0)
	case FrequencyCustom:
		next := now
		if r.CustomFrequency != nil {
			next = next.AddDate(0, 0, r.CustomFrequency.Days)
			next = next.AddDate(0, 0, r.CustomFrequency.Weeks*7)
			next = next.AddDate(0, r.CustomFrequency.Months, 0)
		}
		return next
	default:
		return now
	}
}

// IsOverdue reports whether the reminder is past due and still open
func (r *CareReminder) IsOverdue(now time.Time) bool {
	return now.After(r.DueDate) && !r.IsCompleted
}

// DaysUntilDue returns the number of days until the due date, rounded up
func (r *CareReminder) DaysUntilDue(now time.Time) int {
	return int(math.Ceil(r.DueDate.Sub(now).Hours() / 24))
}

// NextOccurrence builds the successor reminder spawned when a recurring
// reminder is completed. The completed document keeps its history; the
// successor copies the schedule with the given due date.
func (r *CareReminder) NextOccurrence(dueDate, now time.Time) CareReminder {
	return CareReminder{
		ID:              primitive.NewObjectID(),
		TreeID:          r.TreeID,
		UserID:          r.UserID,
		Type:            r.Type,
		DueDate:         dueDate,
		Priority:        r.Priority,
		Notes:           r.Notes,
		Frequency:       r.Frequency,
		CustomFrequency: r.CustomFrequency,
		IsRecurring:     r.IsRecurring,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}
