package records

import "taskflow/internal/core/ports"

// SeedCategories and SeedTasks provide the demo working set used when the
// store driver is "memory".

func SeedCategories() []ports.RawRecord {
	return []ports.RawRecord{
		{fieldID: 1, fieldName: "Work", fieldColor: "blue", fieldTaskCount: 0},
		{fieldID: 2, fieldName: "Personal", fieldColor: "green", fieldTaskCount: 0},
		{fieldID: 3, fieldName: "Shopping", fieldColor: "amber", fieldTaskCount: 0},
	}
}

func SeedTasks() []ports.RawRecord {
	return []ports.RawRecord{
		{
			fieldID:          1,
			fieldTitle:       "Prepare quarterly report",
			fieldDescription: "Collect numbers from finance and draft the slides",
			fieldPriority:    "High Priority",
			fieldDueDate:     "2026-09-15",
			fieldCompleted:   "false",
			fieldCreatedAt:   "2026-08-20T09:15:00Z",
			fieldCompletedAt: nil,
			fieldCategoryID:  1,
		},
		{
			fieldID:          2,
			fieldTitle:       "Book dentist appointment",
			fieldDescription: "",
			fieldPriority:    "Medium Priority",
			fieldDueDate:     nil,
			fieldCompleted:   "false",
			fieldCreatedAt:   "2026-08-22T18:40:00Z",
			fieldCompletedAt: nil,
			fieldCategoryID:  2,
		},
		{
			fieldID:          3,
			fieldTitle:       "Buy groceries",
			fieldDescription: "Milk, eggs, coffee",
			fieldPriority:    "Low Priority",
			fieldDueDate:     "2026-08-30",
			fieldCompleted:   "true",
			fieldCreatedAt:   "2026-08-25T08:00:00Z",
			fieldCompletedAt: "2026-08-29T17:30:00Z",
			fieldCategoryID:  3,
		},
		{
			fieldID:          4,
			fieldTitle:       "Review pull requests",
			fieldDescription: "",
			fieldPriority:    "Medium Priority",
			fieldDueDate:     "2026-09-02",
			fieldCompleted:   "false",
			fieldCreatedAt:   "2026-08-28T11:05:00Z",
			fieldCompletedAt: nil,
			fieldCategoryID:  1,
		},
	}
}
