package employee

import "time"

// Employee is the identity shown in the selection UI; everything the engine
// needs about a person travels on the attendance records themselves.
type Employee struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
