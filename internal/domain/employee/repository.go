package employee

import "context"

type EmployeeRepository interface {
	// List retrieves all employees ordered by name.
	List(ctx context.Context) ([]Employee, error)

	// GetByID retrieves a single employee.
	GetByID(ctx context.Context, id string) (Employee, error)
}
