package employee

import "context"

type EmployeeService interface {
	// ListEmployees returns the identity pairs for the selection UI.
	ListEmployees(ctx context.Context) (ListEmployeesResponse, error)
}
