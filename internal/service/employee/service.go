package employee

import (
	"context"
	"fmt"

	"github.com/attendlyhq/attendly-backend-go/internal/domain/employee"
)

type EmployeeServiceImpl struct {
	employee.EmployeeRepository
}

func NewEmployeeService(employeeRepository employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{
		EmployeeRepository: employeeRepository,
	}
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context) (employee.ListEmployeesResponse, error) {
	employees, err := s.EmployeeRepository.List(ctx)
	if err != nil {
		return employee.ListEmployeesResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, employee.EmployeeResponse{
			EmployeeID:   emp.ID,
			EmployeeName: emp.Name,
		})
	}

	return employee.ListEmployeesResponse{
		TotalCount: len(responses),
		Employees:  responses,
	}, nil
}
