package employee

import "context"

type EmployeeRepository interface {
	Create(ctx context.Context, e Employee) (Employee, error)

	// GetByID returns ErrEmployeeNotFound when no row matches.
	GetByID(ctx context.Context, id string) (Employee, error)

	// GetByEmail matches case-insensitively.
	GetByEmail(ctx context.Context, email string) (Employee, error)

	List(ctx context.Context, filter EmployeeFilter) ([]Employee, error)
}
