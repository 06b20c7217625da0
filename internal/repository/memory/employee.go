package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/storetrack/attendance-backend-go/internal/domain/employee"
)

type EmployeeRepository struct {
	mu        sync.RWMutex
	employees map[string]employee.Employee
}

func NewEmployeeRepository() *EmployeeRepository {
	return &EmployeeRepository{
		employees: make(map[string]employee.Employee),
	}
}

func (r *EmployeeRepository) List(ctx context.Context) ([]employee.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]employee.Employee, 0, len(r.employees))
	for _, emp := range r.employees {
		out = append(out, emp)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].FullName != out[j].FullName {
			return out[i].FullName < out[j].FullName
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *EmployeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	emp, ok := r.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (r *EmployeeRepository) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.employees[emp.ID]; exists {
		return employee.Employee{}, employee.ErrEmployeeIDExists
	}
	now := time.Now()
	emp.CreatedAt = now
	emp.UpdatedAt = now
	r.employees[emp.ID] = emp
	return emp, nil
}

func (r *EmployeeRepository) Update(ctx context.Context, emp employee.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.employees[emp.ID]
	if !ok {
		return employee.ErrEmployeeNotFound
	}
	emp.CreatedAt = existing.CreatedAt
	emp.UpdatedAt = time.Now()
	r.employees[emp.ID] = emp
	return nil
}

func (r *EmployeeRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.employees[id]; !ok {
		return employee.ErrEmployeeNotFound
	}
	delete(r.employees, id)
	return nil
}
