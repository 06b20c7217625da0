package directory

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/storetrack/attendance-backend-go/internal/domain/employee"
	"github.com/storetrack/attendance-backend-go/internal/domain/store"
)

// DirectoryService owns the employee and store records the rules engine and
// report projection read from.
type DirectoryService interface {
	// Employee operations
	ListEmployees(ctx context.Context) ([]employee.Response, error)
	GetEmployee(ctx context.Context, id string) (employee.Response, error)
	CreateEmployee(ctx context.Context, req employee.CreateRequest) (employee.Response, error)
	UpdateEmployee(ctx context.Context, id string, req employee.UpdateRequest) (employee.Response, error)
	DeleteEmployee(ctx context.Context, id string) error
	SetEmployeePhoto(ctx context.Context, id string, photoURL string) (employee.Response, error)
	ImportEmployees(ctx context.Context, rows [][]string) (ImportResult, error)

	// Store operations
	ListStores(ctx context.Context) ([]store.Response, error)
	GetStore(ctx context.Context, code string) (store.Response, error)
	CreateStore(ctx context.Context, req store.CreateRequest) (store.Response, error)
	UpdateStore(ctx context.Context, code string, req store.UpdateRequest) (store.Response, error)
	DeleteStore(ctx context.Context, code string) error
	ImportStores(ctx context.Context, rows [][]string) (ImportResult, error)
}

type directoryServiceImpl struct {
	employeeRepo employee.Repository
	storeRepo    store.Repository
}

func NewDirectoryService(employeeRepo employee.Repository, storeRepo store.Repository) DirectoryService {
	return &directoryServiceImpl{
		employeeRepo: employeeRepo,
		storeRepo:    storeRepo,
	}
}

// ==================== EMPLOYEE OPERATIONS ====================

func (s *directoryServiceImpl) ListEmployees(ctx context.Context) ([]employee.Response, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	out := make([]employee.Response, 0, len(employees))
	for _, emp := range employees {
		out = append(out, employee.NewResponse(emp))
	}
	return out, nil
}

func (s *directoryServiceImpl) GetEmployee(ctx context.Context, id string) (employee.Response, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.Response{}, err
	}
	return employee.NewResponse(emp), nil
}

func (s *directoryServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateRequest) (employee.Response, error) {
	if err := req.Validate(); err != nil {
		return employee.Response{}, err
	}

	created, err := s.employeeRepo.Create(ctx, employee.Employee{
		ID:        req.ID,
		FullName:  req.FullName,
		PhotoURL:  req.PhotoURL,
		StoreCode: req.StoreCode,
		Status:    employee.Status(req.Status),
	})
	if err != nil {
		return employee.Response{}, err
	}

	slog.Info("Employee created", "id", created.ID, "store_code", created.StoreCode)
	return employee.NewResponse(created), nil
}

func (s *directoryServiceImpl) UpdateEmployee(ctx context.Context, id string, req employee.UpdateRequest) (employee.Response, error) {
	if err := req.Validate(); err != nil {
		return employee.Response{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.Response{}, err
	}

	emp.FullName = req.FullName
	emp.PhotoURL = req.PhotoURL
	emp.StoreCode = req.StoreCode
	emp.Status = employee.Status(req.Status)

	if err := s.employeeRepo.Update(ctx, emp); err != nil {
		return employee.Response{}, fmt.Errorf("failed to update employee: %w", err)
	}
	return employee.NewResponse(emp), nil
}

func (s *directoryServiceImpl) DeleteEmployee(ctx context.Context, id string) error {
	if err := s.employeeRepo.Delete(ctx, id); err != nil {
		return err
	}
	slog.Info("Employee deleted", "id", id)
	return nil
}

func (s *directoryServiceImpl) SetEmployeePhoto(ctx context.Context, id string, photoURL string) (employee.Response, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.Response{}, err
	}

	emp.PhotoURL = photoURL
	if err := s.employeeRepo.Update(ctx, emp); err != nil {
		return employee.Response{}, fmt.Errorf("failed to update employee photo: %w", err)
	}
	return employee.NewResponse(emp), nil
}

// ==================== STORE OPERATIONS ====================

func (s *directoryServiceImpl) ListStores(ctx context.Context) ([]store.Response, error) {
	stores, err := s.storeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list stores: %w", err)
	}

	out := make([]store.Response, 0, len(stores))
	for _, st := range stores {
		out = append(out, store.NewResponse(st))
	}
	return out, nil
}

func (s *directoryServiceImpl) GetStore(ctx context.Context, code string) (store.Response, error) {
	st, err := s.storeRepo.GetByCode(ctx, code)
	if err != nil {
		return store.Response{}, err
	}
	return store.NewResponse(st), nil
}

func (s *directoryServiceImpl) CreateStore(ctx context.Context, req store.CreateRequest) (store.Response, error) {
	if err := req.Validate(); err != nil {
		return store.Response{}, err
	}

	created, err := s.storeRepo.Create(ctx, store.Store{
		Code:     req.Code,
		Name:     req.Name,
		Location: req.Location,
	})
	if err != nil {
		return store.Response{}, err
	}

	slog.Info("Store created", "code", created.Code)
	return store.NewResponse(created), nil
}

func (s *directoryServiceImpl) UpdateStore(ctx context.Context, code string, req store.UpdateRequest) (store.Response, error) {
	if err := req.Validate(); err != nil {
		return store.Response{}, err
	}

	st, err := s.storeRepo.GetByCode(ctx, code)
	if err != nil {
		return store.Response{}, err
	}

	st.Name = req.Name
	st.Location = req.Location

	if err := s.storeRepo.Update(ctx, st); err != nil {
		return store.Response{}, fmt.Errorf("failed to update store: %w", err)
	}
	return store.NewResponse(st), nil
}

// DeleteStore removes the store only. Employees assigned to it keep their
// raw store code; display layers fall back to showing it as-is.
func (s *directoryServiceImpl) DeleteStore(ctx context.Context, code string) error {
	if err := s.storeRepo.Delete(ctx, code); err != nil {
		return err
	}
	slog.Info("Store deleted", "code", code)
	return nil
}
