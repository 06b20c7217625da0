package directory

import (
	"context"
	"testing"

	"github.com/storetrack/attendance-backend-go/internal/domain/employee"
	"github.com/storetrack/attendance-backend-go/internal/domain/store"
	"github.com/storetrack/attendance-backend-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDirectoryService() DirectoryService {
	return NewDirectoryService(memory.NewEmployeeRepository(), memory.NewStoreRepository())
}

func TestEmployeeCRUD(t *testing.T) {
	ctx := context.Background()
	svc := newDirectoryService()

	created, err := svc.CreateEmployee(ctx, employee.CreateRequest{
		ID:        "EMP-1",
		FullName:  "Ana Martinez",
		StoreCode: "ST-01",
	})
	require.NoError(t, err)
	assert.Equal(t, "EMP-1", created.ID)
	// Status defaults to active when omitted.
	assert.Equal(t, string(employee.StatusActive), created.Status)

	got, err := svc.GetEmployee(ctx, "EMP-1")
	require.NoError(t, err)
	assert.Equal(t, "Ana Martinez", got.FullName)

	updated, err := svc.UpdateEmployee(ctx, "EMP-1", employee.UpdateRequest{
		FullName:  "Ana M. Martinez",
		StoreCode: "ST-02",
		Status:    string(employee.StatusInactive),
	})
	require.NoError(t, err)
	assert.Equal(t, "Ana M. Martinez", updated.FullName)
	assert.Equal(t, "ST-02", updated.StoreCode)
	assert.Equal(t, string(employee.StatusInactive), updated.Status)

	list, err := svc.ListEmployees(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, svc.DeleteEmployee(ctx, "EMP-1"))
	_, err = svc.GetEmployee(ctx, "EMP-1")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestCreateEmployeeDuplicateID(t *testing.T) {
	ctx := context.Background()
	svc := newDirectoryService()

	req := employee.CreateRequest{ID: "EMP-1", FullName: "Ana Martinez", StoreCode: "ST-01"}
	_, err := svc.CreateEmployee(ctx, req)
	require.NoError(t, err)

	_, err = svc.CreateEmployee(ctx, req)
	assert.ErrorIs(t, err, employee.ErrEmployeeIDExists)
}

func TestCreateEmployeeValidation(t *testing.T) {
	ctx := context.Background()
	svc := newDirectoryService()

	tests := []struct {
		name string
		req  employee.CreateRequest
	}{
		{"missing id", employee.CreateRequest{FullName: "Ana", StoreCode: "ST-01"}},
		{"missing name", employee.CreateRequest{ID: "EMP-1", StoreCode: "ST-01"}},
		{"missing store", employee.CreateRequest{ID: "EMP-1", FullName: "Ana"}},
		{"malformed id", employee.CreateRequest{ID: "EMP 1!", FullName: "Ana", StoreCode: "ST-01"}},
		{"bad status", employee.CreateRequest{ID: "EMP-1", FullName: "Ana", StoreCode: "ST-01", Status: "retired"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateEmployee(ctx, tt.req)
			assert.Error(t, err)
		})
	}
}

func TestSetEmployeePhoto(t *testing.T) {
	ctx := context.Background()
	svc := newDirectoryService()

	_, err := svc.CreateEmployee(ctx, employee.CreateRequest{
		ID: "EMP-1", FullName: "Ana Martinez", StoreCode: "ST-01",
	})
	require.NoError(t, err)

	updated, err := svc.SetEmployeePhoto(ctx, "EMP-1", "http://localhost:8080/uploads/photos/EMP-1/a.jpg")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/uploads/photos/EMP-1/a.jpg", updated.PhotoURL)
}

func TestStoreCRUD(t *testing.T) {
	ctx := context.Background()
	svc := newDirectoryService()

	created, err := svc.CreateStore(ctx, store.CreateRequest{
		Code: "ST-01", Name: "Downtown", Location: "5th Avenue",
	})
	require.NoError(t, err)
	assert.Equal(t, "ST-01", created.Code)

	_, err = svc.CreateStore(ctx, store.CreateRequest{Code: "ST-01", Name: "Other"})
	assert.ErrorIs(t, err, store.ErrStoreCodeExists)

	updated, err := svc.UpdateStore(ctx, "ST-01", store.UpdateRequest{
		Name: "Downtown Flagship", Location: "5th Avenue",
	})
	require.NoError(t, err)
	assert.Equal(t, "Downtown Flagship", updated.Name)

	require.NoError(t, svc.DeleteStore(ctx, "ST-01"))
	_, err = svc.GetStore(ctx, "ST-01")
	assert.ErrorIs(t, err, store.ErrStoreNotFound)
}

func TestDeleteStoreKeepsEmployees(t *testing.T) {
	ctx := context.Background()
	svc := newDirectoryService()

	_, err := svc.CreateStore(ctx, store.CreateRequest{Code: "ST-01", Name: "Downtown"})
	require.NoError(t, err)
	_, err = svc.CreateEmployee(ctx, employee.CreateRequest{
		ID: "EMP-1", FullName: "Ana Martinez", StoreCode: "ST-01",
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteStore(ctx, "ST-01"))

	// The employee survives with the dangling code.
	emp, err := svc.GetEmployee(ctx, "EMP-1")
	require.NoError(t, err)
	assert.Equal(t, "ST-01", emp.StoreCode)
}

func TestImportEmployees(t *testing.T) {
	ctx := context.Background()
	svc := newDirectoryService()

	rows := [][]string{
		{"id", "full_name", "photo_url", "store_code", "status"},
		{"EMP-1", "Ana Martinez", "", "ST-01", "active"},
		{"EMP-2", "Ben Okafor", "", "ST-01", ""},
		{"", "No ID", "", "ST-01", "active"},
		{"EMP-1", "Duplicate", "", "ST-01", "active"},
	}

	result, err := svc.ImportEmployees(ctx, rows)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Imported)
	assert.Len(t, result.Rejected, 2)

	list, err := svc.ListEmployees(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestImportEmployeesBadHeader(t *testing.T) {
	ctx := context.Background()
	svc := newDirectoryService()

	rows := [][]string{
		{"employee", "name"},
		{"EMP-1", "Ana Martinez"},
	}

	_, err := svc.ImportEmployees(ctx, rows)
	assert.Error(t, err)
}

func TestImportStores(t *testing.T) {
	ctx := context.Background()
	svc := newDirectoryService()

	rows := [][]string{
		{"code", "name", "location"},
		{"ST-01", "Downtown", "5th Avenue"},
		{"ST-02", "Uptown", ""},
		{"ST-01", "Duplicate", ""},
	}

	result, err := svc.ImportStores(ctx, rows)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Imported)
	assert.Len(t, result.Rejected, 1)
}
