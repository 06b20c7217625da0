package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storetrack/attendance-backend-go/internal/domain/employee"
)

func TestEmployeeListOrdersByName(t *testing.T) {
	ctx := context.Background()
	repo := NewEmployeeRepository()

	for _, emp := range []employee.Employee{
		{ID: "EMP-1", FullName: "Carla Reyes", StoreCode: "ST-01", Status: employee.StatusActive},
		{ID: "EMP-2", FullName: "Ana Martinez", StoreCode: "ST-01", Status: employee.StatusActive},
		{ID: "EMP-3", FullName: "Ben Okafor", StoreCode: "ST-02", Status: employee.StatusActive},
	} {
		_, err := repo.Create(ctx, emp)
		require.NoError(t, err)
	}

	list, err := repo.List(ctx)
	require.NoError(t, err)

	names := make([]string, 0, len(list))
	for _, emp := range list {
		names = append(names, emp.FullName)
	}
	assert.Equal(t, []string{"Ana Martinez", "Ben Okafor", "Carla Reyes"}, names)
}
