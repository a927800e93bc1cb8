package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gatehouse/visitor-log/internal/domain"
	"github.com/gatehouse/visitor-log/internal/service"
)

func echoHostRepo() *mockHostRepo {
	return &mockHostRepo{
		create: func(_ context.Context, h domain.Host) (domain.Host, error) {
			h.ID = uuid.New()
			return h, nil
		},
	}
}

// ---- Create tests ----------------------------------------------------------

func TestHostService_Create_Valid(t *testing.T) {
	svc := service.NewHostService(echoHostRepo())

	got, err := svc.Create(context.Background(), "Prof. Sharma", "Computer Science")

	require.NoError(t, err)
	assert.Equal(t, "Prof. Sharma", got.Name)
	assert.Equal(t, "Computer Science", got.Department)
}

func TestHostService_Create_EmptyDepartment(t *testing.T) {
	svc := service.NewHostService(echoHostRepo())

	// Department is optional.
	_, err := svc.Create(context.Background(), "Admin Office", "")

	assert.NoError(t, err)
}

func TestHostService_Create_MissingName(t *testing.T) {
	svc := service.NewHostService(echoHostRepo())

	_, err := svc.Create(context.Background(), "   ", "Mechanical")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestHostService_Create_RepoError(t *testing.T) {
	repoErr := errors.New("db exploded")
	r := &mockHostRepo{
		create: func(_ context.Context, _ domain.Host) (domain.Host, error) {
			return domain.Host{}, repoErr
		},
	}
	svc := service.NewHostService(r)

	_, err := svc.Create(context.Background(), "Dr. Reddy", "Mechanical")

	assert.ErrorIs(t, err, repoErr)
}

// ---- List tests ------------------------------------------------------------

func TestHostService_List(t *testing.T) {
	hosts := []domain.Host{
		{ID: uuid.New(), Name: "Admin Office"},
		{ID: uuid.New(), Name: "Prof. Sharma"},
	}
	r := &mockHostRepo{
		list: func(_ context.Context) ([]domain.Host, error) { return hosts, nil },
	}
	svc := service.NewHostService(r)

	got, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestHostService_List_Empty(t *testing.T) {
	r := &mockHostRepo{
		list: func(_ context.Context) ([]domain.Host, error) { return nil, nil },
	}
	svc := service.NewHostService(r)

	got, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
