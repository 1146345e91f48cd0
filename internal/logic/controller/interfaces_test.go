package controller_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/skillcoder/vmkube-controller/internal/infra/shutdown"
	"github.com/skillcoder/vmkube-controller/internal/logic/controller"
	"github.com/skillcoder/vmkube-controller/internal/logic/controller/mocks"
)

var (
	_ controller.Repository = (*mocks.MockRepository)(nil)
	_ shutdown.Shutdowner   = (*controller.Service)(nil)
)

func TestRepository_ChildServiceObject(t *testing.T) {
	t.Parallel()

	repo := mocks.NewMockRepository(t)
	ctx := t.Context()

	want := &controller.ServiceObject{
		Name:      "vm-a",
		Namespace: "default",
		Selector:  map[string]string{"codesandbox.io/virtualmachine": "vm-a"},
		Port:      80,
	}

	repo.EXPECT().CreateServiceCommand(ctx, want).Return(nil).Once()
	repo.EXPECT().GetServiceQuery(ctx, "default", "vm-a").Return(want, nil).Once()

	var r controller.Repository = repo

	require.NoError(t, r.CreateServiceCommand(ctx, want))

	got, err := r.GetServiceQuery(ctx, "default", "vm-a")
	require.NoError(t, err)
	require.Equal(t, want, got)
}
