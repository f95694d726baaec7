package cmd

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"regmut.dev/pkg/regmut/internal/controller"
	"regmut.dev/pkg/regmut/internal/domain"
)

func TestMutatorsCmd_ListsEverything(t *testing.T) {
	mockWorkflow := useMockWorkflow(t)
	cmd, _ := newTestRoot(t, newMutatorsCmd())

	mockWorkflow.EXPECT().List(mock.Anything, domain.ListArgs{Format: controller.FormatTable}).Return(nil).Once()

	cmd.SetArgs([]string{"mutators"})
	require.NoError(t, cmd.Execute())
}

func TestMutatorsCmd_LevelsAndFormat(t *testing.T) {
	mockWorkflow := useMockWorkflow(t)
	cmd, _ := newTestRoot(t, newMutatorsCmd())

	mockWorkflow.EXPECT().List(mock.Anything, domain.ListArgs{Levels: []int{2, 3}, Format: controller.FormatYAML}).Return(nil).Once()

	cmd.SetArgs([]string{"mutators", "--level", "2,3", "-f", "yaml"})
	require.NoError(t, cmd.Execute())
}

func TestMutatorsCmd_PositionalArgsAreRejected(t *testing.T) {
	useMockWorkflow(t)
	cmd, _ := newTestRoot(t, newMutatorsCmd())

	cmd.SetArgs([]string{"mutators", "extra"})
	require.Error(t, cmd.Execute())
}
