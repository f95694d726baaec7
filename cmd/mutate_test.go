package cmd

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"regmut.dev/pkg/regmut/internal/controller"
	"regmut.dev/pkg/regmut/internal/domain"
)

func TestMutateCmd_Defaults(t *testing.T) {
	mockWorkflow := useMockWorkflow(t)
	cmd, _ := newTestRoot(t, newMutateCmd())

	mockWorkflow.EXPECT().Mutate(mock.Anything, mock.MatchedBy(func(args domain.MutateArgs) bool {
		return assert.ObjectsAreEqual([]string{"^a", `\d+`}, args.Patterns) &&
			args.Files == nil &&
			args.Options.Mutators == nil &&
			args.Options.Levels == nil &&
			args.Threads > 0 &&
			args.Save == "" &&
			args.Format == controller.FormatTable
	})).Return(nil).Once()

	cmd.SetArgs([]string{"mutate", "^a", `\d+`})
	require.NoError(t, cmd.Execute())
}

func TestMutateCmd_FlagsArePassedThrough(t *testing.T) {
	mockWorkflow := useMockWorkflow(t)
	cmd, _ := newTestRoot(t, newMutateCmd())

	mockWorkflow.EXPECT().Mutate(mock.Anything, mock.MatchedBy(func(args domain.MutateArgs) bool {
		return assert.ObjectsAreEqual([]string{"patterns.txt", "-"}, args.Files) &&
			assert.ObjectsAreEqual([]int{1, 2}, args.Options.Levels) &&
			assert.ObjectsAreEqual([]string{"Quantifier `{n,}` change", "Quantifier removal"}, args.Options.Mutators) &&
			args.Threads == 3 &&
			args.Save == "out/reports.yaml" &&
			args.Format == controller.FormatJSON
	})).Return(nil).Once()

	cmd.SetArgs([]string{
		"mutate",
		"--file", "patterns.txt",
		"--file", "-",
		"--level", "1",
		"--level", "2",
		"--mutator", "Quantifier `{n,}` change",
		"--mutator", "Quantifier removal",
		"--parallel", "3",
		"--save", "out/reports.yaml",
		"--format", "json",
	})
	require.NoError(t, cmd.Execute())
}

func TestMutateCmd_InvalidFormat(t *testing.T) {
	useMockWorkflow(t)
	cmd, _ := newTestRoot(t, newMutateCmd())

	cmd.SetArgs([]string{"mutate", "--format", "xml", "^a"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
}

func TestMutateCmd_WorkflowError(t *testing.T) {
	mockWorkflow := useMockWorkflow(t)
	cmd, _ := newTestRoot(t, newMutateCmd())

	mockWorkflow.EXPECT().Mutate(mock.Anything, mock.Anything).
		Return(domain.ErrUnknownMutator).Once()

	cmd.SetArgs([]string{"mutate", "--mutator", "nope", "^a"})
	err := cmd.Execute()
	assert.True(t, errors.Is(err, domain.ErrInvalidOptions))
}

func TestMutateCmd_PassesContext(t *testing.T) {
	mockWorkflow := useMockWorkflow(t)
	cmd, _ := newTestRoot(t, newMutateCmd())

	type key struct{}

	ctx := context.WithValue(context.Background(), key{}, "marker")

	mockWorkflow.EXPECT().Mutate(mock.MatchedBy(func(got context.Context) bool {
		return got.Value(key{}) == "marker"
	}), mock.Anything).Return(nil).Once()

	cmd.SetArgs([]string{"mutate", "a"})
	require.NoError(t, cmd.ExecuteContext(ctx))
}
