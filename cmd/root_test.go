package cmd

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"regmut.dev/pkg/regmut/internal/controller"
	"regmut.dev/pkg/regmut/internal/domain"
	domainmocks "regmut.dev/pkg/regmut/internal/domain/mocks"
)

// useMockWorkflow swaps the shared workflow for a mock for the duration of t.
func useMockWorkflow(t *testing.T) *domainmocks.MockWorkflow {
	t.Helper()

	mockWorkflow := domainmocks.NewMockWorkflow(t)

	originalWorkflow := workflow
	workflow = mockWorkflow

	t.Cleanup(func() { workflow = originalWorkflow })

	return mockWorkflow
}

// newTestRoot builds a root command with sub attached and a throwaway log file.
func newTestRoot(t *testing.T, sub *cobra.Command) (*cobra.Command, *bytes.Buffer) {
	t.Helper()

	out := &bytes.Buffer{}

	cmd := newRootCmd()
	cmd.AddCommand(sub)
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	require.NoError(t, cmd.PersistentFlags().Set(logFileFlagName, filepath.Join(t.TempDir(), "regmut.log")))

	return cmd, out
}

func TestNewRootCmd(t *testing.T) {
	cmd := newRootCmd()
	assert.Equal(t, "regmut", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.Equal(t, rootLongDescription, cmd.Long)

	for _, name := range []string{formatFlagName, interactiveFlagName, verboseFlagName, logFileFlagName} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), name)
	}
}

func TestRootCmd_HelpOutput(t *testing.T) {
	cmd, output := newTestRoot(t, newVersionCmd())
	useMockWorkflow(t)

	cmd.SetArgs([]string{})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, output.String(), "Usage:")
	assert.Contains(t, output.String(), "regular expressions")
}

func TestRootCmd_RegistersSubcommands(t *testing.T) {
	names := map[string]bool{}
	for _, sub := range rootCmd.Commands() {
		names[sub.Name()] = true
	}

	for _, want := range []string{"mutate", "mutators", "view", "init", "version"} {
		assert.True(t, names[want], "missing subcommand %s", want)
	}
}

func TestSetup_WiresWorkflowOnce(t *testing.T) {
	originalWorkflow := workflow
	workflow = nil

	t.Cleanup(func() { workflow = originalWorkflow })

	cmd, _ := newTestRoot(t, newVersionCmd())

	require.NoError(t, setup(cmd, nil))
	require.NotNil(t, workflow)
	assert.NotNil(t, ui)
	assert.NotNil(t, patternSource)
	assert.NotNil(t, reportStore)
	assert.NotNil(t, mutagen)

	_, isSimple := ui.(*controller.SimpleUI)
	assert.True(t, isSimple, "a buffer is not a terminal")

	wired := workflow
	require.NoError(t, setup(cmd, nil))
	assert.Same(t, wired, workflow)
}

func TestNewWorkflow_RunsMutations(t *testing.T) {
	cmd, out := newTestRoot(t, newVersionCmd())

	wf := newWorkflow(cmd)
	require.NoError(t, wf.Mutate(context.Background(), domain.MutateArgs{Patterns: []string{"^a"}, Threads: 1}))

	assert.Contains(t, out.String(), "Beginning of line character `^` removal")
}

func TestExecute_ProcessLevel_Success(t *testing.T) {
	if os.Getenv("TEST_EXECUTE_SUBPROCESS") == "1" {
		originalRootCmd := rootCmd
		mockCmd := &cobra.Command{
			Use: "test",
			RunE: func(cmd *cobra.Command, args []string) error {
				fmt.Println("success")
				return nil
			},
		}
		mockCmd.SetOut(os.Stdout)
		mockCmd.SetErr(os.Stderr)
		rootCmd = mockCmd
		defer func() { rootCmd = originalRootCmd }()

		Execute()
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=TestExecute_ProcessLevel_Success")
	cmd.Env = append(os.Environ(), "TEST_EXECUTE_SUBPROCESS=1")
	output, err := cmd.CombinedOutput()

	require.NoError(t, err, "output: %s", output)
	assert.Contains(t, string(output), "success")
}

func TestExecute_ProcessLevel_Failure(t *testing.T) {
	if os.Getenv("TEST_EXECUTE_SUBPROCESS_FAIL") == "1" {
		mockCmd := &cobra.Command{
			Use: "test",
			RunE: func(cmd *cobra.Command, args []string) error {
				return fmt.Errorf("command failed")
			},
		}
		mockCmd.SetOut(os.Stdout)
		mockCmd.SetErr(os.Stderr)
		rootCmd = mockCmd

		Execute()
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=TestExecute_ProcessLevel_Failure")
	cmd.Env = append(os.Environ(), "TEST_EXECUTE_SUBPROCESS_FAIL=1")
	output, err := cmd.CombinedOutput()

	var exitErr *exec.ExitError
	require.ErrorAs(t, err, &exitErr, "output: %s", output)
	assert.Equal(t, 1, exitErr.ExitCode())
	assert.Contains(t, string(output), "command failed")
}
