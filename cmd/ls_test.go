package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"flatconf.dev/pkg/flatconf/internal/domain"
	domainmocks "flatconf.dev/pkg/flatconf/internal/domain/mocks"
	m "flatconf.dev/pkg/flatconf/internal/model"
)

func TestLsCmd_Defaults(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newLsCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	mockWorkflow.On("List", mock.Anything, mock.MatchedBy(func(args domain.ListArgs) bool {
		return len(args.Roots) == 0 &&
			args.Threads == defaultParallel &&
			args.Format == m.FormatYAML
	})).Return(nil)

	cmd.SetArgs([]string{"ls"})
	err := cmd.Execute()
	require.NoError(t, err)

	mockWorkflow.AssertExpectations(t)
}

func TestLsCmd_ParallelAndRoots(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newLsCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	mockWorkflow.On("List", mock.Anything, mock.MatchedBy(func(args domain.ListArgs) bool {
		return args.Threads == 2 &&
			args.Format == m.FormatTable &&
			len(args.Roots) == 2 &&
			args.Roots[0] == m.Path("src") &&
			args.Roots[1] == m.Path("test")
	})).Return(nil)

	cmd.SetArgs([]string{"list", "--parallel", "2", "-f", "table", "src", "test"})
	err := cmd.Execute()
	require.NoError(t, err)

	mockWorkflow.AssertExpectations(t)
}

func TestLsCmd_NegativeParallelMeansUnlimited(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newLsCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	mockWorkflow.On("List", mock.Anything, mock.MatchedBy(func(args domain.ListArgs) bool {
		return args.Threads == 0
	})).Return(nil)

	cmd.SetArgs([]string{"ls", "-p", "-1"})
	err := cmd.Execute()
	require.NoError(t, err)

	mockWorkflow.AssertExpectations(t)
}
