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

func TestValidateCmd(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newValidateCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	mockWorkflow.On("Validate", mock.Anything, mock.MatchedBy(func(args domain.ValidateArgs) bool {
		return args.Config == m.Path("lint.config.toml") &&
			len(args.ExtraIgnores) == 0 &&
			args.Format == m.FormatTable
	})).Return(nil)

	cmd.SetArgs([]string{"validate", "--config", "lint.config.toml", "--format", "table"})
	err := cmd.Execute()
	require.NoError(t, err)

	mockWorkflow.AssertExpectations(t)
}

func TestValidateCmd_RejectsArgs(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newValidateCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	cmd.SetArgs([]string{"validate", "src/a.ts"})
	err := cmd.Execute()
	require.Error(t, err)
}
