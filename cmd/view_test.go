package cmd

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"linkdup.dev/pkg/linkdup/internal/domain"
	m "linkdup.dev/pkg/linkdup/internal/model"
)

func executeView(t *testing.T, args ...string) error {
	t.Helper()

	cmd := newRootCmd()
	cmd.AddCommand(newViewCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append([]string{"view"}, args...))

	return cmd.Execute()
}

func TestViewCmd_PassesReportPath(t *testing.T) {
	mockWorkflow := useMockWorkflow(t)

	mockWorkflow.EXPECT().View(mock.Anything, mock.MatchedBy(func(args domain.ViewArgs) bool {
		return args.Report == m.Path("report.yaml")
	})).Return(m.RunReport{}, nil)

	require.NoError(t, executeView(t, "report.yaml"))
}

func TestViewCmd_RequiresExactlyOneReport(t *testing.T) {
	for _, args := range [][]string{{}, {"a.yaml", "b.yaml"}} {
		useMockWorkflow(t)
		require.Error(t, executeView(t, args...))
	}
}

func TestViewCmd_WorkflowError(t *testing.T) {
	mockWorkflow := useMockWorkflow(t)
	boom := errors.New("unmarshal report")

	mockWorkflow.EXPECT().View(mock.Anything, mock.Anything).Return(m.RunReport{}, boom)

	require.ErrorIs(t, executeView(t, "report.yaml"), boom)
}
