package cmd

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"linkdup.dev/pkg/linkdup/internal/domain"
	m "linkdup.dev/pkg/linkdup/internal/model"
)

func executeIndex(t *testing.T, args ...string) error {
	t.Helper()

	cmd := newRootCmd()
	cmd.AddCommand(newIndexCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append([]string{"index"}, args...))

	return cmd.Execute()
}

func TestIndexCmd_Defaults(t *testing.T) {
	mockWorkflow := useMockWorkflow(t)

	mockWorkflow.EXPECT().Index(mock.Anything, mock.MatchedBy(func(args domain.IndexArgs) bool {
		return len(args.Roots) == 2 &&
			args.Roots[0] == m.Path("A") &&
			args.Roots[1] == m.Path("B") &&
			args.Output == m.Path("out.csv") &&
			!args.Normalize &&
			args.MinSize == defaultIndexMinSize &&
			args.MaxSize == defaultMaxSize &&
			args.Digest == m.DigestNone &&
			args.Workers == 1
	})).Return(nil)

	require.NoError(t, executeIndex(t, "--csv", "out.csv", "A", "B"))
}

func TestIndexCmd_WithHash(t *testing.T) {
	mockWorkflow := useMockWorkflow(t)

	mockWorkflow.EXPECT().Index(mock.Anything, mock.MatchedBy(func(args domain.IndexArgs) bool {
		return args.Digest == m.DigestMD5 &&
			args.Normalize &&
			args.MinSize == 1 &&
			args.MaxSize == 99 &&
			args.Workers == 3
	})).Return(nil)

	err := executeIndex(t, "--csv", "out.csv", "--hash", "md5", "--normalize", "--min-size", "1", "--max-size", "99", "-p", "3", "A")
	require.NoError(t, err)
}

func TestIndexCmd_InvalidArguments(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{name: "missing csv", args: []string{"A"}, wantErr: `required flag(s) "csv" not set`},
		{name: "unknown hash", args: []string{"--csv", "out.csv", "--hash", "crc32", "A"}, wantErr: "unknown digest"},
		{name: "min not below max", args: []string{"--csv", "out.csv", "--min-size", "5", "--max-size", "5", "A"}, wantErr: "must be below max size"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			useMockWorkflow(t)

			err := executeIndex(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestIndexCmd_WorkflowError(t *testing.T) {
	mockWorkflow := useMockWorkflow(t)

	wantErr := errors.New("disk full")
	mockWorkflow.EXPECT().Index(mock.Anything, mock.Anything).Return(wantErr)

	err := executeIndex(t, "--csv", "out.csv", "A")
	require.ErrorIs(t, err, wantErr)
}
