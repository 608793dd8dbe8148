package cli

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExportRejectsPositionalArgs(t *testing.T) {
	require.Error(t, exportCmd.Args(exportCmd, []string{"stray"}))
	require.NoError(t, exportCmd.Args(exportCmd, nil))
}
