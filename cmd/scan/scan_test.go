package scan_test

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"

	"finsight/cmd/scan"
)

func TestScanCommand_Metadata(t *testing.T) {
	assert.Equal(t, "scan", scan.Cmd.Use)
	assert.Contains(t, scan.Cmd.Short, "receipt or bank statement")
	assert.Contains(t, scan.Cmd.Long, "Gemini")
	assert.NotNil(t, scan.Cmd.Run)
}

func TestScanCommand_Flags(t *testing.T) {
	sourceFlag := scan.Cmd.Flags().Lookup("source")
	assert.NotNil(t, sourceFlag)
	assert.Equal(t, "s", sourceFlag.Shorthand)
	assert.Equal(t, "receipt", sourceFlag.DefValue)

	mimeFlag := scan.Cmd.Flags().Lookup("mime")
	assert.NotNil(t, mimeFlag)
	assert.Equal(t, "m", mimeFlag.Shorthand)
	assert.Equal(t, "", mimeFlag.DefValue)
}

func TestScanCommand_FlagCount(t *testing.T) {
	flagCount := 0
	scan.Cmd.Flags().VisitAll(func(flag *pflag.Flag) {
		flagCount++
	})
	assert.Equal(t, 2, flagCount) // source, mime
}
