package importcsv_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"finsight/cmd/importcsv"
)

func TestImportCommand_Metadata(t *testing.T) {
	assert.Equal(t, "import", importcsv.Cmd.Use)
	assert.Contains(t, importcsv.Cmd.Short, "statement CSV")
	assert.Contains(t, importcsv.Cmd.Long, "date, amount and description")
	assert.NotNil(t, importcsv.Cmd.Run)
}

func TestImportCommand_NoLocalFlags(t *testing.T) {
	// Import only uses the persistent input/output flags.
	assert.False(t, importcsv.Cmd.Flags().HasFlags())
}
