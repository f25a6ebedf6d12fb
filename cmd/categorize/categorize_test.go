package categorize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"finsight/cmd/categorize"
)

func TestCategorizeCommand_Metadata(t *testing.T) {
	assert.Equal(t, "categorize", categorize.Cmd.Use)
	assert.Contains(t, categorize.Cmd.Short, "Categorize")
	assert.Contains(t, categorize.Cmd.Long, "keyword matching")
	assert.NotNil(t, categorize.Cmd.Run)
}

func TestCategorizeCommand_Flags(t *testing.T) {
	descriptionFlag := categorize.Cmd.Flags().Lookup("description")
	assert.NotNil(t, descriptionFlag)
	assert.Equal(t, "d", descriptionFlag.Shorthand)
	assert.Equal(t, "", descriptionFlag.DefValue)
	assert.Contains(t, descriptionFlag.Usage, "description")
}
