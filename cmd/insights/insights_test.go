package insights_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"finsight/cmd/insights"
)

func TestInsightsCommand_Metadata(t *testing.T) {
	assert.Equal(t, "insights", insights.Cmd.Use)
	assert.Contains(t, insights.Cmd.Short, "insights")
	assert.Contains(t, insights.Cmd.Long, "budgets")
	assert.NotNil(t, insights.Cmd.Run)
}

func TestInsightsCommand_Flags(t *testing.T) {
	budgetsFlag := insights.Cmd.Flags().Lookup("budgets")
	assert.NotNil(t, budgetsFlag)
	assert.Equal(t, "b", budgetsFlag.Shorthand)
	assert.Equal(t, "", budgetsFlag.DefValue)
}
