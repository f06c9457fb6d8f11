package log

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommandsValidateArgCounts(t *testing.T) {
	assert.Error(t, SubmitCmd.Args(SubmitCmd, []string{}))
	assert.NoError(t, SubmitCmd.Args(SubmitCmd, []string{"rec-1"}))

	assert.Error(t, RemoveCmd.Args(RemoveCmd, []string{}))
	assert.Error(t, DateCmd.Args(DateCmd, []string{"rec-1"}))
	assert.Error(t, CollapseCmd.Args(CollapseCmd, []string{"rec-1", "extra"}))
}
