package cdklocal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	assert.Equal(t, "cdklocal", opts.Tool)
	assert.Equal(t, "lookpath", opts.Probe)
	assert.NoError(t, opts.Validate())
}

func TestOptionsValidate(t *testing.T) {
	assert.NoError(t, Options{Tool: "cdklocal", Probe: "which"}.Validate())
	assert.NoError(t, Options{Tool: "cdklocal", Probe: ""}.Validate())
	assert.Error(t, Options{Tool: "", Probe: "lookpath"}.Validate())
	assert.Error(t, Options{Tool: "cdklocal", Probe: "ask"}.Validate())
}
