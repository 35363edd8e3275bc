package commands

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSurvey_Flags(t *testing.T) {
	cmd := Survey()

	assert.Equal(t, "survey", cmd.Use)
	for _, name := range []string{"config", "simple", "verbose"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), "missing flag %s", name)
	}
	assert.Equal(t, "c", cmd.Flags().Lookup("config").Shorthand)
	assert.Equal(t, "v", cmd.Flags().Lookup("verbose").Shorthand)
}

func TestServe_Flags(t *testing.T) {
	cmd := Serve()

	assert.Equal(t, "serve", cmd.Use)
	for _, name := range []string{"config", "addr", "verbose"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), "missing flag %s", name)
	}
}

func TestPages_Execute(t *testing.T) {
	root := Root()
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetArgs([]string{"pages", "--status", "University Affiliate"})

	require.NoError(t, root.Execute())
	assert.Contains(t, buf.String(), "2. degree")
	assert.Contains(t, buf.String(), "7. consent")
}
