package version_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Norgate-AV/ovly/internal/version"
)

func TestGetVersion(t *testing.T) {
	t.Parallel()

	v := version.GetVersion()
	assert.NotEmpty(t, v)

	if v != "dev" {
		assert.Regexp(t, `^v?\d+\.\d+\.\d+`, v, "Release versions should be semver")
	}
}

func TestGetCommitAndDate(t *testing.T) {
	t.Parallel()

	assert.NotEmpty(t, version.GetCommit())
	assert.NotEmpty(t, version.GetDate())
}

func TestGetFullVersionFormat(t *testing.T) {
	t.Parallel()

	full := version.GetFullVersion()
	expected := version.GetVersion() + " (commit: " + version.GetCommit() + ", built: " + version.GetDate() + ")"
	assert.Equal(t, expected, full)
}
