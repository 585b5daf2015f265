package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAppBuildInfo(t *testing.T) {
	info := NewAppBuildInfo("1.0.0", "", "abc123")

	assert.Equal(t, "1.0.0", info.BuildVersion())
	assert.Equal(t, "Build version: 1.0.0\nBuild date: N/A\nBuild commit: abc123\n", info.String())
}

func TestNewAppBuildInfo_AllEmpty(t *testing.T) {
	info := NewAppBuildInfo("", "", "")

	assert.Equal(t, "N/A", info.BuildVersion())
	assert.Equal(t, "Build version: N/A\nBuild date: N/A\nBuild commit: N/A\n", info.String())
}
