package models

import (
	"testing"

	"github.com/dalesbridge/chronicle/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCardIconKnown(t *testing.T) {
	icon, err := ParseCardIcon("church")
	require.NoError(t, err)
	assert.Equal(t, IconChurch, icon)
}

func TestParseCardIconUnknown(t *testing.T) {
	_, err := ParseCardIcon("spaceship")
	assert.ErrorIs(t, err, common.ErrValidation)
	assert.Contains(t, err.Error(), "spaceship")
}

func TestParseCardIconEmpty(t *testing.T) {
	_, err := ParseCardIcon("")
	assert.ErrorIs(t, err, common.ErrValidation)
}
