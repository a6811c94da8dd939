//go:build !ebiten

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gridpath/internal/app"
)

func TestGUIWithoutTagExitsTwo(t *testing.T) {
	_, err := execute(t, "gui")
	assert.ErrorIs(t, err, app.ErrGUIUnavailable)
	assert.Equal(t, 2, exitCode(err))
}
