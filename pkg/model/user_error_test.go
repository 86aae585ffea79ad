package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserError(t *testing.T) {
	var err error = UserError("something the user did")
	assert.Equal(t, "something the user did", err.Error())

	var ue UserError
	assert.True(t, errors.As(err, &ue))
}
