package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/palemoky/dasar/internal/protocol"
)

func TestGameError_Message(t *testing.T) {
	t.Parallel()

	assert.Equal(t, protocol.ErrorMessages[protocol.ErrCodeNotYourTurn], ErrNotYourTurn.Error())
	assert.NotEmpty(t, ErrInvalidCards.Error())
}

func TestCode(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("%w: spades-5-1", ErrCardNotInHand)

	assert.ErrorIs(t, wrapped, ErrCardNotInHand)
	assert.Equal(t, protocol.ErrCodeCardNotFound, Code(wrapped))
	assert.Equal(t, protocol.ErrCodeUnknown, Code(errors.New("boom")))
}
