package apperrors

import (
	"errors"

	"github.com/palemoky/dasar/internal/protocol"
)

// GameError 引擎错误，调用方可以用 errors.Is 判断，并据此给玩家提示
type GameError struct {
	Code    int
	Message string
}

func (e *GameError) Error() string {
	return e.Message
}

func newError(code int) *GameError {
	return &GameError{Code: code, Message: protocol.ErrorMessages[code]}
}

// 预定义错误
var (
	ErrInvalidIntent  = newError(protocol.ErrCodeInvalidMsg)
	ErrNoPlayers      = newError(protocol.ErrCodeNoPlayers)
	ErrTooManyPlayers = newError(protocol.ErrCodeTooMany)
	ErrGameStarted    = newError(protocol.ErrCodeGameStarted)
	ErrAlreadyDealt   = newError(protocol.ErrCodeAlreadyDealt)
	ErrDeckExhausted  = newError(protocol.ErrCodeDeck)
	ErrGameNotStart   = newError(protocol.ErrCodeGameNotStart)
	ErrGameFinished   = newError(protocol.ErrCodeGameFinished)
	ErrNotYourTurn    = newError(protocol.ErrCodeNotYourTurn)
	ErrInvalidCards   = newError(protocol.ErrCodeInvalidCards)
	ErrCardNotInHand  = newError(protocol.ErrCodeCardNotFound)
	ErrPlayNotFound   = newError(protocol.ErrCodePlayNotFound)
	ErrNotDasar       = newError(protocol.ErrCodeNotDasar)
	ErrPlayerNotFound = newError(protocol.ErrCodePlayerNotFound)
	ErrPlayerDead     = newError(protocol.ErrCodePlayerDead)
	ErrNoAlivePlayers = newError(protocol.ErrCodeNoAlive)
)

// Code 返回错误码，非 GameError 返回未知错误码
func Code(err error) int {
	var ge *GameError
	if errors.As(err, &ge) {
		return ge.Code
	}
	return protocol.ErrCodeUnknown
}
