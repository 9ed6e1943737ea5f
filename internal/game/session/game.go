package session

import (
	"fmt"

	"github.com/palemoky/dasar/internal/apperrors"
	"github.com/palemoky/dasar/internal/game/card"
)

// InitializeGame 洗好一副新牌并按给定顺序创建玩家，waiting → playing
func (gs *GameSession) InitializeGame(names []string) error {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	if gs.status != StatusWaiting {
		return apperrors.ErrGameStarted
	}
	if len(names) < MinPlayers {
		return apperrors.ErrNoPlayers
	}
	if len(names) > gs.maxPlayers || len(names)*gs.handSize > card.DeckSize {
		return apperrors.ErrTooManyPlayers
	}

	players := make([]*Player, len(names))
	for i, name := range names {
		players[i] = &Player{
			ID:        fmt.Sprintf("player-%d", i),
			Name:      name,
			IsAlive:   true,
			TurnOrder: i,
		}
	}

	gs.players = players
	gs.deck = gs.buildDeck(gs.rng)
	gs.cardTotal = len(gs.deck)
	gs.dealt = false
	gs.currentPlayer = 0
	gs.plays = nil
	gs.winnerIdx = -1
	gs.winReason = ""
	gs.scores = nil
	gs.turn = 0
	gs.status = StatusPlaying
	return nil
}

// DealCards 从牌堆顶部按座位顺序给每人发牌，每局只能发一次
func (gs *GameSession) DealCards() error {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	if err := gs.requirePlaying(); err != nil {
		return err
	}
	if gs.dealt {
		return apperrors.ErrAlreadyDealt
	}

	hands, remaining, err := card.Deal(gs.deck, len(gs.players), gs.handSize)
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrDeckExhausted, err)
	}

	for i, p := range gs.players {
		card.SortHand(hands[i])
		p.Hand = hands[i]
	}
	gs.deck = remaining
	gs.dealt = true
	return nil
}

// Reset 回到 waiting 状态，清空所有玩家和牌
func (gs *GameSession) Reset() {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	gs.status = StatusWaiting
	gs.players = nil
	gs.deck = nil
	gs.cardTotal = 0
	gs.dealt = false
	gs.currentPlayer = 0
	gs.plays = nil
	gs.winnerIdx = -1
	gs.winReason = ""
	gs.scores = nil
	gs.turn = 0
}

// requirePlaying 调用方需持有锁
func (gs *GameSession) requirePlaying() error {
	switch gs.status {
	case StatusWaiting:
		return apperrors.ErrGameNotStart
	case StatusFinished:
		return apperrors.ErrGameFinished
	default:
		return nil
	}
}
