//go:build !production

package session

import (
	"fmt"
	"maps"
	"math/rand/v2"
	"slices"

	"github.com/palemoky/dasar/internal/game/card"
	"github.com/palemoky/dasar/internal/game/rule"
)

// StackedDeck 返回一个固定顺序的牌堆生成器：先按 NewDeck 顺序生成，
// 再把 placements 中的牌换到指定位置（位置 → 牌 ID）
func StackedDeck(placements map[int]string) func(*rand.Rand) card.Deck {
	return func(*rand.Rand) card.Deck {
		deck := card.NewDeck()
		for _, pos := range slices.Sorted(maps.Keys(placements)) {
			idx := slices.IndexFunc(deck, func(c card.Card) bool { return c.ID == placements[pos] })
			if idx < 0 {
				panic(fmt.Sprintf("unknown card id %q", placements[pos]))
			}
			deck[pos], deck[idx] = deck[idx], deck[pos]
		}
		return deck
	}
}

// NewTestSession 创建已发完牌、处于 playing 状态的会话，每个参数是一位玩家的手牌
func NewTestSession(hands ...[]card.Card) *GameSession {
	gs := NewGameSession()
	gs.status = StatusPlaying
	gs.dealt = true
	for i, hand := range hands {
		gs.players = append(gs.players, &Player{
			ID:        fmt.Sprintf("player-%d", i),
			Name:      fmt.Sprintf("Player%d", i+1),
			Hand:      slices.Clone(hand),
			IsAlive:   true,
			TurnOrder: i,
		})
		gs.cardTotal += len(hand)
	}
	return gs
}

// AddPlayForTest 直接在桌上放一个组合，返回组合 ID
func (gs *GameSession) AddPlayForTest(t rule.PlayType, ownerID string, cards []card.Card) string {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	p := gs.newPlay(t, slices.Clone(cards), ownerID)
	gs.plays = append(gs.plays, p)
	gs.cardTotal += len(cards)
	return p.ID
}

// SetCurrentPlayerForTest 直接设置当前玩家
func (gs *GameSession) SetCurrentPlayerForTest(idx int) {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	gs.currentPlayer = idx
}
