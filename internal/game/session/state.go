package session

import (
	"fmt"
	"maps"
	"slices"

	"github.com/palemoky/dasar/internal/game/card"
)

// Status 游戏状态，只会 waiting → playing → finished 单向变化
type Status int

const (
	StatusWaiting Status = iota
	StatusPlaying
	StatusFinished
)

var statusNames = map[Status]string{
	StatusWaiting:  "waiting",
	StatusPlaying:  "playing",
	StatusFinished: "finished",
}

func (s Status) String() string {
	return statusNames[s]
}

// WinReason 获胜方式
type WinReason string

const (
	WinZonk         WinReason = "zonk"            // 出完手牌
	WinFourJokers   WinReason = "four_jokers"     // 集齐 4 张王
	WinEightOfAKind WinReason = "eight_of_a_kind" // 同点数 8 张
	WinLowestScore  WinReason = "lowest_score"    // 淘汰结算时分数最低
)

// State 会话的只读快照，修改快照不会影响会话
type State struct {
	Players            []Player
	Deck               card.Deck
	CurrentPlayerIndex int
	Plays              []Play
	Status             Status
	Winner             *Player
	WinReason          WinReason
	Scores             map[string]int
	RemainingCards     int
	CurrentTurn        int
}

// Snapshot 返回当前状态的深拷贝
func (gs *GameSession) Snapshot() State {
	gs.mu.RLock()
	defer gs.mu.RUnlock()

	st := State{
		Players:            make([]Player, len(gs.players)),
		Deck:               slices.Clone(gs.deck),
		CurrentPlayerIndex: gs.currentPlayer,
		Plays:              make([]Play, len(gs.plays)),
		Status:             gs.status,
		WinReason:          gs.winReason,
		Scores:             maps.Clone(gs.scores),
		RemainingCards:     len(gs.deck),
		CurrentTurn:        gs.turn,
	}
	for i, p := range gs.players {
		st.Players[i] = clonePlayer(p)
	}
	for i, p := range gs.plays {
		st.Plays[i] = clonePlay(p)
	}
	if gs.winnerIdx >= 0 {
		w := clonePlayer(gs.players[gs.winnerIdx])
		st.Winner = &w
	}
	return st
}

// Status 当前游戏状态
func (gs *GameSession) Status() Status {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	return gs.status
}

// Turn 当前回合数
func (gs *GameSession) Turn() int {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	return gs.turn
}

// CurrentPlayer 返回当前回合的玩家
func (gs *GameSession) CurrentPlayer() (Player, bool) {
	gs.mu.RLock()
	defer gs.mu.RUnlock()

	if len(gs.players) == 0 {
		return Player{}, false
	}
	return clonePlayer(gs.players[gs.currentPlayer]), true
}

// Player 按 ID 返回玩家
func (gs *GameSession) Player(playerID string) (Player, bool) {
	gs.mu.RLock()
	defer gs.mu.RUnlock()

	idx := gs.findPlayer(playerID)
	if idx < 0 {
		return Player{}, false
	}
	return clonePlayer(gs.players[idx]), true
}

// Verify 检查状态不变量：每张牌恰好在一个位置、组合序号严格递增、
// 进行中的游戏当前玩家必须存活
func (gs *GameSession) Verify() error {
	gs.mu.RLock()
	defer gs.mu.RUnlock()

	if gs.status == StatusWaiting {
		return nil
	}

	seen := make(map[string]string, card.DeckSize)
	place := func(c card.Card, where string) error {
		if prev, ok := seen[c.ID]; ok {
			return fmt.Errorf("牌 %s 同时出现在 %s 和 %s", c.ID, prev, where)
		}
		seen[c.ID] = where
		return nil
	}

	for _, c := range gs.deck {
		if err := place(c, "deck"); err != nil {
			return err
		}
	}
	for _, p := range gs.players {
		for _, c := range p.Hand {
			if err := place(c, p.ID); err != nil {
				return err
			}
		}
	}
	for i, play := range gs.plays {
		if i > 0 && play.Sequence <= gs.plays[i-1].Sequence {
			return fmt.Errorf("组合 %s 的序号 %d 没有递增", play.ID, play.Sequence)
		}
		for _, c := range play.Cards {
			if err := place(c, play.ID); err != nil {
				return err
			}
		}
	}

	if len(seen) != gs.cardTotal {
		return fmt.Errorf("牌数不一致: 应有 %d 张, 实际 %d 张", gs.cardTotal, len(seen))
	}

	if gs.status == StatusPlaying && !gs.players[gs.currentPlayer].IsAlive {
		return fmt.Errorf("当前玩家 %s 已出局", gs.players[gs.currentPlayer].ID)
	}
	return nil
}

func clonePlayer(p *Player) Player {
	cp := *p
	cp.Hand = slices.Clone(p.Hand)
	return cp
}

func clonePlay(p *Play) Play {
	cp := *p
	cp.Cards = slices.Clone(p.Cards)
	return cp
}
