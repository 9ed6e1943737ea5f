package session

import (
	"slices"

	"github.com/palemoky/dasar/internal/apperrors"
	"github.com/palemoky/dasar/internal/game/card"
)

const (
	jokersToWin   = card.JokersPerDeck * card.DecksPerGame // 4 张王
	sameRankToWin = 4 * card.DecksPerGame                  // 两副牌同点数共 8 张
	aliveToFinish = 1
)

// CheckWinCondition 检查当前玩家是否获胜：出完手牌、集齐 4 张王、或同点数 8 张
func (gs *GameSession) CheckWinCondition() (Player, WinReason, bool) {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	if gs.status == StatusFinished && gs.winnerIdx >= 0 {
		return clonePlayer(gs.players[gs.winnerIdx]), gs.winReason, true
	}
	if gs.status != StatusPlaying || !gs.dealt {
		return Player{}, "", false
	}

	p := gs.players[gs.currentPlayer]
	reason := handWinReason(p.Hand)
	if reason == "" {
		return Player{}, "", false
	}

	gs.finish(gs.currentPlayer, reason)
	return clonePlayer(p), reason, true
}

// handWinReason 返回手牌满足的即胜条件，没有则返回空
func handWinReason(hand []card.Card) WinReason {
	if len(hand) == 0 {
		return WinZonk
	}
	if card.CountJokers(hand) == jokersToWin {
		return WinFourJokers
	}
	for _, n := range card.CountRanks(hand) {
		if n == sameRankToWin {
			return WinEightOfAKind
		}
	}
	return ""
}

// MarkPlayerDead 标记玩家出局。对已出局玩家或已结束的游戏调用是无操作。
// 存活人数降到 1 人及以下时按手牌计分结算，分数最低者获胜，同分时座位靠前者获胜
func (gs *GameSession) MarkPlayerDead(playerID string) error {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	switch gs.status {
	case StatusWaiting:
		return apperrors.ErrGameNotStart
	case StatusFinished:
		return nil
	}

	idx := gs.findPlayer(playerID)
	if idx < 0 {
		return apperrors.ErrPlayerNotFound
	}
	if !gs.players[idx].IsAlive {
		return nil
	}
	gs.players[idx].IsAlive = false

	if gs.aliveCount() <= aliveToFinish {
		gs.finishByScore()
	}
	return nil
}

// NextTurn 把回合交给下一位存活玩家，回合数总是加一。
// 游戏进行中时，新的当前玩家必须是存活的
func (gs *GameSession) NextTurn() error {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	if err := gs.requirePlaying(); err != nil {
		return err
	}

	n := len(gs.players)
	next := (gs.currentPlayer + 1) % n
	for !gs.players[next].IsAlive && next != gs.currentPlayer {
		next = (next + 1) % n
	}

	gs.currentPlayer = next
	gs.turn++

	if !gs.players[next].IsAlive {
		return apperrors.ErrNoAlivePlayers
	}
	return nil
}

func (gs *GameSession) aliveCount() int {
	n := 0
	for _, p := range gs.players {
		if p.IsAlive {
			n++
		}
	}
	return n
}

// finishByScore 所有玩家（包括已出局的）按手牌计分
func (gs *GameSession) finishByScore() {
	scores := make(map[string]int, len(gs.players))
	order := make([]int, len(gs.players))
	for i, p := range gs.players {
		scores[p.ID] = CalculateScore(p.Hand)
		order[i] = i
	}

	slices.SortStableFunc(order, func(a, b int) int {
		pa, pb := gs.players[a], gs.players[b]
		if d := scores[pa.ID] - scores[pb.ID]; d != 0 {
			return d
		}
		return pa.TurnOrder - pb.TurnOrder
	})

	gs.scores = scores
	gs.finish(order[0], WinLowestScore)
}

func (gs *GameSession) finish(winnerIdx int, reason WinReason) {
	gs.status = StatusFinished
	gs.winnerIdx = winnerIdx
	gs.winReason = reason
}
