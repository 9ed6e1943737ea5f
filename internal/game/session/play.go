package session

import (
	"fmt"

	"github.com/palemoky/dasar/internal/apperrors"
	"github.com/palemoky/dasar/internal/game/card"
	"github.com/palemoky/dasar/internal/game/rule"
)

// PlayCards 当前玩家出牌。targetPlayID 非空时表示把牌接到桌上已有的 dasar。
// 任何校验失败都不会修改状态；成功时手牌和桌面一起更新
func (gs *GameSession) PlayCards(playerID string, cardIDs []string, playType rule.PlayType, targetPlayID string) (Play, error) {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	if err := gs.requirePlaying(); err != nil {
		return Play{}, err
	}

	idx := gs.findPlayer(playerID)
	if idx < 0 {
		return Play{}, apperrors.ErrPlayerNotFound
	}
	player := gs.players[idx]
	if !player.IsAlive {
		return Play{}, apperrors.ErrPlayerDead
	}
	if idx != gs.currentPlayer {
		return Play{}, apperrors.ErrNotYourTurn
	}

	cards, err := card.FindByIDs(player.Hand, cardIDs)
	if err != nil {
		return Play{}, fmt.Errorf("%w: %v", apperrors.ErrCardNotInHand, err)
	}

	var (
		target   *Play
		newPlay  *Play
		extended []card.Card
	)

	switch {
	case playType == rule.Dasar && targetPlayID != "":
		target = gs.findPlay(targetPlayID)
		if target == nil {
			return Play{}, apperrors.ErrPlayNotFound
		}
		if target.Type != rule.Dasar {
			return Play{}, apperrors.ErrNotDasar
		}
		position := rule.ResolvePosition(target.Cards, cards)
		run, ok := rule.Extend(target.Cards, cards, position)
		if !ok {
			return Play{}, apperrors.ErrInvalidCards
		}
		extended = run

	case playType == rule.Dasar:
		run, ok := rule.Arrange(cards)
		if !ok {
			return Play{}, apperrors.ErrInvalidCards
		}
		newPlay = gs.newPlay(rule.Dasar, run, playerID)

	case playType == rule.Triple:
		if targetPlayID != "" || !rule.ValidateTriple(cards) {
			return Play{}, apperrors.ErrInvalidCards
		}
		newPlay = gs.newPlay(rule.Triple, cards, playerID)

	default:
		return Play{}, apperrors.ErrInvalidIntent
	}

	// 校验全部通过，一次性提交
	if target != nil {
		target.Cards = extended
	} else {
		gs.plays = append(gs.plays, newPlay)
		target = newPlay
	}
	player.Hand = card.RemoveCards(player.Hand, cards)
	if newPlay != nil && newPlay.Type == rule.Dasar {
		player.HasPlayedBase = true
	}

	return clonePlay(target), nil
}

func (gs *GameSession) newPlay(t rule.PlayType, cards []card.Card, ownerID string) *Play {
	return &Play{
		ID:       gs.newPlayID(),
		Type:     t,
		Cards:    cards,
		OwnerID:  ownerID,
		Sequence: len(gs.plays),
	}
}

// Suggestion 一个可行的出牌建议
type Suggestion struct {
	Type         rule.PlayType
	Cards        []card.Card
	TargetPlayID string
}

// CanPlayerMove 玩家当前是否还有任何合法出法
func (gs *GameSession) CanPlayerMove(playerID string) (bool, error) {
	gs.mu.RLock()
	defer gs.mu.RUnlock()

	idx := gs.findPlayer(playerID)
	if idx < 0 {
		return false, apperrors.ErrPlayerNotFound
	}
	p := gs.players[idx]
	return rule.CanMakeMove(p.Hand, p.HasPlayedBase, gs.runs()), nil
}

// SuggestMove 按 triple、新 dasar、接牌的顺序给出第一个可行的出法
func (gs *GameSession) SuggestMove(playerID string) (Suggestion, bool) {
	gs.mu.RLock()
	defer gs.mu.RUnlock()

	idx := gs.findPlayer(playerID)
	if idx < 0 {
		return Suggestion{}, false
	}
	p := gs.players[idx]

	if cards := rule.FindTriple(p.Hand); cards != nil {
		return Suggestion{Type: rule.Triple, Cards: cards}, true
	}
	if !p.HasPlayedBase {
		if cards := rule.FindDasar(p.Hand); cards != nil {
			return Suggestion{Type: rule.Dasar, Cards: cards}, true
		}
	}

	var dasars []*Play
	for _, play := range gs.plays {
		if play.Type == rule.Dasar {
			dasars = append(dasars, play)
		}
	}
	if i, c, ok := rule.FindExtension(p.Hand, gs.runs()); ok {
		return Suggestion{Type: rule.Dasar, Cards: []card.Card{c}, TargetPlayID: dasars[i].ID}, true
	}
	return Suggestion{}, false
}
