package protocol

import (
	"fmt"

	"github.com/palemoky/dasar/internal/game/rule"
)

// Action 玩家每回合的操作类型
type Action string

const (
	ActionPlayDasar   Action = "playDasar"   // 开一个新的 dasar
	ActionPlayTriple  Action = "playTriple"  // 出 triple
	ActionExtendDasar Action = "extendDasar" // 接到桌上已有的 dasar
)

// Intent 一次出牌意图
type Intent struct {
	Action       Action   `json:"action"`
	PlayerID     string   `json:"player_id"`
	CardIDs      []string `json:"cards"`
	TargetPlayID string   `json:"target_play_id,omitempty"`
}

// PlayType 返回意图对应的组合类型
func (i Intent) PlayType() rule.PlayType {
	switch i.Action {
	case ActionPlayDasar, ActionExtendDasar:
		return rule.Dasar
	case ActionPlayTriple:
		return rule.Triple
	default:
		return rule.InvalidPlay
	}
}

// Validate 检查意图的字段是否自洽
func (i Intent) Validate() error {
	if i.PlayType() == rule.InvalidPlay {
		return fmt.Errorf("未知操作: %q", i.Action)
	}
	if len(i.CardIDs) == 0 {
		return fmt.Errorf("没有选择任何牌")
	}
	if i.Action == ActionExtendDasar && i.TargetPlayID == "" {
		return fmt.Errorf("接牌需要指定目标组合")
	}
	if i.Action != ActionExtendDasar && i.TargetPlayID != "" {
		return fmt.Errorf("%s 不能指定目标组合", i.Action)
	}
	return nil
}

// EventType 牌桌事件类型
type EventType string

const (
	EventGameStart  EventType = "game_start"  // 游戏开始
	EventTurn       EventType = "turn"        // 轮到某位玩家
	EventCardPlayed EventType = "card_played" // 有人出牌
	EventPlayerDead EventType = "player_dead" // 有人出局
	EventTimeout    EventType = "timeout"     // 出牌超时
	EventGameOver   EventType = "game_over"   // 游戏结束
)
