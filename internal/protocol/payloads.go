package protocol

import "time"

// CardInfo 牌的信息
type CardInfo struct {
	ID   string `json:"id"`
	Suit int    `json:"suit"`
	Rank int    `json:"rank"`
}

// PlayInfo 桌面组合信息
type PlayInfo struct {
	ID       string     `json:"id"`
	Type     string     `json:"type"`
	OwnerID  string     `json:"owner_id"`
	Sequence int        `json:"sequence"`
	Cards    []CardInfo `json:"cards"`
}

// ScoreEntry 结算分数
type ScoreEntry struct {
	PlayerID   string `json:"player_id"`
	PlayerName string `json:"player_name"`
	Score      int    `json:"score"`
}

// Event 牌桌事件，供界面刷新和日志记录
type Event struct {
	Type       EventType    `json:"type"`
	Turn       int          `json:"turn"`
	PlayerID   string       `json:"player_id,omitempty"`
	PlayerName string       `json:"player_name,omitempty"`
	Play       *PlayInfo    `json:"play,omitempty"`
	Reason     string       `json:"reason,omitempty"`
	Scores     []ScoreEntry `json:"scores,omitempty"`
	// Timeout 本回合的出牌时限，0 表示不限时
	Timeout time.Duration `json:"timeout,omitempty"`
}
