package convert

import (
	"github.com/palemoky/dasar/internal/game/session"
	"github.com/palemoky/dasar/internal/protocol"
)

// PlayToInfo 将 session.Play 转换为 protocol.PlayInfo
func PlayToInfo(p session.Play) *protocol.PlayInfo {
	return &protocol.PlayInfo{
		ID:       p.ID,
		Type:     p.Type.String(),
		OwnerID:  p.OwnerID,
		Sequence: p.Sequence,
		Cards:    CardsToInfos(p.Cards),
	}
}

// ScoresToEntries 按座位顺序列出结算分数，没有结算分数时返回 nil
func ScoresToEntries(st session.State) []protocol.ScoreEntry {
	if len(st.Scores) == 0 {
		return nil
	}
	entries := make([]protocol.ScoreEntry, 0, len(st.Players))
	for _, p := range st.Players {
		entries = append(entries, protocol.ScoreEntry{
			PlayerID:   p.ID,
			PlayerName: p.Name,
			Score:      st.Scores[p.ID],
		})
	}
	return entries
}
