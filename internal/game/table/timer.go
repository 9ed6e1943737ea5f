package table

import (
	"time"

	"github.com/palemoky/dasar/internal/game/session"
	"github.com/palemoky/dasar/internal/logger"
	"github.com/palemoky/dasar/internal/protocol"
)

// --- 回合倒计时 ---

// armTimer 为 turn 回合重新开始倒计时，调用方需持有锁
func (t *Table) armTimer(turn int) {
	t.stopTimer()
	if t.timeout <= 0 {
		return
	}

	t.deadline = time.Now().Add(t.timeout)
	t.timer = time.AfterFunc(t.timeout, func() {
		t.handleTimeout(turn)
	})
}

// handleTimeout 倒计时到期：当前玩家出局并进入下一回合。
// 回合已经变化或游戏已结束时什么都不做
func (t *Table) handleTimeout(turn int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed || t.gs.Status() != session.StatusPlaying || t.gs.Turn() != turn {
		return
	}

	cur, _ := t.gs.CurrentPlayer()
	logger.LogInfo("%s 出牌超时", cur.Name)
	t.emit(protocol.Event{
		Type:       protocol.EventTimeout,
		Turn:       turn,
		PlayerID:   cur.ID,
		PlayerName: cur.Name,
	})

	t.timer = nil
	t.eliminate(cur, ReasonTimeout)
	t.beginTurn()
}

func (t *Table) stopTimer() {
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
}
