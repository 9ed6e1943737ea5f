package table

import (
	"fmt"
	"sync"
	"time"

	"github.com/palemoky/dasar/internal/apperrors"
	"github.com/palemoky/dasar/internal/game/session"
	"github.com/palemoky/dasar/internal/logger"
	"github.com/palemoky/dasar/internal/protocol"
	"github.com/palemoky/dasar/internal/protocol/convert"
)

// DefaultTurnTimeout 每回合默认出牌时限
const DefaultTurnTimeout = 30 * time.Second

// 出局原因
const (
	ReasonTimeout = "timeout"
	ReasonNoMove  = "no_move"
)

// Notifier 接收牌桌事件。Notify 在牌桌的锁内被调用，不能反过来调用 Table 的方法
type Notifier interface {
	Notify(ev protocol.Event)
}

// NotifierFunc 让普通函数实现 Notifier
type NotifierFunc func(ev protocol.Event)

func (f NotifierFunc) Notify(ev protocol.Event) { f(ev) }

// Table 驱动一局游戏的回合流转：开局、出牌、胜负判定、无牌可出的强制出局和回合倒计时
type Table struct {
	gs       *session.GameSession
	timeout  time.Duration
	notifier Notifier

	mu       sync.Mutex // 串行化所有改动会话的操作，包括计时器回调
	timer    *time.Timer
	deadline time.Time
	closed   bool
}

// New 创建牌桌。timeout <= 0 时不启用回合倒计时，notifier 可以为 nil
func New(gs *session.GameSession, timeout time.Duration, notifier Notifier) *Table {
	if notifier == nil {
		notifier = NotifierFunc(func(protocol.Event) {})
	}
	return &Table{
		gs:       gs,
		timeout:  timeout,
		notifier: notifier,
	}
}

// Start 初始化并发牌，然后开始第一个回合
func (t *Table) Start(names []string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return apperrors.ErrGameFinished
	}
	if err := t.gs.InitializeGame(names); err != nil {
		return err
	}
	if err := t.gs.DealCards(); err != nil {
		t.gs.Reset()
		return err
	}

	logger.LogInfo("游戏开始: %d 名玩家 %v", len(names), names)
	t.emit(protocol.Event{Type: protocol.EventGameStart, Turn: t.gs.Turn()})
	t.beginTurn()
	return nil
}

// Submit 执行一次出牌意图。成功后回合交给下一位玩家
func (t *Table) Submit(intent protocol.Intent) (session.Play, error) {
	if err := intent.Validate(); err != nil {
		return session.Play{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidIntent, err)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return session.Play{}, apperrors.ErrGameFinished
	}

	play, err := t.gs.PlayCards(intent.PlayerID, intent.CardIDs, intent.PlayType(), intent.TargetPlayID)
	if err != nil {
		logger.LogInfo("拒绝 %s 的 %s: %v", intent.PlayerID, intent.Action, err)
		return session.Play{}, err
	}
	t.stopTimer()

	p, _ := t.gs.Player(intent.PlayerID)
	logger.LogInfo("%s %s %s: %v", p.Name, intent.Action, play.ID, play.Cards)
	t.emit(protocol.Event{
		Type:       protocol.EventCardPlayed,
		Turn:       t.gs.Turn(),
		PlayerID:   p.ID,
		PlayerName: p.Name,
		Play:       convert.PlayToInfo(play),
	})

	if _, _, won := t.gs.CheckWinCondition(); won {
		t.gameOver()
		return play, nil
	}
	if err := t.gs.NextTurn(); err != nil {
		logger.LogError("切换回合失败: %v", err)
	}
	t.beginTurn()
	return play, nil
}

// Hint 给当前玩家一个可行的出法
func (t *Table) Hint() (session.Suggestion, bool) {
	cur, ok := t.gs.CurrentPlayer()
	if !ok || t.gs.Status() != session.StatusPlaying {
		return session.Suggestion{}, false
	}
	return t.gs.SuggestMove(cur.ID)
}

// Snapshot 当前状态
func (t *Table) Snapshot() session.State {
	return t.gs.Snapshot()
}

// Remaining 本回合剩余时间，未启用倒计时时返回 0
func (t *Table) Remaining() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.timer == nil {
		return 0
	}
	return max(time.Until(t.deadline), 0)
}

// Stop 关闭牌桌并取消倒计时，之后的操作都会被拒绝
func (t *Table) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.closed = true
	t.stopTimer()
}

// beginTurn 回合开始：先检查手牌即胜，再让无牌可出的玩家出局，直到找到能出牌的玩家或游戏结束
func (t *Table) beginTurn() {
	for t.gs.Status() == session.StatusPlaying {
		if _, _, won := t.gs.CheckWinCondition(); won {
			break
		}

		cur, _ := t.gs.CurrentPlayer()
		canMove, err := t.gs.CanPlayerMove(cur.ID)
		if err != nil {
			logger.LogError("检查 %s 的出法失败: %v", cur.ID, err)
			return
		}
		if canMove {
			t.emit(protocol.Event{
				Type:       protocol.EventTurn,
				Turn:       t.gs.Turn(),
				PlayerID:   cur.ID,
				PlayerName: cur.Name,
				Timeout:    t.timeout,
			})
			t.armTimer(t.gs.Turn())
			return
		}

		logger.LogInfo("%s 无牌可出", cur.Name)
		t.eliminate(cur, ReasonNoMove)
	}

	if t.gs.Status() == session.StatusFinished {
		t.gameOver()
	}
}

// eliminate 淘汰玩家，游戏未结束时把回合交给下一位
func (t *Table) eliminate(p session.Player, reason string) {
	if err := t.gs.MarkPlayerDead(p.ID); err != nil {
		logger.LogError("淘汰 %s 失败: %v", p.ID, err)
		return
	}
	t.emit(protocol.Event{
		Type:       protocol.EventPlayerDead,
		Turn:       t.gs.Turn(),
		PlayerID:   p.ID,
		PlayerName: p.Name,
		Reason:     reason,
	})

	if t.gs.Status() != session.StatusPlaying {
		return
	}
	if err := t.gs.NextTurn(); err != nil {
		logger.LogError("切换回合失败: %v", err)
	}
}

func (t *Table) gameOver() {
	t.stopTimer()

	st := t.gs.Snapshot()
	ev := protocol.Event{
		Type:   protocol.EventGameOver,
		Turn:   st.CurrentTurn,
		Reason: string(st.WinReason),
		Scores: convert.ScoresToEntries(st),
	}
	if st.Winner != nil {
		ev.PlayerID = st.Winner.ID
		ev.PlayerName = st.Winner.Name
		logger.LogInfo("游戏结束: %s 获胜 (%s)", st.Winner.Name, st.WinReason)
	}
	t.emit(ev)
}

func (t *Table) emit(ev protocol.Event) {
	t.notifier.Notify(ev)
}
