package session

import (
	"math/rand/v2"
	"sync"

	"github.com/google/uuid"

	"github.com/palemoky/dasar/internal/game/card"
	"github.com/palemoky/dasar/internal/game/rule"
)

const (
	DefaultHandSize = 20
	MinPlayers      = 2
	MaxPlayers      = 5
)

// Player 游戏中的玩家
type Player struct {
	ID            string
	Name          string
	Hand          []card.Card
	IsAlive       bool
	HasPlayedBase bool // 是否已经开过 dasar
	TurnOrder     int  // 座位号，创建后不变
}

// Play 桌面上的一组牌。dasar 可以被任何人继续接，但所有者不变
type Play struct {
	ID       string
	Type     rule.PlayType
	Cards    []card.Card
	OwnerID  string
	Sequence int // 创建顺序，只用于显示
}

// GameSession 一局游戏的全部可变状态，只能通过自身方法修改
type GameSession struct {
	// 配置
	rng        *rand.Rand
	handSize   int
	maxPlayers int
	buildDeck  func(*rand.Rand) card.Deck
	newPlayID  func() string

	// 状态
	status        Status
	players       []*Player // 按座位顺序
	deck          card.Deck
	cardTotal     int
	dealt         bool
	currentPlayer int
	plays         []*Play
	winnerIdx     int
	winReason     WinReason
	scores        map[string]int
	turn          int

	mu sync.RWMutex
}

// Option 会话配置项
type Option func(*GameSession)

// WithRand 注入洗牌用的随机源，测试时传入固定种子
func WithRand(rng *rand.Rand) Option {
	return func(gs *GameSession) { gs.rng = rng }
}

// WithSeed 使用固定种子的 PCG 随机源
func WithSeed(seed uint64) Option {
	return WithRand(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// WithHandSize 每人起手牌数
func WithHandSize(n int) Option {
	return func(gs *GameSession) { gs.handSize = n }
}

// WithMaxPlayers 最多玩家数
func WithMaxPlayers(n int) Option {
	return func(gs *GameSession) { gs.maxPlayers = n }
}

// WithDeckBuilder 替换牌堆生成方式
func WithDeckBuilder(build func(*rand.Rand) card.Deck) Option {
	return func(gs *GameSession) { gs.buildDeck = build }
}

// WithPlayIDGenerator 替换桌面组合的 ID 生成方式
func WithPlayIDGenerator(gen func() string) Option {
	return func(gs *GameSession) { gs.newPlayID = gen }
}

// NewGameSession 创建处于 waiting 状态的会话
func NewGameSession(opts ...Option) *GameSession {
	gs := &GameSession{
		handSize:   DefaultHandSize,
		maxPlayers: MaxPlayers,
		buildDeck:  card.Build,
		newPlayID:  func() string { return "play-" + uuid.NewString() },
		winnerIdx:  -1,
	}
	for _, opt := range opts {
		opt(gs)
	}
	return gs
}

// CalculateScore 手牌计分，越低越好
func CalculateScore(cards []card.Card) int {
	return card.Score(cards)
}

// findPlayer 返回玩家下标，找不到返回 -1
func (gs *GameSession) findPlayer(playerID string) int {
	for i, p := range gs.players {
		if p.ID == playerID {
			return i
		}
	}
	return -1
}

// findPlay 按 ID 查找桌面组合
func (gs *GameSession) findPlay(playID string) *Play {
	for _, p := range gs.plays {
		if p.ID == playID {
			return p
		}
	}
	return nil
}

// runs 桌上所有 dasar 的牌
func (gs *GameSession) runs() [][]card.Card {
	var runs [][]card.Card
	for _, p := range gs.plays {
		if p.Type == rule.Dasar {
			runs = append(runs, p.Cards)
		}
	}
	return runs
}
