package card

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"strconv"
)

// Suit 定义花色
type Suit int

// Rank 定义点数，数值即顺子中的排列位置（2..14），王牌没有固定位置
type Rank int

const (
	Club    Suit = iota // 梅花
	Diamond             // 方块
	Heart               // 红心
	Spade               // 黑桃
	Joker               // 王牌
)

// StandardSuits 四种普通花色
var StandardSuits = []Suit{Club, Diamond, Heart, Spade}

// suitSymbols 花色符号映射表
var suitSymbols = map[Suit]string{
	Club:    "♣",
	Diamond: "♦",
	Heart:   "♥",
	Spade:   "♠",
	Joker:   "🃏",
}

// suitNames 花色名称，用于生成牌的 ID
var suitNames = map[Suit]string{
	Club:    "clubs",
	Diamond: "diamonds",
	Heart:   "hearts",
	Spade:   "spades",
	Joker:   "joker",
}

func (s Suit) String() string {
	if symbol, ok := suitSymbols[s]; ok {
		return symbol
	}
	return ""
}

// Name 返回花色的英文名
func (s Suit) Name() string {
	return suitNames[s]
}

// IsRed 红心和方块是红色
func (s Suit) IsRed() bool {
	return s == Heart || s == Diamond
}

const (
	Rank2 Rank = iota + 2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
	Rank9
	Rank10
	RankJ // Jack
	RankQ // Queen
	RankK // King
	RankA // Ace，只能当最大，不能接在 2 前面
	RankJoker
)

// rankNames 牌面值字符串映射表
var rankNames = map[Rank]string{
	Rank2:     "2",
	Rank3:     "3",
	Rank4:     "4",
	Rank5:     "5",
	Rank6:     "6",
	Rank7:     "7",
	Rank8:     "8",
	Rank9:     "9",
	Rank10:    "10",
	RankJ:     "J",
	RankQ:     "Q",
	RankK:     "K",
	RankA:     "A",
	RankJoker: "JOKER",
}

func (r Rank) String() string {
	if name, ok := rankNames[r]; ok {
		return name
	}
	return strconv.Itoa(int(r))
}

// Value 计分值：A=15，J/Q/K=10，数字牌为面值，王牌为 0
func (r Rank) Value() int {
	switch {
	case r == RankJoker:
		return 0
	case r == RankA:
		return 15
	case r >= RankJ:
		return 10
	default:
		return int(r)
	}
}

const (
	DecksPerGame  = 2
	JokersPerDeck = 2
	DeckSize      = 52*DecksPerGame + JokersPerDeck*DecksPerGame // 108
)

// Card 定义一张牌。两副牌中相同花色点数的牌只能靠 ID 区分
type Card struct {
	ID    string
	Suit  Suit
	Rank  Rank
	Deck  int // 来自第几副牌（1 或 2），不影响规则
	Value int
}

// NewCard 创建一张普通牌
func NewCard(suit Suit, rank Rank, deck int) Card {
	return Card{
		ID:    fmt.Sprintf("%s-%s-%d", suit.Name(), rank, deck),
		Suit:  suit,
		Rank:  rank,
		Deck:  deck,
		Value: rank.Value(),
	}
}

// NewJoker 创建第 index 张王牌（0..3）
func NewJoker(index, deck int) Card {
	return Card{
		ID:    fmt.Sprintf("joker-%d", index),
		Suit:  Joker,
		Rank:  RankJoker,
		Deck:  deck,
		Value: 0,
	}
}

// IsJoker 判断是否为王牌
func (c Card) IsJoker() bool {
	return c.Suit == Joker
}

func (c Card) String() string {
	if c.IsJoker() {
		return "JKR"
	}
	return c.Rank.String() + c.Suit.String()
}

// Deck 定义牌堆
type Deck []Card

// NewDeck 按固定顺序生成 108 张牌：两副 52 张加 4 张王牌，每副牌带 2 张王
func NewDeck() Deck {
	deck := make(Deck, 0, DeckSize)
	for d := 1; d <= DecksPerGame; d++ {
		for _, s := range StandardSuits {
			for r := Rank2; r <= RankA; r++ {
				deck = append(deck, NewCard(s, r, d))
			}
		}
	}
	for i := range JokersPerDeck * DecksPerGame {
		deck = append(deck, NewJoker(i, i/JokersPerDeck+1))
	}
	return deck
}

// Shuffle 均匀洗牌（Fisher-Yates）。rng 为 nil 时使用全局随机源
func (d Deck) Shuffle(rng *rand.Rand) {
	swap := func(i, j int) { d[i], d[j] = d[j], d[i] }
	if rng == nil {
		rand.Shuffle(len(d), swap)
		return
	}
	rng.Shuffle(len(d), swap)
}

// Build 生成一副洗好的牌
func Build(rng *rand.Rand) Deck {
	deck := NewDeck()
	deck.Shuffle(rng)
	return deck
}

// Deal 按座位顺序从牌堆顶部给每位玩家发 handSize 张牌，返回各家手牌和剩余牌堆。
// 原牌堆不会被修改
func Deal(deck Deck, playerCount, handSize int) ([][]Card, Deck, error) {
	if playerCount <= 0 || handSize <= 0 {
		return nil, deck, fmt.Errorf("无效的发牌参数: %d 人, 每人 %d 张", playerCount, handSize)
	}
	need := playerCount * handSize
	if need > len(deck) {
		return nil, deck, fmt.Errorf("牌不够: 需要 %d 张, 只剩 %d 张", need, len(deck))
	}

	hands := make([][]Card, playerCount)
	for i := range playerCount {
		hands[i] = slices.Clone(deck[i*handSize : (i+1)*handSize])
	}
	remaining := slices.Clone(deck[need:])
	return hands, remaining, nil
}

// SortHand 按花色再按点数整理手牌，王牌放最后。只影响显示
func SortHand(hand []Card) {
	slices.SortStableFunc(hand, func(a, b Card) int {
		if a.Suit != b.Suit {
			return int(a.Suit) - int(b.Suit)
		}
		return int(a.Rank) - int(b.Rank)
	})
}

// Score 手牌计分，越低越好
func Score(cards []Card) int {
	total := 0
	for _, c := range cards {
		total += c.Value
	}
	return total
}
