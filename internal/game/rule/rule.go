package rule

import (
	"fmt"
	"slices"

	"github.com/palemoky/dasar/internal/game/card"
)

// PlayType 定义桌面组合的类型
type PlayType int

const (
	InvalidPlay PlayType = iota
	Dasar                // 同花顺（王牌可补位）
	Triple               // 三张同点
)

// playTypeNames 组合类型名称映射表
var playTypeNames = map[PlayType]string{
	Dasar:  "dasar",
	Triple: "triple",
}

func (p PlayType) String() string {
	if name, ok := playTypeNames[p]; ok {
		return name
	}
	return "invalid"
}

// ParsePlayType 从名称解析组合类型
func ParsePlayType(name string) (PlayType, error) {
	for t, n := range playTypeNames {
		if n == name {
			return t, nil
		}
	}
	return InvalidPlay, fmt.Errorf("不支持的组合类型: %q", name)
}

// Position 接牌的位置
type Position int

const (
	After  Position = iota // 接在顺子最大的一端
	Before                 // 接在顺子最小的一端
)

func (p Position) String() string {
	if p == Before {
		return "before"
	}
	return "after"
}

const (
	MinDasarLength = 3
	MaxDasarLength = int(card.RankA-card.Rank2) + 1 // 2 到 A 共 13 个点数
	TripleSize     = 3
)

// ValidateTriple 三张牌点数相同，王牌可以代替任意点数，但不能三张全是王
func ValidateTriple(cards []card.Card) bool {
	if len(cards) != TripleSize {
		return false
	}

	_, normal := card.SplitJokers(cards)
	if len(normal) == 0 {
		return false
	}

	base := normal[0].Rank
	for _, c := range normal[1:] {
		if c.Rank != base {
			return false
		}
	}
	return true
}

// ValidateDasar 至少三张同花色的连续点数，缺的点数用王牌补。
// 多出来的王牌不要求用完，但整组牌不能超出 2 到 A 的范围
func ValidateDasar(cards []card.Card) bool {
	if len(cards) < MinDasarLength || len(cards) > MaxDasarLength {
		return false
	}

	jokers, normal := card.SplitJokers(cards)
	if len(normal) == 0 || !sameSuit(normal, normal[0].Suit) {
		return false
	}

	_, _, ok := fillRun(sortByRank(normal), jokers)
	return ok
}

// ValidateContinueDasar 判断 newCards 能否接到已有顺子 existing 的 position 一端。
// existing 必须是已经排好序的合法顺子，这里不再重复校验
func ValidateContinueDasar(existing, newCards []card.Card, position Position) bool {
	_, ok := planExtension(existing, newCards, position)
	return ok
}

// ResolvePosition 新牌中最小的点数低于顺子起点则接在前面，否则接在后面
func ResolvePosition(existing, newCards []card.Card) Position {
	_, normal := card.SplitJokers(newCards)
	if len(normal) == 0 {
		return After
	}
	low, _, ok := Bounds(existing)
	if !ok {
		return After
	}

	lowest := slices.MinFunc(normal, func(a, b card.Card) int { return int(a.Rank) - int(b.Rank) })
	if lowest.Rank < low {
		return Before
	}
	return After
}

// Arrange 把一组合法的 dasar 排成从小到大的顺子，王牌放在它代替的位置。
// 多余的王牌先往 A 的方向补，到顶后再往 2 的方向补；
// ValidateDasar 保证总张数不超过 13，所以王牌不会排到 2 以下
func Arrange(cards []card.Card) ([]card.Card, bool) {
	if !ValidateDasar(cards) {
		return nil, false
	}

	jokers, normal := card.SplitJokers(cards)
	run, rest, _ := fillRun(sortByRank(normal), jokers)

	high := run[len(run)-1].Rank
	for len(rest) > 0 && high < card.RankA {
		run = append(run, rest[0])
		rest = rest[1:]
		high++
	}
	run = append(slices.Clone(rest), run...)
	return run, true
}

// Extend 返回接牌后的新顺子，不修改 existing
func Extend(existing, newCards []card.Card, position Position) ([]card.Card, bool) {
	added, ok := planExtension(existing, newCards, position)
	if !ok {
		return nil, false
	}
	if position == Before {
		return slices.Concat(added, existing), true
	}
	return slices.Concat(existing, added), true
}

// Bounds 返回已排好序的顺子覆盖的最小和最大点数，首尾的王牌也算在内
func Bounds(run []card.Card) (low, high card.Rank, ok bool) {
	idx := slices.IndexFunc(run, func(c card.Card) bool { return !c.IsJoker() })
	if idx < 0 {
		return 0, 0, false
	}
	low = run[idx].Rank - card.Rank(idx)
	high = low + card.Rank(len(run)-1)
	return low, high, true
}
