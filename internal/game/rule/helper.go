package rule

import (
	"slices"

	"github.com/palemoky/dasar/internal/game/card"
)

// sameSuit 检查所有牌是否同一花色
func sameSuit(cards []card.Card, suit card.Suit) bool {
	for _, c := range cards {
		if c.Suit != suit {
			return false
		}
	}
	return true
}

// sortByRank 返回按点数升序排列的副本
func sortByRank(cards []card.Card) []card.Card {
	sorted := slices.Clone(cards)
	slices.SortStableFunc(sorted, func(a, b card.Card) int {
		return int(a.Rank) - int(b.Rank)
	})
	return sorted
}

// fillRun 沿升序的普通牌逐对检查间隔，每缺一个点数消耗一张王牌。
// 返回补好的顺子和剩余的王牌；出现重复点数或王牌不够时失败
func fillRun(asc, jokers []card.Card) (run, rest []card.Card, ok bool) {
	if len(asc) == 0 {
		return nil, jokers, false
	}

	rest = jokers
	run = []card.Card{asc[0]}
	for i := 1; i < len(asc); i++ {
		gap := int(asc[i].Rank-asc[i-1].Rank) - 1
		if gap < 0 {
			return nil, nil, false
		}
		if gap > len(rest) {
			return nil, nil, false
		}
		run = append(run, rest[:gap]...)
		rest = rest[gap:]
		run = append(run, asc[i])
	}
	return run, rest, true
}

// planExtension 计算接到顺子一端的牌（已按顺子顺序排好）。
// 接缝处缺的点数同样消耗新牌中的王牌，剩余王牌放在最外侧
func planExtension(existing, newCards []card.Card, position Position) ([]card.Card, bool) {
	if len(newCards) == 0 {
		return nil, false
	}

	jokers, normal := card.SplitJokers(newCards)
	if len(normal) == 0 {
		return nil, false
	}

	base := slices.IndexFunc(existing, func(c card.Card) bool { return !c.IsJoker() })
	if base < 0 || !sameSuit(normal, existing[base].Suit) {
		return nil, false
	}

	low, high, _ := Bounds(existing)
	asc := sortByRank(normal)

	var seam int
	if position == Before {
		seam = int(low-asc[len(asc)-1].Rank) - 1
	} else {
		seam = int(asc[0].Rank-high) - 1
	}
	if seam < 0 || seam > len(jokers) {
		return nil, false
	}

	seamJokers, pool := jokers[:seam], jokers[seam:]
	run, rest, ok := fillRun(asc, pool)
	if !ok {
		return nil, false
	}

	// 外侧的王牌不能越过 2 或 A
	if position == Before {
		if int(asc[0].Rank)-len(rest) < int(card.Rank2) {
			return nil, false
		}
		return slices.Concat(rest, run, seamJokers), true
	}
	if int(asc[len(asc)-1].Rank)+len(rest) > int(card.RankA) {
		return nil, false
	}
	return slices.Concat(seamJokers, run, rest), true
}
