package card

import (
	"fmt"
	"slices"
)

// FindByIDs 按 ID 从手牌中取出对应的牌，保持请求中的顺序
func FindByIDs(hand []Card, ids []string) ([]Card, error) {
	if len(ids) == 0 {
		return nil, fmt.Errorf("没有选择任何牌")
	}

	index := make(map[string]Card, len(hand))
	for _, c := range hand {
		index[c.ID] = c
	}

	seen := make(map[string]bool, len(ids))
	result := make([]Card, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			return nil, fmt.Errorf("重复选择了同一张牌: %s", id)
		}
		seen[id] = true

		c, ok := index[id]
		if !ok {
			return nil, fmt.Errorf("手牌中没有这张牌: %s", id)
		}
		result = append(result, c)
	}
	return result, nil
}

// IDs 返回牌的 ID 列表
func IDs(cards []Card) []string {
	ids := make([]string, len(cards))
	for i, c := range cards {
		ids[i] = c.ID
	}
	return ids
}

// RemoveCards 按 ID 从手牌中移除指定的牌，返回新的切片
func RemoveCards(hand, toRemove []Card) []Card {
	ids := IDs(toRemove)
	result := make([]Card, 0, len(hand))
	for _, c := range hand {
		if !slices.Contains(ids, c.ID) {
			result = append(result, c)
		}
	}
	return result
}

// SplitJokers 把牌分成王牌和普通牌两组
func SplitJokers(cards []Card) (jokers, normal []Card) {
	for _, c := range cards {
		if c.IsJoker() {
			jokers = append(jokers, c)
		} else {
			normal = append(normal, c)
		}
	}
	return jokers, normal
}

// CountJokers 统计王牌数量
func CountJokers(cards []Card) int {
	n := 0
	for _, c := range cards {
		if c.IsJoker() {
			n++
		}
	}
	return n
}

// CountRanks 统计各普通点数的数量（不含王牌）
func CountRanks(cards []Card) map[Rank]int {
	counts := make(map[Rank]int)
	for _, c := range cards {
		if !c.IsJoker() {
			counts[c.Rank]++
		}
	}
	return counts
}
