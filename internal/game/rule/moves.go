package rule

import "github.com/palemoky/dasar/internal/game/card"

// CanMakeMove 判断一手牌在当前桌面上是否还有合法出法：
// 任意三张组成 triple；或（还没开过 dasar 时）任意三张组成 dasar；
// 或任意一张牌能接到桌上某个 dasar 的任一端
func CanMakeMove(hand []card.Card, hasPlayedBase bool, runs [][]card.Card) bool {
	if FindTriple(hand) != nil {
		return true
	}
	if !hasPlayedBase && FindDasar(hand) != nil {
		return true
	}
	_, _, ok := FindExtension(hand, runs)
	return ok
}

// FindTriple 枚举手牌中所有三张组合，返回第一组合法的 triple，找不到返回 nil
func FindTriple(hand []card.Card) []card.Card {
	return findThree(hand, ValidateTriple)
}

// FindDasar 枚举手牌中所有三张组合，返回第一组合法的 dasar，找不到返回 nil
func FindDasar(hand []card.Card) []card.Card {
	return findThree(hand, ValidateDasar)
}

// FindExtension 找到第一张能单独接到 runs 中某个顺子上的牌，返回顺子下标和这张牌
func FindExtension(hand []card.Card, runs [][]card.Card) (int, card.Card, bool) {
	for i, run := range runs {
		for _, c := range hand {
			one := []card.Card{c}
			if ValidateContinueDasar(run, one, After) || ValidateContinueDasar(run, one, Before) {
				return i, c, true
			}
		}
	}
	return -1, card.Card{}, false
}

// findThree 最多 C(n,3) 次检查，20 张手牌为 1140 种组合
func findThree(hand []card.Card, valid func([]card.Card) bool) []card.Card {
	n := len(hand)
	buf := make([]card.Card, 3)
	for i := 0; i < n-2; i++ {
		for j := i + 1; j < n-1; j++ {
			for k := j + 1; k < n; k++ {
				buf[0], buf[1], buf[2] = hand[i], hand[j], hand[k]
				if valid(buf) {
					return []card.Card{hand[i], hand[j], hand[k]}
				}
			}
		}
	}
	return nil
}
