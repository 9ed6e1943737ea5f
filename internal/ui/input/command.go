// Package input parses the command line typed by the current player.
package input

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/palemoky/dasar/internal/game/card"
	"github.com/palemoky/dasar/internal/game/rule"
	"github.com/palemoky/dasar/internal/game/session"
	"github.com/palemoky/dasar/internal/protocol"
)

// Kind 命令类型
type Kind int

const (
	KindPlay Kind = iota
	KindHint
	KindHelp
	KindQuit
)

// Command 一条解析后的命令。Positions 和 Target 都从 1 开始计数
type Command struct {
	Kind      Kind
	Action    protocol.Action
	Positions []int // 手牌序号
	Target    int   // 桌面组合序号，只用于接牌
}

var (
	ErrEmpty          = errors.New("请输入命令，? 查看帮助")
	ErrUnknownCommand = errors.New("未知命令，? 查看帮助")
)

var actions = map[string]protocol.Action{
	"d":      protocol.ActionPlayDasar,
	"dasar":  protocol.ActionPlayDasar,
	"t":      protocol.ActionPlayTriple,
	"triple": protocol.ActionPlayTriple,
	"e":      protocol.ActionExtendDasar,
	"extend": protocol.ActionExtendDasar,
}

// Parse 解析一行输入，例如 "d 1 2 3"、"t 4,5,6"、"e 2 7"（把第 7 张牌接到第 2 组）
func Parse(line string) (Command, error) {
	fields := strings.FieldsFunc(strings.ToLower(line), func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t'
	})
	if len(fields) == 0 {
		return Command{}, ErrEmpty
	}

	switch fields[0] {
	case "h", "hint":
		return Command{Kind: KindHint}, nil
	case "?", "help":
		return Command{Kind: KindHelp}, nil
	case "q", "quit", "exit":
		return Command{Kind: KindQuit}, nil
	}

	action, ok := actions[fields[0]]
	if !ok {
		return Command{}, ErrUnknownCommand
	}

	nums := make([]int, 0, len(fields)-1)
	for _, f := range fields[1:] {
		n, err := strconv.Atoi(f)
		if err != nil || n < 1 {
			return Command{}, fmt.Errorf("无效的序号: %q", f)
		}
		nums = append(nums, n)
	}

	cmd := Command{Kind: KindPlay, Action: action}
	if action == protocol.ActionExtendDasar {
		if len(nums) < 2 {
			return Command{}, errors.New("接牌格式: e <组合序号> <手牌序号...>")
		}
		cmd.Target, nums = nums[0], nums[1:]
	}
	if len(nums) == 0 {
		return Command{}, errors.New("请选择要出的牌")
	}
	if len(slices.Compact(slices.Sorted(slices.Values(nums)))) != len(nums) {
		return Command{}, errors.New("同一张牌不能选两次")
	}
	cmd.Positions = nums
	return cmd, nil
}

// Intent 按当前手牌和桌面把命令换成出牌意图
func (c Command) Intent(playerID string, hand []card.Card, plays []session.Play) (protocol.Intent, error) {
	if c.Kind != KindPlay {
		return protocol.Intent{}, errors.New("不是出牌命令")
	}

	intent := protocol.Intent{Action: c.Action, PlayerID: playerID}
	for _, pos := range c.Positions {
		if pos > len(hand) {
			return protocol.Intent{}, fmt.Errorf("手牌只有 %d 张，没有第 %d 张", len(hand), pos)
		}
		intent.CardIDs = append(intent.CardIDs, hand[pos-1].ID)
	}

	if c.Action == protocol.ActionExtendDasar {
		if c.Target > len(plays) {
			return protocol.Intent{}, fmt.Errorf("桌上没有第 %d 组", c.Target)
		}
		intent.TargetPlayID = plays[c.Target-1].ID
	}
	return intent, nil
}

// Format 把出牌建议写成可以直接输入的命令
func Format(s session.Suggestion, hand []card.Card, plays []session.Play) string {
	positions := make([]string, 0, len(s.Cards))
	for _, c := range s.Cards {
		idx := slices.IndexFunc(hand, func(h card.Card) bool { return h.ID == c.ID })
		if idx < 0 {
			return ""
		}
		positions = append(positions, strconv.Itoa(idx+1))
	}

	switch {
	case s.TargetPlayID != "":
		target := slices.IndexFunc(plays, func(p session.Play) bool { return p.ID == s.TargetPlayID })
		if target < 0 {
			return ""
		}
		return fmt.Sprintf("e %d %s", target+1, strings.Join(positions, " "))
	case s.Type == rule.Triple:
		return "t " + strings.Join(positions, " ")
	default:
		return "d " + strings.Join(positions, " ")
	}
}
