package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/dasar/internal/game/card"
	"github.com/palemoky/dasar/internal/game/rule"
	"github.com/palemoky/dasar/internal/game/session"
	"github.com/palemoky/dasar/internal/protocol"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		line     string
		expected Command
	}{
		{"dasar", "d 1 2 3", Command{Kind: KindPlay, Action: protocol.ActionPlayDasar, Positions: []int{1, 2, 3}}},
		{"dasar long form with commas", "DASAR 3,1, 2", Command{Kind: KindPlay, Action: protocol.ActionPlayDasar, Positions: []int{3, 1, 2}}},
		{"triple", "t 4 5 6", Command{Kind: KindPlay, Action: protocol.ActionPlayTriple, Positions: []int{4, 5, 6}}},
		{"extend", "e 2 7", Command{Kind: KindPlay, Action: protocol.ActionExtendDasar, Positions: []int{7}, Target: 2}},
		{"extend several", "extend 1 7 8", Command{Kind: KindPlay, Action: protocol.ActionExtendDasar, Positions: []int{7, 8}, Target: 1}},
		{"hint", "h", Command{Kind: KindHint}},
		{"help", "?", Command{Kind: KindHelp}},
		{"quit", " quit ", Command{Kind: KindQuit}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cmd, err := Parse(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cmd)
		})
	}
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		line string
	}{
		{"empty", "   "},
		{"unknown", "pass"},
		{"not a number", "d 1 x 3"},
		{"zero", "d 0 1 2"},
		{"no cards", "d"},
		{"extend without cards", "e 2"},
		{"duplicate", "t 1 1 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Parse(tt.line)
			assert.Error(t, err)
		})
	}

	_, err := Parse("")
	assert.ErrorIs(t, err, ErrEmpty)
	_, err = Parse("bid")
	assert.ErrorIs(t, err, ErrUnknownCommand)
}

func testTable() ([]card.Card, []session.Play) {
	hand := []card.Card{
		card.NewCard(card.Club, card.Rank2, 1),
		card.NewCard(card.Club, card.Rank3, 1),
		card.NewCard(card.Club, card.Rank4, 1),
		card.NewCard(card.Heart, card.Rank8, 1),
		card.NewJoker(1, 1),
	}
	plays := []session.Play{
		{ID: "play-a", Type: rule.Triple},
		{ID: "play-b", Type: rule.Dasar},
	}
	return hand, plays
}

func TestCommand_Intent(t *testing.T) {
	t.Parallel()

	hand, plays := testTable()

	cmd, err := Parse("d 3 1 2")
	require.NoError(t, err)
	intent, err := cmd.Intent("player-0", hand, plays)
	require.NoError(t, err)
	assert.Equal(t, protocol.Intent{
		Action:   protocol.ActionPlayDasar,
		PlayerID: "player-0",
		CardIDs:  []string{"clubs-4-1", "clubs-2-1", "clubs-3-1"},
	}, intent)
	assert.NoError(t, intent.Validate())

	cmd, err = Parse("e 2 4 5")
	require.NoError(t, err)
	intent, err = cmd.Intent("player-0", hand, plays)
	require.NoError(t, err)
	assert.Equal(t, "play-b", intent.TargetPlayID)
	assert.Equal(t, []string{"hearts-8-1", "joker-1"}, intent.CardIDs)
	assert.NoError(t, intent.Validate())
}

func TestCommand_IntentErrors(t *testing.T) {
	t.Parallel()

	hand, plays := testTable()

	for _, line := range []string{"d 1 2 6", "e 3 1", "h"} {
		cmd, err := Parse(line)
		require.NoError(t, err)
		_, err = cmd.Intent("player-0", hand, plays)
		assert.Error(t, err, line)
	}
}

func TestFormat_RoundTrips(t *testing.T) {
	t.Parallel()

	hand, plays := testTable()

	tests := []struct {
		name       string
		suggestion session.Suggestion
		expected   string
	}{
		{"dasar", session.Suggestion{Type: rule.Dasar, Cards: hand[:3]}, "d 1 2 3"},
		{"triple", session.Suggestion{Type: rule.Triple, Cards: []card.Card{hand[4], hand[0], hand[1]}}, "t 5 1 2"},
		{"extension", session.Suggestion{Type: rule.Dasar, Cards: hand[3:4], TargetPlayID: "play-b"}, "e 2 4"},
		{"card not in hand", session.Suggestion{Type: rule.Dasar, Cards: []card.Card{card.NewCard(card.Spade, card.RankA, 2)}}, ""},
		{"unknown target", session.Suggestion{Type: rule.Dasar, Cards: hand[3:4], TargetPlayID: "play-z"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			line := Format(tt.suggestion, hand, plays)
			assert.Equal(t, tt.expected, line)
			if line == "" {
				return
			}

			cmd, err := Parse(line)
			require.NoError(t, err)
			intent, err := cmd.Intent("player-0", hand, plays)
			require.NoError(t, err)
			assert.Equal(t, card.IDs(tt.suggestion.Cards), intent.CardIDs)
			assert.Equal(t, tt.suggestion.TargetPlayID, intent.TargetPlayID)
		})
	}
}
