package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/dasar/internal/apperrors"
	"github.com/palemoky/dasar/internal/game/card"
	"github.com/palemoky/dasar/internal/game/rule"
)

func TestCheckWinCondition(t *testing.T) {
	t.Parallel()

	eight := make([]card.Card, 0, 9)
	for d := 1; d <= card.DecksPerGame; d++ {
		for _, s := range card.StandardSuits {
			eight = append(eight, card.NewCard(s, card.Rank9, d))
		}
	}
	eight = append(eight, c(card.Club, card.Rank2))

	tests := []struct {
		name   string
		hand   []card.Card
		reason WinReason
		won    bool
	}{
		{"Four jokers", []card.Card{jk(0), jk(1), jk(2), jk(3), c(card.Heart, card.RankK)}, WinFourJokers, true},
		{"Eight of a kind", eight, WinEightOfAKind, true},
		{"Three jokers", []card.Card{jk(0), jk(1), jk(2)}, "", false},
		{"Seven of a kind", eight[1:], "", false},
		{"Ordinary hand", []card.Card{c(card.Club, card.Rank2), c(card.Heart, card.Rank7)}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			gs := NewTestSession(tt.hand, []card.Card{c2(card.Spade, card.Rank3)})
			winner, reason, won := gs.CheckWinCondition()
			assert.Equal(t, tt.won, won)
			assert.Equal(t, tt.reason, reason)
			if !tt.won {
				assert.Equal(t, StatusPlaying, gs.Status())
				return
			}
			assert.Equal(t, "player-0", winner.ID)
			st := gs.Snapshot()
			assert.Equal(t, StatusFinished, st.Status)
			require.NotNil(t, st.Winner)
			assert.Equal(t, "player-0", st.Winner.ID)
			assert.Equal(t, tt.reason, st.WinReason)
		})
	}
}

func TestCheckWinCondition_Zonk(t *testing.T) {
	t.Parallel()

	hand := []card.Card{c(card.Diamond, card.RankJ), c(card.Diamond, card.RankQ), jk(1)}
	gs := NewTestSession(hand, []card.Card{c(card.Spade, card.Rank3)})

	_, err := gs.PlayCards("player-0", ids(hand...), rule.Dasar, "")
	require.NoError(t, err)

	winner, reason, won := gs.CheckWinCondition()
	require.True(t, won)
	assert.Equal(t, WinZonk, reason)
	assert.Equal(t, "player-0", winner.ID)
	assert.Empty(t, winner.Hand)

	// 结束后再次检查返回同一个结果
	again, reason, won := gs.CheckWinCondition()
	assert.True(t, won)
	assert.Equal(t, WinZonk, reason)
	assert.Equal(t, winner.ID, again.ID)
}

func TestCheckWinCondition_BeforeDeal(t *testing.T) {
	t.Parallel()

	gs := NewGameSession()
	_, _, won := gs.CheckWinCondition()
	assert.False(t, won)

	require.NoError(t, gs.InitializeGame([]string{"a", "b"}))
	_, _, won = gs.CheckWinCondition()
	assert.False(t, won, "empty hands before dealing are not a zonk")
	assert.Equal(t, StatusPlaying, gs.Status())
}

func TestMarkPlayerDead_LowestScoreWins(t *testing.T) {
	t.Parallel()

	gs := NewTestSession(
		[]card.Card{c(card.Spade, card.RankA)},
		[]card.Card{c(card.Club, card.Rank2), c(card.Club, card.Rank3)},
	)
	require.NoError(t, gs.MarkPlayerDead("player-0"))

	st := gs.Snapshot()
	assert.Equal(t, StatusFinished, st.Status)
	require.NotNil(t, st.Winner)
	assert.Equal(t, "player-1", st.Winner.ID)
	assert.Equal(t, WinLowestScore, st.WinReason)
	assert.Equal(t, map[string]int{"player-0": 15, "player-1": 5}, st.Scores)
}

func TestMarkPlayerDead_DeadPlayersAreScored(t *testing.T) {
	t.Parallel()

	gs := NewTestSession(
		[]card.Card{c(card.Club, card.Rank2)},
		[]card.Card{c(card.Heart, card.RankK), c(card.Heart, card.RankQ)},
		[]card.Card{c(card.Spade, card.Rank9)},
	)
	require.NoError(t, gs.MarkPlayerDead("player-0"))
	assert.Equal(t, StatusPlaying, gs.Status())

	require.NoError(t, gs.MarkPlayerDead("player-2"))

	st := gs.Snapshot()
	require.NotNil(t, st.Winner)
	assert.Equal(t, "player-0", st.Winner.ID, "an eliminated player with the lowest score still wins")
	assert.False(t, st.Winner.IsAlive)
}

func TestMarkPlayerDead_TieGoesToEarlierSeat(t *testing.T) {
	t.Parallel()

	gs := NewTestSession(
		[]card.Card{c(card.Club, card.RankK)},
		[]card.Card{c(card.Heart, card.Rank10)},
		[]card.Card{c(card.Spade, card.RankJ)},
	)
	require.NoError(t, gs.MarkPlayerDead("player-0"))
	require.NoError(t, gs.MarkPlayerDead("player-2"))

	st := gs.Snapshot()
	require.NotNil(t, st.Winner)
	assert.Equal(t, "player-0", st.Winner.ID)
}

func TestMarkPlayerDead_Idempotent(t *testing.T) {
	t.Parallel()

	gs := NewTestSession(
		[]card.Card{c(card.Club, card.Rank2)},
		[]card.Card{c(card.Heart, card.Rank3)},
		[]card.Card{c(card.Spade, card.Rank4)},
	)
	require.NoError(t, gs.MarkPlayerDead("player-1"))
	before := gs.Snapshot()

	require.NoError(t, gs.MarkPlayerDead("player-1"))
	assert.Equal(t, before, gs.Snapshot())

	require.NoError(t, gs.MarkPlayerDead("player-2"))
	finished := gs.Snapshot()
	require.Equal(t, StatusFinished, finished.Status)

	require.NoError(t, gs.MarkPlayerDead("player-0"))
	assert.Equal(t, finished, gs.Snapshot(), "a finished game ignores eliminations")
}

func TestMarkPlayerDead_Errors(t *testing.T) {
	t.Parallel()

	assert.ErrorIs(t, NewGameSession().MarkPlayerDead("player-0"), apperrors.ErrGameNotStart)

	gs := NewTestSession([]card.Card{c(card.Club, card.Rank2)}, []card.Card{c(card.Club, card.Rank3)})
	assert.ErrorIs(t, gs.MarkPlayerDead("player-7"), apperrors.ErrPlayerNotFound)
}

func TestNextTurn_SkipsDeadPlayers(t *testing.T) {
	t.Parallel()

	hands := make([][]card.Card, 4)
	for i := range hands {
		hands[i] = []card.Card{card.NewCard(card.Heart, card.Rank2+card.Rank(i), 1)}
	}
	gs := NewTestSession(hands...)
	require.NoError(t, gs.MarkPlayerDead("player-1"))
	require.NoError(t, gs.MarkPlayerDead("player-2"))

	require.NoError(t, gs.NextTurn())
	st := gs.Snapshot()
	assert.Equal(t, 3, st.CurrentPlayerIndex)
	assert.Equal(t, 1, st.CurrentTurn)

	require.NoError(t, gs.NextTurn())
	st = gs.Snapshot()
	assert.Equal(t, 0, st.CurrentPlayerIndex, "turn order wraps around")
	assert.Equal(t, 2, st.CurrentTurn)
	require.NoError(t, gs.Verify())
}

func TestNextTurn_AlwaysLandsOnAlivePlayer(t *testing.T) {
	t.Parallel()

	hands := make([][]card.Card, 5)
	for i := range hands {
		hands[i] = []card.Card{card.NewCard(card.Diamond, card.Rank2+card.Rank(i), 1)}
	}

	for dead := range 5 {
		gs := NewTestSession(hands...)
		gs.SetCurrentPlayerForTest((dead + 1) % 5)
		require.NoError(t, gs.MarkPlayerDead(gs.players[dead].ID))

		for range 12 {
			require.NoError(t, gs.NextTurn())
			cur, ok := gs.CurrentPlayer()
			require.True(t, ok)
			assert.True(t, cur.IsAlive)
			assert.NotEqual(t, dead, cur.TurnOrder)
		}
		assert.Equal(t, 12, gs.Turn())
	}
}

func TestNextTurn_CurrentPlayerDied(t *testing.T) {
	t.Parallel()

	gs := NewTestSession(
		[]card.Card{c(card.Club, card.Rank2)},
		[]card.Card{c(card.Club, card.Rank3)},
		[]card.Card{c(card.Club, card.Rank4)},
	)
	require.NoError(t, gs.MarkPlayerDead("player-0"))
	require.NoError(t, gs.NextTurn())

	cur, _ := gs.CurrentPlayer()
	assert.Equal(t, "player-1", cur.ID)
}

func TestNextTurn_Errors(t *testing.T) {
	t.Parallel()

	assert.ErrorIs(t, NewGameSession().NextTurn(), apperrors.ErrGameNotStart)

	finished := NewTestSession([]card.Card{c(card.Club, card.Rank2)}, []card.Card{c(card.Club, card.Rank3)})
	require.NoError(t, finished.MarkPlayerDead("player-0"))
	assert.ErrorIs(t, finished.NextTurn(), apperrors.ErrGameFinished)

	lonely := NewTestSession([]card.Card{c(card.Club, card.Rank2)})
	lonely.players[0].IsAlive = false
	assert.ErrorIs(t, lonely.NextTurn(), apperrors.ErrNoAlivePlayers)
}

func TestVerify_DetectsCorruption(t *testing.T) {
	t.Parallel()

	gs := NewTestSession([]card.Card{c(card.Club, card.Rank2)}, []card.Card{c(card.Club, card.Rank3)})
	require.NoError(t, gs.Verify())

	gs.players[1].Hand = append(gs.players[1].Hand, c(card.Club, card.Rank2))
	assert.Error(t, gs.Verify(), "a card held twice")

	gs = NewTestSession([]card.Card{c(card.Club, card.Rank2)}, []card.Card{c(card.Club, card.Rank3)})
	gs.players[0].Hand = nil
	assert.Error(t, gs.Verify(), "a card vanished")

	gs = NewTestSession([]card.Card{c(card.Club, card.Rank2)}, []card.Card{c(card.Club, card.Rank3)}, nil)
	gs.players[0].IsAlive = false
	assert.Error(t, gs.Verify(), "current player is dead")
}
