package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/dasar/internal/game/card"
	"github.com/palemoky/dasar/internal/protocol"
)

func TestCardToInfo(t *testing.T) {
	t.Parallel()

	info := CardToInfo(card.NewCard(card.Spade, card.RankQ, 2))

	assert.Equal(t, protocol.CardInfo{ID: "spades-Q-2", Suit: int(card.Spade), Rank: int(card.RankQ)}, info)
}

func TestCardsToInfos(t *testing.T) {
	t.Parallel()

	cards := []card.Card{
		card.NewCard(card.Heart, card.Rank3, 1),
		card.NewJoker(2, 2),
	}

	infos := CardsToInfos(cards)
	require.Len(t, infos, 2)
	assert.Equal(t, "hearts-3-1", infos[0].ID)
	assert.Equal(t, "joker-2", infos[1].ID)
	assert.Equal(t, int(card.RankJoker), infos[1].Rank)

	assert.Empty(t, CardsToInfos(nil))
}
