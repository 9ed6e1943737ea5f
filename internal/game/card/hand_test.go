package card

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testHand() []Card {
	return []Card{
		NewCard(Club, Rank5, 1),
		NewCard(Club, Rank5, 2),
		NewCard(Heart, RankK, 1),
		NewJoker(0, 1),
		NewJoker(2, 2),
	}
}

func TestFindByIDs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		ids      []string
		expected []string
		hasError bool
	}{
		{
			name:     "Keeps request order",
			ids:      []string{"joker-2", "clubs-5-2"},
			expected: []string{"joker-2", "clubs-5-2"},
		},
		{
			name:     "Distinguishes copies by deck",
			ids:      []string{"clubs-5-1"},
			expected: []string{"clubs-5-1"},
		},
		{
			name:     "Unknown id",
			ids:      []string{"spades-5-1"},
			hasError: true,
		},
		{
			name:     "Duplicate id",
			ids:      []string{"joker-0", "joker-0"},
			hasError: true,
		},
		{
			name:     "Empty selection",
			ids:      nil,
			hasError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cards, err := FindByIDs(testHand(), tt.ids)
			if tt.hasError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, IDs(cards))
		})
	}
}

func TestRemoveCards_ByIdentity(t *testing.T) {
	t.Parallel()

	hand := testHand()
	// 只移除第二副牌的 5♣，第一副的必须保留
	result := RemoveCards(hand, []Card{NewCard(Club, Rank5, 2)})

	assert.Equal(t, []string{"clubs-5-1", "hearts-K-1", "joker-0", "joker-2"}, IDs(result))
	assert.Len(t, hand, 5, "input hand must not be modified")
}

func TestSplitJokers(t *testing.T) {
	t.Parallel()

	jokers, normal := SplitJokers(testHand())
	assert.Len(t, jokers, 2)
	assert.Len(t, normal, 3)
	assert.Equal(t, 2, CountJokers(testHand()))
}

func TestCountRanks(t *testing.T) {
	t.Parallel()

	counts := CountRanks(testHand())
	assert.Equal(t, map[Rank]int{Rank5: 2, RankK: 1}, counts)
}
