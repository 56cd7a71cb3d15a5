package card_test

import (
	"encoding/json"
	"testing"

	"github.com/ratel-online/gofish/gofish/card"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew52(t *testing.T) {
	cards := card.New52()
	require.Len(t, cards, 52)

	seen := map[card.Card]bool{}
	for _, c := range cards {
		require.False(t, seen[c], "duplicate card %s", c)
		seen[c] = true
	}
	assert.Equal(t, card.New(card.Two, card.Spades), cards[0])
	assert.Equal(t, card.New(card.Ace, card.Diamonds), cards[51])
}

func TestValue(t *testing.T) {
	assert.Equal(t, 1, card.Two.Value())
	assert.Equal(t, 9, card.Ten.Value())
	assert.Equal(t, 13, card.Ace.Value())
	assert.Equal(t, 11, card.New(card.Queen, card.Hearts).Value())
}

func TestParseRank(t *testing.T) {
	scenarios := []struct {
		description string
		input       string
		expected    card.Rank
	}{
		{description: "number", input: "4", expected: card.Four},
		{description: "ten", input: "10", expected: card.Ten},
		{description: "full_name", input: "Jack", expected: card.Jack},
		{description: "lower_case_name", input: "queen", expected: card.Queen},
		{description: "letter", input: "k", expected: card.King},
		{description: "upper_case_letter", input: "A", expected: card.Ace},
		{description: "surrounding_space", input: " 7 ", expected: card.Seven},
	}
	for _, scenario := range scenarios {
		t.Run(scenario.description, func(t *testing.T) {
			rank, err := card.ParseRank(scenario.input)
			require.NoError(t, err)
			require.Equal(t, scenario.expected, rank)
		})
	}

	t.Run("rejects_unknown_ranks", func(t *testing.T) {
		for _, input := range []string{"", "1", "11", "joker"} {
			_, err := card.ParseRank(input)
			require.Error(t, err, input)
		}
	})
}

func TestString(t *testing.T) {
	assert.Equal(t, "4 of Hearts", card.New(card.Four, card.Hearts).String())
	assert.Equal(t, "Jack of Spades", card.New(card.Jack, card.Spades).String())
	assert.Equal(t, "Ace", card.Ace.String())
}

func TestJSON(t *testing.T) {
	data, err := json.Marshal(card.New(card.King, card.Clubs))
	require.NoError(t, err)
	require.JSONEq(t, `{"rank":"King","suit":"Clubs"}`, string(data))

	data, err = json.Marshal(card.New(card.Ten, card.Diamonds))
	require.NoError(t, err)
	require.JSONEq(t, `{"rank":"10","suit":"Diamonds"}`, string(data))
}
