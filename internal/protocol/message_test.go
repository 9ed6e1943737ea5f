package protocol

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/palemoky/dasar/internal/game/rule"
)

func TestIntentPlayType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		action   Action
		expected rule.PlayType
	}{
		{ActionPlayDasar, rule.Dasar},
		{ActionExtendDasar, rule.Dasar},
		{ActionPlayTriple, rule.Triple},
		{Action("pass"), rule.InvalidPlay},
	}

	for _, tt := range tests {
		t.Run(string(tt.action), func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, Intent{Action: tt.action}.PlayType())
		})
	}
}

func TestIntentValidate(t *testing.T) {
	t.Parallel()

	cards := []string{"clubs-5-1", "clubs-6-1", "clubs-7-1"}

	tests := []struct {
		name    string
		intent  Intent
		wantErr bool
	}{
		{"new dasar", Intent{Action: ActionPlayDasar, CardIDs: cards}, false},
		{"triple", Intent{Action: ActionPlayTriple, CardIDs: cards}, false},
		{"extend", Intent{Action: ActionExtendDasar, CardIDs: cards[:1], TargetPlayID: "play-1"}, false},
		{"extend without target", Intent{Action: ActionExtendDasar, CardIDs: cards[:1]}, true},
		{"dasar with target", Intent{Action: ActionPlayDasar, CardIDs: cards, TargetPlayID: "play-1"}, true},
		{"no cards", Intent{Action: ActionPlayTriple}, true},
		{"unknown action", Intent{Action: "pass", CardIDs: cards}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.intent.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
