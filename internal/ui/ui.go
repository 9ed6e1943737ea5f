// Package ui provides the main entry point for the UI.
package ui

import (
	"github.com/palemoky/dasar/internal/config"
	"github.com/palemoky/dasar/internal/game/session"
	"github.com/palemoky/dasar/internal/game/table"
	"github.com/palemoky/dasar/internal/sound"
	"github.com/palemoky/dasar/internal/ui/model"
)

// NewGame creates the hot-seat game model described by cfg.
func NewGame(cfg *config.Config) *model.GameModel {
	return model.NewGameModel(cfg.Game.Players, TableFactory(cfg), newSound(cfg))
}

// TableFactory builds tables from cfg. With a fixed seed every table gets its own
// random source, so a restarted game deals the same cards again.
func TableFactory(cfg *config.Config) model.TableFactory {
	timeout := cfg.Game.TurnTimeoutDuration()
	return func(n table.Notifier) *table.Table {
		opts := []session.Option{
			session.WithHandSize(cfg.Game.HandSize),
			session.WithMaxPlayers(cfg.Game.MaxPlayers),
		}
		if cfg.Game.Seed != 0 {
			opts = append(opts, session.WithSeed(cfg.Game.Seed))
		}
		return table.New(session.NewGameSession(opts...), timeout, n)
	}
}

func newSound(cfg *config.Config) model.SoundPlayer {
	if !cfg.UI.Sound {
		return nil
	}
	return sound.NewSoundManager(cfg.UI.SoundDir)
}
