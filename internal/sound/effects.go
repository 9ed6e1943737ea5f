// Package sound plays short effects for table events.
package sound

// Effect names, looked up as <name>.wav or <name>.mp3 in the sound directory
const (
	EffectPlay = "play"
	EffectDead = "dead"
	EffectWin  = "win"
	EffectTick = "tick"
)

// Effects lists every effect the client may play.
var Effects = []string{EffectPlay, EffectDead, EffectWin, EffectTick}

// extensions in lookup order
var extensions = []string{".wav", ".mp3"}
