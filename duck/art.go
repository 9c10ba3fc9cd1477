package duck

import "github.com/lixenwraith/duckling/core"

// Pose returns the duck's idle sprite lines for its current stage and
// sleep state
func (d *Duck) Pose() []string {
	if d.asleep {
		return artSleeping
	}
	switch d.Stage() {
	case StageEgg:
		return artEgg
	case StageDuckling:
		return artDuckling
	case StageJuvenile:
		return artJuvenile
	default:
		return artAdult
	}
}

// AnimationFrames returns the frame set for an interaction animation
// category
func AnimationFrames(category string) []string {
	switch category {
	case "bounce":
		return []string{`  _\o/_`, `   \o/ `, `  _\o/_`, `   \o/ `}
	case "shake":
		return []string{` <('> `, ` <(') `, ` <('> `, ` <(') `}
	case "eat":
		return []string{` <(' p`, ` <('. `, ` <(' p`, ` <('. `}
	case "splash":
		return []string{` ~<')~ `, ` ≈<')≈ `, ` ~<')~ `, ` ≈<')≈ `}
	default:
		return []string{` <(') `}
	}
}

var artEgg = []string{
	`  .--.  `,
	` /    \ `,
	` \    / `,
	`  '--'  `,
}

var artDuckling = []string{
	`  <(') `,
	`   ( ) `,
	`   ^^  `,
}

var artJuvenile = []string{
	`  <(')  `,
	`  (  )> `,
	`   ^^   `,
}

var artAdult = []string{
	`   _    `,
	`  <(')__ `,
	`  (  ___)`,
	`   ^^ ^^ `,
}

var artSleeping = []string{
	`   z Z  `,
	`  (-')  `,
	`  (  )  `,
	`   ^^   `,
}

// MoodGlyph returns a one-rune mood indicator for the status bar
func MoodGlyph(m core.Mood) rune {
	switch m {
	case core.MoodHappy:
		return '♥'
	case core.MoodContent:
		return '~'
	case core.MoodGrumpy:
		return '-'
	default:
		return '!'
	}
}
