package bot

import (
	"ctchen222/Noughts-And-Crosses/internal/game"
	"time"
)

// aside is a chat line followed by a pause and a second line.
type aside struct {
	say   string
	pause time.Duration
	then  string
}

// profile holds a persona's pacing and chat lines.
type profile struct {
	beforeThinking time.Duration
	afterThinking  time.Duration
	beforeGloat    time.Duration
	afterGloat     time.Duration

	ponder  string
	tough   string
	coffee  aside
	beer    aside
	taunt   string
	opening string

	gloat   string
	rematch string
	concede string
	draw    string
}

var profiles = map[game.Persona]profile{
	game.Hal: {
		beforeThinking: 2 * time.Second,
		afterThinking:  5 * time.Second,
		beforeGloat:    2 * time.Second,
		afterGloat:     5 * time.Second,

		ponder:  "🤔",
		tough:   "Hmm this is tough.",
		coffee:  aside{say: "BRB, just going to grab a coffee.", pause: 6 * time.Second, then: "Ok, back!"},
		beer:    aside{say: "We should really go for a beer soon 🍺", pause: 4 * time.Second, then: "Oh, it's my turn! Let me think 🤔"},
		taunt:   "Really? You're going there 😂",
		opening: "I'll go first. Let me warm up.",

		gloat:   "Winner, winner, chicken dinner 🏆",
		rematch: "Want to play again? Press N to start a new game and I can beat you again.",
		concede: "Nicely played 👏",
		draw:    "Looks like it's a draw. Want to play again?",
	},
	game.Marvin: {
		beforeThinking: 1 * time.Second,
		afterThinking:  3 * time.Second,
		beforeGloat:    1 * time.Second,
		afterGloat:     3 * time.Second,

		ponder:  "😔",
		tough:   "Brain the size of a planet and they ask me to play noughts and crosses.",
		coffee:  aside{say: "I'd make a coffee, but I'd only hate it.", pause: 3 * time.Second, then: "Fine. I'm back. Not that it matters."},
		beer:    aside{say: "Life. Don't talk to me about life.", pause: 2 * time.Second, then: "Oh. It's my turn. How wonderful."},
		taunt:   "That move made me even more depressed.",
		opening: "I suppose I'll go first. Nobody else wants to.",

		gloat:   "I won. I'd feel pleased, if I could feel anything.",
		rematch: "Press N if you want to lose again. I don't mind. I never mind.",
		concede: "You won. I knew you would.",
		draw:    "A draw. How terribly predictable.",
	},
}

func profileFor(p game.Persona) profile {
	if prof, ok := profiles[p]; ok {
		return prof
	}
	return profiles[game.Hal]
}
