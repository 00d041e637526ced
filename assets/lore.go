package assets

// SceneLore holds atmospheric lines per scene. One is picked at random on
// entry.
var SceneLore = map[string][]string{
	"tutorial": {
		"Jars line the shelves. Most of them are labelled 'DO NOT OPEN' in three different hands.",
		"The cellar smells of apples and old paper. Something scratches behind the east wall.",
		"A chalk arrow on the floor points at the door. Someone wanted you to leave.",
	},
	"yard": {
		"The grass is taller than it should be for the time of year.",
		"A shed leans against nothing in particular. Its door hangs open.",
		"Crows watch from the fence. They seem to be counting your pockets.",
	},
}

// Credits is shown on the main menu's credits panel.
var Credits = []string{
	"SATCHEL",
	"",
	"Design & code    the satchel team",
	"Terminal         tcell",
	"Sound            beep",
	"",
	"Thanks for playing.",
}
