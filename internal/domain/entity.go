package domain

// Player is a participant on the grid. Index is the player's slot in the
// game and doubles as its turn order.
type Player struct {
	Index int  `json:"index" msgpack:"index"`
	Cell  Cell `json:"cell" msgpack:"cell"`
	Alive bool `json:"alive" msgpack:"alive"`
}
