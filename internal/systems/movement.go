package systems

import (
	"github.com/Namek/battle-tactics/internal/domain"
)

// MovementResult - результат применения одного шага Move во время розыгрыша.
type MovementResult struct {
	To        domain.Cell
	HasMoved  bool
	BlockedBy int  // index of the living player standing on To, or domain.NoPlayer
	IsWall    bool // To is a wall or outside the grid
	Stale     bool // the mover is no longer on the step's Prev cell
}

// CalculateMove checks a queued move step against the current positions. Не меняет состояние мира!
func CalculateMove(players []domain.Player, mover int, a domain.Action, g *domain.Grid) MovementResult {
	res := MovementResult{To: a.To, BlockedBy: domain.NoPlayer}

	// 1. Шаг планировался из другой клетки (предыдущий шаг не состоялся)
	if players[mover].Cell != a.Prev {
		res.Stale = true
		return res
	}

	// 2. Проверка стен и границ
	if g.IsWall(a.To) {
		res.IsWall = true
		return res
	}

	// 3. Проверка игроков: мёртвые тела проходимы
	for i := range players {
		other := &players[i]
		if other.Index == mover || !other.Alive {
			continue
		}
		if other.Cell == a.To {
			res.BlockedBy = other.Index
			return res
		}
	}

	res.HasMoved = true
	return res
}
