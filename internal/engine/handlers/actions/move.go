package actions

import (
	"fmt"

	"github.com/Namek/battle-tactics/internal/engine/handlers"
	"github.com/Namek/battle-tactics/pkg/api"
)

func HandleMove(ctx handlers.Context, p api.CellPayload) (handlers.Result, error) {
	ok := ctx.Sim.EnqueueMove(ctx.Player, p.Cell())
	return handlers.FromBool(ok,
		fmt.Sprintf("player %d walks to (%d,%d), %d AP left", ctx.Player, p.Col, p.Row, ctx.Sim.Available(ctx.Player)),
		fmt.Sprintf("player %d cannot reach (%d,%d)", ctx.Player, p.Col, p.Row),
	), nil
}
