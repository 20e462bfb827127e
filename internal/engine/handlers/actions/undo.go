package actions

import (
	"fmt"

	"github.com/Namek/battle-tactics/internal/engine/handlers"
)

func HandleUndo(ctx handlers.Context) (handlers.Result, error) {
	ok := ctx.Sim.UndoLastAction(ctx.Player)
	return handlers.FromBool(ok,
		fmt.Sprintf("player %d undid the last action", ctx.Player),
		fmt.Sprintf("player %d has nothing to undo", ctx.Player),
	), nil
}
