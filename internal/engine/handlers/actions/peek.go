package actions

import (
	"fmt"

	"github.com/Namek/battle-tactics/internal/engine/handlers"
)

func HandlePeek(ctx handlers.Context) (handlers.Result, error) {
	ok := ctx.Sim.EnqueuePeek(ctx.Player)
	return handlers.FromBool(ok,
		fmt.Sprintf("player %d peeks", ctx.Player),
		fmt.Sprintf("player %d has nothing to peek around or too few AP", ctx.Player),
	), nil
}
