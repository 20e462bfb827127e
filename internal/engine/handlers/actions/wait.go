package actions

import (
	"fmt"

	"github.com/Namek/battle-tactics/internal/engine/handlers"
)

func HandleWait(ctx handlers.Context) (handlers.Result, error) {
	ok := ctx.Sim.EnqueueWait(ctx.Player)
	return handlers.FromBool(ok,
		fmt.Sprintf("player %d waits", ctx.Player),
		fmt.Sprintf("player %d cannot wait", ctx.Player),
	), nil
}
