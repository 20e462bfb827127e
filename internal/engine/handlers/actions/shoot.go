package actions

import (
	"fmt"

	"github.com/Namek/battle-tactics/internal/engine/handlers"
)

func HandleShoot(ctx handlers.Context) (handlers.Result, error) {
	ok := ctx.Sim.EnqueueShoot(ctx.Player)
	return handlers.FromBool(ok,
		fmt.Sprintf("player %d readies a shot", ctx.Player),
		fmt.Sprintf("player %d cannot shoot", ctx.Player),
	), nil
}
