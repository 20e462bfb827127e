package actions

import (
	"fmt"

	"github.com/Namek/battle-tactics/internal/engine/handlers"
)

// HandleFinish ends the input phase of the active player.
func HandleFinish(ctx handlers.Context) (handlers.Result, error) {
	if active := ctx.Sim.Active(); active != ctx.Player {
		return handlers.Rejected(fmt.Sprintf("player %d is not on turn, player %d is", ctx.Player, active)), nil
	}
	ok := ctx.Sim.FinishTurn()
	return handlers.FromBool(ok, fmt.Sprintf("player %d finished the turn", ctx.Player), "no turn in progress"), nil
}
