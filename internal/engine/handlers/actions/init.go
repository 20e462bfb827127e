package actions

import (
	"github.com/Namek/battle-tactics/internal/engine/handlers"
	"github.com/Namek/battle-tactics/pkg/api"
)

// Register binds every input command to its handler.
func Register(d *handlers.Dispatcher) {
	d.Register(api.CmdMove, handlers.WithPayload(HandleMove))
	d.Register(api.CmdPeek, handlers.WithEmptyPayload(HandlePeek))
	d.Register(api.CmdShoot, handlers.WithEmptyPayload(HandleShoot))
	d.Register(api.CmdWait, handlers.WithEmptyPayload(HandleWait))
	d.Register(api.CmdUndo, handlers.WithEmptyPayload(HandleUndo))
	d.Register(api.CmdFinish, handlers.WithEmptyPayload(HandleFinish))
}
