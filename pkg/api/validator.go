package api

import "errors"

// Validator - интерфейс, который могут реализовать DTO
type Validator interface {
	Validate() error
}

func (p CellPayload) Validate() error {
	if p.Col < 0 || p.Row < 0 {
		return errors.New("cell coordinates must be non-negative")
	}
	return nil
}

func (c Command) Validate() error {
	switch c.Action {
	case CmdMove, CmdPeek, CmdShoot, CmdWait, CmdUndo, CmdFinish:
	case "":
		return errors.New("action is required")
	default:
		return errors.New("unknown action " + c.Action)
	}
	if c.Player < 0 {
		return errors.New("player index must be non-negative")
	}
	if c.Action == CmdMove && len(c.Payload) == 0 {
		return errors.New("MOVE requires a cell payload")
	}
	return nil
}
