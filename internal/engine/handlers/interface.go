package handlers

import (
	"encoding/json"

	"github.com/Namek/battle-tactics/internal/domain"
)

// Simulator описывает очередь действий, в которую пишут хендлеры.
// engine.Simulator неявно реализует этот интерфейс.
type Simulator interface {
	EnqueueMove(player int, to domain.Cell) bool
	EnqueuePeek(player int) bool
	EnqueueShoot(player int) bool
	EnqueueWait(player int) bool
	UndoLastAction(player int) bool
	FinishTurn() bool
	Available(player int) int
	Active() int
}

// Context передает хендлеру симулятор и игрока, от имени которого пришла команда.
type Context struct {
	Sim    Simulator
	Player int
}

// Result - возвращает результат выполнения команды.
// Отклонённая команда не ошибка: Accepted=false и пояснение в Msg.
type Result struct {
	Accepted bool
	Msg      string // Текст для лога ввода
	MsgType  string // INFO, ERROR
}

// HandlerFunc - это контракт для любой команды (MOVE, PEEK, etc).
type HandlerFunc func(ctx Context, payload json.RawMessage) (Result, error)

// Accepted builds the result of a command the simulator took.
func Accepted(msg string) Result {
	return Result{Accepted: true, Msg: msg, MsgType: "INFO"}
}

// Rejected builds the result of a command the simulator ignored.
func Rejected(msg string) Result {
	return Result{Msg: msg, MsgType: "ERROR"}
}

// FromBool maps a simulator enqueue answer onto a Result.
func FromBool(ok bool, accepted, rejected string) Result {
	if ok {
		return Accepted(accepted)
	}
	return Rejected(rejected)
}
