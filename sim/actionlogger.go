package sim

import (
	"log"
	"reflect"
)

// ActionLogger is a hook that prints the action information before each
// action executes, and the error of each failed action.
type ActionLogger struct {
	*log.Logger
}

// NewActionLogger returns a new ActionLogger which will write in to the logger
func NewActionLogger(logger *log.Logger) *ActionLogger {
	h := new(ActionLogger)
	h.Logger = logger
	return h
}

// Func writes the action information into the logger
func (h *ActionLogger) Func(ctx HookCtx) {
	switch ctx.Pos {
	case HookPosBeforeAction:
		h.Logger.Printf("%v, %s", actionTime(ctx.Item), reflect.TypeOf(ctx.Item))
	case HookPosAfterAction:
		if err, ok := ctx.Detail.(error); ok && err != nil {
			h.Logger.Printf("%v, %s failed: %v",
				actionTime(ctx.Item), reflect.TypeOf(ctx.Item), err)
		}
	}
}

// actionTime extracts the time of an action of unknown time type.
func actionTime(item any) any {
	v := reflect.ValueOf(item)
	if !v.IsValid() {
		return "?"
	}

	m := v.MethodByName("Time")
	if !m.IsValid() || m.Type().NumIn() != 0 || m.Type().NumOut() != 1 {
		return "?"
	}

	return m.Call(nil)[0].Interface()
}
