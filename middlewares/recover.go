package middlewares

import (
	"runtime"

	"github.com/dmitrymomot/newsletter/internal/server"
)

// DefaultStackSize is the largest stack trace captured for a panic.
const DefaultStackSize = 4096

// Recover turns a panic into a *PanicError and logs it with its stack.
func Recover() server.Middleware {
	return func(next server.HandlerFunc) server.HandlerFunc {
		return func(c server.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}
				stack := make([]byte, DefaultStackSize)
				stack = stack[:runtime.Stack(stack, false)]
				c.LogError("panic recovered", "panic", r, "stack", string(stack))
				err = &PanicError{Value: r, Stack: stack}
			}()
			return next(c)
		}
	}
}
