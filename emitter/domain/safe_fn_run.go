package domain

import (
	"fmt"
)

// SafeFunctionRun runs fn and turns a panic into an error naming task,
// so deferred cleanup of the caller still runs.
func SafeFunctionRun(task string, fn func() error, logger Logger) (err error) {
	defer func() {
		rec := recover()
		if rec == nil {
			return
		}
		err = fmt.Errorf("%s panicked: %v", task, rec)
		logger.Error("%s panicked: %v", task, rec)
	}()

	return fn()
}
