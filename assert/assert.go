package assert

import (
	"fmt"

	"github.com/bloeys/learnopengl/logging"
)

// T panics with the formatted message if check is false
func T(check bool, msg string, args ...any) {

	if check {
		return
	}

	if len(args) == 0 {
		logging.ErrLog.Panicln("Assert failed: " + msg)
	}

	logging.ErrLog.Panicln("Assert failed: " + fmt.Sprintf(msg, args...))
}
