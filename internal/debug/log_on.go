//go:build debug

package debug

import (
	"log"
	"os"
)

var (
	debugLog = log.New(os.Stderr, "[D] ", log.LstdFlags)
)

func Log(msg interface{}) {
	debugLog.Output(1, getStringValue(msg))
}
