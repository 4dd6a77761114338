package algorithm

import (
	"log"
	"os"
)

// Debugging
var Debug = 0

var logger = log.New(os.Stderr, "", log.LstdFlags|log.Lmicroseconds)

func DPrintf(format string, a ...interface{}) {
	if Debug > 0 {
		logger.Printf(format, a...)
	}
}
