package logger

import (
	"log"
	"os"
)

// WarningLogger emits a warning for each non fatal error, like dropped style
// declarations, unknown units, image loading errors or missing font files.
var WarningLogger = log.New(os.Stdout, "clanlib.warning: ", log.Lmsgprefix)
