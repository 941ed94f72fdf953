package initialize

import (
	"os"

	"frota-api/global"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func init() {
	cw := zerolog.ConsoleWriter{Out: os.Stdout}
	global.Logger = log.Output(cw)
}
