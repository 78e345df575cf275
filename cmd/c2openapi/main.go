// Command c2openapi walks a directory of annotated C source files and
// writes the extracted OpenAPI description to an output file.
package main

import (
	"os"

	"github.com/rs/zerolog"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: true}).With().Timestamp().Logger()

	if err := newRootCmd(&log).Execute(); err != nil {
		log.Error().Msg(err.Error())
		os.Exit(exitCodeFor(err))
	}
}
