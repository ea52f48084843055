// timeoutfinder - Short-Playtime Timeout Scanner
//
// timeoutfinder is a batch log analysis tool for srcds/LGSM game servers.
// It scans rotated console logs and reports, per calendar day, how many
// players timed out within minutes of entering the game.
package main

import (
	"os"

	"github.com/srcds-tools/timeoutfinder/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
