package main

import (
	"os"

	"moinmd.de/m/cmd"
)

// Version is set via the build process.
var version = "dev"

func main() {
	os.Exit(cmd.Main("MoinMD", version))
}
