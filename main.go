package main

import (
	"context"
	"io"
	"log"
	"os"

	"github.com/gpigna0/kecerahan/util"
	"golang.org/x/sys/unix"
)

var (
	geteuid       = unix.Geteuid
	devicePattern = util.DevicePattern
)

func main() {
	os.Exit(run(context.Background(), os.Args, os.Stdout, os.Stderr))
}

// run is the only place deciding what the user sees and the exit code
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "", 0)

	if err := util.CheckRoot(geteuid()); err != nil {
		logger.Println(err)
		return 1
	}

	cmd := cmdRoot(stdout, stderr)
	if err := cmd.Run(ctx, args); err != nil {
		logger.Println(err)
		return 1
	}

	return 0
}
