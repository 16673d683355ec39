package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/gpigna0/kecerahan/util"
	"github.com/urfave/cli/v3"
)

const usage = `kecerahan - Control screen brightness from the command line.

Usage:
  kecerahan [options] (-b <brightness_value> | --brightness <brightness_value>)
  kecerahan -h | --help

Options:
  -b, --brightness  Set the brightness level (1-999).
  -h, --help        Show this help message and exit.
`

var errMissingBrightness = errors.New("Error: Brightness value is required.")

type options struct {
	Brightness    string
	BrightnessSet bool
}

func parseOptions(c *cli.Command) (options, error) {
	if c.Args().Present() {
		return options{}, fmt.Errorf("unexpected argument: %s", c.Args().First())
	}

	opts := options{
		Brightness:    c.String("brightness"),
		BrightnessSet: c.IsSet("brightness"),
	}
	if !opts.BrightnessSet {
		return options{}, errMissingBrightness
	}
	return opts, nil
}

func cmdRoot(stdout, stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name:                          "kecerahan",
		Usage:                         "Control screen brightness from the command line",
		CustomRootCommandHelpTemplate: usage,
		HideHelpCommand:               true,
		Writer:                        stdout,
		ErrWriter:                     stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "brightness", Aliases: []string{"b"}, Usage: "Set the brightness level (1-999)"},
		},
		// errors are reported once, by run, without the help text
		OnUsageError: func(ctx context.Context, c *cli.Command, err error, isSubcommand bool) error {
			return err
		},
		ExitErrHandler: func(ctx context.Context, c *cli.Command, err error) {},
		Action: func(ctx context.Context, c *cli.Command) error {
			opts, err := parseOptions(c)
			if err != nil {
				return err
			}

			dev, err := util.FindDevice(devicePattern)
			if err != nil {
				return err
			}

			if err := set(dev, opts.Brightness); err != nil {
				return err
			}

			fmt.Fprintln(c.Root().Writer, "Brightness set successfully.")
			return nil
		},
	}
}
