package main

import (
	"fmt"
	"os"

	"github.com/gpigna0/kecerahan/util"
)

// set writes value verbatim, without a trailing newline, to the control
// file of dev. The value is not checked against max_brightness: the kernel
// rejects what it cannot apply.
func set(dev util.Device, value string) error {
	if err := os.WriteFile(dev.Path, []byte(value), 0644); err != nil {
		return fmt.Errorf("error writing new brightness %s to %s: %w", value, dev.Path, err)
	}

	return nil
}
