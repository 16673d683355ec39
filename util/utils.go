// Package util contain the device and privilege helpers used by kecerahan
package util

import (
	"errors"
	"fmt"
	"path/filepath"
)

// DevicePattern matches the brightness control file of every backlight
// exposed by the kernel.
const DevicePattern = "/sys/class/backlight/*/brightness"

var (
	ErrNotRoot  = errors.New("This program requires root privileges. Please run it with sudo.")
	ErrNoDevice = errors.New("No backlight devices found.")
)

type Device struct {
	Name string
	Path string
}

func CheckRoot(euid int) error {
	if euid != 0 {
		return ErrNotRoot
	}
	return nil
}

// FindDevice returns the first control file matching pattern. Matches come
// in the order filepath.Glob yields them, which is lexicographic today but
// should not be relied upon to pick a specific device on multi-backlight
// machines.
func FindDevice(pattern string) (Device, error) {
	paths, err := filepath.Glob(pattern)
	if err != nil {
		// pattern is a fixed literal, a failure here is a programming error
		panic(fmt.Sprintf("failed to glob devices: %v", err))
	}

	if len(paths) == 0 {
		return Device{}, ErrNoDevice
	}

	return Device{
		Name: filepath.Base(filepath.Dir(paths[0])),
		Path: paths[0],
	}, nil
}
