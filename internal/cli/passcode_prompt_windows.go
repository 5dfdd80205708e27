//go:build windows

package cli

import (
	"errors"
	"os"

	"golang.org/x/sys/windows"
)

func readSecretNoEcho(stdin *os.File) (string, error) {
	if stdin == nil {
		return "", errors.New("stdin unavailable")
	}

	handle := windows.Handle(stdin.Fd())
	var restore uint32
	if err := windows.GetConsoleMode(handle, &restore); err != nil {
		return "", err
	}
	if err := windows.SetConsoleMode(handle, restore&^windows.ENABLE_ECHO_INPUT); err != nil {
		return "", err
	}
	defer func() {
		_ = windows.SetConsoleMode(handle, restore)
	}()

	return readSecretLine(stdin)
}
