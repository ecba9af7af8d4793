package common

import (
	"os/exec"
	"runtime"
	"strings"

	"github.com/atotto/clipboard"
)

// CopyToClipboard puts text, in practice the event log, on the system
// clipboard. On macOS pbcopy is tried before the library.
func CopyToClipboard(text string) error {
	if runtime.GOOS == "darwin" {
		if err := pbcopy(text); err == nil {
			return nil
		}
	}
	return clipboard.WriteAll(text)
}

func pbcopy(text string) error {
	cmd := exec.Command("pbcopy")
	cmd.Stdin = strings.NewReader(text)
	return cmd.Run()
}
