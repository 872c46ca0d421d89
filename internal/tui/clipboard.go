package tui

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

var errNoClipboard = errors.New("no clipboard tool: install pbcopy, wl-copy, xclip or xsel")

type clipboardTool struct {
	name string
	args []string
}

// clipboardTools are tried in order; the first one on PATH wins.
var clipboardTools = []clipboardTool{
	{name: "pbcopy"},
	{name: "wl-copy"},
	{name: "xclip", args: []string{"-selection", "clipboard"}},
	{name: "xsel", args: []string{"--clipboard", "--input"}},
}

// copyToClipboard copies text to the system clipboard. Tests replace it.
var copyToClipboard = systemCopy

func systemCopy(text string) error {
	for _, t := range clipboardTools {
		path, err := exec.LookPath(t.name)
		if err != nil {
			continue
		}
		cmd := exec.Command(path, t.args...)
		cmd.Stdin = strings.NewReader(text)
		if err := cmd.Run(); err != nil {
			return fmt.Errorf("clipboard %s: %w", t.name, err)
		}
		return nil
	}
	return errNoClipboard
}
