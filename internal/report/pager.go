package report

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/mattn/go-isatty"
)

// defaultPager is used when $PAGER is unset.
const defaultPager = "less -R"

// Pager sends output through an external pager when writing to a terminal.
type Pager struct {
	Out     io.Writer
	Enabled bool
	Command string // overrides $PAGER
}

// Write shows content, paged when Out is a terminal and paging is enabled.
// A pager that is not installed falls back to writing directly.
func (p Pager) Write(content string) error {
	f, ok := p.Out.(*os.File)
	if !p.Enabled || !ok || !isatty.IsTerminal(f.Fd()) {
		_, err := io.WriteString(p.Out, content)
		return err
	}

	args := strings.Fields(p.command())
	if len(args) == 0 {
		_, err := io.WriteString(p.Out, content)
		return err
	}

	cmd := exec.Command(args[0], args[1:]...)
	cmd.Stdin = strings.NewReader(content)
	cmd.Stdout = f
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			_, werr := io.WriteString(p.Out, content)
			return werr
		}
		return fmt.Errorf("running pager %q: %w", args[0], err)
	}
	return nil
}

func (p Pager) command() string {
	if p.Command != "" {
		return p.Command
	}
	if env := os.Getenv("PAGER"); env != "" {
		return env
	}
	return defaultPager
}
