package chart

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"StockLens/internal/logx"

	"github.com/pkg/browser"
	"gonum.org/v1/plot"
)

// Viewer opens a rendered chart file for the user.
type Viewer interface {
	Show(path string) error
}

// SystemViewer opens files with the operating system's default application.
type SystemViewer struct{}

func (SystemViewer) Show(path string) error {
	browser.Stdout = io.Discard
	return browser.OpenFile(path)
}

// Display renders p to a temporary PNG, opens it with v and blocks until a
// line is read from in or ctx is done. The temporary file is removed on return.
// Closing in releases the background read after a cancelled wait.
func Display(ctx context.Context, p *plot.Plot, v Viewer, in io.Reader, out io.Writer) error {
	f, err := os.CreateTemp("", "stocklens-*.png")
	if err != nil {
		return fmt.Errorf("create chart file: %w", err)
	}
	path := f.Name()
	defer os.Remove(path)

	if err := Render(p, f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close chart file: %w", err)
	}

	if err := v.Show(path); err != nil {
		return fmt.Errorf("open chart viewer: %w", err)
	}
	logx.From(ctx).Debug("chart opened", "path", path)

	fmt.Fprint(out, "\nChart opened in viewer. Press Enter to exit...")
	// When ctx ends first the reader stays blocked until in is closed or
	// the process exits.
	done := make(chan struct{})
	go func() {
		// a closed or failing input also ends the wait
		_, _ = bufio.NewReader(in).ReadString('\n')
		close(done)
	}()
	select {
	case <-done:
	case <-ctx.Done():
	}
	fmt.Fprintln(out)
	return nil
}
