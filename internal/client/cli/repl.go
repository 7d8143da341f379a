package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/digislides/mediup/internal/client/upload"
)

// Run reads commands from stdin until exit or EOF. Staged previews are
// released on the way out.
func (a *App) Run(ctx context.Context) {
	defer a.store.Clear()

	fmt.Println("mediup (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Printf("mediup [%d staged] > ", a.store.Len())
		if !scanner.Scan() {
			return
		}
		if a.execute(ctx, scanner.Text(), os.Stdout) {
			return
		}
	}
}

// execute runs one command line. It returns true when the session should end.
func (a *App) execute(ctx context.Context, line string, w io.Writer) bool {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return false
	}

	cmd, args := parts[0], parts[1:]

	switch cmd {
	case "help":
		fmt.Fprintln(w, "Available commands: add <file>..., list, remove <n>, clear, upload, exit")

	case "add":
		if len(args) == 0 {
			fmt.Fprintln(w, "usage: add <file>...")
			return false
		}
		res, err := a.store.Add(args)
		if err != nil {
			fmt.Fprintf(w, "add failed: %v\n", err)
			return false
		}
		if res.Rejected > 0 {
			fmt.Fprintf(w, "Only images and videos are allowed; %d file(s) skipped.\n", res.Rejected)
		}
		fmt.Fprintf(w, "%d file(s) staged.\n", res.Accepted)

	case "list":
		items := a.store.Items()
		if len(items) == 0 {
			fmt.Fprintln(w, "Nothing staged.")
			return false
		}
		progress := a.orchestrator.Progress()
		for i, it := range items {
			line := fmt.Sprintf("%d: %s (%s, %.2f MB)", i, it.Name, it.Kind, float64(it.SizeBytes)/(1024*1024))
			if pct, ok := progress[i]; ok {
				line += fmt.Sprintf(" %d%%", pct)
			}
			fmt.Fprintln(w, line)
		}

	case "remove":
		if len(args) != 1 {
			fmt.Fprintln(w, "usage: remove <n>")
			return false
		}
		idx, err := strconv.Atoi(args[0])
		if err != nil {
			fmt.Fprintf(w, "not an index: %s\n", args[0])
			return false
		}
		if err := a.store.Remove(idx); err != nil {
			fmt.Fprintf(w, "remove failed: %v\n", err)
			return false
		}
		fmt.Fprintln(w, "Removed.")

	case "clear":
		a.store.Clear()
		fmt.Fprintln(w, "Selection cleared.")

	case "upload":
		summary, err := a.orchestrator.Submit(ctx)
		switch {
		case errors.Is(err, upload.ErrEmptySelection):
			fmt.Fprintln(w, "Please select files to upload.")
		case err != nil:
			fmt.Fprintf(w, "Failed to upload files: %v\n", err)
		default:
			fmt.Fprintln(w, summary.Message())
			for _, u := range summary.Uploaded {
				fmt.Fprintf(w, "  %s -> %s\n", u.Name, u.RemoteURL)
			}
		}

	case "exit", "quit":
		fmt.Fprintln(w, "Bye!")
		return true

	default:
		fmt.Fprintf(w, "unknown command: %s\n", cmd)
	}

	return false
}
