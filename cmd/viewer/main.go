package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bryanwahyu/medscan/internal/middleware"
	"github.com/bryanwahyu/medscan/internal/viewer"
)

const usage = `commands:
  open <path>   select an image or PDF
  analyze       send the selected file
  p | n         previous / next analysis
  new           start a new analysis (history is kept)
  clear         drop the selected file
  q             quit`

func main() {
	server := flag.String("server", "http://localhost:3000", "relay base URL")
	file := flag.String("file", "", "file to select on start")
	timeout := flag.Duration("timeout", 3*time.Minute, "request timeout")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	v := viewer.New(viewer.NewHTTPClient(*server, *timeout))

	if *file != "" {
		if err := open(v, *file); err != nil {
			logger.Error("open file", "path", *file, "error", err)
			os.Exit(1)
		}
	}

	fmt.Println(usage)
	run(context.Background(), v, os.Stdin, os.Stdout)
}

func run(ctx context.Context, v *viewer.Viewer, in io.Reader, out io.Writer) {
	sc := bufio.NewScanner(in)
	for {
		fmt.Fprintf(out, "[%s]> ", v.State().Mode)
		if !sc.Scan() {
			return
		}
		cmd, arg, _ := strings.Cut(strings.TrimSpace(sc.Text()), " ")
		switch cmd {
		case "":
		case "open":
			if err := open(v, strings.TrimSpace(arg)); err != nil {
				fmt.Fprintln(out, "Error:", err)
				continue
			}
			fmt.Fprintln(out, "selected", v.State().File.Name)
		case "analyze":
			fmt.Fprintln(out, "Analyzing...")
			s, err := v.RequestAnalysis(ctx)
			if err != nil {
				if s.Error != "" {
					fmt.Fprintln(out, s.Error)
				} else {
					fmt.Fprintln(out, "Error:", err)
				}
				continue
			}
			render(out, s)
		case "p":
			render(out, v.Navigate(viewer.Previous))
		case "n":
			render(out, v.Navigate(viewer.Next))
		case "new":
			v.StartNew()
		case "clear":
			v.ClearSelection()
		case "q", "quit", "exit":
			return
		default:
			fmt.Fprintln(out, usage)
		}
	}
}

func open(v *viewer.Viewer, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	f := viewer.File{
		Name:     filepath.Base(path),
		MIMEType: middleware.DetectMIMEType(mime.TypeByExtension(filepath.Ext(path)), data),
		Content:  data,
	}
	v.SelectFile(f)
	return nil
}

func render(out io.Writer, s viewer.State) {
	e, ok := viewer.Current(s)
	if !ok {
		fmt.Fprintln(out, "nothing to show")
		return
	}
	fmt.Fprintf(out, "\n%s (%d/%d)\n\n", e.Name, s.Index+1, len(s.History))
	fmt.Fprintln(out, viewer.PlainText(viewer.FormatForDisplay(e.Analysis)))
	fmt.Fprintf(out, "\nAnalysis made on: %s\n", e.Timestamp)

	var nav []string
	if viewer.CanPrevious(s) {
		nav = append(nav, "p")
	}
	if viewer.CanNext(s) {
		nav = append(nav, "n")
	}
	nav = append(nav, "new")
	fmt.Fprintf(out, "[%s]\n", strings.Join(nav, " | "))
}
