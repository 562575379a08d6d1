package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/peterh/liner"

	minilisp "github.com/daios-ai/minilisp"
)

const (
	historyFile = ".minilisp_history"
	prompt      = "> "
)

var banner = fmt.Sprintf("minilisp %s\nType exit (or Ctrl+D) to leave.", minilisp.Version)

func red(s string) string  { return "\x1b[31m" + s + "\x1b[0m" }
func blue(s string) string { return "\x1b[94m" + s + "\x1b[0m" }

func main() {
	os.Exit(repl())
}

func repl() int {
	fmt.Println(banner)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	ip := minilisp.NewInterp()

	for {
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			fmt.Println()
			return 0
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, red(err.Error()))
			return 1
		}

		src := strings.TrimSpace(line)
		if src == "" {
			continue
		}
		if src == "exit" {
			return 0
		}
		ln.AppendHistory(line)

		expr, perr := minilisp.ParseSource(src)
		if perr != nil {
			perr = minilisp.WrapErrorWithSource(perr, src)
			fmt.Fprintln(os.Stderr, red("Error parsing input: "+perr.Error()))
			continue
		}

		v, err := ip.Eval(expr, ip.Global)
		if err != nil {
			fmt.Fprintln(os.Stderr, red("Error: "+err.Error()))
			continue
		}
		fmt.Println(blue(minilisp.FormatValue(v)))
	}
}
