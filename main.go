package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"git.sr.ht/~sircmpwn/getopt"
	"github.com/BurntSushi/xgb"
	"github.com/phsym/console-slog"
)

const wmName = "tilewm"

var version = "dev"

var (
	errorQuit       = errors.New("quit")
	errorAnotherWM  = errors.New("another window manager is already running")
	errorConnection = errors.New("x11 connection lost")
)

func initLogger(level slog.Level) {
	slog.SetDefault(slog.New(console.NewHandler(os.Stderr, &console.HandlerOptions{
		Level: level,
	})))
}

func main() {
	configPath := ""
	level := slog.LevelInfo

	opts, optind, err := getopt.Getopts(os.Args, "vdc:")
	if err != nil {
		fmt.Fprintf(os.Stderr, "usage: %s [-vd] [-c config]\n", wmName)
		os.Exit(2)
	}
	for _, opt := range opts {
		switch opt.Option {
		case 'v':
			fmt.Printf("%s-%s\n", wmName, version)
			os.Exit(0)
		case 'd':
			level = slog.LevelDebug
		case 'c':
			configPath = opt.Value
		}
	}
	if optind < len(os.Args) {
		fmt.Fprintf(os.Stderr, "usage: %s [-vd] [-c config]\n", wmName)
		os.Exit(2)
	}
	initLogger(level)

	cfg, err := loadConfig(configPath)
	if err != nil {
		slog.Error("config", "error", err)
		os.Exit(1)
	}

	xc, err := xgb.NewConn()
	if err != nil {
		slog.Error("cannot open display", "error", err)
		os.Exit(1)
	}
	defer xc.Close()

	wm := NewWM(xc, cfg)
	if err := wm.Init(); err != nil {
		slog.Error("init", "error", err)
		os.Exit(1)
	}
	defer wm.Deinit()

	for {
		switch err := wm.handleEvent(); err {
		case nil:
		case errorQuit:
			return
		case errorConnection:
			slog.Error("x11 connection lost")
			return
		default:
			slog.Error("event", "error", err)
		}
	}
}
