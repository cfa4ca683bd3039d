package main

import (
	"log"
	"os"

	"github.com/evkit/pollecho"
	"github.com/evkit/pollecho/conf"
	"github.com/evkit/pollecho/evlog"
)

func main() {
	cfg := conf.Default()
	if len(os.Args) > 1 {
		c, err := conf.Load(os.Args[1])
		if err != nil {
			log.Fatal(err)
		}
		cfg = c
	}

	if cfg.Log.Dir != "" {
		evlog.SetLogger(evlog.NewFileLogger(evlog.FileOptions{
			Dir:       cfg.Log.Dir,
			Level:     cfg.Log.Level,
			MaxSizeMB: cfg.Log.MaxFileSizeMB,
			MaxAgeDay: cfg.Log.MaxFileAgeDay,
			Stdout:    cfg.Log.Stdout,
		}))
	} else {
		evlog.SetLogger(evlog.NewLogger(cfg.Log.Level))
	}

	srv, err := pollecho.NewServer(pollecho.NewOptions().
		SetAddr(cfg.Server.Addr).
		SetMaxConns(cfg.Server.MaxConns).
		SetBufferSize(cfg.Server.BufferSize).
		SetPollTimeout(cfg.Server.PollTimeoutMs))
	if err != nil {
		evlog.Fatalf("[pollecho.NewServer]: %s", err.Error())
	}

	if err := srv.Run(); err != nil {
		evlog.Fatalf("[pollecho.Run]: %s", err.Error())
	}
}
