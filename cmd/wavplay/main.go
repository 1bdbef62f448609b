// SPDX-License-Identifier: EPL-2.0

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ik5/wavplay"
	"github.com/ik5/wavplay/internal/config"
	"github.com/ik5/wavplay/internal/logging"
	"github.com/ik5/wavplay/playback"
	"github.com/ik5/wavplay/transcode"
	"github.com/ik5/wavplay/wave"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg, err := config.Load()
	if err != nil {
		// Use stderr before logger is initialized
		fmt.Fprintln(os.Stderr, "failed to load config:", err)
		return 1
	}

	fs := flag.NewFlagSet("wavplay", flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: wavplay [flags] <input.{wav|mp3|ogg|aiff}>")
		fs.PrintDefaults()
	}
	fs.IntVar(&cfg.BufferSize, "buffer", cfg.BufferSize, "bytes delivered to the sink per chunk")
	maxPayload := fs.Uint64("max-payload", uint64(cfg.MaxPayload), "largest payload to load in bytes, 0 for no limit")
	fs.StringVar(&cfg.Output, "out", "", "write the fed stream to this WAV file instead of playing it")
	fs.BoolVar(&cfg.Realtime, "realtime", cfg.Realtime, "pace chunks at the file's sample rate")
	fs.BoolVar(&cfg.Strict, "strict", cfg.Strict, "reject headers whose byte rate or block align disagree")
	fs.BoolVar(&cfg.Sine, "sine", false, "replace the payload with a test tone")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug, info, warn or error")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "text or json")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return 2
	}
	if *maxPayload > uint64(^uint32(0)) {
		fmt.Fprintln(os.Stderr, "-max-payload must fit in 32 bits")
		return 2
	}
	cfg.MaxPayload = uint32(*maxPayload)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "invalid configuration:", err)
		return 2
	}

	logger := logging.New(cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := play(ctx, cfg, fs.Arg(0), logger); err != nil {
		if errors.Is(err, context.Canceled) {
			return 130
		}
		logger.Error("playback failed", "file", fs.Arg(0), "error", err)
		return 1
	}

	return 0
}

func play(ctx context.Context, cfg *config.Config, path string, logger *slog.Logger) error {
	track, err := wavplay.Open(path, transcode.DefaultRegistry(), cfg.MaxPayload)
	if err != nil {
		return err
	}

	fmt.Print(track.Header.String())

	if cfg.Strict {
		if err := wave.Validate(track.Header); err != nil {
			return err
		}
	} else if err := wave.Validate(track.Header); err != nil {
		logger.Warn("header fields disagree", "file", path, "error", err)
	}

	if cfg.Sine {
		wave.RewriteSine(track.Header, track.Data)
	}

	desc, err := track.Descriptor()
	if err != nil {
		return err
	}

	feeder, err := track.Feeder(cfg.BufferSize)
	if err != nil {
		return err
	}

	var sink playback.Sink = &playback.Discard{}
	if cfg.Output != "" {
		fileSink, err := playback.CreateFileSink(cfg.Output, desc)
		if err != nil {
			return err
		}
		sink = fileSink
	}
	if cfg.Realtime {
		sink = playback.NewClockSink(desc, sink)
	}

	session := playback.NewSession(track.Header, feeder, sink, logger)
	logger.Debug("session created", "session_id", session.ID.String(), "file", path)

	stats, err := session.Run(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("played %d bytes in %d chunks\n", stats.Bytes, stats.Chunks)
	return nil
}
