package main

import (
	"fmt"
	"os"

	"github.com/mordilloSan/go-console/logger"
)

// Example demonstrating go-console usage.
func main() {
	var opts []logger.Option

	// Usage: ./go-console [config.yaml]
	// Example: ./go-console ./logger.yaml
	if len(os.Args) > 1 {
		loaded, err := logger.LoadConfig(os.Args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to load logger config %s: %v\n", os.Args[1], err)
			os.Exit(1)
		}
		opts = loaded
	}

	log, err := logger.GetLogger(opts...)
	if err != nil {
		_ = logger.Stderr(fmt.Sprintf("logger setup failed: %v\n", err))
		os.Exit(1)
	}
	if err := log.SetLevel(logger.DebugLevel); err != nil {
		_ = logger.Stderr(err.Error() + "\n")
		os.Exit(1)
	}

	_ = log.Log("Start to logging... (logLevel: %s)", log.Level())
	_ = log.Debug("I'm just a debug info, you can skip it.")
	_ = log.Log("JSON", map[string]any{"foo": 1, "arr": []int{1, 2, 3}})
	_ = log.Info("hello %s", "world")
	_ = log.Warn("Warning, (pay) attention please.")
	_ = log.Error("oops: %v", "something happened")

	_ = logger.Puts("\n----------------- create a new logger instance -----------------\n")

	log, err = logger.GetLogger(append(opts, logger.WithTimeStamp(true), logger.WithLevel(logger.InfoLevel))...)
	if err != nil {
		_ = logger.Stderr(fmt.Sprintf("logger setup failed: %v\n", err))
		os.Exit(1)
	}

	_ = log.Log("Start to logging... (logLevel: %s)", log.Level())
	_ = log.Debug("this won't appear at info level")
	_ = log.Info("ready")
	_ = log.Warn("be careful")
	_ = log.Error("fatal, sorry, something failed")
}
