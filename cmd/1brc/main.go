package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/pkg/profile"
	"go.coldcutz.net/go-stuff/utils"

	"go.coldcutz.net/brc"
)

var profileMode = flag.String("profile", "", "write a profile to the working dir (cpu, mem, or trace)")

const defaultFilename = "measurements.txt"

func main() {
	flag.Parse()

	switch *profileMode {
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath(".")).Stop()
	case "trace":
		defer profile.Start(profile.TraceProfile, profile.ProfilePath(".")).Stop()
	case "":
	default:
		fmt.Fprintf(os.Stderr, "unknown profile mode %q\n", *profileMode)
		os.Exit(2)
	}

	_, done, log, err := utils.StdSetup()
	if err != nil {
		panic(err)
	}
	done() // use default signal stuff

	if err := run(log); err != nil {
		log.Error("error", "err", err)
		os.Exit(1)
	}
}

func run(log *slog.Logger) error {
	path := defaultFilename
	if args := flag.Args(); len(args) > 0 {
		path = args[0]
	}

	// WORKERS overrides the one-worker-per-CPU default.
	workers := 0
	if s := os.Getenv("WORKERS"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 {
			log.Warn("ignoring invalid WORKERS", "value", s)
		} else {
			workers = n
		}
	}

	return brc.Run(path, workers, os.Stdout)
}
