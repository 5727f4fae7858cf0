package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/enoch85/ge-spot-sub001/infrastructure/di"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		jsonOutput = flag.Bool("json", false, "Print results as JSON")
		debugMode  = flag.Bool("debug", false, "Enable debug logging to stderr")
		docPath    = flag.String("file", "", "Path to a vendor price document (JSON)")
		nowFlag    = flag.String("now", "", "Reference instant in RFC 3339 (defaults to the wall clock)")
	)
	flag.Parse()

	// A .env file is optional; real environment variables win either way
	_ = godotenv.Load()

	var now time.Time
	if *nowFlag != "" {
		parsed, err := time.Parse(time.RFC3339, *nowFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Invalid -now value: %v\n", err)
			return 1
		}
		now = parsed
	}

	opts := []di.ContainerOption{}
	if *debugMode {
		opts = append(opts, di.WithDebugMode(true))
	}

	container, err := di.NewContainer(opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize application: %v\n", err)
		return 1
	}
	defer func() {
		_ = container.Close()
	}()

	controller := container.GetCLIController()
	controller.SetJSONOutput(*jsonOutput)

	if *docPath != "" {
		err = controller.RunConvert(*docPath, now)
	} else {
		err = controller.RunInterval(now)
	}
	if err != nil {
		container.GetConsolePresenter().PrintError(err)
		return 1
	}

	return 0
}
