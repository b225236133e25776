package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/handiism/3gpp-downloader/internal/config"
	"github.com/handiism/3gpp-downloader/internal/download"
	"github.com/handiism/3gpp-downloader/internal/model"
)

func main() {
	// Command line flags
	var (
		dateFlag    = flag.String("date", "", "Only archives published in this month (YYYY-MM)")
		releaseFlag = flag.Int("release", -1, "Only archives of this release (major version)")
		listFlag    = flag.Bool("list", false, "List matching archives instead of downloading")
		allFlag     = flag.Bool("all", false, "Download every matching archive")
		latestFlag  = flag.Bool("latest", false, "Download the highest-versioned match instead of the first")
		outputFlag  = flag.String("output", "", "Output directory (overrides config)")
		configFlag  = flag.String("config", "", "Path to config file")
		verboseFlag = flag.Bool("verbose", false, "Show verbose output")
	)

	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Println("3gpp-dl - Download 3GPP technical specification archives")
		fmt.Println()
		fmt.Println("Usage:")
		fmt.Println("  3gpp-dl [options] <spec-number>")
		fmt.Println()
		fmt.Println("Examples:")
		fmt.Println("  3gpp-dl 23.501")
		fmt.Println("  3gpp-dl -release 17 -list 23.501")
		fmt.Println("  3gpp-dl -date 2023-07 -all 38.331")
		fmt.Println()
		fmt.Println("For interactive mode, use: 3gpp-tui")
		fmt.Println()
		flag.PrintDefaults()
		os.Exit(1)
	}
	specInput := flag.Arg(0)

	// Load config
	settings := config.DefaultSettings()
	if *configFlag != "" {
		var err error
		settings, err = config.Load(*configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// Apply flags
	if *outputFlag != "" {
		settings.DownloadsPath = *outputFlag
	}

	var release *int
	if *releaseFlag >= 0 {
		release = releaseFlag
	}

	var dateFilter *model.DateFilter
	if *dateFlag != "" {
		filter, err := model.ParseDateFilter(*dateFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		dateFilter = &filter
	}

	// Handle interrupts
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Println("\nInterrupted, cancelling...")
		cancel()
	}()

	// Create manager with progress callback
	manager := download.NewManager(settings, func(event download.ProgressEvent) {
		if event.Level == download.LevelVerbose && !*verboseFlag {
			return
		}

		prefix := "   "
		switch event.Level {
		case download.LevelError:
			prefix = " x "
		case download.LevelWarning:
			prefix = " ! "
		case download.LevelSuccess:
			prefix = " + "
		case download.LevelInfo:
			prefix = " > "
		}

		fmt.Println(prefix + event.Message)
	})

	if err := manager.Initialize(ctx, specInput, release, dateFilter); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *listFlag {
		for _, item := range manager.Items() {
			fmt.Printf("%-10s %s  %s\n", item.Version, item.Date.Format("2006-01-02 15:04"), item.URL)
		}
		return
	}

	var dest string
	var err error
	switch {
	case *allFlag:
		err = manager.DownloadAll(ctx)
		dest = settings.DownloadsPath
	case *latestFlag:
		dest, err = manager.DownloadLatest(ctx)
	default:
		dest, err = manager.DownloadFirst(ctx)
	}

	if err != nil {
		if ctx.Err() != nil {
			fmt.Println("Download cancelled.")
			os.Exit(130)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(dest)
}
