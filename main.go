package main

import (
	"context"
	"flag"
	"log"
	"runtime/debug"
	"strings"

	"github.com/racoon-plane-thief/ggn-console-downloader/cmd/downloader"
	"github.com/racoon-plane-thief/ggn-console-downloader/internal/config"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("FATAL: Recovered from panic in main: %v\n", r)
			debug.PrintStack()
		}
	}()

	var (
		configPath string
		token      string
		dry        bool
		output     string
		categories string
	)
	flag.StringVar(&configPath, "config", "./", "path to the folder holding config.json")
	flag.StringVar(&token, "token", "", "GGn API token; overrides config.json and GGN_TOKEN")
	flag.BoolVar(&dry, "dry", false, "print download links instead of downloading")
	flag.StringVar(&output, "output", "", "location to write the torrent files to")
	flag.StringVar(&categories, "categories", "", "comma-separated platform labels to scan")
	flag.Parse()

	if err := config.SetConfigPath(configPath); err != nil {
		log.Fatal(err)
	}
	cfg := config.Get()

	// Only flags the user actually set override the config file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "token":
			cfg.Token = token
		case "dry":
			cfg.DryRun = dry
		case "output":
			cfg.WriteLocation = output
		case "categories":
			cfg.Categories = cfg.Categories[:0]
			for _, c := range strings.Split(categories, ",") {
				if c = strings.TrimSpace(c); c != "" {
					cfg.Categories = append(cfg.Categories, c)
				}
			}
		}
	})

	ctx := context.Background()
	if err := downloader.Start(ctx); err != nil {
		log.Fatal(err)
	}
}
