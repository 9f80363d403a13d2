package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/nmckinney/sok-downloader/internal/config"
	"github.com/nmckinney/sok-downloader/internal/download"
	"github.com/nmckinney/sok-downloader/internal/model"
	"github.com/nmckinney/sok-downloader/internal/sokmedia"
	"github.com/nmckinney/sok-downloader/internal/tui"
	"golang.org/x/term"
)

func usage() {
	fmt.Fprintln(os.Stderr, "sok-dl - download conference videos from sok-media.com")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  sok-dl [flags] CONFERENCE... OUTPUT_DIR USERNAME")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Conferences:")
	fmt.Fprintln(os.Stderr, "  "+strings.Join(model.ConferenceNames(), ", "))
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Flags:")
	flag.PrintDefaults()
}

func main() {
	var (
		delayFlag      = flag.Int("delay", 5, "Delay between video downloads in seconds")
		debugFlag      = flag.Bool("debug", false, "Dump the raw playlist JSON per conference")
		passwordFlag   = flag.String("password", "", "Password on the command line")
		promptPassFlag = flag.Bool("prompt-pass", false, "Prompt for the password interactively")
		configFlag     = flag.String("config", "", "Path to a JSON settings file")
		verboseFlag    = flag.Bool("verbose", false, "Show verbose output")
	)
	flag.Usage = usage
	flag.Parse()

	args := flag.Args()
	if len(args) < 3 {
		usage()
		os.Exit(1)
	}

	settings := config.DefaultSettings()
	if *configFlag != "" {
		var err error
		settings, err = config.Load(*configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	settings.Conferences = args[:len(args)-2]
	settings.OutputDir = args[len(args)-2]
	settings.Username = args[len(args)-1]
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "delay" {
			settings.DelaySeconds = *delayFlag
		}
	})
	if *debugFlag {
		settings.Debug = true
	}

	if (*passwordFlag == "") == !*promptPassFlag {
		fmt.Fprintln(os.Stderr, "Error: exactly one of -password and -prompt-pass is required")
		os.Exit(1)
	}
	settings.Password = *passwordFlag
	if *promptPassFlag {
		password, err := readPassword(settings.Username)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading password: %v\n", err)
			os.Exit(1)
		}
		settings.Password = password
	}

	if err := settings.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	client := sokmedia.NewClient(sokmedia.DefaultBaseURL)
	manager := download.NewManager(settings, client, func(event download.ProgressEvent) {
		if event.Level == download.LevelVerbose && !*verboseFlag {
			return
		}
		fmt.Println(prefixFor(event.Level) + event.Message)
	})

	if err := manager.Run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func prefixFor(level download.ProgressLevel) string {
	switch level {
	case download.LevelError:
		return "[!] "
	case download.LevelWarning:
		return "[!] "
	case download.LevelSuccess:
		return "[+] "
	case download.LevelInfo:
		return "[*] "
	default:
		return "    "
	}
}

// readPassword uses the masked prompt on a terminal and falls back to
// reading one line when stdin is piped.
func readPassword(username string) (string, error) {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		return tui.PromptPassword(username)
	}
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
