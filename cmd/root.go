package cmd

import (
	"log"
	"net/url"
	"os"

	"github.com/spf13/cobra"

	"github.com/Rorical/RoriLingo/internal/app"
	"github.com/Rorical/RoriLingo/internal/share"
)

var seedFlags struct {
	text   string
	source string
	target string
	link   string
}

var rootCmd = &cobra.Command{
	Use:   "rorilingo",
	Short: "A terminal translator",
	Long:  `RoriLingo is a terminal front end for a translation service, with history, undo and share links.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		seed, err := seedFromFlags()
		if err != nil {
			log.Fatalf("Invalid seed: %v", err)
		}
		runTUI(seed)
	},
}

// seedFromFlags merges --link with the explicit flags, which win.
func seedFromFlags() (share.Params, error) {
	values := url.Values{}
	if seedFlags.link != "" {
		u, err := url.Parse(seedFlags.link)
		if err != nil {
			return share.Params{}, err
		}
		values = u.Query()
	}
	if seedFlags.text != "" {
		values.Set("text", seedFlags.text)
	}
	if seedFlags.source != "" {
		values.Set("source", seedFlags.source)
	}
	if seedFlags.target != "" {
		values.Set("target", seedFlags.target)
	}
	return share.ParamsFromValues(values), nil
}

// runTUI exits non-zero when the application fails, after it has been stopped.
func runTUI(seed share.Params) {
	cfg := mustLoadConfig()

	application, err := app.NewApplication(cfg, seed)
	if err != nil {
		log.Fatalf("Failed to create application: %v", err)
	}

	if err := runApplication(application); err != nil {
		log.Fatalf("Application error: %v", err)
	}
}

type lifecycle interface {
	Start() error
	Stop()
}

// runApplication always stops a before returning.
func runApplication(a lifecycle) error {
	defer a.Stop()
	return a.Start()
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Printf("Command execution error: %v", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVar(&seedFlags.text, "text", "", "initial input text")
	rootCmd.Flags().StringVar(&seedFlags.source, "source", "", "initial source language code")
	rootCmd.Flags().StringVar(&seedFlags.target, "target", "", "initial target language code")
	rootCmd.Flags().StringVar(&seedFlags.link, "link", "", "share link to restore text and languages from")

	// Add subcommands
	rootCmd.AddCommand(profileCmd)
}
