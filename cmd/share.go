package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/Rorical/RoriLingo/internal/langs"
	"github.com/Rorical/RoriLingo/internal/share"
)

var shareFlags struct {
	source string
	target string
	open   bool
}

var shareCmd = &cobra.Command{
	Use:   "share [text]",
	Short: "Print a share link and QR code URL for text",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := mustLoadConfig()

		text, err := readText(args)
		if err != nil {
			log.Fatalf("Failed to read input: %v", err)
		}

		source, target := langs.DefaultSource, langs.DefaultTarget
		if code, ok := langs.Normalize(cfg.Settings.DefaultTarget); ok {
			target = code
		}
		if code, ok := langs.Normalize(shareFlags.source); ok {
			source = code
		}
		if code, ok := langs.Normalize(shareFlags.target); ok && code != langs.Auto {
			target = code
		}

		link, err := share.Link(cfg.Settings.ShareBase, text, source, target)
		if err != nil {
			log.Fatalf("Failed to build link: %v", err)
		}
		qr := share.QRCodeURL(link)

		fmt.Printf("Link: %s\n", link)
		fmt.Printf("QR:   %s\n", qr)

		if shareFlags.open {
			if err := share.Open(qr); err != nil {
				log.Fatalf("Failed to open QR code: %v", err)
			}
		}
	},
}

func init() {
	shareCmd.Flags().StringVarP(&shareFlags.source, "source", "s", "", "source language code")
	shareCmd.Flags().StringVarP(&shareFlags.target, "target", "t", "", "target language code")
	shareCmd.Flags().BoolVar(&shareFlags.open, "open", false, "open the QR code in a browser")
	rootCmd.AddCommand(shareCmd)
}
