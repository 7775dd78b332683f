package cmd

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Rorical/RoriLingo/internal/app"
	"github.com/Rorical/RoriLingo/internal/history"
	"github.com/Rorical/RoriLingo/internal/langs"
	"github.com/Rorical/RoriLingo/internal/share"
	"github.com/Rorical/RoriLingo/internal/translate"
)

var translateFlags struct {
	source    string
	target    string
	noHistory bool
}

var translateCmd = &cobra.Command{
	Use:   "translate [text]",
	Short: "Translate text once and print the result",
	Long:  `Translate the given text (or stdin when no argument is given) and print the translation.`,
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := mustLoadConfig()

		text, err := readText(args)
		if err != nil {
			log.Fatalf("Failed to read input: %v", err)
		}

		session := app.InitialSession(cfg, share.Params{})
		source, target := session.SourceLang, session.TargetLang
		if translateFlags.source != "" {
			code, ok := langs.Normalize(translateFlags.source)
			if !ok {
				log.Fatalf("Unsupported source language %q", translateFlags.source)
			}
			source = code
		}
		if translateFlags.target != "" {
			code, ok := langs.Normalize(translateFlags.target)
			if !ok || code == langs.Auto {
				log.Fatalf("Unsupported target language %q", translateFlags.target)
			}
			target = code
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		client := app.NewClient(cfg).WithOnRetry(func(attempt int, err error) {
			fmt.Fprintf(os.Stderr, "Retrying request... (%v)\n", err)
		})
		req := translate.Request{Text: strings.TrimSpace(text), SourceLang: source, TargetLang: target}
		result, err := client.Translate(ctx, req)
		if err != nil {
			log.Fatalf("%v", err)
		}

		fmt.Println(result.Translation)
		if result.DetectedSourceLang != "" {
			fmt.Fprintf(os.Stderr, "Detected: %s\n", langs.Detected(result.DetectedSourceLang))
		}

		if translateFlags.noHistory {
			return
		}
		hist, store, err := app.OpenHistory(cfg)
		if err != nil {
			log.Printf("History unavailable: %v", err)
			return
		}
		defer store.Close()

		entrySource := source
		if d := result.DetectedSourceLang; d != langs.Auto && langs.Valid(d) {
			entrySource = d
		}
		if err := hist.Add(history.Entry{
			SourceText:     req.Text,
			TranslatedText: result.Translation,
			SourceLang:     entrySource,
			TargetLang:     target,
		}); err != nil {
			log.Printf("Failed to save history: %v", err)
		}
	},
}

func readText(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func init() {
	translateCmd.Flags().StringVarP(&translateFlags.source, "source", "s", "", "source language code (default auto)")
	translateCmd.Flags().StringVarP(&translateFlags.target, "target", "t", "", "target language code (default from settings)")
	translateCmd.Flags().BoolVar(&translateFlags.noHistory, "no-history", false, "do not record this translation")
	rootCmd.AddCommand(translateCmd)
}
