package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/Rorical/RoriLingo/internal/app"
	"github.com/Rorical/RoriLingo/internal/history"
	"github.com/Rorical/RoriLingo/internal/langs"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect or clear saved translations",
}

var listHistoryCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved translations, newest first",
	Run: func(cmd *cobra.Command, args []string) {
		hist, closeStore := openHistory()
		defer closeStore()

		format, _ := cmd.Flags().GetString("format")
		if err := writeHistory(os.Stdout, hist.List(), format); err != nil {
			log.Fatalf("Failed to list history: %v", err)
		}
	},
}

var clearHistoryCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all saved translations",
	Run: func(cmd *cobra.Command, args []string) {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			confirmPrompt := promptui.Prompt{
				Label:     "Clear translation history? (y/N)",
				IsConfirm: true,
			}
			if _, err := confirmPrompt.Run(); err != nil {
				fmt.Println("Clear cancelled")
				return
			}
		}

		hist, closeStore := openHistory()
		defer closeStore()

		if err := hist.Clear(); err != nil {
			log.Fatalf("Failed to clear history: %v", err)
		}
		fmt.Println("History cleared")
	},
}

func openHistory() (*history.Store, func()) {
	cfg := mustLoadConfig()
	hist, store, err := app.OpenHistory(cfg)
	if err != nil {
		log.Fatalf("Failed to open history: %v", err)
	}
	return hist, func() {
		if err := store.Close(); err != nil {
			log.Printf("Failed to close store: %v", err)
		}
	}
}

// writeHistory renders entries as text, json or yaml.
func writeHistory(w io.Writer, entries []history.Entry, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(entries); err != nil {
			return err
		}
		return enc.Close()
	case "", "text":
		if len(entries) == 0 {
			_, err := fmt.Fprintln(w, "No translations yet.")
			return err
		}
		for i, e := range entries {
			fmt.Fprintf(w, "%d. %s -> %s | %s\n", i+1,
				langs.LabelOrUnknown(e.SourceLang),
				langs.LabelOrUnknown(e.TargetLang),
				e.CreatedAt.Local().Format("2006-01-02 15:04"))
			fmt.Fprintf(w, "   In:  %s\n", e.SourceText)
			fmt.Fprintf(w, "   Out: %s\n\n", e.TranslatedText)
		}
		return nil
	default:
		return fmt.Errorf("unknown format %q (want text, json or yaml)", format)
	}
}

func init() {
	listHistoryCmd.Flags().StringP("format", "f", "text", "output format: text, json or yaml")
	clearHistoryCmd.Flags().BoolP("yes", "y", false, "skip the confirmation prompt")
	historyCmd.AddCommand(listHistoryCmd)
	historyCmd.AddCommand(clearHistoryCmd)
	rootCmd.AddCommand(historyCmd)
}
