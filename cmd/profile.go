package cmd

import (
	"fmt"
	"log"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/Rorical/RoriLingo/internal/config"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage translation profiles",
	Long:  `Manage profiles: the translation endpoint the client calls and the LLM settings used by serve.`,
}

var listProfilesCmd = &cobra.Command{
	Use:   "list",
	Short: "List all profiles",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := mustLoadConfig()

		fmt.Printf("Active Profile: %s\n\n", cfg.ActiveProfile)
		fmt.Println("Available Profiles:")
		for _, name := range cfg.ProfileNames("") {
			marker := ""
			if name == cfg.ActiveProfile {
				marker = " (active)"
			}
			fmt.Printf("  %s%s\n", name, marker)
			printProfile("    ", cfg.Profiles[name])
			fmt.Println()
		}
	},
}

var showProfileCmd = &cobra.Command{
	Use:   "show [profile-name]",
	Short: "Show profile details",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := mustLoadConfig()
		profile := mustProfile(cfg, args[0])

		fmt.Printf("Profile: %s\n", args[0])
		printProfile("", profile)
	},
}

var addProfileCmd = &cobra.Command{
	Use:   "add [profile-name]",
	Short: "Add a new profile",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := mustLoadConfig()

		var profileName string
		if len(args) > 0 {
			profileName = args[0]
		} else {
			profileName = promptText(promptui.Prompt{Label: "Profile name"})
		}
		if _, exists := cfg.Profiles[profileName]; exists {
			log.Fatalf("Profile '%s' already exists", profileName)
		}

		cfg.Profiles[profileName] = promptProfile(config.Profile{
			APIBase: config.DefaultAPIBase,
			Model:   config.DefaultModel,
		})
		mustSave(cfg)

		fmt.Printf("Profile '%s' added successfully!\n", profileName)
	},
}

var editProfileCmd = &cobra.Command{
	Use:   "edit [profile-name]",
	Short: "Edit an existing profile",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := mustLoadConfig()
		profileName := selectProfile(cfg, args, "", "edit")

		cfg.Profiles[profileName] = promptProfile(mustProfile(cfg, profileName))
		mustSave(cfg)

		fmt.Printf("Profile '%s' updated successfully!\n", profileName)
	},
}

var deleteProfileCmd = &cobra.Command{
	Use:   "delete [profile-name]",
	Short: "Delete a profile",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := mustLoadConfig()
		profileName := selectProfile(cfg, args, "", "delete")
		mustProfile(cfg, profileName)

		confirmPrompt := promptui.Prompt{
			Label:     fmt.Sprintf("Delete profile '%s'? (y/N)", profileName),
			IsConfirm: true,
		}
		if _, err := confirmPrompt.Run(); err != nil {
			fmt.Println("Deletion cancelled")
			return
		}

		// The last profile is replaced by a fresh default one
		delete(cfg.Profiles, profileName)
		cfg.EnsureDefaultProfile()
		if cfg.ActiveProfile == profileName {
			cfg.ActiveProfile = cfg.ProfileNames("")[0]
		}
		mustSave(cfg)

		fmt.Printf("Profile '%s' deleted successfully!\n", profileName)
	},
}

var switchProfileCmd = &cobra.Command{
	Use:   "switch [profile-name]",
	Short: "Switch to a different profile",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := mustLoadConfig()
		if len(args) == 0 && len(cfg.ProfileNames(cfg.ActiveProfile)) == 0 {
			fmt.Println("No other profiles available to switch to")
			return
		}
		profileName := selectProfile(cfg, args, cfg.ActiveProfile, "switch to")
		mustProfile(cfg, profileName)

		cfg.ActiveProfile = profileName
		mustSave(cfg)

		fmt.Printf("Switched to profile '%s'\n", profileName)
	},
}

func mustLoadConfig() *config.Config {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	return cfg
}

func mustSave(cfg *config.Config) {
	if err := cfg.Save(); err != nil {
		log.Fatalf("Failed to save config: %v", err)
	}
}

func mustProfile(cfg *config.Config, name string) config.Profile {
	profile, exists := cfg.Profiles[name]
	if !exists {
		log.Fatalf("Profile '%s' does not exist", name)
	}
	return profile
}

func printProfile(indent string, p config.Profile) {
	fmt.Printf("%sAPI Base: %s\n", indent, p.APIBase)
	fmt.Printf("%sModel: %s\n", indent, p.Model)
	if p.BaseURL != "" {
		fmt.Printf("%sLLM Base URL: %s\n", indent, p.BaseURL)
	}
	key := "Not set"
	if p.APIKey != "" {
		key = "Set (hidden)"
	}
	fmt.Printf("%sLLM API Key: %s\n", indent, key)
}

// promptProfile asks for every profile field, offering current values as defaults.
func promptProfile(current config.Profile) config.Profile {
	return config.Profile{
		APIBase: promptText(promptui.Prompt{Label: "Translation API base", Default: current.APIBase}),
		APIKey:  promptText(promptui.Prompt{Label: "LLM API Key (optional)", Default: current.APIKey, Mask: '*'}),
		Model:   promptText(promptui.Prompt{Label: "Model", Default: current.Model}),
		BaseURL: promptText(promptui.Prompt{Label: "LLM Base URL (optional)", Default: current.BaseURL}),
	}
}

func promptText(p promptui.Prompt) string {
	value, err := p.Run()
	if err != nil {
		log.Fatalf("Prompt failed: %v", err)
	}
	return value
}

// selectProfile returns args[0] or prompts for one of the profiles other
// than exclude.
func selectProfile(cfg *config.Config, args []string, exclude, action string) string {
	if len(args) > 0 {
		return args[0]
	}

	profileNames := cfg.ProfileNames(exclude)
	if len(profileNames) == 0 {
		log.Fatalf("No profiles available to %s", action)
	}

	prompt := promptui.Select{
		Label: fmt.Sprintf("Select profile to %s", action),
		Items: profileNames,
	}
	_, profileName, err := prompt.Run()
	if err != nil {
		log.Fatalf("Selection failed: %v", err)
	}
	return profileName
}

func init() {
	// Add subcommands to profile
	profileCmd.AddCommand(listProfilesCmd)
	profileCmd.AddCommand(showProfileCmd)
	profileCmd.AddCommand(addProfileCmd)
	profileCmd.AddCommand(editProfileCmd)
	profileCmd.AddCommand(deleteProfileCmd)
	profileCmd.AddCommand(switchProfileCmd)
}
