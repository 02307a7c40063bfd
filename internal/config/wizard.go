package config

import (
	"fmt"
	"strconv"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to .sitewire.yml.
func RunWizard() (*Config, error) {
	fmt.Println("Welcome to sitewire! Let's configure your site.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Contact endpoint.
	endpointPrompt := promptui.Prompt{
		Label:   "Contact form endpoint URL",
		Default: cfg.Contact.Endpoint,
	}
	endpoint, err := endpointPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("contact endpoint: %w", err)
	}
	cfg.Contact.Endpoint = endpoint

	// 2. Success message auto-clear.
	clearPrompt := promptui.Select{
		Label: "Auto-clear the success banner",
		Items: []string{
			"never  — the message stays until the next submit",
			"after 7 seconds",
		},
	}
	clearIdx, _, err := clearPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("auto-clear selection: %w", err)
	}
	if clearIdx == 1 {
		cfg.Contact.ClearAfterSeconds = 7
	}

	// 3. Page assets directory.
	webPrompt := promptui.Prompt{
		Label:   "Page assets directory",
		Default: cfg.Build.WebDir,
	}
	webDir, err := webPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("web dir: %w", err)
	}
	cfg.Build.WebDir = webDir

	// 4. Bundle output directory.
	outPrompt := promptui.Prompt{
		Label:   "Bundle output directory",
		Default: cfg.Build.OutDir,
	}
	outDir, err := outPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("output dir: %w", err)
	}
	cfg.Build.OutDir = outDir
	cfg.Preview.Dir = outDir

	// 5. Preview port.
	portPrompt := promptui.Prompt{
		Label:   "Preview server port",
		Default: strconv.Itoa(cfg.Preview.Port),
		Validate: func(s string) error {
			n, err := strconv.Atoi(s)
			if err != nil || n < 1 || n > 65535 {
				return fmt.Errorf("enter a port between 1 and 65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("preview port: %w", err)
	}
	cfg.Preview.Port, _ = strconv.Atoi(portStr)

	// 6. Audit include patterns.
	includePrompt := promptui.Prompt{
		Label:   "Audit include patterns (comma-separated globs)",
		Default: "**/*.html",
	}
	includeStr, err := includePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("include patterns: %w", err)
	}
	cfg.Audit.Include = splitAndTrim(includeStr)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	// Save to .sitewire.yml.
	configPath := ".sitewire.yml"
	if err := cfg.Save(configPath); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", configPath)
	return cfg, nil
}

// splitAndTrim splits a comma-separated string and trims whitespace.
func splitAndTrim(s string) []string {
	var result []string
	start := 0
	for i := 0; i <= len(s); i++ {
		if i == len(s) || s[i] == ',' {
			token := trimSpace(s[start:i])
			if token != "" {
				result = append(result, token)
			}
			start = i + 1
		}
	}
	return result
}

func trimSpace(s string) string {
	i, j := 0, len(s)
	for i < j && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	for j > i && (s[j-1] == ' ' || s[j-1] == '\t') {
		j--
	}
	return s[i:j]
}
