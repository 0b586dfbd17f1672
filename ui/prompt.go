package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"
)

func PromptText(text string) (string, error) {
	prompt := promptui.Prompt{
		Label: text,
	}
	return prompt.Run()
}

// PromptPassword masks input with asterisks
func PromptPassword(text string) (string, error) {
	prompt := promptui.Prompt{
		Label: text,
		Mask:  '*',
		Validate: func(input string) error {
			if input == "" {
				return errors.New("value must not be empty")
			}
			return nil
		},
	}
	return prompt.Run()
}

func PromptYesNo(msg string) (bool, error) {
	prompt := promptui.Prompt{
		Label:     msg,
		IsConfirm: true,
	}
	res, err := prompt.Run()
	if err != nil {
		// promptui returns ErrAbort when the user answers no
		if err == promptui.ErrAbort {
			return false, nil
		}
		return false, err
	}
	return strings.EqualFold(res, "y") || res == "", nil
}

// PromptWorkspaceHost validates that the host looks like a URL
func PromptWorkspaceHost() (string, error) {
	prompt := promptui.Prompt{
		Label: "Workspace URL",
		Validate: func(input string) error {
			if !strings.HasPrefix(input, "http://") && !strings.HasPrefix(input, "https://") {
				return errors.New("must start with http:// or https://")
			}
			return nil
		},
	}
	host, err := prompt.Run()
	if err != nil {
		return "", err
	}
	return strings.TrimRight(host, "/"), nil
}

// PromptApps selects an app by name
func PromptApps(names []string) (string, error) {
	prompt := promptui.Select{
		Label: "Select App",
		Items: names,
		Templates: &promptui.SelectTemplates{
			Active:   `{{ . | underline }}`,
			Inactive: `{{ . }}`,
			Selected: fmt.Sprintf("%s App: {{ . | magenta | bold }} ", GreenText("✔")),
		},
	}
	i, _, err := prompt.Run()
	if err != nil {
		return "", err
	}
	return names[i], nil
}
