package main

import (
	"strings"

	"github.com/AlecAivazis/survey/v2"

	"github.com/goliatone/go-quotegen/pkg/quote"
)

// promptMetadata fills blank customer fields from terminal prompts. Values
// already present in the order document are kept as prompt defaults.
func promptMetadata(meta *quote.Metadata) error {
	prompts := []struct {
		message string
		target  *string
		long    bool
	}{
		{"Customer name", &meta.CustomerName, false},
		{"Phone", &meta.Phone, false},
		{"Email", &meta.Email, false},
		{"Address", &meta.Address, true},
		{"Notes", &meta.Notes, true},
	}

	for _, p := range prompts {
		var answer string
		var err error
		if p.long {
			err = survey.AskOne(&survey.Multiline{Message: p.message, Default: *p.target}, &answer)
		} else {
			err = survey.AskOne(&survey.Input{Message: p.message, Default: *p.target}, &answer)
		}
		if err != nil {
			return err
		}
		if strings.TrimSpace(answer) != "" {
			*p.target = answer
		}
	}
	return nil
}
