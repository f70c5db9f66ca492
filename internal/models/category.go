package models

import "strings"

// CategoryMapping assigns a store category path to one product name.
type CategoryMapping struct {
	ProductName      string `json:"productName" validate:"required"`
	AssignedCategory string `json:"assignedCategory" validate:"required"`
	Reasoning        string `json:"reasoning,omitempty"`
}

// ProductLines splits a pasted product list into names, one per line, dropping
// lines that are empty or whitespace only. Kept lines are returned untrimmed.
func ProductLines(text string) []string {
	return NonBlank(strings.Split(text, "\n"))
}

// NonBlank returns the entries of lines that contain something other than whitespace.
func NonBlank(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		out = append(out, strings.TrimRight(line, "\r"))
	}
	return out
}
