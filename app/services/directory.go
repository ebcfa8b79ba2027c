// Package services provides external service integrations: the country directory and file exports
package services

import "context"

// Directory supplies the external Country and Language option lists
type Directory interface {
	Countries(ctx context.Context) ([]string, error)
	Languages(ctx context.Context) ([]string, error)
}

// DirectoryLists is the outcome of one directory load.
// A failed list is empty and carries its error.
type DirectoryLists struct {
	Countries    []string
	Languages    []string
	CountriesErr error
	LanguagesErr error
}

// FetchRecorder observes directory fetch outcomes
type FetchRecorder interface {
	ObserveDirectoryFetch(list, result string)
}

// Directory list names used in logs and metrics
const (
	DirectoryListCountries = "countries"
	DirectoryListLanguages = "languages"
)
