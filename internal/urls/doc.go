// Package urls provides centralized constants for the remote endpoints the
// application talks to.
//
// Defaults live here so they can be changed in one place; every value can
// still be overridden through the config file, environment, or CLI flags.
//
// Usage:
//
//	import "github.com/wallie/wallie/internal/urls"
//
//	client := countries.NewClient(urls.CountriesAll, urls.FlagService)
package urls
