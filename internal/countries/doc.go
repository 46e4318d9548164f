// Package countries loads the public country directory used by the calling
// code picker.
//
// The directory is fetched with a single GET request; each upstream record
// (alpha2Code, name, callingCodes) becomes a Country with a "+"-prefixed
// calling code and a flag image URL derived from the region code. Order is
// preserved exactly as returned.
//
// # Loading
//
// Load runs one fetch and picks the default selection:
//
//	client := countries.NewClient(urls.CountriesAll, urls.FlagService)
//	result := countries.Load(ctx, client, countries.DefaultCode)
//	if c, ok := result.SelectedCountry(); ok {
//	    fmt.Println(c.CallingCode) // "+1"
//	}
//
// There is no retry and no timeout unless one is configured with
// Client.SetTimeout. A failed load returns an empty list, no selection, and
// the error in LoadResult.Err for logging.
//
// # Errors
//
// All client failures are *FetchError values classified by ErrorType
// (network, timeout, canceled, HTTP, parse). Use the Is* helpers or
// errors.As to inspect them.
package countries
