package urls

// CountriesAll is the public country directory endpoint. It returns every
// country as a JSON array with alpha2Code, name and callingCodes fields.
const CountriesAll = "https://restcountries.eu/rest/v2/all"

// FlagService is the base of the flag image service. Image URLs are built as
// FlagService + "/" + code + "/flat/64.png".
const FlagService = "https://www.countryflags.io"

// ProjectHome is shown in the application header.
const ProjectHome = "github.com/wallie/wallie"
