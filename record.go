package reeldata

import "time"

// Country is the closed set of production countries the extractor
// classifies. Anything else on the source page maps to absence.
type Country string

// Recognized country values.
const (
	CountryJapan    Country = "Japan"
	CountryUSA      Country = "USA"
	CountryJapanUSA Country = "Japan, USA"
)

// Valid reports whether the country belongs to the closed set.
func (c Country) Valid() bool {
	switch c {
	case CountryJapan, CountryUSA, CountryJapanUSA:
		return true
	}
	return false
}

// ratings is the closed set of accepted MPAA/TV content ratings.
var ratings = map[string]bool{
	"G":        true,
	"PG":       true,
	"PG-13":    true,
	"R":        true,
	"TV-Y":     true,
	"TV-Y7":    true,
	"TV-Y7 FV": true,
	"TV-G":     true,
	"TV-PG":    true,
	"TV-14":    true,
	"TV-MA":    true,
}

// ValidRating reports whether s belongs to the closed content rating set.
// "Not Rated", "Unrated" and similar decorations do not.
func ValidRating(s string) bool {
	return ratings[s]
}

// MovieRecord holds the fields extracted for one title. Its identity is the
// detail link it was extracted from; one record per link, never merged.
// Every extracted field is independently optional: nil means the source page
// did not carry the value, which is expected rather than erroneous.
type MovieRecord struct {
	Link string `json:"link"`

	Title            *string    `json:"title"`
	Country          *Country   `json:"country"`
	RuntimeMinutes   *int       `json:"runtimeMinutes"`
	BudgetUSD        *int       `json:"budgetUsd"`
	GlobalGrossUSD   *int       `json:"globalGrossUsd"`
	MPAARating       *string    `json:"mpaaRating"`
	JapanReleaseDate *time.Time `json:"japanReleaseDate"`
	USAReleaseDate   *string    `json:"usaReleaseDate"`
	Genres           []string   `json:"genres"`
	UserRating       *float64   `json:"userRating"`
	UserRatingCount  *int       `json:"userRatingCount"`
	OscarWins        *int       `json:"oscarWins"`
	NonOscarWins     *int       `json:"nonOscarWins"`
	Metascore        *int       `json:"metascore"`

	// SourceHash is the hash of the detail page markup the record was
	// extracted from. Identical input yields an identical record.
	SourceHash string `json:"sourceHash"`
}

// Validate returns an error if the record violates its invariants.
func (r *MovieRecord) Validate() error {
	if r.Link == "" {
		return Errorf(EINVALID, "record link required")
	}
	if r.Country != nil && !r.Country.Valid() {
		return Errorf(EINVALID, "country %q outside the closed set", *r.Country)
	}
	if r.MPAARating != nil && !ValidRating(*r.MPAARating) {
		return Errorf(EINVALID, "rating %q outside the closed set", *r.MPAARating)
	}
	if r.JapanReleaseDate != nil && r.USAReleaseDate != nil {
		return Errorf(EINVALID, "japan and usa release dates are mutually exclusive")
	}
	return nil
}
