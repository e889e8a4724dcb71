// internal/models/location.go
package models

// Fee sources surfaced to screens alongside the amount.
const (
	FeeSourceCityRegion = "city region fee"
	FeeSourceDefault    = "default fallback"
	FeeSourceError      = "error"
)

// Fee is the verification/delivery fee attached to a fully resolved
// location. Source records where the amount came from so screens can show
// it to the user.
type Fee struct {
	Amount float64 `json:"amount"`
	Source string  `json:"source"`
}

// CityRegion is a named sub-area of a city carrying its own fee.
type CityRegion struct {
	Name string  `json:"name"`
	Fee  float64 `json:"fee"`
}

// LocationSelection is the resolved five-level address plus free-text
// detail. A level is only meaningful when every level above it is set;
// Fee is derived and valid only once CityRegion is set.
type LocationSelection struct {
	Country     string `json:"country"`
	State       string `json:"state"`
	LGA         string `json:"lga"`
	City        string `json:"city"`
	CityRegion  string `json:"cityRegion"`
	HouseNumber string `json:"houseNumber,omitempty"`
	Street      string `json:"street,omitempty"`
	Landmark    string `json:"landmark,omitempty"`
	Fee         *Fee   `json:"fee,omitempty"`
}

// IsComplete reports whether all five hierarchy levels are filled.
func (l LocationSelection) IsComplete() bool {
	return l.Country != "" && l.State != "" && l.LGA != "" && l.City != "" && l.CityRegion != ""
}
