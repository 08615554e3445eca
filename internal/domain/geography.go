package domain

// Country is reference data used to populate address forms.
type Country struct {
	ID     int     `json:"id"`
	Name   string  `json:"name"`
	Code   string  `json:"code"`
	States []State `json:"-"`
}

// State belongs to exactly one Country.
type State struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	CountryID int    `json:"-"`
}
