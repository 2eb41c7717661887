package models

// MenuItem is a static catalog entry. Price is the unit price in dollars.
type MenuItem struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Image string  `json:"img"`
}

type Category struct {
	Name  string     `json:"name"`
	Items []MenuItem `json:"items"`
}
