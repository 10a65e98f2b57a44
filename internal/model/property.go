package model

// Property mirrors one row of the listings spreadsheet. Every field is text,
// including price and the comma-separated media lists.
type Property struct {
	ID               string `json:"ID" yaml:"id"`
	Title            string `json:"Title" yaml:"title"`
	Location         string `json:"Location" yaml:"location"`
	Status           string `json:"Status" yaml:"status"`
	Type             string `json:"Type" yaml:"type"`
	Bedrooms         string `json:"Bedrooms" yaml:"bedrooms"`
	Bathrooms        string `json:"Bathrooms" yaml:"bathrooms"`
	Area             string `json:"Area" yaml:"area"`
	Price            string `json:"Price" yaml:"price"`
	Description      string `json:"Description" yaml:"description"`
	ExteriorImages   string `json:"Exterior Images" yaml:"exterior_images"`
	BedroomImages    string `json:"Bedroom Images" yaml:"bedroom_images"`
	BathroomImages   string `json:"Bathroom Images" yaml:"bathroom_images"`
	LivingRoomImages string `json:"Living Room Images" yaml:"living_room_images"`
}

type PropertyMedia struct {
	Exterior   []MediaItem `json:"exterior"`
	Bedroom    []MediaItem `json:"bedroom"`
	Bathroom   []MediaItem `json:"bathroom"`
	LivingRoom []MediaItem `json:"living_room"`
}

// PropertyView is a property prepared for display in a chosen currency.
type PropertyView struct {
	ID              string        `json:"id"`
	Title           string        `json:"title"`
	Location        string        `json:"location"`
	Status          string        `json:"status"`
	Type            string        `json:"type"`
	Bedrooms        string        `json:"bedrooms"`
	Bathrooms       string        `json:"bathrooms"`
	Area            string        `json:"area"`
	PriceUSD        float64       `json:"price_usd"`
	PriceText       string        `json:"price_text"`
	Currency        CurrencyCode  `json:"currency"`
	Price           float64       `json:"price"`
	FormattedPrice  string        `json:"formatted_price"`
	DescriptionHTML string        `json:"description_html"`
	Media           PropertyMedia `json:"media"`
}
