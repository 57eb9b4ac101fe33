package catalog

// Coordinates is a region's reference point. It is display-only; nothing in
// the guide computes distances.
type Coordinates struct {
	Lat float64 `toml:"lat" json:"lat"`
	Lng float64 `toml:"lng" json:"lng"`
}

// Weather is the static current-conditions record for a region.
type Weather struct {
	Temp      int    `toml:"temp" json:"temp"`
	Condition string `toml:"condition" json:"condition" validate:"required"`
}

// Season describes one climatic season in a region's tourism notes.
type Season struct {
	Name        string `toml:"name" json:"name" validate:"required"`
	Temp        string `toml:"temp" json:"temp"`
	Description string `toml:"description" json:"description"`
}

// Festival is a recurring local event worth planning around.
type Festival struct {
	Name        string `toml:"name" json:"name" validate:"required"`
	Month       string `toml:"month" json:"month"`
	Description string `toml:"description" json:"description"`
}

// Tourism holds the optional long-form travel notes for a region.
type Tourism struct {
	BestTimeToVisit string     `toml:"best_time_to_visit" json:"bestTimeToVisit,omitempty"`
	Rainfall        string     `toml:"rainfall" json:"rainfall,omitempty"`
	Seasons         []Season   `toml:"seasons" json:"seasons,omitempty" validate:"dive"`
	Festivals       []Festival `toml:"festivals" json:"festivals,omitempty" validate:"dive"`
	TravelTips      []string   `toml:"travel_tips" json:"travelTips,omitempty"`
}

// Place is a single enriched point of interest. Every optional field of the
// raw record has been resolved by Enrich, so consumers never need fallbacks.
type Place struct {
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	Image        string     `json:"image"`
	Images       []string   `json:"images,omitempty"`
	Category     []Category `json:"category"`
	Rating       float64    `json:"rating"`
	ReviewCount  int        `json:"reviewCount"`
	Badge        string     `json:"badge,omitempty"`
	EntryFee     string     `json:"entryFee"`
	Duration     string     `json:"duration"`
	BestTime     string     `json:"bestTime"`
	OpeningHours string     `json:"openingHours"`
	VisitorTips  string     `json:"visitorTips"`
	District     string     `json:"district"`
}

// HasCategory reports whether the place is tagged with c.
func (p Place) HasCategory(c Category) bool {
	for _, have := range p.Category {
		if have == c {
			return true
		}
	}
	return false
}

// Key identifies a place across the whole catalog. Place names are only
// unique within their district.
func (p Place) Key() string {
	return p.District + "/" + p.Name
}

// Region is a named district owning an ordered list of places.
type Region struct {
	Name                   string
	Places                 []Place
	TravelCost             int
	StayCostPerDay         int
	FoodCostPerDay         int
	Weather                Weather
	MapURL                 string
	MapEmbedURL            string
	Coordinates            *Coordinates
	WeatherRecommendations map[string]string
	Tourism                *Tourism
}

// RawPlace is a place record as it appears in the catalog file, before
// enrichment. Zero values mean "derive a default".
type RawPlace struct {
	Name         string   `toml:"name" validate:"required"`
	Description  string   `toml:"description"`
	Image        string   `toml:"image"`
	Images       []string `toml:"images"`
	Category     []string `toml:"category"`
	Rating       float64  `toml:"rating" validate:"gte=0,lte=5"`
	ReviewCount  int      `toml:"review_count" validate:"gte=0"`
	Badge        string   `toml:"badge"`
	EntryFee     string   `toml:"entry_fee"`
	Duration     string   `toml:"duration"`
	BestTime     string   `toml:"best_time"`
	OpeningHours string   `toml:"opening_hours"`
	VisitorTips  string   `toml:"visitor_tips"`
}

// RawRegion is a region record as it appears in the catalog file.
type RawRegion struct {
	Name                   string            `toml:"name" validate:"required"`
	TravelCost             int               `toml:"travel_cost" validate:"gte=0"`
	StayCostPerDay         int               `toml:"stay_cost_per_day" validate:"gte=0"`
	FoodCostPerDay         int               `toml:"food_cost_per_day" validate:"gte=0"`
	MapURL                 string            `toml:"map_url" validate:"omitempty,url"`
	MapEmbedURL            string            `toml:"map_embed_url" validate:"omitempty,url"`
	Coordinates            *Coordinates      `toml:"coordinates"`
	Weather                Weather           `toml:"weather"`
	WeatherRecommendations map[string]string `toml:"weather_recommendations"`
	Tourism                *Tourism          `toml:"tourism"`
	Places                 []RawPlace        `toml:"places" validate:"dive"`
}

// File is the on-disk catalog document.
type File struct {
	Name          string      `toml:"name" validate:"required"`
	DefaultRegion string      `toml:"default_region" validate:"required"`
	Regions       []RawRegion `toml:"regions" validate:"required,min=1,dive"`
}
