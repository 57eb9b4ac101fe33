package export

import (
	"fmt"
	"io"

	"github.com/goccy/go-json"

	"github.com/papapumpkin/tnguide/internal/catalog"
)

// Document is the JSON export layout: the catalog with every place already
// enriched.
type Document struct {
	Name          string           `json:"name"`
	DefaultRegion string           `json:"defaultRegion"`
	Regions       []RegionDocument `json:"regions"`
}

// RegionDocument is one region in a Document.
type RegionDocument struct {
	Name                   string               `json:"name"`
	TravelCost             int                  `json:"travelCost"`
	StayCostPerDay         int                  `json:"stayCostPerDay"`
	FoodCostPerDay         int                  `json:"foodCostPerDay"`
	Weather                catalog.Weather      `json:"weather"`
	MapURL                 string               `json:"mapUrl,omitempty"`
	MapEmbedURL            string               `json:"mapEmbedUrl,omitempty"`
	Coordinates            *catalog.Coordinates `json:"coordinates,omitempty"`
	WeatherRecommendations map[string]string    `json:"weatherRecommendations,omitempty"`
	Tourism                *catalog.Tourism     `json:"tourism,omitempty"`
	Places                 []catalog.Place      `json:"places"`
}

// NewDocument converts cat to its JSON layout.
func NewDocument(cat *catalog.Catalog) Document {
	doc := Document{
		Name:          cat.Name(),
		DefaultRegion: cat.DefaultRegion(),
		Regions:       make([]RegionDocument, 0, cat.Len()),
	}
	for _, r := range cat.Regions() {
		doc.Regions = append(doc.Regions, RegionDocument{
			Name:                   r.Name,
			TravelCost:             r.TravelCost,
			StayCostPerDay:         r.StayCostPerDay,
			FoodCostPerDay:         r.FoodCostPerDay,
			Weather:                r.Weather,
			MapURL:                 r.MapURL,
			MapEmbedURL:            r.MapEmbedURL,
			Coordinates:            r.Coordinates,
			WeatherRecommendations: r.WeatherRecommendations,
			Tourism:                r.Tourism,
			Places:                 r.Places,
		})
	}
	return doc
}

// WriteJSON writes cat to w as an indented Document.
func WriteJSON(w io.Writer, cat *catalog.Catalog) error {
	if cat == nil {
		return ErrNilCatalog
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(NewDocument(cat)); err != nil {
		return fmt.Errorf("export: encode json: %w", err)
	}
	return nil
}
