package domain

// Flat is a rentable listing as the backend serves it. The client never
// derives or mutates these; they are read-only display records.
type Flat struct {
	ID          int64    `json:"id"`
	Location    string   `json:"location"`
	Name        string   `json:"name"`
	Price       float64  `json:"price"` // monthly
	RoomNumber  int      `json:"roomNumber"`
	Distance    *float64 `json:"distance"` // km, nullable
	Description string   `json:"description"`
	Amenities   []string `json:"amenities"`
	Images      []string `json:"images"`
}

// FlatSummary is the slice of a Flat a booking card needs.
type FlatSummary struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"` // first image reference, may be empty
}

func (f Flat) Summary() FlatSummary {
	s := FlatSummary{ID: f.ID, Name: f.Name}
	if s.Name == "" {
		s.Name = f.Location
	}
	if len(f.Images) > 0 {
		s.Image = f.Images[0]
	}
	return s
}

// SearchFilters mirror the backend's filter query parameters. Zero values
// mean "no constraint" and are omitted from the request entirely.
type SearchFilters struct {
	Location    string
	MinPrice    int
	MaxPrice    int
	RoomNumber  int
	MaxDistance float64 // km
}

func (f SearchFilters) Empty() bool {
	return f == SearchFilters{}
}
