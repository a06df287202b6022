package models

// Demographic dimensions. These double as anchor types and as keys in a
// booking's demographic split.
const (
	AnchorProfession = "Profession"
	AnchorSex        = "Sex"
	AnchorAgeGroup   = "Age Group"
	AnchorRegion     = "Region"
)

type Passenger struct {
	Profession string `json:"profession"`
	Sex        string `json:"sex"`
	AgeGroup   string `json:"ageGroup"`
	Region     string `json:"region"`
}

// BookingRequest is one round's offer: a block of seats at a price, with a
// passenger manifest whose anchored dimension is constant across the group.
type BookingRequest struct {
	BookingID    int         `json:"bookingId"`
	Volume       int         `json:"volume"`
	PricePerSeat int         `json:"pricePerSeat"`
	AnchorType   string      `json:"anchorType"`
	AnchorValue  string      `json:"anchorValue"`
	Passengers   []Passenger `json:"passengers"`
}

// DemographicSplits counts each attribute value across the passenger list.
// Computed on demand, never stored.
func (b *BookingRequest) DemographicSplits() map[string]map[string]int {
	splits := map[string]map[string]int{
		AnchorProfession: {},
		AnchorSex:        {},
		AnchorAgeGroup:   {},
		AnchorRegion:     {},
	}
	for _, p := range b.Passengers {
		splits[AnchorProfession][p.Profession]++
		splits[AnchorSex][p.Sex]++
		splits[AnchorAgeGroup][p.AgeGroup]++
		splits[AnchorRegion][p.Region]++
	}
	return splits
}
