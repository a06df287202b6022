package models

import "math/rand"

const (
	TotalBookingsPerGame = 15
	AvgSeatPrice         = 4000

	// At most this many distinct regions appear inside a single booking.
	maxRegionsPerBooking = 3
)

var (
	Professions = []string{"Engineer", "Doctor", "Artist", "Farmer", "Teacher", "Lawyer", "Student", "Politician"}
	Sexes       = []string{"Male", "Female"}
	AgeGroups   = []string{"18-25", "26-40", "41-60", "60+"}
	Regions     = []string{
		"Andhra Pradesh", "Arunachal Pradesh", "Assam", "Bihar", "Chhattisgarh", "Goa", "Gujarat",
		"Haryana", "Himachal Pradesh", "Jharkhand", "Karnataka", "Kerala", "Madhya Pradesh",
		"Maharashtra", "Manipur", "Meghalaya", "Mizoram", "Nagaland", "Odisha", "Punjab",
		"Rajasthan", "Sikkim", "Tamil Nadu", "Telangana", "Tripura", "Uttar Pradesh",
		"Uttarakhand", "West Bengal", "Delhi", "Puducherry",
	}

	anchorTypes = []string{AnchorProfession, AnchorSex, AnchorAgeGroup, AnchorRegion}
)

// GenerateBookings produces the fixed offer sequence for a new game.
// Deterministic given rng.
func GenerateBookings(rng *rand.Rand) []BookingRequest {
	bookings := make([]BookingRequest, 0, TotalBookingsPerGame)

	for i := 0; i < TotalBookingsPerGame; i++ {
		volume := 5 + rng.Intn(11)
		price := int(AvgSeatPrice * (0.75 + rng.Float64()*0.75))
		anchorType := anchorTypes[rng.Intn(len(anchorTypes))]
		regionPool := sampleRegions(rng)

		var anchorValue string
		switch anchorType {
		case AnchorProfession:
			anchorValue = Professions[rng.Intn(len(Professions))]
		case AnchorSex:
			anchorValue = Sexes[rng.Intn(len(Sexes))]
		case AnchorAgeGroup:
			anchorValue = AgeGroups[rng.Intn(len(AgeGroups))]
		case AnchorRegion:
			anchorValue = regionPool[rng.Intn(len(regionPool))]
		}

		passengers := make([]Passenger, 0, volume)
		for j := 0; j < volume; j++ {
			p := Passenger{
				Profession: Professions[rng.Intn(len(Professions))],
				Sex:        Sexes[rng.Intn(len(Sexes))],
				AgeGroup:   AgeGroups[rng.Intn(len(AgeGroups))],
				Region:     regionPool[rng.Intn(len(regionPool))],
			}
			switch anchorType {
			case AnchorProfession:
				p.Profession = anchorValue
			case AnchorSex:
				p.Sex = anchorValue
			case AnchorAgeGroup:
				p.AgeGroup = anchorValue
			case AnchorRegion:
				p.Region = anchorValue
			}
			passengers = append(passengers, p)
		}

		bookings = append(bookings, BookingRequest{
			BookingID:    i,
			Volume:       volume,
			PricePerSeat: price,
			AnchorType:   anchorType,
			AnchorValue:  anchorValue,
			Passengers:   passengers,
		})
	}

	return bookings
}

// sampleRegions picks the small region pool a single booking draws from,
// keeping regional diversity within one booking bounded.
func sampleRegions(rng *rand.Rand) []string {
	k := maxRegionsPerBooking
	if len(Regions) < k {
		k = len(Regions)
	}
	pool := make([]string, 0, k)
	for _, idx := range rng.Perm(len(Regions))[:k] {
		pool = append(pool, Regions[idx])
	}
	return pool
}
