package scheduler

import (
	"github.com/JohanBenade/schools-pwa-sub000/app/database"
	"github.com/JohanBenade/schools-pwa-sub000/app/models"
)

// blockAdjacency maps each building block to its neighbours in walking
// order, nearest first. Used to suggest nearby rooms when coordinators
// shuffle classes manually; the allocator itself relies on the grade backup
// chain instead.
var blockAdjacency = map[string][]string{
	"A":       {"B", "ADMIN"},
	"B":       {"A", "C"},
	"C":       {"B", "D", "HALL"},
	"D":       {"C", "TERRAIN"},
	"ADMIN":   {"A"},
	"HALL":    {"C", "TERRAIN"},
	"TERRAIN": {"D", "HALL"},
}

// NearbyBlocks returns the block itself followed by its neighbours.
func NearbyBlocks(block string) []string {
	return append([]string{block}, blockAdjacency[block]...)
}

// NearestVenues lists active venues in and around a venue's block, the
// venue's own block first.
func NearestVenues(db database.Queryer, venueID string) ([]models.Venue, error) {
	v, err := database.GetVenueByID(db, venueID)
	if err != nil {
		return nil, err
	}
	var out []models.Venue
	for _, block := range NearbyBlocks(v.Block) {
		venues, err := database.GetVenuesByBlock(db, block)
		if err != nil {
			return nil, err
		}
		for _, candidate := range venues {
			if candidate.ID != venueID {
				out = append(out, candidate)
			}
		}
	}
	return out, nil
}
