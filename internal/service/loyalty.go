package service

import (
	"sort"

	"github.com/iliyamo/hotel-front-desk/internal/model"
)

// pointsPerStay is awarded for every reservation a guest has made.
const pointsPerStay = 100

// LoyaltyEntry pairs a guest with their computed score for the ranked
// leaderboard.
type LoyaltyEntry struct {
	Guest  model.Guest `json:"guest"`
	Points int         `json:"points"`
	Stays  int         `json:"stays"`
}

// LoyaltyPoints returns the score for a single guest: 100 points per
// reservation, regardless of reservation status. Cancelled stays count
// too; the program has always scored bookings, not completed nights.
func LoyaltyPoints(guestID uint64, reservations []model.Reservation) int {
	return countReservations(guestID, reservations) * pointsPerStay
}

// RankLoyalty scores every guest and returns them ordered by points,
// highest first. The sort is stable, so guests with equal scores keep
// their input order.
func RankLoyalty(guests []model.Guest, reservations []model.Reservation) []LoyaltyEntry {
	entries := make([]LoyaltyEntry, 0, len(guests))
	for _, g := range guests {
		n := countReservations(g.ID, reservations)
		entries = append(entries, LoyaltyEntry{Guest: g, Points: n * pointsPerStay, Stays: n})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Points > entries[j].Points
	})
	return entries
}

// TopLoyal returns the first n entries of the ranking, fewer when there
// are not enough guests. n <= 0 yields an empty slice.
func TopLoyal(guests []model.Guest, reservations []model.Reservation, n int) []LoyaltyEntry {
	ranked := RankLoyalty(guests, reservations)
	if n < 0 {
		n = 0
	}
	if n > len(ranked) {
		n = len(ranked)
	}
	return ranked[:n]
}

func countReservations(guestID uint64, reservations []model.Reservation) int {
	n := 0
	for _, r := range reservations {
		if r.GuestID == guestID {
			n++
		}
	}
	return n
}
