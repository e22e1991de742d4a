// Package freshness classifies inventory items by expiration urgency and
// orders collections for display. Status is derived on every read and never
// persisted, since it depends on the current date.
package freshness

import (
	"math"
	"sort"
	"time"

	"github.com/SaharI12/PantryChef/internal/models"
)

type Status string

const (
	StatusExpired      Status = "expired"
	StatusExpiringSoon Status = "expiring_soon"
	StatusFresh        Status = "fresh"
)

// ExpiringSoonWindowDays is the number of days before expiration at which an
// item counts as expiring soon. The window is inclusive: an item expiring
// today is expiring soon, not expired.
const ExpiringSoonWindowDays = 7

const day = 24 * time.Hour

// statusRank orders statuses by urgency for sorting.
var statusRank = map[Status]int{
	StatusExpired:      0,
	StatusExpiringSoon: 1,
	StatusFresh:        2,
}

// Classify returns the freshness status of an item given its optional
// expiration date. Both instants are normalized to midnight before comparing,
// so same-day expirations compare in whole-day units.
func Classify(expiration *time.Time, now time.Time) Status {
	if expiration == nil {
		return StatusFresh
	}

	expMidnight := midnight(*expiration)
	nowMidnight := midnight(now)

	diffDays := int(math.Ceil(float64(expMidnight.Sub(nowMidnight)) / float64(day)))

	if diffDays < 0 {
		return StatusExpired
	}
	if diffDays <= ExpiringSoonWindowDays {
		return StatusExpiringSoon
	}
	return StatusFresh
}

// SortByUrgency returns a copy of items ordered expired first, then expiring
// soon, then fresh. The sort is stable: items with equal status keep their
// relative input order.
func SortByUrgency(items []models.InventoryItem, now time.Time) []models.InventoryItem {
	sorted := make([]models.InventoryItem, len(items))
	copy(sorted, items)

	sort.SliceStable(sorted, func(i, j int) bool {
		rankI := statusRank[Classify(sorted[i].ExpirationDate, now)]
		rankJ := statusRank[Classify(sorted[j].ExpirationDate, now)]
		return rankI < rankJ
	})

	return sorted
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
