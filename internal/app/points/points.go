// Package points awards experience points for completed exchanges.
package points

import "github.com/campusshare/campusshare/internal/app/models"

// DefaultAward is granted for any category combination missing from the
// table. An unrecognized category must never block a transaction.
const DefaultAward = 10

var awards = map[models.ListingStatus]map[models.ResourceType]int{
	models.StatusLending: {
		models.ResourceTypeBook:     20,
		models.ResourceTypeNotes:    15,
		models.ResourceTypeHardware: 25,
	},
	models.StatusGiveaway: {
		models.ResourceTypeBook:     30,
		models.ResourceTypeNotes:    25,
		models.ResourceTypeHardware: 35,
	},
}

// For returns the point award for a transaction of the given type over a
// resource of the given type.
func For(transactionType models.ListingStatus, resourceType models.ResourceType) int {
	byType, ok := awards[transactionType]
	if !ok {
		return DefaultAward
	}
	award, ok := byType[resourceType]
	if !ok {
		return DefaultAward
	}
	return award
}
