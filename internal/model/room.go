package model

// Room represents a bookable hotel room as stored in the `rooms` table.
// Status is a free-form string; the front desk uses it for both occupancy
// ("available", "occupied") and housekeeping ("clean", "dirty"). Occupancy
// on the availability calendar is always derived from reservations, never
// from this field.
//
// Fields:
//  ID       – primary key identifier.
//  Number   – display number, e.g. "101".
//  Type     – room type name matching a RoomTypeSetting entry.
//  Status   – current status string.
//  Rate     – nightly rate, non-negative.
//  Capacity – maximum number of guests, positive.
type Room struct {
	ID       uint64  `json:"id"`       // rooms.id
	Number   string  `json:"number"`   // rooms.number
	Type     string  `json:"type"`     // rooms.type
	Status   string  `json:"status"`   // rooms.status
	Rate     float64 `json:"rate"`     // rooms.rate
	Capacity int     `json:"capacity"` // rooms.capacity
}

// Room status values used by the front desk and housekeeping views.
const (
	RoomStatusAvailable = "available"
	RoomStatusOccupied  = "occupied"
	RoomStatusClean     = "clean"
	RoomStatusDirty     = "dirty"
)
