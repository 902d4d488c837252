package model

// Stay is a completed, historical visit attached to a guest. Stays are
// read-only data imported from past records; the reservation flow never
// creates them.
//
// Fields:
//  CheckIn    – arrival date, "2006-01-02".
//  CheckOut   – departure date, "2006-01-02".
//  Nights     – number of nights actually stayed.
//  TotalSpent – amount spent over the stay.
type Stay struct {
	CheckIn    string  `json:"checkIn"`    // stays.check_in
	CheckOut   string  `json:"checkOut"`   // stays.check_out
	Nights     int     `json:"nights"`     // stays.nights
	TotalSpent float64 `json:"totalSpent"` // stays.total_spent
}

// Guest is a person who has stayed or will stay at the hotel.
//
// Fields:
//  ID    – primary key identifier.
//  Name  – full name.
//  Email – contact email.
//  Phone – contact phone.
//  Stays – historical stay records, oldest first.
type Guest struct {
	ID    uint64 `json:"id"`    // guests.id
	Name  string `json:"name"`  // guests.name
	Email string `json:"email"` // guests.email
	Phone string `json:"phone"` // guests.phone
	Stays []Stay `json:"stays"` // rows from stays joined on guest_id
}
