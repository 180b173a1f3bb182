package domain

import "math"

// Room is a bookable catalog entry. Only Availability changes after seeding.
type Room struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	Type         string  `json:"type"`
	Price        float64 `json:"price"`
	Availability int     `json:"availability"`
}

// Reservation holds one guest booking against a room.
// ID and CreatedAt never change after creation.
type Reservation struct {
	ID        string `json:"id"`
	RoomID    int    `json:"roomId"`
	GuestName string `json:"guestName"`
	CheckIn   string `json:"checkIn"`
	CheckOut  string `json:"checkOut"`
	CreatedAt string `json:"createdAt"`
}

// Snapshot is the persisted unit: the whole catalog plus every active reservation.
type Snapshot struct {
	Rooms        []Room        `json:"rooms"`
	Reservations []Reservation `json:"reservations"`
}

// EmptySnapshot returns a snapshot with non-nil, empty collections.
func EmptySnapshot() Snapshot {
	return Snapshot{
		Rooms:        []Room{},
		Reservations: []Reservation{},
	}
}

// Normalize replaces nil collections so the snapshot always encodes as arrays.
func (s Snapshot) Normalize() Snapshot {
	if s.Rooms == nil {
		s.Rooms = []Room{}
	}
	if s.Reservations == nil {
		s.Reservations = []Reservation{}
	}
	return s
}

// Clone returns a deep copy of the snapshot.
func (s Snapshot) Clone() Snapshot {
	out := Snapshot{
		Rooms:        make([]Room, len(s.Rooms)),
		Reservations: make([]Reservation, len(s.Reservations)),
	}
	copy(out.Rooms, s.Rooms)
	copy(out.Reservations, s.Reservations)
	return out
}

// CreateRequest carries the fields of a new reservation. Nil means absent.
type CreateRequest struct {
	RoomID    *int    `json:"roomId"`
	GuestName *string `json:"guestName"`
	CheckIn   *string `json:"checkIn"`
	CheckOut  *string `json:"checkOut"`
}

// UpdateRequest carries a partial reservation update. Nil means "leave unchanged".
type UpdateRequest struct {
	RoomID    *int    `json:"roomId"`
	GuestName *string `json:"guestName"`
	CheckIn   *string `json:"checkIn"`
	CheckOut  *string `json:"checkOut"`
}

// Empty reports whether no recognized field was supplied.
func (r UpdateRequest) Empty() bool {
	return r.RoomID == nil && r.GuestName == nil && r.CheckIn == nil && r.CheckOut == nil
}

// SearchCriteria filters rooms by availability floor and price ceiling.
type SearchCriteria struct {
	MinAvailability float64
	MaxPrice        float64
}

// DefaultSearchCriteria matches any room with at least one free unit.
func DefaultSearchCriteria() SearchCriteria {
	return SearchCriteria{MinAvailability: 1, MaxPrice: math.Inf(1)}
}

// Matches reports whether room satisfies both bounds.
// The floor is compared as float64 so any finite bound is honored.
func (c SearchCriteria) Matches(room Room) bool {
	return float64(room.Availability) >= c.MinAvailability && room.Price <= c.MaxPrice
}

// SearchResult is returned by room searches.
type SearchResult struct {
	TotalFound int    `json:"total_found"`
	Rooms      []Room `json:"rooms"`
}
