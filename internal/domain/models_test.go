package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"reflect"
	"testing"
)

func TestReservationJSONTags(t *testing.T) {
	type fieldCheck struct {
		name string
		tag  string
	}

	resType := reflect.TypeOf(Reservation{})
	fields := []fieldCheck{
		{"ID", "id"},
		{"RoomID", "roomId"},
		{"GuestName", "guestName"},
		{"CheckIn", "checkIn"},
		{"CheckOut", "checkOut"},
		{"CreatedAt", "createdAt"},
	}

	for _, fc := range fields {
		field, ok := resType.FieldByName(fc.name)
		if !ok {
			t.Fatalf("missing field %s", fc.name)
		}
		if jsonTag := field.Tag.Get("json"); jsonTag != fc.tag {
			t.Fatalf("field %s expected json tag %s, got %s", fc.name, fc.tag, jsonTag)
		}
	}
}

func TestEmptySnapshotEncodesArrays(t *testing.T) {
	data, err := json.Marshal(EmptySnapshot())
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(data) != `{"rooms":[],"reservations":[]}` {
		t.Fatalf("unexpected encoding %s", data)
	}

	data, _ = json.Marshal(Snapshot{}.Normalize())
	if string(data) != `{"rooms":[],"reservations":[]}` {
		t.Fatalf("expected normalized snapshot to encode arrays, got %s", data)
	}
}

func TestSnapshotCloneDoesNotAlias(t *testing.T) {
	orig := Snapshot{
		Rooms:        []Room{{ID: 1, Availability: 2}},
		Reservations: []Reservation{{ID: "r1", RoomID: 1}},
	}
	cp := orig.Clone()
	cp.Rooms[0].Availability = 0
	cp.Reservations[0].GuestName = "changed"

	if orig.Rooms[0].Availability != 2 {
		t.Fatalf("clone aliased rooms")
	}
	if orig.Reservations[0].GuestName != "" {
		t.Fatalf("clone aliased reservations")
	}
}

func TestUpdateRequestEmpty(t *testing.T) {
	if !(UpdateRequest{}).Empty() {
		t.Fatalf("expected zero update request to be empty")
	}
	name := "x"
	if (UpdateRequest{GuestName: &name}).Empty() {
		t.Fatalf("expected update with guest name to be non-empty")
	}
}

func TestKindOf(t *testing.T) {
	if got := KindOf(ErrRoomNotFound); got != KindRoomNotFound {
		t.Fatalf("expected RoomNotFound, got %s", got)
	}
	wrapped := fmt.Errorf("ctx: %w", ErrRoomUnavailable)
	if got := KindOf(wrapped); got != KindRoomUnavailable {
		t.Fatalf("expected RoomUnavailable through wrap, got %s", got)
	}
	if got := KindOf(errors.New("boom")); got != KindInternal {
		t.Fatalf("expected InternalError for foreign error, got %s", got)
	}
}

func TestInternalHidesCauseFromPublicMessage(t *testing.T) {
	cause := errors.New("disk full")
	err := Internal(cause)
	if PublicMessage(err) != "internal error" {
		t.Fatalf("unexpected public message %q", PublicMessage(err))
	}
	if !errors.Is(err, cause) {
		t.Fatalf("expected cause to be unwrapped")
	}
	if MissingField("roomId").Message != "Missing required field: roomId" {
		t.Fatalf("unexpected missing field message")
	}
}

func TestSearchCriteriaMatchesLargeFloor(t *testing.T) {
	room := Room{ID: 1, Price: 100, Availability: 5}

	if !DefaultSearchCriteria().Matches(room) {
		t.Fatalf("expected default criteria to match an available room")
	}
	if (SearchCriteria{MinAvailability: 1e20, MaxPrice: math.Inf(1)}).Matches(room) {
		t.Fatalf("expected huge availability floor to match nothing")
	}
	if !(SearchCriteria{MinAvailability: 4.5, MaxPrice: 100}).Matches(room) {
		t.Fatalf("expected fractional floor and inclusive price to match")
	}
	if (SearchCriteria{MinAvailability: 5.5, MaxPrice: 100}).Matches(room) {
		t.Fatalf("expected fractional floor above availability to reject")
	}
}
