package reservations_test

import (
	"context"
	"testing"

	"pgregory.net/rapid"

	"github.com/preston-bernstein/travel-reservations-service/internal/app/reservations"
	"github.com/preston-bernstein/travel-reservations-service/internal/domain"
	"github.com/preston-bernstein/travel-reservations-service/internal/store"
	"github.com/preston-bernstein/travel-reservations-service/internal/testutil"
)

// Availability of every room always equals its seeded value minus the
// reservations currently holding it, whatever sequence of operations ran.
func TestAvailabilityMatchesActiveReservations(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		ctx := context.Background()

		roomCount := rapid.IntRange(1, 4).Draw(rt, "rooms")
		seed := make(map[int]int, roomCount)
		snap := domain.EmptySnapshot()
		for id := 1; id <= roomCount; id++ {
			avail := rapid.IntRange(0, 3).Draw(rt, "availability")
			seed[id] = avail
			snap.Rooms = append(snap.Rooms, domain.Room{ID: id, Name: "Room", Type: "standard", Price: 100, Availability: avail})
		}

		ms := store.NewMemoryStore(snap)
		svc := reservations.NewService(ms)

		steps := rapid.IntRange(1, 40).Draw(rt, "steps")
		for i := 0; i < steps; i++ {
			current, err := svc.ListReservations(ctx)
			if err != nil {
				rt.Fatalf("list reservations: %v", err)
			}

			// Room ids past roomCount exercise the not-found path.
			roomID := rapid.IntRange(1, roomCount+1).Draw(rt, "roomID")

			switch op := rapid.IntRange(0, 2).Draw(rt, "op"); {
			case op == 0 || len(current) == 0:
				_, _ = svc.Create(ctx, testutil.CreateRequest(roomID, "Guest", "2025-12-01", "2025-12-03"))
			case op == 1:
				target := current[rapid.IntRange(0, len(current)-1).Draw(rt, "target")]
				_, _ = svc.Update(ctx, target.ID, domain.UpdateRequest{RoomID: testutil.Ptr(roomID)})
			default:
				target := current[rapid.IntRange(0, len(current)-1).Draw(rt, "target")]
				if err := svc.Cancel(ctx, target.ID); err != nil {
					rt.Fatalf("cancel existing reservation: %v", err)
				}
			}

			checkAvailability(rt, svc, seed)
		}
	})
}

func checkAvailability(rt *rapid.T, svc *reservations.Service, seed map[int]int) {
	snap, err := svc.Snapshot(context.Background())
	if err != nil {
		rt.Fatalf("snapshot: %v", err)
	}
	held := make(map[int]int)
	for _, res := range snap.Reservations {
		held[res.RoomID]++
	}
	for _, room := range snap.Rooms {
		if room.Availability < 0 {
			rt.Fatalf("room %d has negative availability %d", room.ID, room.Availability)
		}
		if want := seed[room.ID] - held[room.ID]; room.Availability != want {
			rt.Fatalf("room %d availability %d, want %d (seed %d, held %d)",
				room.ID, room.Availability, want, seed[room.ID], held[room.ID])
		}
	}
}
