package http

import (
	"encoding/json"
	nethttp "net/http"
	"strings"
	"testing"

	"github.com/preston-bernstein/travel-reservations-service/internal/domain"
	"github.com/preston-bernstein/travel-reservations-service/internal/http/handlers"
	"github.com/preston-bernstein/travel-reservations-service/internal/http/middleware"
	"github.com/preston-bernstein/travel-reservations-service/internal/testutil"
)

func newTestRouter(t *testing.T, snap domain.Snapshot) nethttp.Handler {
	t.Helper()
	svc, _ := testutil.NewServiceWithSnapshot(snap)
	logger, _ := testutil.NewBufferLogger()
	return middleware.LoggingMiddleware(logger, nil, NewRouter(handlers.NewHandler(svc, logger)))
}

func roomsOnly() domain.Snapshot {
	return domain.Snapshot{Rooms: testutil.SeedRooms(), Reservations: []domain.Reservation{}}
}

func TestRouterRoutesKnownPaths(t *testing.T) {
	router := newTestRouter(t, testutil.SeedSnapshot())

	cases := []struct {
		method string
		path   string
		want   int
	}{
		{nethttp.MethodGet, "/health", nethttp.StatusOK},
		{nethttp.MethodGet, "/api/rooms", nethttp.StatusOK},
		{nethttp.MethodGet, "/api/rooms/search", nethttp.StatusOK},
		{nethttp.MethodGet, "/api/rooms/1", nethttp.StatusOK},
		{nethttp.MethodGet, "/api/rooms/99", nethttp.StatusNotFound},
		{nethttp.MethodGet, "/api/reservations", nethttp.StatusOK},
		{nethttp.MethodGet, "/api/reservations/" + testutil.SeedReservationID, nethttp.StatusOK},
		{nethttp.MethodGet, "/api/reservations/missing", nethttp.StatusNotFound},
		{nethttp.MethodGet, "/nope", nethttp.StatusNotFound},
		{nethttp.MethodPost, "/health", nethttp.StatusMethodNotAllowed},
		{nethttp.MethodPost, "/api/rooms", nethttp.StatusMethodNotAllowed},
		{nethttp.MethodPatch, "/api/reservations/" + testutil.SeedReservationID, nethttp.StatusMethodNotAllowed},
		{nethttp.MethodDelete, "/api/reservations", nethttp.StatusMethodNotAllowed},
	}

	for _, tc := range cases {
		rr := testutil.Serve(router, tc.method, tc.path, nil)
		if rr.Code != tc.want {
			t.Fatalf("%s %s expected status %d, got %d", tc.method, tc.path, tc.want, rr.Code)
		}
	}
}

func TestErrorBodyCarriesRequestID(t *testing.T) {
	router := newTestRouter(t, testutil.SeedSnapshot())

	rr := testutil.Serve(router, nethttp.MethodGet, "/api/reservations/missing", nil)
	testutil.AssertStatus(t, rr, nethttp.StatusNotFound)

	var body map[string]string
	testutil.DecodeJSON(t, rr, &body)
	if body["error"] != "Reservation not found" {
		t.Fatalf("unexpected error %q", body["error"])
	}
	if body["requestId"] == "" || body["requestId"] != rr.Header().Get("X-Request-ID") {
		t.Fatalf("expected requestId to match header, got %v", body)
	}
}

func TestReservationLifecycleOverHTTP(t *testing.T) {
	router := newTestRouter(t, roomsOnly())

	rr := testutil.ServeJSON(router, nethttp.MethodPost, "/api/reservations",
		`{"roomId":1,"guestName":"Ada","checkIn":"2025-12-01","checkOut":"2025-12-04"}`)
	testutil.AssertStatus(t, rr, nethttp.StatusCreated)
	var created domain.Reservation
	testutil.DecodeJSON(t, rr, &created)
	if created.ID == "" || created.CreatedAt == "" || created.GuestName != "Ada" {
		t.Fatalf("unexpected created reservation %+v", created)
	}
	assertAvailability(t, router, 1, 4)

	rr = testutil.ServeJSON(router, nethttp.MethodPut, "/api/reservations/"+created.ID, `{"roomId":2}`)
	testutil.AssertStatus(t, rr, nethttp.StatusOK)
	var moved domain.Reservation
	testutil.DecodeJSON(t, rr, &moved)
	if moved.RoomID != 2 || moved.ID != created.ID || moved.CreatedAt != created.CreatedAt {
		t.Fatalf("unexpected moved reservation %+v", moved)
	}
	assertAvailability(t, router, 1, 5)
	assertAvailability(t, router, 2, 0)

	rr = testutil.ServeJSON(router, nethttp.MethodPost, "/api/reservations",
		`{"roomId":2,"guestName":"Bob","checkIn":"2025-12-01","checkOut":"2025-12-04"}`)
	testutil.AssertStatus(t, rr, nethttp.StatusBadRequest)
	assertErrorContains(t, rr.Body.String(), "not available")

	rr = testutil.ServeJSON(router, nethttp.MethodPut, "/api/reservations/"+created.ID, `{"checkOut":"2025-11-01"}`)
	testutil.AssertStatus(t, rr, nethttp.StatusBadRequest)
	assertErrorContains(t, rr.Body.String(), "after")

	rr = testutil.Serve(router, nethttp.MethodDelete, "/api/reservations/"+created.ID, nil)
	testutil.AssertStatus(t, rr, nethttp.StatusOK)
	assertAvailability(t, router, 2, 1)

	rr = testutil.Serve(router, nethttp.MethodGet, "/api/reservations", nil)
	testutil.AssertStatus(t, rr, nethttp.StatusOK)
	if strings.TrimSpace(rr.Body.String()) != "[]" {
		t.Fatalf("expected empty reservation array, got %s", rr.Body.String())
	}
}

func TestCreateValidationOverHTTP(t *testing.T) {
	router := newTestRouter(t, roomsOnly())

	cases := []struct {
		body   string
		status int
		substr string
	}{
		{`{"roomId":99,"guestName":"A","checkIn":"2025-12-01","checkOut":"2025-12-02"}`, nethttp.StatusNotFound, "room not found"},
		{`{"roomId":3,"guestName":"A","checkIn":"2025-12-01","checkOut":"2025-12-02"}`, nethttp.StatusBadRequest, "not available"},
		{`{"roomId":1,"guestName":"A","checkIn":"2025/12/01","checkOut":"2025-12-02"}`, nethttp.StatusBadRequest, "date format"},
		{`{"roomId":1,"guestName":"A","checkIn":"2025-12-02","checkOut":"2025-12-01"}`, nethttp.StatusBadRequest, "after"},
		{`{"roomId":1,"guestName":"  ","checkIn":"2025-12-01","checkOut":"2025-12-02"}`, nethttp.StatusBadRequest, "empty"},
		{`{"guestName":"A","checkIn":"2025-12-01","checkOut":"2025-12-02"}`, nethttp.StatusBadRequest, "roomid"},
	}

	for _, tc := range cases {
		rr := testutil.ServeJSON(router, nethttp.MethodPost, "/api/reservations", tc.body)
		if rr.Code != tc.status {
			t.Fatalf("%s: expected %d, got %d", tc.body, tc.status, rr.Code)
		}
		assertErrorContains(t, rr.Body.String(), tc.substr)
	}
}

func TestSearchOverHTTP(t *testing.T) {
	router := newTestRouter(t, roomsOnly())

	rr := testutil.Serve(router, nethttp.MethodGet, "/api/rooms/search?maxPrice=120", nil)
	testutil.AssertStatus(t, rr, nethttp.StatusOK)
	var result domain.SearchResult
	testutil.DecodeJSON(t, rr, &result)
	if result.TotalFound != 1 || len(result.Rooms) != 1 || result.Rooms[0].ID != 1 {
		t.Fatalf("unexpected search result %+v", result)
	}

	rr = testutil.Serve(router, nethttp.MethodGet, "/api/rooms/search?minAvailability=x", nil)
	testutil.AssertStatus(t, rr, nethttp.StatusBadRequest)
}

func assertAvailability(t *testing.T, router nethttp.Handler, roomID, want int) {
	t.Helper()
	rr := testutil.Serve(router, nethttp.MethodGet, "/api/rooms", nil)
	testutil.AssertStatus(t, rr, nethttp.StatusOK)
	var rooms []domain.Room
	testutil.DecodeJSON(t, rr, &rooms)
	for _, r := range rooms {
		if r.ID == roomID {
			if r.Availability != want {
				t.Fatalf("room %d availability %d, want %d", roomID, r.Availability, want)
			}
			return
		}
	}
	t.Fatalf("room %d not listed", roomID)
}

func assertErrorContains(t *testing.T, body, substr string) {
	t.Helper()
	var parsed map[string]string
	if err := json.Unmarshal([]byte(body), &parsed); err != nil {
		t.Fatalf("decode error body %q: %v", body, err)
	}
	if !strings.Contains(strings.ToLower(parsed["error"]), strings.ToLower(substr)) {
		t.Fatalf("expected error containing %q, got %q", substr, parsed["error"])
	}
}
