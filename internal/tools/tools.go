// Package tools exposes the reservation service as named tool operations that
// take an argument object and answer with JSON text. Failures are embedded in
// the payload as {"error": "..."}; there are no status codes.
package tools

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/preston-bernstein/travel-reservations-service/internal/app/reservations"
	"github.com/preston-bernstein/travel-reservations-service/internal/domain"
	"github.com/preston-bernstein/travel-reservations-service/internal/logging"
	"github.com/preston-bernstein/travel-reservations-service/internal/metrics"
)

// Tool names.
const (
	ListRooms            = "list_rooms"
	GetRoom              = "get_room"
	ListReservations     = "list_reservations"
	GetReservation       = "get_reservation"
	CreateReservation    = "create_reservation"
	UpdateReservation    = "update_reservation"
	CancelReservation    = "cancel_reservation"
	SearchAvailableRooms = "search_available_rooms"
)

// unknownTool labels metrics for calls to unregistered names.
const unknownTool = "unknown"

// Argument names.
const (
	ArgRoomID          = "room_id"
	ArgReservationID   = "reservation_id"
	ArgGuestName       = "guest_name"
	ArgCheckIn         = "check_in"
	ArgCheckOut        = "check_out"
	ArgMinAvailability = "min_availability"
	ArgMaxPrice        = "max_price"
)

// ParamType is the JSON schema type of a tool parameter.
type ParamType string

const (
	TypeNumber ParamType = "number"
	TypeString ParamType = "string"
)

// Param describes one tool argument.
type Param struct {
	Name        string
	Type        ParamType
	Description string
	Required    bool
}

// Tool describes one operation. Params are listed in presentation order.
type Tool struct {
	Name        string
	Description string
	Params      []Param
	run         func(ctx context.Context, args Args) (any, error)
}

type mutationResult struct {
	Success     bool                `json:"success"`
	Reservation *domain.Reservation `json:"reservation,omitempty"`
	Message     string              `json:"message"`
}

type errorResult struct {
	Error string `json:"error"`
}

// Registry dispatches tool calls to the reservation service.
type Registry struct {
	svc     *reservations.Service
	logger  *slog.Logger
	metrics *metrics.Recorder
	tools   []Tool
	byName  map[string]int
}

// NewRegistry builds the registry of every reservation tool.
func NewRegistry(svc *reservations.Service, logger *slog.Logger, recorder *metrics.Recorder) *Registry {
	r := &Registry{svc: svc, logger: logger, metrics: recorder}
	r.tools = r.definitions()
	r.byName = make(map[string]int, len(r.tools))
	for i, t := range r.tools {
		r.byName[t.Name] = i
	}
	return r
}

// Tools returns the tool descriptions in registration order.
func (r *Registry) Tools() []Tool {
	out := make([]Tool, len(r.tools))
	copy(out, r.tools)
	return out
}

// Call runs the named tool and renders its result, or its failure, as indented JSON.
func (r *Registry) Call(ctx context.Context, name string, args map[string]any) string {
	start := time.Now()
	logger := logging.FromContext(ctx, r.logger)

	idx, ok := r.byName[name]
	if !ok {
		r.metrics.RecordToolCall(unknownTool, time.Since(start), true)
		logging.Warn(logger, "unknown tool", logging.FieldTool, name)
		return render(errorResult{Error: "Unknown tool: " + name}, logger)
	}

	result, err := r.tools[idx].run(ctx, Args(args))
	r.metrics.RecordToolCall(name, time.Since(start), err != nil)
	if err != nil {
		logging.Debug(logger, "tool call failed",
			logging.FieldTool, name,
			logging.FieldErrorKind, string(domain.KindOf(err)),
		)
		return render(errorResult{Error: domain.PublicMessage(err)}, logger)
	}
	return render(result, logger)
}

func render(v any, logger *slog.Logger) string {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		logging.Error(logger, "failed to encode tool result", err)
		return `{
  "error": "internal error"
}`
	}
	return string(out)
}

func (r *Registry) definitions() []Tool {
	return []Tool{
		{
			Name:        ListRooms,
			Description: "Get a list of all available hotel rooms with their details and availability",
			run: func(ctx context.Context, _ Args) (any, error) {
				return r.svc.ListRooms(ctx)
			},
		},
		{
			Name:        GetRoom,
			Description: "Get detailed information about a specific room by ID",
			Params: []Param{
				{Name: ArgRoomID, Type: TypeNumber, Description: "The ID of the room to retrieve", Required: true},
			},
			run: r.getRoom,
		},
		{
			Name:        ListReservations,
			Description: "Get a list of all current reservations",
			run: func(ctx context.Context, _ Args) (any, error) {
				return r.svc.ListReservations(ctx)
			},
		},
		{
			Name:        GetReservation,
			Description: "Get detailed information about a specific reservation by ID",
			Params: []Param{
				{Name: ArgReservationID, Type: TypeString, Description: "The ID of the reservation to retrieve", Required: true},
			},
			run: r.getReservation,
		},
		{
			Name:        CreateReservation,
			Description: "Create a new hotel reservation for a guest",
			Params: []Param{
				{Name: ArgRoomID, Type: TypeNumber, Description: "The ID of the room to reserve", Required: true},
				{Name: ArgGuestName, Type: TypeString, Description: "Full name of the guest", Required: true},
				{Name: ArgCheckIn, Type: TypeString, Description: "Check-in date in YYYY-MM-DD format", Required: true},
				{Name: ArgCheckOut, Type: TypeString, Description: "Check-out date in YYYY-MM-DD format", Required: true},
			},
			run: r.createReservation,
		},
		{
			Name:        UpdateReservation,
			Description: "Update an existing reservation; omitted fields keep their current values",
			Params: []Param{
				{Name: ArgReservationID, Type: TypeString, Description: "The ID of the reservation to update", Required: true},
				{Name: ArgRoomID, Type: TypeNumber, Description: "Move the reservation to this room (optional)"},
				{Name: ArgGuestName, Type: TypeString, Description: "New guest name (optional)"},
				{Name: ArgCheckIn, Type: TypeString, Description: "New check-in date in YYYY-MM-DD format (optional)"},
				{Name: ArgCheckOut, Type: TypeString, Description: "New check-out date in YYYY-MM-DD format (optional)"},
			},
			run: r.updateReservation,
		},
		{
			Name:        CancelReservation,
			Description: "Cancel an existing reservation and restore room availability",
			Params: []Param{
				{Name: ArgReservationID, Type: TypeString, Description: "The ID of the reservation to cancel", Required: true},
			},
			run: r.cancelReservation,
		},
		{
			Name:        SearchAvailableRooms,
			Description: "Search for available rooms based on criteria",
			Params: []Param{
				{Name: ArgMinAvailability, Type: TypeNumber, Description: "Minimum number of available rooms (optional)"},
				{Name: ArgMaxPrice, Type: TypeNumber, Description: "Maximum price per night (optional)"},
			},
			run: r.searchAvailableRooms,
		},
	}
}

// roomID maps a fractional id to RoomNotFound since no room can carry it.
func roomID(args Args) (*int, error) {
	id, err := args.integer(ArgRoomID)
	if errors.Is(err, errNonIntegral) {
		return nil, domain.ErrRoomNotFound
	}
	return id, err
}

func (r *Registry) getRoom(ctx context.Context, args Args) (any, error) {
	id, err := roomID(args)
	if err != nil {
		return nil, err
	}
	if id == nil {
		return nil, domain.MissingField(ArgRoomID)
	}
	return r.svc.GetRoom(ctx, *id)
}

func (r *Registry) getReservation(ctx context.Context, args Args) (any, error) {
	id, err := args.requiredStr(ArgReservationID)
	if err != nil {
		return nil, err
	}
	return r.svc.GetReservation(ctx, id)
}

func (r *Registry) createReservation(ctx context.Context, args Args) (any, error) {
	var req domain.CreateRequest
	var err error
	if req.RoomID, err = roomID(args); err != nil {
		return nil, err
	}
	if req.GuestName, err = args.str(ArgGuestName); err != nil {
		return nil, err
	}
	if req.CheckIn, err = args.str(ArgCheckIn); err != nil {
		return nil, err
	}
	if req.CheckOut, err = args.str(ArgCheckOut); err != nil {
		return nil, err
	}
	if derr := missingCreateArg(req); derr != nil {
		return nil, derr
	}

	res, err := r.svc.Create(ctx, req)
	if err != nil {
		return nil, err
	}
	return mutationResult{
		Success:     true,
		Reservation: &res,
		Message:     "Reservation created successfully for " + res.GuestName,
	}, nil
}

// missingCreateArg reports the first absent create argument by its tool name.
func missingCreateArg(req domain.CreateRequest) *domain.Error {
	switch {
	case req.RoomID == nil:
		return domain.MissingField(ArgRoomID)
	case req.GuestName == nil:
		return domain.MissingField(ArgGuestName)
	case req.CheckIn == nil:
		return domain.MissingField(ArgCheckIn)
	case req.CheckOut == nil:
		return domain.MissingField(ArgCheckOut)
	}
	return nil
}

func (r *Registry) updateReservation(ctx context.Context, args Args) (any, error) {
	id, err := args.requiredStr(ArgReservationID)
	if err != nil {
		return nil, err
	}
	var req domain.UpdateRequest
	if req.RoomID, err = roomID(args); err != nil {
		return nil, err
	}
	if req.GuestName, err = args.str(ArgGuestName); err != nil {
		return nil, err
	}
	if req.CheckIn, err = args.str(ArgCheckIn); err != nil {
		return nil, err
	}
	if req.CheckOut, err = args.str(ArgCheckOut); err != nil {
		return nil, err
	}

	res, err := r.svc.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}
	return mutationResult{
		Success:     true,
		Reservation: &res,
		Message:     "Reservation updated successfully",
	}, nil
}

func (r *Registry) cancelReservation(ctx context.Context, args Args) (any, error) {
	id, err := args.requiredStr(ArgReservationID)
	if err != nil {
		return nil, err
	}
	if err := r.svc.Cancel(ctx, id); err != nil {
		return nil, err
	}
	return mutationResult{Success: true, Message: "Reservation cancelled successfully"}, nil
}

func (r *Registry) searchAvailableRooms(ctx context.Context, args Args) (any, error) {
	criteria := domain.DefaultSearchCriteria()

	minAvail, err := args.number(ArgMinAvailability)
	if err != nil {
		return nil, err
	}
	if minAvail != nil {
		criteria.MinAvailability = *minAvail
	}
	maxPrice, err := args.number(ArgMaxPrice)
	if err != nil {
		return nil, err
	}
	if maxPrice != nil {
		criteria.MaxPrice = *maxPrice
	}
	return r.svc.SearchAvailableRooms(ctx, criteria)
}
