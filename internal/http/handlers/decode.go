package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/preston-bernstein/travel-reservations-service/internal/domain"
	"github.com/preston-bernstein/travel-reservations-service/internal/validation"
)

const maxBodyBytes = 1 << 20

// readFields decodes the request body as a JSON object keyed by field name.
// Anything else, including an empty body, is InvalidJSON.
func readFields(w http.ResponseWriter, r *http.Request) (map[string]json.RawMessage, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, domain.ErrInvalidJSON
		}
		return nil, domain.Internal(err)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(bytes.TrimSpace(body), &fields); err != nil || fields == nil {
		return nil, domain.ErrInvalidJSON
	}
	return fields, nil
}

// field decodes one optional member. Absent and null both yield nil.
func field[T any](fields map[string]json.RawMessage, name string) (*T, error) {
	raw, ok := fields[name]
	if !ok || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return nil, nil
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, domain.InvalidValue(name)
	}
	return &v, nil
}

func decodeReservationFields(fields map[string]json.RawMessage) (roomID *int, guest, checkIn, checkOut *string, err error) {
	if roomID, err = field[int](fields, validation.FieldRoomID); err != nil {
		return
	}
	if guest, err = field[string](fields, validation.FieldGuestName); err != nil {
		return
	}
	if checkIn, err = field[string](fields, validation.FieldCheckIn); err != nil {
		return
	}
	checkOut, err = field[string](fields, validation.FieldCheckOut)
	return
}

func decodeCreateRequest(w http.ResponseWriter, r *http.Request) (domain.CreateRequest, error) {
	fields, err := readFields(w, r)
	if err != nil {
		return domain.CreateRequest{}, err
	}
	roomID, guest, checkIn, checkOut, err := decodeReservationFields(fields)
	if err != nil {
		return domain.CreateRequest{}, err
	}
	return domain.CreateRequest{RoomID: roomID, GuestName: guest, CheckIn: checkIn, CheckOut: checkOut}, nil
}

// decodeUpdateRequest ignores members it does not recognize.
func decodeUpdateRequest(w http.ResponseWriter, r *http.Request) (domain.UpdateRequest, error) {
	fields, err := readFields(w, r)
	if err != nil {
		return domain.UpdateRequest{}, err
	}
	roomID, guest, checkIn, checkOut, err := decodeReservationFields(fields)
	if err != nil {
		return domain.UpdateRequest{}, err
	}
	return domain.UpdateRequest{RoomID: roomID, GuestName: guest, CheckIn: checkIn, CheckOut: checkOut}, nil
}
