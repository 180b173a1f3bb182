package tools

import (
	"math"

	"github.com/preston-bernstein/travel-reservations-service/internal/domain"
)

// Args is the decoded argument object of one tool call. JSON numbers arrive as float64.
type Args map[string]any

// errNonIntegral marks a number argument with a fractional part.
var errNonIntegral = domain.NewError(domain.KindInvalidJSON, "non-integral number")

func (a Args) number(name string) (*float64, error) {
	raw, ok := a[name]
	if !ok || raw == nil {
		return nil, nil
	}
	var v float64
	switch n := raw.(type) {
	case float64:
		v = n
	case float32:
		v = float64(n)
	case int:
		v = float64(n)
	case int64:
		v = float64(n)
	default:
		return nil, domain.InvalidValue(name)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, domain.InvalidValue(name)
	}
	return &v, nil
}

// integer returns errNonIntegral for numbers with a fractional part.
func (a Args) integer(name string) (*int, error) {
	f, err := a.number(name)
	if err != nil || f == nil {
		return nil, err
	}
	if *f != math.Trunc(*f) || *f > math.MaxInt32 || *f < math.MinInt32 {
		return nil, errNonIntegral
	}
	v := int(*f)
	return &v, nil
}

func (a Args) str(name string) (*string, error) {
	raw, ok := a[name]
	if !ok || raw == nil {
		return nil, nil
	}
	s, ok := raw.(string)
	if !ok {
		return nil, domain.InvalidValue(name)
	}
	return &s, nil
}

func (a Args) requiredStr(name string) (string, error) {
	s, err := a.str(name)
	if err != nil {
		return "", err
	}
	if s == nil {
		return "", domain.MissingField(name)
	}
	return *s, nil
}
