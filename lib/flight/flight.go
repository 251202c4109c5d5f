// Package flight holds the canonical flight offer record produced by every
// source adapter, along with the parsing and ordering helpers that keep its
// numeric fields total-ordered.
package flight

import (
	"bytes"
	"math"
	"strconv"
)

// Amount is a numeric field that may be unknown. Unknown amounts compare
// greater than every real value so ordering never has to special-case them.
type Amount float64

var Unknown = Amount(math.Inf(1))

func (a Amount) IsUnknown() bool {
	return math.IsInf(float64(a), 1)
}

var jsonNull = []byte("null")

// encoding/json refuses to emit Inf, so unknown amounts are written as null
// and null reads back as unknown.
func (a Amount) MarshalJSON() ([]byte, error) {
	if a.IsUnknown() {
		return jsonNull, nil
	}
	return []byte(strconv.FormatFloat(float64(a), 'f', -1, 64)), nil
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, jsonNull) {
		*a = Unknown
		return nil
	}
	v, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return err
	}
	*a = Amount(v)
	return nil
}

// Record is one normalized flight offer. Adapters construct it fully
// populated and it is never mutated afterwards.
type Record struct {
	Airline          string `json:"airline"`
	DepartureTime    string `json:"departure_time"`
	ArrivalTime      string `json:"arrival_time"`
	DurationDisplay  string `json:"duration_display"`
	DurationMinutes  Amount `json:"duration_minutes"`
	PriceDisplay     string `json:"price_display"`
	PriceNumeric     Amount `json:"price_numeric"`
	Stops            string `json:"stops"`
	DepartureAirport string `json:"departure_airport"`
	ArrivalAirport   string `json:"arrival_airport"`
	SourceLabel      string `json:"source_label"`
}

// Query carries the search parameters every adapter receives. Airports are
// uppercased and dates validated (YYYY-MM-DD) by the config loader before a
// query is built.
type Query struct {
	Source      string `json:"source"`
	Destination string `json:"destination"`
	TravelDate  string `json:"travel_date"`
	ReturnDate  string `json:"return_date,omitempty"`
	Passengers  int    `json:"passengers"`
	Class       string `json:"class"`
}

func (q Query) RoundTrip() bool {
	return q.ReturnDate != ""
}
