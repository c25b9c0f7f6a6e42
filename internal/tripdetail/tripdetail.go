// Package tripdetail defines the trip-level payload attached to revenue
// distribution lines and consumed by the batch aggregation service. The
// shape is versioned and schema-checked on the producer side so the
// consumer never has to guess at an opaque blob.
package tripdetail

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// SchemaVersion is bumped on any incompatible change to Trip.
const SchemaVersion = 1

// ServiceItem is one itemized service charge on a trip.
type ServiceItem struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

// Trip carries the per-trip detail for one settlement line.
type Trip struct {
	SchemaVersion   int             `json:"schemaVersion"`
	TripNumber      string          `json:"tripNumber"`
	BillOfLading    string          `json:"billOfLading,omitempty"`
	DriverName      string          `json:"driverName,omitempty"`
	DriverFirstName string          `json:"driverFirstName,omitempty"`
	DriverLastName  string          `json:"driverLastName,omitempty"`
	ShipperName     string          `json:"shipperName,omitempty"`
	Origin          string          `json:"origin,omitempty"`
	Destination     string          `json:"destination,omitempty"`
	DeliveryDate    string          `json:"deliveryDate,omitempty"` // YYYY-MM-DD
	Weight          float64         `json:"weight,omitempty"`
	Miles           float64         `json:"miles,omitempty"`
	ServiceItems    []ServiceItem   `json:"serviceItems,omitempty"`
	NetBalance      decimal.Decimal `json:"netBalance"`
}

// Encode marshals the trip with its schema version stamped in.
func (t Trip) Encode() ([]byte, error) {
	t.SchemaVersion = SchemaVersion
	return json.Marshal(t)
}

// Decode parses a trip payload defensively: malformed input is an error,
// never a panic. A version ahead of ours is reported so the caller can log
// and skip rather than misread the fields.
func Decode(raw []byte) (*Trip, error) {
	var t Trip
	if err := json.Unmarshal(raw, &t); err != nil {
		return nil, fmt.Errorf("decode trip payload: %w", err)
	}
	if t.SchemaVersion > SchemaVersion {
		return nil, fmt.Errorf("trip payload schema version %d is newer than supported %d", t.SchemaVersion, SchemaVersion)
	}
	return &t, nil
}
