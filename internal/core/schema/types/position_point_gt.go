package types

import (
	"fmt"

	"github.com/zeusync/gnr/internal/core/schema"
	"github.com/zeusync/gnr/internal/core/schema/format"
)

const (
	PositionPointTypeName = "position.point.gt"
	PositionPointVersion  = "000"
)

const (
	microDegrees   = 1_000_000
	maxLatitudeMu  = 90 * microDegrees
	maxLongitudeMu = 180 * microDegrees
)

type PositionPointParams struct {
	ID                string
	LatitudeMicroDeg  int64
	LongitudeMicroDeg int64
}

// PositionPointGt is a location on Earth in integer micro-degrees.
type PositionPointGt struct {
	id    string
	latMu int64
	lonMu int64
}

var PositionPointGtType = schema.NewClass(
	schema.Descriptor{TypeName: PositionPointTypeName, Version: PositionPointVersion},
	[]schema.Field{
		{Name: "id"},
		{Name: "latitude_micro_deg"},
		{Name: "longitude_micro_deg"},
	},
	func(b *schema.Binder) *PositionPointGt {
		return &PositionPointGt{
			id:    b.String("id", format.UUID4Str),
			latMu: b.Int("latitude_micro_deg"),
			lonMu: b.Int("longitude_micro_deg"),
		}
	},
	schema.Axiom[*PositionPointGt]{
		Name: "EarthCoordinates",
		Check: func(p *PositionPointGt) error {
			if p.latMu < -maxLatitudeMu || p.latMu > maxLatitudeMu {
				return schema.Violation(
					fmt.Sprintf("latitude %g° out of range [-90, 90]", float64(p.latMu)/microDegrees),
					"LatitudeMicroDeg", p.latMu)
			}
			if p.lonMu < -maxLongitudeMu || p.lonMu > maxLongitudeMu {
				return schema.Violation(
					fmt.Sprintf("longitude %g° out of range [-180, 180]", float64(p.lonMu)/microDegrees),
					"LongitudeMicroDeg", p.lonMu)
			}
			return nil
		},
	},
)

func NewPositionPointGt(p PositionPointParams) (*PositionPointGt, error) {
	return construct(PositionPointGtType, p.fill)
}

func (p PositionPointParams) fill(w *schema.Writer) {
	w.Put("id", p.ID)
	w.Put("latitude_micro_deg", p.LatitudeMicroDeg)
	w.Put("longitude_micro_deg", p.LongitudeMicroDeg)
}

func (p *PositionPointGt) ID() string               { return p.id }
func (p *PositionPointGt) LatitudeMicroDeg() int64  { return p.latMu }
func (p *PositionPointGt) LongitudeMicroDeg() int64 { return p.lonMu }

// Lat is the latitude in decimal degrees.
func (p *PositionPointGt) Lat() float64 { return float64(p.latMu) / microDegrees }

// Lon is the longitude in decimal degrees.
func (p *PositionPointGt) Lon() float64 { return float64(p.lonMu) / microDegrees }

func (p *PositionPointGt) Params() PositionPointParams {
	return PositionPointParams{ID: p.id, LatitudeMicroDeg: p.latMu, LongitudeMicroDeg: p.lonMu}
}

func (p *PositionPointGt) Descriptor() schema.Descriptor {
	return PositionPointGtType.Descriptor()
}

func (p *PositionPointGt) Document() schema.Document {
	return PositionPointGtType.Document(p.Params().fill)
}

func (p *PositionPointGt) Encode() ([]byte, error) { return schema.Encode(p) }
