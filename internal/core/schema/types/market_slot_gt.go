package types

import (
	"fmt"
	"time"

	"github.com/zeusync/gnr/internal/core/schema"
	"github.com/zeusync/gnr/internal/core/schema/enums"
	"github.com/zeusync/gnr/internal/core/schema/format"
)

const (
	MarketSlotTypeName = "market.slot.gt"
	MarketSlotVersion  = "000"
)

type MarketSlotParams struct {
	MarketType       enums.MarketTypeName
	MarketMakerAlias string
	SlotStartS       int64
}

// MarketSlotGt is one trading interval of one market run by a MarketMaker.
type MarketSlotGt struct {
	marketType       enums.MarketTypeName
	marketMakerAlias string
	slotStartS       int64
}

var MarketSlotGtType = schema.NewClass(
	schema.Descriptor{TypeName: MarketSlotTypeName, Version: MarketSlotVersion},
	[]schema.Field{
		{Name: "market_type"},
		{Name: "market_maker_alias"},
		{Name: "slot_start_s"},
	},
	func(b *schema.Binder) *MarketSlotGt {
		return &MarketSlotGt{
			marketType:       schema.Enum(b, "market_type", enums.ParseMarketTypeName),
			marketMakerAlias: b.String("market_maker_alias", format.LeftRightDot),
			slotStartS:       b.Int("slot_start_s", format.UTCSeconds),
		}
	},
	schema.Axiom[*MarketSlotGt]{
		Name: "SlotStartAlignment",
		Check: func(m *MarketSlotGt) error {
			period := int64(m.marketType.SlotDuration() / time.Second)
			if period > 0 && m.slotStartS%period != 0 {
				return schema.Violation(
					fmt.Sprintf("slot start must fall on a %ds boundary for %s", period, m.marketType),
					"MarketType", m.marketType, "SlotStartS", m.slotStartS)
			}
			return nil
		},
	},
)

func NewMarketSlotGt(p MarketSlotParams) (*MarketSlotGt, error) {
	return construct(MarketSlotGtType, p.fill)
}

func (p MarketSlotParams) fill(w *schema.Writer) {
	w.Put("market_type", string(p.MarketType))
	w.Put("market_maker_alias", p.MarketMakerAlias)
	w.Put("slot_start_s", p.SlotStartS)
}

func (m *MarketSlotGt) MarketType() enums.MarketTypeName { return m.marketType }
func (m *MarketSlotGt) MarketMakerAlias() string         { return m.marketMakerAlias }
func (m *MarketSlotGt) SlotStartS() int64                { return m.slotStartS }

// Start is the beginning of the slot in UTC.
func (m *MarketSlotGt) Start() time.Time { return time.Unix(m.slotStartS, 0).UTC() }

// SlotName is the dotted name peers use to refer to the slot.
func (m *MarketSlotGt) SlotName() string {
	return fmt.Sprintf("%s.%s.%d", m.marketType, m.marketMakerAlias, m.slotStartS)
}

func (m *MarketSlotGt) Params() MarketSlotParams {
	return MarketSlotParams{MarketType: m.marketType, MarketMakerAlias: m.marketMakerAlias, SlotStartS: m.slotStartS}
}

func (m *MarketSlotGt) Descriptor() schema.Descriptor { return MarketSlotGtType.Descriptor() }

func (m *MarketSlotGt) Document() schema.Document {
	return MarketSlotGtType.Document(m.Params().fill)
}

func (m *MarketSlotGt) Encode() ([]byte, error) { return schema.Encode(m) }
