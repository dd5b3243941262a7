package enums

import "time"

// MarketTypeName names a market by its slot duration and gate closing.
type MarketTypeName string

const (
	MarketTypeUnknown     MarketTypeName = "unknown"
	MarketTypeRt5Gate5    MarketTypeName = "rt5gate5"
	MarketTypeRt60Gate5   MarketTypeName = "rt60gate5"
	MarketTypeDa60        MarketTypeName = "da60"
	MarketTypeRt60Gate30  MarketTypeName = "rt60gate30"
	MarketTypeRt15Gate5   MarketTypeName = "rt15gate5"
	MarketTypeRt30Gate5   MarketTypeName = "rt30gate5"
	MarketTypeRt60Gate30B MarketTypeName = "rt60gate30b"
)

const (
	MarketTypeNameName    = "market.type.name"
	MarketTypeNameVersion = "000"
)

func MarketTypeNameValues() []MarketTypeName {
	return []MarketTypeName{
		MarketTypeUnknown,
		MarketTypeRt5Gate5,
		MarketTypeRt60Gate5,
		MarketTypeDa60,
		MarketTypeRt60Gate30,
		MarketTypeRt15Gate5,
		MarketTypeRt30Gate5,
		MarketTypeRt60Gate30B,
	}
}

func DefaultMarketTypeName() MarketTypeName { return MarketTypeUnknown }

func ParseMarketTypeName(raw string) (MarketTypeName, error) {
	return parse(MarketTypeNameName, raw, MarketTypeNameValues())
}

// SlotDuration is the length of one market slot, or zero for unknown.
func (m MarketTypeName) SlotDuration() time.Duration {
	switch m {
	case MarketTypeRt5Gate5:
		return 5 * time.Minute
	case MarketTypeRt15Gate5:
		return 15 * time.Minute
	case MarketTypeRt30Gate5:
		return 30 * time.Minute
	case MarketTypeRt60Gate5, MarketTypeDa60, MarketTypeRt60Gate30, MarketTypeRt60Gate30B:
		return time.Hour
	default:
		return 0
	}
}

func (m MarketTypeName) String() string { return string(m) }
