package enums

// BaseGNodeClass is the structural class of a GNode.
type BaseGNodeClass string

const (
	BaseGNodeClassTerminalAsset       BaseGNodeClass = "TerminalAsset"
	BaseGNodeClassLeafTransactiveNode BaseGNodeClass = "LeafTransactiveNode"
	BaseGNodeClassConnectivityNode    BaseGNodeClass = "ConnectivityNode"
	BaseGNodeClassMarketMaker         BaseGNodeClass = "MarketMaker"
	BaseGNodeClassLogical             BaseGNodeClass = "Logical"
)

const (
	BaseGNodeClassName    = "base.g.node.class"
	BaseGNodeClassVersion = "000"
)

// BaseGNodeClassValues returns every value in published order.
func BaseGNodeClassValues() []BaseGNodeClass {
	return []BaseGNodeClass{
		BaseGNodeClassTerminalAsset,
		BaseGNodeClassLeafTransactiveNode,
		BaseGNodeClassConnectivityNode,
		BaseGNodeClassMarketMaker,
		BaseGNodeClassLogical,
	}
}

func DefaultBaseGNodeClass() BaseGNodeClass { return BaseGNodeClassLogical }

func ParseBaseGNodeClass(raw string) (BaseGNodeClass, error) {
	return parse(BaseGNodeClassName, raw, BaseGNodeClassValues())
}

// IsPhysical reports whether the class describes a physical grid element.
func (c BaseGNodeClass) IsPhysical() bool {
	return c != BaseGNodeClassLogical
}

func (c BaseGNodeClass) String() string { return string(c) }

// GNodeClass is the functional role vocabulary of a GNode.
type GNodeClass string

const (
	GNodeClassUnknown                GNodeClass = "Unknown"
	GNodeClassTerminalAsset          GNodeClass = "TerminalAsset"
	GNodeClassConnectivityNode       GNodeClass = "ConnectivityNode"
	GNodeClassLeafTransactiveNode    GNodeClass = "LeafTransactiveNode"
	GNodeClassMarketMaker            GNodeClass = "MarketMaker"
	GNodeClassScada                  GNodeClass = "Scada"
	GNodeClassPriceForecastService   GNodeClass = "PriceForecastService"
	GNodeClassWeatherForecastService GNodeClass = "WeatherForecastService"
	GNodeClassTimeCoordinator        GNodeClass = "TimeCoordinator"
)

const (
	GNodeClassName    = "g.node.class"
	GNodeClassVersion = "000"
)

func GNodeClassValues() []GNodeClass {
	return []GNodeClass{
		GNodeClassUnknown,
		GNodeClassTerminalAsset,
		GNodeClassConnectivityNode,
		GNodeClassLeafTransactiveNode,
		GNodeClassMarketMaker,
		GNodeClassScada,
		GNodeClassPriceForecastService,
		GNodeClassWeatherForecastService,
		GNodeClassTimeCoordinator,
	}
}

func DefaultGNodeClass() GNodeClass { return GNodeClassUnknown }

func ParseGNodeClass(raw string) (GNodeClass, error) {
	return parse(GNodeClassName, raw, GNodeClassValues())
}

// BaseClass maps a role onto the structural class that carries it: roles
// named after a physical base class map to it, every other role is Logical.
func (c GNodeClass) BaseClass() BaseGNodeClass {
	switch c {
	case GNodeClassTerminalAsset:
		return BaseGNodeClassTerminalAsset
	case GNodeClassConnectivityNode:
		return BaseGNodeClassConnectivityNode
	case GNodeClassLeafTransactiveNode:
		return BaseGNodeClassLeafTransactiveNode
	case GNodeClassMarketMaker:
		return BaseGNodeClassMarketMaker
	default:
		return BaseGNodeClassLogical
	}
}

func (c GNodeClass) String() string { return string(c) }

// GNodeStatus is the lifecycle state of a GNode or edge.
type GNodeStatus string

const (
	GNodeStatusPending                GNodeStatus = "Pending"
	GNodeStatusActive                 GNodeStatus = "Active"
	GNodeStatusSuspended              GNodeStatus = "Suspended"
	GNodeStatusPermanentlyDeactivated GNodeStatus = "PermanentlyDeactivated"
)

const (
	GNodeStatusName    = "g.node.status"
	GNodeStatusVersion = "000"
)

func GNodeStatusValues() []GNodeStatus {
	return []GNodeStatus{
		GNodeStatusPending,
		GNodeStatusActive,
		GNodeStatusSuspended,
		GNodeStatusPermanentlyDeactivated,
	}
}

func DefaultGNodeStatus() GNodeStatus { return GNodeStatusPending }

func ParseGNodeStatus(raw string) (GNodeStatus, error) {
	return parse(GNodeStatusName, raw, GNodeStatusValues())
}

func (s GNodeStatus) String() string { return string(s) }
