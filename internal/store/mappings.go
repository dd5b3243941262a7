package store

import (
	"database/sql"

	"github.com/zeusync/gnr/internal/core/schema/enums"
	"github.com/zeusync/gnr/internal/core/schema/types"
)

var positionPointMapping = mapping[*types.PositionPointGt]{
	typeName: types.PositionPointTypeName,
	table:    "position_points",
	columns:  []string{"id", "latitude_micro_deg", "longitude_micro_deg"},
	id:       (*types.PositionPointGt).ID,
	values: func(p *types.PositionPointGt) []any {
		return []any{p.ID(), p.LatitudeMicroDeg(), p.LongitudeMicroDeg()}
	},
	scan: func(row rowScanner) (*types.PositionPointGt, int64, error) {
		var (
			p  types.PositionPointParams
			fp int64
		)
		if err := row.Scan(&p.ID, &p.LatitudeMicroDeg, &p.LongitudeMicroDeg, &fp); err != nil {
			return nil, 0, err
		}
		v, err := types.NewPositionPointGt(p)
		if err != nil {
			return nil, 0, &CorruptRowError{ID: p.ID, Err: err}
		}
		return v, fp, nil
	},
}

var gNodeMapping = mapping[*types.GNodeGt]{
	typeName: types.GNodeTypeName,
	table:    "g_nodes",
	columns: []string{
		"g_node_id", "alias", "base_class", "g_node_class", "status",
		"prev_alias", "position_point_id", "display_name",
	},
	id: (*types.GNodeGt).GNodeID,
	values: func(g *types.GNodeGt) []any {
		p := g.Params()
		return []any{
			p.GNodeID, p.Alias, string(p.BaseClass), p.GNodeClass, string(p.Status),
			nullable(p.PrevAlias), nullable(p.PositionPointID), nullable(p.DisplayName),
		}
	},
	scan: func(row rowScanner) (*types.GNodeGt, int64, error) {
		var (
			p                       types.GNodeParams
			baseClass, status       string
			prevAlias, point, shown sql.NullString
			fp                      int64
		)
		err := row.Scan(&p.GNodeID, &p.Alias, &baseClass, &p.GNodeClass, &status, &prevAlias, &point, &shown, &fp)
		if err != nil {
			return nil, 0, err
		}
		p.BaseClass = enums.BaseGNodeClass(baseClass)
		p.Status = enums.GNodeStatus(status)
		p.PrevAlias = ptr(prevAlias)
		p.PositionPointID = ptr(point)
		p.DisplayName = ptr(shown)

		v, err := types.NewGNodeGt(p)
		if err != nil {
			return nil, 0, &CorruptRowError{ID: p.GNodeID, Err: err}
		}
		return v, fp, nil
	},
	refs: func(g *types.GNodeGt) []reference {
		if id, ok := g.PositionPointID(); ok {
			return []reference{{table: "position_points", column: "id", id: id}}
		}
		return nil
	},
}

var edgeMapping = mapping[*types.ConnectivityEdgeGt]{
	typeName: types.ConnectivityEdgeTypeName,
	table:    "connectivity_edges",
	columns: []string{
		"id", "from_g_node_id", "to_g_node_id", "from_g_node_alias", "to_g_node_alias", "status",
	},
	id: (*types.ConnectivityEdgeGt).ID,
	values: func(e *types.ConnectivityEdgeGt) []any {
		return []any{e.ID(), e.FromGNodeID(), e.ToGNodeID(), e.FromGNodeAlias(), e.ToGNodeAlias(), string(e.Status())}
	},
	scan: func(row rowScanner) (*types.ConnectivityEdgeGt, int64, error) {
		var (
			p      types.ConnectivityEdgeParams
			status string
			fp     int64
		)
		err := row.Scan(&p.ID, &p.FromGNodeID, &p.ToGNodeID, &p.FromGNodeAlias, &p.ToGNodeAlias, &status, &fp)
		if err != nil {
			return nil, 0, err
		}
		p.Status = enums.GNodeStatus(status)

		v, err := types.NewConnectivityEdgeGt(p)
		if err != nil {
			return nil, 0, &CorruptRowError{ID: p.ID, Err: err}
		}
		return v, fp, nil
	},
	refs: func(e *types.ConnectivityEdgeGt) []reference {
		return []reference{
			{table: "g_nodes", column: "g_node_id", id: e.FromGNodeID()},
			{table: "g_nodes", column: "g_node_id", id: e.ToGNodeID()},
		}
	},
}

func nullable(p *string) any {
	if p == nil {
		return nil
	}
	return *p
}

func ptr(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}
