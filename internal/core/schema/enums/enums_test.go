package enums

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/gnr/internal/core/schema/format"
)

func TestParse(t *testing.T) {
	status, err := ParseGNodeStatus("Active")
	require.NoError(t, err)
	assert.Equal(t, GNodeStatusActive, status)

	_, err = ParseGNodeStatus("active")
	require.Error(t, err)
	assert.ErrorIs(t, err, format.ErrFormat)

	var fe *format.Error
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, GNodeStatusName, fe.Rule)
	assert.Contains(t, fe.Reason, "PermanentlyDeactivated")

	m, err := ParseMarketTypeName("rt60gate30b")
	require.NoError(t, err)
	assert.Equal(t, MarketTypeRt60Gate30B, m)

	_, err = ParseBaseGNodeClass("")
	assert.Error(t, err)
}

func TestDefaults(t *testing.T) {
	assert.Equal(t, BaseGNodeClassLogical, DefaultBaseGNodeClass())
	assert.Equal(t, GNodeClassUnknown, DefaultGNodeClass())
	assert.Equal(t, GNodeStatusPending, DefaultGNodeStatus())
	assert.Equal(t, MarketTypeUnknown, DefaultMarketTypeName())
}

func TestRoleBaseClass(t *testing.T) {
	for _, role := range GNodeClassValues() {
		base := role.BaseClass()
		if base.IsPhysical() {
			assert.Equal(t, string(role), string(base))
			continue
		}
		assert.Equal(t, BaseGNodeClassLogical, base)
	}
	assert.Equal(t, BaseGNodeClassLogical, GNodeClassScada.BaseClass())
	assert.Equal(t, BaseGNodeClassTerminalAsset, GNodeClassTerminalAsset.BaseClass())
}

func TestSlotDuration(t *testing.T) {
	assert.Equal(t, 5*time.Minute, MarketTypeRt5Gate5.SlotDuration())
	assert.Equal(t, time.Hour, MarketTypeDa60.SlotDuration())
	assert.Equal(t, 30*time.Minute, MarketTypeRt30Gate5.SlotDuration())
	assert.Zero(t, MarketTypeUnknown.SlotDuration())
}

func TestAll(t *testing.T) {
	vocabs := All()
	require.Len(t, vocabs, 4)
	for _, v := range vocabs {
		assert.Equal(t, "000", v.Version)
		assert.NotEmpty(t, v.Values)
	}
	assert.Equal(t, []string{"Pending", "Active", "Suspended", "PermanentlyDeactivated"}, vocabs[2].Values)
}
