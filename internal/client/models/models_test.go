package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRef_Unmarshal(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Ref
	}{
		{name: "number", in: `{"user": 12}`, want: "12"},
		{name: "string", in: `{"user": "alice"}`, want: "alice"},
		{name: "null", in: `{"user": null}`, want: ""},
		{name: "absent", in: `{}`, want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v struct {
				User Ref `json:"user"`
			}
			require.NoError(t, json.Unmarshal([]byte(tt.in), &v))
			assert.Equal(t, tt.want, v.User)
		})
	}

	var bad struct {
		User Ref `json:"user"`
	}
	require.Error(t, json.Unmarshal([]byte(`{"user": [1]}`), &bad))
}

func TestRef_Marshal(t *testing.T) {
	b, err := json.Marshal(map[string]Ref{"a": "12", "b": "alice", "c": ""})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a": 12, "b": "alice", "c": null}`, string(b))
}

func TestAuditLog_Actor(t *testing.T) {
	assert.Equal(t, "System", AuditLog{}.Actor())
	assert.True(t, AuditLog{}.SystemAction())
	assert.True(t, AuditLog{User: "System"}.SystemAction())

	l := AuditLog{User: "3"}
	assert.Equal(t, "3", l.Actor())
	assert.False(t, l.SystemAction())
}

func TestInventoryItem_LowStock(t *testing.T) {
	tests := []struct {
		qty, reorder int
		want         bool
	}{
		{2, 5, true},
		{5, 5, true},
		{6, 5, false},
		{0, 0, true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, InventoryItem{Quantity: tt.qty, ReorderLevel: tt.reorder}.LowStock())
	}
}

func TestOrder_Actionable(t *testing.T) {
	assert.True(t, Order{Status: OrderPending}.Actionable())
	assert.False(t, Order{Status: OrderApproved}.Actionable())
	assert.False(t, Order{Status: OrderRejected}.Actionable())
}

func TestDraftEncodingOmitsServerFields(t *testing.T) {
	b, err := json.Marshal(InventoryItem{Name: "Welding Helmet", SKU: "HLT-3003", Quantity: 2, ReorderLevel: 5})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Welding Helmet","sku":"HLT-3003","quantity":2,"reorder_level":5}`, string(b))

	b, err = json.Marshal(Order{Supplier: "Acme", Item: "Gloves", Quantity: 1})
	require.NoError(t, err)
	assert.JSONEq(t, `{"supplier":"Acme","item":"Gloves","quantity":1}`, string(b))
}
