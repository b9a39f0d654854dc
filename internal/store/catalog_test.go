package store

import (
	"testing"

	"matrace_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupLayers(t *testing.T) {
	rows := []models.LayerRow{
		{LayerID: 1, LayerName: "Studená pěna", Size: "90x200", Price: 2500, AvailableHeights: []int{10, 15}, IconPath: "icons/foam.svg", Slug: "studena-pena"},
		{LayerID: 1, LayerName: "Studená pěna", Size: "160x200", Price: 4200, AvailableHeights: []int{10, 15}, IconPath: "icons/foam.svg", Slug: "studena-pena"},
		{LayerID: 2, LayerName: "Latex", Size: "90x200", Price: 3900, AvailableHeights: []int{5}, IconPath: "icons/latex.svg", Slug: "latex"},
	}

	layers := GroupLayers(rows)
	require.Len(t, layers, 2)

	foam := layers[0]
	assert.Equal(t, 1, foam.ID)
	assert.Equal(t, "Studená pěna", foam.Name)
	assert.Equal(t, map[string]float64{"90x200": 2500, "160x200": 4200}, foam.Prices)
	assert.Equal(t, []int{10, 15}, foam.AvailableHeights)
	assert.Equal(t, "icons/foam.svg", foam.Icon)
	assert.Equal(t, "studena-pena", foam.Slug)

	latex := layers[1]
	assert.Equal(t, 2, latex.ID)
	assert.Equal(t, map[string]float64{"90x200": 3900}, latex.Prices)
}

func TestGroupLayersPreservesRowOrder(t *testing.T) {
	rows := []models.LayerRow{
		{LayerID: 3, LayerName: "Kokos", Size: "90x200", Price: 1800},
		{LayerID: 1, LayerName: "Studená pěna", Size: "90x200", Price: 2500},
		{LayerID: 3, LayerName: "Kokos", Size: "160x200", Price: 3100},
	}

	layers := GroupLayers(rows)
	require.Len(t, layers, 2)
	assert.Equal(t, 3, layers[0].ID)
	assert.Equal(t, 1, layers[1].ID)
	assert.Len(t, layers[0].Prices, 2)
}

func TestGroupLayersEmpty(t *testing.T) {
	assert.Empty(t, GroupLayers(nil))
}
