// Package domain contém as estruturas de dados do domínio do motor de receita
package domain

import "time"

// RoomCategory é o dado de referência de uma categoria de quarto
type RoomCategory struct {
	ID             int       `json:"id"`
	Name           string    `json:"name"`
	Capacity       int       `json:"capacity"`
	BaseRate       float64   `json:"base_rate"`
	InventoryCount int       `json:"inventory_count"` // Unidades físicas, denominador da ocupação
	CreatedAt      time.Time `json:"created_at"`
}

// HasInventory indica se a categoria possui inventário para calcular ocupação
func (c *RoomCategory) HasInventory() bool {
	return c != nil && c.InventoryCount > 0
}
