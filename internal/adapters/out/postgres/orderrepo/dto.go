// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Seq is a database-assigned sequence number that fixes each order's place in
// the listing; paging is ordered by it, never by the random UUID.
type OrderDTO struct {
	ID          uuid.UUID   `gorm:"type:uuid;primaryKey"`
	Seq         int64       `gorm:"autoIncrement;uniqueIndex"`
	Origin      GeoPointDTO `gorm:"embedded;embeddedPrefix:origin_"`
	Destination GeoPointDTO `gorm:"embedded;embeddedPrefix:destination_"`
	Distance    int
	Status      int `gorm:"index"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// GeoPointDTO represents embedded geographic coordinates within the order table.
type GeoPointDTO struct {
	Lat float64 `gorm:"type:double precision"`
	Lon float64 `gorm:"type:double precision"`
}

// fromDomain converts an order domain aggregate to its database representation.
// Seq is left zero so the database assigns the next sequence value on insert.
func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID: aggregate.ID().Bytes(),
		Origin: GeoPointDTO{
			Lat: aggregate.Origin().Lat(),
			Lon: aggregate.Origin().Lon(),
		},
		Destination: GeoPointDTO{
			Lat: aggregate.Destination().Lat(),
			Lon: aggregate.Destination().Lon(),
		},
		Distance: aggregate.Distance(),
		Status:   int(aggregate.Status()),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including status using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	origin, err := kernel.NewGeoPoint(dto.Origin.Lat, dto.Origin.Lon)
	if err != nil {
		return nil, err
	}

	destination, err := kernel.NewGeoPoint(dto.Destination.Lat, dto.Destination.Lon)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, origin, destination, dto.Distance, order.Status(dto.Status))
}
