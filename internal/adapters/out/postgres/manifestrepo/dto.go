// Package manifestrepo provides data transfer objects and mapping functions
// for manifest persistence. The composite unique index on (route_id, date)
// makes manifest generation idempotent at the storage level.
package manifestrepo

import (
	"time"

	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/core/domain/model/manifest"

	"github.com/google/uuid"
)

// ManifestDTO represents the database structure for persisting manifests.
type ManifestDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	UnitID  uuid.UUID `gorm:"type:uuid;index"`
	RouteID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_manifests_route_date"`
	Date    time.Time `gorm:"uniqueIndex:idx_manifests_route_date"`
	Status  int       `gorm:"index"`

	Stops []ManifestStopDTO `gorm:"foreignKey:ManifestID"`
}

// TableName specifies the database table name for manifests.
func (ManifestDTO) TableName() string {
	return "manifests"
}

// ManifestStopDTO represents one stop row. The unique index on
// (manifest_id, position) lets regeneration insert new template stops with
// ON CONFLICT DO NOTHING instead of read-then-write.
type ManifestStopDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	ManifestID uuid.UUID `gorm:"type:uuid;index;uniqueIndex:idx_stops_manifest_position"`
	ClientID   uuid.UUID `gorm:"type:uuid"`
	Position   int       `gorm:"uniqueIndex:idx_stops_manifest_position"`
	Status     int
	VisitedAt  *time.Time
}

// TableName specifies the database table name for manifest stops.
func (ManifestStopDTO) TableName() string {
	return "manifest_stops"
}

// fromDomain converts a manifest aggregate to its database representation.
func fromDomain(aggregate *manifest.Manifest) ManifestDTO {
	dto := ManifestDTO{
		ID:      aggregate.ID().Bytes(),
		UnitID:  aggregate.UnitID().Bytes(),
		RouteID: aggregate.RouteID().Bytes(),
		Date:    aggregate.Date(),
		Status:  int(aggregate.Status()),
	}

	for _, stop := range aggregate.Stops() {
		dto.Stops = append(dto.Stops, stopFromDomain(aggregate.ID(), stop))
	}

	return dto
}

func stopFromDomain(manifestID kernel.UUID, stop *manifest.Stop) ManifestStopDTO {
	return ManifestStopDTO{
		ID:         stop.ID().Bytes(),
		ManifestID: manifestID.Bytes(),
		ClientID:   stop.ClientID().Bytes(),
		Position:   stop.Position(),
		Status:     int(stop.Status()),
		VisitedAt:  stop.VisitedAt(),
	}
}

// toDomain converts a database DTO to a manifest aggregate using
// RestoreManifest. Stops must be preloaded ordered by position.
func toDomain(dto ManifestDTO) (*manifest.Manifest, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	unitID, err := kernel.UUIDFromBytes(dto.UnitID[:])
	if err != nil {
		return nil, err
	}
	routeID, err := kernel.UUIDFromBytes(dto.RouteID[:])
	if err != nil {
		return nil, err
	}

	stops := make([]*manifest.Stop, 0, len(dto.Stops))
	for _, stopDTO := range dto.Stops {
		stop, stopErr := stopToDomain(stopDTO)
		if stopErr != nil {
			return nil, stopErr
		}
		stops = append(stops, stop)
	}

	return manifest.RestoreManifest(
		id,
		unitID,
		routeID,
		dto.Date,
		manifest.Status(dto.Status),
		stops,
	)
}

func stopToDomain(dto ManifestStopDTO) (*manifest.Stop, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	clientID, err := kernel.UUIDFromBytes(dto.ClientID[:])
	if err != nil {
		return nil, err
	}

	return manifest.RestoreStop(
		id,
		clientID,
		dto.Position,
		manifest.StopStatus(dto.Status),
		dto.VisitedAt,
	)
}
