package queries

import (
	"context"
	"time"

	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/core/domain/model/order"
	"laundryops/internal/core/domain/services"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetSectorBoardQueryHandler builds the production board from the orders
// projection. Orders in terminal sectors never appear on the board.
type GetSectorBoardQueryHandler struct {
	db           *gorm.DB
	slaEvaluator services.SlaEvaluator
}

// NewGetSectorBoardQueryHandler creates a handler for board queries.
// Requires a GORM database connection for query execution.
func NewGetSectorBoardQueryHandler(db *gorm.DB) GetSectorBoardQueryHandler {
	return GetSectorBoardQueryHandler{
		db:           db,
		slaEvaluator: services.NewSlaEvaluator(),
	}
}

// Handle executes the board query.
// Returns one column per active pipeline sector with the unit's orders,
// oldest promise first, each carrying its SLA classification.
func (h GetSectorBoardQueryHandler) Handle(
	ctx context.Context,
	query GetSectorBoardQuery,
) (GetSectorBoardQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetSectorBoardQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.order_number,
			o.client_name,
			o.status,
			o.promised_at,
			COALESCE(SUM(i.quantity), 0) AS piece_count
		FROM orders o
		LEFT JOIN order_items i ON i.order_id = o.id
		WHERE o.unit_id = ?
		  AND o.status NOT IN (?, ?)
		GROUP BY o.id, o.order_number, o.client_name, o.status, o.promised_at
		ORDER BY o.promised_at, o.order_number
	`, query.UnitID().Bytes(), order.Delivered, order.Cancelled).Rows()
	if err != nil {
		return GetSectorBoardQueryResponse{}, err
	}
	defer rows.Close()

	cardsBySector := make(map[order.Sector][]SectorBoardCard)
	for rows.Next() {
		var id uuid.UUID
		var orderNumber, clientName string
		var status int
		var promisedAt time.Time
		var pieceCount int

		if err = rows.Scan(&id, &orderNumber, &clientName, &status, &promisedAt, &pieceCount); err != nil {
			return GetSectorBoardQueryResponse{}, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return GetSectorBoardQueryResponse{}, idErr
		}

		sector := order.Sector(status)
		cardsBySector[sector] = append(cardsBySector[sector], SectorBoardCard{
			ID:          orderID,
			OrderNumber: orderNumber,
			ClientName:  clientName,
			Sector:      sector,
			PieceCount:  pieceCount,
			PromisedAt:  promisedAt,
			Sla:         h.slaEvaluator.Classify(promisedAt, query.Now()),
		})
	}
	if err = rows.Err(); err != nil {
		return GetSectorBoardQueryResponse{}, err
	}

	columns := make([]SectorBoardColumn, 0, int(order.Shipped-order.Received)+1)
	for sector := order.Received; sector <= order.Shipped; sector++ {
		cards := cardsBySector[sector]
		if cards == nil {
			cards = make([]SectorBoardCard, 0)
		}
		columns = append(columns, SectorBoardColumn{Sector: sector, Cards: cards})
	}

	return GetSectorBoardQueryResponse{Columns: columns}, nil
}
