package http

import (
	"errors"
	"net/http"
	"time"

	"laundryops/internal/core/application/usecases/commands"
	"laundryops/internal/core/application/usecases/queries"
	"laundryops/internal/core/domain/model/kernel"
	"laundryops/internal/core/domain/model/manifest"
	"laundryops/internal/core/domain/model/order"
	"laundryops/internal/generated/servers"
	"laundryops/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// CustomValidator adapts go-playground/validator to echo's Validator
// interface so bound request bodies are checked against their validate tags.
type CustomValidator struct {
	validator *validator.Validate
}

// NewCustomValidator creates a request body validator for the echo instance.
func NewCustomValidator() *CustomValidator {
	return &CustomValidator{validator: validator.New()}
}

// Validate checks a bound request body against its validate tags.
func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validator.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler      commands.CreateOrderCommandHandler
	completeSectorHandler   commands.CompleteSectorCommandHandler
	cancelOrderHandler      commands.CancelOrderCommandHandler
	assignRecipeHandler     commands.AssignRecipeCommandHandler
	appendEventHandler      commands.AppendEventCommandHandler
	generateManifestHandler commands.GenerateManifestCommandHandler
	markStopHandler         commands.MarkStopCommandHandler
	completeManifestHandler commands.CompleteManifestCommandHandler

	// Query handlers
	getSectorBoardHandler   queries.GetSectorBoardQueryHandler
	getNetworkKPIsHandler   queries.GetNetworkKPIsQueryHandler
	getNetworkAlertsHandler queries.GetNetworkAlertsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	completeSectorHandler commands.CompleteSectorCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	assignRecipeHandler commands.AssignRecipeCommandHandler,
	appendEventHandler commands.AppendEventCommandHandler,
	generateManifestHandler commands.GenerateManifestCommandHandler,
	markStopHandler commands.MarkStopCommandHandler,
	completeManifestHandler commands.CompleteManifestCommandHandler,
	getSectorBoardHandler queries.GetSectorBoardQueryHandler,
	getNetworkKPIsHandler queries.GetNetworkKPIsQueryHandler,
	getNetworkAlertsHandler queries.GetNetworkAlertsQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:      createOrderHandler,
		completeSectorHandler:   completeSectorHandler,
		cancelOrderHandler:      cancelOrderHandler,
		assignRecipeHandler:     assignRecipeHandler,
		appendEventHandler:      appendEventHandler,
		generateManifestHandler: generateManifestHandler,
		markStopHandler:         markStopHandler,
		completeManifestHandler: completeManifestHandler,
		getSectorBoardHandler:   getSectorBoardHandler,
		getNetworkKPIsHandler:   getNetworkKPIsHandler,
		getNetworkAlertsHandler: getNetworkAlertsHandler,
	}
}

// respondError translates a domain error into the HTTP status it represents:
// 404 for missing entities, 409 for transition and concurrency conflicts,
// 400 for malformed input, 500 otherwise.
func respondError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrConflict),
		errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, manifest.ErrIncompleteStops):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	}

	return ctx.JSON(status, servers.Error{
		Code:    status,
		Message: err.Error(),
	})
}

func toKernelUUID(id openapi_types.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(id[:])
}

func toKernelUUIDPtr(id *openapi_types.UUID) (*kernel.UUID, error) {
	if id == nil {
		return nil, nil
	}
	converted, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return nil, err
	}
	return &converted, nil
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// CreateOrder handles POST /api/v1/orders - opens a new production order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body servers.CreateOrderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if err := ctx.Validate(&body); err != nil {
		return err
	}

	unitID, err := toKernelUUID(body.UnitId)
	if err != nil {
		return respondError(ctx, err)
	}
	clientID, err := toKernelUUIDPtr(body.ClientId)
	if err != nil {
		return respondError(ctx, err)
	}

	items := make([]commands.OrderItemInput, 0, len(body.Items))
	for _, item := range body.Items {
		pieceType, typeErr := order.PieceTypeFromString(item.PieceType)
		if typeErr != nil {
			return respondError(ctx, typeErr)
		}
		items = append(items, commands.OrderItemInput{
			PieceType:  pieceType,
			OtherLabel: derefString(item.OtherLabel),
			Quantity:   item.Quantity,
			Notes:      derefString(item.Notes),
		})
	}

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), unitID, clientID, body.ClientName, items, body.PromisedAt, derefString(body.Notes))
	if err != nil {
		return respondError(ctx, err)
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.Order{
		Id:          created.ID().Bytes(),
		UnitId:      created.UnitID().Bytes(),
		OrderNumber: created.OrderNumber(),
		ClientName:  created.ClientName(),
		Status:      created.Status().String(),
		PromisedAt:  created.PromisedAt(),
		CreatedAt:   created.CreatedAt(),
	})
}

// CompleteSector handles POST /api/v1/orders/{orderId}/sectors/{sector}/complete.
func (s *Server) CompleteSector(ctx echo.Context, orderId openapi_types.UUID, sectorName string) error {
	var body servers.CompleteSectorJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	orderID, err := toKernelUUID(orderId)
	if err != nil {
		return respondError(ctx, err)
	}
	sector, err := order.SectorFromString(sectorName)
	if err != nil {
		return respondError(ctx, err)
	}
	operatorID, err := toKernelUUIDPtr(body.OperatorId)
	if err != nil {
		return respondError(ctx, err)
	}

	payload, err := buildCompletionPayload(sector, body)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCompleteSectorCommand(orderID, sector, payload, operatorID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.completeSectorHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// buildCompletionPayload maps the flat request body onto the payload variant
// of the sector being completed.
func buildCompletionPayload(sector order.Sector, body servers.SectorCompletion) (order.CompletionPayload, error) {
	switch sector {
	case order.Sorting:
		return order.SortingCompletion{}, nil

	case order.Washing:
		cycles := 0
		if body.Cycles != nil {
			cycles = *body.Cycles
		}
		return order.WashingCompletion{Cycles: cycles, WeightKg: body.WeightKg}, nil

	case order.Drying:
		if body.TemperatureLevel == nil {
			return nil, errs.NewValueIsRequiredError("temperatureLevel")
		}
		temperature, err := order.TemperatureLevelFromString(*body.TemperatureLevel)
		if err != nil {
			return nil, err
		}
		return order.DryingCompletion{Temperature: temperature}, nil

	case order.Ironing:
		if body.Tally == nil {
			return nil, errs.NewValueIsRequiredError("tally")
		}
		tally := make(map[order.PieceType]int, len(*body.Tally))
		for name, count := range *body.Tally {
			pieceType, err := order.PieceTypeFromString(name)
			if err != nil {
				return nil, err
			}
			tally[pieceType] = count
		}
		return order.IroningCompletion{Tally: tally}, nil

	case order.Ready:
		quantity := 0
		if body.PackagingQuantity != nil {
			quantity = *body.PackagingQuantity
		}
		return order.ShippingCompletion{
			PackagingType:     derefString(body.PackagingType),
			PackagingQuantity: quantity,
		}, nil

	case order.Shipped:
		return order.DeliveryCompletion{ReceivedBy: derefString(body.ReceivedBy)}, nil

	default:
		return nil, errs.NewValueIsInvalidError("sector")
	}
}

// CancelOrder handles POST /api/v1/orders/{orderId}/cancel.
func (s *Server) CancelOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	var body servers.CancelOrderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if err := ctx.Validate(&body); err != nil {
		return err
	}

	orderID, err := toKernelUUID(orderId)
	if err != nil {
		return respondError(ctx, err)
	}
	operatorID, err := toKernelUUIDPtr(body.OperatorId)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, body.Reason, operatorID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignRecipe handles PUT /api/v1/orders/{orderId}/items/{itemId}/recipe.
func (s *Server) AssignRecipe(ctx echo.Context, orderId openapi_types.UUID, itemId openapi_types.UUID) error {
	var body servers.AssignRecipeJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if err := ctx.Validate(&body); err != nil {
		return err
	}

	orderID, err := toKernelUUID(orderId)
	if err != nil {
		return respondError(ctx, err)
	}
	itemID, err := toKernelUUID(itemId)
	if err != nil {
		return respondError(ctx, err)
	}
	recipeID, err := toKernelUUID(body.RecipeId)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewAssignRecipeCommand(orderID, itemID, recipeID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.assignRecipeHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AppendOrderEvent handles POST /api/v1/orders/{orderId}/events - records an
// alert observation on the order's ledger.
func (s *Server) AppendOrderEvent(ctx echo.Context, orderId openapi_types.UUID) error {
	var body servers.AppendOrderEventJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if err := ctx.Validate(&body); err != nil {
		return err
	}

	orderID, err := toKernelUUID(orderId)
	if err != nil {
		return respondError(ctx, err)
	}
	sector, err := order.SectorFromString(body.Sector)
	if err != nil {
		return respondError(ctx, err)
	}
	operatorID, err := toKernelUUIDPtr(body.OperatorId)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewAppendEventCommand(orderID, sector, order.EventAlert, operatorID, body.Notes)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.appendEventHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetSectorBoard handles GET /api/v1/units/{unitId}/board.
func (s *Server) GetSectorBoard(ctx echo.Context, unitId openapi_types.UUID) error {
	unitID, err := toKernelUUID(unitId)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetSectorBoardQuery(unitID, time.Now().UTC())
	if err != nil {
		return respondError(ctx, err)
	}

	board, err := s.getSectorBoardHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]servers.BoardColumn, 0, len(board.Columns))
	for _, column := range board.Columns {
		cards := make([]servers.BoardCard, 0, len(column.Cards))
		for _, card := range column.Cards {
			cards = append(cards, servers.BoardCard{
				Id:          card.ID.Bytes(),
				OrderNumber: card.OrderNumber,
				ClientName:  card.ClientName,
				PieceCount:  card.PieceCount,
				PromisedAt:  card.PromisedAt,
				Urgency:     card.Sla.Urgency.String(),
				SlaLabel:    card.Sla.Label,
			})
		}
		response = append(response, servers.BoardColumn{
			Sector: column.Sector.String(),
			Cards:  cards,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// GenerateManifest handles POST /api/v1/manifests - creates or tops up the
// manifest for a route and date.
func (s *Server) GenerateManifest(ctx echo.Context) error {
	var body servers.GenerateManifestJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if err := ctx.Validate(&body); err != nil {
		return err
	}

	unitID, err := toKernelUUID(body.UnitId)
	if err != nil {
		return respondError(ctx, err)
	}
	routeID, err := toKernelUUID(body.RouteId)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewGenerateManifestCommand(unitID, routeID, body.Date)
	if err != nil {
		return respondError(ctx, err)
	}

	generated, err := s.generateManifestHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, manifestResponse(generated))
}

func manifestResponse(m *manifest.Manifest) servers.Manifest {
	stops := make([]servers.ManifestStop, 0, len(m.Stops()))
	for _, stop := range m.Stops() {
		stops = append(stops, servers.ManifestStop{
			Id:        stop.ID().Bytes(),
			ClientId:  stop.ClientID().Bytes(),
			Position:  stop.Position(),
			Status:    stop.Status().String(),
			VisitedAt: stop.VisitedAt(),
		})
	}

	return servers.Manifest{
		Id:      m.ID().Bytes(),
		UnitId:  m.UnitID().Bytes(),
		RouteId: m.RouteID().Bytes(),
		Date:    m.Date(),
		Status:  m.Status().String(),
		Stops:   stops,
	}
}

// MarkStop handles POST /api/v1/manifests/{manifestId}/stops/{stopId}.
func (s *Server) MarkStop(ctx echo.Context, manifestId openapi_types.UUID, stopId openapi_types.UUID) error {
	var body servers.MarkStopJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if err := ctx.Validate(&body); err != nil {
		return err
	}

	manifestID, err := toKernelUUID(manifestId)
	if err != nil {
		return respondError(ctx, err)
	}
	stopID, err := toKernelUUID(stopId)
	if err != nil {
		return respondError(ctx, err)
	}
	status, err := manifest.StopStatusFromString(string(body.Status))
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewMarkStopCommand(manifestID, stopID, status)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.markStopHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteManifest handles POST /api/v1/manifests/{manifestId}/complete.
func (s *Server) CompleteManifest(ctx echo.Context, manifestId openapi_types.UUID) error {
	manifestID, err := toKernelUUID(manifestId)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCompleteManifestCommand(manifestID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.completeManifestHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetNetworkKpis handles GET /api/v1/network/kpis.
func (s *Server) GetNetworkKpis(ctx echo.Context, params servers.GetNetworkKpisParams) error {
	query, err := queries.NewGetNetworkKPIsQuery(params.From, params.To)
	if err != nil {
		return respondError(ctx, err)
	}

	kpis, err := s.getNetworkKPIsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]servers.UnitKpi, 0, len(kpis.Units))
	for _, unit := range kpis.Units {
		row := servers.UnitKpi{
			UnitId:          unit.UnitID.Bytes(),
			BreakageRatePct: unit.BreakageRatePct,
			PiecesPerHour:   unit.PiecesPerHour,
		}
		if unit.CostPerKg != nil {
			value := unit.CostPerKg.String()
			row.CostPerKg = &value
		}
		if unit.ChemicalCostPerOrder != nil {
			value := unit.ChemicalCostPerOrder.String()
			row.ChemicalCostPerOrder = &value
		}
		response = append(response, row)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetNetworkAlerts handles GET /api/v1/network/alerts.
func (s *Server) GetNetworkAlerts(ctx echo.Context) error {
	query, err := queries.NewGetNetworkAlertsQuery(time.Now().UTC())
	if err != nil {
		return respondError(ctx, err)
	}

	alerts, err := s.getNetworkAlertsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]servers.Alert, 0, len(alerts.Alerts))
	for _, alert := range alerts.Alerts {
		row := servers.Alert{
			Severity: alert.Severity.String(),
			Metric:   alert.Metric,
			Message:  alert.Message,
		}
		if alert.UnitID != nil {
			unitID := alert.UnitID.Bytes()
			row.UnitId = &unitID
		}
		response = append(response, row)
	}

	return ctx.JSON(http.StatusOK, response)
}
