package cmd

import (
	"laundryops/internal/adapters/out/postgres"
	"laundryops/internal/adapters/out/postgres/collab"
	"laundryops/internal/core/application/usecases/commands"
	"laundryops/internal/core/application/usecases/queries"
	"laundryops/internal/core/domain/services"
	"laundryops/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory

	unitProvider  *collab.GormUnitProvider
	routeProvider *collab.GormRouteProvider
	ledger        *collab.GormLedgerProvider
	nps           *collab.GormNPSProvider
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:        gormDB,
		uowFactory:    *postgres.NewGormUnitOfWorkFactory(gormDB),
		unitProvider:  collab.NewGormUnitProvider(gormDB),
		routeProvider: collab.NewGormRouteProvider(gormDB),
		ledger:        collab.NewGormLedgerProvider(gormDB),
		nps:           collab.NewGormNPSProvider(gormDB),
	}
}

func (c *CompositionRoot) RouteProvider() ports.RouteProvider {
	return c.routeProvider
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) manifestUoWFactory() commands.ManifestUoWFactory {
	return FuncManifestUoWFactory(func() commands.ManifestUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.unitProvider)
}

func (c *CompositionRoot) CreateCompleteSectorCommandHandler() commands.CompleteSectorCommandHandler {
	return commands.NewCompleteSectorCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAssignRecipeCommandHandler() commands.AssignRecipeCommandHandler {
	return commands.NewAssignRecipeCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAppendEventCommandHandler() commands.AppendEventCommandHandler {
	return commands.NewAppendEventCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateFlagOverdueOrdersCommandHandler() commands.FlagOverdueOrdersCommandHandler {
	return commands.NewFlagOverdueOrdersCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateGenerateManifestCommandHandler() commands.GenerateManifestCommandHandler {
	return commands.NewGenerateManifestCommandHandler(c.manifestUoWFactory(), c.routeProvider)
}

func (c *CompositionRoot) CreateMarkStopCommandHandler() commands.MarkStopCommandHandler {
	return commands.NewMarkStopCommandHandler(c.manifestUoWFactory())
}

func (c *CompositionRoot) CreateCompleteManifestCommandHandler() commands.CompleteManifestCommandHandler {
	return commands.NewCompleteManifestCommandHandler(c.manifestUoWFactory())
}

func (c *CompositionRoot) CreateGetSectorBoardQueryHandler() queries.GetSectorBoardQueryHandler {
	return queries.NewGetSectorBoardQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetNetworkKPIsQueryHandler() queries.GetNetworkKPIsQueryHandler {
	return queries.NewGetNetworkKPIsQueryHandler(c.gormDB, c.ledger, c.unitProvider)
}

func (c *CompositionRoot) CreateGetNetworkAlertsQueryHandler() queries.GetNetworkAlertsQueryHandler {
	return queries.NewGetNetworkAlertsQueryHandler(
		c.gormDB,
		c.CreateGetNetworkKPIsQueryHandler(),
		c.nps,
		services.DefaultAlertThresholds(),
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncManifestUoWFactory func() commands.ManifestUoW

func (f FuncManifestUoWFactory) Create() commands.ManifestUoW {
	return f()
}
