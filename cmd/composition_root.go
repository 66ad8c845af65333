package cmd

import (
	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	publisher  ports.EventPublisher
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, publisher ports.EventPublisher) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		publisher:  publisher,
	}
}

func (c *CompositionRoot) CreateCreatePickListCommandHandler() commands.CreatePickListCommandHandler {
	var f commands.CreatePickListUoWFactory = FuncCreatePickListUoWFactory(func() commands.CreatePickListUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreatePickListCommandHandler(f)
}

func (c *CompositionRoot) CreateStartPickListCommandHandler() commands.StartPickListCommandHandler {
	return commands.NewStartPickListCommandHandler(c.pickListUoWFactory())
}

func (c *CompositionRoot) CreateCompletePickListCommandHandler() commands.CompletePickListCommandHandler {
	var f commands.CompletePickListUoWFactory = FuncCompletePickListUoWFactory(func() commands.CompletePickListUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompletePickListCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateRecordPickCommandHandler() commands.RecordPickCommandHandler {
	return commands.NewRecordPickCommandHandler(c.pickingUoWFactory())
}

func (c *CompositionRoot) CreateMarkItemShortCommandHandler() commands.MarkItemShortCommandHandler {
	return commands.NewMarkItemShortCommandHandler(c.pickListUoWFactory())
}

func (c *CompositionRoot) CreateReplaceItemBatchesCommandHandler() commands.ReplaceItemBatchesCommandHandler {
	return commands.NewReplaceItemBatchesCommandHandler(c.pickingUoWFactory())
}

func (c *CompositionRoot) CreateConfirmCombinedPickCommandHandler() commands.ConfirmCombinedPickCommandHandler {
	return commands.NewConfirmCombinedPickCommandHandler(c.pickingUoWFactory())
}

func (c *CompositionRoot) CreateCheckInBatchesCommandHandler() commands.CheckInBatchesCommandHandler {
	var f commands.CheckInUoWFactory = FuncCheckInUoWFactory(func() commands.CheckInUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCheckInBatchesCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateLoadCommandHandler() commands.CreateLoadCommandHandler {
	return commands.NewCreateLoadCommandHandler(c.loadUoWFactory())
}

func (c *CompositionRoot) CreateDeleteLoadCommandHandler() commands.DeleteLoadCommandHandler {
	return commands.NewDeleteLoadCommandHandler(c.loadUoWFactory())
}

func (c *CompositionRoot) CreateAddOrderToLoadCommandHandler() commands.AddOrderToLoadCommandHandler {
	return commands.NewAddOrderToLoadCommandHandler(c.loadOrderUoWFactory())
}

func (c *CompositionRoot) CreateRemoveOrderFromLoadCommandHandler() commands.RemoveOrderFromLoadCommandHandler {
	return commands.NewRemoveOrderFromLoadCommandHandler(c.loadUoWFactory())
}

func (c *CompositionRoot) CreateResequenceLoadCommandHandler() commands.ResequenceLoadCommandHandler {
	return commands.NewResequenceLoadCommandHandler(c.loadUoWFactory())
}

func (c *CompositionRoot) CreateDispatchLoadCommandHandler() commands.DispatchLoadCommandHandler {
	return commands.NewDispatchLoadCommandHandler(c.loadOrderUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateRecallLoadCommandHandler() commands.RecallLoadCommandHandler {
	return commands.NewRecallLoadCommandHandler(c.loadOrderUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateCompleteDueRunsCommandHandler() commands.CompleteDueRunsCommandHandler {
	return commands.NewCompleteDueRunsCommandHandler(c.loadUoWFactory())
}

func (c *CompositionRoot) CreateGetPickListQueryHandler() queries.GetPickListQueryHandler {
	return queries.NewGetPickListQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCombinedPickingQueryHandler() queries.GetCombinedPickingQueryHandler {
	return queries.NewGetCombinedPickingQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetLoadQueryHandler() queries.GetLoadQueryHandler {
	return queries.NewGetLoadQueryHandler(c.gormDB)
}

func (c *CompositionRoot) pickListUoWFactory() commands.PickListUoWFactory {
	return FuncPickListUoWFactory(func() commands.PickListUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) pickingUoWFactory() commands.PickingUoWFactory {
	return FuncPickingUoWFactory(func() commands.PickingUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) loadUoWFactory() commands.LoadUoWFactory {
	return FuncLoadUoWFactory(func() commands.LoadUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) loadOrderUoWFactory() commands.LoadOrderUoWFactory {
	return FuncLoadOrderUoWFactory(func() commands.LoadOrderUoW {
		return c.uowFactory.Create()
	})
}

type FuncCreatePickListUoWFactory func() commands.CreatePickListUoW

func (f FuncCreatePickListUoWFactory) Create() commands.CreatePickListUoW {
	return f()
}

type FuncPickListUoWFactory func() commands.PickListUoW

func (f FuncPickListUoWFactory) Create() commands.PickListUoW {
	return f()
}

type FuncPickingUoWFactory func() commands.PickingUoW

func (f FuncPickingUoWFactory) Create() commands.PickingUoW {
	return f()
}

type FuncCompletePickListUoWFactory func() commands.CompletePickListUoW

func (f FuncCompletePickListUoWFactory) Create() commands.CompletePickListUoW {
	return f()
}

type FuncCheckInUoWFactory func() commands.CheckInUoW

func (f FuncCheckInUoWFactory) Create() commands.CheckInUoW {
	return f()
}

type FuncLoadUoWFactory func() commands.LoadUoW

func (f FuncLoadUoWFactory) Create() commands.LoadUoW {
	return f()
}

type FuncLoadOrderUoWFactory func() commands.LoadOrderUoW

func (f FuncLoadOrderUoWFactory) Create() commands.LoadOrderUoW {
	return f()
}
