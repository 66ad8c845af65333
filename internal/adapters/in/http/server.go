// Package http is the inbound HTTP adapter. Server implements the generated
// ServerInterface and translates between the wire types and the application
// commands and queries. Domain failures surface as {code, message} bodies
// with the stable codes from the errs package, so clients branch on code
// rather than parsing messages.
package http

import (
	"errors"
	"net/http"
	"strconv"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/generated/servers"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Handlers bundles the application handlers the HTTP server dispatches to.
type Handlers struct {
	CreatePickList      commands.CreatePickListCommandHandler
	StartPickList       commands.StartPickListCommandHandler
	CompletePickList    commands.CompletePickListCommandHandler
	RecordPick          commands.RecordPickCommandHandler
	MarkItemShort       commands.MarkItemShortCommandHandler
	ReplaceItemBatches  commands.ReplaceItemBatchesCommandHandler
	ConfirmCombinedPick commands.ConfirmCombinedPickCommandHandler
	CheckInBatches      commands.CheckInBatchesCommandHandler
	CreateLoad          commands.CreateLoadCommandHandler
	DeleteLoad          commands.DeleteLoadCommandHandler
	AddOrderToLoad      commands.AddOrderToLoadCommandHandler
	RemoveOrderFromLoad commands.RemoveOrderFromLoadCommandHandler
	ResequenceLoad      commands.ResequenceLoadCommandHandler
	DispatchLoad        commands.DispatchLoadCommandHandler
	RecallLoad          commands.RecallLoadCommandHandler

	GetPickList        queries.GetPickListQueryHandler
	GetCombinedPicking queries.GetCombinedPickingQueryHandler
	GetLoad            queries.GetLoadQueryHandler
}

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
	metrics  *metrics.Metrics
}

// NewServer creates a new HTTP server with the required command and query
// handlers.
func NewServer(handlers Handlers, m *metrics.Metrics) *Server {
	return &Server{
		handlers: handlers,
		metrics:  m,
	}
}

// CreatePickList handles POST /api/v1/pick-lists.
func (s *Server) CreatePickList(ctx echo.Context) error {
	var body servers.NewPickList
	if err := ctx.Bind(&body); err != nil {
		return writeBindError(ctx)
	}

	orderID, err := kernel.UUIDFromString(body.OrderId.String())
	if err != nil {
		return writeValidationError(ctx, "invalid order_id: "+err.Error())
	}

	lines := make([]commands.PickLine, 0, len(body.Lines))
	for _, l := range body.Lines {
		line, lineErr := toPickLine(l)
		if lineErr != nil {
			return writeValidationError(ctx, lineErr.Error())
		}
		lines = append(lines, line)
	}

	cmd, err := commands.NewCreatePickListCommand(orderID, body.Trolleys, lines)
	if err != nil {
		return writeValidationError(ctx, err.Error())
	}

	if err := s.handlers.CreatePickList.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// GetPickList handles GET /api/v1/pick-lists/{pickListId}.
func (s *Server) GetPickList(ctx echo.Context, pickListId openapi_types.UUID) error {
	id, err := kernel.UUIDFromString(pickListId.String())
	if err != nil {
		return writeValidationError(ctx, "invalid pick list id: "+err.Error())
	}

	query, err := queries.NewGetPickListQuery(id)
	if err != nil {
		return writeValidationError(ctx, err.Error())
	}

	resp, err := s.handlers.GetPickList.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toPickListResponse(resp))
}

// StartPickList handles PATCH /api/v1/pick-lists/{pickListId}/start.
func (s *Server) StartPickList(ctx echo.Context, pickListId openapi_types.UUID) error {
	var body servers.StartPickList
	if err := ctx.Bind(&body); err != nil {
		return writeBindError(ctx)
	}

	id, err := kernel.UUIDFromString(pickListId.String())
	if err != nil {
		return writeValidationError(ctx, "invalid pick list id: "+err.Error())
	}

	cmd, err := commands.NewStartPickListCommand(id, body.Assignee)
	if err != nil {
		return writeValidationError(ctx, err.Error())
	}

	if err := s.handlers.StartPickList.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompletePickList handles PATCH /api/v1/pick-lists/{pickListId}/complete.
func (s *Server) CompletePickList(ctx echo.Context, pickListId openapi_types.UUID) error {
	var body servers.CompletePickList
	if err := ctx.Bind(&body); err != nil {
		return writeBindError(ctx)
	}

	id, err := kernel.UUIDFromString(pickListId.String())
	if err != nil {
		return writeValidationError(ctx, "invalid pick list id: "+err.Error())
	}

	note := ""
	if body.Note != nil {
		note = *body.Note
	}

	cmd, err := commands.NewCompletePickListCommand(id, body.Trolleys, note)
	if err != nil {
		return writeValidationError(ctx, err.Error())
	}

	if err := s.handlers.CompletePickList.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	s.metrics.PickListsCompleted.Inc()
	return ctx.NoContent(http.StatusNoContent)
}

// RecordPick handles PATCH /api/v1/pick-items/{pickItemId}. A body with a
// batch records a pick, optionally settling the item short; a body with only
// short=true settles the item at its current picked quantity.
func (s *Server) RecordPick(ctx echo.Context, pickItemId openapi_types.UUID) error {
	var body servers.RecordPick
	if err := ctx.Bind(&body); err != nil {
		return writeBindError(ctx)
	}

	itemID, err := kernel.UUIDFromString(pickItemId.String())
	if err != nil {
		return writeValidationError(ctx, "invalid pick item id: "+err.Error())
	}

	short := body.Short != nil && *body.Short

	if body.BatchId == nil {
		if !short {
			return writeValidationError(ctx, "either batch_id or short is required")
		}

		cmd, cmdErr := commands.NewMarkItemShortCommand(itemID)
		if cmdErr != nil {
			return writeValidationError(ctx, cmdErr.Error())
		}
		if err := s.handlers.MarkItemShort.Handle(ctx.Request().Context(), cmd); err != nil {
			return writeError(ctx, err)
		}
		return ctx.NoContent(http.StatusNoContent)
	}

	batchID, err := kernel.UUIDFromString(body.BatchId.String())
	if err != nil {
		return writeValidationError(ctx, "invalid batch_id: "+err.Error())
	}

	pickedQty := 0
	if body.PickedQty != nil {
		pickedQty = *body.PickedQty
	}

	cmd, err := commands.NewRecordPickCommand(itemID, pickedQty, batchID, short)
	if err != nil {
		return writeValidationError(ctx, err.Error())
	}

	if err := s.handlers.RecordPick.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	s.metrics.PicksRecorded.Inc()
	return ctx.NoContent(http.StatusNoContent)
}

// ReplaceItemBatches handles PUT /api/v1/pick-items/{pickItemId}/batches.
func (s *Server) ReplaceItemBatches(ctx echo.Context, pickItemId openapi_types.UUID) error {
	var body servers.ReplaceBatches
	if err := ctx.Bind(&body); err != nil {
		return writeBindError(ctx)
	}

	itemID, err := kernel.UUIDFromString(pickItemId.String())
	if err != nil {
		return writeValidationError(ctx, "invalid pick item id: "+err.Error())
	}

	entries := make([]commands.BatchEntry, 0, len(body.Entries))
	for _, e := range body.Entries {
		batchID, entryErr := kernel.UUIDFromString(e.BatchId.String())
		if entryErr != nil {
			return writeValidationError(ctx, "invalid batch_id: "+entryErr.Error())
		}
		entries = append(entries, commands.BatchEntry{BatchID: batchID, Qty: e.Qty})
	}

	cmd, err := commands.NewReplaceItemBatchesCommand(itemID, entries)
	if err != nil {
		return writeValidationError(ctx, err.Error())
	}

	if err := s.handlers.ReplaceItemBatches.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetCombinedPicking handles GET /api/v1/combined-picking.
func (s *Server) GetCombinedPicking(ctx echo.Context, params servers.GetCombinedPickingParams) error {
	ids, err := toPickListIDs(params.Ids)
	if err != nil {
		return writeValidationError(ctx, "invalid ids: "+err.Error())
	}

	query, err := queries.NewGetCombinedPickingQuery(ids)
	if err != nil {
		return writeValidationError(ctx, err.Error())
	}

	groups, err := s.handlers.GetCombinedPicking.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]servers.CombinedPickingGroup, len(groups))
	for i, group := range groups {
		targets := make([]servers.CombinedTarget, len(group.Targets))
		for j, target := range group.Targets {
			targets[j] = servers.CombinedTarget{
				PickListId:   target.PickListID.Bytes(),
				Sequence:     target.Sequence,
				RemainingQty: target.RemainingQty,
			}
		}
		response[i] = servers.CombinedPickingGroup{
			Location:     group.Location,
			VarietyId:    group.VarietyID.Bytes(),
			Size:         group.Size,
			RemainingQty: group.RemainingQty,
			Targets:      targets,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// ConfirmCombinedPick handles POST /api/v1/combined-picking/confirm.
func (s *Server) ConfirmCombinedPick(ctx echo.Context) error {
	var body servers.ConfirmCombinedPick
	if err := ctx.Bind(&body); err != nil {
		return writeBindError(ctx)
	}

	location, err := kernel.NewLocationCode(body.Location)
	if err != nil {
		return writeValidationError(ctx, "invalid location: "+err.Error())
	}
	size, err := kernel.NewSizeCode(body.Size)
	if err != nil {
		return writeValidationError(ctx, "invalid size: "+err.Error())
	}
	varietyID, err := kernel.UUIDFromString(body.VarietyId.String())
	if err != nil {
		return writeValidationError(ctx, "invalid variety_id: "+err.Error())
	}

	pickListIDs, err := toPickListIDs(body.PickListIds)
	if err != nil {
		return writeValidationError(ctx, "invalid pick_list_ids: "+err.Error())
	}

	cmd, err := commands.NewConfirmCombinedPickCommand(location, varietyID, size, body.Qty, pickListIDs)
	if err != nil {
		return writeValidationError(ctx, err.Error())
	}

	if err := s.handlers.ConfirmCombinedPick.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	s.metrics.CombinedPicks.Inc()
	return ctx.NoContent(http.StatusNoContent)
}

// CheckInBatches handles POST /api/v1/batches/check-in.
func (s *Server) CheckInBatches(ctx echo.Context) error {
	var body servers.CheckInBatches
	if err := ctx.Bind(&body); err != nil {
		return writeBindError(ctx)
	}

	receipts := make([]commands.BatchReceipt, 0, len(body.Receipts))
	for _, r := range body.Receipts {
		receipt, receiptErr := toBatchReceipt(r)
		if receiptErr != nil {
			return writeValidationError(ctx, receiptErr.Error())
		}
		receipts = append(receipts, receipt)
	}

	cmd, err := commands.NewCheckInBatchesCommand(receipts)
	if err != nil {
		return writeValidationError(ctx, err.Error())
	}

	result, err := s.handlers.CheckInBatches.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		if errors.Is(err, commands.ErrAllReceiptsFailed) {
			return writeValidationError(ctx, err.Error())
		}
		return writeError(ctx, err)
	}

	s.metrics.BatchesCheckedIn.Add(float64(result.Succeeded()))

	response := servers.CheckInResult{
		Results: make([]servers.CheckInReceiptResult, len(result.CheckedIn)),
	}
	for i, checkedIn := range result.CheckedIn {
		if checkedIn != nil {
			id := checkedIn.ID().Bytes()
			number := checkedIn.BatchNumber()
			response.Results[i] = servers.CheckInReceiptResult{
				BatchId:     &id,
				BatchNumber: &number,
			}
			continue
		}
		message := result.Errors[i].Error()
		response.Results[i] = servers.CheckInReceiptResult{Error: &message}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateLoad handles POST /api/v1/loads.
func (s *Server) CreateLoad(ctx echo.Context) error {
	var body servers.NewLoad
	if err := ctx.Bind(&body); err != nil {
		return writeBindError(ctx)
	}

	cmd, err := commands.NewCreateLoadCommand(
		kernel.NewUUID(), body.ScheduledDate.Time, body.Carrier, body.VehicleCapacity)
	if err != nil {
		return writeValidationError(ctx, err.Error())
	}

	if err := s.handlers.CreateLoad.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// GetLoad handles GET /api/v1/loads/{loadId}.
func (s *Server) GetLoad(ctx echo.Context, loadId openapi_types.UUID) error {
	id, err := kernel.UUIDFromString(loadId.String())
	if err != nil {
		return writeValidationError(ctx, "invalid load id: "+err.Error())
	}

	query, err := queries.NewGetLoadQuery(id)
	if err != nil {
		return writeValidationError(ctx, err.Error())
	}

	resp, err := s.handlers.GetLoad.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toLoadResponse(resp))
}

// DeleteLoad handles DELETE /api/v1/loads/{loadId}.
func (s *Server) DeleteLoad(ctx echo.Context, loadId openapi_types.UUID) error {
	id, err := kernel.UUIDFromString(loadId.String())
	if err != nil {
		return writeValidationError(ctx, "invalid load id: "+err.Error())
	}

	cmd, err := commands.NewDeleteLoadCommand(id)
	if err != nil {
		return writeValidationError(ctx, err.Error())
	}

	if err := s.handlers.DeleteLoad.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AddOrderToLoad handles POST /api/v1/loads/{loadId}/orders.
func (s *Server) AddOrderToLoad(ctx echo.Context, loadId openapi_types.UUID) error {
	var body servers.AddOrder
	if err := ctx.Bind(&body); err != nil {
		return writeBindError(ctx)
	}

	id, err := kernel.UUIDFromString(loadId.String())
	if err != nil {
		return writeValidationError(ctx, "invalid load id: "+err.Error())
	}
	orderID, err := kernel.UUIDFromString(body.OrderId.String())
	if err != nil {
		return writeValidationError(ctx, "invalid order_id: "+err.Error())
	}

	cmd, err := commands.NewAddOrderToLoadCommand(id, orderID)
	if err != nil {
		return writeValidationError(ctx, err.Error())
	}

	if err := s.handlers.AddOrderToLoad.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RemoveOrderFromLoad handles DELETE /api/v1/loads/{loadId}/orders/{orderId}.
func (s *Server) RemoveOrderFromLoad(
	ctx echo.Context,
	loadId openapi_types.UUID,
	orderId openapi_types.UUID,
) error {
	id, err := kernel.UUIDFromString(loadId.String())
	if err != nil {
		return writeValidationError(ctx, "invalid load id: "+err.Error())
	}
	orderID, err := kernel.UUIDFromString(orderId.String())
	if err != nil {
		return writeValidationError(ctx, "invalid order id: "+err.Error())
	}

	cmd, err := commands.NewRemoveOrderFromLoadCommand(id, orderID)
	if err != nil {
		return writeValidationError(ctx, err.Error())
	}

	if err := s.handlers.RemoveOrderFromLoad.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ResequenceLoad handles PUT /api/v1/loads/{loadId}/sequence.
func (s *Server) ResequenceLoad(ctx echo.Context, loadId openapi_types.UUID) error {
	var body servers.Resequence
	if err := ctx.Bind(&body); err != nil {
		return writeBindError(ctx)
	}

	id, err := kernel.UUIDFromString(loadId.String())
	if err != nil {
		return writeValidationError(ctx, "invalid load id: "+err.Error())
	}

	orderIDs := make([]kernel.UUID, 0, len(body.OrderIds))
	for _, raw := range body.OrderIds {
		orderID, idErr := kernel.UUIDFromString(raw.String())
		if idErr != nil {
			return writeValidationError(ctx, "invalid order id: "+idErr.Error())
		}
		orderIDs = append(orderIDs, orderID)
	}

	cmd, err := commands.NewResequenceLoadCommand(id, orderIDs)
	if err != nil {
		return writeValidationError(ctx, err.Error())
	}

	if err := s.handlers.ResequenceLoad.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DispatchLoad handles POST /api/v1/loads/{loadId}/dispatch.
func (s *Server) DispatchLoad(ctx echo.Context, loadId openapi_types.UUID) error {
	var body servers.Dispatch
	if err := ctx.Bind(&body); err != nil {
		return writeBindError(ctx)
	}

	id, err := kernel.UUIDFromString(loadId.String())
	if err != nil {
		return writeValidationError(ctx, "invalid load id: "+err.Error())
	}

	force := body.Force != nil && *body.Force
	overrideReason := ""
	if body.OverrideReason != nil {
		overrideReason = *body.OverrideReason
	}

	cmd, err := commands.NewDispatchLoadCommand(id, force, overrideReason)
	if err != nil {
		return writeValidationError(ctx, err.Error())
	}

	if _, err := s.handlers.DispatchLoad.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	s.metrics.LoadsDispatched.WithLabelValues(strconv.FormatBool(force)).Inc()
	return ctx.NoContent(http.StatusNoContent)
}

// RecallLoad handles POST /api/v1/loads/{loadId}/recall.
func (s *Server) RecallLoad(ctx echo.Context, loadId openapi_types.UUID) error {
	id, err := kernel.UUIDFromString(loadId.String())
	if err != nil {
		return writeValidationError(ctx, "invalid load id: "+err.Error())
	}

	cmd, err := commands.NewRecallLoadCommand(id)
	if err != nil {
		return writeValidationError(ctx, err.Error())
	}

	if _, err := s.handlers.RecallLoad.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	s.metrics.LoadsRecalled.Inc()
	return ctx.NoContent(http.StatusNoContent)
}

func toPickLine(l servers.NewPickLine) (commands.PickLine, error) {
	varietyID, err := kernel.UUIDFromString(l.VarietyId.String())
	if err != nil {
		return commands.PickLine{}, errors.New("invalid variety_id: " + err.Error())
	}
	size, err := kernel.NewSizeCode(l.Size)
	if err != nil {
		return commands.PickLine{}, errors.New("invalid size: " + err.Error())
	}
	location, err := kernel.NewLocationCode(l.Location)
	if err != nil {
		return commands.PickLine{}, errors.New("invalid location: " + err.Error())
	}
	return commands.PickLine{
		VarietyID: varietyID,
		Size:      size,
		Location:  location,
		TargetQty: l.TargetQty,
	}, nil
}

// toPickListIDs converts an optional wire-level UUID list. A nil input stays
// nil, the all-open-lists default.
func toPickListIDs(raw *[]openapi_types.UUID) ([]kernel.UUID, error) {
	if raw == nil {
		return nil, nil
	}

	ids := make([]kernel.UUID, 0, len(*raw))
	for _, id := range *raw {
		parsed, err := kernel.UUIDFromString(id.String())
		if err != nil {
			return nil, err
		}
		ids = append(ids, parsed)
	}
	return ids, nil
}

func toBatchReceipt(r servers.BatchReceipt) (commands.BatchReceipt, error) {
	varietyID, err := kernel.UUIDFromString(r.VarietyId.String())
	if err != nil {
		return commands.BatchReceipt{}, errors.New("invalid variety_id: " + err.Error())
	}
	size, err := kernel.NewSizeCode(r.Size)
	if err != nil {
		return commands.BatchReceipt{}, errors.New("invalid size: " + err.Error())
	}
	location, err := kernel.NewLocationCode(r.Location)
	if err != nil {
		return commands.BatchReceipt{}, errors.New("invalid location: " + err.Error())
	}
	return commands.BatchReceipt{
		VarietyID:  varietyID,
		Size:       size,
		Location:   location,
		Qty:        r.Qty,
		ReceivedAt: r.ReceivedAt,
	}, nil
}

func toPickListResponse(resp queries.GetPickListQueryResponse) servers.PickList {
	items := make([]servers.PickItem, len(resp.Items))
	for i, item := range resp.Items {
		picks := make([]servers.BatchPick, len(item.Picks))
		for j, pick := range item.Picks {
			picks[j] = servers.BatchPick{
				BatchId:     pick.BatchID.Bytes(),
				BatchNumber: pick.BatchNumber,
				Qty:         pick.Qty,
			}
		}
		items[i] = servers.PickItem{
			Id:        item.ID.Bytes(),
			VarietyId: item.VarietyID.Bytes(),
			Size:      item.Size,
			Location:  item.Location,
			TargetQty: item.TargetQty,
			PickedQty: item.PickedQty,
			Status:    item.Status,
			Picks:     picks,
		}
	}

	return servers.PickList{
		Id:         resp.ID.Bytes(),
		OrderId:    resp.OrderID.Bytes(),
		Sequence:   resp.Sequence,
		Status:     resp.Status,
		AssignedTo: resp.AssignedTo,
		Trolleys:   resp.Trolleys,
		Note:       resp.Note,
		Items:      items,
	}
}

func toLoadResponse(resp queries.GetLoadQueryResponse) servers.Load {
	items := make([]servers.LoadItem, len(resp.Items))
	for i, item := range resp.Items {
		items[i] = servers.LoadItem{
			OrderId:     item.OrderID.Bytes(),
			Sequence:    item.Sequence,
			Trolleys:    item.Trolleys,
			OrderStatus: item.OrderStatus,
		}
	}

	load := servers.Load{
		Id:              resp.ID.Bytes(),
		ScheduledDate:   openapi_types.Date{Time: resp.ScheduledDate},
		Carrier:         resp.Carrier,
		VehicleCapacity: resp.VehicleCapacity,
		Status:          resp.Status,
		TotalTrolleys:   resp.TotalTrolleys,
		FillPercentage:  resp.FillPercentage,
		Items:           items,
	}
	if resp.OverrideReason != "" {
		load.OverrideReason = &resp.OverrideReason
	}
	return load
}

// writeError maps an application error onto the wire: not-found to 404,
// coded domain errors to 409, validation categories to 400, anything else
// to 500.
func writeError(ctx echo.Context, err error) error {
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ctx.JSON(http.StatusNotFound, servers.Error{
			Code:    "NotFound",
			Message: err.Error(),
		})
	}

	if code := errs.CodeOf(err); code != "" {
		return ctx.JSON(http.StatusConflict, servers.Error{
			Code:    code,
			Message: err.Error(),
		})
	}

	if errors.Is(err, errs.ErrVersionIsInvalid) {
		return ctx.JSON(http.StatusConflict, servers.Error{
			Code:    "Conflict",
			Message: err.Error(),
		})
	}

	if errors.Is(err, errs.ErrValueIsInvalid) ||
		errors.Is(err, errs.ErrValueIsRequired) ||
		errors.Is(err, errs.ErrValueIsOutOfRange) {
		return writeValidationError(ctx, err.Error())
	}

	return ctx.JSON(http.StatusInternalServerError, servers.Error{
		Code:    "Internal",
		Message: "internal error",
	})
}

func writeValidationError(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    "Validation",
		Message: message,
	})
}

func writeBindError(ctx echo.Context) error {
	return writeValidationError(ctx, "invalid request body")
}
