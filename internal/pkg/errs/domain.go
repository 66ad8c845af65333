package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Stable machine-readable codes carried by fulfillment domain errors.
// API clients branch on the code, never on the message text.
const (
	CodeInsufficientStock  = "InsufficientStock"
	CodeOverAllocation     = "OverAllocation"
	CodeNotReady           = "NotReady"
	CodeNotDispatched      = "NotDispatched"
	CodeLoadActive         = "LoadActive"
	CodeLoadNotEmpty       = "LoadNotEmpty"
	CodeOrderAlreadyLoaded = "OrderAlreadyLoaded"
)

// Sentinel errors for the fulfillment domain error categories.
var (
	ErrInsufficientStock  = errors.New("insufficient stock")
	ErrOverAllocation     = errors.New("over allocation")
	ErrNotReady           = errors.New("load is not ready for dispatch")
	ErrNotDispatched      = errors.New("load is not dispatched")
	ErrLoadActive         = errors.New("load is active")
	ErrLoadNotEmpty       = errors.New("load is not empty")
	ErrOrderAlreadyLoaded = errors.New("order is already loaded")
)

// CodedError is implemented by domain errors that carry a stable code for the
// request/response boundary.
type CodedError interface {
	error
	Code() string
}

// CodeOf extracts the stable code from err, walking the wrap chain.
// Returns an empty string when err carries no code.
func CodeOf(err error) string {
	var coded CodedError
	if errors.As(err, &coded) {
		return coded.Code()
	}
	return ""
}

// InsufficientStockError is returned when a batch reservation would take its
// available quantity below zero. The reservation is rejected before any
// mutation, so the error is fully recoverable.
type InsufficientStockError struct {
	BatchID   string
	Requested int
	Available int
}

// NewInsufficientStockError creates an InsufficientStockError for one batch.
func NewInsufficientStockError(batchID string, requested, available int) *InsufficientStockError {
	return &InsufficientStockError{BatchID: batchID, Requested: requested, Available: available}
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock: batch %s has %d available, %d requested",
		e.BatchID, e.Available, e.Requested)
}

func (e *InsufficientStockError) Unwrap() error { return ErrInsufficientStock }

// Code returns CodeInsufficientStock.
func (e *InsufficientStockError) Code() string { return CodeInsufficientStock }

// OverAllocationError is returned when a confirmed quantity exceeds what the
// receiving items can absorb. Validated before any ledger mutation.
type OverAllocationError struct {
	Requested int
	Remaining int
}

// NewOverAllocationError creates an OverAllocationError.
func NewOverAllocationError(requested, remaining int) *OverAllocationError {
	return &OverAllocationError{Requested: requested, Remaining: remaining}
}

func (e *OverAllocationError) Error() string {
	return fmt.Sprintf("over allocation: %d requested, only %d remaining", e.Requested, e.Remaining)
}

func (e *OverAllocationError) Unwrap() error { return ErrOverAllocation }

// Code returns CodeOverAllocation.
func (e *OverAllocationError) Code() string { return CodeOverAllocation }

// NotReadyError is returned when a load is dispatched while at least one of
// its orders is not in a ready state. Carries the offending order IDs so the
// caller can decide whether to force the dispatch.
type NotReadyError struct {
	OrderIDs []string
}

// NewNotReadyError creates a NotReadyError listing the non-ready orders.
func NewNotReadyError(orderIDs []string) *NotReadyError {
	return &NotReadyError{OrderIDs: orderIDs}
}

func (e *NotReadyError) Error() string {
	return fmt.Sprintf("load is not ready for dispatch: orders not ready: %s",
		strings.Join(e.OrderIDs, ", "))
}

func (e *NotReadyError) Unwrap() error { return ErrNotReady }

// Code returns CodeNotReady.
func (e *NotReadyError) Code() string { return CodeNotReady }

// NotDispatchedError is returned when a recall targets a load that is not
// currently in transit.
type NotDispatchedError struct {
	LoadID string
}

// NewNotDispatchedError creates a NotDispatchedError.
func NewNotDispatchedError(loadID string) *NotDispatchedError {
	return &NotDispatchedError{LoadID: loadID}
}

func (e *NotDispatchedError) Error() string {
	return fmt.Sprintf("load is not dispatched: %s", e.LoadID)
}

func (e *NotDispatchedError) Unwrap() error { return ErrNotDispatched }

// Code returns CodeNotDispatched.
func (e *NotDispatchedError) Code() string { return CodeNotDispatched }

// LoadActiveError is returned when a destructive operation targets a load
// that has already been dispatched or completed.
type LoadActiveError struct {
	LoadID string
}

// NewLoadActiveError creates a LoadActiveError.
func NewLoadActiveError(loadID string) *LoadActiveError {
	return &LoadActiveError{LoadID: loadID}
}

func (e *LoadActiveError) Error() string {
	return fmt.Sprintf("load is active: %s", e.LoadID)
}

func (e *LoadActiveError) Unwrap() error { return ErrLoadActive }

// Code returns CodeLoadActive.
func (e *LoadActiveError) Code() string { return CodeLoadActive }

// LoadNotEmptyError is returned when a load with remaining items is deleted.
type LoadNotEmptyError struct {
	LoadID    string
	ItemCount int
}

// NewLoadNotEmptyError creates a LoadNotEmptyError.
func NewLoadNotEmptyError(loadID string, itemCount int) *LoadNotEmptyError {
	return &LoadNotEmptyError{LoadID: loadID, ItemCount: itemCount}
}

func (e *LoadNotEmptyError) Error() string {
	return fmt.Sprintf("load is not empty: %s still carries %d orders", e.LoadID, e.ItemCount)
}

func (e *LoadNotEmptyError) Unwrap() error { return ErrLoadNotEmpty }

// Code returns CodeLoadNotEmpty.
func (e *LoadNotEmptyError) Code() string { return CodeLoadNotEmpty }

// OrderAlreadyLoadedError is returned when an order is added to a load while
// it is already carried by an active load.
type OrderAlreadyLoadedError struct {
	OrderID string
	LoadID  string
}

// NewOrderAlreadyLoadedError creates an OrderAlreadyLoadedError naming the
// load that already carries the order.
func NewOrderAlreadyLoadedError(orderID, loadID string) *OrderAlreadyLoadedError {
	return &OrderAlreadyLoadedError{OrderID: orderID, LoadID: loadID}
}

func (e *OrderAlreadyLoadedError) Error() string {
	return fmt.Sprintf("order is already loaded: order %s is on load %s", e.OrderID, e.LoadID)
}

func (e *OrderAlreadyLoadedError) Unwrap() error { return ErrOrderAlreadyLoaded }

// Code returns CodeOrderAlreadyLoaded.
func (e *OrderAlreadyLoadedError) Code() string { return CodeOrderAlreadyLoaded }
