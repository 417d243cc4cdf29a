// Package order provides the Order aggregate of the sales system together with
// the payload shapes used to create, update, list and summarize orders.
//
// The package includes:
//   - Order and Item: the aggregate root and the material lines it owns
//   - Status: the order lifecycle DRAFT -> SUBMITTED -> PROCESSING -> COMPLETED
//   - CreateData, UpdateData, Filters, StatsFilters: caller-facing payloads
//   - Number helpers: the ORDyyMMddNNNN order number format
//   - Statistics: the derived per-customer statistics projection
//
// Key business rules:
//   - Orders are created in DRAFT and may only be updated or deleted while DRAFT
//   - Every order carries at least one item and every item quantity is positive
//   - The order number is assigned once at creation and never changes
//
// Transitions beyond DRAFT are driven by an external fulfillment process; this
// package only enforces the DRAFT mutability gate.
package order
