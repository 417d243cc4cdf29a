// Package services provides the domain services of the sales core: pure
// business logic that does not belong to a single Order instance.
//
// The package includes:
//   - OrderValidator: structural and business-rule validation of create/update payloads
//   - OrderNumberGenerator: day-scoped ORDyyMMddNNNN number allocation over an atomic sequence
//   - OrderStatisticsAggregator: percentage, month bucketing and top-N rules for statistics
package services
