// Package billing provides the invoicing domain model.
//
// It covers the two aggregates the application revolves around:
//   - Customer: a party invoices are issued to
//   - Invoice: a dated document with lines; each line carries a quantity,
//     a unit price and a derived amount, and the invoice total is the sum
//     of its line amounts
//
// Monetary values use decimal arithmetic throughout. Invariants such as
// non-empty titles, non-negative quantities and prices, and total
// consistency are enforced by the aggregate constructors and mutators,
// not by callers.
package billing
