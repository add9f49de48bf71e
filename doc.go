// Package capex tracks purchase-order-linked projects against yearly budget
// envelopes.
//
// The raw records (projects, order line items, budget categories) live in a
// spreadsheet behind a single action/payload endpoint; this package fetches
// them, joins projects with their order lines, and derives every reported
// figure from that snapshot: per-category consumption and engagement, monthly
// delivery forecasts, and gain/loss on committed projects.
//
// Mutations go through the store and a full refetch. The only exception is
// the Kanban board, where a status change is applied optimistically to a
// local working copy and rolled back if the remote write fails.
package capex
