// Package service contains the application's business operations on top
// of the store interfaces: reference resolution for task writes (looking
// up submitted tag/assignee/column IDs and embedding snapshots of what
// they resolved to) and query aggregation for task reads (filtering and
// windowing in the store, then expanding stored reference IDs into full
// nested entities).
package service
