// Package store defines the persistence interfaces for the application's
// entity collections (tasks, tags, users, columns) along with the filter
// types and sentinel errors shared by their implementations. Each
// collection owns its own records; a task only holds references into the
// other collections, and those references are not enforced by the store.
package store
