// Package store defines the persistence contract for cards and lists.
// The interfaces here abstract the backing container from the services, so
// the in-memory implementation in platform/memory can later be swapped for a
// durable one without touching business rules.
package store
