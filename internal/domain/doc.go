// Package domain contains the core business entities of the service: cards and
// the lists that reference them. It owns entity construction (id generation)
// and field-level validation, independent of storage or transport.
package domain
