// Package service contains the use cases of the card/list service. It owns
// validation that spans entities (list references to cards) and the cascade
// that keeps lists consistent when a card is deleted.
//
// Services receive a store.Store through constructor injection and run every
// compound operation inside a single store transaction.
package service
