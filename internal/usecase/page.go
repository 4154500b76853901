// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

// Page is one slice of a listing plus the total number of matching rows.
type Page[T any] struct {
	Items []T
	Total int64
	Skip  int
	Take  int
}
