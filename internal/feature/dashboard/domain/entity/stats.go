// Package entity defines the domain models for the dashboard feature.
package entity

import "github.com/shopspring/decimal"

// Stats is the admin dashboard summary. It is recomputed on every request.
type Stats struct {
	TotalOrders   int64
	TotalProducts int64
	TotalRevenue  decimal.Decimal
}
