// Package models defines the data structures used in the application.
package models

// SharePrice is the best known (maximum) price of one company together with
// the year and month of the row it was read from.
type SharePrice struct {
	CompanyName string
	Year        string // as written in the file
	Month       string // as written in the file
	Value       float64
}
