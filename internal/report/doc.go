// Package report writes the subnet inventory as CSV.
//
// A report has a fixed eight column header followed by one row per subnet,
// in the order the subnets were discovered. Rows are only ever appended.
package report
