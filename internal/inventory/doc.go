// Package inventory walks regions, VPCs and subnets and feeds every subnet
// to a console Printer and a report RowWriter.
//
// The walk is sequential: regions in the order the provider lists them,
// VPCs in provider order within a region, subnets in provider order within
// a VPC. A failed region enumeration yields an empty run; a failed listing
// inside a region abandons that region and the walk moves on. Rows already
// written are never retracted.
package inventory
