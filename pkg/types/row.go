package types

import "strconv"

// Header is the column order of the inventory report.
var Header = []string{
	"Account",
	"VpcId",
	"VpcCidr",
	"Region",
	"Subnet",
	"SubnetId",
	"AvailableIPv4",
	"AvailabilityZone",
}

// Row is one subnet of the inventory report, flattened with its VPC.
type Row struct {
	Account          string // profile name, not the numeric account ID
	VpcID            string
	VpcCIDR          string
	Region           string
	SubnetCIDR       string
	SubnetID         string
	AvailableIPv4    int
	AvailabilityZone string
}

// NewRow joins a subnet with the VPC it was listed under.
func NewRow(account string, vpc VPC, subnet Subnet) Row {
	return Row{
		Account:          account,
		VpcID:            vpc.ID,
		VpcCIDR:          vpc.CIDR,
		Region:           vpc.Region,
		SubnetCIDR:       subnet.CIDR,
		SubnetID:         subnet.ID,
		AvailableIPv4:    subnet.AvailableIPs,
		AvailabilityZone: subnet.AZ,
	}
}

// Record returns the row's fields in Header order.
func (r Row) Record() []string {
	return []string{
		r.Account,
		r.VpcID,
		r.VpcCIDR,
		r.Region,
		r.SubnetCIDR,
		r.SubnetID,
		strconv.Itoa(r.AvailableIPv4),
		r.AvailabilityZone,
	}
}

// LowCapacity reports whether the row's subnet is below LowCapacityThreshold.
func (r Row) LowCapacity() bool {
	return r.AvailableIPv4 < LowCapacityThreshold
}
