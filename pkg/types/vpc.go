package types

// LowCapacityThreshold is the free address count below which a subnet is
// reported as running out of private IPv4 space.
const LowCapacityThreshold = 30

// VPC represents an AWS VPC
type VPC struct {
	ID        string
	Name      string
	CIDR      string
	State     string
	IsDefault bool
	OwnerID   string
	Region    string
}

// Subnet represents an AWS VPC Subnet
type Subnet struct {
	ID           string
	Name         string
	VPCID        string
	CIDR         string
	AZ           string
	AvailableIPs int
	State        string
	Public       bool // MapPublicIpOnLaunch
}

// LowCapacity reports whether the subnet has fewer than
// LowCapacityThreshold available addresses.
func (s Subnet) LowCapacity() bool {
	return s.AvailableIPs < LowCapacityThreshold
}
