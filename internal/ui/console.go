package ui

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/vietdv277/vpcfinder/pkg/types"
)

// Banner separates VPC blocks in the console walk.
var Banner = strings.Repeat("=", 50)

// Console prints the region, VPC and subnet walk. Colours are resolved
// against the writer, so pipes and files get plain text.
type Console struct {
	w      io.Writer
	low    lipgloss.Style
	normal lipgloss.Style
}

// ConsoleOption customizes a Console.
type ConsoleOption func(*lipgloss.Renderer)

// WithoutColor forces plain text output.
func WithoutColor() ConsoleOption {
	return func(r *lipgloss.Renderer) {
		r.SetColorProfile(termenv.Ascii)
	}
}

// NewConsole creates a Console writing to w.
func NewConsole(w io.Writer, opts ...ConsoleOption) *Console {
	r := lipgloss.NewRenderer(w)
	for _, opt := range opts {
		opt(r)
	}

	return &Console{
		w:      w,
		low:    r.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorLow)),
		normal: r.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorNormal)),
	}
}

// RegionStart announces a region.
func (c *Console) RegionStart(region string) {
	fmt.Fprintf(c.w, "Scanning region: %s\n", region)
}

// VPCStart prints the banner and summary lines of a VPC.
func (c *Console) VPCStart(vpc types.VPC) {
	fmt.Fprintln(c.w, Banner)
	fmt.Fprintf(c.w, "Found VPC in Region %s\n", vpc.Region)
	fmt.Fprintf(c.w, "Account:%s\n", vpc.OwnerID)
	fmt.Fprintf(c.w, "VpcId:%s, VpcCidr:%s, Region:%s\n", vpc.ID, vpc.CIDR, vpc.Region)
}

// Subnet prints one subnet, highlighting the ID and free address count.
func (c *Console) Subnet(index int, subnet types.Subnet) {
	style := c.normal
	if subnet.LowCapacity() {
		style = c.low
	}

	fmt.Fprintf(c.w, "%d - Subnet:%s, SubnetId:%s, AvailableIPv4:%s, AvailabilityZone:%s,\n",
		index,
		subnet.CIDR,
		style.Render(subnet.ID),
		style.Render(strconv.Itoa(subnet.AvailableIPs)),
		subnet.AZ,
	)
}

// VPCEnd closes a VPC block.
func (c *Console) VPCEnd(vpc types.VPC) {
	fmt.Fprintln(c.w, Banner)
}
