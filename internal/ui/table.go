package ui

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vietdv277/vpcfinder/internal/inventory"
	pkgtypes "github.com/vietdv277/vpcfinder/pkg/types"
)

// Low capacity table column widths
var lowCapacityColumnWidths = []int{14, 24, 18, 26, 18, 16, 6}

// boxTable renders rows of pre-styled cells inside a rounded border
type boxTable struct {
	widths []int
	sb     strings.Builder
}

func (t *boxTable) rule(left, mid, right string) {
	t.sb.WriteString(BorderStyle.Render(left))
	for i, w := range t.widths {
		t.sb.WriteString(BorderStyle.Render(strings.Repeat(Horizontal, w+2)))
		if i < len(t.widths)-1 {
			t.sb.WriteString(BorderStyle.Render(mid))
		}
	}
	t.sb.WriteString(BorderStyle.Render(right))
	t.sb.WriteString("\n")
}

func (t *boxTable) header(headers []string) {
	t.rule(TopLeft, TopT, TopRight)
	t.sb.WriteString(BorderStyle.Render(Vertical))
	for i, h := range headers {
		t.sb.WriteString(HeaderStyle.Render(" " + padRight(h, t.widths[i]) + " "))
		t.sb.WriteString(BorderStyle.Render(Vertical))
	}
	t.sb.WriteString("\n")
	t.rule(LeftT, Cross, RightT)
}

func (t *boxTable) row(cells []string, styles []lipgloss.Style) {
	t.sb.WriteString(BorderStyle.Render(Vertical))
	for i, cell := range cells {
		t.sb.WriteString(styles[i].Render(" " + padRight(cell, t.widths[i]) + " "))
		t.sb.WriteString(BorderStyle.Render(Vertical))
	}
	t.sb.WriteString("\n")
}

func (t *boxTable) String() string {
	t.rule(BottomLeft, BottomT, BottomRight)
	return t.sb.String()
}

// PrintSummary prints the totals of a run and, when any subnet is short of
// addresses, a table of those subnets.
func PrintSummary(w io.Writer, summary *inventory.Summary, path string) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Summary")
	fmt.Fprintln(w, MutedStyle.Render(strings.Repeat(Horizontal, 33)))
	fmt.Fprintf(w, "Regions:  %d scanned", len(summary.Regions))
	if n := len(summary.FailedRegions); n > 0 {
		fmt.Fprintf(w, ", %s", LowStyle.Render(fmt.Sprintf("%d failed (%s)", n, strings.Join(summary.FailedRegions, ", "))))
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Subnets:  %d written to %s\n", summary.Rows, path)
	fmt.Fprintf(w, "Low:      %d below %d available addresses\n", len(summary.LowCapacity), pkgtypes.LowCapacityThreshold)

	if len(summary.LowCapacity) > 0 {
		fmt.Fprintln(w)
		PrintLowCapacityTable(w, summary.LowCapacity)
	}
}

// PrintLowCapacityTable prints report rows in a styled box table
func PrintLowCapacityTable(w io.Writer, rows []pkgtypes.Row) {
	t := &boxTable{widths: lowCapacityColumnWidths}
	t.header([]string{"Region", "VPC", "VPC CIDR", "Subnet", "CIDR", "AZ", "IPs"})

	styles := []lipgloss.Style{MutedStyle, IDStyle, IPStyle, IDStyle, IPStyle, AZStyle, LowStyle}
	for _, r := range rows {
		t.row([]string{
			r.Region,
			r.VpcID,
			r.VpcCIDR,
			r.SubnetID,
			r.SubnetCIDR,
			r.AvailabilityZone,
			strconv.Itoa(r.AvailableIPv4),
		}, styles)
	}

	fmt.Fprint(w, t.String())
	fmt.Fprintf(w, "  %d subnets\n", len(rows))
}

// PrintProfileTable prints profiles in a styled table
func PrintProfileTable(w io.Writer, profiles []pkgtypes.AWSProfile, activeProfile string) {
	headers := []string{"", "Name", "Region", "Source"}

	nameWidth := len(headers[1])
	for _, p := range profiles {
		if len(p.Name) > nameWidth {
			nameWidth = len(p.Name)
		}
	}

	t := &boxTable{widths: []int{1, nameWidth, 20, 12}}
	t.header(headers)

	for _, p := range profiles {
		marker, nameStyle := "", NameStyle
		if p.Name == activeProfile {
			marker, nameStyle = "●", RunningStyle
		}
		region := p.Region
		if region == "" {
			region = "-"
		}
		t.row(
			[]string{marker, p.Name, region, p.Source},
			[]lipgloss.Style{RunningStyle, nameStyle, MutedStyle, MutedStyle},
		)
	}

	fmt.Fprint(w, t.String())
	fmt.Fprintf(w, "  %d profiles\n", len(profiles))
}
