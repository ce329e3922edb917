package inventory

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	vlog "github.com/vietdv277/vpcfinder/internal/log"
	"github.com/vietdv277/vpcfinder/pkg/provider"
	"github.com/vietdv277/vpcfinder/pkg/types"
)

// Printer renders the walk for a human.
type Printer interface {
	RegionStart(region string)
	VPCStart(vpc types.VPC)
	// Subnet is called with a counter that restarts at 0 for every VPC.
	Subnet(index int, subnet types.Subnet)
	VPCEnd(vpc types.VPC)
}

// RowWriter persists report rows.
type RowWriter interface {
	WriteRow(row types.Row) error
}

// RegionError is a provider failure while listing inside one region.
type RegionError struct {
	Region string
	Err    error
}

func (e *RegionError) Error() string {
	return fmt.Sprintf("region %s: %v", e.Region, e.Err)
}

func (e *RegionError) Unwrap() error {
	return e.Err
}

// Summary describes a finished run.
type Summary struct {
	Regions       []string
	FailedRegions []string
	Rows          int
	LowCapacity   []types.Row
}

// Scanner walks the network inventory of one account.
type Scanner struct {
	account  string
	provider provider.NetworkProvider
	printer  Printer
	rows     RowWriter
	logger   *slog.Logger
}

// Option customizes a Scanner.
type Option func(*Scanner)

// WithLogger sets the logger used for swallowed provider failures.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Scanner) {
		s.logger = logger
	}
}

// NewScanner creates a Scanner that labels every row with account.
func NewScanner(account string, p provider.NetworkProvider, printer Printer, rows RowWriter, opts ...Option) *Scanner {
	s := &Scanner{
		account:  account,
		provider: p,
		printer:  printer,
		rows:     rows,
		logger:   vlog.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Regions returns the enabled regions.
func (s *Scanner) Regions(ctx context.Context) ([]string, error) {
	regions, err := s.provider.ListRegions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list regions: %w", err)
	}
	return regions, nil
}

// ScanRegion walks every VPC and subnet of one region and returns the rows
// it wrote. Provider failures come back as *RegionError together with the
// rows written before the failure; any other error is from the RowWriter.
func (s *Scanner) ScanRegion(ctx context.Context, net provider.RegionNetwork) ([]types.Row, error) {
	region := net.Region()

	vpcs, err := net.ListVPCs(ctx)
	if err != nil {
		return nil, &RegionError{Region: region, Err: err}
	}

	var written []types.Row
	for _, vpc := range vpcs {
		if vpc.Region == "" {
			vpc.Region = region
		}

		s.printer.VPCStart(vpc)

		subnets, err := net.ListSubnets(ctx, vpc.ID)
		if err != nil {
			return written, &RegionError{Region: region, Err: err}
		}

		for i, subnet := range subnets {
			s.printer.Subnet(i, subnet)

			row := types.NewRow(s.account, vpc, subnet)
			if err := s.rows.WriteRow(row); err != nil {
				return written, err
			}
			written = append(written, row)
		}

		s.printer.VPCEnd(vpc)
	}

	return written, nil
}

// Run walks every region. A failed region enumeration or a failed region
// listing is logged and skipped; only RowWriter failures abort the run.
func (s *Scanner) Run(ctx context.Context) (*Summary, error) {
	summary := &Summary{}

	regions, err := s.Regions(ctx)
	if err != nil {
		s.logger.Error("unexpected error", "err", err)
		return summary, nil
	}

	for _, region := range regions {
		s.printer.RegionStart(region)
		s.logger.Debug("scanning region", "region", region)
		summary.Regions = append(summary.Regions, region)

		rows, err := s.ScanRegion(ctx, s.provider.ForRegion(region))
		s.record(summary, rows)

		var regionErr *RegionError
		switch {
		case errors.As(err, &regionErr):
			s.logger.Error("unexpected error", "region", region, "err", regionErr.Err)
			summary.FailedRegions = append(summary.FailedRegions, region)
		case err != nil:
			return summary, err
		}
	}

	return summary, nil
}

func (s *Scanner) record(summary *Summary, rows []types.Row) {
	summary.Rows += len(rows)
	for _, row := range rows {
		if row.LowCapacity() {
			summary.LowCapacity = append(summary.LowCapacity, row)
		}
	}
}
