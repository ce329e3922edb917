package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/vietdv277/vpcfinder/internal/inventory"
	"github.com/vietdv277/vpcfinder/pkg/types"
)

func TestPrintSummary(t *testing.T) {
	t.Parallel()

	t.Run("lists low capacity subnets", func(t *testing.T) {
		t.Parallel()

		low := types.Row{Region: "us-east-1", VpcID: "vpc-1", SubnetID: "subnet-1", AvailableIPv4: 25}
		var buf bytes.Buffer
		PrintSummary(&buf, &inventory.Summary{
			Regions:       []string{"us-east-1", "eu-west-1"},
			FailedRegions: []string{"eu-west-1"},
			Rows:          4,
			LowCapacity:   []types.Row{low},
		}, "inventory.csv")

		out := buf.String()
		for _, want := range []string{
			"2 scanned",
			"1 failed (eu-west-1)",
			"4 written to inventory.csv",
			"1 below 30",
			"subnet-1",
			"1 subnets",
		} {
			if !strings.Contains(out, want) {
				t.Errorf("expected output to contain %q:\n%s", want, out)
			}
		}
	})

	t.Run("omits table when nothing is low", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		PrintSummary(&buf, &inventory.Summary{Regions: []string{"us-east-1"}, Rows: 2}, "out.csv")

		out := buf.String()
		if strings.Contains(out, TopLeft) {
			t.Errorf("expected no table:\n%s", out)
		}
		if strings.Contains(out, "failed") {
			t.Errorf("expected no failure note:\n%s", out)
		}
	})
}

func TestPrintProfileTable(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	PrintProfileTable(&buf, []types.AWSProfile{
		{Name: "default", Region: "us-east-1", Source: "credentials"},
		{Name: "sso-dev", Source: "config"},
	}, "sso-dev")

	out := buf.String()
	for _, want := range []string{"default", "us-east-1", "sso-dev", "●", "2 profiles"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q:\n%s", want, out)
		}
	}
}
