package board

import (
	"errors"
	"strings"
	"testing"

	"github.com/ardnew/hardsleep/pkg"
)

func TestSoC_String(t *testing.T) {
	tests := []struct {
		soc  SoC
		want string
	}{
		{BCM2835, "BCM2835"},
		{BCM2836, "BCM2836"},
		{BCM2837, "BCM2837"},
		{BCM2711, "BCM2711"},
		{BCM2712, "BCM2712"},
		{SoCUnknown, "unknown"},
		{SoC(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.soc.String(); got != tt.want {
				t.Errorf("SoC.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseRevision(t *testing.T) {
	tests := []struct {
		name string
		rev  string
		want SoC
	}{
		// Old sequential scheme
		{"pi1 model b rev1", "0002", BCM2835},
		{"pi1 model b rev2", "000e", BCM2835},
		{"pi1 last old code", "0015", BCM2835},
		{"old scheme overvolt", "1000000f", BCM2835},

		// New bit-field scheme
		{"pi zero", "900092", BCM2835},
		{"pi2", "a01041", BCM2836},
		{"pi3", "a02082", BCM2837},
		{"pi zero 2 w", "902120", BCM2837},
		{"pi4 4gb", "c03111", BCM2711},
		{"pi400", "c03130", BCM2711},
		{"pi5", "d04170", BCM2712},
		{"hex prefix accepted", "0xa02082", BCM2837},
		{"surrounding space", " a02082 ", BCM2837},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRevision(tt.rev)
			if err != nil {
				t.Fatalf("ParseRevision(%q) error: %v", tt.rev, err)
			}
			if got != tt.want {
				t.Errorf("ParseRevision(%q) = %v, want %v", tt.rev, got, tt.want)
			}
		})
	}
}

func TestParseRevision_Unsupported(t *testing.T) {
	tests := []struct {
		name string
		rev  string
	}{
		{"empty", ""},
		{"not hex", "zzzz"},
		{"old code zero", "0000"},
		{"old code too high", "0016"},
		{"new scheme future soc", "805000"}, // SoC nibble 5
		{"too wide", "fffffffff"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			soc, err := ParseRevision(tt.rev)
			if !errors.Is(err, pkg.ErrUnsupportedHardware) {
				t.Errorf("ParseRevision(%q) error = %v, want ErrUnsupportedHardware", tt.rev, err)
			}
			if soc != SoCUnknown {
				t.Errorf("ParseRevision(%q) = %v, want SoCUnknown", tt.rev, soc)
			}
		})
	}
}

func TestScanRevision(t *testing.T) {
	cpuinfo := `processor	: 0
BogoMIPS	: 108.00
Features	: fp asimd evtstrm crc32 cpuid

Hardware	: BCM2835
Revision	: c03111
Serial		: 10000000abcdef01
Model		: Raspberry Pi 4 Model B Rev 1.1
`

	rev, err := scanRevision(strings.NewReader(cpuinfo))
	if err != nil {
		t.Fatalf("scanRevision error: %v", err)
	}
	if rev != "c03111" {
		t.Errorf("scanRevision = %q, want %q", rev, "c03111")
	}
}

func TestScanRevision_Missing(t *testing.T) {
	cpuinfo := `processor	: 0
Hardware	: some other machine
`

	_, err := scanRevision(strings.NewReader(cpuinfo))
	if !errors.Is(err, pkg.ErrUnsupportedHardware) {
		t.Errorf("scanRevision error = %v, want ErrUnsupportedHardware", err)
	}
}
