package charges

import (
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"port-charges/core/types"
	"port-charges/internal/errors"
)

var carryIn = civil.Date{Year: 2025, Month: time.January, Day: 6}

// span returns a carry-out date giving an inclusive window of n days
func span(n int) civil.Date {
	return carryIn.AddDays(n - 1)
}

func assertLine(t *testing.T, b types.ChargeBreakdown, name, want string) {
	t.Helper()
	got, ok := b.Amount(name)
	require.True(t, ok, "missing line %q", name)
	assert.True(t, got.Equal(dec(want)), "%s: want %s, got %s", name, want, got)
}

func assertTotal(t *testing.T, b types.ChargeBreakdown, want string) {
	t.Helper()
	assert.True(t, b.Total().Equal(dec(want)), "total: want %s, got %s", want, b.Total())
}

func TestGeneralCargoFreePeriod(t *testing.T) {
	b, d0, err := PortChargesForGeneralCargo(dec("10"), carryIn, span(5))
	require.NoError(t, err)

	assert.Equal(t, 5, d0)
	assertLine(t, b, LineStorage, "0")
	assertLine(t, b, LineRemoval, "0")
	assertLine(t, b, LineLCLWarehouseRent, "0")
	assertLine(t, b, LineCorridorLevy, "3")
	assertLine(t, b, LineShoreHandling, "70")
	assertLine(t, b, LineStripping, "53")
	assertTotal(t, b, "148.68")
}

func TestGeneralCargoFirstChargeableDay(t *testing.T) {
	b, d0, err := PortChargesForGeneralCargo(dec("10"), carryIn, span(6))
	require.NoError(t, err)

	assert.Equal(t, 6, d0)
	assertLine(t, b, LineRemoval, "20")
	assertLine(t, b, LineStorage, "10")
	assertLine(t, b, LineLCLWarehouseRent, "0")
	assertTotal(t, b, "184.08")
}

func TestGeneralCargoWarehouseRent(t *testing.T) {
	tests := []struct {
		name  string
		days  int
		rent  string
		total string
	}{
		{"last rent-free day", 25, "0", "408.28"},
		{"first rent day", 26, "23.1", "420.08"},
		{"long stay", 40, "69.3", "585.28"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, _, err := PortChargesForGeneralCargo(dec("10"), carryIn, span(tt.days))
			require.NoError(t, err)
			assertLine(t, b, LineLCLWarehouseRent, tt.rent)
			assertTotal(t, b, tt.total)
		})
	}
}

func TestGeneralCargoLineOrder(t *testing.T) {
	b, _, err := PortChargesForGeneralCargo(dec("1"), carryIn, span(1))
	require.NoError(t, err)

	var names []string
	for _, l := range b.Lines() {
		names = append(names, l.Name)
	}
	assert.Equal(t, []string{
		LineStorage,
		LineCorridorLevy,
		LineRemoval,
		LineShoreHandling,
		LineStripping,
		LineLCLWarehouseRent,
		LineLCLTotal,
	}, names)
}

func TestContainer20FT(t *testing.T) {
	tests := []struct {
		name       string
		containers string
		days       int
		storage    string
		removal    string
		rent       string
		total      string
	}{
		{"free period", "1", 5, "0", "0", "0", "365.8"},
		{"first tier ends", "1", 15, "236", "118", "0", "719.8"},
		{"second tier", "1", 20, "472", "118", "0", "955.8"},
		{"rent threshold not passed", "1", 21, "519.2", "118", "0", "1003"},
		{"rent charged", "1", 22, "566.4", "118", "95.04", "1050.2"},
		{"two containers", "2", 22, "1132.8", "236", "190.08", "2100.4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, d0, err := PortChargesFor20ft(dec(tt.containers), carryIn, span(tt.days))
			require.NoError(t, err)

			assert.Equal(t, tt.days, d0)
			assertLine(t, b, LineStorage, tt.storage)
			assertLine(t, b, LineRemoval, tt.removal)
			assertLine(t, b, LineContainerWarehouseRent, tt.rent)
			assertTotal(t, b, tt.total)
		})
	}
}

func TestContainer20FTMidTierDailyRate(t *testing.T) {
	b, _, err := PortChargesFor20ft(dec("1"), carryIn, span(6))
	require.NoError(t, err)
	assertLine(t, b, LineStorage, "23.6")
	assertLine(t, b, LineRemoval, "118")
}

func TestContainer20FTFixedLines(t *testing.T) {
	b, _, err := PortChargesFor20ft(dec("3"), carryIn, span(1))
	require.NoError(t, err)

	assertLine(t, b, LineShoreHandling, "237")
	assertLine(t, b, LineCorridorLevy, "18")
	assertLine(t, b, LineCustomsVerification, "210")
	assertLine(t, b, LineICDHandling, "270")
	assertLine(t, b, LineContainerTransfer, "195")

	line, ok := b.TotalLine()
	require.True(t, ok)
	assert.Equal(t, "Port and ICD Charges for 20FT Container", line.Name)
}

func TestContainer40FT(t *testing.T) {
	tests := []struct {
		name    string
		days    int
		storage string
		removal string
		rent    string
		total   string
	}{
		{"free period", 5, "0", "0", "0", "561.68"},
		{"first tier", 10, "236", "177", "0", "974.68"},
		{"rent threshold not passed", 21, "1038.4", "177", "0", "1777.08"},
		{"rent charged", 22, "1132.8", "177", "23.76", "1871.48"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, _, err := PortChargesFor40ft(dec("1"), carryIn, span(tt.days))
			require.NoError(t, err)

			assertLine(t, b, LineStorage, tt.storage)
			assertLine(t, b, LineRemoval, tt.removal)
			assertLine(t, b, LineContainerWarehouseRent, tt.rent)
			assertTotal(t, b, tt.total)
		})
	}

	b, _, err := PortChargesFor40ft(dec("1"), carryIn, span(1))
	require.NoError(t, err)
	line, _ := b.TotalLine()
	assert.Equal(t, "Port and ICD Charges for 40FT Container", line.Name)
}

func TestSeaTotalsExcludeWarehouseRent(t *testing.T) {
	type calc func(decimal.Decimal, civil.Date, civil.Date) (types.ChargeBreakdown, int, error)
	calcs := map[string]calc{
		"lcl":  PortChargesForGeneralCargo,
		"20ft": PortChargesFor20ft,
		"40ft": PortChargesFor40ft,
	}

	for name, fn := range calcs {
		t.Run(name, func(t *testing.T) {
			b, _, err := fn(dec("4"), carryIn, span(60))
			require.NoError(t, err)

			rent := b.Lines()[b.Len()-2]
			require.True(t, rent.Amount.IsPositive(), "rent should be charged after 60 days")

			// rebuild the total from every line except rent
			taxed := decimal.Zero
			untaxed := decimal.Zero
			for _, l := range b.Lines() {
				switch l.Name {
				case LineStorage, LineRemoval:
					untaxed = untaxed.Add(l.Amount)
				case LineLCLWarehouseRent, LineContainerWarehouseRent:
				default:
					if l.Kind == types.LineCharge {
						taxed = taxed.Add(l.Amount)
					}
				}
			}
			var want decimal.Decimal
			if name == "lcl" {
				want = withVAT(taxed.Add(untaxed))
			} else {
				want = withVAT(taxed).Add(untaxed)
			}
			assert.True(t, b.Total().Equal(want), "want %s, got %s", want, b.Total())
		})
	}
}

func TestBulkHandling(t *testing.T) {
	b, d0, err := PortChargesForBulk(dec("250.5"), carryIn, span(30))
	require.NoError(t, err)

	assert.Equal(t, 30, d0)
	assertLine(t, b, LineBasicPortHandling, "1252.5")
	assertTotal(t, b, "1252.5")
	assert.Equal(t, 2, b.Len())
}

func TestSeaCalculatorsRejectReversedWindow(t *testing.T) {
	out := carryIn.AddDays(-1)

	_, _, err := PortChargesForGeneralCargo(dec("1"), carryIn, out)
	assert.True(t, errors.IsType(err, errors.TypeInvalidRange))
	_, _, err = PortChargesFor20ft(dec("1"), carryIn, out)
	assert.True(t, errors.IsType(err, errors.TypeInvalidRange))
	_, _, err = PortChargesFor40ft(dec("1"), carryIn, out)
	assert.True(t, errors.IsType(err, errors.TypeInvalidRange))
	_, _, err = PortChargesForBulk(dec("1"), carryIn, out)
	assert.True(t, errors.IsType(err, errors.TypeInvalidRange))
}

func TestSeaCalculatorsAreDeterministic(t *testing.T) {
	a, _, err := PortChargesFor40ft(dec("3"), carryIn, span(33))
	require.NoError(t, err)
	b, _, err := PortChargesFor40ft(dec("3"), carryIn, span(33))
	require.NoError(t, err)
	assert.Equal(t, a.Lines(), b.Lines())
}

func TestContainerProfilesAreCopies(t *testing.T) {
	p := Profile20FT()
	p.ShoreHandling = dec("1000")
	p.Name = "changed"

	assert.True(t, Profile20FT().ShoreHandling.Equal(dec("79")))
	assert.Equal(t, "20FT", Profile20FT().Name)

	b, _, err := PortChargesFor20ft(dec("1"), carryIn, span(5))
	require.NoError(t, err)
	assertLine(t, b, LineShoreHandling, "79")
	assertTotal(t, b, "365.8")

	custom, _, err := ContainerCharges(p, dec("1"), carryIn, span(5))
	require.NoError(t, err)
	assertLine(t, custom, LineShoreHandling, "1000")

	assert.Equal(t, "40FT", Profile40FT().Name)
	assert.True(t, Profile40FT().RemovalBase.Equal(dec("150")))
}

func TestVATMultiplier(t *testing.T) {
	assert.True(t, withVAT(dec("100")).Equal(dec("118")))
}
