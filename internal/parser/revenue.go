package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/agencydesk/settlements/constants"
	"github.com/agencydesk/settlements/internal/fieldparse"
	"github.com/agencydesk/settlements/internal/strategy"
	"github.com/agencydesk/settlements/internal/tripdetail"
)

// Revenue distribution layout: one trip per page with an itemized service
// table. Produces a trip-level line carrying the versioned payload the
// batch aggregation service consumes.

var (
	reRVTrip         = regexp.MustCompile(`TRIP(?: NUMBER| NO\.?)?[ \t:#]+(\w+)`)
	reRVBOL          = regexp.MustCompile(`(?:BILL OF LADING|B/L(?: NUMBER)?)[ \t:#]+(\w+)`)
	reRVDriver       = regexp.MustCompile(`(?m)^DRIVER[ \t:]+(.+)$`)
	reRVShipper      = regexp.MustCompile(`(?m)^SHIPPER[ \t:]+(.+)$`)
	reRVOrigin       = regexp.MustCompile(`(?m)^ORIGIN[ \t:]+(.+)$`)
	reRVDestination  = regexp.MustCompile(`(?m)^DESTINATION[ \t:]+(.+)$`)
	reRVDeliveryDate = regexp.MustCompile(`DELIVERY DATE[ \t:]+(\d{4}-\d{2}-\d{2}|\d{1,2}/\d{1,2}/\d{2}|\d{6})`)
	reRVWeight       = regexp.MustCompile(`WEIGHT[ \t:]+([\d,]+(?:\.\d+)?)`)
	reRVMiles        = regexp.MustCompile(`MILES[ \t:]+([\d,]+(?:\.\d+)?)`)
	reRVNetInline    = regexp.MustCompile(`NET BALANCE[ \t:]*[\t ](\$?[\d,]+\.\d{2}-?)`)
	reRVNetLine      = regexp.MustCompile(`^NET BALANCE[ \t:]*$`)
	reRVServices     = regexp.MustCompile(`^(?:SERVICES|DESCRIPTION OF SERVICES)[ \t:]*$`)
)

// cityState validates a "CITY, ST" location against the state table.
func cityState(s string) (string, bool) {
	s = strings.TrimSpace(s)
	i := strings.LastIndex(s, ",")
	if i < 0 {
		return "", false
	}
	city := strings.TrimSpace(s[:i])
	st := strings.TrimSpace(s[i+1:])
	if city == "" || !constants.IsStateCode(st) {
		return "", false
	}
	return city + ", " + st, true
}

// location: a validated CITY, ST first; any non-empty capture as fallback
// so a garbled state code degrades instead of dropping the field.
func locationStrategies(re *regexp.Regexp) []strategy.Strategy[string] {
	return []strategy.Strategy[string]{
		strategy.Regex(re, func(m []string) (string, bool) { return cityState(m[1]) }),
		strategy.Regex(re, func(m []string) (string, bool) {
			v := strings.TrimSpace(m[1])
			return v, v != ""
		}),
	}
}

var rvNetBalance = []strategy.Strategy[amountHit]{
	strategy.Regex(reRVNetInline, func(m []string) (amountHit, bool) {
		amt, ok := fieldparse.ParseSignedCurrency(m[1])
		if !ok {
			return amountHit{}, false
		}
		return amountHit{amount: amt, isDebit: true}, true
	}),
	strategy.LineScan(reRVNetLine, 3, func(line string) (amountHit, bool) {
		amt, ok := findCurrency(line)
		if !ok {
			return amountHit{}, false
		}
		return amountHit{amount: amt, isDebit: true}, true
	}),
}

// serviceItems scans the itemized table between the services header and
// the NET BALANCE section. Not a strategy: it collects every row, not the
// first hit.
func serviceItems(norm string) []tripdetail.ServiceItem {
	var items []tripdetail.ServiceItem
	lines := strings.Split(norm, "\n")
	in := false
	for _, ln := range lines {
		switch {
		case reRVServices.MatchString(ln):
			in = true
		case in && (reRVNetLine.MatchString(ln) || reRVNetInline.MatchString(ln)):
			return items
		case in:
			f := strings.Split(ln, "\t")
			if len(f) < 2 {
				continue
			}
			desc := strings.TrimSpace(f[0])
			amt, ok := findCurrency(f[len(f)-1])
			if desc == "" || isColumnHeader(desc) || !ok {
				continue
			}
			items = append(items, tripdetail.ServiceItem{Description: desc, Amount: amt})
		}
	}
	return items
}

func parseNumber(s string) float64 {
	f, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
	if err != nil {
		return 0
	}
	return f
}

func parseRevenueDistribution(norm, raw string) ParseResult {
	var errs []string
	line := ExtractedLine{RawText: raw, IsDebit: true, Amount: decimal.Zero}
	trip := tripdetail.Trip{SchemaVersion: tripdetail.SchemaVersion}

	capture := func(re *regexp.Regexp) (string, bool) {
		return strategy.First(norm, strategy.Regex(re, func(m []string) (string, bool) {
			v := strings.TrimSpace(m[1])
			return v, v != ""
		}))
	}

	if v, ok := capture(reRVTrip); ok {
		trip.TripNumber = fieldparse.StripLeadingZeros(v)
		line.Reference = strPtr(trip.TripNumber)
	}
	if v, ok := capture(reRVBOL); ok {
		trip.BillOfLading = fieldparse.StripLeadingZeros(v)
	}
	if v, ok := capture(reRVDriver); ok {
		trip.DriverName = v
		pn := fieldparse.SplitName(v)
		if pn.FirstName != nil {
			trip.DriverFirstName = *pn.FirstName
		}
		if pn.LastName != nil {
			trip.DriverLastName = *pn.LastName
		}
	}
	if v, ok := capture(reRVShipper); ok {
		trip.ShipperName = v
	}
	if v, ok := strategy.First(norm, locationStrategies(reRVOrigin)...); ok {
		trip.Origin = v
	}
	if v, ok := strategy.First(norm, locationStrategies(reRVDestination)...); ok {
		trip.Destination = v
	}
	if v, ok := strategy.First(norm, strategy.Regex(reRVDeliveryDate, func(m []string) (string, bool) {
		return fieldparse.ParseAnyDate(m[1])
	})); ok {
		trip.DeliveryDate = v
		line.ProcessDate = strPtr(v)
	}
	if v, ok := capture(reRVWeight); ok {
		trip.Weight = parseNumber(v)
	}
	if v, ok := capture(reRVMiles); ok {
		trip.Miles = parseNumber(v)
	}
	trip.ServiceItems = serviceItems(norm)

	if v, ok := capture(reRVShipper); ok {
		line.Description = v
	} else if trip.TripNumber != "" {
		line.Description = "TRIP " + trip.TripNumber
	} else {
		line.Description = "Unknown"
	}

	// Distributed revenue is a credit to the contractor: the line amount is
	// the negated net balance. A trailing-minus net (a clawback) flips back
	// to a positive debit.
	if hit, ok := strategy.First(norm, rvNetBalance...); ok {
		trip.NetBalance = hit.amount
		line.Amount = hit.amount.Neg()
		line.IsDebit = !line.Amount.IsNegative()
	} else {
		trip.NetBalance = decimal.Zero
		errs = append(errs, "could not extract amount from revenue distribution document")
	}

	line.Trip = &trip

	// The payload is schema-checked on the way out; a violation is review
	// material, not a dropped line.
	if b, err := trip.Encode(); err == nil {
		if verr := tripdetail.Validate(b); verr != nil {
			errs = append(errs, verr.Error())
		}
	}

	return ParseResult{Lines: []ExtractedLine{line}, Errors: errs}
}
