package listing

import (
	domlisting "github.com/maplecrest/listings-api/internal/domain/listing"
)

type rowScanner interface {
	Scan(dest ...any) error
}

// summaryDests returns the scan destinations matching summaryColumns order.
func summaryDests(s *domlisting.Summary) []any {
	return []any{
		&s.ListingKey, &s.ListPrice,
		&s.Address.StreetNumber, &s.Address.StreetName, &s.Address.StreetSuffix,
		&s.Address.ApartmentNumber, &s.Address.UnitNumber,
		&s.Address.CityRegion, &s.Address.CountyOrParish,
		&s.Address.StateOrProvince, &s.Address.PostalCode,
		&s.Coordinates.Latitude, &s.Coordinates.Longitude,
		&s.BedroomsTotal, &s.BathroomsTotalInteger, &s.ParkingSpaces,
		&s.StandardStatus, &s.TransactionType, &s.PropertyType, &s.PropertySubType,
		&s.ModificationTimestamp, &s.OriginalEntryTimestamp,
	}
}

func (r *Repository) scanSummary(row rowScanner) (domlisting.Summary, error) {
	s := domlisting.Summary{Category: r.cat}
	if err := row.Scan(summaryDests(&s)...); err != nil {
		return domlisting.Summary{}, err
	}
	return s, nil
}

func (r *Repository) scanSummaryWithOffice(row rowScanner) (domlisting.Summary, *string, error) {
	s := domlisting.Summary{Category: r.cat}
	var officeName *string
	dests := append(summaryDests(&s), &officeName)
	if err := row.Scan(dests...); err != nil {
		return domlisting.Summary{}, nil, err
	}
	return s, officeName, nil
}

func (r *Repository) scanDetail(row rowScanner) (*domlisting.Detail, error) {
	d := &domlisting.Detail{Summary: domlisting.Summary{Category: r.cat}}

	dests := append(summaryDests(&d.Summary),
		&d.PublicRemarks, &d.LotDepth, &d.LotWidth, &d.LotSizeUnits,
		&d.TaxAnnualAmount, &d.CrossStreet, &d.ZoningDesignation,
		&d.ListOfficeName, &d.ListOfficeKey,
		&d.VirtualTourURLUnbranded, &d.VirtualTourURLUnbranded2,
		&d.VirtualTourURLBranded, &d.VirtualTourURLBranded2,
	)

	if r.cat == domlisting.Residential {
		d.Residential = &domlisting.ResidentialFeatures{}
		f := d.Residential
		dests = append(dests,
			&f.RoomsAboveGrade, &f.RoomsBelowGrade,
			&f.HeatType, &f.HeatSource, &f.HasFireplace,
			&f.ArchitecturalStyle, &f.Basement, &f.Roof,
			&f.ConstructionMaterials, &f.FoundationDetails,
			&f.Sewer, &f.Cooling, &f.WaterSource, &f.FireplaceFeatures,
			&f.CommunityFeatures, &f.LotFeatures, &f.PoolFeatures,
			&f.SecurityFeatures, &f.WaterfrontFeatures,
		)
	}

	if err := row.Scan(dests...); err != nil {
		return nil, err
	}
	return d, nil
}
