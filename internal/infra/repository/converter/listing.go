package converter

import (
	"stay-marketplace/internal/domain/listing"
	"stay-marketplace/internal/infra/query"
	"stay-marketplace/internal/pkg/pgconv"
)

func ListingToCreateParams(l *listing.Listing) query.CreateListingParams {
	return query.CreateListingParams{
		ID:            l.ID(),
		HostID:        l.HostID(),
		Name:          l.Name().String(),
		Description:   l.Description().String(),
		Location:      l.Location().String(),
		PricePerNight: l.PricePerNight().String(),
		CreatedAt:     pgconv.TimeToPgtype(l.CreatedAt()),
		UpdatedAt:     pgconv.TimeToPgtype(l.UpdatedAt()),
	}
}

func ListingToUpdateParams(l *listing.Listing) query.UpdateListingParams {
	return query.UpdateListingParams{
		ID:            l.ID(),
		Name:          l.Name().String(),
		Description:   l.Description().String(),
		Location:      l.Location().String(),
		PricePerNight: l.PricePerNight().String(),
		UpdatedAt:     pgconv.TimeToPgtype(l.UpdatedAt()),
	}
}

func ListingFromRow(row query.Listings) (*listing.Listing, error) {
	price, err := pgconv.DecimalFromText(row.PricePerNight)
	if err != nil {
		return nil, err
	}
	return listing.ReconstructListing(
		row.ID,
		row.HostID,
		row.Name,
		row.Description,
		row.Location,
		price,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
