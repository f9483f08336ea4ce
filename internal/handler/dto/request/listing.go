package request

import (
	"stay-marketplace/internal/domain/listing"
	"stay-marketplace/internal/usecase/queries"
)

// ListingRequest is the body of create, update and partial update. Read-only
// attributes such as host are not decoded.
type ListingRequest struct {
	Name          *string  `json:"name"`
	Description   *string  `json:"description"`
	Location      *string  `json:"location"`
	PricePerNight *Decimal `json:"price_per_night" swaggertype:"string" example:"150.00"`
}

func (r *ListingRequest) ToFields() listing.Fields {
	return listing.Fields{
		Name:          r.Name,
		Description:   r.Description,
		Location:      r.Location,
		PricePerNight: r.PricePerNight.text(),
	}
}

type ListingListQuery struct {
	Host string `form:"host"`
}

func (q *ListingListQuery) ToFilter() queries.ListingFilter {
	if q.Host == "" {
		return queries.ListingFilter{}
	}
	host := q.Host
	return queries.ListingFilter{HostUsername: &host}
}
