package components

import (
	"stay-marketplace/internal/handler"
	"stay-marketplace/internal/handler/api"
	"stay-marketplace/internal/handler/middleware"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewListingHandler,
		api.NewBookingHandler,
		api.NewReviewHandler,
		api.NewPaymentHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
		fx.Annotate(
			func(pool *pgxpool.Pool) *pgxpool.Pool { return pool },
			fx.As(new(handler.HealthChecker)),
		),
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(listing *api.ListingHandler, booking *api.BookingHandler, review *api.ReviewHandler, payment *api.PaymentHandler) handler.Handlers {
	return handler.Handlers{
		Listing: listing,
		Booking: booking,
		Review:  review,
		Payment: payment,
	}
}
