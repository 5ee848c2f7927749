package services

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"

	"github.com/avick-dev/bizmarket-service/internal/app/listing/queries/get_listing"
	"github.com/avick-dev/bizmarket-service/internal/app/listing/queries/list_favorites"
	"github.com/avick-dev/bizmarket-service/internal/app/listing/queries/list_listings"
	listingrepo "github.com/avick-dev/bizmarket-service/internal/app/listing/repo"
	"github.com/avick-dev/bizmarket-service/internal/app/listing/usecases/add_favorite"
	"github.com/avick-dev/bizmarket-service/internal/app/listing/usecases/create_listing"
	"github.com/avick-dev/bizmarket-service/internal/app/listing/usecases/deactivate_listing"
	"github.com/avick-dev/bizmarket-service/internal/app/listing/usecases/remove_favorite"
	"github.com/avick-dev/bizmarket-service/internal/app/offer/queries/list_events"
	"github.com/avick-dev/bizmarket-service/internal/app/offer/queries/product_offers"
	"github.com/avick-dev/bizmarket-service/internal/app/offer/queries/received_offers"
	"github.com/avick-dev/bizmarket-service/internal/app/offer/queries/sent_offers"
	offerrepo "github.com/avick-dev/bizmarket-service/internal/app/offer/repo"
	"github.com/avick-dev/bizmarket-service/internal/app/offer/usecases/accept_offer"
	"github.com/avick-dev/bizmarket-service/internal/app/offer/usecases/counter_offer"
	"github.com/avick-dev/bizmarket-service/internal/app/offer/usecases/create_offer"
	"github.com/avick-dev/bizmarket-service/internal/app/offer/usecases/reject_offer"
	"github.com/avick-dev/bizmarket-service/internal/app/offer/usecases/respond_counter"
	userrepo "github.com/avick-dev/bizmarket-service/internal/app/user/repo"
	"github.com/avick-dev/bizmarket-service/internal/app/user/usecases/login_user"
	"github.com/avick-dev/bizmarket-service/internal/app/user/usecases/register_user"
	"github.com/avick-dev/bizmarket-service/internal/config"
	"github.com/avick-dev/bizmarket-service/internal/pkg/clock"
	"github.com/avick-dev/bizmarket-service/internal/pkg/committer"
	"github.com/avick-dev/bizmarket-service/internal/pkg/token"
	transport "github.com/avick-dev/bizmarket-service/internal/transport/http"
)

// ServiceOptions holds all dependencies for the application.
type ServiceOptions struct {
	SpannerClient  *spanner.Client
	TokenManager   *token.Manager
	AuthHandler    *transport.AuthHandler
	ListingHandler *transport.ListingHandler
	OfferHandler   *transport.OfferHandler
	EventsHandler  *transport.EventsHandler
}

// NewServiceOptions creates and wires up all application dependencies.
func NewServiceOptions(ctx context.Context, cfg config.Config) (*ServiceOptions, error) {
	// 1. Initialize Spanner client
	spannerClient, err := spanner.NewClient(ctx, cfg.SpannerDatabase)
	if err != nil {
		return nil, fmt.Errorf("failed to create Spanner client: %w", err)
	}

	// 2. Create infrastructure components
	clk := clock.NewRealClock()
	comm := committer.NewCommitter(spannerClient)
	tokens := token.NewManager(cfg.JWTSecret, cfg.JWTTTL(), cfg.AppName, clk)

	// 3. Create repositories
	users := userrepo.NewUserRepo(spannerClient)
	listings := listingrepo.NewListingRepo(spannerClient)
	favorites := listingrepo.NewFavoriteRepo(spannerClient)
	offers := offerrepo.NewOfferRepo(spannerClient)
	outbox := offerrepo.NewOutboxRepo(spannerClient)
	offerReadModel := offerrepo.NewReadModel(spannerClient)
	eventsReadModel := offerrepo.NewEventsReadModel(spannerClient)

	// 4. Create command use cases (write operations)
	registerUseCase := register_user.NewInteractor(users, comm, clk)
	loginUseCase := login_user.NewInteractor(users, tokens)

	createListingUseCase := create_listing.NewInteractor(users, listings, comm, clk)
	deactivateListingUseCase := deactivate_listing.NewInteractor(listings, comm)
	addFavoriteUseCase := add_favorite.NewInteractor(listings, favorites, comm)
	removeFavoriteUseCase := remove_favorite.NewInteractor(favorites, comm)

	createOfferUseCase := create_offer.NewInteractor(users, listings, offers, outbox, comm, clk)
	acceptOfferUseCase := accept_offer.NewInteractor(users, offers, outbox, comm, clk)
	rejectOfferUseCase := reject_offer.NewInteractor(offers, outbox, comm, clk)
	counterOfferUseCase := counter_offer.NewInteractor(offers, outbox, comm, clk)
	respondCounterUseCase := respond_counter.NewInteractor(users, offers, outbox, comm, clk)

	// 5. Create query use cases (read operations)
	getListingQuery := get_listing.NewQuery(listings)
	listListingsQuery := list_listings.NewQuery(listings)
	listFavoritesQuery := list_favorites.NewQuery(listings, favorites)

	receivedOffersQuery := received_offers.NewQuery(offerReadModel, listings)
	sentOffersQuery := sent_offers.NewQuery(offerReadModel, listings, users)
	productOffersQuery := product_offers.NewQuery(offerReadModel, listings)
	listEventsQuery := list_events.NewQuery(eventsReadModel)

	// 6. Create HTTP handlers
	authHandler := transport.NewAuthHandler(registerUseCase, loginUseCase)
	listingHandler := transport.NewListingHandler(
		createListingUseCase,
		deactivateListingUseCase,
		addFavoriteUseCase,
		removeFavoriteUseCase,
		getListingQuery,
		listListingsQuery,
		listFavoritesQuery,
	)
	offerHandler := transport.NewOfferHandler(
		createOfferUseCase,
		acceptOfferUseCase,
		rejectOfferUseCase,
		counterOfferUseCase,
		respondCounterUseCase,
		receivedOffersQuery,
		sentOffersQuery,
		productOffersQuery,
	)
	eventsHandler := transport.NewEventsHandler(listEventsQuery)

	return &ServiceOptions{
		SpannerClient:  spannerClient,
		TokenManager:   tokens,
		AuthHandler:    authHandler,
		ListingHandler: listingHandler,
		OfferHandler:   offerHandler,
		EventsHandler:  eventsHandler,
	}, nil
}

// Close closes all resources.
func (s *ServiceOptions) Close() {
	if s.SpannerClient != nil {
		s.SpannerClient.Close()
	}
}
