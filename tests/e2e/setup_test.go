package e2e

import (
	"context"
	"testing"
	"time"

	"cloud.google.com/go/spanner"

	"github.com/avick-dev/bizmarket-service/internal/app/listing/queries/get_listing"
	"github.com/avick-dev/bizmarket-service/internal/app/listing/queries/list_favorites"
	"github.com/avick-dev/bizmarket-service/internal/app/listing/queries/list_listings"
	listingrepo "github.com/avick-dev/bizmarket-service/internal/app/listing/repo"
	"github.com/avick-dev/bizmarket-service/internal/app/listing/usecases/add_favorite"
	"github.com/avick-dev/bizmarket-service/internal/app/listing/usecases/create_listing"
	"github.com/avick-dev/bizmarket-service/internal/app/listing/usecases/deactivate_listing"
	"github.com/avick-dev/bizmarket-service/internal/app/listing/usecases/remove_favorite"
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
	"github.com/avick-dev/bizmarket-service/internal/pkg/clock"
	"github.com/avick-dev/bizmarket-service/internal/pkg/committer"
	"github.com/avick-dev/bizmarket-service/internal/pkg/token"
	"github.com/avick-dev/bizmarket-service/tests/testutil"
)

// Services holds all use cases and queries for E2E tests.
type Services struct {
	// Commands
	RegisterUser      *register_user.Interactor
	LoginUser         *login_user.Interactor
	CreateListing     *create_listing.Interactor
	DeactivateListing *deactivate_listing.Interactor
	AddFavorite       *add_favorite.Interactor
	RemoveFavorite    *remove_favorite.Interactor
	CreateOffer       *create_offer.Interactor
	AcceptOffer       *accept_offer.Interactor
	RejectOffer       *reject_offer.Interactor
	CounterOffer      *counter_offer.Interactor
	RespondCounter    *respond_counter.Interactor

	// Queries
	GetListing     *get_listing.Query
	ListListings   *list_listings.Query
	ListFavorites  *list_favorites.Query
	ReceivedOffers *received_offers.Query
	SentOffers     *sent_offers.Query
	ProductOffers  *product_offers.Query

	// Infrastructure
	Clock  clock.Clock
	Client *spanner.Client
}

// setupTest initializes all dependencies for E2E testing.
func setupTest(t *testing.T) (*Services, func()) {
	t.Helper()

	// Setup Spanner client with clean database
	client, cleanup := testutil.SetupSpannerTest(t)

	// Create infrastructure components
	clk := clock.NewRealClock()
	comm := committer.NewCommitter(client)
	tokens := token.NewManager("e2e-test-secret", time.Hour, "bizmarket-test", clk)

	// Create repositories
	users := userrepo.NewUserRepo(client)
	listings := listingrepo.NewListingRepo(client)
	favorites := listingrepo.NewFavoriteRepo(client)
	offers := offerrepo.NewOfferRepo(client)
	outbox := offerrepo.NewOutboxRepo(client)
	readModel := offerrepo.NewReadModel(client)

	services := &Services{
		RegisterUser:      register_user.NewInteractor(users, comm, clk),
		LoginUser:         login_user.NewInteractor(users, tokens),
		CreateListing:     create_listing.NewInteractor(users, listings, comm, clk),
		DeactivateListing: deactivate_listing.NewInteractor(listings, comm),
		AddFavorite:       add_favorite.NewInteractor(listings, favorites, comm),
		RemoveFavorite:    remove_favorite.NewInteractor(favorites, comm),
		CreateOffer:       create_offer.NewInteractor(users, listings, offers, outbox, comm, clk),
		AcceptOffer:       accept_offer.NewInteractor(users, offers, outbox, comm, clk),
		RejectOffer:       reject_offer.NewInteractor(offers, outbox, comm, clk),
		CounterOffer:      counter_offer.NewInteractor(offers, outbox, comm, clk),
		RespondCounter:    respond_counter.NewInteractor(users, offers, outbox, comm, clk),
		GetListing:        get_listing.NewQuery(listings),
		ListListings:      list_listings.NewQuery(listings),
		ListFavorites:     list_favorites.NewQuery(listings, favorites),
		ReceivedOffers:    received_offers.NewQuery(readModel, listings),
		SentOffers:        sent_offers.NewQuery(readModel, listings, users),
		ProductOffers:     product_offers.NewQuery(readModel, listings),
		Clock:             clk,
		Client:            client,
	}

	return services, cleanup
}

// ctx returns a context for testing.
func ctx() context.Context {
	return context.Background()
}
