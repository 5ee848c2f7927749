package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"

	"github.com/avick-dev/bizmarket-service/internal/app/listing/contracts"
	"github.com/avick-dev/bizmarket-service/internal/app/listing/domain"
	offercontracts "github.com/avick-dev/bizmarket-service/internal/app/offer/contracts"
	offerdomain "github.com/avick-dev/bizmarket-service/internal/app/offer/domain"
	"github.com/avick-dev/bizmarket-service/internal/models/m_listing"
	"github.com/avick-dev/bizmarket-service/internal/pkg/query"
)

var listingColumns = []string{
	m_listing.ProductID,
	m_listing.SellerID,
	m_listing.SellerName,
	m_listing.SellerEmail,
	m_listing.Name,
	m_listing.Description,
	m_listing.Category,
	m_listing.Revenue,
	m_listing.AskValue,
	m_listing.Profit,
	m_listing.Location,
	m_listing.Image,
	m_listing.Documents,
	m_listing.IsActive,
	m_listing.CreatedAt,
}

// ListingRepo implements ListingRepository for Spanner. It also serves as
// the listing directory for the offer context.
type ListingRepo struct {
	client *spanner.Client
	model  *m_listing.Model
}

// NewListingRepo creates a new ListingRepo.
func NewListingRepo(client *spanner.Client) *ListingRepo {
	return &ListingRepo{
		client: client,
		model:  m_listing.NewModel(),
	}
}

// InsertMut creates a mutation for inserting a new listing.
func (r *ListingRepo) InsertMut(listing *domain.Listing) (*spanner.Mutation, error) {
	fin := listing.Financials()
	seller := listing.Seller()
	return r.model.InsertMut(&m_listing.Data{
		ProductID:   listing.ID(),
		SellerID:    seller.ID,
		SellerName:  seller.Name,
		SellerEmail: seller.Email,
		Name:        listing.Name(),
		Description: nullString(listing.Description()),
		Category:    listing.Category(),
		Revenue:     nullFloat(fin.Revenue),
		AskValue:    nullFloat(fin.AskValue),
		Profit:      nullFloat(fin.Profit),
		Location:    nullString(listing.Location()),
		Image:       nullString(listing.Image()),
		Documents:   listing.Documents(),
		IsActive:    listing.IsActive(),
	}), nil
}

// DeactivateMut creates a mutation that takes a listing off the market.
func (r *ListingRepo) DeactivateMut(listing *domain.Listing) *spanner.Mutation {
	return r.model.UpdateMut(listing.ID(), map[string]interface{}{
		m_listing.IsActive: listing.IsActive(),
	})
}

// GetByID retrieves a listing by primary key, active or not.
func (r *ListingRepo) GetByID(ctx context.Context, productID string) (*domain.Listing, error) {
	row, err := r.client.Single().ReadRow(ctx, m_listing.TableName, spanner.Key{productID}, listingColumns)
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, domain.ErrListingNotFound
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrUnavailable, err)
	}
	return rowToListing(row)
}

// List retrieves active listings matching the filter, newest first.
func (r *ListingRepo) List(ctx context.Context, filter contracts.ListFilter) ([]*domain.Listing, error) {
	builder := query.From(m_listing.TableName).
		Select(listingColumns...).
		Where(query.Eq(m_listing.IsActive, true))

	if filter.Category != "" {
		builder = builder.Where(query.Eq(m_listing.Category, filter.Category))
	}
	if filter.Location != "" {
		builder = builder.Where(query.Eq(m_listing.Location, filter.Location))
	}
	if filter.Search != "" {
		builder = builder.Where(query.ContainsFold(m_listing.Name, filter.Search))
	}

	stmt := builder.OrderBy(m_listing.CreatedAt, query.Desc).Build()
	return r.queryListings(ctx, stmt)
}

// ListByIDs retrieves listings by primary keys, preserving only rows that
// still exist. Order follows the storage key order, not the input order.
func (r *ListingRepo) ListByIDs(ctx context.Context, productIDs []string) ([]*domain.Listing, error) {
	if len(productIDs) == 0 {
		return nil, nil
	}

	keys := make([]spanner.Key, 0, len(productIDs))
	for _, id := range productIDs {
		keys = append(keys, spanner.Key{id})
	}

	iter := r.client.Single().Read(ctx, m_listing.TableName, spanner.KeySetFromKeys(keys...), listingColumns)
	defer iter.Stop()

	var listings []*domain.Listing
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrUnavailable, err)
		}
		listing, err := rowToListing(row)
		if err != nil {
			return nil, err
		}
		listings = append(listings, listing)
	}
	return listings, nil
}

// GetActiveProduct implements the offer context's ListingDirectory.
// Inactive listings are reported as not found.
func (r *ListingRepo) GetActiveProduct(ctx context.Context, productID string) (*offercontracts.ListingRecord, error) {
	listing, err := r.GetByID(ctx, productID)
	if err != nil {
		if err == domain.ErrListingNotFound {
			return nil, offerdomain.ErrProductNotFound
		}
		return nil, err
	}
	if !listing.IsActive() {
		return nil, offerdomain.ErrProductNotFound
	}
	return &offercontracts.ListingRecord{
		ProductID: listing.ID(),
		SellerID:  listing.Seller().ID,
		Name:      listing.Name(),
	}, nil
}

func (r *ListingRepo) queryListings(ctx context.Context, stmt spanner.Statement) ([]*domain.Listing, error) {
	iter := r.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	var listings []*domain.Listing
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrUnavailable, err)
		}
		listing, err := rowToListing(row)
		if err != nil {
			return nil, err
		}
		listings = append(listings, listing)
	}
	return listings, nil
}

func rowToListing(row *spanner.Row) (*domain.Listing, error) {
	var data m_listing.Data
	if err := row.ToStruct(&data); err != nil {
		return nil, fmt.Errorf("failed to parse listing: %w", err)
	}
	return domain.ReconstructListing(
		data.ProductID,
		domain.SellerSnapshot{ID: data.SellerID, Name: data.SellerName, Email: data.SellerEmail},
		data.Name,
		data.Description.StringVal,
		data.Category,
		domain.Financials{
			Revenue:  floatPtr(data.Revenue),
			AskValue: floatPtr(data.AskValue),
			Profit:   floatPtr(data.Profit),
		},
		data.Location.StringVal,
		data.Image.StringVal,
		data.Documents,
		data.IsActive,
		data.CreatedAt,
	), nil
}

func nullString(s string) spanner.NullString {
	return spanner.NullString{StringVal: s, Valid: s != ""}
}

func nullFloat(f *float64) spanner.NullFloat64 {
	if f == nil {
		return spanner.NullFloat64{}
	}
	return spanner.NullFloat64{Float64: *f, Valid: true}
}

func floatPtr(f spanner.NullFloat64) *float64 {
	if !f.Valid {
		return nil
	}
	v := f.Float64
	return &v
}
