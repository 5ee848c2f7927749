package contracts

import (
	"time"

	"github.com/avick-dev/bizmarket-service/internal/app/listing/domain"
)

// ListingView is the public projection of a listing. The seller's email is
// never part of it; contact details are only disclosed through an accepted
// offer.
type ListingView struct {
	ProductID   string    `json:"product_id"`
	SellerID    string    `json:"seller_id"`
	SellerName  string    `json:"seller_name"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Category    string    `json:"category"`
	Revenue     *float64  `json:"revenue,omitempty"`
	AskValue    *float64  `json:"ask_value,omitempty"`
	Profit      *float64  `json:"profit,omitempty"`
	Location    string    `json:"location,omitempty"`
	Image       string    `json:"image,omitempty"`
	Documents   []string  `json:"documents,omitempty"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

// ViewOf projects a listing into its public view.
func ViewOf(l *domain.Listing) *ListingView {
	fin := l.Financials()
	return &ListingView{
		ProductID:   l.ID(),
		SellerID:    l.Seller().ID,
		SellerName:  l.Seller().Name,
		Name:        l.Name(),
		Description: l.Description(),
		Category:    l.Category(),
		Revenue:     fin.Revenue,
		AskValue:    fin.AskValue,
		Profit:      fin.Profit,
		Location:    l.Location(),
		Image:       l.Image(),
		Documents:   l.Documents(),
		IsActive:    l.IsActive(),
		CreatedAt:   l.CreatedAt(),
	}
}
