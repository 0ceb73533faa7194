package handler

import (
	"time"

	"rangriti/internal/domain/entity"
	"rangriti/internal/usecase"
)

// The view types are the JSON shapes handlers return. Entities stay free of
// transport tags; the mapping lives here.

type userView struct {
	ID            string             `json:"id"`
	Email         string             `json:"email"`
	Name          string             `json:"name"`
	Role          string             `json:"role"`
	BuyerProfile  *buyerProfileView  `json:"buyerProfile,omitempty"`
	ArtistProfile *artistProfileView `json:"artistProfile,omitempty"`
	CreatedAt     time.Time          `json:"createdAt"`
}

type buyerProfileView struct {
	ShippingAddress string `json:"shippingAddress"`
}

type artistProfileView struct {
	ArtistName        string   `json:"artistName"`
	Specialization    string   `json:"specialization"`
	City              string   `json:"city"`
	PortfolioURL      string   `json:"portfolioUrl"`
	Bio               string   `json:"bio"`
	ContactNumber     string   `json:"contactNumber"`
	Instagram         string   `json:"instagram"`
	Facebook          string   `json:"facebook"`
	Twitter           string   `json:"twitter"`
	ProfilePictureURL string   `json:"profilePictureUrl"`
	ArtSampleURLs     []string `json:"artSampleUrls"`
}

func toUserView(u *entity.User) *userView {
	if u == nil {
		return nil
	}

	view := &userView{
		ID:        u.ID.String(),
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role().String(),
		CreatedAt: u.CreatedAt,
	}

	if u.BuyerProfile != nil {
		view.BuyerProfile = &buyerProfileView{
			ShippingAddress: u.BuyerProfile.ShippingAddress,
		}
	}

	if u.ArtistProfile != nil {
		view.ArtistProfile = &artistProfileView{
			ArtistName:        u.ArtistProfile.ArtistName,
			Specialization:    u.ArtistProfile.Specialization,
			City:              u.ArtistProfile.City,
			PortfolioURL:      u.ArtistProfile.PortfolioURL,
			Bio:               u.ArtistProfile.Bio,
			ContactNumber:     u.ArtistProfile.ContactNumber,
			Instagram:         u.ArtistProfile.Instagram,
			Facebook:          u.ArtistProfile.Facebook,
			Twitter:           u.ArtistProfile.Twitter,
			ProfilePictureURL: u.ArtistProfile.ProfilePictureURL,
			ArtSampleURLs:     u.ArtistProfile.ArtSampleURLs,
		}
	}

	return view
}

type productView struct {
	ID                string    `json:"id"`
	ArtistID          string    `json:"artistId"`
	ArtistName        string    `json:"artistName"`
	Name              string    `json:"name"`
	Category          string    `json:"category"`
	Description       string    `json:"description"`
	Images            []string  `json:"images"`
	Price             float64   `json:"price"`
	Rating            float64   `json:"rating"`
	ReviewsCount      int       `json:"reviewsCount"`
	InStock           bool      `json:"inStock"`
	QuantityAvailable int       `json:"quantityAvailable"`
	Material          string    `json:"material"`
	Size              string    `json:"size"`
	OriginRegion      string    `json:"originRegion"`
	Tags              []string  `json:"tags"`
	CreatedAt         time.Time `json:"createdAt"`
}

func toProductView(p *entity.Product) *productView {
	if p == nil {
		return nil
	}

	return &productView{
		ID:                p.ID.String(),
		ArtistID:          p.ArtistID.String(),
		ArtistName:        p.ArtistName,
		Name:              p.Name,
		Category:          p.Category.String(),
		Description:       p.Description,
		Images:            p.Images,
		Price:             p.Price,
		Rating:            p.Rating,
		ReviewsCount:      p.ReviewsCount,
		InStock:           p.InStock,
		QuantityAvailable: p.QuantityAvailable,
		Material:          p.Material,
		Size:              p.Size,
		OriginRegion:      p.OriginRegion,
		Tags:              p.Tags,
		CreatedAt:         p.CreatedAt,
	}
}

func toProductViews(products []*entity.Product) []*productView {
	views := make([]*productView, 0, len(products))
	for _, p := range products {
		views = append(views, toProductView(p))
	}

	return views
}

type pageView struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
}

type catalogPageView struct {
	Products []*productView `json:"products"`
	pageView
}

type cartLineView struct {
	ProductID      string  `json:"productId"`
	ProductName    string  `json:"productName"`
	ImageURL       string  `json:"imageUrl"`
	Quantity       int     `json:"quantity"`
	PriceAtAddTime float64 `json:"priceAtAddTime"`
	LineTotal      float64 `json:"lineTotal"`
}

type cartPageView struct {
	Items  []*cartLineView `json:"items"`
	Totals entity.Totals   `json:"totals"`
}

func toCartView(cart *usecase.CartView) *cartPageView {
	items := make([]*cartLineView, 0, len(cart.Lines))
	for _, line := range cart.Lines {
		items = append(items, &cartLineView{
			ProductID:      line.ProductID.String(),
			ProductName:    line.ProductName,
			ImageURL:       line.ImageURL,
			Quantity:       line.Quantity,
			PriceAtAddTime: line.PriceAtAddTime,
			LineTotal:      line.LineTotal(),
		})
	}

	return &cartPageView{Items: items, Totals: cart.Totals}
}

type orderView struct {
	ID              string    `json:"id"`
	ProductID       string    `json:"productId"`
	ProductName     string    `json:"productName"`
	ArtistID        string    `json:"artistId"`
	ArtistName      string    `json:"artistName"`
	Quantity        int       `json:"quantity"`
	PriceAtPurchase float64   `json:"priceAtPurchase"`
	Total           float64   `json:"total"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
}

func toOrderView(o *entity.Order) *orderView {
	if o == nil {
		return nil
	}

	return &orderView{
		ID:              o.ID.String(),
		ProductID:       o.ProductID.String(),
		ProductName:     o.ProductName,
		ArtistID:        o.ArtistID.String(),
		ArtistName:      o.ArtistName,
		Quantity:        o.Quantity,
		PriceAtPurchase: o.PriceAtPurchase,
		Total:           o.Total(),
		Status:          o.Status.String(),
		CreatedAt:       o.CreatedAt,
	}
}

func toOrderViews(orders []*entity.Order) []*orderView {
	views := make([]*orderView, 0, len(orders))
	for _, o := range orders {
		views = append(views, toOrderView(o))
	}

	return views
}

type orderPageView struct {
	Orders []*orderView `json:"orders"`
	pageView
}

type workshopView struct {
	ID              string    `json:"id"`
	ArtistID        string    `json:"artistId"`
	ArtistName      string    `json:"artistName"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Date            string    `json:"date"`
	StartTime       string    `json:"startTime"`
	EndTime         string    `json:"endTime"`
	Location        string    `json:"location"`
	MaxParticipants int       `json:"maxParticipants"`
	Price           float64   `json:"price"`
	Category        string    `json:"category"`
	CreatedAt       time.Time `json:"createdAt"`
}

func toWorkshopView(w *entity.Workshop) *workshopView {
	if w == nil {
		return nil
	}

	return &workshopView{
		ID:              w.ID.String(),
		ArtistID:        w.ArtistID.String(),
		ArtistName:      w.ArtistName,
		Title:           w.Title,
		Description:     w.Description,
		Date:            w.Date.Format("2006-01-02"),
		StartTime:       w.StartTime,
		EndTime:         w.EndTime,
		Location:        w.Location,
		MaxParticipants: w.MaxParticipants,
		Price:           w.Price,
		Category:        w.Category,
		CreatedAt:       w.CreatedAt,
	}
}
