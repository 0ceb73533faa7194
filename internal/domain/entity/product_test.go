package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategory_IsValid(t *testing.T) {
	for _, category := range []Category{
		CategoryPainting, CategoryPottery, CategorySculpture,
		CategoryHandloom, CategoryWoodcraft, CategoryOther,
	} {
		assert.True(t, category.IsValid(), category.String())
	}

	assert.False(t, Category("Ceramics").IsValid())
	assert.False(t, Category("painting").IsValid(), "categories are case-sensitive")
}

func TestProduct_Available(t *testing.T) {
	assert.True(t, (&Product{InStock: true, QuantityAvailable: 3}).Available())
	assert.False(t, (&Product{InStock: true, QuantityAvailable: 0}).Available())
	assert.False(t, (&Product{InStock: false, QuantityAvailable: 3}).Available())
}

func TestUser_Role(t *testing.T) {
	buyer := &User{BuyerProfile: &BuyerProfile{}}
	artist := &User{ArtistProfile: &ArtistProfile{ArtistName: "Meera"}}

	assert.Equal(t, RoleBuyer, buyer.Role())
	assert.Equal(t, RoleArtist, artist.Role())
	assert.False(t, buyer.IsArtist())
	assert.True(t, artist.IsArtist())
	assert.Equal(t, []string{"artist"}, artist.Roles().ToStrings())
}
