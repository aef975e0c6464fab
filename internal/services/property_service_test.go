package services

import (
	"context"
	"net/url"
	"testing"

	"easyrent-backend/internal/errors"
	"easyrent-backend/internal/models"
	"easyrent-backend/internal/transformers"
	"easyrent-backend/internal/validators"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newTestPropertyService(repo *fakePropertyRepo, users *fakeUserRepo) *PropertyService {
	return NewPropertyService(repo, users, noopCache{}, transformers.NewPropertyTransformer(), validators.NewPropertyValidator())
}

func testProperty(owner primitive.ObjectID) *models.Property {
	return &models.Property{
		Title:        "Two-room apartment near Osh bazaar",
		PropertyType: models.PropertyTypeApartment,
		Location: models.Location{
			Address: "Kievskaya 95",
			City:    "Bishkek",
		},
		Price: models.Price{
			Amount:        40000,
			Currency:      models.CurrencySOM,
			PaymentPeriod: models.PaymentPeriodMonthly,
		},
		Bedrooms:  2,
		Bathrooms: 1,
		Area:      54,
		Owner:     owner,
	}
}

func TestCreatePropertySetsOwnerAndAvailability(t *testing.T) {
	ctx := context.Background()
	repo := newFakePropertyRepo()
	users := newFakeUserRepo()
	svc := newTestPropertyService(repo, users)

	owner := primitive.NewObjectID()
	property := testProperty(primitive.NilObjectID)
	require.NoError(t, svc.CreateProperty(ctx, property, owner.Hex()))

	assert.Equal(t, owner, property.Owner)
	assert.True(t, property.Available)
	assert.False(t, property.ID.IsZero())

	_, err := svc.GetProperty(ctx, property.ID.Hex())
	require.NoError(t, err)
}

func TestCreatePropertyRejectsInvalidInput(t *testing.T) {
	ctx := context.Background()
	svc := newTestPropertyService(newFakePropertyRepo(), newFakeUserRepo())

	property := testProperty(primitive.NilObjectID)
	property.Title = ""
	assert.Error(t, svc.CreateProperty(ctx, property, primitive.NewObjectID().Hex()))

	assert.Error(t, svc.CreateProperty(ctx, testProperty(primitive.NilObjectID), "not-a-hex-id"))
}

func TestGetPropertyNotFound(t *testing.T) {
	svc := newTestPropertyService(newFakePropertyRepo(), newFakeUserRepo())
	_, err := svc.GetProperty(context.Background(), primitive.NewObjectID().Hex())
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodePropertyNotFound))
}

func TestGetPropertyEmbedsOwnerDetails(t *testing.T) {
	ctx := context.Background()
	repo := newFakePropertyRepo()
	users := newFakeUserRepo()
	svc := newTestPropertyService(repo, users)

	owner := &models.User{Name: "Nurlan", Email: "nurlan@example.com"}
	require.NoError(t, users.Create(ctx, owner))

	property := testProperty(primitive.NilObjectID)
	require.NoError(t, svc.CreateProperty(ctx, property, owner.ID.Hex()))

	response, err := svc.GetProperty(ctx, property.ID.Hex())
	require.NoError(t, err)
	require.NotNil(t, response.OwnerDetails)
	assert.Equal(t, "Nurlan", response.OwnerDetails.Name)
	assert.Equal(t, "nurlan@example.com", response.OwnerDetails.Email)
}

func TestUpdatePropertyOwnership(t *testing.T) {
	ctx := context.Background()
	repo := newFakePropertyRepo()
	svc := newTestPropertyService(repo, newFakeUserRepo())

	owner := primitive.NewObjectID()
	property := testProperty(primitive.NilObjectID)
	require.NoError(t, svc.CreateProperty(ctx, property, owner.Hex()))
	id := property.ID.Hex()

	updated := testProperty(owner)
	updated.Title = "Renovated two-room apartment"

	// a stranger cannot modify someone else's listing
	err := svc.UpdateProperty(ctx, id, updated, primitive.NewObjectID().Hex(), models.RoleTenant)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeNotAuthorized))

	// the owner can
	require.NoError(t, svc.UpdateProperty(ctx, id, updated, owner.Hex(), models.RoleLandlord))
	assert.Equal(t, "Renovated two-room apartment", repo.properties[id].Title)

	// an admin can too
	updated.Title = "Admin edit"
	require.NoError(t, svc.UpdateProperty(ctx, id, updated, primitive.NewObjectID().Hex(), models.RoleAdmin))
	assert.Equal(t, "Admin edit", repo.properties[id].Title)
	// ownership survives edits by others
	assert.Equal(t, owner, repo.properties[id].Owner)
}

func TestDeletePropertyOwnership(t *testing.T) {
	ctx := context.Background()
	repo := newFakePropertyRepo()
	svc := newTestPropertyService(repo, newFakeUserRepo())

	owner := primitive.NewObjectID()
	property := testProperty(primitive.NilObjectID)
	require.NoError(t, svc.CreateProperty(ctx, property, owner.Hex()))
	id := property.ID.Hex()

	err := svc.DeleteProperty(ctx, id, primitive.NewObjectID().Hex(), models.RoleTenant)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeNotAuthorized))

	require.NoError(t, svc.DeleteProperty(ctx, id, owner.Hex(), models.RoleLandlord))
	assert.Empty(t, repo.properties)

	err = svc.DeleteProperty(ctx, id, owner.Hex(), models.RoleLandlord)
	assert.True(t, errors.HasCode(err, errors.ErrCodePropertyNotFound))
}

func TestListPropertiesPagination(t *testing.T) {
	ctx := context.Background()
	repo := newFakePropertyRepo()
	svc := newTestPropertyService(repo, newFakeUserRepo())

	owner := primitive.NewObjectID()
	for i := 0; i < 5; i++ {
		require.NoError(t, svc.CreateProperty(ctx, testProperty(primitive.NilObjectID), owner.Hex()))
	}

	page, err := svc.ListProperties(ctx, 0, 2, "http://localhost/api/properties", url.Values{})
	require.NoError(t, err)
	assert.Len(t, page.Data, 2)
	assert.Equal(t, int64(5), page.Meta.Total)
	require.NotNil(t, page.Meta.Next)
	assert.Contains(t, *page.Meta.Next, "offset=2")
	assert.Nil(t, page.Meta.Prev)

	last, err := svc.ListProperties(ctx, 4, 2, "http://localhost/api/properties", url.Values{})
	require.NoError(t, err)
	assert.Len(t, last.Data, 1)
	assert.Nil(t, last.Meta.Next)
	require.NotNil(t, last.Meta.Prev)
	assert.Contains(t, *last.Meta.Prev, "offset=2")
}

func TestSearchEmptyCriteriaReturnsEverything(t *testing.T) {
	ctx := context.Background()
	repo := newFakePropertyRepo()
	users := newFakeUserRepo()
	search := NewPropertySearchService(repo, users, noopCache{}, transformers.NewPropertyTransformer())

	owner := primitive.NewObjectID()
	propertySvc := newTestPropertyService(repo, users)
	require.NoError(t, propertySvc.CreateProperty(ctx, testProperty(primitive.NilObjectID), owner.Hex()))
	require.NoError(t, propertySvc.CreateProperty(ctx, testProperty(primitive.NilObjectID), owner.Hex()))

	results, err := search.Search(ctx, url.Values{})
	require.NoError(t, err)
	assert.Len(t, results, 2)

	require.Len(t, repo.searched, 1)
	assert.True(t, repo.searched[0].IsEmpty())
}

func TestSearchRejectsMalformedParams(t *testing.T) {
	search := NewPropertySearchService(newFakePropertyRepo(), newFakeUserRepo(), noopCache{}, transformers.NewPropertyTransformer())

	params := url.Values{"minPrice": {"cheap"}}
	_, err := search.Search(context.Background(), params)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidParameter))
}
