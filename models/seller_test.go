package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestNewSellerStartsWithEmptyInventory(t *testing.T) {
	s := NewSeller("a@b.com", "Shop", "x")

	assert.Equal(t, "a@b.com", s.Email)
	assert.Equal(t, "Shop", s.BusinessName)
	assert.Equal(t, "x", s.Password)
	assert.Nil(t, s.StoreInfo)
	require.NotNil(t, s.Products)
	assert.Empty(t, s.Products)
}

func TestAppendProductKeepsOrderAndDuplicates(t *testing.T) {
	s := NewSeller("a@b.com", "Shop", "x")
	s.AppendProduct(Product{ProductName: "first"})
	s.AppendProduct(Product{ProductName: "second"})
	s.AppendProduct(Product{ProductName: "first"})

	require.Len(t, s.Products, 3)
	assert.Equal(t, "first", s.Products[0].ProductName)
	assert.Equal(t, "second", s.Products[1].ProductName)
	assert.Equal(t, "first", s.Products[2].ProductName)
	assert.NotNil(t, s.Products[0].Images)
}

func TestSellerJSONShape(t *testing.T) {
	mrp := 100.0
	s := NewSeller("a@b.com", "Shop", "x")
	s.ID = bson.NewObjectID()
	s.AppendProduct(Product{Category: "Food", MRP: &mrp})

	raw, err := json.Marshal(s)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(raw, &doc))

	assert.Equal(t, s.ID.Hex(), doc["_id"])
	assert.Equal(t, "x", doc["password"])
	assert.NotContains(t, doc, "storeInfo")

	products := doc["products"].([]any)
	require.Len(t, products, 1)
	p := products[0].(map[string]any)
	assert.Equal(t, "Food", p["category"])
	assert.Equal(t, 100.0, p["MRP"])
	assert.NotContains(t, p, "SP")
	assert.NotContains(t, p, "QTY")
	assert.Equal(t, []any{}, p["images"])
}

func TestNormalizeFillsNilSlices(t *testing.T) {
	s := &Seller{Products: nil}
	s.Normalize()
	assert.NotNil(t, s.Products)

	s = &Seller{Products: []Product{{ProductName: "p"}}}
	s.Normalize()
	assert.NotNil(t, s.Products[0].Images)
}

func TestSellerBSONShape(t *testing.T) {
	mrp := 100.0
	s := NewSeller("a@b.com", "Shop", "x")
	s.ID = bson.NewObjectID()
	s.AppendProduct(Product{ProductName: "Chips", MRP: &mrp, Images: []string{"a.png"}})
	s.AppendProduct(Product{})

	raw, err := bson.Marshal(s)
	require.NoError(t, err)
	doc := bson.Raw(raw)

	assert.Equal(t, bson.TypeObjectID, doc.Lookup("_id").Type)
	assert.Equal(t, "x", doc.Lookup("password").StringValue())
	_, err = doc.LookupErr("storeInfo")
	assert.Error(t, err)

	require.Equal(t, bson.TypeArray, doc.Lookup("products").Type)
	products, err := doc.Lookup("products").Array().Values()
	require.NoError(t, err)
	require.Len(t, products, 2)

	first := products[0].Document()
	assert.Equal(t, 100.0, first.Lookup("MRP").Double())
	for _, key := range []string{"_id", "mrp", "SP", "QTY", "category"} {
		_, err := first.LookupErr(key)
		assert.Error(t, err, key)
	}
	assert.Equal(t, bson.TypeArray, first.Lookup("images").Type)

	second := products[1].Document()
	assert.Equal(t, bson.TypeArray, second.Lookup("images").Type)
	_, err = second.LookupErr("productName")
	assert.Error(t, err)

	var back Seller
	require.NoError(t, bson.Unmarshal(raw, &back))
	back.Normalize()
	assert.Equal(t, *s, back)
}

func TestUnnormalizedSellerMarshalsNullProducts(t *testing.T) {
	s := &Seller{ID: bson.NewObjectID(), Email: "a@b.com"}

	raw, err := bson.Marshal(s)
	require.NoError(t, err)
	assert.Equal(t, bson.TypeNull, bson.Raw(raw).Lookup("products").Type)

	s.Normalize()
	raw, err = bson.Marshal(s)
	require.NoError(t, err)
	assert.Equal(t, bson.TypeArray, bson.Raw(raw).Lookup("products").Type)
}

func TestDecodedSellerWithoutProductsNormalizesToEmpty(t *testing.T) {
	noImages := bson.A{bson.D{{Key: "productName", Value: "p"}}}
	for name, doc := range map[string]bson.D{
		"missing":   {{Key: "_id", Value: bson.NewObjectID()}, {Key: "email", Value: "a@b.com"}},
		"null":      {{Key: "_id", Value: bson.NewObjectID()}, {Key: "products", Value: nil}},
		"no images": {{Key: "_id", Value: bson.NewObjectID()}, {Key: "products", Value: noImages}},
	} {
		t.Run(name, func(t *testing.T) {
			raw, err := bson.Marshal(doc)
			require.NoError(t, err)

			var s Seller
			require.NoError(t, bson.Unmarshal(raw, &s))
			s.Normalize()

			require.NotNil(t, s.Products)
			for _, p := range s.Products {
				assert.Equal(t, []string{}, p.Images)
			}
		})
	}
}
