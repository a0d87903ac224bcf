package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/princinho/sellerdashboard/models"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

var (
	ErrSellerNotFound = errors.New("seller not found")
	ErrMalformedID    = errors.New("malformed seller id")
)

// ParseSellerID converts a path id into an ObjectID.
func ParseSellerID(id string) (bson.ObjectID, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return bson.NilObjectID, fmt.Errorf("%w %q: %v", ErrMalformedID, id, err)
	}
	return oid, nil
}

// documents is the part of a collection SellerCollection relies on.
type documents interface {
	InsertOne(ctx context.Context, doc any) error
	// FindOne decodes the first match into out, or returns mongo.ErrNoDocuments.
	FindOne(ctx context.Context, filter, out any) error
	ReplaceOne(ctx context.Context, filter, doc any) (matched int64, err error)
}

type mongoDocuments struct {
	col *mongo.Collection
}

func (m mongoDocuments) InsertOne(ctx context.Context, doc any) error {
	_, err := m.col.InsertOne(ctx, doc)
	return err
}

func (m mongoDocuments) FindOne(ctx context.Context, filter, out any) error {
	return m.col.FindOne(ctx, filter).Decode(out)
}

func (m mongoDocuments) ReplaceOne(ctx context.Context, filter, doc any) (int64, error) {
	res, err := m.col.ReplaceOne(ctx, filter, doc)
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}

// SellerCollection stores Seller documents, one per seller, with products
// embedded.
type SellerCollection struct {
	docs documents
}

func NewSellerCollection(db *mongo.Database, name string) *SellerCollection {
	return &SellerCollection{docs: mongoDocuments{col: db.Collection(name)}}
}

func (s *SellerCollection) Insert(ctx context.Context, seller *models.Seller) error {
	if seller.ID.IsZero() {
		seller.ID = bson.NewObjectID()
	}
	seller.Normalize()
	if err := s.docs.InsertOne(ctx, seller); err != nil {
		return fmt.Errorf("insert seller: %w", err)
	}
	return nil
}

func (s *SellerCollection) FindByID(ctx context.Context, id string) (*models.Seller, error) {
	oid, err := ParseSellerID(id)
	if err != nil {
		return nil, err
	}

	var seller models.Seller
	if err := s.docs.FindOne(ctx, bson.M{"_id": oid}, &seller); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrSellerNotFound
		}
		return nil, fmt.Errorf("find seller %s: %w", id, err)
	}
	seller.Normalize()
	return &seller, nil
}

// Save replaces the whole stored document with seller. There is no version
// check, so a concurrent Save of a stale copy overwrites this one.
func (s *SellerCollection) Save(ctx context.Context, seller *models.Seller) error {
	seller.Normalize()
	matched, err := s.docs.ReplaceOne(ctx, bson.M{"_id": seller.ID}, seller)
	if err != nil {
		return fmt.Errorf("save seller %s: %w", seller.ID.Hex(), err)
	}
	if matched == 0 {
		return ErrSellerNotFound
	}
	return nil
}
