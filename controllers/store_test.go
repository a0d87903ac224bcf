package controllers

import (
	"context"
	"errors"
	"sync"

	"github.com/princinho/sellerdashboard/database"
	"github.com/princinho/sellerdashboard/models"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// memoryStore mirrors SellerCollection semantics: whole-document reads and
// replaces with no version check.
type memoryStore struct {
	mu      sync.Mutex
	sellers map[bson.ObjectID]models.Seller

	// afterRead, if set, runs after FindByID has taken its copy.
	afterRead func()
	failWith  error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{sellers: map[bson.ObjectID]models.Seller{}}
}

func cloneSeller(s models.Seller) models.Seller {
	out := s
	out.Products = make([]models.Product, len(s.Products))
	for i, p := range s.Products {
		p.Images = append([]string{}, p.Images...)
		out.Products[i] = p
	}
	if s.StoreInfo != nil {
		info := *s.StoreInfo
		out.StoreInfo = &info
	}
	return out
}

func (m *memoryStore) Insert(_ context.Context, seller *models.Seller) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return m.failWith
	}
	if seller.ID.IsZero() {
		seller.ID = bson.NewObjectID()
	}
	seller.Normalize()
	m.sellers[seller.ID] = cloneSeller(*seller)
	return nil
}

func (m *memoryStore) FindByID(_ context.Context, id string) (*models.Seller, error) {
	oid, err := database.ParseSellerID(id)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	if m.failWith != nil {
		m.mu.Unlock()
		return nil, m.failWith
	}
	stored, ok := m.sellers[oid]
	m.mu.Unlock()
	if !ok {
		return nil, database.ErrSellerNotFound
	}

	out := cloneSeller(stored)
	if m.afterRead != nil {
		m.afterRead()
	}
	return &out, nil
}

func (m *memoryStore) Save(_ context.Context, seller *models.Seller) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return m.failWith
	}
	if _, ok := m.sellers[seller.ID]; !ok {
		return database.ErrSellerNotFound
	}
	m.sellers[seller.ID] = cloneSeller(*seller)
	return nil
}

func (m *memoryStore) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sellers)
}

func (m *memoryStore) get(id bson.ObjectID) (models.Seller, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sellers[id]
	return cloneSeller(s), ok
}

func (m *memoryStore) only() models.Seller {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, s := range m.sellers {
		return cloneSeller(s)
	}
	panic(errors.New("store is empty"))
}
