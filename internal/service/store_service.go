package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"mathgame-service/internal/models"
	"mathgame-service/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var ErrItemNotFound = errors.New("item not found")

// AvatarView resolves the equipped item ids into full item documents for
// the client to render.
type AvatarView struct {
	Equipped map[string]*models.StoreItem `json:"equipped"`
	Currency int                          `json:"currency"`
}

type StoreService struct {
	UserRepo *repository.UserRepository
	ItemRepo *repository.StoreItemRepository
}

func NewStoreService(userRepo *repository.UserRepository, itemRepo *repository.StoreItemRepository) *StoreService {
	return &StoreService{UserRepo: userRepo, ItemRepo: itemRepo}
}

func (s *StoreService) ListItems(ctx context.Context) ([]models.StoreItem, error) {
	return s.ItemRepo.FindAll(ctx)
}

func (s *StoreService) Buy(ctx context.Context, userID, itemID string) (*models.User, error) {
	item, err := s.findItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	return s.updateUser(ctx, userID, func(u *models.User) error {
		return u.Buy(item)
	})
}

func (s *StoreService) Equip(ctx context.Context, userID, itemID string) (*models.User, error) {
	item, err := s.findItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	return s.updateUser(ctx, userID, func(u *models.User) error {
		return u.Equip(item)
	})
}

func (s *StoreService) Avatar(ctx context.Context, user *models.User) (*AvatarView, error) {
	view := &AvatarView{
		Equipped: make(map[string]*models.StoreItem),
		Currency: user.Currency,
	}
	slots := map[string]string{
		models.CategoryHat:     user.Avatar.Equipped.Hat,
		models.CategoryGlasses: user.Avatar.Equipped.Glasses,
		models.CategoryShirt:   user.Avatar.Equipped.Shirt,
	}
	for category, itemID := range slots {
		if itemID == "" {
			continue
		}
		item, err := s.ItemRepo.FindByID(ctx, itemID)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				// Item removed from the catalog after being equipped; leave
				// the slot empty rather than failing the whole read.
				continue
			}
			return nil, err
		}
		view.Equipped[category] = item
	}
	return view, nil
}

// EnsureDefaultCatalog seeds the store once when the collection is empty.
func (s *StoreService) EnsureDefaultCatalog(ctx context.Context) error {
	count, err := s.ItemRepo.Count(ctx)
	if err != nil || count > 0 {
		return err
	}
	items := []models.StoreItem{
		{ID: primitive.NewObjectID().Hex(), Name: "Wizard Hat", Category: models.CategoryHat, Price: 5, IconName: "wizardHat"},
		{ID: primitive.NewObjectID().Hex(), Name: "Cool Glasses", Category: models.CategoryGlasses, Price: 3, IconName: "coolGlasses"},
		{ID: primitive.NewObjectID().Hex(), Name: "Cape", Category: models.CategoryShirt, Price: 7, IconName: "cape"},
	}
	if err := s.ItemRepo.CreateMany(ctx, items); err != nil {
		return err
	}
	log.Printf("Seeded default store catalog (%d items)", len(items))
	return nil
}

func (s *StoreService) findItem(ctx context.Context, itemID string) (*models.StoreItem, error) {
	item, err := s.ItemRepo.FindByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("error loading item: %w", err)
	}
	return item, nil
}

func (s *StoreService) updateUser(ctx context.Context, userID string, mutate func(*models.User) error) (*models.User, error) {
	for attempt := 0; attempt < maxWriteRetries; attempt++ {
		user, err := s.UserRepo.FindByID(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("error loading user: %w", err)
		}
		if err := mutate(user); err != nil {
			return nil, err
		}
		ok, err := s.UserRepo.UpdateVersioned(ctx, user)
		if err != nil {
			return nil, fmt.Errorf("error saving user: %w", err)
		}
		if ok {
			return user, nil
		}
	}
	return nil, ErrUpdateConflict
}
