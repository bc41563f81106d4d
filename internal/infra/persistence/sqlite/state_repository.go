package sqlite

import (
	"context"
	"encoding/json"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Persisted state keys. Each key holds a single JSON document.
const (
	keyCart     = "cart"
	keyCustomer = "customer"
	keyToken    = "token"
	keyProfile  = "user"
)

// loadValue reads and unmarshals the snapshot stored under key.
// A missing row maps to repository.ErrStateNotFound.
func loadValue(ctx context.Context, db *gorm.DB, key string, out any) error {
	var row model.StateModel
	if err := db.WithContext(ctx).Where("key = ?", key).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return repository.ErrStateNotFound
		}

		return errors.Wrapf(err, "failed to load state %q", key)
	}

	if err := json.Unmarshal([]byte(row.Value), out); err != nil {
		return errors.Wrapf(err, "malformed state %q", key)
	}

	return nil
}

// saveValue marshals value and upserts it under key.
func saveValue(ctx context.Context, db *gorm.DB, key string, value any) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return errors.Wrapf(err, "failed to encode state %q", key)
	}

	row := model.StateModel{Key: key, Value: string(payload)}
	err = db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&row).Error
	if err != nil {
		return errors.Wrapf(err, "failed to save state %q", key)
	}

	return nil
}

// deleteValue removes the snapshot stored under key. Deleting an absent key
// is not an error.
func deleteValue(ctx context.Context, db *gorm.DB, key string) error {
	err := db.WithContext(ctx).Where("key = ?", key).Delete(&model.StateModel{}).Error
	if err != nil {
		return errors.Wrapf(err, "failed to delete state %q", key)
	}

	return nil
}

// cartRepository implements the domain CartRepository over the state table.
type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepository{db: db}
}

// Load retrieves the persisted cart snapshot.
func (repo *cartRepository) Load(ctx context.Context) (entity.Cart, error) {
	var items []entity.LineItem
	if err := loadValue(ctx, repo.db, keyCart, &items); err != nil {
		return entity.Cart{}, err
	}

	return entity.Cart{Items: items}, nil
}

// Save replaces the persisted cart snapshot. The stored document is the
// item list itself.
func (repo *cartRepository) Save(ctx context.Context, cart entity.Cart) error {
	items := cart.Items
	if items == nil {
		items = []entity.LineItem{}
	}

	return saveValue(ctx, repo.db, keyCart, items)
}

// customerRepository implements the domain CustomerRepository.
type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository is the constructor for customerRepository.
func NewCustomerRepository(db *gorm.DB) repository.CustomerRepository {
	return &customerRepository{db: db}
}

// Load retrieves the last persisted delivery details.
func (repo *customerRepository) Load(ctx context.Context) (entity.DeliveryDetails, error) {
	var details entity.DeliveryDetails
	if err := loadValue(ctx, repo.db, keyCustomer, &details); err != nil {
		return entity.DeliveryDetails{}, err
	}

	return details, nil
}

// Save overwrites the persisted delivery details.
func (repo *customerRepository) Save(ctx context.Context, details entity.DeliveryDetails) error {
	return saveValue(ctx, repo.db, keyCustomer, details)
}

// sessionRepository implements the domain SessionRepository. Token and
// profile live under separate keys but every write and clear touches both
// inside one transaction, so a half-written session is never observable.
type sessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository is the constructor for sessionRepository.
func NewSessionRepository(db *gorm.DB) repository.SessionRepository {
	return &sessionRepository{db: db}
}

// Load retrieves the persisted session. Either key missing means no session.
func (repo *sessionRepository) Load(ctx context.Context) (*entity.Session, error) {
	var token string
	if err := loadValue(ctx, repo.db, keyToken, &token); err != nil {
		return nil, err
	}

	var profile entity.Profile
	if err := loadValue(ctx, repo.db, keyProfile, &profile); err != nil {
		return nil, err
	}

	return &entity.Session{Token: token, Profile: profile}, nil
}

// Save persists token and profile atomically.
func (repo *sessionRepository) Save(ctx context.Context, session *entity.Session) error {
	return repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := saveValue(ctx, tx, keyToken, session.Token); err != nil {
			return err
		}

		return saveValue(ctx, tx, keyProfile, session.Profile)
	})
}

// Clear removes token and profile together.
func (repo *sessionRepository) Clear(ctx context.Context) error {
	return repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := deleteValue(ctx, tx, keyToken); err != nil {
			return err
		}

		return deleteValue(ctx, tx, keyProfile)
	})
}
