package repo

import (
	"errors"
	"sync"

	"authd/app/models"

	"gorm.io/gorm"
)

var (
	ErrConflict = errors.New("username already taken")
	ErrNotFound = errors.New("account not found")
)

// AccountRepository owns the account collection. The mutex serializes
// check-then-create so two concurrent registrations for the same username
// can never both succeed; the unique index is the backstop.
type AccountRepository struct {
	db *gorm.DB
	mu sync.Mutex
}

func NewAccountRepository(db *gorm.DB) *AccountRepository { return &AccountRepository{db: db} }

func (r *AccountRepository) Create(a *models.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Account{}).Where("username = ?", a.Username).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrConflict
		}
		return tx.Create(a).Error
	})
}

func (r *AccountRepository) FindByUsername(username string) (*models.Account, error) {
	var a models.Account
	if err := r.db.Where("username = ?", username).First(&a).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *AccountRepository) FindByID(id uint) (*models.Account, error) {
	var a models.Account
	if err := r.db.First(&a, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *AccountRepository) ListAll() ([]models.Account, error) {
	var accounts []models.Account
	if err := r.db.Order("id asc").Find(&accounts).Error; err != nil {
		return nil, err
	}
	return accounts, nil
}

func (r *AccountRepository) CountByUsername(username string) (int64, error) {
	var count int64
	return count, r.db.Model(&models.Account{}).Where("username = ?", username).Count(&count).Error
}
