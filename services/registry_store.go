// services/registry_store.go
package services

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"token-analytics-system/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RegistryStore is the early-access registry. Upsert is keyed on the wallet
// address: a new wallet creates a row, a repeat connection only re-asserts
// has_requested_access and fills in the email when one is supplied.
// No delete operation exists on purpose.
type RegistryStore interface {
	// Upsert returns the resulting record and whether it was newly created.
	Upsert(walletAddress string, email string) (models.EarlyAccessUser, bool, error)
	// FindByWallet returns (record, found, error); an unknown wallet is not an error.
	FindByWallet(walletAddress string) (models.EarlyAccessUser, bool, error)
	// ListAll returns every record, joined_at descending, insertion order on ties.
	ListAll() ([]models.EarlyAccessUser, error)
}

// --- Postgres-backed store ---

type GormRegistryStore struct {
	DB *gorm.DB
}

func NewGormRegistryStore(db *gorm.DB) *GormRegistryStore {
	return &GormRegistryStore{DB: db}
}

func (s *GormRegistryStore) Upsert(walletAddress string, email string) (models.EarlyAccessUser, bool, error) {
	user := models.EarlyAccessUser{
		WalletAddress:      walletAddress,
		HasRequestedAccess: true,
		JoinedAt:           time.Now().UTC(),
	}
	if email != "" {
		user.Email = &email
	}

	// Insert through the unique index on wallet_address. DoNothing on
	// conflict closes the check-then-act race: two concurrent first-time
	// connections of the same wallet cannot both create a row.
	res := s.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "wallet_address"}},
		DoNothing: true,
	}).Create(&user)
	if res.Error != nil {
		return models.EarlyAccessUser{}, false, fmt.Errorf("failed to insert early access user: %w", res.Error)
	}
	if res.RowsAffected == 1 {
		return user, true, nil
	}

	// Conflict path: the wallet already exists. Only has_requested_access
	// and (when supplied) email may change; id and joined_at stay frozen.
	var existing models.EarlyAccessUser
	if err := s.DB.Where("wallet_address = ?", walletAddress).First(&existing).Error; err != nil {
		return models.EarlyAccessUser{}, false, fmt.Errorf("failed to load existing early access user: %w", err)
	}

	updates := map[string]interface{}{"has_requested_access": true}
	if email != "" {
		updates["email"] = email
	}
	if err := s.DB.Model(&existing).Updates(updates).Error; err != nil {
		return models.EarlyAccessUser{}, false, fmt.Errorf("failed to update early access user: %w", err)
	}

	existing.HasRequestedAccess = true
	if email != "" {
		existing.Email = &email
	}
	return existing, false, nil
}

func (s *GormRegistryStore) FindByWallet(walletAddress string) (models.EarlyAccessUser, bool, error) {
	var user models.EarlyAccessUser
	if err := s.DB.Where("wallet_address = ?", walletAddress).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return user, false, nil
		}
		return user, false, err
	}
	return user, true, nil
}

func (s *GormRegistryStore) ListAll() ([]models.EarlyAccessUser, error) {
	var users []models.EarlyAccessUser
	// id ascending reflects insertion order for equal join times
	if err := s.DB.Order("joined_at DESC, id ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// --- In-memory store ---

// MemoryRegistryStore keeps the registry in process memory, guarded by a
// mutex so the whole upsert runs as one critical section. State resets on
// restart.
type MemoryRegistryStore struct {
	mu     sync.Mutex
	users  []models.EarlyAccessUser
	nextID uint
}

func NewMemoryRegistryStore() *MemoryRegistryStore {
	return &MemoryRegistryStore{nextID: 1}
}

func (s *MemoryRegistryStore) Upsert(walletAddress string, email string) (models.EarlyAccessUser, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].WalletAddress == walletAddress {
			s.users[i].HasRequestedAccess = true
			if email != "" {
				e := email
				s.users[i].Email = &e
			}
			return s.users[i], false, nil
		}
	}

	user := models.EarlyAccessUser{
		ID:                 s.nextID,
		WalletAddress:      walletAddress,
		HasRequestedAccess: true,
		JoinedAt:           time.Now().UTC(),
	}
	if email != "" {
		e := email
		user.Email = &e
	}
	s.nextID++
	s.users = append(s.users, user)
	return user, true, nil
}

func (s *MemoryRegistryStore) FindByWallet(walletAddress string) (models.EarlyAccessUser, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].WalletAddress == walletAddress {
			return s.users[i], true, nil
		}
	}
	return models.EarlyAccessUser{}, false, nil
}

func (s *MemoryRegistryStore) ListAll() ([]models.EarlyAccessUser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.EarlyAccessUser, len(s.users))
	copy(out, s.users)
	// Stable sort keeps insertion order for equal join times
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].JoinedAt.After(out[j].JoinedAt)
	})
	return out, nil
}
