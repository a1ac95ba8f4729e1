package user

import (
	"context"
	"errors"
	"time"

	"cookus-server/domain"
	"cookus-server/entities"

	"gorm.io/gorm"
)

type (
	UserRepository interface {
		CreateUser(ctx context.Context, user *entities.User) error
		GetUserByID(ctx context.Context, id string) (*entities.User, error)
		GetUserByEmail(ctx context.Context, email string) (*entities.User, error)
		CheckUserExists(ctx context.Context, id, email string) (bool, error)
		UpdateUser(ctx context.Context, user *entities.User) error
		SoftDeleteUser(ctx context.Context, id string) error

		CreateRefreshToken(ctx context.Context, token *entities.RefreshToken) error
		GetRefreshToken(ctx context.Context, userID, jtiHash string) (*entities.RefreshToken, error)
		RevokeRefreshToken(ctx context.Context, tokenID string) error
		RevokeAllRefreshTokens(ctx context.Context, userID string) error
	}

	userRepository struct {
		db *gorm.DB
	}
)

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) CreateUser(ctx context.Context, user *entities.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).
		Where("id = ? AND is_deleted = ?", id, false).
		First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).
		Where("email = ? AND is_deleted = ?", email, false).
		First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) CheckUserExists(ctx context.Context, id, email string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.User{}).
		Where("(id = ? OR email = ?) AND is_deleted = ?", id, email, false).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *userRepository) UpdateUser(ctx context.Context, user *entities.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *userRepository) SoftDeleteUser(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).
		Model(&entities.User{}).
		Where("id = ?", id).
		Update("is_deleted", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *userRepository) CreateRefreshToken(ctx context.Context, token *entities.RefreshToken) error {
	return r.db.WithContext(ctx).Create(token).Error
}

func (r *userRepository) GetRefreshToken(ctx context.Context, userID, jtiHash string) (*entities.RefreshToken, error) {
	var token entities.RefreshToken
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND jti_hash = ? AND revoked = ? AND expires_at > ?",
			userID, jtiHash, false, time.Now()).
		First(&token).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRefreshInvalid
		}
		return nil, err
	}
	return &token, nil
}

func (r *userRepository) RevokeRefreshToken(ctx context.Context, tokenID string) error {
	return r.db.WithContext(ctx).
		Model(&entities.RefreshToken{}).
		Where("id = ?", tokenID).
		Update("revoked", true).Error
}

func (r *userRepository) RevokeAllRefreshTokens(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).
		Model(&entities.RefreshToken{}).
		Where("user_id = ? AND revoked = ?", userID, false).
		Update("revoked", true).Error
}
