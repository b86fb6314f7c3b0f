package repositories

import (
	"errors"

	"insurance_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrAdminNotFound      = errors.New("admin not found")
	ErrAccountExists      = errors.New("account already exists")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrAdminAlreadyExists = errors.New("admin already exists")
)

type AccountRepository interface {
	CreateUser(db *gorm.DB, user *models.User) error
	FindUserByID(db *gorm.DB, id string) (*models.User, error)
	FindUserByEmail(db *gorm.DB, email string) (*models.User, error)
	UsernameExists(db *gorm.DB, username string) (bool, error)

	CreateAdmin(db *gorm.DB, admin *models.Admin) error
	FindAdminByID(db *gorm.DB, id string) (*models.Admin, error)
	FindAdminByEmail(db *gorm.DB, email string) (*models.Admin, error)
	CountAdmins(db *gorm.DB) (int64, error)
}

type AccountRepositoryImpl struct{}

func NewAccountRepository() AccountRepository {
	return &AccountRepositoryImpl{}
}

func (r *AccountRepositoryImpl) CreateUser(db *gorm.DB, user *models.User) error {
	if err := db.Create(user).Error; err != nil {
		if IsUniqueViolation(err) {
			return ErrAccountExists
		}
		return err
	}
	return nil
}

func (r *AccountRepositoryImpl) FindUserByID(db *gorm.DB, id string) (*models.User, error) {
	if !isUUID(id) {
		return nil, ErrUserNotFound
	}
	var user models.User
	if err := db.Where("id = ?", id).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *AccountRepositoryImpl) FindUserByEmail(db *gorm.DB, email string) (*models.User, error) {
	var user models.User
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *AccountRepositoryImpl) UsernameExists(db *gorm.DB, username string) (bool, error) {
	var count int64
	err := db.Model(&models.User{}).Where("username = ?", username).Count(&count).Error
	return count > 0, err
}

func (r *AccountRepositoryImpl) CreateAdmin(db *gorm.DB, admin *models.Admin) error {
	if err := db.Create(admin).Error; err != nil {
		if IsUniqueViolation(err) {
			return ErrAdminAlreadyExists
		}
		return err
	}
	return nil
}

func (r *AccountRepositoryImpl) FindAdminByID(db *gorm.DB, id string) (*models.Admin, error) {
	if !isUUID(id) {
		return nil, ErrAdminNotFound
	}
	var admin models.Admin
	if err := db.Where("id = ?", id).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAdminNotFound
		}
		return nil, err
	}
	return &admin, nil
}

func (r *AccountRepositoryImpl) FindAdminByEmail(db *gorm.DB, email string) (*models.Admin, error) {
	var admin models.Admin
	if err := db.Where("email = ?", email).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAdminNotFound
		}
		return nil, err
	}
	return &admin, nil
}

func (r *AccountRepositoryImpl) CountAdmins(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&models.Admin{}).Count(&count).Error
	return count, err
}
