package repository

import (
	"context"
	"errors"
	"time"

	"motorent/internal/domain"

	"gorm.io/gorm"
)

type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

type customerModel struct {
	ID            int64     `gorm:"column:id;primaryKey"`
	Name          string    `gorm:"column:name;not null"`
	Phone         string    `gorm:"column:phone;not null"`
	Cccd          *string   `gorm:"column:cccd"`
	DriverLicense *string   `gorm:"column:driver_license"`
	Notes         *string   `gorm:"column:notes;type:text"`
	CreatedAt     time.Time `gorm:"column:created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at"`

	CccdImageURL             *string `gorm:"column:cccd_image_url"`
	CccdImagePublicID        *string `gorm:"column:cccd_image_public_id"`
	LicenseImageURL          *string `gorm:"column:driver_license_image_url"`
	LicenseImagePublicID     *string `gorm:"column:driver_license_image_public_id"`
}

func (customerModel) TableName() string { return "customers" }

func toDomainCustomer(m customerModel) *domain.Customer {
	c := &domain.Customer{
		ID:            m.ID,
		Name:          m.Name,
		Phone:         m.Phone,
		Cccd:          deref(m.Cccd),
		DriverLicense: deref(m.DriverLicense),
		Notes:         deref(m.Notes),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
	if m.CccdImageURL != nil || m.CccdImagePublicID != nil {
		c.CccdImage = &domain.Image{URL: deref(m.CccdImageURL), PublicID: deref(m.CccdImagePublicID)}
	}
	if m.LicenseImageURL != nil || m.LicenseImagePublicID != nil {
		c.DriverLicenseImage = &domain.Image{URL: deref(m.LicenseImageURL), PublicID: deref(m.LicenseImagePublicID)}
	}
	return c
}

func toCustomerModel(c *domain.Customer) customerModel {
	m := customerModel{
		ID:            c.ID,
		Name:          c.Name,
		Phone:         c.Phone,
		Cccd:          optional(c.Cccd),
		DriverLicense: optional(c.DriverLicense),
		Notes:         optional(c.Notes),
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
	if c.CccdImage != nil {
		m.CccdImageURL = optional(c.CccdImage.URL)
		m.CccdImagePublicID = optional(c.CccdImage.PublicID)
	}
	if c.DriverLicenseImage != nil {
		m.LicenseImageURL = optional(c.DriverLicenseImage.URL)
		m.LicenseImagePublicID = optional(c.DriverLicenseImage.PublicID)
	}
	return m
}

func (r *CustomerRepository) Create(ctx context.Context, c *domain.Customer) error {
	m := toCustomerModel(c)
	if tx := r.db.WithContext(ctx).Create(&m); tx.Error != nil {
		return tx.Error
	}
	*c = *toDomainCustomer(m)
	return nil
}

// GetByID returns (nil, nil) when no customer with that id exists.
func (r *CustomerRepository) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	var m customerModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainCustomer(m), nil
}

func (r *CustomerRepository) GetByIDs(ctx context.Context, ids []int64) ([]domain.Customer, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var models []customerModel
	if tx := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&models); tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Customer, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainCustomer(m))
	}
	return out, nil
}

// List returns a page of customers, newest-created first, with the total
// count of rows matching the search filter. The filter is a case-insensitive
// substring match against name, phone or cccd.
func (r *CustomerRepository) List(ctx context.Context, search string, limit, offset int) ([]domain.Customer, int64, error) {
	q := r.db.WithContext(ctx).Model(&customerModel{})
	if search != "" {
		like := "%" + search + "%"
		q = q.Where(
			"LOWER(name) LIKE LOWER(?) OR LOWER(phone) LIKE LOWER(?) OR LOWER(cccd) LIKE LOWER(?)",
			like, like, like,
		)
	}

	var total int64
	if tx := q.Count(&total); tx.Error != nil {
		return nil, 0, tx.Error
	}

	var models []customerModel
	tx := q.Order("created_at DESC").Limit(limit).Offset(offset).Find(&models)
	if tx.Error != nil {
		return nil, 0, tx.Error
	}

	out := make([]domain.Customer, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainCustomer(m))
	}
	return out, total, nil
}

func (r *CustomerRepository) Update(ctx context.Context, c *domain.Customer) error {
	m := toCustomerModel(c)
	if tx := r.db.WithContext(ctx).Save(&m); tx.Error != nil {
		return tx.Error
	}
	*c = *toDomainCustomer(m)
	return nil
}

func (r *CustomerRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&customerModel{}, id).Error
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	v := s
	return &v
}
