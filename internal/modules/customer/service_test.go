package customer

import (
	"context"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"motorent/internal/domain"
	"motorent/internal/media"
)

// Mock repository
type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) Create(ctx context.Context, c *domain.Customer) error {
	args := m.Called(ctx, c)
	if c != nil {
		c.ID = 999 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockCustomerRepository) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) List(ctx context.Context, search string, limit, offset int) ([]domain.Customer, int64, error) {
	args := m.Called(ctx, search, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]domain.Customer), args.Get(1).(int64), args.Error(2)
}

func (m *MockCustomerRepository) Update(ctx context.Context, c *domain.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCustomerRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockMediaStore struct {
	mock.Mock
}

func (m *MockMediaStore) Upload(ctx context.Context, fh *multipart.FileHeader, folder string) (*media.Asset, error) {
	args := m.Called(ctx, fh, folder)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*media.Asset), args.Error(1)
}

func (m *MockMediaStore) Delete(ctx context.Context, publicID string) error {
	args := m.Called(ctx, publicID)
	return args.Error(0)
}

func TestService_Create_Success(t *testing.T) {
	mockRepo := new(MockCustomerRepository)
	mockStore := new(MockMediaStore)
	mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewService(mockRepo, mockStore)

	c, err := service.Create(context.Background(), CreateCustomerRequest{
		Name:  "Nguyen Van An",
		Phone: "0901234567",
		Cccd:  "079099123456",
	}, Files{})

	assert.NoError(t, err)
	assert.NotNil(t, c)
	assert.Equal(t, int64(999), c.ID)
	assert.Equal(t, "Nguyen Van An", c.Name)
	mockRepo.AssertExpectations(t)
}

func TestService_Create_MissingFields(t *testing.T) {
	mockRepo := new(MockCustomerRepository)
	mockStore := new(MockMediaStore)
	service := NewService(mockRepo, mockStore)

	_, err := service.Create(context.Background(), CreateCustomerRequest{Name: "  "}, Files{})

	assert.ErrorIs(t, err, ErrMissingFields)
	mockRepo.AssertNotCalled(t, "Create")
}

func TestService_Create_WithImage(t *testing.T) {
	mockRepo := new(MockCustomerRepository)
	mockStore := new(MockMediaStore)

	fh := &multipart.FileHeader{Filename: "cccd.jpg", Size: 1024}
	mockStore.On("Upload", mock.Anything, fh, "customers/cccd").
		Return(&media.Asset{URL: "/static/uploads/customers/cccd/a.jpg", PublicID: "customers/cccd/a.jpg"}, nil)
	mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewService(mockRepo, mockStore)

	c, err := service.Create(context.Background(), CreateCustomerRequest{
		Name:  "Tran Thi Binh",
		Phone: "0907654321",
	}, Files{CccdImage: fh})

	assert.NoError(t, err)
	assert.NotNil(t, c.CccdImage)
	assert.Equal(t, "customers/cccd/a.jpg", c.CccdImage.PublicID)
	mockStore.AssertExpectations(t)
}

func TestService_List_Pagination(t *testing.T) {
	mockRepo := new(MockCustomerRepository)
	mockStore := new(MockMediaStore)

	data := []domain.Customer{{ID: 1}, {ID: 2}}
	mockRepo.On("List", mock.Anything, "", 5, 10).Return(data, int64(12), nil)

	service := NewService(mockRepo, mockStore)

	res, err := service.List(context.Background(), 3, 5, "")

	assert.NoError(t, err)
	assert.Equal(t, 3, res.Page)
	assert.Equal(t, 5, res.Limit)
	assert.Equal(t, int64(12), res.Total)
	assert.Equal(t, int64(3), res.Pages) // ceil(12/5)
	assert.Len(t, res.Data, 2)
}

func TestService_List_Defaults(t *testing.T) {
	mockRepo := new(MockCustomerRepository)
	mockStore := new(MockMediaStore)

	mockRepo.On("List", mock.Anything, "an", 10, 0).Return([]domain.Customer{}, int64(0), nil)

	service := NewService(mockRepo, mockStore)

	res, err := service.List(context.Background(), 0, 0, "an")

	assert.NoError(t, err)
	assert.Equal(t, 1, res.Page)
	assert.Equal(t, 10, res.Limit)
	assert.Equal(t, int64(0), res.Pages)
}

func TestService_GetByID_NotFound(t *testing.T) {
	mockRepo := new(MockCustomerRepository)
	mockStore := new(MockMediaStore)
	mockRepo.On("GetByID", mock.Anything, int64(7)).Return(nil, nil)

	service := NewService(mockRepo, mockStore)

	_, err := service.GetByID(context.Background(), 7)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Update_SkipsEmptyFields(t *testing.T) {
	mockRepo := new(MockCustomerRepository)
	mockStore := new(MockMediaStore)

	existing := &domain.Customer{ID: 5, Name: "Old Name", Phone: "0900000000", Notes: "keep"}
	mockRepo.On("GetByID", mock.Anything, int64(5)).Return(existing, nil)
	mockRepo.On("Update", mock.Anything, mock.Anything).Return(nil)

	service := NewService(mockRepo, mockStore)

	updated, err := service.Update(context.Background(), 5, UpdateCustomerRequest{Name: "New Name"}, Files{})

	assert.NoError(t, err)
	assert.Equal(t, "New Name", updated.Name)
	assert.Equal(t, "0900000000", updated.Phone)
	assert.Equal(t, "keep", updated.Notes)
}

func TestService_Update_ReplacesOldImage(t *testing.T) {
	mockRepo := new(MockCustomerRepository)
	mockStore := new(MockMediaStore)

	existing := &domain.Customer{
		ID:    5,
		Name:  "Name",
		Phone: "0900000000",
		CccdImage: &domain.Image{
			URL:      "/static/uploads/customers/cccd/old.jpg",
			PublicID: "customers/cccd/old.jpg",
		},
	}
	fh := &multipart.FileHeader{Filename: "new.jpg", Size: 2048}

	mockRepo.On("GetByID", mock.Anything, int64(5)).Return(existing, nil)
	mockStore.On("Delete", mock.Anything, "customers/cccd/old.jpg").Return(nil)
	mockStore.On("Upload", mock.Anything, fh, "customers/cccd").
		Return(&media.Asset{URL: "/static/uploads/customers/cccd/new.jpg", PublicID: "customers/cccd/new.jpg"}, nil)
	mockRepo.On("Update", mock.Anything, mock.Anything).Return(nil)

	service := NewService(mockRepo, mockStore)

	updated, err := service.Update(context.Background(), 5, UpdateCustomerRequest{}, Files{CccdImage: fh})

	assert.NoError(t, err)
	assert.Equal(t, "customers/cccd/new.jpg", updated.CccdImage.PublicID)
	mockStore.AssertExpectations(t)
}

func TestService_Delete_CleansImages(t *testing.T) {
	mockRepo := new(MockCustomerRepository)
	mockStore := new(MockMediaStore)

	existing := &domain.Customer{
		ID:                 5,
		CccdImage:          &domain.Image{PublicID: "customers/cccd/a.jpg"},
		DriverLicenseImage: &domain.Image{PublicID: "customers/license/b.jpg"},
	}
	mockRepo.On("GetByID", mock.Anything, int64(5)).Return(existing, nil)
	mockStore.On("Delete", mock.Anything, "customers/cccd/a.jpg").Return(nil)
	mockStore.On("Delete", mock.Anything, "customers/license/b.jpg").Return(media.ErrAssetNotFound)
	mockRepo.On("Delete", mock.Anything, int64(5)).Return(nil)

	service := NewService(mockRepo, mockStore)

	// A failed media delete must not block the record delete.
	err := service.Delete(context.Background(), 5)

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestService_Delete_NotFound(t *testing.T) {
	mockRepo := new(MockCustomerRepository)
	mockStore := new(MockMediaStore)
	mockRepo.On("GetByID", mock.Anything, int64(77)).Return(nil, nil)

	service := NewService(mockRepo, mockStore)

	err := service.Delete(context.Background(), 77)
	assert.ErrorIs(t, err, ErrNotFound)
	mockRepo.AssertNotCalled(t, "Delete")
}
