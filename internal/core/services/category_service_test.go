package services_test

import (
	"context"
	"testing"

	"github.com/raissac/budget_management_backend/internal/apperrors"
	"github.com/raissac/budget_management_backend/internal/core/domain"
	portssvc "github.com/raissac/budget_management_backend/internal/core/ports/services"
	"github.com/raissac/budget_management_backend/internal/core/services"
	"github.com/raissac/budget_management_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type CategoryServiceTestSuite struct {
	suite.Suite
	mockRepo *MockCategoryRepository
	service  portssvc.CategorySvcFacade
}

func (suite *CategoryServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockCategoryRepository)
	suite.service = services.NewCategoryService(suite.mockRepo)
}

func (suite *CategoryServiceTestSuite) TestCreateCategory_Success() {
	ctx := context.Background()
	creatorUserID := uuid.NewString()
	req := dto.CreateCategoryRequest{Name: "Food"}

	suite.mockRepo.On("FindCategoryByName", ctx, "Food").Return(nil, apperrors.ErrCategoryNotFound).Once()
	suite.mockRepo.On("SaveCategory", ctx, mock.MatchedBy(func(c domain.Category) bool {
		return c.Name == "Food" && c.Active && c.CreatedBy == creatorUserID && c.CategoryID != ""
	})).Return(nil).Once()

	category, err := suite.service.CreateCategory(ctx, req, creatorUserID)

	suite.Require().NoError(err)
	suite.Equal("Food", category.Name)
	suite.True(category.Active)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CategoryServiceTestSuite) TestCreateCategory_DuplicateActiveName() {
	ctx := context.Background()
	existing := &domain.Category{CategoryID: uuid.NewString(), Name: "Food", Active: true}

	suite.mockRepo.On("FindCategoryByName", ctx, "Food").Return(existing, nil).Once()

	category, err := suite.service.CreateCategory(ctx, dto.CreateCategoryRequest{Name: "Food"}, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(category)
	suite.ErrorIs(err, apperrors.ErrValidation)

	var validationErr *apperrors.ValidationError
	suite.Require().ErrorAs(err, &validationErr)
	suite.Contains(validationErr.Messages[0], "already exists")
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveCategory", mock.Anything, mock.Anything)
}

func (suite *CategoryServiceTestSuite) TestCreateCategory_DuplicateInactiveName() {
	ctx := context.Background()
	existing := &domain.Category{CategoryID: uuid.NewString(), Name: "Food", Active: false}

	suite.mockRepo.On("FindCategoryByName", ctx, "Food").Return(existing, nil).Once()

	_, err := suite.service.CreateCategory(ctx, dto.CreateCategoryRequest{Name: "Food"}, uuid.NewString())

	var validationErr *apperrors.ValidationError
	suite.Require().ErrorAs(err, &validationErr)
	suite.Contains(validationErr.Messages[0], "inactive")
}

func (suite *CategoryServiceTestSuite) TestUpdateCategory_TogglesActive() {
	ctx := context.Background()
	categoryID := uuid.NewString()
	updaterUserID := uuid.NewString()
	inactive := false
	existing := &domain.Category{CategoryID: categoryID, Name: "Food", Active: true}

	suite.mockRepo.On("FindCategoryByID", ctx, categoryID).Return(existing, nil).Once()
	suite.mockRepo.On("UpdateCategory", ctx, mock.MatchedBy(func(c domain.Category) bool {
		return c.CategoryID == categoryID && !c.Active && c.LastUpdatedBy == updaterUserID
	})).Return(nil).Once()

	category, err := suite.service.UpdateCategory(ctx, categoryID, dto.UpdateCategoryRequest{Name: "Food", Active: &inactive}, updaterUserID)

	suite.Require().NoError(err)
	suite.False(category.Active)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CategoryServiceTestSuite) TestUpdateCategory_NotFound() {
	ctx := context.Background()
	categoryID := uuid.NewString()

	suite.mockRepo.On("FindCategoryByID", ctx, categoryID).Return(nil, apperrors.ErrCategoryNotFound).Once()

	category, err := suite.service.UpdateCategory(ctx, categoryID, dto.UpdateCategoryRequest{Name: "Food"}, uuid.NewString())

	suite.Nil(category)
	suite.ErrorIs(err, apperrors.ErrCategoryNotFound)
}

func (suite *CategoryServiceTestSuite) TestListCategories_PageMeta() {
	ctx := context.Background()
	categories := []domain.Category{
		{CategoryID: uuid.NewString(), Name: "Food", Active: true},
		{CategoryID: uuid.NewString(), Name: "Rent", Active: true},
	}

	suite.mockRepo.On("FindCategories", ctx, 1, 2).Return(categories, int64(5), nil).Once()

	resp, err := suite.service.ListCategories(ctx, 1, 2)

	suite.Require().NoError(err)
	suite.Len(resp.Content, 2)
	suite.Equal(1, resp.Page)
	suite.Equal(2, resp.TotalElements)
	suite.Equal(3, resp.TotalPages)
	suite.False(resp.First)
	suite.False(resp.Last)
}

func (suite *CategoryServiceTestSuite) TestListActiveCategories_NilBecomesEmpty() {
	ctx := context.Background()

	suite.mockRepo.On("FindActiveCategories", ctx).Return([]domain.Category(nil), nil).Once()

	categories, err := suite.service.ListActiveCategories(ctx)

	suite.Require().NoError(err)
	suite.NotNil(categories)
	suite.Empty(categories)
}

func TestCategoryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CategoryServiceTestSuite))
}
