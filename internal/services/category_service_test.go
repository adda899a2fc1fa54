package services

import (
	"context"
	stderrors "errors"
	"testing"

	"finance-tracker/internal/dto"
	"finance-tracker/internal/errors"
	"finance-tracker/internal/models"
	"finance-tracker/internal/repositories/repository_mocks"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type CategoryServiceSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	categoryRepo *repository_mocks.MockCategoryRepositoryInterface
	service      CategoryServiceInterface
	ctx          context.Context
}

func (s *CategoryServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.categoryRepo = repository_mocks.NewMockCategoryRepositoryInterface(s.ctrl)
	// nil metrics falls back to a no-op recorder
	s.service = NewCategoryService(s.categoryRepo, nil, discardLogger())
	s.ctx = context.Background()
}

func (s *CategoryServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestCategoryServiceSuite(t *testing.T) {
	suite.Run(t, new(CategoryServiceSuite))
}

func (s *CategoryServiceSuite) TestListByKind_Success() {
	s.categoryRepo.EXPECT().ListByKind(s.ctx, models.KindIncome).Return([]models.Category{
		{ID: 1, Name: "Salary", Kind: models.KindIncome},
		{ID: 2, Name: "Meal Voucher", Kind: models.KindIncome},
	}, nil)

	items, err := s.service.ListByKind(s.ctx, "Income")

	s.Require().NoError(err)
	s.Equal([]dto.CategoryItem{{ID: 1, Name: "Salary"}, {ID: 2, Name: "Meal Voucher"}}, items)
}

func (s *CategoryServiceSuite) TestListByKind_InvalidKind() {
	for _, kind := range []string{"Loan", "", "EXPENSE"} {
		s.Run(kind, func() {
			items, err := s.service.ListByKind(s.ctx, kind)

			s.Nil(items)
			s.True(errors.IsValidation(err))
			s.Equal(errors.ValidationInvalidKind, errors.CodeOf(err))
		})
	}
}

func (s *CategoryServiceSuite) TestListByKind_StorageError() {
	s.categoryRepo.EXPECT().ListByKind(s.ctx, models.KindExpense).
		Return(nil, stderrors.New("failed to list categories by kind: no such table: categories"))

	_, err := s.service.ListByKind(s.ctx, "Expense")

	s.True(errors.IsStorage(err))
}
